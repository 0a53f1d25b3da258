package fallback

import (
	"errors"
	"testing"
)

var (
	_ Outcome[int] = Result[int]{}
	_ Outcome[int] = Option[int]{}
)

func TestResult(t *testing.T) {
	ok := Ok(42)
	if !ok.HasValue() {
		t.Error("expected Ok to carry a value")
	}
	if v := ok.ValueOr(0); v != 42 {
		t.Errorf("expected 42, got %d", v)
	}
	if ok.Reason() != "" {
		t.Errorf("expected empty reason, got %q", ok.Reason())
	}
	if ok.Err() != nil {
		t.Errorf("expected nil error, got %v", ok.Err())
	}

	cause := errors.New("user with id 999 not found")
	failed := Err[int](cause)
	if failed.HasValue() {
		t.Error("expected Err to carry no value")
	}
	if v := failed.ValueOr(7); v != 7 {
		t.Errorf("expected fallback 7, got %d", v)
	}
	if failed.Reason() != cause.Error() {
		t.Errorf("expected reason %q, got %q", cause.Error(), failed.Reason())
	}
	if _, err := failed.Unwrap(); !errors.Is(err, cause) {
		t.Errorf("expected original error, got %v", err)
	}
}

func TestResultOf(t *testing.T) {
	if r := ResultOf(5, nil); !r.HasValue() || r.ValueOr(0) != 5 {
		t.Errorf("expected Ok(5), got %+v", r)
	}
	if r := ResultOf(0, errors.New("nope")); r.HasValue() {
		t.Errorf("expected failed result, got %+v", r)
	}
}

func TestOption(t *testing.T) {
	some := Some("widget")
	if !some.HasValue() || !some.Present() {
		t.Error("expected Some to be present")
	}
	if v, ok := some.Get(); !ok || v != "widget" {
		t.Errorf("expected widget, got %q (%v)", v, ok)
	}

	none := None[string]()
	if none.HasValue() || none.Present() {
		t.Error("expected None to be absent")
	}
	if none.Reason() != "" {
		t.Errorf("expected empty reason for absence, got %q", none.Reason())
	}
	if v := none.ValueOr("fb"); v != "fb" {
		t.Errorf("expected fallback, got %q", v)
	}
}
