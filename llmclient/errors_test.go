package llmclient

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCategories(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		backend bool
		config  bool
	}{
		{"configuration", &ConfigurationError{SDKError{Message: "no key"}}, false, true},
		{"backend status", &BackendError{SDKError: SDKError{Message: "boom"}, StatusCode: 500}, true, false},
		{"network", &NetworkError{SDKError{Message: "refused"}}, true, false},
		{"empty response", &EmptyResponseError{SDKError{Message: "no choices"}}, true, false},
		{"decode", &DecodeError{SDKError{Message: "bad json"}}, true, false},
		{"plain error", errors.New("other"), false, false},
		{"nil", nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBackendError(tt.err); got != tt.backend {
				t.Errorf("IsBackendError = %v, want %v", got, tt.backend)
			}
			if got := IsConfigurationError(tt.err); got != tt.config {
				t.Errorf("IsConfigurationError = %v, want %v", got, tt.config)
			}
		})
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{"network", &NetworkError{SDKError{Message: "refused"}}, true},
		{"rate limited", &BackendError{SDKError: SDKError{Message: "slow down"}, StatusCode: 429}, true},
		{"server error", &BackendError{SDKError: SDKError{Message: "oops"}, StatusCode: 503}, true},
		{"bad request", &BackendError{SDKError: SDKError{Message: "invalid"}, StatusCode: 400}, false},
		{"unauthorized", &BackendError{SDKError: SDKError{Message: "denied"}, StatusCode: 401}, false},
		{"configuration", &ConfigurationError{SDKError{Message: "no key"}}, false},
		{"decode", &DecodeError{SDKError{Message: "bad json"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.retryable {
				t.Errorf("IsRetryable = %v, want %v", got, tt.retryable)
			}
		})
	}
}

func TestSDKErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &NetworkError{SDKError{Message: "request failed", Cause: cause}}

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
	if msg := err.Error(); msg != fmt.Sprintf("request failed: %v", cause) {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestBackendErrorMessageCarriesBody(t *testing.T) {
	err := &BackendError{SDKError: SDKError{Message: `{"error":"quota exceeded"}`}, StatusCode: 429}
	msg := err.Error()
	if msg != `backend request failed (status=429): {"error":"quota exceeded"}` {
		t.Errorf("unexpected message %q", msg)
	}
}
