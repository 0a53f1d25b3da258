package fallback

import (
	"strings"
	"testing"
)

func TestCaptureRender(t *testing.T) {
	c := Describe(
		"getUser",
		"func getUser(id int) (User, error)",
		"getUser looks up a user by ID.",
		"func getUser(id int) (User, error) { return db.Find(id) }",
	)

	rendered := c.Render()
	for _, want := range []string{"getUser", "func getUser(id int)", "looks up a user", "db.Find(id)"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("expected rendered context to contain %q:\n%s", want, rendered)
		}
	}
}

func TestCaptureRenderOmitsEmptyFields(t *testing.T) {
	c := Describe("bare", "", "", "")
	rendered := c.Render()

	if !strings.Contains(rendered, "bare") {
		t.Errorf("expected function name, got %q", rendered)
	}
	for _, absent := range []string{"Signature:", "Documentation:", "Source code:"} {
		if strings.Contains(rendered, absent) {
			t.Errorf("expected %q to be omitted:\n%s", absent, rendered)
		}
	}
}

func TestRegistry(t *testing.T) {
	c := Describe("registered", "func registered() int", "", "")
	Register(c)

	got, ok := Lookup("registered")
	if !ok {
		t.Fatal("expected registered capture to be found")
	}
	if got.Signature != c.Signature {
		t.Errorf("expected %q, got %q", c.Signature, got.Signature)
	}

	if _, ok := Lookup("never-registered"); ok {
		t.Error("expected miss for unknown name")
	}

	// Later registrations replace earlier ones.
	Register(Describe("registered", "func registered() string", "", ""))
	got, _ = Lookup("registered")
	if got.Signature != "func registered() string" {
		t.Errorf("expected replacement, got %q", got.Signature)
	}
}
