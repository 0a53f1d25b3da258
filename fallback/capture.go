package fallback

import (
	"fmt"
	"strings"
	"sync"
)

// Capture is the textual snapshot of a recoverable callable, recorded at
// definition time. Go erases function bodies and documentation at runtime,
// so the snapshot is written out where the callable is defined, by hand or
// by a code generator. Its content is opaque to the resolver: it is pasted
// verbatim into the recovery prompt as a best-effort context aid, not a
// safety boundary.
type Capture struct {
	Name      string
	Signature string
	Doc       string
	Source    string
}

// Describe builds a Capture. Empty fields are simply omitted from the
// rendered context.
func Describe(name, signature, doc, source string) Capture {
	return Capture{Name: name, Signature: signature, Doc: doc, Source: source}
}

// Render produces the context block included in recovery prompts.
func (c Capture) Render() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Function name: %s\n", c.Name)
	if c.Signature != "" {
		fmt.Fprintf(&sb, "Signature: %s\n", c.Signature)
	}
	if c.Doc != "" {
		fmt.Fprintf(&sb, "Documentation: %s\n", c.Doc)
	}
	if c.Source != "" {
		fmt.Fprintf(&sb, "Source code:\n%s\n", c.Source)
	}
	return sb.String()
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Capture{}
)

// Register records a Capture under its name so generated registration code
// can pair callables with their snapshots in one place. Later registrations
// for the same name replace earlier ones.
func Register(c Capture) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[c.Name] = c
}

// Lookup returns the registered Capture for name.
func Lookup(name string) (Capture, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	c, ok := registry[name]
	return c, ok
}
