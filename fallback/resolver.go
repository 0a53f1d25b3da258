package fallback

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/martinemde/aifallback/llmclient"
	"github.com/martinemde/aifallback/schema"
)

// DefaultSystemInstruction primes the model for recovery synthesis.
const DefaultSystemInstruction = "You are an AI error recovery assistant. " +
	"When given an error message and program context, infer the most likely intended response. " +
	"Do not explain the error. Directly provide the corrected or plausible output as if the error had not occurred."

// Backend performs one structured completion against the model service and
// returns the schema-validated content bytes. *llmclient.Client satisfies
// this. Implementations must be safe for concurrent use.
type Backend interface {
	CompleteStructured(ctx context.Context, req llmclient.Request) ([]byte, error)
}

// Policy selects what an entry point returns when recovery itself fails.
type Policy int

const (
	// PolicyPropagate returns the original failure unchanged. This is the
	// default: callers observe exactly what they would have without the
	// resolver in the path.
	PolicyPropagate Policy = iota

	// PolicyFail treats unrecoverable failure as fatal to the calling flow,
	// surfacing a *RecoveryError that carries both the original failure and
	// the recovery failure.
	PolicyFail
)

// RecoveryError is the terminal failure produced under PolicyFail.
type RecoveryError struct {
	Original error // original failure, nil when the computation was absent-shaped
	Cause    error // configuration or backend failure that blocked recovery
}

func (e *RecoveryError) Error() string {
	if e.Original != nil {
		return fmt.Sprintf("recovery failed: %v (original failure: %v)", e.Cause, e.Original)
	}
	return fmt.Sprintf("recovery failed: %v (original value was absent)", e.Cause)
}

func (e *RecoveryError) Unwrap() error { return e.Cause }

// Resolver turns a failed outcome into a synthesized substitute value by
// asking the backend for a schema-conformant completion. Each resolution is
// fully independent; a Resolver holds no mutable state and is safe for
// concurrent use.
type Resolver struct {
	backend Backend
	model   string
	system  string
	policy  Policy
	logger  *slog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithModel sets the model used for recovery requests.
func WithModel(model string) ResolverOption {
	return func(r *Resolver) { r.model = model }
}

// WithSystemInstruction replaces the default system instruction.
func WithSystemInstruction(s string) ResolverOption {
	return func(r *Resolver) { r.system = s }
}

// WithPolicy sets the unrecovered-failure policy.
func WithPolicy(p Policy) ResolverOption {
	return func(r *Resolver) { r.policy = p }
}

// WithLogger sets the logger used for recovery diagnostics.
func WithLogger(logger *slog.Logger) ResolverOption {
	return func(r *Resolver) { r.logger = logger }
}

// NewResolver creates a Resolver backed by the given completion backend.
func NewResolver(backend Backend, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		backend: backend,
		system:  DefaultSystemInstruction,
		policy:  PolicyPropagate,
		logger:  slog.Default(),
	}
	if info := llmclient.DefaultStructuredModel(); info != nil {
		r.model = info.ID
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// buildPrompt assembles the recovery prompt from the call context and the
// failure reason.
func buildPrompt(c Capture, args []any, reason string) string {
	rendered := make([]string, len(args))
	for i, a := range args {
		rendered[i] = fmt.Sprintf("%v", a)
	}
	argList := strings.Join(rendered, ", ")

	var sb strings.Builder
	fmt.Fprintf(&sb, "The following function call failed: %s(%s)\n", c.Name, argList)
	sb.WriteString(c.Render())
	fmt.Fprintf(&sb, "Parameters: [%s]\n", argList)
	if reason != "" {
		fmt.Fprintf(&sb, "Failure reason: %s\n", reason)
	} else {
		sb.WriteString("The function returned no value.\n")
	}
	sb.WriteString("\nThis function should return the appropriate type. Generate a reasonable response as valid JSON.")
	return sb.String()
}

// synthesize derives the schema for T, performs exactly one backend call,
// and strictly deserializes the validated content.
func synthesize[T any](ctx context.Context, r *Resolver, c Capture, args []any, reason string) (T, error) {
	var out T

	def := schema.Derive[T]()
	content, err := r.backend.CompleteStructured(ctx, llmclient.Request{
		Model:  r.model,
		System: r.system,
		Prompt: buildPrompt(c, args, reason),
		Schema: &def,
	})
	if err != nil {
		return out, err
	}

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return out, &llmclient.DecodeError{SDKError: llmclient.SDKError{
			Message: fmt.Sprintf("cannot deserialize synthesized value as %q", def.Name),
			Cause:   err,
		}}
	}
	return out, nil
}

// logUnrecovered records why a recovery attempt came up empty. The original
// failure is always named here so that PolicyFail never hides it from
// diagnostics.
func (r *Resolver) logUnrecovered(c Capture, original error, cause error) {
	kind := "backend"
	if llmclient.IsConfigurationError(cause) {
		kind = "configuration"
	}
	if original != nil {
		r.logger.Warn("recovery failed, original failure stands",
			"function", c.Name,
			"original_error", original,
			"recovery_error", cause,
			"recovery_error_kind", kind,
		)
		return
	}
	r.logger.Warn("recovery failed for absent value",
		"function", c.Name,
		"recovery_error", cause,
		"recovery_error_kind", kind,
	)
}
