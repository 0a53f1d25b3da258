// Package fallback recovers failed or absent computation results by asking
// a generative model backend for a plausible substitute value of the
// expected type.
//
// A call site wraps its computation in Do (error-result shape) or DoOption
// (absent-value shape) instead of unwrapping the result directly. On
// success the wrapped value is returned untouched and no recovery machinery
// runs: no context rendering, no schema derivation, no network call. On
// failure the resolver assembles a prompt from the call's Capture (its
// definition-time source snapshot), the arguments, and the failure reason,
// requests a schema-constrained completion, and returns the synthesized
// value in the same shape the computation used: failed results recover into
// successful results, absent options into present options.
//
//	var getUser = fallback.Describe("GetUser",
//	    "func GetUser(id int) (User, error)",
//	    "GetUser looks up a user profile by ID.",
//	    `func GetUser(id int) (User, error) { ... }`,
//	)
//
//	resolver := fallback.NewResolver(client)
//	user, err := fallback.Do(ctx, resolver, getUser, func() (User, error) {
//	    return store.GetUser(ctx, 42)
//	}, 42)
//
// When recovery itself is unavailable (missing API key) or fails (backend
// error), the resolver's Policy decides the outcome. PolicyPropagate, the
// default, hands back the original failure unchanged. PolicyFail aborts the
// calling flow with a *RecoveryError carrying both failures. Either way the
// original failure is logged; it is never silently discarded.
//
// Each invocation runs the state machine once: the computation executes
// exactly once, and the backend is called at most once. Concurrent
// invocations are independent; the only shared resource is the backend
// client's transport.
package fallback
