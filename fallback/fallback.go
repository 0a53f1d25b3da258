package fallback

import "context"

// Do invokes fn exactly once and returns its value when it succeeds; the
// recovery machinery never runs on the success path. When fn fails, the
// resolver asks the backend for a substitute value of type T and returns it
// as a success. When recovery itself is unavailable or fails, the resolver's
// policy decides: PolicyPropagate returns the original error unchanged,
// PolicyFail returns a *RecoveryError.
func Do[T any](ctx context.Context, r *Resolver, c Capture, fn func() (T, error), args ...any) (T, error) {
	v, err := fn()
	if err == nil {
		return v, nil
	}

	synthesized, rerr := synthesize[T](ctx, r, c, args, err.Error())
	if rerr != nil {
		r.logUnrecovered(c, err, rerr)
		var zero T
		if r.policy == PolicyFail {
			return zero, &RecoveryError{Original: err, Cause: rerr}
		}
		return zero, err
	}

	r.logger.Info("recovered failed call", "function", c.Name, "original_error", err)
	return synthesized, nil
}

// DoResult is Do for computations already expressed as a Result.
func DoResult[T any](ctx context.Context, r *Resolver, c Capture, fn func() Result[T], args ...any) (Result[T], error) {
	v, err := Do(ctx, r, c, func() (T, error) { return fn().Unwrap() }, args...)
	if err != nil {
		return Err[T](err), errOnlyUnderPolicyFail(r, err)
	}
	return Ok(v), nil
}

// DoOption invokes fn exactly once and returns its option when present.
// When the option is absent, the resolver synthesizes a value and returns it
// as a present option, preserving the shape of the original outcome. When
// recovery fails, PolicyPropagate returns the original absence with a nil
// error; PolicyFail returns None plus a *RecoveryError.
func DoOption[T any](ctx context.Context, r *Resolver, c Capture, fn func() Option[T], args ...any) (Option[T], error) {
	opt := fn()
	if opt.Present() {
		return opt, nil
	}

	synthesized, rerr := synthesize[T](ctx, r, c, args, "")
	if rerr != nil {
		r.logUnrecovered(c, nil, rerr)
		if r.policy == PolicyFail {
			return None[T](), &RecoveryError{Cause: rerr}
		}
		return None[T](), nil
	}

	r.logger.Info("recovered absent value", "function", c.Name)
	return Some(synthesized), nil
}

// errOnlyUnderPolicyFail keeps DoResult's error channel consistent with
// DoOption: under PolicyPropagate the failure lives in the returned shape,
// not beside it.
func errOnlyUnderPolicyFail(r *Resolver, err error) error {
	if r.policy == PolicyFail {
		return err
	}
	return nil
}
