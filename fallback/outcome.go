package fallback

// Outcome is the capability surface shared by the two failure shapes. A
// recoverable computation either carries a value of type T or it does not,
// with or without a diagnostic reason. Outcomes are immutable once
// produced; the resolver only consumes them.
type Outcome[T any] interface {
	// HasValue reports whether the computation produced a value.
	HasValue() bool
	// ValueOr returns the carried value, or fb when absent.
	ValueOr(fb T) T
	// Reason returns the diagnostic failure reason, empty for plain absence.
	Reason() string
}

// Result is the error-carrying failure shape: a value of type T or a
// failure reason.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

// Ok produces a successful Result.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Err produces a failed Result.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// ResultOf adapts a conventional (T, error) return into a Result.
func ResultOf[T any](v T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}

func (r Result[T]) HasValue() bool { return r.ok }

func (r Result[T]) ValueOr(fb T) T {
	if r.ok {
		return r.value
	}
	return fb
}

func (r Result[T]) Reason() string {
	if r.err == nil {
		return ""
	}
	return r.err.Error()
}

// Err returns the carried failure, nil on success.
func (r Result[T]) Err() error { return r.err }

// Unwrap returns the conventional (T, error) pair.
func (r Result[T]) Unwrap() (T, error) { return r.value, r.err }

// Option is the absent-value failure shape: a value of type T or nothing.
type Option[T any] struct {
	value   T
	present bool
}

// Some produces a present Option.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None produces an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) HasValue() bool { return o.present }

func (o Option[T]) ValueOr(fb T) T {
	if o.present {
		return o.value
	}
	return fb
}

func (o Option[T]) Reason() string { return "" }

// Present reports whether the option carries a value.
func (o Option[T]) Present() bool { return o.present }

// Get returns the carried value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.present }
