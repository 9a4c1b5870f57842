package pvector

// FetchOptions control how Fetch treats an index that does not address an
// element. The fields are private; use the With* options.
type FetchOptions[T any] struct {
	hasDefault   bool
	defaultValue T
	fallback     func(i int) T
}

type FetchOption[T any] func(*FetchOptions[T])

// WithDefault makes Fetch return value on a miss. value may be the zero
// value of T; it is still distinguished from "no default".
func WithDefault[T any](value T) FetchOption[T] {
	return func(opts *FetchOptions[T]) {
		opts.hasDefault = true
		opts.defaultValue = value
	}
}

// WithFallback makes Fetch return fn(i) on a miss, where i is the index as
// passed to Fetch. A fallback takes precedence over a default.
func WithFallback[T any](fn func(i int) T) FetchOption[T] {
	return func(opts *FetchOptions[T]) {
		opts.fallback = fn
	}
}
