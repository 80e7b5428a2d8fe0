package to

// Result carries either a value or the error that prevented computing it.
type Result[T any] struct {
	Value T
	Err   error
}

func ResultOf[T any](value T, err error) Result[T] {
	return Result[T]{Value: value, Err: err}
}

// Get unpacks the Result back into the usual (value, error) pair.
func (r Result[T]) Get() (T, error) { return r.Value, r.Err }
