package typelabel

// ParseError reports a failure to parse a value of T. The message names
// what was being parsed by its label, no parsed value is needed for that.
type ParseError[T Label] struct {
	// Err is the cause, optional.
	Err error
}

func (e *ParseError[T]) Error() string {
	if e.Err == nil {
		return "error parsing " + Of[T]()
	}

	return "error parsing " + Of[T]() + ": " + e.Err.Error()
}

func (e *ParseError[T]) Unwrap() error {
	return e.Err
}
