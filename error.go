package zug

import "errors"

// ErrConsumed is returned when a composition is used again after
// CallOnce has spent it.
var ErrConsumed = errors.New("composition has been consumed")

// compositionError carries a rendering of the composition alongside the
// underlying problem.  Check, Bind, and Condense return these.
type compositionError struct {
	err     error
	details string
}

func (ce *compositionError) Error() string {
	return ce.err.Error()
}

func (ce *compositionError) Unwrap() error {
	return ce.err
}

// DetailedError transforms errors into strings.  If the error happens
// to be one returned by Check(), Bind(), or Condense() then the string
// includes a rendering of the composition that produced it.
func DetailedError(err error) string {
	var ce *compositionError
	if errors.As(err, &ce) {
		return err.Error() + "\n\n" + ce.details
	}
	return err.Error()
}
