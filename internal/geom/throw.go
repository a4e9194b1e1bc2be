package geom

import "github.com/pkg/errors"

// Threading errors through the clip loop and the joint scan for conditions
// that cannot happen on valid input would clutter both algorithms. Instead,
// broken invariants panic with an Error, and the public API recovers to convert
// to an error.

type Error struct {
	cause error
}

func (e Error) Error() string { return e.cause.Error() }
func (e Error) Unwrap() error { return e.cause }

// Panic with an Error.
func Fatalf(format string, args ...interface{}) {
	panic(Error{errors.Errorf(format, args...)})
}

// HandlePanicRecover turns a recovered Error back into an error. Any other
// panic is not ours and is re-raised.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if geomError, ok := r.(Error); ok {
			return geomError
		}
		panic(r)
	}
	return nil
}
