package memo

import "fmt"

type constError string

// ErrNilParam may be returned from [NewOnce].
const ErrNilParam = constError("nil parameter reference")

func (errStr constError) Error() string { return string(errStr) }

func nilParamError[P any]() error {
	var zero P
	return fmt.Errorf(
		"%w: *%T must not be nil",
		ErrNilParam, zero)
}
