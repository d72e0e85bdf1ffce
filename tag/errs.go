package tag

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch is wrapped by every rejected insertion into a
	// list or array.
	ErrTypeMismatch = errors.New("tag type mismatch")
)

// TypeError describes an insertion rejected because the element type
// does not fit the container.
type TypeError struct {
	Container Type
	Want      Type
	Got       Type
}

func (e *TypeError) Unwrap() error {
	return ErrTypeMismatch
}

func (e *TypeError) Error() string {
	if e.Want == EndType {
		return fmt.Sprintf("%s: cannot insert %s into %s", ErrTypeMismatch, e.Got.Name(), e.Container.Name())
	}
	return fmt.Sprintf("%s: cannot insert %s into %s of %s", ErrTypeMismatch, e.Got.Name(), e.Container.Name(), e.Want.Name())
}
