package token

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax       = errors.New("syntax error")
	ErrUnterminated = fmt.Errorf("%w: unterminated quote", ErrSyntax)
	ErrBadEscape    = fmt.Errorf("%w: invalid escape sequence", ErrSyntax)
	ErrTrailing     = fmt.Errorf("%w: unexpected trailing data", ErrSyntax)
	ErrMixedList    = fmt.Errorf("%w: mixed element types", ErrSyntax)
)

// SyntaxError is an error met in SNBT text together with where it
// occurred.
type SyntaxError struct {
	Err error
	Pos Pos
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func NewSyntaxError(e error, p *Pos) *SyntaxError {
	return &SyntaxError{Err: e, Pos: *p}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p *Pos) error {
	return NewSyntaxError(fmt.Errorf("%w: expected %s", ErrSyntax, what), p)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewSyntaxError(fmt.Errorf("%w: unexpected %s", ErrSyntax, what), p)
}
