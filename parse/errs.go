package parse

import (
	"errors"
	"fmt"

	"github.com/nbtkit/go-nbt/token"
)

var (
	ErrParse         = fmt.Errorf("%w: parse error", token.ErrSyntax)
	ErrNotCompound   = fmt.Errorf("%w: expected compound", ErrParse)
	ErrArrayType     = fmt.Errorf("%w: invalid array type", ErrParse)
	ErrDepthExceeded = errors.New("snbt nesting too deep")
)
