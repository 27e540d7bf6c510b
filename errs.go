package mpath

import (
	"errors"
	"fmt"

	"github.com/mpath-dev/mpath/token"
)

var (
	ErrSyntax = errors.New("syntax error")

	// ErrEmptyPath is the panic value of Head and Last on an empty
	// path.
	ErrEmptyPath = errors.New("empty path")

	// ErrNoKind reports an operation needing a kind on a zero Path
	// of a type with no default kind. Accessors panic with it,
	// UnmarshalText returns it.
	ErrNoKind = errors.New("path kind unset")
)

// SyntaxError locates a syntax error in the parsed text.
type SyntaxError struct {
	Err error
	Pos token.Pos
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func unexpectedErr(what string, pos token.Pos) error {
	return &SyntaxError{
		Err: fmt.Errorf("%w: unexpected %s", ErrSyntax, what),
		Pos: pos,
	}
}
