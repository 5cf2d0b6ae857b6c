package parser

import (
	"errors"
	"fmt"

	"github.com/Techdojo/Lantern/lexer"
)

var (
	// ErrUnexpectedEOF is returned when the input ends while a form is
	// still open.
	ErrUnexpectedEOF = errors.New("unexpected EOF while reading")

	// ErrUnexpectedCloseParen is returned on a ")" with no matching "(".
	ErrUnexpectedCloseParen = errors.New(`unexpected ")"`)
)

func errorAt(err error, tok *lexer.Token) error {
	line, col := tok.Pos()
	return fmt.Errorf("%w (near line %d, column %d)", err, line, col)
}
