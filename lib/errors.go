package lib

import "fmt"

// LexError means scanning hit a character that cannot start any token.
type LexError struct {
	Char rune
	Pos  int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("Unexpected character: '%c' at position %d", e.Char, e.Pos)
}

// ParseError covers every grammatical failure: unexpected or missing tokens,
// malformed numeric literals, division by zero, trailing tokens, and
// premature end of input.
type ParseError struct {
	msg string
}

func (e *ParseError) Error() string {
	return e.msg
}

func parseErrorf(format string, args ...interface{}) *ParseError {
	return &ParseError{msg: fmt.Sprintf(format, args...)}
}
