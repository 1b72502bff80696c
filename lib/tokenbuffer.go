package lib

// tokenBuffer holds the full token sequence produced by the lexer and hands
// it to the parser one token at a time. The read index only ever moves
// forward; the grammar needs single-token lookahead and nothing more.
type tokenBuffer struct {
	tokens []token
	idx    int
}

func newTokenBuffer() *tokenBuffer {
	return &tokenBuffer{
		tokens: []token{},
		idx:    0,
	}
}

func (tb *tokenBuffer) Write(tok token) {
	tb.tokens = append(tb.tokens, tok)
}

func (tb *tokenBuffer) Next() (token, bool) {
	tok, done := tb.Peek()
	if !done {
		tb.idx++
	}
	return tok, done
}

func (tb *tokenBuffer) Peek() (token, bool) {
	if tb.idx >= len(tb.tokens) {
		return token{}, true
	}
	return tb.tokens[tb.idx], false
}
