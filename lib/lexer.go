package lib

import (
	"unicode"
)

type charInfo struct {
	ch  rune
	pos int
}

func lex(expr string, emit func(token)) error {
	l := newLexer(expr, emit)
	return l.scan()
}

type lexer struct {
	text             []rune
	length           int
	currentCharIndex int
	emitCallback     func(token)
}

func newLexer(expr string, emit func(token)) *lexer {
	runes := []rune(expr)
	return &lexer{
		text:             runes,
		length:           len(runes),
		currentCharIndex: 0,
		emitCallback:     emit,
	}
}

func (l *lexer) emit(tok token) {
	l.emitCallback(tok)
}

func (l *lexer) peek(offset int) (charInfo, bool) {
	i := l.currentCharIndex + offset
	if i >= l.length {
		return charInfo{}, false
	}
	return charInfo{ch: l.text[i], pos: i}, true
}

func (l *lexer) advance() (charInfo, bool) {
	info, ok := l.peek(0)
	l.currentCharIndex++
	return info, ok
}

func (l *lexer) scan() error {
	for {
		more, err := l.next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}
	return nil
}

func (l *lexer) next() (bool, error) {
	chInfo, ok := l.advance()
	if !ok {
		return false, nil
	}
	ch := chInfo.ch

	switch ch {
	case '(':
		l.emit(token{tokType: tokenTypeLParen, pos: chInfo.pos})
	case ')':
		l.emit(token{tokType: tokenTypeRParen, pos: chInfo.pos})
	case '+':
		l.emit(token{tokType: tokenTypePlus, pos: chInfo.pos})
	case '-':
		l.emit(token{tokType: tokenTypeMinus, pos: chInfo.pos})
	case '*':
		l.emit(token{tokType: tokenTypeAsterisk, pos: chInfo.pos})
	case '/':
		l.emit(token{tokType: tokenTypeSlash, pos: chInfo.pos})
	default:
		if unicode.IsSpace(ch) {
			// whitespace never produces a token
		} else if unicode.IsDigit(ch) || ch == '.' {
			l.scanNumber(chInfo)
		} else {
			return false, &LexError{Char: ch, Pos: chInfo.pos}
		}
	}

	return true, nil
}

// scanNumber consumes a maximal run of digits with at most one embedded
// decimal point. A second dot is never consumed: it terminates the literal
// and gets scanned as the start of the next token, so "1.2.3" lexes as
// "1.2" followed by ".3".
func (l *lexer) scanNumber(first charInfo) {
	start := first.pos
	hasDot := first.ch == '.'

	for {
		next, ok := l.peek(0)
		if !ok {
			break
		}
		if next.ch == '.' {
			if hasDot {
				break
			}
			hasDot = true
		} else if !unicode.IsDigit(next.ch) {
			break
		}
		l.advance()
	}

	l.emit(token{
		tokType: tokenTypeNumber,
		value:   l.text[start:l.currentCharIndex],
		pos:     start,
	})
}
