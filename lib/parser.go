package lib

import (
	"strconv"
	"strings"
)

// Eval evaluates an arithmetic expression and returns its value. The grammar
// is:
//
//	expr   -> term (('+' | '-') term)*
//	term   -> factor (('*' | '/') factor)*
//	factor -> ('+' | '-') factor | atom
//	atom   -> NUMBER | '(' expr ')'
//
// Evaluation happens during the descent; no syntax tree is built.
func Eval(expr string) (Number, error) {
	buffer := newTokenBuffer()
	if err := lex(expr, buffer.Write); err != nil {
		return Number{}, err
	}

	p := parser{reader: buffer}
	return p.scan()
}

type parser struct {
	reader tokenReader
}

func (p *parser) scan() (Number, error) {
	result, err := p.scanExpr()
	if err != nil {
		return Number{}, err
	}

	tok, done := p.reader.Peek()
	if !done {
		return Number{}, parseErrorf("Unexpected token: '%s'", tokenValueString(tok))
	}

	return result, nil
}

func (p *parser) scanExpr() (Number, error) {
	left, err := p.scanTerm()
	if err != nil {
		return Number{}, err
	}

	for {
		opToken, done := p.reader.Peek()
		if done {
			break
		}
		if opToken.tokType != tokenTypePlus && opToken.tokType != tokenTypeMinus {
			break
		}
		p.reader.Next()

		right, err := p.scanTerm()
		if err != nil {
			return Number{}, err
		}

		if opToken.tokType == tokenTypePlus {
			left = left.add(right)
		} else {
			left = left.sub(right)
		}
	}

	return left, nil
}

func (p *parser) scanTerm() (Number, error) {
	left, err := p.scanFactor()
	if err != nil {
		return Number{}, err
	}

	for {
		opToken, done := p.reader.Peek()
		if done {
			break
		}
		if opToken.tokType != tokenTypeAsterisk && opToken.tokType != tokenTypeSlash {
			break
		}
		p.reader.Next()

		right, err := p.scanFactor()
		if err != nil {
			return Number{}, err
		}

		if opToken.tokType == tokenTypeAsterisk {
			left = left.mul(right)
		} else {
			// checked before dividing, for int and float zero alike
			if right.isZero() {
				return Number{}, parseErrorf("Division by zero")
			}
			left = left.div(right)
		}
	}

	return left, nil
}

func (p *parser) scanFactor() (Number, error) {
	tok, done := p.reader.Peek()
	if !done && tok.tokType == tokenTypePlus {
		p.reader.Next()
		return p.scanFactor()
	}
	if !done && tok.tokType == tokenTypeMinus {
		p.reader.Next()
		right, err := p.scanFactor()
		if err != nil {
			return Number{}, err
		}
		return right.neg(), nil
	}
	return p.scanAtom()
}

func (p *parser) scanAtom() (Number, error) {
	tok, done := p.reader.Next()
	if done {
		return Number{}, parseErrorf("Unexpected end of expression")
	}

	if tok.tokType == tokenTypeLParen {
		result, err := p.scanExpr()
		if err != nil {
			return Number{}, err
		}
		if err := p.expect(tokenTypeRParen); err != nil {
			return Number{}, err
		}
		return result, nil
	}

	if tok.tokType != tokenTypeNumber {
		return Number{}, parseErrorf("Unexpected token: '%s'", tokenValueString(tok))
	}

	text := string(tok.value)
	if strings.ContainsRune(text, '.') {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Number{}, parseErrorf("Invalid number: '%s'", text)
		}
		return floatNumber(f), nil
	}

	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Number{}, parseErrorf("Invalid number: '%s'", text)
	}
	return intNumber(i), nil
}

func (p *parser) expect(expected tokenType) error {
	want := tokenValueString(token{tokType: expected})

	tok, done := p.reader.Next()
	if done {
		return parseErrorf("Expected '%s', got EOF", want)
	}
	if tok.tokType != expected {
		return parseErrorf("Expected '%s', got '%s'", want, tokenValueString(tok))
	}
	return nil
}
