package lib

type tokenType int

const (
	tokenTypeNumber tokenType = iota
	tokenTypeLParen
	tokenTypeRParen
	tokenTypePlus
	tokenTypeMinus
	tokenTypeAsterisk
	tokenTypeSlash
)

// token is immutable once emitted. Number tokens keep their original text;
// pos is the zero-based rune offset of the token's first character.
type token struct {
	tokType tokenType
	value   []rune
	pos     int
}

func tokenValueString(tok token) string {
	switch tok.tokType {
	case tokenTypeNumber:
		return string(tok.value)
	case tokenTypeLParen:
		return "("
	case tokenTypeRParen:
		return ")"
	case tokenTypePlus:
		return "+"
	case tokenTypeMinus:
		return "-"
	case tokenTypeAsterisk:
		return "*"
	case tokenTypeSlash:
		return "/"
	default:
		return "?"
	}
}
