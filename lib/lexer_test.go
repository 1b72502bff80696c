package lib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// A test helper function that just aggregates tokens into a slice for easier
// assertions.
func getTokens(expr string) ([]token, error) {
	tokens := []token{}
	err := lex(expr, func(t token) {
		tokens = append(tokens, t)
	})
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

func requireTok(t *testing.T, actual token, typ tokenType, value string, pos int) {
	require.Equal(t, typ, actual.tokType, "token type")
	require.Equal(t, value, string(actual.value), "token value")
	require.Equal(t, pos, actual.pos, "token pos")
}

func TestLexerSingleInteger(t *testing.T) {
	tokens, err := getTokens("42")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	requireTok(t, tokens[0], tokenTypeNumber, "42", 0)
}

func TestLexerFloat(t *testing.T) {
	tokens, err := getTokens("3.14")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	requireTok(t, tokens[0], tokenTypeNumber, "3.14", 0)
}

func TestLexerLeadingDot(t *testing.T) {
	tokens, err := getTokens(".5")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	requireTok(t, tokens[0], tokenTypeNumber, ".5", 0)
}

func TestLexerOperators(t *testing.T) {
	tokens, err := getTokens("1+2-3*4/5")
	require.NoError(t, err)
	require.Len(t, tokens, 9)
	requireTok(t, tokens[0], tokenTypeNumber, "1", 0)
	requireTok(t, tokens[1], tokenTypePlus, "", 1)
	requireTok(t, tokens[2], tokenTypeNumber, "2", 2)
	requireTok(t, tokens[3], tokenTypeMinus, "", 3)
	requireTok(t, tokens[4], tokenTypeNumber, "3", 4)
	requireTok(t, tokens[5], tokenTypeAsterisk, "", 5)
	requireTok(t, tokens[6], tokenTypeNumber, "4", 6)
	requireTok(t, tokens[7], tokenTypeSlash, "", 7)
	requireTok(t, tokens[8], tokenTypeNumber, "5", 8)
}

func TestLexerParens(t *testing.T) {
	tokens, err := getTokens("(1)")
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	requireTok(t, tokens[0], tokenTypeLParen, "", 0)
	requireTok(t, tokens[1], tokenTypeNumber, "1", 1)
	requireTok(t, tokens[2], tokenTypeRParen, "", 2)
}

func TestLexerWhitespaceSkipped(t *testing.T) {
	tokens, err := getTokens(" \t1 +\n2 ")
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	requireTok(t, tokens[0], tokenTypeNumber, "1", 2)
	requireTok(t, tokens[1], tokenTypePlus, "", 4)
	requireTok(t, tokens[2], tokenTypeNumber, "2", 6)
}

func TestLexerSecondDotEndsLiteral(t *testing.T) {
	tokens, err := getTokens("1.2.3")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	requireTok(t, tokens[0], tokenTypeNumber, "1.2", 0)
	requireTok(t, tokens[1], tokenTypeNumber, ".3", 3)
}

func TestLexerBareDots(t *testing.T) {
	tokens, err := getTokens("..5")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	requireTok(t, tokens[0], tokenTypeNumber, ".", 0)
	requireTok(t, tokens[1], tokenTypeNumber, ".5", 1)
}

func TestLexerEmptyInput(t *testing.T) {
	tokens, err := getTokens("")
	require.NoError(t, err)
	require.Len(t, tokens, 0)
}

func TestLexerUnexpectedCharacter(t *testing.T) {
	_, err := getTokens("1 + x")
	require.Error(t, err)

	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
	require.Equal(t, 'x', lexErr.Char)
	require.Equal(t, 4, lexErr.Pos)
	require.Equal(t, "Unexpected character: 'x' at position 4", err.Error())
}

func TestLexerStopsAtFirstBadCharacter(t *testing.T) {
	_, err := getTokens("$%")
	require.Error(t, err)

	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
	require.Equal(t, '$', lexErr.Char)
	require.Equal(t, 0, lexErr.Pos)
}
