package parser

import (
	"context"
	"testing"

	"github.com/monkey-lang/monkey/internal/token"
	"github.com/stretchr/testify/require"
)

// Parser error tests (errors.go)
// - Structured error fields
// - Friendly formatted output
// - Lexer errors surfacing as syntax errors

func TestUnexpectedTokenErrorFields(t *testing.T) {
	_, err := Parse(context.Background(), "let x 5;", WithFilename("main.monkey"))
	require.Error(t, err)

	pe, ok := err.(ParserError)
	require.True(t, ok)
	require.Equal(t, "parse error", pe.Type())
	require.Equal(t, "main.monkey", pe.File())
	require.Equal(t, "let x 5;", pe.SourceCode())
	require.Equal(t, 1, pe.StartPosition().LineNumber())
	require.Equal(t, 7, pe.StartPosition().ColumnNumber())
	require.Contains(t, pe.Message(), `unexpected token "5"`)
}

func TestFriendlyErrorMessage(t *testing.T) {
	_, err := Parse(context.Background(), "let x 5;", WithFilename("main.monkey"))
	require.Error(t, err)

	fe, ok := err.(interface{ FriendlyErrorMessage() string })
	require.True(t, ok)
	msg := fe.FriendlyErrorMessage()
	require.Contains(t, msg, "parse error[E2001]")
	require.Contains(t, msg, "--> main.monkey:1:7")
	require.Contains(t, msg, "let x 5;")
	require.Contains(t, msg, "^")
	require.Contains(t, msg, `hint: expected "=" after the variable name`)
}

func TestLexerErrorIsSyntaxError(t *testing.T) {
	_, err := Parse(context.Background(), `let s = "abc`)
	require.Error(t, err)

	pe, ok := err.(ParserError)
	require.True(t, ok)
	require.Equal(t, "syntax error", pe.Type())
	require.Contains(t, err.Error(), "unterminated string literal")
}

func TestErrorPositionOnLaterLine(t *testing.T) {
	input := "let a = 1;\nlet b = 2;\nlet c 3;\n"
	_, err := Parse(context.Background(), input, WithFilename("multi.monkey"))
	require.Error(t, err)

	pe, ok := err.(ParserError)
	require.True(t, ok)
	require.Equal(t, 3, pe.StartPosition().LineNumber())
	require.Equal(t, "let c 3;", pe.SourceCode())
}

func TestTokenDescriptions(t *testing.T) {
	require.Equal(t, "end of file", tokenTypeDescription(token.EOF))
	require.Equal(t, "identifier", tokenTypeDescription(token.IDENT))
	require.Equal(t, `"="`, tokenTypeDescription(token.ASSIGN))
	require.Equal(t, `"}"`, tokenTypeDescription(token.RBRACE))

	require.Equal(t, "end of file", tokenDescription(token.Token{Type: token.EOF}))
	require.Equal(t, `token "5"`, tokenDescription(token.Token{Type: token.INT, Literal: "5"}))
	require.Equal(t, `token "@"`, tokenDescription(token.Token{Type: token.ILLEGAL, Literal: "@"}))
}
