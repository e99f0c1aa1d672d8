package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatBasic(t *testing.T) {
	f := NewFormatter(false)
	out := f.Format(&FormattedError{
		Code:     CodeUnexpectedToken,
		Kind:     "parse error",
		Message:  "unexpected token \"5\"",
		Filename: "main.monkey",
		Line:     1,
		Column:   7,
		SourceLines: []SourceLineEntry{
			{Number: 1, Text: "let x 5;", IsMain: true},
		},
	})
	require.Contains(t, out, "parse error[E2001]: unexpected token \"5\"")
	require.Contains(t, out, "--> main.monkey:1:7")
	require.Contains(t, out, " 1 | let x 5;")
	require.Contains(t, out, "^")
}

func TestFormatCaretSpansToken(t *testing.T) {
	f := NewFormatter(false)
	out := f.Format(&FormattedError{
		Message:   "unexpected token \"foobar\"",
		Line:      1,
		Column:    5,
		EndColumn: 10,
		SourceLines: []SourceLineEntry{
			{Number: 1, Text: "1 + foobar +", IsMain: true},
		},
	})
	require.Contains(t, out, "^^^^^^")
}

func TestFormatHintAndNote(t *testing.T) {
	f := NewFormatter(false)
	out := f.Format(&FormattedError{
		Message: "unexpected token \"5\"",
		Line:    1,
		Column:  7,
		Hint:    "expected \"=\" after the variable name",
		Note:    "let statements have the form: let <name> = <expression>",
	})
	require.Contains(t, out, "hint: expected \"=\" after the variable name")
	require.Contains(t, out, "note: let statements have the form")
}

func TestFormatMultiple(t *testing.T) {
	f := NewFormatter(false)
	out := f.FormatMultiple([]*FormattedError{
		{Message: "first", Line: 1, Column: 1},
		{Message: "second", Line: 2, Column: 1},
	})
	require.Contains(t, out, "error[1/2]: first")
	require.Contains(t, out, "error[2/2]: second")
	require.Contains(t, out, "found 2 errors")
}

func TestSourceLocationString(t *testing.T) {
	require.Equal(t, "main.monkey:3:9", SourceLocation{Filename: "main.monkey", Line: 3, Column: 9}.String())
	require.Equal(t, "3:9", SourceLocation{Line: 3, Column: 9}.String())
	require.True(t, SourceLocation{}.IsZero())
}
