package parser

import (
	"context"
	"testing"
	"time"
	"unicode/utf8"
)

// FuzzParse tests that the parser never panics on arbitrary input. The
// parser must either return a valid AST or an error, never both and
// never neither.
func FuzzParse(f *testing.F) {
	seeds := []string{
		// Basic expressions
		"1 + 2",
		"x",
		"true",
		"false",
		"\"hello\"",
		"[]",
		"{}",
		"[1, 2, 3]",
		"{\"a\": 1, \"b\": 2}",

		// Operators
		"a + b - c * d / e",
		"-x",
		"!flag",
		"a == b != c",
		"a < b > c",

		// Statements
		"let x = 1",
		"let x = 1; let y = 2;",
		"return 42",
		"return add(1, 2);",

		// Functions
		"fn() { }",
		"fn(a, b) { return a + b }",
		"fn(x) { x }(5)",

		// Control flow
		"if (x) { y }",
		"if (x) { y } else { z }",

		// Index and calls
		"arr[0]",
		"arr[1 + 1]",
		"f(g(h(x)))",
		"arr[0][1][2]",
		"((((x))))",

		// Comments
		"x // comment\ny",

		// Edge cases - invalid but should not crash
		"",
		" ",
		"\n",
		"@",
		"(",
		")",
		"[",
		"]",
		"{",
		"}",
		"let",
		"let x",
		"let x =",
		"let x 5",
		"if",
		"if ()",
		"if (x)",
		"fn",
		"fn(",
		"fn()",
		"1 +",
		"+ 1",
		"((",
		"))",
		"return",
		"return return",
		"let let",
		"1 2 3",
		"else",
		"{\"a\"",
		"{\"a\":",
		"\"unterminated",

		// Numbers
		"0",
		"2147483647",
		"2147483648",
		"999999999999999999999999999999",

		// Unicode in strings
		"\"日本語\"",
		"\"emoji: 🎉\"",

		// Long nesting
		"((((((((((((((((((((x))))))))))))))))))))",
		"[[[[[[[[[[[[[[[[[[[x]]]]]]]]]]]]]]]]]]]",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		if len(input) > 10000 {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		defer func() {
			if r := recover(); r != nil {
				t.Errorf("parser panicked on input %q: %v", truncate(input, 100), r)
			}
		}()

		program, err := Parse(ctx, input)

		// All-or-nothing: exactly one of program and err is set.
		if err == nil && program == nil {
			t.Errorf("nil program without error for input %q", truncate(input, 100))
		}
		if err != nil && program != nil {
			t.Errorf("partial program returned with error for input %q", truncate(input, 100))
		}

		if program != nil {
			rendered := program.String()
			if !utf8.ValidString(rendered) && utf8.ValidString(input) {
				t.Errorf("rendering produced invalid UTF-8 for input %q", truncate(input, 100))
			}
			// Rendering must be stable
			if rendered != program.String() {
				t.Errorf("String() not consistent for input %q", truncate(input, 100))
			}
		}
	})
}

// FuzzParseRoundTrip checks that rendering a parsed program and parsing the
// result reaches a fixed point.
func FuzzParseRoundTrip(f *testing.F) {
	seeds := []string{
		"1 + 2 * 3",
		"let x = 5",
		"fn(a, b) { return a + b }",
		"if (x < y) { x } else { y }",
		"[1, 2, 3][0]",
		"add(1, 2 * 3, 4 + 5)",
		"-a * b",
		"!(true == true)",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		if len(input) > 5000 {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		defer func() {
			if r := recover(); r != nil {
				t.Errorf("panic on input %q: %v", truncate(input, 100), r)
			}
		}()

		program, err := Parse(ctx, input)
		if err != nil {
			return
		}
		first := program.String()

		// The canonical form for string literals drops the quotes, so the
		// fixed point only holds from the second rendering onward.
		reparsed, err := Parse(ctx, first)
		if err != nil {
			return
		}
		second := reparsed.String()

		final, err := Parse(ctx, second)
		if err != nil {
			t.Errorf("canonical text failed to re-parse: %q (from %q)", second, truncate(input, 100))
			return
		}
		if final.String() != second {
			t.Errorf("render not idempotent: %q -> %q (from %q)",
				second, final.String(), truncate(input, 100))
		}
	})
}

// truncate shortens a string for display in failure messages.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
