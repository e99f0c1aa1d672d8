package main

import (
	"context"
	"testing"

	"github.com/monkey-lang/monkey/ast"
	"github.com/monkey-lang/monkey/parser"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func parseProgram(t *testing.T, code string) *ast.Program {
	t.Helper()
	program, err := parser.Parse(context.Background(), code)
	require.NoError(t, err)
	return program
}

func TestNodeToJSON(t *testing.T) {
	root := nodeToJSON(parseProgram(t, "let x = 1 + 2"))
	require.Equal(t, "Program", root.Type)
	require.Len(t, root.Children, 1)

	let := root.Children[0]
	require.Equal(t, "Let", let.Type)
	require.Equal(t, "x", let.Value)
	require.Len(t, let.Children, 1)

	infix := let.Children[0]
	require.Equal(t, "Infix", infix.Type)
	require.Equal(t, "+", infix.Value)
	require.Len(t, infix.Children, 2)
	require.Equal(t, "Int", infix.Children[0].Type)
	require.Equal(t, int32(1), infix.Children[0].Value)
	require.Equal(t, int32(2), infix.Children[1].Value)
}

func TestNodeToJSONIfBranches(t *testing.T) {
	root := nodeToJSON(parseProgram(t, "if (x) { y } else { z }"))
	ifNode := root.Children[0].Children[0]
	require.Equal(t, "If", ifNode.Type)
	require.Len(t, ifNode.Children, 3)
	require.Equal(t, "Condition", ifNode.Children[0].Type)
	require.Equal(t, "Then", ifNode.Children[1].Type)
	require.Equal(t, "Else", ifNode.Children[2].Type)
}

func TestNodeToJSONWithoutElse(t *testing.T) {
	root := nodeToJSON(parseProgram(t, "if (x) { y }"))
	ifNode := root.Children[0].Children[0]
	require.Len(t, ifNode.Children, 2)
}

func TestNodeToJSONHashPairs(t *testing.T) {
	root := nodeToJSON(parseProgram(t, `{"a": 1, "b": 2}`))
	hash := root.Children[0].Children[0]
	require.Equal(t, "Hash", hash.Type)
	require.Len(t, hash.Children, 2)
	for _, pair := range hash.Children {
		require.Equal(t, "Pair", pair.Type)
		require.Len(t, pair.Children, 2)
	}
	require.Equal(t, "a", hash.Children[0].Children[0].Value)
	require.Equal(t, "b", hash.Children[1].Children[0].Value)
}

func TestNodeToJSONFunc(t *testing.T) {
	root := nodeToJSON(parseProgram(t, "fn(a, b) { a }"))
	fn := root.Children[0].Children[0]
	require.Equal(t, "Func", fn.Type)
	require.Equal(t, "a, b", fn.Value)
	require.Len(t, fn.Children, 1)
	require.Equal(t, "Block", fn.Children[0].Type)
}

func TestNodeToJSONNil(t *testing.T) {
	require.Nil(t, nodeToJSON(nil))
}

func TestNodeTypeName(t *testing.T) {
	require.Equal(t, "Program", nodeTypeName(&ast.Program{}))
	require.Equal(t, "Int", nodeTypeName(&ast.Int{}))
	require.Equal(t, "ExprStmt", nodeTypeName(&ast.ExprStmt{}))
}

func TestPrintAST(t *testing.T) {
	withoutColor(t)

	tests := []struct {
		name     string
		code     string
		contains []string
	}{
		{
			name:     "integer",
			code:     "42",
			contains: []string{"Program", "ExprStmt", "Int", "42"},
		},
		{
			name:     "let statement",
			code:     "let x = 1",
			contains: []string{"Let", "x", "Int", "1"},
		},
		{
			name:     "infix expression",
			code:     "1 + 2",
			contains: []string{"Infix", "+"},
		},
		{
			name:     "function",
			code:     "fn(a, b) { return a + b }",
			contains: []string{"Func", "fn(a, b)", "Block", "Return"},
		},
		{
			name:     "string literal",
			code:     `"hello"`,
			contains: []string{"String", `"hello"`},
		},
		{
			name:     "array literal",
			code:     "[1, 2, 3]",
			contains: []string{"Array", "(3 elems)"},
		},
		{
			name:     "hash literal",
			code:     "{a: 1, b: 2}",
			contains: []string{"Hash", "(2 pairs)"},
		},
		{
			name:     "index expression",
			code:     "list[0]",
			contains: []string{"Index", "Ident", "Int"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program := parseProgram(t, tt.code)
			out := captureStdout(t, func() { printAST(program) })
			for _, want := range tt.contains {
				require.Contains(t, out, want, "output:\n%s", out)
			}
		})
	}
}

func TestPrintNodeNilIsSafe(t *testing.T) {
	printNode(nil, "", true)
}

func TestPrintASTStats(t *testing.T) {
	viper.Set("no-color", true)
	t.Cleanup(func() { viper.Set("no-color", false) })

	program := parseProgram(t, "1 + 2")
	var err error
	out := captureStdout(t, func() { err = printASTStats(program) })
	require.NoError(t, err)
	require.Contains(t, out, `"Program": 1`)
	require.Contains(t, out, `"Infix": 1`)
	require.Contains(t, out, `"Int": 2`)
}
