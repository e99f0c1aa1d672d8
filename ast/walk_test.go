package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleProgram() *Program {
	// let add = fn(x, y) { return x + y }
	// add(1, 2)[0]
	return &Program{
		Stmts: []Stmt{
			&Let{
				Name: ident("add"),
				Value: &Func{
					Params: []*Ident{ident("x"), ident("y")},
					Body: &Block{
						Stmts: []Stmt{
							&Return{Value: infix(ident("x"), "+", ident("y"))},
						},
					},
				},
			},
			&ExprStmt{
				X: &Index{
					X: &Call{
						Fun:  ident("add"),
						Args: []Expr{intLit("1", 1), intLit("2", 2)},
					},
					Index: intLit("0", 0),
				},
			},
		},
	}
}

func TestInspect(t *testing.T) {
	var idents []string
	Inspect(sampleProgram(), func(n Node) bool {
		if id, ok := n.(*Ident); ok {
			idents = append(idents, id.Name)
		}
		return true
	})
	require.Equal(t, []string{"add", "x", "y", "x", "y", "add"}, idents)
}

func TestInspectPrunes(t *testing.T) {
	count := 0
	Inspect(sampleProgram(), func(n Node) bool {
		count++
		_, isFunc := n.(*Func)
		return !isFunc // skip function bodies
	})
	// Program, Let, Ident(add), Func, ExprStmt, Index, Call,
	// Ident(add), Int(1), Int(2), Int(0)
	require.Equal(t, 11, count)
}

func TestWalkHash(t *testing.T) {
	h := &Hash{
		Items: []HashItem{
			{Key: &String{Value: "a"}, Value: intLit("1", 1)},
			{Key: &String{Value: "b"}, Value: infix(intLit("2", 2), "*", intLit("3", 3))},
		},
	}
	var ints []int32
	Inspect(h, func(n Node) bool {
		if i, ok := n.(*Int); ok {
			ints = append(ints, i.Value)
		}
		return true
	})
	require.Equal(t, []int32{1, 2, 3}, ints)
}

func TestPreorder(t *testing.T) {
	var kinds []string
	for n := range Preorder(sampleProgram()) {
		switch n.(type) {
		case *Program:
			kinds = append(kinds, "program")
		case *Let:
			kinds = append(kinds, "let")
		case *Func:
			kinds = append(kinds, "func")
		case *Return:
			kinds = append(kinds, "return")
		}
	}
	require.Equal(t, []string{"program", "let", "func", "return"}, kinds)
}

func TestPreorderEarlyStop(t *testing.T) {
	seen := 0
	for range Preorder(sampleProgram()) {
		seen++
		if seen == 3 {
			break
		}
	}
	require.Equal(t, 3, seen)
}
