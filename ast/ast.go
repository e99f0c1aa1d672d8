// Package ast defines the abstract syntax tree representation of Monkey code.
package ast

import (
	"strings"

	"github.com/monkey-lang/monkey/internal/token"
)

// Node represents a portion of the syntax tree. All nodes have position
// information indicating where they appear in the source code.
type Node interface {
	// Pos returns the position of the first character belonging to the node.
	Pos() token.Position

	// End returns the position of the first character immediately after the node.
	End() token.Position

	// String returns the canonical textual form of the node. The rendering is
	// deterministic and parenthesization-explicit for operator expressions, so
	// that rendering, re-parsing, and rendering again yields the same text.
	String() string
}

// Stmt represents a statement node. A program is an ordered sequence of
// statements.
type Stmt interface {
	Node
	stmtNode()
}

// Expr represents an expression node. Expressions evaluate to a value
// and may be embedded within other expressions.
type Expr interface {
	Node
	exprNode()
}

// Program is the root node: an ordered sequence of top-level statements.
type Program struct {
	Stmts []Stmt
}

func (p *Program) Pos() token.Position {
	if len(p.Stmts) > 0 {
		return p.Stmts[0].Pos()
	}
	return token.NoPos
}

func (p *Program) End() token.Position {
	if n := len(p.Stmts); n > 0 {
		return p.Stmts[n-1].End()
	}
	return token.NoPos
}

func (p *Program) String() string {
	stmts := make([]string, 0, len(p.Stmts))
	for _, s := range p.Stmts {
		stmts = append(stmts, s.String())
	}
	return strings.Join(stmts, "\n")
}

// exprText renders an expression, wrapping it in parentheses when it is a
// composite form whose textual rendering would otherwise be ambiguous in
// operand position. Leaf expressions and bracketed literals render bare.
func exprText(e Expr) string {
	switch e.(type) {
	case *Prefix, *Infix, *Index, *If, *Func:
		return "(" + e.String() + ")"
	default:
		return e.String()
	}
}
