package ast

import (
	"bytes"
	"strings"

	"github.com/monkey-lang/monkey/internal/token"
)

// Let is a statement that binds the value of an expression to a name.
type Let struct {
	Let   token.Position // position of "let" keyword
	Name  *Ident         // the name being bound
	Value Expr           // the bound value
}

func (s *Let) stmtNode() {}

func (s *Let) Pos() token.Position { return s.Let }
func (s *Let) End() token.Position { return s.Value.End() }

func (s *Let) String() string {
	var out bytes.Buffer
	out.WriteString("let ")
	out.WriteString(s.Name.Name)
	out.WriteString(" = ")
	out.WriteString(s.Value.String())
	return out.String()
}

// Return is a statement that returns a value from the enclosing function.
type Return struct {
	Return token.Position // position of "return" keyword
	Value  Expr           // the returned value
}

func (s *Return) stmtNode() {}

func (s *Return) Pos() token.Position { return s.Return }
func (s *Return) End() token.Position { return s.Value.End() }

func (s *Return) String() string {
	return "return " + s.Value.String()
}

// ExprStmt is a statement consisting of one expression used in statement
// position, e.g. "x + 1;".
type ExprStmt struct {
	X Expr
}

func (s *ExprStmt) stmtNode() {}

func (s *ExprStmt) Pos() token.Position { return s.X.Pos() }
func (s *ExprStmt) End() token.Position { return s.X.End() }

func (s *ExprStmt) String() string { return s.X.String() }

// Block is an ordered sequence of statements enclosed in braces. Blocks form
// the bodies of if expressions and function literals.
type Block struct {
	Lbrace token.Position // position of "{"
	Stmts  []Stmt         // statements in source order
	Rbrace token.Position // position of "}"
}

func (s *Block) stmtNode() {}

func (s *Block) Pos() token.Position { return s.Lbrace }
func (s *Block) End() token.Position { return s.Rbrace.Advance(1) }

func (s *Block) String() string {
	if len(s.Stmts) == 0 {
		return "{ }"
	}
	stmts := make([]string, 0, len(s.Stmts))
	for _, stmt := range s.Stmts {
		stmts = append(stmts, stmt.String())
	}
	return "{ " + strings.Join(stmts, "; ") + " }"
}
