package ast

import (
	"bytes"
	"strings"

	"github.com/monkey-lang/monkey/internal/token"
)

// Ident is an expression node that refers to a value by name.
type Ident struct {
	NamePos token.Position // position of identifier
	Name    string         // identifier name
}

func (x *Ident) exprNode() {}

func (x *Ident) Pos() token.Position { return x.NamePos }
func (x *Ident) End() token.Position { return x.NamePos.Advance(len(x.Name)) }

func (x *Ident) String() string { return x.Name }

// Prefix is an operator expression where the operator precedes the operand.
// Examples include "!ok" and "-x".
type Prefix struct {
	OpPos token.Position // position of operator
	Op    string         // operator: "!" or "-"
	X     Expr           // operand
}

func (x *Prefix) exprNode() {}

func (x *Prefix) Pos() token.Position { return x.OpPos }
func (x *Prefix) End() token.Position { return x.X.End() }

func (x *Prefix) String() string {
	return x.Op + exprText(x.X)
}

// Infix is an operator expression where the operator is between the operands.
// Examples include "x + y" and "5 - 1".
type Infix struct {
	X     Expr           // left operand
	OpPos token.Position // position of operator
	Op    string         // operator: "+", "-", "*", "/", "==", "!=", "<", ">"
	Y     Expr           // right operand
}

func (x *Infix) exprNode() {}

func (x *Infix) Pos() token.Position { return x.X.Pos() }
func (x *Infix) End() token.Position { return x.Y.End() }

func (x *Infix) String() string {
	var out bytes.Buffer
	out.WriteString(exprText(x.X))
	out.WriteString(" " + x.Op + " ")
	out.WriteString(exprText(x.Y))
	return out.String()
}

// If is an expression node that evaluates one of two blocks based on a
// condition. The else branch is optional.
type If struct {
	If          token.Position // position of "if" keyword
	Cond        Expr           // condition
	Consequence *Block         // then branch
	Alternative *Block         // else branch; nil if no else
}

func (x *If) exprNode() {}

func (x *If) Pos() token.Position { return x.If }
func (x *If) End() token.Position {
	if x.Alternative != nil {
		return x.Alternative.End()
	}
	return x.Consequence.End()
}

func (x *If) String() string {
	var out bytes.Buffer
	out.WriteString("if (")
	out.WriteString(x.Cond.String())
	out.WriteString(") ")
	out.WriteString(x.Consequence.String())
	if x.Alternative != nil {
		out.WriteString(" else ")
		out.WriteString(x.Alternative.String())
	}
	return out.String()
}

// Call is an expression node that describes the invocation of a function.
type Call struct {
	Fun    Expr           // callee expression
	Lparen token.Position // position of "("
	Args   []Expr         // arguments in source order
	Rparen token.Position // position of ")"
}

func (x *Call) exprNode() {}

func (x *Call) Pos() token.Position { return x.Fun.Pos() }
func (x *Call) End() token.Position { return x.Rparen.Advance(1) }

func (x *Call) String() string {
	var out bytes.Buffer
	args := make([]string, 0, len(x.Args))
	for _, a := range x.Args {
		args = append(args, exprText(a))
	}
	out.WriteString(x.Fun.String())
	out.WriteString("(")
	out.WriteString(strings.Join(args, ", "))
	out.WriteString(")")
	return out.String()
}

// Index is an expression node that subscripts a target expression, as in
// "items[i]" or "pairs["key"]".
type Index struct {
	X      Expr           // the indexed target
	Lbrack token.Position // position of "["
	Index  Expr           // the subscript
	Rbrack token.Position // position of "]"
}

func (x *Index) exprNode() {}

func (x *Index) Pos() token.Position { return x.X.Pos() }
func (x *Index) End() token.Position { return x.Rbrack.Advance(1) }

func (x *Index) String() string {
	return exprText(x.X) + "[" + exprText(x.Index) + "]"
}
