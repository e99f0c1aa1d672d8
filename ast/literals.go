package ast

import (
	"bytes"
	"strings"

	"github.com/monkey-lang/monkey/internal/token"
)

// Int is an expression node that holds an integer literal. Monkey integers
// are 32-bit signed values.
type Int struct {
	ValuePos token.Position // position of the literal
	Literal  string         // the literal text (e.g., "42")
	Value    int32          // the parsed value
}

func (x *Int) exprNode() {}

func (x *Int) Pos() token.Position { return x.ValuePos }
func (x *Int) End() token.Position { return x.ValuePos.Advance(len(x.Literal)) }

func (x *Int) String() string { return x.Literal }

// String is an expression node that holds a string literal.
type String struct {
	ValuePos token.Position // position of the opening quote
	Value    string         // the unquoted string value
}

func (x *String) exprNode() {}

func (x *String) Pos() token.Position { return x.ValuePos }

// End assumes the literal spans its value plus the two quote characters.
// Escape sequences in the source make the true span slightly longer.
func (x *String) End() token.Position { return x.ValuePos.Advance(len(x.Value) + 2) }

func (x *String) String() string { return x.Value }

// Bool is an expression node that holds a boolean literal.
type Bool struct {
	ValuePos token.Position // position of "true" or "false"
	Value    bool           // the boolean value
}

func (x *Bool) exprNode() {}

func (x *Bool) Pos() token.Position { return x.ValuePos }
func (x *Bool) End() token.Position {
	if x.Value {
		return x.ValuePos.Advance(4) // len("true")
	}
	return x.ValuePos.Advance(5) // len("false")
}

func (x *Bool) String() string {
	if x.Value {
		return "true"
	}
	return "false"
}

// Null is the sentinel expression used where parsing could not produce a
// value. The parser propagates a structured error instead of emitting Null;
// the type remains part of the node model for consumers that degrade
// malformed sub-expressions rather than failing outright.
type Null struct {
	NullPos token.Position
}

func (x *Null) exprNode() {}

func (x *Null) Pos() token.Position { return x.NullPos }
func (x *Null) End() token.Position { return x.NullPos }

func (x *Null) String() string { return "null" }

// Func is an expression node that holds a function literal, e.g.
// "fn(x, y) { x + y }".
type Func struct {
	Func   token.Position // position of "fn" keyword
	Lparen token.Position // position of "("
	Params []*Ident       // parameter names in source order
	Rparen token.Position // position of ")"
	Body   *Block         // function body
}

func (x *Func) exprNode() {}

func (x *Func) Pos() token.Position { return x.Func }
func (x *Func) End() token.Position { return x.Body.End() }

func (x *Func) String() string {
	var out bytes.Buffer
	params := make([]string, 0, len(x.Params))
	for _, p := range x.Params {
		params = append(params, p.Name)
	}
	out.WriteString("fn(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") ")
	out.WriteString(x.Body.String())
	return out.String()
}

// Array is an expression node that builds an array from an ordered list of
// element expressions.
type Array struct {
	Lbrack token.Position // position of "["
	Elems  []Expr         // element expressions
	Rbrack token.Position // position of "]"
}

func (x *Array) exprNode() {}

func (x *Array) Pos() token.Position { return x.Lbrack }
func (x *Array) End() token.Position { return x.Rbrack.Advance(1) }

func (x *Array) String() string {
	var out bytes.Buffer
	elems := make([]string, 0, len(x.Elems))
	for _, el := range x.Elems {
		elems = append(elems, exprText(el))
	}
	out.WriteString("[")
	out.WriteString(strings.Join(elems, ", "))
	out.WriteString("]")
	return out.String()
}

// HashItem is a single key-value pair in a hash literal. Both the key and
// the value are full expressions.
type HashItem struct {
	Key   Expr
	Value Expr
}

// Hash is an expression node that builds a hash (map) data structure. Items
// are held sorted by the rendered text of their keys, so two hash literals
// with the same pairs render identically regardless of source order.
type Hash struct {
	Lbrace token.Position // position of "{"
	Items  []HashItem     // key-sorted items
	Rbrace token.Position // position of "}"
}

func (x *Hash) exprNode() {}

func (x *Hash) Pos() token.Position { return x.Lbrace }
func (x *Hash) End() token.Position { return x.Rbrace.Advance(1) }

func (x *Hash) String() string {
	var out bytes.Buffer
	pairs := make([]string, 0, len(x.Items))
	for _, item := range x.Items {
		pairs = append(pairs, item.Key.String()+": "+exprText(item.Value))
	}
	out.WriteString("{")
	out.WriteString(strings.Join(pairs, ", "))
	out.WriteString("}")
	return out.String()
}
