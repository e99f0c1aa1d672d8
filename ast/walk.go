package ast

import "iter"

// Visitor defines the interface for AST traversal. If Visit returns nil,
// children of the node are not visited. Otherwise, the returned Visitor
// is used to visit children.
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first order. It starts by calling
// v.Visit(node); if the returned visitor w is not nil, Walk is invoked
// recursively with visitor w for each of the non-nil children of node.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, stmt := range n.Stmts {
			Walk(v, stmt)
		}

	// Statements
	case *Let:
		if n.Name != nil {
			Walk(v, n.Name)
		}
		if n.Value != nil {
			Walk(v, n.Value)
		}
	case *Return:
		if n.Value != nil {
			Walk(v, n.Value)
		}
	case *ExprStmt:
		if n.X != nil {
			Walk(v, n.X)
		}
	case *Block:
		for _, stmt := range n.Stmts {
			Walk(v, stmt)
		}

	// Expressions
	case *Ident, *Int, *String, *Bool, *Null:
		// No children
	case *Prefix:
		if n.X != nil {
			Walk(v, n.X)
		}
	case *Infix:
		if n.X != nil {
			Walk(v, n.X)
		}
		if n.Y != nil {
			Walk(v, n.Y)
		}
	case *If:
		if n.Cond != nil {
			Walk(v, n.Cond)
		}
		if n.Consequence != nil {
			Walk(v, n.Consequence)
		}
		if n.Alternative != nil {
			Walk(v, n.Alternative)
		}
	case *Func:
		for _, p := range n.Params {
			Walk(v, p)
		}
		if n.Body != nil {
			Walk(v, n.Body)
		}
	case *Call:
		if n.Fun != nil {
			Walk(v, n.Fun)
		}
		for _, arg := range n.Args {
			Walk(v, arg)
		}
	case *Array:
		for _, el := range n.Elems {
			Walk(v, el)
		}
	case *Hash:
		for _, item := range n.Items {
			Walk(v, item.Key)
			Walk(v, item.Value)
		}
	case *Index:
		if n.X != nil {
			Walk(v, n.X)
		}
		if n.Index != nil {
			Walk(v, n.Index)
		}
	}
}

// Inspect traverses an AST in depth-first order. It calls f(node) for each
// node; if f returns true, Inspect invokes f recursively for each of the
// non-nil children of node.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Preorder returns an iterator over all nodes of the tree rooted at root,
// in depth-first preorder.
func Preorder(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		ok := true
		Inspect(root, func(n Node) bool {
			if n != nil {
				ok = ok && yield(n)
			}
			return ok
		})
	}
}
