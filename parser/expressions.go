package parser

import (
	"github.com/monkey-lang/monkey/ast"
	"github.com/monkey-lang/monkey/internal/token"
)

// Expression parsing methods for the Parser.
// This file contains the precedence-climbing engine and the parsing of
// operator expressions, grouped expressions, if expressions, calls, and
// index expressions. Literal forms live in literals.go.

// parseExpression is the core of the parser. It builds an initial expression
// from the current token's prefix form, then loops while the next token binds
// tighter than the given precedence, folding the expression into infix,
// call, and index forms. Every entry is reached with the current token at the
// expression's first token and exits with the current token at its last
// consumed token.
func (p *Parser) parseExpression(precedence int) ast.Expr {
	if p.broken() || p.cancelled() {
		return nil
	}
	p.depth++
	if p.depth > p.maxDepth {
		p.setTokenError(p.curToken, "maximum nesting depth exceeded")
		p.depth--
		return nil
	}
	defer func() { p.depth-- }()

	var left ast.Expr
	switch p.curToken.Type {
	case token.IDENT:
		left = p.newIdent(p.curToken)
	case token.INT:
		left = p.parseInt()
	case token.STRING:
		left = p.parseString()
	case token.TRUE, token.FALSE:
		left = p.parseBool()
	case token.BANG, token.MINUS:
		left = p.parsePrefix()
	case token.LPAREN:
		left = p.parseGroup()
	case token.LBRACKET:
		left = p.parseArray()
	case token.LBRACE:
		left = p.parseHash()
	case token.FUNCTION:
		left = p.parseFunc()
	case token.IF:
		left = p.parseIf()
	default:
		p.unexpectedToken(p.curToken)
		return nil
	}
	if left == nil || p.broken() {
		return nil
	}

	for !p.peekTokenIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		switch p.peekToken.Type {
		case token.PLUS, token.MINUS, token.SLASH, token.ASTERISK,
			token.EQ, token.NOT_EQ, token.LT, token.GT:
			p.nextToken()
			left = p.parseInfix(left)
		case token.LPAREN:
			p.nextToken()
			left = p.parseCall(left)
		case token.LBRACKET:
			p.nextToken()
			left = p.parseIndex(left)
		default:
			return left
		}
		if left == nil || p.broken() {
			return nil
		}
	}
	return left
}

func (p *Parser) parsePrefix() ast.Expr {
	expr := &ast.Prefix{
		OpPos: p.curToken.StartPosition,
		Op:    p.curToken.Literal,
	}
	p.nextToken()
	x := p.parseExpression(PREFIX)
	if x == nil {
		return nil
	}
	expr.X = x
	return expr
}

// parseInfix is called with the current token at the operator. The right
// operand is parsed at the operator's own precedence, so same-precedence
// chains nest left-deep.
func (p *Parser) parseInfix(left ast.Expr) ast.Expr {
	expr := &ast.Infix{
		X:     left,
		OpPos: p.curToken.StartPosition,
		Op:    p.curToken.Literal,
	}
	precedence := p.currentPrecedence()
	p.nextToken()
	y := p.parseExpression(precedence)
	if y == nil {
		return nil
	}
	expr.Y = y
	return expr
}

// parseGroup parses "(" <expression> ")". The parentheses affect the shape
// of the tree but leave no node of their own.
func (p *Parser) parseGroup() ast.Expr {
	p.nextToken()
	x := p.parseExpression(LOWEST)
	if x == nil {
		return nil
	}
	if !p.expectPeek("a grouped expression", token.RPAREN) {
		return nil
	}
	return x
}

func (p *Parser) parseIf() ast.Expr {
	ifPos := p.curToken.StartPosition
	if !p.expectPeek("an if expression", token.LPAREN) {
		return nil
	}
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if cond == nil {
		return nil
	}
	if !p.expectPeek("an if expression", token.RPAREN) {
		return nil
	}
	if !p.expectPeek("an if expression", token.LBRACE) {
		return nil
	}
	consequence := p.parseBlock()
	if consequence == nil {
		return nil
	}
	expr := &ast.If{If: ifPos, Cond: cond, Consequence: consequence}
	if p.peekTokenIs(token.ELSE) {
		p.nextToken()
		if !p.expectPeek("an else clause", token.LBRACE) {
			return nil
		}
		alternative := p.parseBlock()
		if alternative == nil {
			return nil
		}
		expr.Alternative = alternative
	}
	return expr
}

// parseCall is called with the current token at "(" and the already-parsed
// callee expression.
func (p *Parser) parseCall(fun ast.Expr) ast.Expr {
	lparen := p.curToken.StartPosition
	args := p.parseExprList(token.RPAREN, "a call expression")
	if p.broken() {
		return nil
	}
	return &ast.Call{
		Fun:    fun,
		Lparen: lparen,
		Args:   args,
		Rparen: p.curToken.StartPosition,
	}
}

// parseIndex is called with the current token at "[" and the already-parsed
// target expression.
func (p *Parser) parseIndex(x ast.Expr) ast.Expr {
	lbrack := p.curToken.StartPosition
	p.nextToken()
	index := p.parseExpression(LOWEST)
	if index == nil {
		return nil
	}
	if !p.expectPeek("an index expression", token.RBRACKET) {
		return nil
	}
	return &ast.Index{
		X:      x,
		Lbrack: lbrack,
		Index:  index,
		Rbrack: p.curToken.StartPosition,
	}
}

// parseExprList reads a comma-separated list of expressions bounded by the
// given end token. Called with the current token at the list's opening
// delimiter; returns with the current token at the end token. An empty list
// is valid.
func (p *Parser) parseExprList(end token.Type, context string) []ast.Expr {
	var list []ast.Expr
	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}
	p.nextToken()
	first := p.parseExpression(LOWEST)
	if first == nil {
		return nil
	}
	list = append(list, first)
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		next := p.parseExpression(LOWEST)
		if next == nil {
			return nil
		}
		list = append(list, next)
	}
	if !p.expectPeek(context, end) {
		return nil
	}
	return list
}
