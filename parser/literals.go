package parser

import (
	"sort"
	"strconv"

	"github.com/monkey-lang/monkey/ast"
	"github.com/monkey-lang/monkey/internal/token"
)

// Literal parsing methods for the Parser: integers, strings, booleans,
// arrays, hashes, and function literals.

func (p *Parser) parseInt() ast.Expr {
	// Integers are 32-bit signed. Out-of-range literals are rejected here
	// rather than silently truncated.
	value, err := strconv.ParseInt(p.curToken.Literal, 10, 32)
	if err != nil {
		p.setTokenError(p.curToken, "invalid integer literal %q", p.curToken.Literal)
		return nil
	}
	return &ast.Int{
		ValuePos: p.curToken.StartPosition,
		Literal:  p.curToken.Literal,
		Value:    int32(value),
	}
}

func (p *Parser) parseString() ast.Expr {
	return &ast.String{
		ValuePos: p.curToken.StartPosition,
		Value:    p.curToken.Literal,
	}
}

func (p *Parser) parseBool() ast.Expr {
	return &ast.Bool{
		ValuePos: p.curToken.StartPosition,
		Value:    p.curTokenIs(token.TRUE),
	}
}

func (p *Parser) parseArray() ast.Expr {
	lbrack := p.curToken.StartPosition
	elems := p.parseExprList(token.RBRACKET, "an array literal")
	if p.broken() {
		return nil
	}
	return &ast.Array{
		Lbrack: lbrack,
		Elems:  elems,
		Rbrack: p.curToken.StartPosition,
	}
}

// parseHash reads key-value pairs until the closing brace. Keys and values
// are full expressions. Items are stored sorted by the rendered text of the
// key, so hashes with the same pairs render identically regardless of the
// order they were written in.
func (p *Parser) parseHash() ast.Expr {
	lbrace := p.curToken.StartPosition
	var items []ast.HashItem
	for !p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		key := p.parseExpression(LOWEST)
		if key == nil {
			return nil
		}
		if !p.expectPeek("a hash literal", token.COLON) {
			return nil
		}
		p.nextToken()
		value := p.parseExpression(LOWEST)
		if value == nil {
			return nil
		}
		items = append(items, ast.HashItem{Key: key, Value: value})
		if !p.peekTokenIs(token.RBRACE) && !p.expectPeek("a hash literal", token.COMMA) {
			return nil
		}
	}
	if !p.expectPeek("a hash literal", token.RBRACE) {
		return nil
	}
	// Stable so keys with equal rendered text keep their source order.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Key.String() < items[j].Key.String()
	})
	return &ast.Hash{
		Lbrace: lbrace,
		Items:  items,
		Rbrace: p.curToken.StartPosition,
	}
}

func (p *Parser) parseFunc() ast.Expr {
	funcPos := p.curToken.StartPosition
	if !p.expectPeek("a function literal", token.LPAREN) {
		return nil
	}
	lparen := p.curToken.StartPosition
	params := p.parseFuncParams()
	if p.broken() {
		return nil
	}
	rparen := p.curToken.StartPosition
	if !p.expectPeek("a function literal", token.LBRACE) {
		return nil
	}
	body := p.parseBlock()
	if body == nil {
		return nil
	}
	return &ast.Func{
		Func:   funcPos,
		Lparen: lparen,
		Params: params,
		Rparen: rparen,
		Body:   body,
	}
}

// parseFuncParams is called with the current token at "(" and returns with
// the current token at ")". Each parameter is a bare identifier.
func (p *Parser) parseFuncParams() []*ast.Ident {
	var params []*ast.Ident
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params
	}
	if !p.expectPeek("function parameters", token.IDENT) {
		return nil
	}
	params = append(params, p.newIdent(p.curToken))
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		if !p.expectPeek("function parameters", token.IDENT) {
			return nil
		}
		params = append(params, p.newIdent(p.curToken))
	}
	if !p.expectPeek("function parameters", token.RPAREN) {
		return nil
	}
	return params
}
