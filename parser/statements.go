package parser

import (
	"github.com/monkey-lang/monkey/ast"
	"github.com/monkey-lang/monkey/internal/token"
)

// Statement parsing methods for the Parser.
// This file contains methods that parse statement constructs:
// - Variable declarations (let)
// - Return statements
// - Expression statements
// - Blocks

// parseStatement dispatches on the current token's kind. It is called with
// the current token at the first token of the statement and returns with the
// current token at the last token consumed by the statement.
func (p *Parser) parseStatement() ast.Stmt {
	var stmt ast.Stmt
	switch p.curToken.Type {
	case token.LET:
		stmt = p.parseLet()
	case token.RETURN:
		stmt = p.parseReturn()
	default:
		stmt = p.parseExpressionStatement()
	}
	if p.broken() {
		return nil
	}
	// Consume trailing semicolon if present
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseLet() *ast.Let {
	letPos := p.curToken.StartPosition
	if !p.expectPeek("a let statement", token.IDENT) {
		return nil
	}
	name := p.newIdent(p.curToken)
	if !p.expectPeek("a let statement", token.ASSIGN) {
		return nil
	}
	p.nextToken()
	value := p.parseExpression(LOWEST)
	if value == nil {
		return nil
	}
	return &ast.Let{Let: letPos, Name: name, Value: value}
}

func (p *Parser) parseReturn() *ast.Return {
	returnPos := p.curToken.StartPosition
	p.nextToken()
	value := p.parseExpression(LOWEST)
	if value == nil {
		return nil
	}
	// Resynchronize to the statement boundary. The loop stops on a semicolon
	// and never consumes the enclosing block's closing brace or the end of
	// input, so the caller's advance lands on the correct next token.
	for !p.curTokenIs(token.SEMICOLON) && !p.curTokenIs(token.EOF) &&
		!p.peekTokenIs(token.RBRACE) && !p.peekTokenIs(token.EOF) {
		p.nextToken()
		if p.broken() {
			return nil
		}
	}
	return &ast.Return{Return: returnPos, Value: value}
}

func (p *Parser) parseExpressionStatement() *ast.ExprStmt {
	x := p.parseExpression(LOWEST)
	if x == nil {
		return nil
	}
	return &ast.ExprStmt{X: x}
}

// parseBlock is called with the current token at "{" and returns with the
// current token at the matching "}".
func (p *Parser) parseBlock() *ast.Block {
	lbrace := p.curToken.StartPosition
	p.nextToken()
	var statements []ast.Stmt
	for !p.curTokenIs(token.RBRACE) {
		if p.curTokenIs(token.EOF) {
			p.setTokenError(p.curToken, `unexpected end of file while parsing a block (expected "}")`)
			return nil
		}
		if p.cancelled() {
			return nil
		}
		stmt := p.parseStatement()
		if p.broken() {
			return nil
		}
		if stmt != nil {
			statements = append(statements, stmt)
		}
		p.nextToken()
		if p.broken() {
			return nil
		}
	}
	return &ast.Block{
		Lbrace: lbrace,
		Stmts:  statements,
		Rbrace: p.curToken.StartPosition,
	}
}
