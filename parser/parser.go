// Package parser is used to generate the abstract syntax tree (AST) for a program.
//
// A parser is created by calling New() with a lexer as input. The parser should
// then be used only once, by calling parser.Parse() to produce the AST.
package parser

import (
	"context"
	"fmt"

	"github.com/monkey-lang/monkey/ast"
	"github.com/monkey-lang/monkey/internal/lexer"
	"github.com/monkey-lang/monkey/internal/token"
)

// Parse the provided input as Monkey source code and return the AST. This is
// a shorthand way to create a Lexer and Parser and then call Parse on that.
func Parse(ctx context.Context, input string, options ...Option) (*ast.Program, error) {
	// Extract filename from options before creating the parser, so that lexer
	// errors in the first tokens have proper location context.
	var filename string
	for _, opt := range options {
		var probe Parser
		opt(&probe)
		if probe.filename != "" {
			filename = probe.filename
			break
		}
	}

	l := lexer.New(input)
	if filename != "" {
		l.SetFilename(filename)
	}

	p := New(l, options...)
	return p.Parse(ctx)
}

// Option is a configuration function for a Parser.
type Option func(*Parser)

// WithFilename sets the file name used in error locations.
func WithFilename(filename string) Option {
	return func(p *Parser) {
		p.filename = filename
	}
}

// WithMaxDepth sets the maximum nesting depth for the parser.
// This prevents stack overflow on deeply nested input.
// The default is 500.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// DefaultMaxDepth is the default maximum nesting depth for parsing.
const DefaultMaxDepth = 500

// Parser object
type Parser struct {
	// the Context supplied in the Parse() call
	ctx context.Context

	// l is our lexer
	l *lexer.Lexer

	// prevToken holds the previous token, which we already processed.
	prevToken token.Token

	// curToken holds the current token from the lexer.
	curToken token.Token

	// peekToken holds the next token from the lexer.
	peekToken token.Token

	// err holds the first error encountered. Parsing is all-or-nothing:
	// once set, every parsing method returns without doing further work.
	err ParserError

	// The filename of the input
	filename string

	// Current recursion depth
	depth int

	// Maximum allowed recursion depth
	maxDepth int
}

// New returns a Parser for the program provided by the given Lexer.
func New(l *lexer.Lexer, options ...Option) *Parser {
	p := &Parser{
		l:        l,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range options {
		opt(p)
	}
	if p.filename != "" {
		l.SetFilename(p.filename)
	}

	// Prime the token pump
	p.nextToken() // makes curToken=<empty>, peekToken=token[0]
	p.nextToken() // makes curToken=token[0], peekToken=token[1]
	return p
}

// nextToken moves to the next token from the lexer, updating all of
// prevToken, curToken, and peekToken.
func (p *Parser) nextToken() error {
	var err error
	p.prevToken = p.curToken
	p.curToken = p.peekToken
	p.peekToken, err = p.l.Next()
	if err == nil {
		return nil
	}
	// The lexer encountered an error. We consider all lexer errors
	// "syntax errors" and parsing is now broken.
	p.setError(NewSyntaxError(ErrorOpts{
		Cause:         err,
		File:          p.l.Filename(),
		StartPosition: p.peekToken.StartPosition,
		EndPosition:   p.peekToken.EndPosition,
		SourceCode:    p.l.GetLineText(p.peekToken),
	}))
	return err
}

// Parse the program that is provided via the lexer. Returns the AST and any
// error encountered. A failed parse returns a nil program: no partial AST
// escapes the parser.
func (p *Parser) Parse(ctx context.Context) (*ast.Program, error) {
	p.ctx = ctx
	// It's possible for an error to already exist because we read tokens
	// from the lexer in the constructor.
	if p.err != nil {
		return nil, p.err
	}
	var statements []ast.Stmt
	for !p.curTokenIs(token.EOF) {
		if p.cancelled() {
			return nil, p.ctx.Err()
		}
		stmt := p.parseStatement()
		if p.err != nil {
			return nil, p.err
		}
		if stmt != nil {
			statements = append(statements, stmt)
		}
		p.nextToken()
		if p.err != nil {
			return nil, p.err
		}
	}
	return &ast.Program{Stmts: statements}, nil
}

// setError records the first error encountered. Later errors are discarded,
// since they are artifacts of an already-broken parse.
func (p *Parser) setError(err ParserError) {
	if p.err == nil {
		p.err = err
	}
}

// broken returns true if an error has been recorded.
func (p *Parser) broken() bool {
	return p.err != nil
}

// cancelled checks if the parsing context has been cancelled.
// Returns true if cancelled, in which case parsing should stop.
func (p *Parser) cancelled() bool {
	if p.ctx == nil {
		return false
	}
	select {
	case <-p.ctx.Done():
		p.setError(NewParserError(ErrorOpts{
			ErrType: "context error",
			Message: p.ctx.Err().Error(),
		}))
		return true
	default:
		return false
	}
}

// unexpectedToken records an unexpected token error at the given token.
func (p *Parser) unexpectedToken(t token.Token) {
	p.setError(NewUnexpectedTokenError(ErrorOpts{
		Message:       fmt.Sprintf("unexpected %s", tokenDescription(t)),
		File:          p.l.Filename(),
		StartPosition: t.StartPosition,
		EndPosition:   t.EndPosition,
		SourceCode:    p.l.GetLineText(t),
	}))
}

// peekError records an error describing that the next token is not the
// expected type.
func (p *Parser) peekError(context string, expected token.Type, got token.Token) {
	p.setError(NewUnexpectedTokenError(ErrorOpts{
		Message: fmt.Sprintf("unexpected %s while parsing %s (expected %s)",
			tokenDescription(got), context, tokenTypeDescription(expected)),
		File:          p.l.Filename(),
		StartPosition: got.StartPosition,
		EndPosition:   got.EndPosition,
		SourceCode:    p.l.GetLineText(got),
		Hint:          peekHint(context, expected),
	}))
}

// peekHint suggests a fix for the most common grammar mistakes.
func peekHint(context string, expected token.Type) string {
	if context == "a let statement" && expected == token.ASSIGN {
		return `expected "=" after the variable name`
	}
	return ""
}

func (p *Parser) setTokenError(t token.Token, msg string, args ...interface{}) {
	p.setError(NewUnexpectedTokenError(ErrorOpts{
		Message:       fmt.Sprintf(msg, args...),
		File:          p.l.Filename(),
		StartPosition: t.StartPosition,
		EndPosition:   t.EndPosition,
		SourceCode:    p.l.GetLineText(t),
	}))
}

// newIdent creates a new Ident node from a token.
func (p *Parser) newIdent(tok token.Token) *ast.Ident {
	return &ast.Ident{NamePos: tok.StartPosition, Name: tok.Literal}
}

// curTokenIs returns true if the current token has the given type.
func (p *Parser) curTokenIs(t token.Type) bool {
	return p.curToken.Type == t
}

// peekTokenIs returns true if the next token has the given type.
func (p *Parser) peekTokenIs(t token.Type) bool {
	return p.peekToken.Type == t
}

// expectPeek validates that the next token is of the given type, and advances
// if it is. If it's a different type, an error is stored. This is the single
// gate through which the grammar asserts its expectations.
func (p *Parser) expectPeek(context string, t token.Type) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return p.err == nil
	}
	p.peekError(context, t, p.peekToken)
	return false
}

// peekPrecedence returns the precedence of the next token.
func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// currentPrecedence returns the precedence of the current token.
func (p *Parser) currentPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}
