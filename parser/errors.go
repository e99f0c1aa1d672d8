package parser

import (
	"fmt"

	"github.com/monkey-lang/monkey/errors"
	"github.com/monkey-lang/monkey/internal/token"
)

// ErrorOpts is a struct that holds a variety of error data.
// All fields are optional, although one of `Cause` or `Message`
// are recommended. If `Cause` is set, `Message` will be ignored.
type ErrorOpts struct {
	ErrType       string
	Code          errors.ErrorCode
	Message       string
	Cause         error
	File          string
	StartPosition token.Position
	EndPosition   token.Position
	SourceCode    string
	Hint          string
}

// NewParserError returns a new BaseParserError populated with
// the given error data.
func NewParserError(opts ErrorOpts) *BaseParserError {
	return &BaseParserError{
		errType:       opts.ErrType,
		code:          opts.Code,
		message:       opts.Message,
		cause:         opts.Cause,
		file:          opts.File,
		startPosition: opts.StartPosition,
		endPosition:   opts.EndPosition,
		sourceCode:    opts.SourceCode,
		hint:          opts.Hint,
	}
}

// ParserError is an interface that all parser errors implement.
type ParserError interface {
	Type() string
	Message() string
	Cause() error
	File() string
	StartPosition() token.Position
	EndPosition() token.Position
	SourceCode() string
	Error() string
	errors.FriendlyError
}

// BaseParserError is the simplest implementation of ParserError.
type BaseParserError struct {
	// Type of the error, e.g. "syntax error"
	errType string
	// Display code, e.g. "E2001"
	code errors.ErrorCode
	// The error message
	message string
	// The wrapped error
	cause error
	// File where the error occurred
	file string
	// Start position of the error in the input string
	startPosition token.Position
	// End position of the error in the input string
	endPosition token.Position
	// Relevant line of source code text
	sourceCode string
	// Optional suggestion shown below the source context
	hint string
}

func (e *BaseParserError) Error() string {
	var msg string
	if e.cause != nil {
		msg = e.cause.Error()
	} else if e.message != "" {
		msg = e.message
	}
	if e.errType != "" {
		msg = fmt.Sprintf("%s: %s", e.errType, msg)
	}
	return msg
}

func (e *BaseParserError) FriendlyErrorMessage() string {
	formatter := errors.NewFormatter(false)
	return formatter.Format(e.ToFormatted())
}

// ToFormatted converts the parser error to a FormattedError for display.
func (e *BaseParserError) ToFormatted() *errors.FormattedError {
	start := e.StartPosition()
	end := e.EndPosition()

	message := e.message
	if e.cause != nil {
		message = e.cause.Error()
	}

	return &errors.FormattedError{
		Code:      e.code,
		Kind:      e.errType,
		Message:   message,
		Filename:  e.file,
		Line:      start.LineNumber(),
		Column:    start.ColumnNumber(),
		EndColumn: end.ColumnNumber(),
		SourceLines: []errors.SourceLineEntry{
			{Number: start.LineNumber(), Text: e.sourceCode, IsMain: true},
		},
		Hint: e.hint,
	}
}

func (e *BaseParserError) Cause() error {
	return e.cause
}

func (e *BaseParserError) Message() string {
	return e.message
}

func (e *BaseParserError) Line() int {
	return e.startPosition.Line
}

func (e *BaseParserError) StartPosition() token.Position {
	return e.startPosition
}

func (e *BaseParserError) EndPosition() token.Position {
	return e.endPosition
}

func (e *BaseParserError) File() string {
	return e.file
}

func (e *BaseParserError) SourceCode() string {
	return e.sourceCode
}

func (e *BaseParserError) Unwrap() error {
	return e.cause
}

func (e *BaseParserError) Type() string {
	return e.errType
}

// NewSyntaxError returns a new SyntaxError populated with the given error
// data. Syntax errors originate in the lexer (unterminated strings, illegal
// characters).
func NewSyntaxError(opts ErrorOpts) *SyntaxError {
	opts.ErrType = "syntax error"
	opts.Code = errors.CodeSyntax
	return &SyntaxError{BaseParserError: NewParserError(opts)}
}

type SyntaxError struct {
	*BaseParserError
}

// NewUnexpectedTokenError returns an error describing a grammar violation at
// the given token. Every failed parse surfaces exactly one of these.
func NewUnexpectedTokenError(opts ErrorOpts) *UnexpectedTokenError {
	opts.ErrType = "parse error"
	opts.Code = errors.CodeUnexpectedToken
	return &UnexpectedTokenError{BaseParserError: NewParserError(opts)}
}

type UnexpectedTokenError struct {
	*BaseParserError
}

func tokenTypeDescription(t token.Type) string {
	switch t {
	case token.EOF:
		return "end of file"
	case token.IDENT:
		return "identifier"
	default:
		return fmt.Sprintf("%q", string(t))
	}
}

func tokenDescription(t token.Token) string {
	switch t.Type {
	case token.EOF:
		return "end of file"
	default:
		if t.Literal == "" {
			return string(t.Type)
		}
		return fmt.Sprintf("token %q", t.Literal)
	}
}
