package parser

import (
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2"

	"github.com/t14raptor/esparse/ast"
	"github.com/t14raptor/esparse/parser/scanner"
	"github.com/t14raptor/esparse/token"
)

// LexError is a lexical error reported by the scanner.
type LexError = scanner.Error

// SyntaxError is a grammar violation.
type SyntaxError struct {
	Span    ast.Span
	Message string
}

func (e *SyntaxError) Error() string {
	return e.Message
}

// RecursionLimitError is returned when the nesting of the input exceeds the
// configured maximum depth.
type RecursionLimitError struct {
	Span  ast.Span
	Limit int
}

func (e *RecursionLimitError) Error() string {
	return fmt.Sprintf("maximum nesting depth of %d exceeded", e.Limit)
}

// ErrorSpan returns the source range an error returned by Parse covers.
func ErrorSpan(err error) (ast.Span, bool) {
	switch e := err.(type) {
	case scanner.Error:
		return e.Span(), true
	case *SyntaxError:
		return e.Span, true
	case *RecursionLimitError:
		return e.Span, true
	}
	return ast.Span{}, false
}

// Locate resolves the start of the error's span to a 1-based line and column
// and returns the offending source line.
func Locate(src string, err error) (line, col int, context string) {
	span, ok := ErrorSpan(err)
	if !ok {
		return 0, 0, ""
	}
	return parse.Position(strings.NewReader(src), int(span.Start))
}

// bailout unwinds the parser to the entry point after an error.
type bailout struct{}

func (p *parser) fail(err error) {
	p.err = err
	panic(bailout{})
}

func (p *parser) errorf(span ast.Span, msg string, msgValues ...any) {
	if len(msgValues) > 0 {
		msg = fmt.Sprintf(msg, msgValues...)
	}
	p.fail(&SyntaxError{Span: span, Message: msg})
}

func (p *parser) errorUnexpectedToken() {
	span := p.token.Span()
	switch tkn := p.token.Kind; {
	case tkn == token.Eof:
		p.errorf(span, "unexpected end of input")
	case tkn == token.Identifier:
		p.errorf(span, "unexpected identifier %s", p.token.Value)
	case tkn.IsKeyword():
		p.errorf(span, "unexpected reserved word %s", p.token.Raw)
	case tkn == token.Number:
		p.errorf(span, "unexpected number")
	case tkn == token.String:
		p.errorf(span, "unexpected string")
	case tkn >= token.TemplateHead && tkn <= token.NoSubstitutionTemplate:
		p.errorf(span, "unexpected template string")
	default:
		p.errorf(span, "unexpected token %s", p.token.Raw)
	}
}
