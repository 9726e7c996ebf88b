package scanner

import (
	"github.com/t14raptor/esparse/ast"
	"github.com/t14raptor/esparse/token"
)

type Token struct {
	Kind token.Token

	// OnNewLine is set when a line terminator precedes the token.
	OnNewLine bool
	// HasEscape is set when the token spelling contains an escape sequence.
	HasEscape bool
	// Octal marks legacy octal numbers ("017", "08") and strings holding a
	// legacy octal escape ("\01"), which strict mode code rejects.
	Octal bool
	// Invalid marks a template element whose cooked value is undefined.
	Invalid bool

	Idx0, Idx1 ast.Idx

	// Raw is the source text of the token.
	Raw string
	// Value is the cooked value: the identifier name with escapes resolved,
	// the string or template contents, or the body of a regular expression.
	Value string
}

// Span returns the token's source range.
func (t Token) Span() ast.Span {
	return ast.Span{Start: t.Idx0, End: t.Idx1}
}

// Flags returns the flags of a RegExp token.
func (t Token) Flags() string {
	return t.Raw[len(t.Value)+2:]
}

// TemplateLiteral returns the raw text of a template element without its
// delimiters.
func (t Token) TemplateLiteral() string {
	raw := t.Raw
	switch t.Kind {
	case token.NoSubstitutionTemplate, token.TemplateTail:
		// ` ... ` or } ... `
		return raw[1 : len(raw)-1]
	case token.TemplateHead, token.TemplateMiddle:
		// ` ... ${ or } ... ${
		return raw[1 : len(raw)-2]
	}
	return raw
}
