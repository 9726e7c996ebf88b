package generator

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/t14raptor/esparse/ast"
)

type state struct {
	out    *output
	node   ast.Node
	parent *state
}

func (s *state) wrap(node ast.Node) *state {
	return &state{
		out:    s.out,
		node:   node,
		parent: s,
	}
}

// output collects the minified text and inserts a space only where two
// adjacent tokens would otherwise merge.
type output struct {
	strings.Builder
	// integer is set right after a decimal integer literal, which would
	// swallow a following period.
	integer bool
}

func (o *output) last() rune {
	r, _ := utf8.DecodeLastRuneInString(o.String())
	return r
}

// word writes an identifier, keyword or literal.
func (o *output) word(w string) {
	if isIdentifierPart(o.last()) {
		if first, _ := utf8.DecodeRuneInString(w); isIdentifierPart(first) {
			o.WriteByte(' ')
		}
	}
	o.WriteString(w)
	o.integer = false
}

// number writes a numeric literal.
func (o *output) number(raw string) {
	o.word(raw)
	o.integer = strings.IndexFunc(raw, func(r rune) bool { return !('0' <= r && r <= '9' || r == '_') }) < 0
}

// op writes a punctuator.
func (o *output) op(p string) {
	if p == "" {
		return
	}
	last, next := o.last(), p[0]
	switch {
	case last == '+' && next == '+', last == '-' && next == '-':
		o.WriteByte(' ')
	case last == '/' && (next == '/' || next == '*'):
		o.WriteByte(' ')
	case last == '<' && next == '!':
		o.WriteByte(' ')
	case o.integer && next == '.':
		o.WriteByte(' ')
	}
	o.WriteString(p)
	o.integer = false
}

func isIdentifierPart(r rune) bool {
	switch {
	case r == utf8.RuneError:
		return false
	case r == '$' || r == '_' || r == '\\':
		return true
	case r < utf8.RuneSelf:
		return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9'
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r)
}
