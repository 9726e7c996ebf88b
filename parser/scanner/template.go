package scanner

import (
	"strings"
	"unicode/utf8"

	"github.com/t14raptor/esparse/ast"
	"github.com/t14raptor/esparse/token"
)

// Matches: '$', '`', '\r', '\\'.
var templateLiteralEnd [256]bool

func init() {
	for _, b := range []byte{'$', '`', '\r', '\\'} {
		templateLiteralEnd[b] = true
	}
}

// ReadTemplateLiteral scans the body of a template literal.
// The opening delimiter (` or }) must already have been consumed by the caller.
// sub is the Token to return when encountering ${, tail is for closing `.
func (s *Scanner) ReadTemplateLiteral(sub, tail token.Token) token.Token {
	contentStart := s.src.Offset()

	for {
		b, ok := s.PeekByte()
		if !ok {
			s.error(unterminatedTemplateLiteral(s.token.Idx0, s.src.Offset()))
			return token.Illegal
		}

		if !templateLiteralEnd[b] {
			if b < utf8.RuneSelf {
				s.ConsumeByte()
			} else if _, ok := s.consumeLiteralRune(); !ok {
				return token.Illegal
			}
			continue
		}

		switch b {
		case '$':
			if next, _ := s.src.PeekByteAt(1); next == '{' {
				s.token.Value = s.src.FromPositionToCurrent(contentStart)
				s.ConsumeByte() // $
				s.ConsumeByte() // {
				return sub
			}
			s.ConsumeByte()
		case '`':
			s.token.Value = s.src.FromPositionToCurrent(contentStart)
			s.ConsumeByte()
			return tail
		default: // '\r' or '\\'
			return s.templateLiteralEscaped(s.createTemplateLiteralString(contentStart), sub, tail)
		}
	}
}

// createTemplateLiteralString creates a string builder initialized with the
// content from contentStart to the current scanner position.
func (s *Scanner) createTemplateLiteralString(contentStart ast.Idx) *strings.Builder {
	soFar := s.src.FromPositionToCurrent(contentStart)
	b := &strings.Builder{}
	b.Grow(max(len(soFar)*2, 16))
	b.WriteString(soFar)
	return b
}

// templateLiteralEscaped continues scanning a template literal using a
// string builder for the cooked value. Carriage returns are normalized to
// line feeds.
func (s *Scanner) templateLiteralEscaped(str *strings.Builder, sub, tail token.Token) token.Token {
	valid := true
	done := func(kind token.Token) token.Token {
		s.token.HasEscape = true
		s.token.Invalid = !valid
		if valid {
			s.token.Value = str.String()
		}
		return kind
	}

	for {
		b, ok := s.PeekByte()
		if !ok {
			s.error(unterminatedTemplateLiteral(s.token.Idx0, s.src.Offset()))
			return token.Illegal
		}

		switch b {
		case '$':
			s.ConsumeByte()
			if s.AdvanceIfByteEquals('{') {
				return done(sub)
			}
			str.WriteByte('$')
		case '`':
			s.ConsumeByte()
			return done(tail)
		case '\r':
			s.ConsumeByte()
			s.AdvanceIfByteEquals('\n')
			str.WriteByte('\n')
		case '\\':
			s.ConsumeByte()
			if ok, _ := s.readStringEscapeSequence(str, true); !ok {
				valid = false
			}
		default:
			if b < utf8.RuneSelf {
				str.WriteByte(s.ConsumeByte())
				break
			}
			r, ok := s.consumeLiteralRune()
			if !ok {
				return token.Illegal
			}
			str.WriteRune(r)
		}
	}
}
