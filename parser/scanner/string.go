package scanner

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/t14raptor/esparse/ast"
	"github.com/t14raptor/esparse/token"
)

func (s *Scanner) scanStringLiteral(delim byte) token.Token {
	start := s.src.Offset()
	s.ConsumeByte()
	afterOpen := s.src.Offset()

	for {
		b, ok := s.PeekByte()
		if !ok || b == '\r' || b == '\n' {
			s.error(unterminatedString(start, s.src.Offset()))
			return token.Illegal
		}

		switch b {
		case delim:
			s.token.Value = s.src.FromPositionToCurrent(afterOpen)
			s.ConsumeByte()
			return token.String
		case '\\':
			return s.scanStringLiteralEscaped(delim, start, afterOpen)
		}

		if b < utf8.RuneSelf {
			s.ConsumeByte()
		} else if _, ok := s.consumeLiteralRune(); !ok {
			return token.Illegal
		}
	}
}

func (s *Scanner) scanStringLiteralEscaped(delim byte, start, afterOpen ast.Idx) token.Token {
	soFar := s.src.FromPositionToCurrent(afterOpen)
	str := &strings.Builder{}
	str.Grow(max(len(soFar)*2, 16))
	str.WriteString(soFar)

	for {
		b, ok := s.PeekByte()
		if !ok || b == '\r' || b == '\n' {
			s.error(unterminatedString(start, s.src.Offset()))
			return token.Illegal
		}

		switch b {
		case delim:
			s.ConsumeByte()
			s.token.HasEscape = true
			s.token.Value = str.String()
			return token.String
		case '\\':
			escapeStart := s.src.Offset()
			s.ConsumeByte()
			valid, octal := s.readStringEscapeSequence(str, false)
			if !valid {
				s.error(invalidEscapeSequence(escapeStart, s.src.Offset()))
				return token.Illegal
			}
			s.token.Octal = s.token.Octal || octal
			continue
		}

		if b < utf8.RuneSelf {
			str.WriteByte(s.ConsumeByte())
			continue
		}
		r, ok := s.consumeLiteralRune()
		if !ok {
			return token.Illegal
		}
		str.WriteRune(r)
	}
}

// readStringEscapeSequence cooks the escape after a consumed backslash into
// str. Templates accept no legacy octal escapes.
func (s *Scanner) readStringEscapeSequence(str *strings.Builder, inTemplate bool) (valid bool, octal bool) {
	c, ok := s.NextRune()
	if !ok {
		return false, false
	}

	switch c {
	case '\n', '\u2028', '\u2029':
		// line continuation
	case '\r':
		s.AdvanceIfByteEquals('\n')
	case 'n':
		str.WriteByte('\n')
	case 't':
		str.WriteByte('\t')
	case 'r':
		str.WriteByte('\r')
	case 'b':
		str.WriteByte('\b')
	case 'f':
		str.WriteByte('\f')
	case 'v':
		str.WriteByte('\v')
	case 'x':
		value, ok := s.hexDigits(2)
		if !ok {
			return false, false
		}
		str.WriteRune(value)
	case 'u':
		value, ok := s.unicodeEscapeValue()
		if !ok {
			return false, false
		}
		if utf16.IsSurrogate(value) && value < 0xdc00 {
			value = s.lowSurrogate(value)
		}
		str.WriteRune(value)
	case '0':
		if b, ok := s.PeekByte(); !ok || !isDecimalDigit(b) {
			str.WriteByte(0)
			return true, false
		}
		if inTemplate {
			return false, false
		}
		str.WriteRune(s.legacyOctalEscape(0))
		return true, true
	case '1', '2', '3', '4', '5', '6', '7':
		if inTemplate {
			return false, false
		}
		str.WriteRune(s.legacyOctalEscape(c - '0'))
		return true, true
	case '8', '9':
		if inTemplate {
			return false, false
		}
		str.WriteRune(c)
		return true, true
	default:
		str.WriteRune(c)
	}
	return true, false
}

// lowSurrogate joins a \uXXXX high surrogate with an immediately following
// \uXXXX low surrogate.
func (s *Scanner) lowSurrogate(high rune) rune {
	if b, _ := s.src.PeekByteAt(1); b != 'u' || !s.AdvanceIfByteEquals('\\') {
		return high
	}
	mark := s.src.Offset()
	s.ConsumeByte() // u
	if low, ok := s.hexDigits(4); ok && low >= 0xdc00 && low <= 0xdfff {
		return utf16.DecodeRune(high, low)
	}
	s.src.SetPosition(mark - 1)
	return high
}

// legacyOctalEscape reads up to two more octal digits after the first, keeping
// the value within a byte.
func (s *Scanner) legacyOctalEscape(value rune) rune {
	for i := 0; i < 2; i++ {
		b, ok := s.PeekByte()
		if !ok || b < '0' || b > '7' {
			break
		}
		next := value*8 + rune(b-'0')
		if next > 0xff {
			break
		}
		s.ConsumeByte()
		value = next
	}
	return value
}
