package scanner

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"

	"github.com/t14raptor/esparse/ast"
	"github.com/t14raptor/esparse/token"
)

// Lookup tables for ASCII identifier characters.
// Non-ASCII bytes (>= 128) are always false, branching to the Unicode path.
var asciiStart, asciiContinue [256]bool

// ID_Start and ID_Continue.
var idStart, idContinue *unicode.RangeTable

func init() {
	for i := 0; i < 128; i++ {
		if i >= 'a' && i <= 'z' || i >= 'A' && i <= 'Z' || i == '$' || i == '_' {
			asciiStart[i] = true
			asciiContinue[i] = true
		}
		if i >= '0' && i <= '9' {
			asciiContinue[i] = true
		}
	}

	idStart = rangetable.Merge(unicode.L, unicode.Nl, unicode.Other_ID_Start)
	idContinue = rangetable.Merge(idStart, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue)
}

func isIdentifierStart(chr rune) bool {
	if chr < utf8.RuneSelf {
		return chr >= 0 && asciiStart[chr]
	}
	return unicode.Is(idStart, chr)
}

func isIdentifierPart(chr rune) bool {
	if chr < utf8.RuneSelf {
		return chr >= 0 && asciiContinue[chr]
	}
	// ZWNJ and ZWJ
	if chr == '\u200c' || chr == '\u200d' {
		return true
	}
	return unicode.Is(idContinue, chr)
}

// IsIdentifierName reports whether name is a valid IdentifierName without
// escapes.
func IsIdentifierName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if i == 0 && !isIdentifierStart(r) || i > 0 && !isIdentifierPart(r) {
			return false
		}
	}
	return true
}

func (s *Scanner) scanIdentifier() token.Token {
	name, ok := s.readIdentifierName()
	if !ok {
		return token.Illegal
	}
	if s.token.HasEscape {
		s.token.Value = name
		return token.Identifier
	}
	return token.MatchKeyword(name)
}

func (s *Scanner) identifierBackslashHandler() token.Token {
	return s.scanIdentifier()
}

func (s *Scanner) scanPrivateIdentifier() token.Token {
	start := s.src.Offset()
	s.ConsumeByte()
	r, ok := s.PeekRune()
	if !ok || !(isIdentifierStart(r) || r == '\\') {
		s.error(invalidCharacter('#', start, s.src.Offset()))
		return token.Illegal
	}
	name, ok := s.readIdentifierName()
	if !ok {
		return token.Illegal
	}
	s.token.Value = name
	return token.PrivateIdentifier
}

// readIdentifierName reads an IdentifierName starting at the cursor and
// returns it with escapes resolved.
func (s *Scanner) readIdentifierName() (string, bool) {
	start := s.src.Offset()
	first := true
	for {
		c, ok := s.PeekRune()
		if !ok {
			break
		}
		if c == '\\' {
			return s.scanIdentifierBackslash(start, first)
		}
		if first && !isIdentifierStart(c) || !first && !isIdentifierPart(c) {
			break
		}
		s.ConsumeRune()
		first = false
	}
	return s.src.FromPositionToCurrent(start), true
}

func (s *Scanner) scanIdentifierBackslash(startPos ast.Idx, start bool) (string, bool) {
	soFar := s.src.FromPositionToCurrent(startPos)

	str := &strings.Builder{}
	str.Grow(max(len(soFar)*2, 16))
	str.WriteString(soFar)

	for {
		c, ok := s.PeekRune()
		if !ok {
			break
		}
		if c == '\\' {
			if !s.identifierUnicodeEscapeSequence(str, start) {
				return "", false
			}
		} else if start && isIdentifierStart(c) || !start && isIdentifierPart(c) {
			str.WriteRune(s.ConsumeRune())
		} else {
			break
		}
		start = false
	}

	s.token.HasEscape = true
	return str.String(), true
}

// identifierUnicodeEscapeSequence reads \uXXXX or \u{X...} at the cursor.
func (s *Scanner) identifierUnicodeEscapeSequence(str *strings.Builder, checkIdentifierStart bool) bool {
	start := s.src.Offset()
	s.ConsumeByte() // \
	if !s.AdvanceIfByteEquals('u') {
		s.error(invalidUnicodeEscapeSequence(start, s.src.Offset()))
		return false
	}

	value, ok := s.unicodeEscapeValue()
	if ok {
		if checkIdentifierStart {
			ok = isIdentifierStart(value)
		} else {
			ok = isIdentifierPart(value)
		}
	}
	if !ok {
		s.error(invalidUnicodeEscapeSequence(start, s.src.Offset()))
		return false
	}

	str.WriteRune(value)
	return true
}

// unicodeEscapeValue reads the XXXX or {X...} part of a \u escape.
func (s *Scanner) unicodeEscapeValue() (rune, bool) {
	if s.AdvanceIfByteEquals('{') {
		var value rune
		digits := 0
		for {
			b, ok := s.PeekByte()
			if !ok {
				return 0, false
			}
			if b == '}' {
				s.ConsumeByte()
				break
			}
			d := digitValue(b)
			if d >= 16 {
				return 0, false
			}
			s.ConsumeByte()
			value = value*16 + rune(d)
			if value > unicode.MaxRune {
				return 0, false
			}
			digits++
		}
		return value, digits > 0
	}

	return s.hexDigits(4)
}

// hexDigits reads exactly n hexadecimal digits.
func (s *Scanner) hexDigits(n int) (rune, bool) {
	var value rune
	for i := 0; i < n; i++ {
		b, ok := s.PeekByte()
		if !ok || digitValue(b) >= 16 {
			return 0, false
		}
		s.ConsumeByte()
		value = value*16 + rune(digitValue(b))
	}
	return value, true
}
