package scanner

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/t14raptor/esparse/token"
)

// readZero continues a numeric literal after a leading 0.
func (s *Scanner) readZero() token.Token {
	b, ok := s.PeekByte()
	if !ok {
		return token.Number
	}

	switch b {
	case 'b', 'B':
		return s.readNonDecimal(2)
	case 'o', 'O':
		return s.readNonDecimal(8)
	case 'x', 'X':
		return s.readNonDecimal(16)
	case 'e', 'E':
		if !s.optionalExp() {
			return token.Illegal
		}
		return s.checkAfterNumericLiteral(token.Number)
	case '.':
		s.ConsumeByte()
		return s.decLitAfterDecPointAfterDigits()
	case 'n':
		s.ConsumeByte()
		return s.checkAfterNumericLiteral(token.Number)
	}

	if isDecimalDigit(b) {
		return s.readLegacyOctal()
	}
	return s.checkAfterNumericLiteral(token.Number)
}

func (s *Scanner) decimalLiteralAfterFirstDigit() token.Token {
	if !s.decimalDigitsAfterFirstDigit() {
		return token.Illegal
	}
	if s.AdvanceIfByteEquals('.') {
		return s.decLitAfterDecPointAfterDigits()
	}
	if s.AdvanceIfByteEquals('n') {
		return s.checkAfterNumericLiteral(token.Number)
	}
	if !s.optionalExp() {
		return token.Illegal
	}
	return s.checkAfterNumericLiteral(token.Number)
}

func (s *Scanner) readNonDecimal(base int) token.Token {
	s.ConsumeByte()

	if b, ok := s.PeekByte(); ok && digitValue(b) < base {
		s.ConsumeByte()
	} else {
		s.error(invalidNumber(s.token.Idx0, s.src.Offset()))
		return token.Illegal
	}

	for {
		b, ok := s.PeekByte()
		if !ok {
			break
		}

		if b == '_' {
			s.ConsumeByte()
			if b, ok := s.PeekByte(); ok && digitValue(b) < base {
				s.ConsumeByte()
				continue
			}
			s.error(invalidNumber(s.token.Idx0, s.src.Offset()))
			return token.Illegal
		}
		if digitValue(b) >= base {
			break
		}
		s.ConsumeByte()
	}

	s.AdvanceIfByteEquals('n')
	return s.checkAfterNumericLiteral(token.Number)
}

// readLegacyOctal reads 0-prefixed integers such as 017 or 089.
func (s *Scanner) readLegacyOctal() token.Token {
	s.token.Octal = true
	decimal := false
	for {
		b, ok := s.PeekByte()
		if !ok || !isDecimalDigit(b) {
			break
		}
		if b >= '8' {
			decimal = true
		}
		s.ConsumeByte()
	}

	if decimal {
		if s.AdvanceIfByteEquals('.') {
			return s.decLitAfterDecPointAfterDigits()
		}
		if !s.optionalExp() {
			return token.Illegal
		}
	}
	return s.checkAfterNumericLiteral(token.Number)
}

func (s *Scanner) readDecimalDigits() bool {
	if b, ok := s.PeekByte(); ok && isDecimalDigit(b) {
		s.ConsumeByte()
	} else {
		s.error(invalidNumber(s.token.Idx0, s.src.Offset()))
		return false
	}
	return s.decimalDigitsAfterFirstDigit()
}

func (s *Scanner) decimalDigitsAfterFirstDigit() bool {
	for {
		b, ok := s.PeekByte()
		if !ok {
			return true
		}

		switch {
		case b == '_':
			s.ConsumeByte()
			if b, ok := s.PeekByte(); ok && isDecimalDigit(b) {
				s.ConsumeByte()
				continue
			}
			s.error(invalidNumber(s.token.Idx0, s.src.Offset()))
			return false
		case isDecimalDigit(b):
			s.ConsumeByte()
		default:
			return true
		}
	}
}

// decLitAfterDecPoint reads .5 style literals; the digit after the point is
// already known to be present.
func (s *Scanner) decLitAfterDecPoint() token.Token {
	if !s.readDecimalDigits() || !s.optionalExp() {
		return token.Illegal
	}
	return s.checkAfterNumericLiteral(token.Number)
}

func (s *Scanner) decLitAfterDecPointAfterDigits() token.Token {
	if b, ok := s.PeekByte(); ok && isDecimalDigit(b) {
		if !s.readDecimalDigits() {
			return token.Illegal
		}
	}
	if !s.optionalExp() {
		return token.Illegal
	}
	return s.checkAfterNumericLiteral(token.Number)
}

func (s *Scanner) optionalExp() bool {
	b, ok := s.PeekByte()
	if !ok || (b != 'e' && b != 'E') {
		return true
	}
	s.ConsumeByte()
	if b, ok := s.PeekByte(); ok && (b == '-' || b == '+') {
		s.ConsumeByte()
	}
	return s.readDecimalDigits()
}

// checkAfterNumericLiteral rejects an identifier or digit glued to a number,
// as in 3in or 0b12.
func (s *Scanner) checkAfterNumericLiteral(kind token.Token) token.Token {
	c, ok := s.PeekRune()
	if !ok || !(isIdentifierStart(c) || c == '\\' || c < 0x80 && isDecimalDigit(byte(c))) {
		return kind
	}

	start := s.src.Offset()
	for {
		if c, ok := s.PeekRune(); ok && isIdentifierPart(c) {
			s.ConsumeRune()
		} else {
			break
		}
	}
	s.error(invalidNumberEnd(start, max(s.src.Offset(), start+1)))
	return token.Illegal
}

// NumberValue returns the numeric value of a Number token's raw spelling.
// BigInt literals are rounded to the nearest float64.
func NumberValue(raw string) float64 {
	raw = strings.ReplaceAll(raw, "_", "")
	if strings.HasSuffix(raw, "n") {
		i, ok := new(big.Int).SetString(raw[:len(raw)-1], 0)
		if !ok {
			return math.NaN()
		}
		f, _ := new(big.Float).SetInt(i).Float64()
		return f
	}

	if len(raw) > 1 && raw[0] == '0' {
		base := 0
		digits := raw[2:]
		switch raw[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		default:
			if isDecimalDigit(raw[1]) && !strings.ContainsAny(raw, "89.eE") {
				base, digits = 8, raw[1:]
			}
		}
		if base != 0 {
			if v, err := strconv.ParseUint(digits, base, 64); err == nil {
				return float64(v)
			}
			i, _ := new(big.Int).SetString(digits, base)
			f, _ := new(big.Float).SetInt(i).Float64()
			return f
		}
	}

	// Out of range values come back as ±Inf together with ErrRange.
	f, _ := strconv.ParseFloat(raw, 64)
	return f
}

func isDecimalDigit(chr byte) bool {
	return '0' <= chr && chr <= '9'
}

func digitValue(chr byte) int {
	switch {
	case '0' <= chr && chr <= '9':
		return int(chr - '0')
	case 'a' <= chr && chr <= 'f':
		return int(chr - 'a' + 10)
	case 'A' <= chr && chr <= 'F':
		return int(chr - 'A' + 10)
	}
	return 16 // Larger than any legal digit value
}
