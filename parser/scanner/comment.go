package scanner

import "unicode"

func isLineTerminator(chr rune) bool {
	switch chr {
	case '\u000a', '\u000d', '\u2028', '\u2029':
		return true
	}
	return false
}

func isLineWhiteSpace(chr rune) bool {
	switch chr {
	case '\u0009', '\u000b', '\u000c', ' ', '\u00a0', '\ufeff':
		return true
	case '\u000a', '\u000d', '\u2028', '\u2029':
		return false
	}
	return unicode.Is(unicode.Zs, chr)
}

// skipTrivia skips whitespace, comments and a leading hashbang line. It
// reports whether a line terminator was crossed.
func (s *Scanner) skipTrivia() (onNewLine bool, ok bool) {
	if s.src.Offset() == 0 {
		if b, _ := s.src.PeekByteAt(1); b == '!' && s.AdvanceIfByteEquals('#') {
			s.skipSingleLineComment()
		}
	}

	for {
		b, ok := s.PeekByte()
		if !ok {
			return onNewLine, true
		}

		switch b {
		case ' ', '\t', '\v', '\f':
			s.ConsumeByte()
		case '\n', '\r':
			s.ConsumeByte()
			onNewLine = true
		case '/':
			next, _ := s.src.PeekByteAt(1)
			switch next {
			case '/':
				s.skipSingleLineComment()
			case '*':
				hasLineTerminator, ok := s.skipMultiLineComment()
				if !ok {
					return onNewLine, false
				}
				onNewLine = onNewLine || hasLineTerminator
			default:
				return onNewLine, true
			}
		default:
			if b < 0x80 {
				return onNewLine, true
			}
			r, _ := s.PeekRune()
			switch {
			case r == '\u2028' || r == '\u2029':
				onNewLine = true
			case isLineWhiteSpace(r):
			default:
				return onNewLine, true
			}
			s.ConsumeRune()
		}
	}
}

// skipSingleLineComment stops before the line terminator.
func (s *Scanner) skipSingleLineComment() {
	for {
		p, ok := s.PeekRune()
		if !ok || isLineTerminator(p) {
			return
		}
		s.ConsumeRune()
	}
}

func (s *Scanner) skipMultiLineComment() (hasLineTerminator bool, ok bool) {
	start := s.src.Offset()
	s.ConsumeByte() // /
	s.ConsumeByte() // *
	for {
		p, ok := s.NextRune()
		if !ok {
			s.error(unterminatedMultiLineComment(start, s.src.Offset()))
			return hasLineTerminator, false
		}
		if isLineTerminator(p) {
			hasLineTerminator = true
		}
		if p == '*' && s.AdvanceIfByteEquals('/') {
			return hasLineTerminator, true
		}
	}
}
