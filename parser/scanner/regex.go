package scanner

import (
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/t14raptor/esparse/token"
)

const regExpFlags = "dgimsuyv"

// scanRegExp reads a regular expression literal after its opening slash. When
// force is false the literal is only a guess and a malformed one is read as a
// division operator instead.
func (s *Scanner) scanRegExp(force bool) token.Token {
	slash := s.src.Offset()
	e, ok := s.readRegExp()
	if ok {
		return token.RegExp
	}
	if force {
		s.error(e)
		return token.Illegal
	}
	s.src.SetPosition(slash)
	s.token.Value = ""
	return s.readSlash()
}

func (s *Scanner) readRegExp() (Error, bool) {
	start := s.token.Idx0
	bodyStart := s.src.Offset()

	var inCharClass bool
	for {
		chr, ok := s.NextRune()
		if !ok || isLineTerminator(chr) {
			return unterminatedRegExp(start, s.src.Offset()), false
		}

		if chr == '\\' {
			if chr, ok = s.NextRune(); !ok || isLineTerminator(chr) {
				return unterminatedRegExp(start, s.src.Offset()), false
			}
		} else if chr == '/' && !inCharClass {
			break
		} else if chr == '[' {
			inCharClass = true
		} else if chr == ']' {
			inCharClass = false
		}
	}
	pattern := s.src.Slice(bodyStart, s.src.Offset()-1)

	flagsStart := s.src.Offset()
	for {
		chr, ok := s.PeekRune()
		if !ok || !(isIdentifierPart(chr) || chr == '\\') {
			break
		}
		at := s.src.Offset()
		s.ConsumeRune()
		if !strings.ContainsRune(regExpFlags, chr) {
			return regExpFlag(chr, at, s.src.Offset()), false
		}
		if strings.ContainsRune(s.src.Slice(flagsStart, at), chr) {
			return regExpFlagTwice(chr, at, s.src.Offset()), false
		}
	}
	flags := s.src.FromPositionToCurrent(flagsStart)

	if s.ValidateRegExp {
		if err := validateRegExp(pattern, flags); err != nil {
			return invalidRegExp(err, start, s.src.Offset()), false
		}
	}

	s.token.Value = pattern
	return Error{}, true
}

// validateRegExp compiles the pattern in ECMAScript mode. Patterns using the
// unicode flags rely on syntax the engine does not implement and are skipped.
func validateRegExp(pattern, flags string) error {
	if strings.ContainsAny(flags, "uv") {
		return nil
	}
	opts := regexp2.RegexOptions(regexp2.ECMAScript)
	if strings.ContainsRune(flags, 'i') {
		opts |= regexp2.IgnoreCase
	}
	if strings.ContainsRune(flags, 'm') {
		opts |= regexp2.Multiline
	}
	if strings.ContainsRune(flags, 's') {
		opts |= regexp2.Singleline
	}
	_, err := regexp2.Compile(pattern, opts)
	return err
}
