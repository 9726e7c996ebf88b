package scanner

import (
	"unicode/utf8"

	"github.com/t14raptor/esparse/ast"
)

// Source is a cursor over the UTF-8 input.
type Source struct {
	str string
	pos ast.Idx
}

func NewSource(src string) Source {
	return Source{str: src}
}

func (s *Source) EOF() bool {
	return int(s.pos) >= len(s.str)
}

func (s *Source) Offset() ast.Idx {
	return s.pos
}

func (s *Source) EndOffset() ast.Idx {
	return ast.Idx(len(s.str))
}

func (s *Source) SetPosition(pos ast.Idx) {
	s.pos = pos
}

func (s *Source) NextRune() (rune, bool) {
	r, ok := s.PeekRune()
	if ok {
		s.pos += ast.Idx(runeLen(r, s.str[s.pos:]))
	}
	return r, ok
}

func (s *Source) PeekRune() (rune, bool) {
	if s.EOF() {
		return 0, false
	}
	if b := s.str[s.pos]; b < utf8.RuneSelf {
		return rune(b), true
	}
	r, _ := utf8.DecodeRuneInString(s.str[s.pos:])
	return r, true
}

// runeLen is the number of bytes r occupies at the head of rest; invalid
// UTF-8 decodes to RuneError over a single byte.
func runeLen(r rune, rest string) int {
	if r < utf8.RuneSelf {
		return 1
	}
	_, n := utf8.DecodeRuneInString(rest)
	return n
}

func (s *Source) NextByte() (byte, bool) {
	if s.EOF() {
		return 0, false
	}
	return s.NextByteUnchecked(), true
}

func (s *Source) NextByteUnchecked() byte {
	b := s.str[s.pos]
	s.pos++
	return b
}

func (s *Source) PeekByte() (byte, bool) {
	if s.EOF() {
		return 0, false
	}
	return s.str[s.pos], true
}

// PeekByteAt returns the byte n positions after the cursor.
func (s *Source) PeekByteAt(n int) (byte, bool) {
	i := int(s.pos) + n
	if i >= len(s.str) {
		return 0, false
	}
	return s.str[i], true
}

func (s *Source) AdvanceIfByteEquals(b byte) (matched bool) {
	nextB, ok := s.PeekByte()
	if ok && nextB == b {
		s.pos++
		return true
	}
	return false
}

func (s *Source) FromPositionToCurrent(pos ast.Idx) string {
	return s.str[pos:s.pos]
}

func (s *Source) Slice(from, to ast.Idx) string {
	return s.str[from:to]
}
