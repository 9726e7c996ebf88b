// Package scanner implements the ECMAScript lexer.
package scanner

import (
	"unicode/utf8"

	"github.com/t14raptor/esparse/ast"
	"github.com/t14raptor/esparse/token"
)

type Scanner struct {
	token Token
	prev  token.Token

	src Source

	// braces records the open { and ${ of the current nesting, innermost
	// first. Frames are never mutated so a Checkpoint can share them.
	braces *braceFrame

	err *Error

	// ValidateRegExp compiles regular expression bodies while scanning.
	ValidateRegExp bool
}

type braceFrame struct {
	template bool
	next     *braceFrame
}

func NewScanner(src string) *Scanner {
	return &Scanner{
		src: NewSource(src),
	}
}

// Next scans the next token. On a lexical error the token kind is
// token.Illegal and Err reports the failure.
func (s *Scanner) Next() Token {
	if s.err != nil {
		return s.illegal()
	}

	onNewLine, ok := s.skipTrivia()
	if !ok {
		return s.illegal()
	}

	start := s.src.Offset()
	s.token = Token{OnNewLine: onNewLine, Idx0: start}
	kind := token.Eof
	if !s.src.EOF() {
		kind = s.scan()
	}
	return s.finish(kind)
}

func (s *Scanner) finish(kind token.Token) Token {
	if s.err != nil {
		return s.illegal()
	}
	s.token.Kind = kind
	s.token.Idx1 = s.src.Offset()
	s.token.Raw = s.src.Slice(s.token.Idx0, s.token.Idx1)
	if !s.token.HasEscape && kind.IsIdentifierName() {
		s.token.Value = s.token.Raw
	}
	s.prev = kind
	return s.token
}

func (s *Scanner) illegal() Token {
	s.token.Kind = token.Illegal
	if s.err != nil {
		s.token.Idx0, s.token.Idx1 = s.err.Start, s.err.End
	}
	return s.token
}

func (s *Scanner) error(e Error) {
	if s.err == nil {
		s.err = &e
	}
}

// Err returns the first lexical error, or nil.
func (s *Scanner) Err() error {
	if s.err == nil {
		return nil
	}
	return *s.err
}

// Checkpoint is a snapshot of the complete scanner state.
type Checkpoint struct {
	pos    ast.Idx
	tok    Token
	prev   token.Token
	braces *braceFrame
}

func (s *Scanner) Checkpoint() Checkpoint {
	return Checkpoint{
		pos:    s.src.Offset(),
		tok:    s.token,
		prev:   s.prev,
		braces: s.braces,
	}
}

func (s *Scanner) Rewind(c Checkpoint) {
	s.src.SetPosition(c.pos)
	s.token = c.tok
	s.prev = c.prev
	s.braces = c.braces
}

func (s *Scanner) Offset() ast.Idx {
	return s.src.Offset()
}

// RescanAsRegExp re-reads tok, a / or /= token, as a regular expression
// literal.
func (s *Scanner) RescanAsRegExp(tok Token) Token {
	s.src.SetPosition(tok.Idx0 + 1)
	s.token = Token{OnNewLine: tok.OnNewLine, Idx0: tok.Idx0}
	return s.finish(s.scanRegExp(true))
}

// RescanAsDivide re-reads tok, a RegExp token, as a / or /= operator.
func (s *Scanner) RescanAsDivide(tok Token) Token {
	s.src.SetPosition(tok.Idx0 + 1)
	s.token = Token{OnNewLine: tok.OnNewLine, Idx0: tok.Idx0}
	return s.finish(s.readSlash())
}

func (s *Scanner) NextRune() (rune, bool) {
	return s.src.NextRune()
}

func (s *Scanner) NextByte() (byte, bool) {
	return s.src.NextByte()
}

func (s *Scanner) ConsumeRune() rune {
	r, _ := s.src.NextRune()
	return r
}

// consumeLiteralRune consumes the non-ASCII rune at the cursor of a string or
// template literal. Malformed UTF-8 is an error.
func (s *Scanner) consumeLiteralRune() (rune, bool) {
	start := s.src.Offset()
	r := s.ConsumeRune()
	if r == utf8.RuneError && s.src.Offset()-start == 1 {
		s.error(invalidUTF8(start, s.src.Offset()))
		return r, false
	}
	return r, true
}

func (s *Scanner) ConsumeByte() byte {
	return s.src.NextByteUnchecked()
}

func (s *Scanner) PeekRune() (rune, bool) {
	return s.src.PeekRune()
}

func (s *Scanner) PeekByte() (byte, bool) {
	return s.src.PeekByte()
}

func (s *Scanner) AdvanceIfByteEquals(b byte) bool {
	return s.src.AdvanceIfByteEquals(b)
}

func (s *Scanner) scan() token.Token {
	b, _ := s.PeekByte()

	switch b {
	case '(':
		s.ConsumeByte()
		return token.LeftParenthesis
	case ')':
		s.ConsumeByte()
		return token.RightParenthesis
	case '[':
		s.ConsumeByte()
		return token.LeftBracket
	case ']':
		s.ConsumeByte()
		return token.RightBracket
	case ';':
		s.ConsumeByte()
		return token.Semicolon
	case ',':
		s.ConsumeByte()
		return token.Comma
	case ':':
		s.ConsumeByte()
		return token.Colon
	case '~':
		s.ConsumeByte()
		return token.BitwiseNot
	case '{':
		s.ConsumeByte()
		s.braces = &braceFrame{next: s.braces}
		return token.LeftBrace
	case '}':
		s.ConsumeByte()
		if s.braces != nil && s.braces.template {
			kind := s.ReadTemplateLiteral(token.TemplateMiddle, token.TemplateTail)
			if kind == token.TemplateTail {
				s.braces = s.braces.next
			}
			return kind
		}
		if s.braces != nil {
			s.braces = s.braces.next
		}
		return token.RightBrace
	case '`':
		s.ConsumeByte()
		kind := s.ReadTemplateLiteral(token.TemplateHead, token.NoSubstitutionTemplate)
		if kind == token.TemplateHead {
			s.braces = &braceFrame{template: true, next: s.braces}
		}
		return kind
	case '"', '\'':
		return s.scanStringLiteral(b)
	case '.':
		s.ConsumeByte()
		return s.readDot()
	case '0':
		s.ConsumeByte()
		return s.readZero()
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		s.ConsumeByte()
		return s.decimalLiteralAfterFirstDigit()
	case '#':
		return s.scanPrivateIdentifier()
	case '\\':
		return s.identifierBackslashHandler()
	case '/':
		s.ConsumeByte()
		if regExpAllowed(s.prev) {
			return s.scanRegExp(false)
		}
		return s.readSlash()
	case '?':
		s.ConsumeByte()
		if s.AdvanceIfByteEquals('?') {
			if s.AdvanceIfByteEquals('=') {
				return token.CoalesceAssign
			}
			return token.Coalesce
		}
		// ?.5 is a conditional followed by a number.
		if next, _ := s.PeekByte(); next == '.' {
			if c, ok := s.src.PeekByteAt(1); !ok || !isDecimalDigit(c) {
				s.ConsumeByte()
				return token.QuestionDot
			}
		}
		return token.QuestionMark
	case '=':
		s.ConsumeByte()
		if s.AdvanceIfByteEquals('>') {
			return token.Arrow
		}
		return s.switch3(token.Assign, '=', token.Equal, '=', token.StrictEqual)
	case '!':
		s.ConsumeByte()
		return s.switch3(token.Not, '=', token.NotEqual, '=', token.StrictNotEqual)
	case '+':
		s.ConsumeByte()
		if s.AdvanceIfByteEquals('+') {
			return token.Increment
		}
		return s.switch2(token.Plus, token.AddAssign)
	case '-':
		s.ConsumeByte()
		if s.AdvanceIfByteEquals('-') {
			return token.Decrement
		}
		return s.switch2(token.Minus, token.SubtractAssign)
	case '*':
		s.ConsumeByte()
		if s.AdvanceIfByteEquals('*') {
			return s.switch2(token.Exponent, token.ExponentAssign)
		}
		return s.switch2(token.Multiply, token.MultiplyAssign)
	case '%':
		s.ConsumeByte()
		return s.switch2(token.Remainder, token.RemainderAssign)
	case '^':
		s.ConsumeByte()
		return s.switch2(token.ExclusiveOr, token.ExclusiveOrAssign)
	case '&':
		s.ConsumeByte()
		if s.AdvanceIfByteEquals('&') {
			return s.switch2(token.LogicalAnd, token.LogicalAndAssign)
		}
		return s.switch2(token.And, token.AndAssign)
	case '|':
		s.ConsumeByte()
		if s.AdvanceIfByteEquals('|') {
			return s.switch2(token.LogicalOr, token.LogicalOrAssign)
		}
		return s.switch2(token.Or, token.OrAssign)
	case '<':
		s.ConsumeByte()
		if s.AdvanceIfByteEquals('<') {
			return s.switch2(token.ShiftLeft, token.ShiftLeftAssign)
		}
		return s.switch2(token.Less, token.LessOrEqual)
	case '>':
		s.ConsumeByte()
		if s.AdvanceIfByteEquals('>') {
			if s.AdvanceIfByteEquals('>') {
				return s.switch2(token.UnsignedShiftRight, token.UnsignedShiftRightAssign)
			}
			return s.switch2(token.ShiftRight, token.ShiftRightAssign)
		}
		return s.switch2(token.Greater, token.GreaterOrEqual)
	}

	if b < utf8.RuneSelf {
		if asciiStart[b] {
			return s.scanIdentifier()
		}
		start := s.src.Offset()
		s.ConsumeByte()
		s.error(invalidCharacter(rune(b), start, s.src.Offset()))
		return token.Illegal
	}

	start := s.src.Offset()
	r := s.ConsumeRune()
	if isIdentifierStart(r) {
		s.src.SetPosition(start)
		return s.scanIdentifier()
	}
	s.error(invalidCharacter(r, start, s.src.Offset()))
	return token.Illegal
}

func (s *Scanner) switch2(tkn0, tkn1 token.Token) token.Token {
	if s.AdvanceIfByteEquals('=') {
		return tkn1
	}
	return tkn0
}

func (s *Scanner) switch3(tkn0 token.Token, chr1 byte, tkn1 token.Token, chr2 byte, tkn2 token.Token) token.Token {
	if s.AdvanceIfByteEquals(chr1) {
		if s.AdvanceIfByteEquals(chr2) {
			return tkn2
		}
		return tkn1
	}
	return tkn0
}

func (s *Scanner) readDot() token.Token {
	if b, ok := s.PeekByte(); ok && isDecimalDigit(b) {
		return s.decLitAfterDecPoint()
	}
	if b, _ := s.PeekByte(); b == '.' {
		if c, _ := s.src.PeekByteAt(1); c == '.' {
			s.ConsumeByte()
			s.ConsumeByte()
			return token.Ellipsis
		}
	}
	return token.Period
}

func (s *Scanner) readSlash() token.Token {
	return s.switch2(token.Slash, token.QuotientAssign)
}

// regExpAllowed reports whether a / after prev starts a regular expression.
// The parser corrects the guess where the grammar disagrees.
func regExpAllowed(prev token.Token) bool {
	switch prev {
	case token.Identifier, token.PrivateIdentifier, token.Number, token.String,
		token.RegExp, token.NoSubstitutionTemplate, token.TemplateTail,
		token.RightParenthesis, token.RightBracket, token.RightBrace,
		token.Increment, token.Decrement,
		token.This, token.Super, token.Null, token.Boolean,
		token.Let, token.Static, token.Async, token.Await, token.Of:
		return false
	}
	return true
}
