package scanner

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tdewolff/test"

	"github.com/t14raptor/esparse/token"
)

func assertTokens(t *testing.T, s string, kinds ...token.Token) {
	t.Helper()
	stringify := helperStringify(s)
	sc := NewScanner(s)
	i := 0
	for {
		tok := sc.Next()
		if tok.Kind == token.Eof {
			assert.Equal(t, len(kinds), i, "when the input ended we must be at the end in "+stringify)
			break
		}
		if tok.Kind == token.Illegal {
			t.Errorf("unexpected error %v in %s", sc.Err(), stringify)
			break
		}
		assert.False(t, i >= len(kinds), "index must not exceed token count in "+stringify)
		if i < len(kinds) {
			assert.Equal(t, kinds[i], tok.Kind, "token kinds must match at index "+strconv.Itoa(i)+" in "+stringify)
		}
		i++
	}
}

func helperStringify(input string) string {
	s := ""
	sc := NewScanner(input)
	for i := 0; i < 10; i++ {
		tok := sc.Next()
		if tok.Kind == token.Eof {
			break
		}
		if tok.Kind == token.Illegal {
			s += "Illegal('" + sc.Err().Error() + "')"
			break
		}
		s += tok.Kind.String() + "('" + tok.Raw + "') "
	}
	return s
}

// scanOne returns the only token of s.
func scanOne(t *testing.T, s string) Token {
	t.Helper()
	sc := NewScanner(s)
	tok := sc.Next()
	if tok.Kind == token.Illegal {
		t.Fatalf("scanning %q: %v", s, sc.Err())
	}
	if next := sc.Next(); next.Kind != token.Eof {
		t.Fatalf("scanning %q: trailing %s", s, next.Kind)
	}
	return tok
}

////////////////////////////////////////////////////////////////

func TestTokens(t *testing.T) {
	assertTokens(t, " \t\v\f\u00a0\ufeff\u2000")
	assertTokens(t, "\n\r\r\n\u2028\u2029")
	assertTokens(t, "5.2 .04 0x0F 5e99 1_000 10n", token.Number, token.Number, token.Number, token.Number, token.Number, token.Number)
	assertTokens(t, "a = 'string'", token.Identifier, token.Assign, token.String)
	assertTokens(t, "/*comment*/ //comment")
	assertTokens(t, "{ } ( ) [ ]", token.LeftBrace, token.RightBrace, token.LeftParenthesis, token.RightParenthesis, token.LeftBracket, token.RightBracket)
	assertTokens(t, ". ; , < > <=", token.Period, token.Semicolon, token.Comma, token.Less, token.Greater, token.LessOrEqual)
	assertTokens(t, ">= == != === !==", token.GreaterOrEqual, token.Equal, token.NotEqual, token.StrictEqual, token.StrictNotEqual)
	assertTokens(t, "+ - * % ++ -- **", token.Plus, token.Minus, token.Multiply, token.Remainder, token.Increment, token.Decrement, token.Exponent)
	assertTokens(t, "<< >> >>> & | ^", token.ShiftLeft, token.ShiftRight, token.UnsignedShiftRight, token.And, token.Or, token.ExclusiveOr)
	assertTokens(t, "! ~ && || ? : ??", token.Not, token.BitwiseNot, token.LogicalAnd, token.LogicalOr, token.QuestionMark, token.Colon, token.Coalesce)
	assertTokens(t, "= += -= *= %= <<= **=", token.Assign, token.AddAssign, token.SubtractAssign, token.MultiplyAssign, token.RemainderAssign, token.ShiftLeftAssign, token.ExponentAssign)
	assertTokens(t, ">>= >>>= &= |= ^= =>", token.ShiftRightAssign, token.UnsignedShiftRightAssign, token.AndAssign, token.OrAssign, token.ExclusiveOrAssign, token.Arrow)
	assertTokens(t, "&&= ||= ??= ?. ...", token.LogicalAndAssign, token.LogicalOrAssign, token.CoalesceAssign, token.QuestionDot, token.Ellipsis)
	assertTokens(t, ">>>=>>>>=", token.UnsignedShiftRightAssign, token.UnsignedShiftRight, token.GreaterOrEqual)
	assertTokens(t, "a?.5:b", token.Identifier, token.QuestionMark, token.Number, token.Colon, token.Identifier)
	assertTokens(t, "#x in y", token.PrivateIdentifier, token.In, token.Identifier)
	assertTokens(t, "let of async await yield static", token.Let, token.Of, token.Async, token.Await, token.Yield, token.Static)
	assertTokens(t, "true null this", token.Boolean, token.Null, token.This)
	assertTokens(t, "#!/usr/bin/env node\na", token.Identifier)
}

func TestRegExpGuess(t *testing.T) {
	assertTokens(t, "a = /.*/g;", token.Identifier, token.Assign, token.RegExp, token.Semicolon)
	assertTokens(t, "a = /[a-z/]/g", token.Identifier, token.Assign, token.RegExp)
	assertTokens(t, "a / b / c", token.Identifier, token.Slash, token.Identifier, token.Slash, token.Identifier)
	assertTokens(t, "(a) / 2", token.LeftParenthesis, token.Identifier, token.RightParenthesis, token.Slash, token.Number)
	assertTokens(t, "x /= 2", token.Identifier, token.QuotientAssign, token.Number)
	assertTokens(t, "return /a/", token.Return, token.RegExp)

	// A guess that does not form a literal falls back to division.
	assertTokens(t, "= /a", token.Assign, token.Slash, token.Identifier)
}

func TestRegExpRescan(t *testing.T) {
	sc := NewScanner("/=a/i")
	tok := sc.Next()
	test.T(t, tok.Kind, token.RegExp)

	sc = NewScanner("a /=b/g")
	sc.Next()
	tok = sc.Next()
	test.T(t, tok.Kind, token.QuotientAssign)
	tok = sc.RescanAsRegExp(tok)
	test.T(t, tok.Kind, token.RegExp)
	test.String(t, tok.Value, "=b")
	test.String(t, tok.Flags(), "g")
	test.T(t, sc.Next().Kind, token.Eof)

	sc = NewScanner("/b/g")
	tok = sc.Next()
	tok = sc.RescanAsDivide(tok)
	test.T(t, tok.Kind, token.Slash)
	test.T(t, sc.Next().Kind, token.Identifier)
}

func TestRegExpErrors(t *testing.T) {
	var tests = []struct {
		src string
		msg string
	}{
		{"/a/gg", "duplicate regular expression flag `g`"},
		{"/a/x", "invalid regular expression flag `x`"},
		{"/a\n/", "unterminated regular expression"},
		{"/[/", "unterminated regular expression"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			sc := NewScanner("a " + tt.src)
			sc.Next()
			tok := sc.RescanAsRegExp(sc.Next())
			test.T(t, tok.Kind, token.Illegal)
			test.String(t, sc.Err().Error(), tt.msg)
		})
	}

	sc := NewScanner("a /(/")
	sc.ValidateRegExp = true
	sc.Next()
	tok := sc.RescanAsRegExp(sc.Next())
	test.T(t, tok.Kind, token.Illegal)
	test.That(t, strings.HasPrefix(sc.Err().Error(), "invalid regular expression: "), sc.Err().Error())

	sc = NewScanner("a /(/u")
	sc.ValidateRegExp = true
	sc.Next()
	tok = sc.RescanAsRegExp(sc.Next())
	test.T(t, tok.Kind, token.RegExp, "unicode patterns are not compiled")
}

func TestStrings(t *testing.T) {
	var tests = []struct {
		src    string
		value  string
		escape bool
		octal  bool
	}{
		{`'abc'`, "abc", false, false},
		{`"a\nb"`, "a\nb", true, false},
		{`'\x41B\u{43}'`, "ABC", true, false},
		{`'\u{1F600}'`, "\U0001F600", true, false},
		{`'\0'`, "\x00", true, false},
		{`'\101'`, "A", true, true},
		{`'\8'`, "8", true, true},
		{`'a\
b'`, "ab", true, false},
		{`'\q'`, "q", true, false},
		{`"ümlaut"`, "ümlaut", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tok := scanOne(t, tt.src)
			test.T(t, tok.Kind, token.String)
			test.String(t, tok.Raw, tt.src)
			test.String(t, tok.Value, tt.value)
			test.T(t, tok.HasEscape, tt.escape)
			test.T(t, tok.Octal, tt.octal)
		})
	}
}

func TestTemplates(t *testing.T) {
	sc := NewScanner("`a${b}c${ {d} }e`")
	want := []struct {
		kind  token.Token
		value string
	}{
		{token.TemplateHead, "a"},
		{token.Identifier, "b"},
		{token.TemplateMiddle, "c"},
		{token.LeftBrace, ""},
		{token.Identifier, "d"},
		{token.RightBrace, ""},
		{token.TemplateTail, "e"},
	}
	for i, w := range want {
		tok := sc.Next()
		test.T(t, tok.Kind, w.kind, "token "+strconv.Itoa(i))
		if w.value != "" {
			test.String(t, tok.Value, w.value)
		}
	}
	test.T(t, sc.Next().Kind, token.Eof)

	tok := scanOne(t, "`line\r\nnext`")
	test.String(t, tok.Value, "line\nnext")
	test.String(t, tok.TemplateLiteral(), "line\r\nnext")

	tok = scanOne(t, "`\\unicode`")
	test.T(t, tok.Kind, token.NoSubstitutionTemplate)
	test.That(t, tok.Invalid, "invalid escape must mark the element")

	tok = scanOne(t, "`a$b`")
	test.String(t, tok.Value, "a$b")
}

func TestNumbers(t *testing.T) {
	var tests = []struct {
		src   string
		value float64
		octal bool
	}{
		{"0", 0, false},
		{"42", 42, false},
		{"1_000", 1000, false},
		{"0x1F", 31, false},
		{"0b101", 5, false},
		{"0o17", 15, false},
		{"017", 15, true},
		{"019", 19, true},
		{"1e3", 1000, false},
		{"2.5E-1", 0.25, false},
		{".5", 0.5, false},
		{"5.", 5, false},
		{"10n", 10, false},
		{"0xFFn", 255, false},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tok := scanOne(t, tt.src)
			test.T(t, tok.Kind, token.Number)
			test.T(t, NumberValue(tok.Raw), tt.value)
			test.T(t, tok.Octal, tt.octal)
		})
	}
}

func TestIdentifiers(t *testing.T) {
	tok := scanOne(t, `\u0061bc`)
	test.T(t, tok.Kind, token.Identifier)
	test.String(t, tok.Value, "abc")
	test.That(t, tok.HasEscape)

	tok = scanOne(t, `\u0069f`)
	test.T(t, tok.Kind, token.Identifier, "escaped keywords scan as identifiers")
	test.String(t, tok.Value, "if")

	tok = scanOne(t, `a\u{62}`)
	test.String(t, tok.Value, "ab")

	tok = scanOne(t, "if")
	test.T(t, tok.Kind, token.If)

	tok = scanOne(t, "interface")
	test.T(t, tok.Kind, token.Identifier)

	tok = scanOne(t, "π\u200d")
	test.String(t, tok.Value, "π\u200d")

	tok = scanOne(t, `#a`)
	test.T(t, tok.Kind, token.PrivateIdentifier)
	test.String(t, tok.Value, "a")

	test.That(t, IsIdentifierName("$_a1"))
	test.That(t, !IsIdentifierName("1a"))
	test.That(t, !IsIdentifierName(""))
}

func TestOnNewLine(t *testing.T) {
	var tests = []struct {
		src     string
		newline bool
	}{
		{"a b", false},
		{"a\nb", true},
		{"a\r\nb", true},
		{"a\u2028b", true},
		{"a /* */ b", false},
		{"a /*\n*/ b", true},
		{"a // c\nb", true},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			sc := NewScanner(tt.src)
			first := sc.Next()
			test.That(t, !first.OnNewLine)
			second := sc.Next()
			test.T(t, second.Kind, token.Identifier)
			test.T(t, second.OnNewLine, tt.newline)
		})
	}
}

func TestSpans(t *testing.T) {
	sc := NewScanner("  foo = 'x'")
	tok := sc.Next()
	test.T(t, tok.Span().String(), "2:5")
	tok = sc.Next()
	test.T(t, tok.Span().String(), "6:7")
	tok = sc.Next()
	test.T(t, tok.Span().String(), "8:11")
	test.String(t, tok.Raw, "'x'")
}

func TestErrors(t *testing.T) {
	var tests = []struct {
		src  string
		msg  string
		span string
	}{
		{"'abc", "unterminated string", "0:4"},
		{"'abc\ndef'", "unterminated string", "0:4"},
		{"`abc", "unterminated template literal", "0:4"},
		{"/* abc", "unterminated multiline comment", ""},
		{"'\\x4'", "invalid escape sequence", ""},
		{"3in", "invalid characters after number", "1:3"},
		{"@", "invalid character `@`", "0:1"},
		{"\\u0030a", "invalid unicode escape sequence", ""},
		{"#1", "invalid character `#`", ""},
		{"'a\xff'", "invalid UTF-8 encoding", "2:3"},
		{"'\\n\xff'", "invalid UTF-8 encoding", "3:4"},
		{"`a\xfe`", "invalid UTF-8 encoding", "2:3"},
		{"`\\n\xc3`", "invalid UTF-8 encoding", "3:4"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			sc := NewScanner(tt.src)
			var tok Token
			for i := 0; i < 5; i++ {
				if tok = sc.Next(); tok.Kind == token.Illegal || tok.Kind == token.Eof {
					break
				}
			}
			test.T(t, tok.Kind, token.Illegal)
			err, ok := sc.Err().(Error)
			test.That(t, ok, "errors are scanner.Error values")
			test.String(t, err.Message, tt.msg)
			if tt.span != "" {
				test.String(t, err.Span().String(), tt.span)
			}
			test.T(t, sc.Next().Kind, token.Illegal, "the scanner stays failed")
		})
	}
}

func TestNonASCIILiterals(t *testing.T) {
	for _, src := range []string{"'é\uFFFD'", "'\\té'", "`ü\uFFFD`"} {
		sc := NewScanner(src)
		for tok := sc.Next(); tok.Kind != token.Eof; tok = sc.Next() {
			test.That(t, tok.Kind != token.Illegal, src)
		}
		test.Error(t, sc.Err())
	}
}

func TestCheckpoint(t *testing.T) {
	sc := NewScanner("a `b${c}d` e")
	test.T(t, sc.Next().Kind, token.Identifier)
	cp := sc.Checkpoint()
	head := sc.Next()
	test.T(t, head.Kind, token.TemplateHead)
	sc.Next()
	sc.Rewind(cp)

	test.T(t, sc.Next(), head)
	test.T(t, sc.Next().Kind, token.Identifier)
	test.T(t, sc.Next().Kind, token.TemplateTail, "template state is restored")
	test.T(t, sc.Next().Kind, token.Identifier)
	test.T(t, sc.Next().Kind, token.Eof)
}
