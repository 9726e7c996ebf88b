package token

import (
	"sort"
	"testing"

	"github.com/tdewolff/test"
)

func TestTokenString(t *testing.T) {
	test.String(t, ShiftLeftAssign.String(), "<<=")
	test.String(t, InstanceOf.String(), "instanceof")
	test.String(t, NoSubstitutionTemplate.String(), "Template")
	test.String(t, Undetermined.String(), "UNKNOWN")
	test.String(t, Token(10000).String(), "token(10000)")
}

func TestTokenName(t *testing.T) {
	var tests = []struct {
		tok  Token
		name string
	}{
		{ShiftLeft, "LeftShift"},
		{ShiftLeftAssign, "LeftShift"},
		{Coalesce, "Nullish"},
		{CoalesceAssign, "Nullish"},
		{Greater, "MoreThan"},
		{Increment, "Increase"},
		{Typeof, "Typeof"},
		{Let, "Let"},
		{Comma, ","},
	}
	for _, tt := range tests {
		t.Run(tt.tok.String(), func(t *testing.T) {
			test.String(t, tt.tok.Name(), tt.name)
		})
	}
}

func TestBinaryOf(t *testing.T) {
	for tok := Assign; tok <= CoalesceAssign; tok++ {
		if !tok.IsAssign() {
			t.Errorf("%s must be an assignment operator", tok)
		}
		if tok == Assign {
			test.T(t, tok.BinaryOf(), Undetermined)
			continue
		}
		bin := tok.BinaryOf()
		test.That(t, bin != Undetermined, tok.String(), "has no binary operator")
		test.String(t, bin.String()+"=", tok.String())
		test.String(t, bin.Name(), tok.Name())
	}
	test.T(t, Plus.BinaryOf(), Undetermined)
}

func TestKeywords(t *testing.T) {
	test.T(t, MatchKeyword("if"), If)
	test.T(t, MatchKeyword("await"), Await)
	test.T(t, MatchKeyword("true"), Boolean)
	test.T(t, MatchKeyword("interface"), Identifier)
	test.T(t, MatchKeyword("foo"), Identifier)

	test.That(t, IsStrictReserved("interface"))
	test.That(t, IsStrictReserved("yield"))
	test.That(t, IsStrictReserved("let"))
	test.That(t, !IsStrictReserved("await"))
	test.That(t, !IsStrictReserved("if"))

	test.That(t, If.IsKeyword() && Of.IsKeyword())
	test.That(t, !Identifier.IsKeyword())
	test.That(t, Let.IsContextual() && Async.IsContextual())
	test.That(t, !Class.IsContextual())
	test.That(t, Null.IsIdentifierName() && Class.IsIdentifierName())
	test.That(t, !Comma.IsIdentifierName())

	kws := Keywords()
	sort.Strings(kws)
	i := sort.SearchStrings(kws, "instanceof")
	test.That(t, i < len(kws) && kws[i] == "instanceof")
}
