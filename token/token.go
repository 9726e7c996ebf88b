// Package token defines the lexical tokens of ECMAScript together with the
// spellings and stable names used by the printers.
package token

import (
	"strconv"

	"golang.org/x/exp/maps"
)

// Token is the set of lexical tokens in JavaScript.
type Token int

// String returns the source spelling of the token, or a descriptive name for
// token classes (identifiers, literals).
func (t Token) String() string {
	if t == 0 {
		return "UNKNOWN"
	}
	if t < Token(len(token2string)) && token2string[t] != "" {
		return token2string[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// Name returns the stable operator tag used in AST documents, e.g. "LeftShift"
// for both << and <<=. Tokens that are not operators return their String form.
func (t Token) Name() string {
	if t < Token(len(token2name)) && token2name[t] != "" {
		return token2name[t]
	}
	return t.String()
}

type keyword struct {
	token Token
	// strict marks words that are only reserved in strict mode code.
	strict bool
}

// MatchKeyword returns the token for an identifier name. Names that are not
// keywords yield Identifier.
func MatchKeyword(literal string) Token {
	if k, exists := keywordTable[literal]; exists && !k.strict {
		return k.token
	}
	return Identifier
}

// IsStrictReserved reports whether name is reserved in strict mode code only.
func IsStrictReserved(name string) bool {
	switch name {
	case "let", "static", "yield":
		return true
	}
	k, exists := keywordTable[name]
	return exists && k.strict
}

// Keywords returns every reserved and contextual keyword spelling.
func Keywords() []string {
	return maps.Keys(keywordTable)
}

// IsKeyword reports whether the token is spelled like an identifier but is a
// keyword or contextual keyword.
func (t Token) IsKeyword() bool {
	return t >= firstKeyword && t <= lastKeyword
}

// IsIdentifierName reports whether the token may be used where an
// IdentifierName is expected (property names, labels after dots, ...).
func (t Token) IsIdentifierName() bool {
	return t == Identifier || t.IsKeyword() || t == Boolean || t == Null
}

// IsContextual reports whether the token is a keyword only in some contexts and
// may otherwise be used as an identifier.
func (t Token) IsContextual() bool {
	return t >= Let && t <= Of
}

// IsAssign reports whether the token is = or a compound assignment operator.
func (t Token) IsAssign() bool {
	return t >= Assign && t <= CoalesceAssign
}

// BinaryOf returns the binary operator underlying a compound assignment, e.g.
// ShiftLeft for ShiftLeftAssign. It returns 0 for plain assignment and for
// tokens that are not assignments.
func (t Token) BinaryOf() Token {
	return assign2binary[t]
}
