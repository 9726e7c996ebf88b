package ast

type (
	// Identifier is used both as a reference expression and as a binding or
	// assignment target.
	Identifier struct {
		Span
		Name string
	}

	// PrivateIdentifier is a #name inside a class body. Name excludes the #.
	PrivateIdentifier struct {
		Span
		Name string
	}
)

func (*Identifier) _expr()        {}
func (*PrivateIdentifier) _expr() {}
