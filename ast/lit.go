package ast

type (
	BooleanLiteral struct {
		Span
		Value bool
	}

	NullLiteral struct {
		Span
	}

	// NumberLiteral keeps its source spelling. BigInt literals (Raw ending in
	// "n") are stored here too with Value holding the nearest float.
	NumberLiteral struct {
		Span
		Raw   string
		Value float64
	}

	StringLiteral struct {
		Span
		// Raw includes the quotes.
		Raw   string
		Value string
	}

	RegExpLiteral struct {
		Span
		Pattern string
		Flags   string
	}
)

func (*BooleanLiteral) _expr() {}
func (*NullLiteral) _expr()    {}
func (*NumberLiteral) _expr()  {}
func (*StringLiteral) _expr()  {}
func (*RegExpLiteral) _expr()  {}
