package ast

type (
	// ArrayPattern is [a, , b = 1, ...rest]. Holes are nil elements.
	ArrayPattern struct {
		Span
		Elements []*PatternElement
		Rest     Target
	}

	// ObjectPattern is {a, b: c, [k]: d = 1, ...rest}.
	ObjectPattern struct {
		Span
		Properties []*PatternProperty
		Rest       Target
	}

	// PatternElement is one element of an array pattern, or the value of a
	// pattern property, with its optional default.
	PatternElement struct {
		Span
		Target      Target
		Initializer Expr
	}

	// PatternProperty is one property of an object pattern. Shorthand
	// properties have Key and Value.Target pointing at the same *Identifier.
	PatternProperty struct {
		Span
		Key       Expr
		Computed  bool
		Shorthand bool
		Value     *PatternElement
	}
)
