package ast

type (
	FunctionLiteral struct {
		Span
		Name   *Identifier
		Params *ParameterList
		Body   *FunctionBody

		Async, Generator bool
	}

	// ParameterList covers the parentheses when present.
	ParameterList struct {
		Span
		List []*PatternElement
		Rest Target
	}

	// FunctionBody is the braced body of a function with its directive
	// prologue.
	FunctionBody struct {
		Span
		Directives []*Directive
		List       Statements
	}

	// ArrowFunctionLiteral has either a block Body or a concise Expression
	// body.
	ArrowFunctionLiteral struct {
		Span
		Params     *ParameterList
		Body       *FunctionBody
		Expression Expr
		Async      bool
	}
)

// Strict reports whether the body opts into strict mode.
func (b *FunctionBody) Strict() bool {
	for _, d := range b.Directives {
		if d.Raw[1:len(d.Raw)-1] == "use strict" {
			return true
		}
	}
	return false
}

// Simple reports whether the list holds only plain identifiers, without
// defaults, patterns or rest.
func (l *ParameterList) Simple() bool {
	if l.Rest != nil {
		return false
	}
	for _, p := range l.List {
		if _, ok := p.Target.(*Identifier); !ok || p.Initializer != nil {
			return false
		}
	}
	return true
}

func (*FunctionLiteral) _expr()      {}
func (*ArrowFunctionLiteral) _expr() {}
