package ast

type PropertyKind string

const (
	PropertyKindValue  PropertyKind = "value"
	PropertyKindGet    PropertyKind = "get"
	PropertyKindSet    PropertyKind = "set"
	PropertyKindMethod PropertyKind = "method"
)

type (
	Properties []Property

	// Property is a member of an object literal: *PropertyKeyed,
	// *PropertyShort, *PropertyMethod or *SpreadElement.
	Property interface {
		Node
		_property()
	}

	ObjectLiteral struct {
		Span
		Properties Properties
	}

	// PropertyKeyed is key: value. Key is an *Identifier, *StringLiteral or
	// *NumberLiteral unless Computed is set.
	PropertyKeyed struct {
		Span
		Key      Expr
		Computed bool
		Value    Expr
	}

	// PropertyShort is the shorthand {name}. Initializer is only present on
	// literals that were reinterpreted as patterns ({name = 1} = ...).
	PropertyShort struct {
		Span
		Name        *Identifier
		Initializer Expr
	}

	PropertyMethod struct {
		Span
		Kind     PropertyKind
		Key      Expr
		Computed bool
		Function *FunctionLiteral
	}
)

func (*ObjectLiteral) _expr() {}

func (*PropertyKeyed) _property()  {}
func (*PropertyShort) _property()  {}
func (*PropertyMethod) _property() {}
func (*SpreadElement) _property()  {}
