package ast

import "github.com/t14raptor/esparse/token"

type (
	Expressions []Expr

	// All expression nodes implement the Expr interface.
	Expr interface {
		Node
		_expr()
	}

	// ExprMarker makes a type declared outside this package an Expr. The
	// parser embeds it in placeholder nodes that never reach a finished tree.
	ExprMarker struct{}

	// Target is the left side of an assignment, a for-in/of head or a binding:
	// an Identifier, a MemberExpression (assignment only), an ArrayPattern or
	// an ObjectPattern.
	Target interface {
		Node
		_target()
	}

	YieldExpression struct {
		Span
		Argument Expr
		Delegate bool
	}

	AwaitExpression struct {
		Span
		Argument Expr
	}

	// ArrayLiteral holds nil entries for holes.
	ArrayLiteral struct {
		Span
		Elements Expressions
	}

	AssignExpression struct {
		Span
		Operator token.Token
		Left     Target
		Right    Expr
	}

	// BinaryExpression covers arithmetic, bitwise, relational and logical
	// operators.
	BinaryExpression struct {
		Span
		Operator token.Token
		Left     Expr
		Right    Expr
	}

	ConditionalExpression struct {
		Span
		Test       Expr
		Consequent Expr
		Alternate  Expr
	}

	CallExpression struct {
		Span
		Callee    Expr
		Arguments Expressions
		Optional  bool
	}

	// MemberExpression is a property access. Property is an *Identifier for
	// static access, a *PrivateIdentifier for private names and any Expr when
	// Computed is set.
	MemberExpression struct {
		Span
		Object   Expr
		Property Expr
		Computed bool
		Optional bool
	}

	// NewExpression has nil Arguments when the argument list was omitted.
	NewExpression struct {
		Span
		Callee    Expr
		Arguments Expressions
	}

	SequenceExpression struct {
		Span
		Sequence Expressions
	}

	// ParenthesizedExpression keeps grouping parentheses; its span includes
	// them.
	ParenthesizedExpression struct {
		Span
		Expression Expr
	}

	SpreadElement struct {
		Span
		Argument Expr
	}

	UnaryExpression struct {
		Span
		Operator token.Token
		Operand  Expr
	}

	UpdateExpression struct {
		Span
		Operator token.Token
		Operand  Expr
		Postfix  bool
	}

	TemplateElement struct {
		Span
		// Raw is the source text between the delimiters.
		Raw string
		// Cooked is the escape-processed value; Valid is false when the raw text
		// holds an escape that has no cooked value (tagged templates only).
		Cooked string
		Valid  bool
	}

	TemplateLiteral struct {
		Span
		Tag         Expr
		Quasis      []*TemplateElement
		Expressions Expressions
	}

	ThisExpression struct {
		Span
	}

	SuperExpression struct {
		Span
	}

	// MetaProperty is new.target or import.meta.
	MetaProperty struct {
		Span
		Meta     *Identifier
		Property *Identifier
	}
)

func (*Identifier) _target()       {}
func (*MemberExpression) _target() {}
func (*ArrayPattern) _target()     {}
func (*ObjectPattern) _target()    {}

func (ExprMarker) _expr()               {}
func (*ArrayLiteral) _expr()            {}
func (*AssignExpression) _expr()        {}
func (*YieldExpression) _expr()         {}
func (*AwaitExpression) _expr()         {}
func (*BinaryExpression) _expr()        {}
func (*CallExpression) _expr()          {}
func (*ConditionalExpression) _expr()   {}
func (*MemberExpression) _expr()        {}
func (*NewExpression) _expr()           {}
func (*SequenceExpression) _expr()      {}
func (*ParenthesizedExpression) _expr() {}
func (*SpreadElement) _expr()           {}
func (*TemplateLiteral) _expr()         {}
func (*ThisExpression) _expr()          {}
func (*SuperExpression) _expr()         {}
func (*UnaryExpression) _expr()         {}
func (*UpdateExpression) _expr()        {}
func (*MetaProperty) _expr()            {}
