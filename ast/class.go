package ast

type (
	ClassLiteral struct {
		Span
		Name       *Identifier
		SuperClass Expr
		Body       ClassElements
	}

	ClassElements []ClassElement

	// ClassElement is a *MethodDefinition, *FieldDefinition or *StaticBlock.
	ClassElement interface {
		Node
		_classElement()
	}

	// FieldDefinition is a class field. Key is an *Identifier,
	// *PrivateIdentifier, *StringLiteral or *NumberLiteral unless Computed.
	FieldDefinition struct {
		Span
		Key         Expr
		Initializer Expr
		Computed    bool
		Static      bool
	}

	MethodDefinition struct {
		Span
		Key      Expr
		Kind     PropertyKind // "method", "get" or "set"
		Body     *FunctionLiteral
		Computed bool
		Static   bool
	}

	StaticBlock struct {
		Span
		Body Statements
	}
)

func (*ClassLiteral) _expr() {}

func (*FieldDefinition) _classElement()  {}
func (*MethodDefinition) _classElement() {}
func (*StaticBlock) _classElement()      {}
