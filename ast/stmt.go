package ast

type (
	Statements []Stmt

	// All statement nodes implement the Stmt interface.
	Stmt interface {
		Node
		_stmt()
	}

	BlockStatement struct {
		Span
		List Statements
	}

	BreakStatement struct {
		Span
		Label *Identifier
	}

	ContinueStatement struct {
		Span
		Label *Identifier
	}

	// CaseClause has a nil Test for the default clause.
	CaseClause struct {
		Span
		Test       Expr
		Consequent Statements
	}

	// CatchClause has a nil Parameter for catch without binding.
	CatchClause struct {
		Span
		Parameter Target
		Body      *BlockStatement
	}

	DebuggerStatement struct {
		Span
	}

	DoWhileStatement struct {
		Span
		Body Stmt
		Test Expr
	}

	EmptyStatement struct {
		Span
	}

	ExpressionStatement struct {
		Span
		Expression Expr
	}

	IfStatement struct {
		Span
		Test       Expr
		Consequent Stmt
		Alternate  Stmt
	}

	LabelledStatement struct {
		Span
		Label     *Identifier
		Statement Stmt
	}

	ReturnStatement struct {
		Span
		Argument Expr
	}

	SwitchStatement struct {
		Span
		Discriminant Expr
		Body         []*CaseClause
	}

	ThrowStatement struct {
		Span
		Argument Expr
	}

	TryStatement struct {
		Span
		Body    *BlockStatement
		Catch   *CatchClause
		Finally *BlockStatement
	}

	WhileStatement struct {
		Span
		Test Expr
		Body Stmt
	}

	WithStatement struct {
		Span
		Object Expr
		Body   Stmt
	}

	// ForStatement is for (init; test; update). At most one of Declaration and
	// Initializer is set.
	ForStatement struct {
		Span
		Declaration *VariableDeclaration
		Initializer Expr
		Test        Expr
		Update      Expr
		Body        Stmt
	}

	// ForInto is the head of a for-in/of loop: a single-binding
	// *VariableDeclaration or an assignment Target.
	ForInto interface {
		Node
		_forInto()
	}

	ForInStatement struct {
		Span
		Into   ForInto
		Source Expr
		Body   Stmt
	}

	ForOfStatement struct {
		Span
		Into   ForInto
		Source Expr
		Body   Stmt
		Await  bool
	}
)

func (*VariableDeclaration) _forInto() {}
func (*Identifier) _forInto()          {}
func (*MemberExpression) _forInto()    {}
func (*ArrayPattern) _forInto()        {}
func (*ObjectPattern) _forInto()       {}

func (*BlockStatement) _stmt()      {}
func (*BreakStatement) _stmt()      {}
func (*ContinueStatement) _stmt()   {}
func (*DebuggerStatement) _stmt()   {}
func (*DoWhileStatement) _stmt()    {}
func (*EmptyStatement) _stmt()      {}
func (*ExpressionStatement) _stmt() {}
func (*ForInStatement) _stmt()      {}
func (*ForOfStatement) _stmt()      {}
func (*ForStatement) _stmt()        {}
func (*IfStatement) _stmt()         {}
func (*LabelledStatement) _stmt()   {}
func (*ReturnStatement) _stmt()     {}
func (*SwitchStatement) _stmt()     {}
func (*ThrowStatement) _stmt()      {}
func (*TryStatement) _stmt()        {}
func (*WhileStatement) _stmt()      {}
func (*WithStatement) _stmt()       {}
