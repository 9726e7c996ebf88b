package ast

// A Visitor's Visit method is invoked for each node encountered by Walk. If
// the result visitor w is not nil, Walk visits each of the children of node
// with w, followed by a call of w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first, source order.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, d := range n.Directives {
			Walk(v, d)
		}
		walkStmts(v, n.Body)

	// Expressions
	case *Identifier, *PrivateIdentifier, *ThisExpression, *SuperExpression,
		*NullLiteral, *BooleanLiteral, *NumberLiteral, *StringLiteral,
		*RegExpLiteral, *TemplateElement, *Directive, *EmptyStatement,
		*DebuggerStatement:
		// leaves
	case *ArrayLiteral:
		walkExprs(v, n.Elements)
	case *ObjectLiteral:
		for _, p := range n.Properties {
			Walk(v, p)
		}
	case *PropertyKeyed:
		Walk(v, n.Key)
		Walk(v, n.Value)
	case *PropertyShort:
		Walk(v, n.Name)
		walkExpr(v, n.Initializer)
	case *PropertyMethod:
		Walk(v, n.Key)
		Walk(v, n.Function)
	case *TemplateLiteral:
		walkExpr(v, n.Tag)
		for i, q := range n.Quasis {
			Walk(v, q)
			if i < len(n.Expressions) {
				Walk(v, n.Expressions[i])
			}
		}
	case *UnaryExpression:
		Walk(v, n.Operand)
	case *UpdateExpression:
		Walk(v, n.Operand)
	case *BinaryExpression:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *AssignExpression:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *ConditionalExpression:
		Walk(v, n.Test)
		Walk(v, n.Consequent)
		Walk(v, n.Alternate)
	case *CallExpression:
		Walk(v, n.Callee)
		walkExprs(v, n.Arguments)
	case *NewExpression:
		Walk(v, n.Callee)
		walkExprs(v, n.Arguments)
	case *MemberExpression:
		Walk(v, n.Object)
		Walk(v, n.Property)
	case *SequenceExpression:
		walkExprs(v, n.Sequence)
	case *ParenthesizedExpression:
		Walk(v, n.Expression)
	case *SpreadElement:
		Walk(v, n.Argument)
	case *YieldExpression:
		walkExpr(v, n.Argument)
	case *AwaitExpression:
		Walk(v, n.Argument)
	case *MetaProperty:
		Walk(v, n.Meta)
		Walk(v, n.Property)
	case *FunctionLiteral:
		if n.Name != nil {
			Walk(v, n.Name)
		}
		Walk(v, n.Params)
		Walk(v, n.Body)
	case *ArrowFunctionLiteral:
		Walk(v, n.Params)
		if n.Body != nil {
			Walk(v, n.Body)
		} else {
			Walk(v, n.Expression)
		}
	case *ParameterList:
		for _, p := range n.List {
			Walk(v, p)
		}
		walkTarget(v, n.Rest)
	case *FunctionBody:
		for _, d := range n.Directives {
			Walk(v, d)
		}
		walkStmts(v, n.List)
	case *ClassLiteral:
		if n.Name != nil {
			Walk(v, n.Name)
		}
		walkExpr(v, n.SuperClass)
		for _, e := range n.Body {
			Walk(v, e)
		}
	case *MethodDefinition:
		Walk(v, n.Key)
		Walk(v, n.Body)
	case *FieldDefinition:
		Walk(v, n.Key)
		walkExpr(v, n.Initializer)
	case *StaticBlock:
		walkStmts(v, n.Body)

	// Patterns
	case *ArrayPattern:
		for _, e := range n.Elements {
			if e != nil {
				Walk(v, e)
			}
		}
		walkTarget(v, n.Rest)
	case *ObjectPattern:
		for _, p := range n.Properties {
			Walk(v, p)
		}
		walkTarget(v, n.Rest)
	case *PatternElement:
		Walk(v, n.Target)
		walkExpr(v, n.Initializer)
	case *PatternProperty:
		if !n.Shorthand {
			Walk(v, n.Key)
		}
		Walk(v, n.Value)

	// Statements
	case *ExpressionStatement:
		Walk(v, n.Expression)
	case *BlockStatement:
		walkStmts(v, n.List)
	case *VariableDeclaration:
		for _, d := range n.List {
			Walk(v, d)
		}
	case *VariableDeclarator:
		Walk(v, n.Target)
		walkExpr(v, n.Initializer)
	case *FunctionDeclaration:
		Walk(v, n.Function)
	case *ClassDeclaration:
		Walk(v, n.Class)
	case *IfStatement:
		Walk(v, n.Test)
		Walk(v, n.Consequent)
		walkStmt(v, n.Alternate)
	case *ForStatement:
		if n.Declaration != nil {
			Walk(v, n.Declaration)
		}
		walkExpr(v, n.Initializer)
		walkExpr(v, n.Test)
		walkExpr(v, n.Update)
		Walk(v, n.Body)
	case *ForInStatement:
		Walk(v, n.Into)
		Walk(v, n.Source)
		Walk(v, n.Body)
	case *ForOfStatement:
		Walk(v, n.Into)
		Walk(v, n.Source)
		Walk(v, n.Body)
	case *WhileStatement:
		Walk(v, n.Test)
		Walk(v, n.Body)
	case *DoWhileStatement:
		Walk(v, n.Body)
		Walk(v, n.Test)
	case *ReturnStatement:
		walkExpr(v, n.Argument)
	case *ThrowStatement:
		Walk(v, n.Argument)
	case *BreakStatement:
		if n.Label != nil {
			Walk(v, n.Label)
		}
	case *ContinueStatement:
		if n.Label != nil {
			Walk(v, n.Label)
		}
	case *LabelledStatement:
		Walk(v, n.Label)
		Walk(v, n.Statement)
	case *TryStatement:
		Walk(v, n.Body)
		if n.Catch != nil {
			Walk(v, n.Catch)
		}
		if n.Finally != nil {
			Walk(v, n.Finally)
		}
	case *CatchClause:
		walkTarget(v, n.Parameter)
		Walk(v, n.Body)
	case *SwitchStatement:
		Walk(v, n.Discriminant)
		for _, c := range n.Body {
			Walk(v, c)
		}
	case *CaseClause:
		walkExpr(v, n.Test)
		walkStmts(v, n.Consequent)
	case *WithStatement:
		Walk(v, n.Object)
		Walk(v, n.Body)

	// Modules
	case *ImportDeclaration:
		if n.Default != nil {
			Walk(v, n.Default)
		}
		if n.Namespace != nil {
			Walk(v, n.Namespace)
		}
		for _, s := range n.Named {
			Walk(v, s)
		}
		Walk(v, n.Source)
	case *ModuleSpecifier:
		Walk(v, n.Local)
		if n.Remote != nil {
			Walk(v, n.Remote)
		}
	case *ExportNamedDeclaration:
		walkStmt(v, n.Declaration)
		for _, s := range n.Specifiers {
			Walk(v, s)
		}
		if n.Source != nil {
			Walk(v, n.Source)
		}
	case *ExportAllDeclaration:
		if n.Alias != nil {
			Walk(v, n.Alias)
		}
		Walk(v, n.Source)
	case *ExportDefaultDeclaration:
		Walk(v, n.Declaration)
	}

	v.Visit(nil)
}

func walkExpr(v Visitor, e Expr) {
	if e != nil {
		Walk(v, e)
	}
}

func walkStmt(v Visitor, s Stmt) {
	if s != nil {
		Walk(v, s)
	}
}

func walkTarget(v Visitor, t Target) {
	if t != nil {
		Walk(v, t)
	}
}

func walkExprs(v Visitor, list Expressions) {
	for _, e := range list {
		walkExpr(v, e)
	}
}

func walkStmts(v Visitor, list Statements) {
	for _, s := range list {
		Walk(v, s)
	}
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses an AST in depth-first order: it starts by calling f(node);
// node must not be nil. If f returns true, Inspect invokes f recursively for
// each of the non-nil children of node, followed by a call of f(nil).
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}
