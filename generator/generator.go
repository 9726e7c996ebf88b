// Package generator prints a syntax tree as minified ECMAScript source.
//
// The output contains no comments and no whitespace except where two tokens
// would otherwise merge. Parentheses are printed exactly where the tree holds
// an *ast.ParenthesizedExpression, so Generate(Parse(src)) reproduces the
// grouping of expressions in the source. Assignment targets hold no such
// node: the parser unwraps a parenthesized identifier or member expression
// on the left of an assignment, so (a) = 1 prints as a=1.
package generator

import (
	"github.com/t14raptor/esparse/ast"
	"github.com/t14raptor/esparse/token"
)

// Generate returns the minified source text of node.
func Generate(node ast.Node) string {
	s := &state{
		out:    &output{},
		node:   node,
		parent: &state{},
	}
	gen(s)
	return s.out.String()
}

func gen(s *state) {
	switch n := s.node.(type) {
	case nil:
	case *ast.Program:
		for _, d := range n.Directives {
			gen(s.wrap(d))
		}
		for _, st := range n.Body {
			gen(s.wrap(st))
		}
	case *ast.Directive:
		s.out.word(n.Raw)
		s.out.op(";")

	// Statements

	case *ast.BlockStatement:
		s.out.op("{")
		for _, st := range n.List {
			gen(s.wrap(st))
		}
		s.out.op("}")
	case *ast.BreakStatement:
		s.out.word("break")
		if n.Label != nil {
			gen(s.wrap(n.Label))
		}
		s.out.op(";")
	case *ast.ContinueStatement:
		s.out.word("continue")
		if n.Label != nil {
			gen(s.wrap(n.Label))
		}
		s.out.op(";")
	case *ast.DebuggerStatement:
		s.out.word("debugger")
		s.out.op(";")
	case *ast.DoWhileStatement:
		s.out.word("do")
		gen(s.wrap(n.Body))
		s.out.word("while")
		s.out.op("(")
		gen(s.wrap(n.Test))
		s.out.op(")")
		s.out.op(";")
	case *ast.EmptyStatement:
		s.out.op(";")
	case *ast.ExpressionStatement:
		gen(s.wrap(n.Expression))
		s.out.op(";")
	case *ast.IfStatement:
		s.out.word("if")
		s.out.op("(")
		gen(s.wrap(n.Test))
		s.out.op(")")
		gen(s.wrap(n.Consequent))
		if n.Alternate != nil {
			s.out.word("else")
			gen(s.wrap(n.Alternate))
		}
	case *ast.LabelledStatement:
		gen(s.wrap(n.Label))
		s.out.op(":")
		gen(s.wrap(n.Statement))
	case *ast.ReturnStatement:
		s.out.word("return")
		gen(s.wrap(n.Argument))
		s.out.op(";")
	case *ast.ThrowStatement:
		s.out.word("throw")
		gen(s.wrap(n.Argument))
		s.out.op(";")
	case *ast.SwitchStatement:
		s.out.word("switch")
		s.out.op("(")
		gen(s.wrap(n.Discriminant))
		s.out.op(")")
		s.out.op("{")
		for _, c := range n.Body {
			gen(s.wrap(c))
		}
		s.out.op("}")
	case *ast.CaseClause:
		if n.Test != nil {
			s.out.word("case")
			gen(s.wrap(n.Test))
		} else {
			s.out.word("default")
		}
		s.out.op(":")
		for _, st := range n.Consequent {
			gen(s.wrap(st))
		}
	case *ast.TryStatement:
		s.out.word("try")
		gen(s.wrap(n.Body))
		if n.Catch != nil {
			gen(s.wrap(n.Catch))
		}
		if n.Finally != nil {
			s.out.word("finally")
			gen(s.wrap(n.Finally))
		}
	case *ast.CatchClause:
		s.out.word("catch")
		if n.Parameter != nil {
			s.out.op("(")
			gen(s.wrap(n.Parameter))
			s.out.op(")")
		}
		gen(s.wrap(n.Body))
	case *ast.WhileStatement:
		s.out.word("while")
		s.out.op("(")
		gen(s.wrap(n.Test))
		s.out.op(")")
		gen(s.wrap(n.Body))
	case *ast.WithStatement:
		s.out.word("with")
		s.out.op("(")
		gen(s.wrap(n.Object))
		s.out.op(")")
		gen(s.wrap(n.Body))
	case *ast.ForStatement:
		s.out.word("for")
		s.out.op("(")
		if n.Declaration != nil {
			gen(s.wrap(n.Declaration))
		} else {
			gen(s.wrap(n.Initializer))
		}
		s.out.op(";")
		gen(s.wrap(n.Test))
		s.out.op(";")
		gen(s.wrap(n.Update))
		s.out.op(")")
		gen(s.wrap(n.Body))
	case *ast.ForInStatement:
		s.out.word("for")
		s.out.op("(")
		gen(s.wrap(n.Into))
		s.out.word("in")
		gen(s.wrap(n.Source))
		s.out.op(")")
		gen(s.wrap(n.Body))
	case *ast.ForOfStatement:
		s.out.word("for")
		if n.Await {
			s.out.word("await")
		}
		s.out.op("(")
		gen(s.wrap(n.Into))
		s.out.word("of")
		gen(s.wrap(n.Source))
		s.out.op(")")
		gen(s.wrap(n.Body))

	// Declarations

	case *ast.VariableDeclaration:
		s.out.word(n.Kind.String())
		for i, d := range n.List {
			if i > 0 {
				s.out.op(",")
			}
			gen(s.wrap(d))
		}
		if !inForHead(s) {
			s.out.op(";")
		}
	case *ast.VariableDeclarator:
		gen(s.wrap(n.Target))
		if n.Initializer != nil {
			s.out.op("=")
			gen(s.wrap(n.Initializer))
		}
	case *ast.FunctionDeclaration:
		gen(s.wrap(n.Function))
	case *ast.ClassDeclaration:
		gen(s.wrap(n.Class))

	// Modules

	case *ast.ImportDeclaration:
		s.out.word("import")
		if n.Default != nil || n.Namespace != nil || n.Named != nil {
			if n.Default != nil {
				gen(s.wrap(n.Default))
				if n.Namespace != nil || n.Named != nil {
					s.out.op(",")
				}
			}
			if n.Namespace != nil {
				s.out.op("*")
				s.out.word("as")
				gen(s.wrap(n.Namespace))
			}
			if n.Named != nil {
				genSpecifiers(s, n.Named, true)
			}
			s.out.word("from")
		}
		gen(s.wrap(n.Source))
		s.out.op(";")
	case *ast.ExportNamedDeclaration:
		s.out.word("export")
		if n.Declaration != nil {
			gen(s.wrap(n.Declaration))
			break
		}
		genSpecifiers(s, n.Specifiers, false)
		if n.Source != nil {
			s.out.word("from")
			gen(s.wrap(n.Source))
		}
		s.out.op(";")
	case *ast.ExportAllDeclaration:
		s.out.word("export")
		s.out.op("*")
		if n.Alias != nil {
			s.out.word("as")
			gen(s.wrap(n.Alias))
		}
		s.out.word("from")
		gen(s.wrap(n.Source))
		s.out.op(";")
	case *ast.ExportDefaultDeclaration:
		s.out.word("export")
		s.out.word("default")
		gen(s.wrap(n.Declaration))

	// Functions and classes

	case *ast.FunctionLiteral:
		if n.Async {
			s.out.word("async")
		}
		s.out.word("function")
		if n.Generator {
			s.out.op("*")
		}
		if n.Name != nil {
			gen(s.wrap(n.Name))
		}
		gen(s.wrap(n.Params))
		gen(s.wrap(n.Body))
	case *ast.ParameterList:
		s.out.op("(")
		genParameters(s, n)
		s.out.op(")")
	case *ast.FunctionBody:
		s.out.op("{")
		for _, d := range n.Directives {
			gen(s.wrap(d))
		}
		for _, st := range n.List {
			gen(s.wrap(st))
		}
		s.out.op("}")
	case *ast.ArrowFunctionLiteral:
		if n.Async {
			s.out.word("async")
		}
		if simpleArrowParameter(n.Params) {
			gen(s.wrap(n.Params.List[0].Target))
		} else {
			gen(s.wrap(n.Params))
		}
		s.out.op("=>")
		if n.Body != nil {
			gen(s.wrap(n.Body))
		} else {
			gen(s.wrap(n.Expression))
		}
	case *ast.ClassLiteral:
		s.out.word("class")
		if n.Name != nil {
			gen(s.wrap(n.Name))
		}
		if n.SuperClass != nil {
			s.out.word("extends")
			gen(s.wrap(n.SuperClass))
		}
		s.out.op("{")
		for _, el := range n.Body {
			gen(s.wrap(el))
		}
		s.out.op("}")
	case *ast.MethodDefinition:
		if n.Static {
			s.out.word("static")
		}
		genMethod(s, n.Kind, n.Key, n.Computed, n.Body)
	case *ast.FieldDefinition:
		if n.Static {
			s.out.word("static")
		}
		genKey(s, n.Key, n.Computed)
		if n.Initializer != nil {
			s.out.op("=")
			gen(s.wrap(n.Initializer))
		}
		s.out.op(";")
	case *ast.StaticBlock:
		s.out.word("static")
		s.out.op("{")
		for _, st := range n.Body {
			gen(s.wrap(st))
		}
		s.out.op("}")

	// Patterns

	case *ast.ArrayPattern:
		s.out.op("[")
		for i, el := range n.Elements {
			if i > 0 {
				s.out.op(",")
			}
			if el != nil {
				gen(s.wrap(el))
			}
		}
		if l := len(n.Elements); l > 0 && (n.Elements[l-1] == nil || n.Rest != nil) {
			s.out.op(",")
		}
		if n.Rest != nil {
			s.out.op("...")
			gen(s.wrap(n.Rest))
		}
		s.out.op("]")
	case *ast.ObjectPattern:
		s.out.op("{")
		for i, prop := range n.Properties {
			if i > 0 {
				s.out.op(",")
			}
			gen(s.wrap(prop))
		}
		if n.Rest != nil {
			if len(n.Properties) > 0 {
				s.out.op(",")
			}
			s.out.op("...")
			gen(s.wrap(n.Rest))
		}
		s.out.op("}")
	case *ast.PatternProperty:
		if !n.Shorthand {
			genKey(s, n.Key, n.Computed)
			s.out.op(":")
		}
		gen(s.wrap(n.Value))
	case *ast.PatternElement:
		gen(s.wrap(n.Target))
		if n.Initializer != nil {
			s.out.op("=")
			gen(s.wrap(n.Initializer))
		}

	// Expressions

	case *ast.Identifier:
		s.out.word(n.Name)
	case *ast.PrivateIdentifier:
		s.out.op("#" + n.Name)
	case *ast.ThisExpression:
		s.out.word("this")
	case *ast.SuperExpression:
		s.out.word("super")
	case *ast.NullLiteral:
		s.out.word("null")
	case *ast.BooleanLiteral:
		if n.Value {
			s.out.word("true")
		} else {
			s.out.word("false")
		}
	case *ast.NumberLiteral:
		s.out.number(n.Raw)
	case *ast.StringLiteral:
		s.out.word(n.Raw)
	case *ast.RegExpLiteral:
		s.out.op("/" + n.Pattern + "/")
		if n.Flags != "" {
			s.out.WriteString(n.Flags)
		}
	case *ast.TemplateLiteral:
		if n.Tag != nil {
			gen(s.wrap(n.Tag))
		}
		s.out.op("`")
		for i, q := range n.Quasis {
			if i > 0 {
				s.out.WriteString("}")
			}
			s.out.WriteString(q.Raw)
			if i < len(n.Expressions) {
				s.out.WriteString("${")
				gen(s.wrap(n.Expressions[i]))
			}
		}
		s.out.WriteString("`")
	case *ast.MetaProperty:
		gen(s.wrap(n.Meta))
		s.out.op(".")
		gen(s.wrap(n.Property))
	case *ast.ArrayLiteral:
		s.out.op("[")
		for i, el := range n.Elements {
			if i > 0 {
				s.out.op(",")
			}
			gen(s.wrap(el))
		}
		if l := len(n.Elements); l > 0 && n.Elements[l-1] == nil {
			s.out.op(",")
		}
		s.out.op("]")
	case *ast.ObjectLiteral:
		s.out.op("{")
		for i, prop := range n.Properties {
			if i > 0 {
				s.out.op(",")
			}
			gen(s.wrap(prop))
		}
		s.out.op("}")
	case *ast.PropertyKeyed:
		genKey(s, n.Key, n.Computed)
		s.out.op(":")
		gen(s.wrap(n.Value))
	case *ast.PropertyShort:
		gen(s.wrap(n.Name))
		if n.Initializer != nil {
			s.out.op("=")
			gen(s.wrap(n.Initializer))
		}
	case *ast.PropertyMethod:
		genMethod(s, n.Kind, n.Key, n.Computed, n.Function)
	case *ast.SpreadElement:
		s.out.op("...")
		gen(s.wrap(n.Argument))
	case *ast.ParenthesizedExpression:
		s.out.op("(")
		gen(s.wrap(n.Expression))
		s.out.op(")")
	case *ast.SequenceExpression:
		for i, e := range n.Sequence {
			if i > 0 {
				s.out.op(",")
			}
			gen(s.wrap(e))
		}
	case *ast.AssignExpression:
		gen(s.wrap(n.Left))
		s.out.op(n.Operator.String())
		gen(s.wrap(n.Right))
	case *ast.BinaryExpression:
		gen(s.wrap(n.Left))
		genOperator(s, n.Operator)
		gen(s.wrap(n.Right))
	case *ast.ConditionalExpression:
		gen(s.wrap(n.Test))
		s.out.op("?")
		gen(s.wrap(n.Consequent))
		s.out.op(":")
		gen(s.wrap(n.Alternate))
	case *ast.UnaryExpression:
		genOperator(s, n.Operator)
		gen(s.wrap(n.Operand))
	case *ast.UpdateExpression:
		if n.Postfix {
			gen(s.wrap(n.Operand))
			s.out.op(n.Operator.String())
		} else {
			s.out.op(n.Operator.String())
			gen(s.wrap(n.Operand))
		}
	case *ast.AwaitExpression:
		s.out.word("await")
		gen(s.wrap(n.Argument))
	case *ast.YieldExpression:
		s.out.word("yield")
		if n.Delegate {
			s.out.op("*")
		}
		gen(s.wrap(n.Argument))
	case *ast.CallExpression:
		gen(s.wrap(n.Callee))
		if n.Optional {
			s.out.op("?.")
		}
		genArguments(s, n.Arguments)
	case *ast.NewExpression:
		s.out.word("new")
		gen(s.wrap(n.Callee))
		if n.Arguments != nil {
			genArguments(s, n.Arguments)
		}
	case *ast.MemberExpression:
		gen(s.wrap(n.Object))
		switch {
		case n.Computed:
			if n.Optional {
				s.out.op("?.")
			}
			s.out.op("[")
			gen(s.wrap(n.Property))
			s.out.op("]")
		case n.Optional:
			s.out.op("?.")
			gen(s.wrap(n.Property))
		default:
			s.out.op(".")
			gen(s.wrap(n.Property))
		}
	}
}

// inForHead reports whether a declaration is the head of a for statement,
// where it has no terminator of its own.
func inForHead(s *state) bool {
	switch p := s.parent.node.(type) {
	case *ast.ForStatement:
		return p.Declaration == s.node
	case *ast.ForInStatement, *ast.ForOfStatement:
		return true
	}
	return false
}

func simpleArrowParameter(params *ast.ParameterList) bool {
	if len(params.List) != 1 || params.Rest != nil || params.List[0].Initializer != nil {
		return false
	}
	_, ok := params.List[0].Target.(*ast.Identifier)
	return ok
}

func genParameters(s *state, params *ast.ParameterList) {
	for i, p := range params.List {
		if i > 0 {
			s.out.op(",")
		}
		gen(s.wrap(p))
	}
	if params.Rest != nil {
		if len(params.List) > 0 {
			s.out.op(",")
		}
		s.out.op("...")
		gen(s.wrap(params.Rest))
	}
}

func genArguments(s *state, args ast.Expressions) {
	s.out.op("(")
	for i, a := range args {
		if i > 0 {
			s.out.op(",")
		}
		gen(s.wrap(a))
	}
	s.out.op(")")
}

func genKey(s *state, key ast.Expr, computed bool) {
	if computed {
		s.out.op("[")
		gen(s.wrap(key))
		s.out.op("]")
		return
	}
	gen(s.wrap(key))
}

func genMethod(s *state, kind ast.PropertyKind, key ast.Expr, computed bool, fn *ast.FunctionLiteral) {
	switch kind {
	case ast.PropertyKindGet, ast.PropertyKindSet:
		s.out.word(string(kind))
	}
	if fn.Async {
		s.out.word("async")
	}
	if fn.Generator {
		s.out.op("*")
	}
	genKey(s, key, computed)
	gen(s.wrap(fn.Params))
	gen(s.wrap(fn.Body))
}

func genSpecifiers(s *state, list []*ast.ModuleSpecifier, imports bool) {
	s.out.op("{")
	for i, spec := range list {
		if i > 0 {
			s.out.op(",")
		}
		switch {
		case spec.Remote == nil:
			gen(s.wrap(spec.Local))
		case imports:
			gen(s.wrap(spec.Remote))
			s.out.word("as")
			gen(s.wrap(spec.Local))
		default:
			gen(s.wrap(spec.Local))
			s.out.word("as")
			gen(s.wrap(spec.Remote))
		}
	}
	s.out.op("}")
}

// genOperator writes keyword operators as words and the rest as
// punctuators.
func genOperator(s *state, op token.Token) {
	switch op {
	case token.In, token.InstanceOf, token.Typeof, token.Void, token.Delete:
		s.out.word(op.String())
	default:
		s.out.op(op.String())
	}
}
