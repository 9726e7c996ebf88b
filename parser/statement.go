package parser

import (
	"github.com/t14raptor/esparse/ast"
	"github.com/t14raptor/esparse/token"
)

func (p *parser) parseProgram() *ast.Program {
	prog := &ast.Program{SourceType: p.opts.sourceType}
	p.scope.allowLet = true
	prog.Directives = p.parseDirectives()

	prog.Body = ast.Statements{}
	for p.currentKind() != token.Eof {
		if p.module() {
			prog.Body = append(prog.Body, p.parseModuleItem())
		} else {
			prog.Body = append(prog.Body, p.parseStatementListItem())
		}
	}
	prog.Span = ast.Span{Start: 0, End: ast.Idx(len(p.str))}
	return prog
}

// parseDirectives parses the directive prologue: the leading statements that
// consist of a single string literal.
func (p *parser) parseDirectives() []*ast.Directive {
	var list []*ast.Directive
	for p.currentKind() == token.String {
		state := p.mark()
		stmt, _ := p.parseStatement().(*ast.ExpressionStatement)
		if stmt == nil {
			p.restore(state)
			break
		}
		lit, ok := stmt.Expression.(*ast.StringLiteral)
		if !ok {
			p.restore(state)
			break
		}
		list = append(list, &ast.Directive{Span: stmt.Span, Raw: lit.Raw, Value: lit.Value})
		if lit.Raw[1:len(lit.Raw)-1] == "use strict" {
			p.scope.strict = true
		}
	}
	return list
}

func (p *parser) parseStatementList(end token.Token) ast.Statements {
	list := ast.Statements{}
	for p.currentKind() != end && p.currentKind() != token.Eof {
		list = append(list, p.parseStatementListItem())
	}
	return list
}

// parseStatementListItem parses a statement in a position that also accepts
// lexical declarations.
func (p *parser) parseStatementListItem() ast.Stmt {
	allowLet := p.scope.allowLet
	p.scope.allowLet = true
	stmt := p.parseStatement()
	p.scope.allowLet = allowLet
	return stmt
}

// parseSubStatement parses the body of if, loops, with and labels.
func (p *parser) parseSubStatement() ast.Stmt {
	allowLet := p.scope.allowLet
	p.scope.allowLet = false
	stmt := p.parseStatement()
	p.scope.allowLet = allowLet
	return stmt
}

func (p *parser) parseStatement() ast.Stmt {
	p.enter()
	cover := p.cover
	p.cover = nil
	defer func() {
		p.cover = cover
		p.leave()
	}()

	run := p.scope.labelRun
	p.scope.labelRun = 0

	start := p.currentOffset()
	switch p.currentKind() {
	case token.Semicolon:
		p.next()
		return &ast.EmptyStatement{Span: p.span(start)}
	case token.LeftBrace:
		return p.parseBlockStatement()
	case token.If:
		return p.parseIfStatement()
	case token.Do:
		p.scope.markIterationLabels(run)
		return p.parseDoWhileStatement()
	case token.While:
		p.scope.markIterationLabels(run)
		return p.parseWhileStatement()
	case token.For:
		p.scope.markIterationLabels(run)
		return p.parseForOrForInStatement()
	case token.Break:
		return p.parseBreakStatement()
	case token.Continue:
		return p.parseContinueStatement()
	case token.Debugger:
		p.next()
		p.semicolon()
		return &ast.DebuggerStatement{Span: p.span(start)}
	case token.With:
		return p.parseWithStatement()
	case token.Return:
		return p.parseReturnStatement()
	case token.Throw:
		return p.parseThrowStatement()
	case token.Try:
		return p.parseTryStatement()
	case token.Switch:
		return p.parseSwitchStatement()
	case token.Var:
		return p.parseVariableStatement()
	case token.Const:
		p.checkLexicalDeclarationContext()
		return p.parseVariableStatement()
	case token.Let:
		if p.isLetDeclaration() {
			p.checkLexicalDeclarationContext()
			return p.parseVariableStatement()
		}
	case token.Function:
		return p.parseFunctionDeclaration()
	case token.Async:
		if next := p.peek(); next.Kind == token.Function && !next.OnNewLine {
			return p.parseFunctionDeclaration()
		}
	case token.Class:
		p.checkLexicalDeclarationContext()
		cls := p.parseClass()
		if cls.Name == nil {
			p.errorf(cls.Span, "class statements require a class name")
		}
		return &ast.ClassDeclaration{Span: cls.Span, Class: cls}
	case token.Import:
		if next := p.peek(); next.Kind != token.Period {
			p.errorModuleItem()
		}
	case token.Export:
		p.errorModuleItem()
	}

	expr := p.parseExpression()
	if id, ok := expr.(*ast.Identifier); ok && p.currentKind() == token.Colon {
		return p.parseLabelledStatement(id, start, run)
	}
	p.semicolon()
	return p.alloc.ExpressionStatement(p.span(start), expr)
}

func (p *parser) errorModuleItem() {
	if p.module() {
		p.errorf(p.token.Span(), "%s declarations may only appear at top level of a module", p.token.Raw)
	}
	p.errorf(p.token.Span(), "cannot use %s statement outside a module", p.token.Raw)
}

// isLetDeclaration decides whether let starts a lexical declaration or is an
// identifier.
func (p *parser) isLetDeclaration() bool {
	if p.scope.strict {
		return true
	}
	next := p.peek()
	switch {
	case next.Kind == token.LeftBracket:
		return true
	case next.Kind == token.LeftBrace, next.Kind == token.Identifier, next.Kind.IsContextual():
		// In a single-statement context let followed by a name on the same
		// line can only be a misplaced declaration.
		return p.scope.allowLet || !next.OnNewLine
	}
	return false
}

func (p *parser) checkLexicalDeclarationContext() {
	if !p.scope.allowLet {
		p.errorf(p.token.Span(), "lexical declaration cannot appear in a single-statement context")
	}
}

func (p *parser) parseBlockStatement() *ast.BlockStatement {
	start := p.expect(token.LeftBrace)
	list := p.parseStatementList(token.RightBrace)
	p.expect(token.RightBrace)
	return &ast.BlockStatement{Span: p.span(start), List: list}
}

func (p *parser) parseLabelledStatement(name *ast.Identifier, start ast.Idx, run int) ast.Stmt {
	p.expect(token.Colon)
	if _, exists := p.scope.lookupLabel(name.Name); exists {
		p.errorf(name.Span, "label '%s' has already been declared", name.Name)
	}
	p.scope.labels = append(p.scope.labels, label{name: name.Name})
	p.scope.labelRun = run + 1
	body := p.parseSubStatement()
	p.scope.labels = p.scope.labels[:len(p.scope.labels)-1]
	return &ast.LabelledStatement{Span: p.span(start), Label: name, Statement: body}
}

func (p *parser) parseFunctionDeclaration() ast.Stmt {
	start := p.currentOffset()
	fn := p.parseFunction(true, start)
	if fn.Name == nil {
		p.errorf(fn.Span, "function statements require a function name")
	}
	if !p.scope.allowLet && (p.scope.strict || fn.Async || fn.Generator) {
		p.errorf(fn.Span, "function declaration cannot appear in a single-statement context")
	}
	return &ast.FunctionDeclaration{Span: fn.Span, Function: fn}
}

// parseVariableStatement parses a var, let or const declaration terminated
// by a semicolon.
func (p *parser) parseVariableStatement() *ast.VariableDeclaration {
	start := p.currentOffset()
	decl := p.parseVariableDeclaration(false)
	p.semicolon()
	decl.Span = p.span(start)
	return decl
}

// parseVariableDeclaration parses the keyword and declarator list. In a for
// head the initializers are checked by the caller once it knows the loop
// kind.
func (p *parser) parseVariableDeclaration(forHead bool) *ast.VariableDeclaration {
	start := p.currentOffset()
	decl := &ast.VariableDeclaration{Kind: p.currentKind()}
	p.next()
	for {
		decl.List = append(decl.List, p.parseVariableDeclarator(decl.Kind))
		if p.currentKind() != token.Comma {
			break
		}
		p.next()
	}
	decl.Span = p.span(start)
	if !forHead {
		p.ensureInitializers(decl)
	}
	return decl
}

func (p *parser) parseVariableDeclarator(kind token.Token) *ast.VariableDeclarator {
	start := p.currentOffset()
	target := p.parseBindingTarget()
	if id, ok := target.(*ast.Identifier); ok && kind != token.Var && id.Name == "let" {
		p.errorf(id.Span, "let is disallowed as a lexically bound name")
	}
	node := &ast.VariableDeclarator{Target: target}
	if p.currentKind() == token.Assign {
		p.next()
		node.Initializer = p.parseAssignmentExpression()
	}
	node.Span = p.span(start)
	return node
}

func (p *parser) ensureInitializers(decl *ast.VariableDeclaration) {
	for _, d := range decl.List {
		if d.Initializer != nil {
			continue
		}
		if _, ok := d.Target.(*ast.Identifier); !ok {
			p.errorf(d.Span, "missing initializer in destructuring declaration")
		}
		if decl.Kind == token.Const {
			p.errorf(d.Span, "missing initializer in const declaration")
		}
	}
}

func (p *parser) parseIfStatement() ast.Stmt {
	start := p.expect(token.If)
	p.expect(token.LeftParenthesis)
	test := p.parseExpression()
	p.expect(token.RightParenthesis)

	node := &ast.IfStatement{Test: test, Consequent: p.parseSubStatement()}
	if p.currentKind() == token.Else {
		p.next()
		node.Alternate = p.parseSubStatement()
	}
	node.Span = p.span(start)
	return node
}

func (p *parser) parseIterationBody() ast.Stmt {
	inIteration := p.scope.inIteration
	p.scope.inIteration = true
	body := p.parseSubStatement()
	p.scope.inIteration = inIteration
	return body
}

func (p *parser) parseDoWhileStatement() ast.Stmt {
	start := p.expect(token.Do)
	body := p.parseIterationBody()
	p.expect(token.While)
	p.expect(token.LeftParenthesis)
	test := p.parseExpression()
	p.expect(token.RightParenthesis)
	if p.currentKind() == token.Semicolon {
		p.next()
	}
	return &ast.DoWhileStatement{Span: p.span(start), Body: body, Test: test}
}

func (p *parser) parseWhileStatement() ast.Stmt {
	start := p.expect(token.While)
	p.expect(token.LeftParenthesis)
	test := p.parseExpression()
	p.expect(token.RightParenthesis)
	body := p.parseIterationBody()
	return &ast.WhileStatement{Span: p.span(start), Test: test, Body: body}
}

// isLetDeclarationInFor reports whether let opens a declaration in a for
// head. for (let in x) keeps let as an identifier.
func (p *parser) isLetDeclarationInFor() bool {
	if p.scope.strict {
		return true
	}
	next := p.peek()
	return next.Kind == token.LeftBracket || next.Kind == token.LeftBrace ||
		next.Kind == token.Identifier || next.Kind.IsContextual()
}

func (p *parser) parseForOrForInStatement() ast.Stmt {
	start := p.expect(token.For)
	await := false
	if p.currentKind() == token.Await && p.scope.allowAwait {
		p.next()
		await = true
	}
	p.expect(token.LeftParenthesis)

	var (
		into ast.ForInto
		decl *ast.VariableDeclaration
		init ast.Expr
	)

	allowIn := p.scope.allowIn
	p.scope.allowIn = false
	switch kind := p.currentKind(); {
	case kind == token.Semicolon:
	case kind == token.Var, kind == token.Const, kind == token.Let && p.isLetDeclarationInFor():
		decl = p.parseVariableDeclaration(true)
	default:
		exprStart := p.currentOffset()
		startsWithLet := kind == token.Let
		cover := &coverGrammar{}
		p.inheritCover = cover
		expr := p.parseAssignmentExpression()
		if p.currentKind() == token.In || (p.currentKind() == token.Of && !startsWithLet) {
			into = p.reinterpretAsAssignmentTarget(expr).(ast.ForInto)
			break
		}
		p.checkCover(cover)
		if p.currentKind() == token.Comma {
			list := ast.Expressions{expr}
			for p.currentKind() == token.Comma {
				p.next()
				list = append(list, p.parseAssignmentExpression())
			}
			expr = &ast.SequenceExpression{Span: p.span(exprStart), Sequence: list}
		}
		init = expr
	}
	p.scope.allowIn = allowIn

	if decl != nil && (p.currentKind() == token.In || p.currentKind() == token.Of) {
		if len(decl.List) != 1 {
			p.errorf(decl.Span, "invalid left-hand side in for-%s loop: must have a single binding", p.token.Raw)
		}
		if decl.List[0].Initializer != nil {
			p.errorf(decl.Span, "for-%s loop variable declaration may not have an initializer", p.token.Raw)
		}
		into = decl
	}

	if into != nil {
		if p.currentKind() == token.In {
			if await {
				p.errorUnexpectedToken()
			}
			p.next()
			source := p.parseExpression()
			p.expect(token.RightParenthesis)
			body := p.parseIterationBody()
			return &ast.ForInStatement{Span: p.span(start), Into: into, Source: source, Body: body}
		}
		p.expect(token.Of)
		source := p.parseAssignmentExpression()
		p.expect(token.RightParenthesis)
		body := p.parseIterationBody()
		return &ast.ForOfStatement{Span: p.span(start), Into: into, Source: source, Body: body, Await: await}
	}

	if await {
		p.errorUnexpectedToken()
	}
	if decl != nil {
		p.ensureInitializers(decl)
	}
	node := &ast.ForStatement{Declaration: decl, Initializer: init}
	p.expect(token.Semicolon)
	if p.currentKind() != token.Semicolon {
		node.Test = p.parseExpression()
	}
	p.expect(token.Semicolon)
	if p.currentKind() != token.RightParenthesis {
		node.Update = p.parseExpression()
	}
	p.expect(token.RightParenthesis)
	node.Body = p.parseIterationBody()
	node.Span = p.span(start)
	return node
}

func (p *parser) parseBreakStatement() ast.Stmt {
	start := p.expect(token.Break)
	node := &ast.BreakStatement{}
	if !p.token.OnNewLine && (p.currentKind() == token.Identifier || p.currentKind().IsContextual()) {
		node.Label = p.parseIdentifier()
		if _, ok := p.scope.lookupLabel(node.Label.Name); !ok {
			p.errorf(node.Label.Span, "undefined label '%s'", node.Label.Name)
		}
	} else if !p.scope.inIteration && !p.scope.inSwitch {
		p.errorf(p.span(start), "illegal break statement")
	}
	p.semicolon()
	node.Span = p.span(start)
	return node
}

func (p *parser) parseContinueStatement() ast.Stmt {
	start := p.expect(token.Continue)
	node := &ast.ContinueStatement{}
	if !p.scope.inIteration {
		p.errorf(p.span(start), "illegal continue statement")
	}
	if !p.token.OnNewLine && (p.currentKind() == token.Identifier || p.currentKind().IsContextual()) {
		node.Label = p.parseIdentifier()
		l, ok := p.scope.lookupLabel(node.Label.Name)
		if !ok {
			p.errorf(node.Label.Span, "undefined label '%s'", node.Label.Name)
		}
		if !l.iteration {
			p.errorf(node.Label.Span, "illegal continue statement: '%s' does not denote an iteration statement", node.Label.Name)
		}
	}
	p.semicolon()
	node.Span = p.span(start)
	return node
}

func (p *parser) parseReturnStatement() ast.Stmt {
	start := p.expect(token.Return)
	if !p.scope.inFunction || p.scope.inStaticBlock {
		p.errorf(p.span(start), "illegal return statement")
	}
	node := &ast.ReturnStatement{}
	if !p.canInsertSemicolon() {
		node.Argument = p.parseExpression()
	}
	p.semicolon()
	node.Span = p.span(start)
	return node
}

func (p *parser) parseThrowStatement() ast.Stmt {
	start := p.expect(token.Throw)
	if p.token.OnNewLine {
		p.errorf(p.span(start), "illegal newline after throw")
	}
	arg := p.parseExpression()
	p.semicolon()
	return &ast.ThrowStatement{Span: p.span(start), Argument: arg}
}

func (p *parser) parseWithStatement() ast.Stmt {
	start := p.expect(token.With)
	if p.scope.strict {
		p.errorf(p.span(start), "strict mode code may not include a with statement")
	}
	p.expect(token.LeftParenthesis)
	obj := p.parseExpression()
	p.expect(token.RightParenthesis)
	body := p.parseSubStatement()
	return &ast.WithStatement{Span: p.span(start), Object: obj, Body: body}
}

func (p *parser) parseTryStatement() ast.Stmt {
	start := p.expect(token.Try)
	node := &ast.TryStatement{Body: p.parseBlockStatement()}

	if p.currentKind() == token.Catch {
		catchStart := p.currentOffset()
		p.next()
		clause := &ast.CatchClause{}
		if p.currentKind() == token.LeftParenthesis {
			p.next()
			clause.Parameter = p.parseBindingTarget()
			p.expect(token.RightParenthesis)
		}
		clause.Body = p.parseBlockStatement()
		clause.Span = p.span(catchStart)
		node.Catch = clause
	}
	if p.currentKind() == token.Finally {
		p.next()
		node.Finally = p.parseBlockStatement()
	}
	if node.Catch == nil && node.Finally == nil {
		p.errorf(p.token.Span(), "missing catch or finally after try")
	}
	node.Span = p.span(start)
	return node
}

func (p *parser) parseSwitchStatement() ast.Stmt {
	start := p.expect(token.Switch)
	p.expect(token.LeftParenthesis)
	node := &ast.SwitchStatement{Discriminant: p.parseExpression(), Body: []*ast.CaseClause{}}
	p.expect(token.RightParenthesis)
	p.expect(token.LeftBrace)

	inSwitch := p.scope.inSwitch
	p.scope.inSwitch = true
	seenDefault := false
	for p.currentKind() != token.RightBrace {
		node.Body = append(node.Body, p.parseCaseClause(&seenDefault))
	}
	p.scope.inSwitch = inSwitch

	p.expect(token.RightBrace)
	node.Span = p.span(start)
	return node
}

func (p *parser) parseCaseClause(seenDefault *bool) *ast.CaseClause {
	start := p.currentOffset()
	clause := &ast.CaseClause{}
	if p.currentKind() == token.Default {
		if *seenDefault {
			p.errorf(p.token.Span(), "more than one default clause in switch statement")
		}
		*seenDefault = true
		p.next()
	} else {
		p.expect(token.Case)
		clause.Test = p.parseExpression()
	}
	p.expect(token.Colon)

	clause.Consequent = ast.Statements{}
	for {
		switch p.currentKind() {
		case token.Case, token.Default, token.RightBrace, token.Eof:
			clause.Span = p.span(start)
			return clause
		}
		clause.Consequent = append(clause.Consequent, p.parseStatementListItem())
	}
}
