package parser

import (
	"github.com/t14raptor/esparse/ast"
	"github.com/t14raptor/esparse/token"
)

// parseModuleItem parses a top-level item of a module: an import or export
// declaration or any statement list item.
func (p *parser) parseModuleItem() ast.Stmt {
	switch p.currentKind() {
	case token.Import:
		if p.peek().Kind != token.Period {
			return p.parseImportDeclaration()
		}
	case token.Export:
		return p.parseExportDeclaration()
	}
	return p.parseStatementListItem()
}

func (p *parser) expectContextual(name string) {
	if !p.isContextual(name) {
		p.errorUnexpectedToken()
	}
	p.next()
}

func (p *parser) parseModuleSource() *ast.StringLiteral {
	p.expectContextual("from")
	if p.currentKind() != token.String {
		p.errorUnexpectedToken()
	}
	return p.parseStringLiteral()
}

func (p *parser) parseImportDeclaration() ast.Stmt {
	start := p.expect(token.Import)
	node := &ast.ImportDeclaration{}

	if p.currentKind() == token.String {
		node.Source = p.parseStringLiteral()
		p.semicolon()
		node.Span = p.span(start)
		return node
	}

	if kind := p.currentKind(); kind == token.Identifier || kind.IsContextual() {
		node.Default = p.parseBindingIdentifier()
		if p.currentKind() == token.Comma {
			p.next()
		} else {
			node.Source = p.parseModuleSource()
			p.semicolon()
			node.Span = p.span(start)
			return node
		}
	}

	switch p.currentKind() {
	case token.Multiply:
		p.next()
		p.expectContextual("as")
		node.Namespace = p.parseBindingIdentifier()
	case token.LeftBrace:
		node.Named = p.parseImportSpecifiers()
	default:
		p.errorUnexpectedToken()
	}

	node.Source = p.parseModuleSource()
	p.semicolon()
	node.Span = p.span(start)
	return node
}

func (p *parser) parseImportSpecifiers() []*ast.ModuleSpecifier {
	p.expect(token.LeftBrace)
	list := []*ast.ModuleSpecifier{}
	for p.currentKind() != token.RightBrace {
		start := p.currentOffset()
		nameToken := p.token
		name := p.parseModuleExportName()
		spec := &ast.ModuleSpecifier{Local: name}
		if p.isContextual("as") {
			p.next()
			spec.Remote = name
			spec.Local = p.parseBindingIdentifier()
		} else {
			p.checkIdentifierReference(name, nameToken.HasEscape)
			p.checkBindingName(name)
		}
		spec.Span = p.span(start)
		list = append(list, spec)
		if p.currentKind() != token.RightBrace {
			p.expect(token.Comma)
		}
	}
	p.expect(token.RightBrace)
	return list
}

// parseModuleExportName parses an IdentifierName in an import or export
// clause. Reserved words are allowed here and validated by the caller where
// they would bind or reference a local name.
func (p *parser) parseModuleExportName() *ast.Identifier {
	if !p.currentKind().IsIdentifierName() {
		p.errorUnexpectedToken()
	}
	id := &ast.Identifier{Span: p.token.Span(), Name: p.token.Value}
	p.next()
	return id
}

func (p *parser) parseExportDeclaration() ast.Stmt {
	start := p.expect(token.Export)

	switch p.currentKind() {
	case token.Multiply:
		p.next()
		node := &ast.ExportAllDeclaration{}
		if p.isContextual("as") {
			p.next()
			node.Alias = p.parseModuleExportName()
		}
		node.Source = p.parseModuleSource()
		p.semicolon()
		node.Span = p.span(start)
		return node
	case token.Default:
		p.next()
		decl := p.parseExportDefault()
		return &ast.ExportDefaultDeclaration{Span: p.span(start), Declaration: decl}
	case token.LeftBrace:
		return p.parseExportClause(start)
	}

	var decl ast.Stmt
	switch kind := p.currentKind(); {
	case kind == token.Var, kind == token.Const, kind == token.Let:
		decl = p.parseVariableStatement()
	case kind == token.Function, kind == token.Async && p.isAsyncFunction():
		decl = p.parseFunctionDeclaration()
	case kind == token.Class:
		cls := p.parseClass()
		if cls.Name == nil {
			p.errorf(cls.Span, "class statements require a class name")
		}
		decl = &ast.ClassDeclaration{Span: cls.Span, Class: cls}
	default:
		p.errorUnexpectedToken()
	}
	return &ast.ExportNamedDeclaration{Span: p.span(start), Declaration: decl}
}

// parseExportDefault parses what follows export default. Function and class
// declarations may omit their name here.
func (p *parser) parseExportDefault() ast.Stmt {
	start := p.currentOffset()
	switch kind := p.currentKind(); {
	case kind == token.Function, kind == token.Async && p.isAsyncFunction():
		fn := p.parseFunction(true, start)
		return &ast.FunctionDeclaration{Span: fn.Span, Function: fn}
	case kind == token.Class:
		cls := p.parseClass()
		return &ast.ClassDeclaration{Span: cls.Span, Class: cls}
	}
	expr := p.parseAssignmentExpression()
	p.semicolon()
	return &ast.ExpressionStatement{Span: p.span(start), Expression: expr}
}

func (p *parser) isAsyncFunction() bool {
	next := p.peek()
	return next.Kind == token.Function && !next.OnNewLine
}

// parseExportClause parses export {a, b as c} with an optional from clause.
// Without a source the local names must be valid references.
func (p *parser) parseExportClause(start ast.Idx) ast.Stmt {
	p.expect(token.LeftBrace)
	node := &ast.ExportNamedDeclaration{Specifiers: []*ast.ModuleSpecifier{}}
	var escaped []bool
	for p.currentKind() != token.RightBrace {
		specStart := p.currentOffset()
		escaped = append(escaped, p.token.HasEscape)
		spec := &ast.ModuleSpecifier{Local: p.parseModuleExportName()}
		if p.isContextual("as") {
			p.next()
			spec.Remote = p.parseModuleExportName()
		}
		spec.Span = p.span(specStart)
		node.Specifiers = append(node.Specifiers, spec)
		if p.currentKind() != token.RightBrace {
			p.expect(token.Comma)
		}
	}
	p.expect(token.RightBrace)

	if p.isContextual("from") {
		node.Source = p.parseModuleSource()
	} else {
		for i, spec := range node.Specifiers {
			p.checkIdentifierReference(spec.Local, escaped[i])
		}
	}
	p.semicolon()
	node.Span = p.span(start)
	return node
}
