package parser

import (
	"github.com/t14raptor/esparse/ast"
	"github.com/t14raptor/esparse/token"
)

// parseClass parses a class declaration or expression. Class code is always
// strict.
func (p *parser) parseClass() *ast.ClassLiteral {
	p.enter()
	defer p.leave()
	start := p.expect(token.Class)
	strict := p.scope.strict
	p.scope.strict = true
	defer func() { p.scope.strict = strict }()

	node := &ast.ClassLiteral{}
	if kind := p.currentKind(); kind == token.Identifier || kind.IsContextual() {
		node.Name = p.parseBindingIdentifier()
	}
	if p.currentKind() == token.Extends {
		p.next()
		start := p.currentOffset()
		node.SuperClass = p.parseLeftHandSideExpressionAllowCall()
		if _, ok := node.SuperClass.(*arrowCover); ok {
			p.errorf(p.span(start), "invalid class heritage")
		}
	}

	p.expect(token.LeftBrace)
	node.Body = ast.ClassElements{}
	hasConstructor := false
	for p.currentKind() != token.RightBrace {
		if p.currentKind() == token.Semicolon {
			p.next()
			continue
		}
		el := p.parseClassElement(&hasConstructor)
		node.Body = append(node.Body, el)
	}
	p.expect(token.RightBrace)

	node.Span = p.span(start)
	return node
}

// isClassModifier reports whether the current static, async, get or set token
// modifies the element that follows rather than naming it.
func (p *parser) isClassModifier() bool {
	next := p.peek()
	switch next.Kind {
	case token.LeftParenthesis, token.Assign, token.Semicolon, token.RightBrace, token.Eof:
		return false
	}
	return !(next.OnNewLine && p.currentKind() == token.Async)
}

func (p *parser) parseClassElement(hasConstructor *bool) ast.ClassElement {
	start := p.currentOffset()

	static := false
	if p.currentKind() == token.Static && !p.token.HasEscape && p.isClassModifier() {
		p.next()
		if p.currentKind() == token.LeftBrace {
			return p.parseStaticBlock(start)
		}
		static = true
	}

	kind := ast.PropertyKindMethod
	async, generator := false, false
	if p.currentKind() == token.Async && !p.token.HasEscape && p.isClassModifier() {
		p.next()
		async = true
	}
	if p.currentKind() == token.Multiply {
		p.next()
		generator = true
	}
	if !async && !generator && (p.isContextual("get") || p.isContextual("set")) && p.isClassModifier() {
		kind = ast.PropertyKind(p.token.Value)
		p.next()
	}

	key, computed := p.parsePropertyKey(true)
	name, named := staticPropertyName(key, computed)

	if async || generator || kind != ast.PropertyKindMethod || p.currentKind() == token.LeftParenthesis {
		switch {
		case named && !static && name == "constructor":
			if kind != ast.PropertyKindMethod {
				p.errorf(spanOf(key), "class constructor may not be an accessor")
			}
			if async {
				p.errorf(spanOf(key), "class constructor may not be an async method")
			}
			if generator {
				p.errorf(spanOf(key), "class constructor may not be a generator")
			}
			if *hasConstructor {
				p.errorf(spanOf(key), "a class may only have one constructor")
			}
			*hasConstructor = true
		case named && static && name == "prototype":
			p.errorf(spanOf(key), "classes may not have a static property named 'prototype'")
		}
		p.checkPrivateConstructor(key)

		fn := p.parseMethodDefinition(kind, async, generator)
		return &ast.MethodDefinition{
			Span:     p.span(start),
			Key:      key,
			Kind:     kind,
			Body:     fn,
			Computed: computed,
			Static:   static,
		}
	}

	if named && name == "constructor" {
		p.errorf(spanOf(key), "classes may not have a field named 'constructor'")
	}
	if named && static && name == "prototype" {
		p.errorf(spanOf(key), "classes may not have a static property named 'prototype'")
	}
	p.checkPrivateConstructor(key)

	field := &ast.FieldDefinition{Key: key, Computed: computed, Static: static}
	if p.currentKind() == token.Assign {
		p.next()
		p.openScope()
		p.scope.allowSuper = true
		p.scope.allowNewTarget = true
		field.Initializer = p.parseAssignmentExpression()
		p.closeScope()
	}
	p.semicolon()
	field.Span = p.span(start)
	return field
}

func (p *parser) checkPrivateConstructor(key ast.Expr) {
	if id, ok := key.(*ast.PrivateIdentifier); ok && id.Name == "constructor" {
		p.errorf(id.Span, "classes may not have a private field named '#constructor'")
	}
}

// staticPropertyName returns the name of a non-computed identifier or string
// key.
func staticPropertyName(key ast.Expr, computed bool) (string, bool) {
	if computed {
		return "", false
	}
	switch k := key.(type) {
	case *ast.Identifier:
		return k.Name, true
	case *ast.StringLiteral:
		return k.Value, true
	}
	return "", false
}

func (p *parser) parseStaticBlock(start ast.Idx) *ast.StaticBlock {
	p.expect(token.LeftBrace)
	p.openFunctionScope(false, false)
	p.scope.inStaticBlock = true
	body := p.parseStatementList(token.RightBrace)
	p.closeScope()
	p.expect(token.RightBrace)
	return &ast.StaticBlock{Span: p.span(start), Body: body}
}
