package parser

import (
	"github.com/t14raptor/esparse/ast"
	"github.com/t14raptor/esparse/token"
)

// parseFunction parses [async] function [*] [name] (params) { body }. The name
// of a declaration is bound in the enclosing context, the name of an
// expression in the function's own.
func (p *parser) parseFunction(declaration bool, start ast.Idx) *ast.FunctionLiteral {
	node := &ast.FunctionLiteral{}
	if p.currentKind() == token.Async {
		p.next()
		node.Async = true
	}
	p.expect(token.Function)
	if p.currentKind() == token.Multiply {
		p.next()
		node.Generator = true
	}

	if p.currentKind() != token.LeftParenthesis {
		if declaration {
			node.Name = p.parseBindingIdentifier()
		} else {
			p.openFunctionScope(node.Async, node.Generator)
			node.Name = p.parseBindingIdentifier()
			p.closeScope()
		}
	}

	p.openFunctionScope(node.Async, node.Generator)
	node.Params = p.parseFunctionParameterList()
	node.Body = p.parseFunctionBody(node.Params)
	if node.Name != nil && node.Body.Strict() {
		p.checkStrictName(node.Name)
	}
	p.closeScope()

	node.Span = p.span(start)
	return node
}

func (p *parser) parseFunctionParameterList() *ast.ParameterList {
	start := p.expect(token.LeftParenthesis)
	inFuncParams := p.scope.inFuncParams
	p.scope.inFuncParams = true

	list := &ast.ParameterList{}
	for p.currentKind() != token.RightParenthesis {
		if p.currentKind() == token.Ellipsis {
			list.Rest = p.parseBindingRest(token.RightParenthesis, false)
			break
		}
		list.List = append(list.List, p.parseBindingElement())
		if p.currentKind() != token.RightParenthesis {
			p.expect(token.Comma)
		}
	}

	p.scope.inFuncParams = inFuncParams
	p.expect(token.RightParenthesis)
	list.Span = p.span(start)
	return list
}

// parseFunctionBody parses a braced body inside an open function scope.
func (p *parser) parseFunctionBody(params *ast.ParameterList) *ast.FunctionBody {
	start := p.expect(token.LeftBrace)
	strict := p.scope.strict

	body := &ast.FunctionBody{Directives: p.parseDirectives()}
	if body.Strict() && !params.Simple() {
		p.errorf(p.span(start), "illegal 'use strict' directive in function with non-simple parameter list")
	}
	if p.scope.strict && !strict {
		for _, param := range params.List {
			p.checkStrictName(param.Target.(*ast.Identifier))
		}
	}

	body.List = p.parseStatementList(token.RightBrace)
	p.expect(token.RightBrace)
	body.Span = p.span(start)
	return body
}

// checkStrictName validates a name bound before a "use strict" directive
// switched its function to strict mode.
func (p *parser) checkStrictName(id *ast.Identifier) {
	switch {
	case id.Name == "eval" || id.Name == "arguments":
		p.errorf(id.Span, "unexpected eval or arguments in strict mode")
	case token.IsStrictReserved(id.Name):
		p.errorf(id.Span, "unexpected strict mode reserved word %s", id.Name)
	}
}

func (p *parser) parseArrowFunction(start ast.Idx, cover *arrowCover) *ast.ArrowFunctionLiteral {
	p.expect(token.Arrow)
	node := &ast.ArrowFunctionLiteral{Async: cover.async}

	allowIn := p.scope.allowIn
	p.openScope()
	p.scope.inFunction = true
	p.scope.inAsync = cover.async
	p.scope.allowAwait = cover.async

	node.Params = p.reinterpretAsArrowParams(cover)
	if p.currentKind() == token.LeftBrace {
		node.Body = p.parseFunctionBody(node.Params)
	} else {
		p.scope.allowIn = allowIn
		node.Expression = p.parseAssignmentExpression()
	}
	p.closeScope()

	node.Span = p.span(start)
	return node
}

// parseMethodDefinition parses the parameters and body of an object or class
// method.
func (p *parser) parseMethodDefinition(kind ast.PropertyKind, async, generator bool) *ast.FunctionLiteral {
	start := p.currentOffset()
	p.openFunctionScope(async, generator)
	params := p.parseFunctionParameterList()
	switch kind {
	case ast.PropertyKindGet:
		if len(params.List) != 0 || params.Rest != nil {
			p.errorf(params.Span, "getter must not have any formal parameters")
		}
	case ast.PropertyKindSet:
		if params.Rest != nil {
			p.errorf(params.Span, "setter function argument must not be a rest parameter")
		}
		if len(params.List) != 1 {
			p.errorf(params.Span, "setter must have exactly one formal parameter")
		}
	}
	body := p.parseFunctionBody(params)
	p.closeScope()

	return &ast.FunctionLiteral{
		Span:      p.span(start),
		Params:    params,
		Body:      body,
		Async:     async,
		Generator: generator,
	}
}
