package parser

import (
	"github.com/t14raptor/esparse/ast"
	"github.com/t14raptor/esparse/token"
)

func spanOf(node ast.Node) ast.Span {
	return ast.Span{Start: node.Idx0(), End: node.Idx1()}
}

func (p *parser) parseBindingTarget() ast.Target {
	p.enter()
	defer p.leave()

	switch p.currentKind() {
	case token.LeftBracket:
		return p.parseArrayBindingPattern()
	case token.LeftBrace:
		return p.parseObjectBindingPattern()
	}
	return p.parseBindingIdentifier()
}

// parseBindingElement parses a binding target with an optional default.
func (p *parser) parseBindingElement() *ast.PatternElement {
	start := p.currentOffset()
	el := &ast.PatternElement{Target: p.parseBindingTarget()}
	if p.currentKind() == token.Assign {
		p.next()
		allowIn := p.scope.allowIn
		p.scope.allowIn = true
		el.Initializer = p.parseAssignmentExpression()
		p.scope.allowIn = allowIn
	}
	el.Span = p.span(start)
	return el
}

// parseBindingRest parses the target after ... and requires closing to
// follow it.
func (p *parser) parseBindingRest(closing token.Token, object bool) ast.Target {
	start := p.expect(token.Ellipsis)
	var target ast.Target
	if object {
		target = p.parseBindingIdentifier()
	} else {
		target = p.parseBindingTarget()
	}
	if p.currentKind() != closing {
		p.errorf(p.span(start), "rest element must be last element")
	}
	return target
}

func (p *parser) parseArrayBindingPattern() *ast.ArrayPattern {
	start := p.expect(token.LeftBracket)
	pattern := &ast.ArrayPattern{}
	for p.currentKind() != token.RightBracket {
		switch p.currentKind() {
		case token.Comma:
			p.next()
			pattern.Elements = append(pattern.Elements, nil)
			continue
		case token.Ellipsis:
			pattern.Rest = p.parseBindingRest(token.RightBracket, false)
			continue
		}
		pattern.Elements = append(pattern.Elements, p.parseBindingElement())
		if p.currentKind() != token.RightBracket {
			p.expect(token.Comma)
		}
	}
	p.expect(token.RightBracket)
	pattern.Span = p.span(start)
	return pattern
}

func (p *parser) parseObjectBindingPattern() *ast.ObjectPattern {
	start := p.expect(token.LeftBrace)
	pattern := &ast.ObjectPattern{}
	for p.currentKind() != token.RightBrace {
		if p.currentKind() == token.Ellipsis {
			pattern.Rest = p.parseBindingRest(token.RightBrace, true)
			continue
		}
		pattern.Properties = append(pattern.Properties, p.parseBindingProperty())
		if p.currentKind() != token.RightBrace {
			p.expect(token.Comma)
		}
	}
	p.expect(token.RightBrace)
	pattern.Span = p.span(start)
	return pattern
}

func (p *parser) parseBindingProperty() *ast.PatternProperty {
	start := p.currentOffset()
	keyToken := p.token
	key, computed := p.parsePropertyKey(false)

	if p.currentKind() == token.Colon {
		p.next()
		value := p.parseBindingElement()
		return &ast.PatternProperty{Span: p.span(start), Key: key, Computed: computed, Value: value}
	}

	if computed || (keyToken.Kind != token.Identifier && !keyToken.Kind.IsContextual()) {
		p.errorf(keyToken.Span(), "unexpected token %s", keyToken.Raw)
	}
	name := key.(*ast.Identifier)
	p.checkIdentifierReference(name, keyToken.HasEscape)
	p.checkBindingName(name)

	value := &ast.PatternElement{Target: name}
	if p.currentKind() == token.Assign {
		p.next()
		allowIn := p.scope.allowIn
		p.scope.allowIn = true
		value.Initializer = p.parseAssignmentExpression()
		p.scope.allowIn = allowIn
	}
	value.Span = p.span(start)
	return &ast.PatternProperty{Span: value.Span, Key: name, Shorthand: true, Value: value}
}

// reinterpretAsAssignmentTarget converts the left side of = into a target.
// Array and object literals become assignment patterns.
func (p *parser) reinterpretAsAssignmentTarget(expr ast.Expr) ast.Target {
	return p.reinterpretAsTarget(expr, false)
}

// reinterpretAsSimpleAssignmentTarget converts the operand of a compound
// assignment, which only accepts identifiers and member expressions.
func (p *parser) reinterpretAsSimpleAssignmentTarget(expr ast.Expr) ast.Target {
	switch e := expr.(type) {
	case *ast.Identifier:
		p.checkBindingName(e)
		return e
	case *ast.MemberExpression:
		if !inOptionalChain(e) {
			return e
		}
	case *ast.ParenthesizedExpression:
		switch inner := unparen(e).(type) {
		case *ast.Identifier, *ast.MemberExpression:
			return p.reinterpretAsSimpleAssignmentTarget(inner)
		}
	}
	p.errorf(spanOf(expr), "invalid assignment target")
	return nil
}

func (p *parser) reinterpretAsTarget(expr ast.Expr, binding bool) ast.Target {
	switch e := expr.(type) {
	case *ast.ArrayLiteral:
		return p.reinterpretAsArrayPattern(e, binding)
	case *ast.ObjectLiteral:
		return p.reinterpretAsObjectPattern(e, binding)
	case *ast.Identifier:
		p.checkBindingName(e)
		return e
	}
	if binding {
		p.errorf(spanOf(expr), "invalid binding target")
	}
	return p.reinterpretAsSimpleAssignmentTarget(expr)
}

func (p *parser) reinterpretAsArrayPattern(lit *ast.ArrayLiteral, binding bool) *ast.ArrayPattern {
	pattern := &ast.ArrayPattern{Span: lit.Span}
	for i, el := range lit.Elements {
		if spread, ok := el.(*ast.SpreadElement); ok {
			p.checkRestPosition(spread, i == len(lit.Elements)-1)
			pattern.Rest = p.reinterpretAsRestTarget(spread, binding, false)
			continue
		}
		if el == nil {
			pattern.Elements = append(pattern.Elements, nil)
			continue
		}
		pattern.Elements = append(pattern.Elements, p.reinterpretAsPatternElement(el, binding))
	}
	return pattern
}

func (p *parser) reinterpretAsObjectPattern(lit *ast.ObjectLiteral, binding bool) *ast.ObjectPattern {
	pattern := &ast.ObjectPattern{Span: lit.Span}
	for i, prop := range lit.Properties {
		switch prop := prop.(type) {
		case *ast.PropertyShort:
			p.checkBindingName(prop.Name)
			pattern.Properties = append(pattern.Properties, &ast.PatternProperty{
				Span:      prop.Span,
				Key:       prop.Name,
				Shorthand: true,
				Value:     &ast.PatternElement{Span: prop.Span, Target: prop.Name, Initializer: prop.Initializer},
			})
		case *ast.PropertyKeyed:
			pattern.Properties = append(pattern.Properties, &ast.PatternProperty{
				Span:     prop.Span,
				Key:      prop.Key,
				Computed: prop.Computed,
				Value:    p.reinterpretAsPatternElement(prop.Value, binding),
			})
		case *ast.SpreadElement:
			p.checkRestPosition(prop, i == len(lit.Properties)-1)
			pattern.Rest = p.reinterpretAsRestTarget(prop, binding, true)
		default:
			p.errorf(spanOf(prop), "invalid destructuring target")
		}
	}
	return pattern
}

func (p *parser) checkRestPosition(spread *ast.SpreadElement, last bool) {
	if _, comma := p.restComma[spread]; comma || !last {
		p.errorf(spread.Span, "rest element must be last element")
	}
}

// reinterpretAsRestTarget converts the argument of a trailing spread. Object
// rest elements accept no nested patterns.
func (p *parser) reinterpretAsRestTarget(spread *ast.SpreadElement, binding, object bool) ast.Target {
	switch arg := spread.Argument.(type) {
	case *ast.AssignExpression:
		p.errorf(spread.Span, "rest element must be last element")
	case *ast.ArrayLiteral, *ast.ObjectLiteral:
		if object {
			p.errorf(spanOf(arg), "invalid rest element")
		}
	}
	return p.reinterpretAsTarget(spread.Argument, binding)
}

// reinterpretAsPatternElement converts an element, where target = value
// becomes a default.
func (p *parser) reinterpretAsPatternElement(expr ast.Expr, binding bool) *ast.PatternElement {
	if assign, ok := expr.(*ast.AssignExpression); ok && assign.Operator == token.Assign {
		if binding {
			p.checkBindingTarget(assign.Left)
		}
		return &ast.PatternElement{Span: assign.Span, Target: assign.Left, Initializer: assign.Right}
	}
	return &ast.PatternElement{Span: spanOf(expr), Target: p.reinterpretAsTarget(expr, binding)}
}

// checkBindingTarget validates a target built for an assignment before it
// is used as a binding.
func (p *parser) checkBindingTarget(target ast.Target) {
	switch t := target.(type) {
	case *ast.Identifier:
		p.checkBindingName(t)
	case *ast.ArrayPattern:
		for _, el := range t.Elements {
			if el != nil {
				p.checkBindingTarget(el.Target)
			}
		}
		if t.Rest != nil {
			p.checkBindingTarget(t.Rest)
		}
	case *ast.ObjectPattern:
		for _, prop := range t.Properties {
			p.checkBindingTarget(prop.Value.Target)
		}
		if t.Rest != nil {
			p.checkBindingTarget(t.Rest)
		}
	default:
		p.errorf(spanOf(target), "invalid binding target")
	}
}

// reinterpretAsArrowParams converts the parameter cover of an arrow function
// into a binding parameter list.
func (p *parser) reinterpretAsArrowParams(cover *arrowCover) *ast.ParameterList {
	params := &ast.ParameterList{Span: cover.paramsSpan}
	for i, item := range cover.params {
		if spread, ok := item.(*ast.SpreadElement); ok {
			p.checkRestPosition(spread, i == len(cover.params)-1)
			params.Rest = p.reinterpretAsRestTarget(spread, true, false)
			continue
		}
		params.List = append(params.List, p.reinterpretAsPatternElement(item, true))
	}
	if cover.async {
		for _, param := range params.List {
			p.checkAwaitBinding(param.Target)
		}
		if params.Rest != nil {
			p.checkAwaitBinding(params.Rest)
		}
	}
	return params
}

// checkAwaitBinding rejects await bound by the parameters of an async arrow
// function, which were parsed before the arrow was known to be async.
func (p *parser) checkAwaitBinding(target ast.Target) {
	switch t := target.(type) {
	case *ast.Identifier:
		if t.Name == "await" {
			p.errorf(t.Span, "unexpected reserved word await")
		}
	case *ast.ArrayPattern:
		for _, el := range t.Elements {
			if el != nil {
				p.checkAwaitBinding(el.Target)
			}
		}
		if t.Rest != nil {
			p.checkAwaitBinding(t.Rest)
		}
	case *ast.ObjectPattern:
		for _, prop := range t.Properties {
			p.checkAwaitBinding(prop.Value.Target)
		}
		if t.Rest != nil {
			p.checkAwaitBinding(t.Rest)
		}
	}
}
