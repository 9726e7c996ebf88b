package parser

import (
	"github.com/t14raptor/esparse/ast"
	"github.com/t14raptor/esparse/parser/scanner"
	"github.com/t14raptor/esparse/token"
)

// coverGrammar remembers the first shorthand initializer ({a = 1}) seen
// while parsing an expression that may still become a pattern.
type coverGrammar struct {
	shorthandInit ast.Span
	set           bool
}

func (c *coverGrammar) record(span ast.Span) {
	if !c.set {
		c.shorthandInit, c.set = span, true
	}
}

// resolve forgets an initializer that belongs to a literal starting at start
// which has been reinterpreted as a pattern.
func (c *coverGrammar) resolve(start ast.Idx) {
	if c.set && c.shorthandInit.Start >= start {
		c.set = false
	}
}

func (p *parser) checkCover(c *coverGrammar) {
	if c != nil && c.set {
		p.errorf(c.shorthandInit, "invalid shorthand property initializer")
	}
}

// checkCoverWithin fails when a literal holding a shorthand initializer is
// used as a value, e.g. as the object of a member expression.
func (p *parser) checkCoverWithin(expr ast.Expr) {
	if p.cover != nil && p.cover.set && p.cover.shorthandInit.Start >= expr.Idx0() {
		p.checkCover(p.cover)
	}
}

func (p *parser) recordShorthandInit(span ast.Span) {
	if p.cover == nil {
		p.errorf(span, "invalid shorthand property initializer")
	}
	p.cover.record(span)
}

// arrowCover is the parenthesized list or async call arguments directly in
// front of =>. It never appears in a finished tree.
type arrowCover struct {
	ast.Span
	ast.ExprMarker
	params     ast.Expressions
	paramsSpan ast.Span
	async      bool
}

func (p *parser) parseIdentifier() *ast.Identifier {
	if kind := p.currentKind(); kind != token.Identifier && !kind.IsContextual() {
		p.errorUnexpectedToken()
	}
	id := p.alloc.Identifier(p.token.Span(), p.token.Value)
	p.checkIdentifierReference(id, p.token.HasEscape)
	p.next()
	return id
}

// checkIdentifierReference rejects reserved words, including escaped
// spellings of keywords, used as identifiers in the current context.
func (p *parser) checkIdentifierReference(id *ast.Identifier, escaped bool) {
	switch kw := token.MatchKeyword(id.Name); kw {
	case token.Identifier, token.Async, token.Of:
	case token.Await:
		if p.scope.allowAwait || p.module() {
			p.errorf(id.Span, "unexpected reserved word await")
		}
	case token.Let, token.Static:
		if p.scope.strict {
			p.errorf(id.Span, "unexpected strict mode reserved word %s", id.Name)
		}
	default:
		if escaped {
			p.errorf(id.Span, "keyword must not contain escaped characters")
		}
		p.errorf(id.Span, "unexpected reserved word %s", id.Name)
	}
	if p.scope.strict && token.IsStrictReserved(id.Name) {
		p.errorf(id.Span, "unexpected strict mode reserved word %s", id.Name)
	}
}

func (p *parser) parseBindingIdentifier() *ast.Identifier {
	id := p.parseIdentifier()
	p.checkBindingName(id)
	return id
}

func (p *parser) checkBindingName(id *ast.Identifier) {
	if p.scope.strict && (id.Name == "eval" || id.Name == "arguments") {
		p.errorf(id.Span, "unexpected eval or arguments in strict mode")
	}
}

func (p *parser) parsePrimaryExpression() ast.Expr {
	start := p.currentOffset()
	switch p.currentKind() {
	case token.Identifier, token.Let, token.Static, token.Of, token.Await, token.Yield:
		return p.parseIdentifier()
	case token.Async:
		next := p.peek()
		if !next.OnNewLine {
			if next.Kind == token.Function {
				return p.parseFunction(false, start)
			}
			if next.Kind == token.Identifier || next.Kind.IsContextual() {
				p.next()
				param := p.parseIdentifier()
				if p.currentKind() != token.Arrow || p.token.OnNewLine {
					p.errorUnexpectedToken()
				}
				return &arrowCover{
					Span:       p.span(start),
					params:     ast.Expressions{param},
					paramsSpan: param.Span,
					async:      true,
				}
			}
		}
		return p.parseIdentifier()
	case token.String:
		return p.parseStringLiteral()
	case token.Number:
		return p.parseNumberLiteral()
	case token.Boolean:
		lit := &ast.BooleanLiteral{Span: p.token.Span(), Value: p.token.Raw == "true"}
		p.next()
		return lit
	case token.Null:
		p.next()
		return &ast.NullLiteral{Span: p.span(start)}
	case token.Slash, token.QuotientAssign:
		p.token = p.scanner.RescanAsRegExp(p.token)
		if p.token.Kind == token.Illegal {
			p.fail(p.scanner.Err())
		}
		return p.parseRegExpLiteral()
	case token.RegExp:
		return p.parseRegExpLiteral()
	case token.NoSubstitutionTemplate, token.TemplateHead:
		return p.parseTemplateLiteral(nil, start)
	case token.LeftBrace:
		return p.parseObjectLiteral()
	case token.LeftBracket:
		return p.parseArrayLiteral()
	case token.LeftParenthesis:
		return p.parseParenthesizedExpression()
	case token.This:
		p.next()
		return &ast.ThisExpression{Span: p.span(start)}
	case token.Super:
		return p.parseSuperProperty()
	case token.Function:
		return p.parseFunction(false, start)
	case token.Class:
		return p.parseClass()
	case token.Import:
		return p.parseImportMeta()
	}

	p.errorUnexpectedToken()
	return nil
}

func (p *parser) parseStringLiteral() *ast.StringLiteral {
	if p.token.Octal && p.scope.strict {
		p.errorf(p.token.Span(), "octal escape sequences are not allowed in strict mode")
	}
	lit := p.alloc.StringLiteral(p.token.Span(), p.token.Raw, p.token.Value)
	p.next()
	return lit
}

func (p *parser) parseNumberLiteral() *ast.NumberLiteral {
	if p.token.Octal && p.scope.strict {
		p.errorf(p.token.Span(), "octal literals are not allowed in strict mode")
	}
	lit := p.alloc.NumberLiteral(p.token.Span(), p.token.Raw, scanner.NumberValue(p.token.Raw))
	p.next()
	return lit
}

func (p *parser) parseRegExpLiteral() *ast.RegExpLiteral {
	lit := &ast.RegExpLiteral{
		Span:    p.token.Span(),
		Pattern: p.token.Value,
		Flags:   p.token.Flags(),
	}
	p.next()
	return lit
}

func (p *parser) parseSuperProperty() ast.Expr {
	start := p.currentOffset()
	if !p.scope.allowSuper {
		p.errorf(p.token.Span(), "'super' keyword unexpected here")
	}
	p.next()
	switch p.currentKind() {
	case token.Period, token.LeftBracket, token.LeftParenthesis:
		return &ast.SuperExpression{Span: p.span(start)}
	}
	p.errorUnexpectedToken()
	return nil
}

func (p *parser) parseImportMeta() ast.Expr {
	start := p.expect(token.Import)
	meta := &ast.Identifier{Span: p.span(start), Name: "import"}
	p.expect(token.Period)
	if !p.isContextual("meta") {
		p.errorUnexpectedToken()
	}
	prop := &ast.Identifier{Span: p.token.Span(), Name: "meta"}
	p.next()
	if !p.module() {
		p.errorf(p.span(start), "import.meta may only appear in a module")
	}
	return &ast.MetaProperty{Span: p.span(start), Meta: meta, Property: prop}
}

// parseParenthesizedExpression parses (a, b) as a grouping or, when => follows,
// as the parameter cover of an arrow function.
func (p *parser) parseParenthesizedExpression() ast.Expr {
	start := p.expect(token.LeftParenthesis)
	allowIn := p.scope.allowIn
	p.scope.allowIn = true

	cover := &coverGrammar{}
	var list ast.Expressions
	trailingComma, spread := false, false
	for p.currentKind() != token.RightParenthesis {
		item := p.parseArgument(cover)
		if _, ok := item.(*ast.SpreadElement); ok {
			spread = true
		}
		list = append(list, item)
		if p.currentKind() != token.RightParenthesis {
			comma := p.expect(token.Comma)
			if _, ok := item.(*ast.SpreadElement); ok {
				p.restComma[item] = comma
			}
			trailingComma = p.currentKind() == token.RightParenthesis
		}
	}
	p.expect(token.RightParenthesis)
	p.scope.allowIn = allowIn

	if p.currentKind() == token.Arrow {
		if p.token.OnNewLine {
			p.errorUnexpectedToken()
		}
		return &arrowCover{Span: p.span(start), params: list, paramsSpan: p.span(start)}
	}

	p.checkCover(cover)
	if len(list) == 0 || spread || trailingComma {
		p.errorUnexpectedToken()
	}
	var expr ast.Expr = list[0]
	if len(list) > 1 {
		expr = &ast.SequenceExpression{Span: ast.SpanFrom(list[0], list[len(list)-1]), Sequence: list}
	}
	return &ast.ParenthesizedExpression{Span: p.span(start), Expression: expr}
}

func isPropertyNameStart(kind token.Token) bool {
	return kind.IsIdentifierName() || kind == token.String || kind == token.Number ||
		kind == token.LeftBracket || kind == token.PrivateIdentifier
}

func (p *parser) parsePropertyKey(allowPrivate bool) (key ast.Expr, computed bool) {
	switch p.currentKind() {
	case token.LeftBracket:
		p.next()
		allowIn := p.scope.allowIn
		p.scope.allowIn = true
		key = p.parseAssignmentExpression()
		p.scope.allowIn = allowIn
		p.expect(token.RightBracket)
		return key, true
	case token.String:
		return p.parseStringLiteral(), false
	case token.Number:
		return p.parseNumberLiteral(), false
	case token.PrivateIdentifier:
		if !allowPrivate {
			p.errorUnexpectedToken()
		}
		key = &ast.PrivateIdentifier{Span: p.token.Span(), Name: p.token.Value}
		p.next()
		return key, false
	}
	if !p.currentKind().IsIdentifierName() {
		p.errorUnexpectedToken()
	}
	key = p.alloc.Identifier(p.token.Span(), p.token.Value)
	p.next()
	return key, false
}

func (p *parser) parseObjectLiteral() *ast.ObjectLiteral {
	start := p.expect(token.LeftBrace)
	allowIn := p.scope.allowIn
	p.scope.allowIn = true

	props := ast.Properties{}
	for p.currentKind() != token.RightBrace {
		prop := p.parseObjectProperty()
		props = append(props, prop)
		if p.currentKind() != token.RightBrace {
			comma := p.expect(token.Comma)
			if _, ok := prop.(*ast.SpreadElement); ok {
				p.restComma[prop] = comma
			}
		}
	}
	p.expect(token.RightBrace)
	p.scope.allowIn = allowIn
	return &ast.ObjectLiteral{Span: p.span(start), Properties: props}
}

func (p *parser) parseObjectProperty() ast.Property {
	start := p.currentOffset()
	if p.currentKind() == token.Ellipsis {
		p.next()
		arg := p.parseAssignmentExpression()
		return &ast.SpreadElement{Span: p.span(start), Argument: arg}
	}

	kind := ast.PropertyKindValue
	async, generator := false, false
	if p.currentKind() == token.Async {
		if next := p.peek(); !next.OnNewLine && (isPropertyNameStart(next.Kind) || next.Kind == token.Multiply) {
			p.next()
			async = true
		}
	}
	if p.currentKind() == token.Multiply {
		p.next()
		generator = true
	}
	if !async && !generator && (p.isContextual("get") || p.isContextual("set")) {
		if next := p.peek(); isPropertyNameStart(next.Kind) {
			kind = ast.PropertyKind(p.token.Value)
			p.next()
		}
	}

	keyToken := p.token
	key, computed := p.parsePropertyKey(false)

	if async || generator || kind != ast.PropertyKindValue || p.currentKind() == token.LeftParenthesis {
		if kind == ast.PropertyKindValue {
			kind = ast.PropertyKindMethod
		}
		fn := p.parseMethodDefinition(kind, async, generator)
		return &ast.PropertyMethod{Span: p.span(start), Kind: kind, Key: key, Computed: computed, Function: fn}
	}

	if p.currentKind() == token.Colon {
		p.next()
		p.inheritCover = p.cover
		value := p.parseAssignmentExpression()
		return &ast.PropertyKeyed{Span: p.span(start), Key: key, Computed: computed, Value: value}
	}

	if computed || (keyToken.Kind != token.Identifier && !keyToken.Kind.IsContextual()) {
		p.errorf(keyToken.Span(), "unexpected token %s", keyToken.Raw)
	}
	name := key.(*ast.Identifier)
	p.checkIdentifierReference(name, keyToken.HasEscape)

	prop := &ast.PropertyShort{Name: name}
	if p.currentKind() == token.Assign {
		p.next()
		prop.Initializer = p.parseAssignmentExpression()
		p.recordShorthandInit(p.span(start))
	}
	prop.Span = p.span(start)
	return prop
}

func (p *parser) parseArrayLiteral() *ast.ArrayLiteral {
	start := p.expect(token.LeftBracket)
	allowIn := p.scope.allowIn
	p.scope.allowIn = true

	list := ast.Expressions{}
	for p.currentKind() != token.RightBracket {
		if p.currentKind() == token.Comma {
			p.next()
			list = append(list, nil)
			continue
		}
		el := p.parseArgument(p.cover)
		list = append(list, el)
		if p.currentKind() != token.RightBracket {
			comma := p.expect(token.Comma)
			if _, ok := el.(*ast.SpreadElement); ok {
				p.restComma[el] = comma
			}
		}
	}
	p.expect(token.RightBracket)
	p.scope.allowIn = allowIn
	return &ast.ArrayLiteral{Span: p.span(start), Elements: list}
}

// parseArgument parses an element of an array, argument or parameter cover
// list, which may be spread.
func (p *parser) parseArgument(cover *coverGrammar) ast.Expr {
	start := p.currentOffset()
	if p.currentKind() == token.Ellipsis {
		p.next()
		p.inheritCover = cover
		arg := p.parseAssignmentExpression()
		return &ast.SpreadElement{Span: p.span(start), Argument: arg}
	}
	p.inheritCover = cover
	return p.parseAssignmentExpression()
}

func (p *parser) parseTemplateLiteral(tag ast.Expr, start ast.Idx) *ast.TemplateLiteral {
	lit := &ast.TemplateLiteral{Tag: tag}
	allowIn := p.scope.allowIn
	p.scope.allowIn = true
	for {
		tok := p.token
		lit.Quasis = append(lit.Quasis, p.templateElement(tok, tag != nil))
		p.next()
		if tok.Kind == token.NoSubstitutionTemplate || tok.Kind == token.TemplateTail {
			break
		}
		lit.Expressions = append(lit.Expressions, p.parseExpression())
		if kind := p.currentKind(); kind != token.TemplateMiddle && kind != token.TemplateTail {
			p.errorUnexpectedToken()
		}
	}
	p.scope.allowIn = allowIn
	lit.Span = p.span(start)
	return lit
}

func (p *parser) templateElement(tok scanner.Token, tagged bool) *ast.TemplateElement {
	if tok.Invalid && !tagged {
		p.errorf(tok.Span(), "invalid escape sequence in template")
	}
	raw := tok.TemplateLiteral()
	start := tok.Idx0 + 1
	el := &ast.TemplateElement{
		Span:   ast.Span{Start: start, End: start + ast.Idx(len(raw))},
		Raw:    raw,
		Cooked: tok.Value,
		Valid:  !tok.Invalid,
	}
	if tok.Invalid {
		el.Cooked = ""
	}
	return el
}

func (p *parser) parseArgumentList(cover *coverGrammar) ast.Expressions {
	p.expect(token.LeftParenthesis)
	allowIn := p.scope.allowIn
	p.scope.allowIn = true

	list := ast.Expressions{}
	for p.currentKind() != token.RightParenthesis {
		arg := p.parseArgument(cover)
		list = append(list, arg)
		if p.currentKind() != token.RightParenthesis {
			comma := p.expect(token.Comma)
			if _, ok := arg.(*ast.SpreadElement); ok {
				p.restComma[arg] = comma
			}
		}
	}
	p.expect(token.RightParenthesis)
	p.scope.allowIn = allowIn
	return list
}

func (p *parser) parseDotMember(left ast.Expr, start ast.Idx, optional bool) ast.Expr {
	var prop ast.Expr
	switch kind := p.currentKind(); {
	case kind == token.PrivateIdentifier:
		prop = &ast.PrivateIdentifier{Span: p.token.Span(), Name: p.token.Value}
	case kind.IsIdentifierName():
		prop = p.alloc.Identifier(p.token.Span(), p.token.Value)
	default:
		p.errorUnexpectedToken()
	}
	p.next()
	return p.alloc.MemberExpression(p.span(start), left, prop, false, optional)
}

func (p *parser) parseBracketMember(left ast.Expr, start ast.Idx, optional bool) ast.Expr {
	p.expect(token.LeftBracket)
	allowIn := p.scope.allowIn
	p.scope.allowIn = true
	prop := p.parseExpression()
	p.scope.allowIn = allowIn
	p.expect(token.RightBracket)
	return p.alloc.MemberExpression(p.span(start), left, prop, true, optional)
}

func (p *parser) parseNewExpression() ast.Expr {
	p.enter()
	defer p.leave()

	start := p.expect(token.New)
	if p.currentKind() == token.Period {
		meta := &ast.Identifier{Span: p.span(start), Name: "new"}
		p.next()
		if !p.isContextual("target") {
			p.errorUnexpectedToken()
		}
		prop := &ast.Identifier{Span: p.token.Span(), Name: "target"}
		p.next()
		if !p.scope.allowNewTarget {
			p.errorf(p.span(start), "new.target expression is not allowed here")
		}
		return &ast.MetaProperty{Span: p.span(start), Meta: meta, Property: prop}
	}

	calleeStart := p.currentOffset()
	var callee ast.Expr
	if p.currentKind() == token.New {
		callee = p.parseNewExpression()
	} else {
		callee = p.parsePrimaryExpression()
	}
	if _, ok := callee.(*arrowCover); ok {
		p.errorUnexpectedToken()
	}

loop:
	for {
		switch p.currentKind() {
		case token.Period:
			p.next()
			callee = p.parseDotMember(callee, calleeStart, false)
		case token.LeftBracket:
			callee = p.parseBracketMember(callee, calleeStart, false)
		case token.NoSubstitutionTemplate, token.TemplateHead:
			callee = p.parseTemplateLiteral(callee, calleeStart)
		case token.QuestionDot:
			p.errorf(p.token.Span(), "invalid optional chain from new expression")
		default:
			break loop
		}
	}

	node := &ast.NewExpression{Callee: callee}
	if p.currentKind() == token.LeftParenthesis {
		node.Arguments = p.parseArgumentList(nil)
	}
	node.Span = p.span(start)
	return node
}

func isSubscriptStart(kind token.Token) bool {
	switch kind {
	case token.Period, token.LeftBracket, token.LeftParenthesis, token.QuestionDot,
		token.NoSubstitutionTemplate, token.TemplateHead:
		return true
	}
	return false
}

func (p *parser) parseLeftHandSideExpressionAllowCall() ast.Expr {
	start := p.currentOffset()
	maybeAsyncArrow := p.currentKind() == token.Async

	var left ast.Expr
	if p.currentKind() == token.New {
		left = p.parseNewExpression()
	} else {
		left = p.parsePrimaryExpression()
	}

	switch left.(type) {
	case *arrowCover:
		return left
	case *ast.Identifier:
	case *ast.ObjectLiteral, *ast.ArrayLiteral:
		maybeAsyncArrow = false
		if isSubscriptStart(p.currentKind()) {
			p.checkCoverWithin(left)
		}
	default:
		maybeAsyncArrow = false
	}

	optionalChain := false
	for {
		switch p.currentKind() {
		case token.Period:
			p.next()
			left = p.parseDotMember(left, start, false)
		case token.LeftBracket:
			left = p.parseBracketMember(left, start, false)
		case token.LeftParenthesis:
			if maybeAsyncArrow && !p.token.OnNewLine {
				cover := &coverGrammar{}
				parenStart := p.currentOffset()
				args := p.parseArgumentList(cover)
				if p.currentKind() == token.Arrow {
					if p.token.OnNewLine {
						p.errorUnexpectedToken()
					}
					return &arrowCover{Span: p.span(start), params: args, paramsSpan: p.span(parenStart), async: true}
				}
				p.checkCover(cover)
				left = p.alloc.CallExpression(p.span(start), left, args, false)
				break
			}
			args := p.parseArgumentList(nil)
			left = p.alloc.CallExpression(p.span(start), left, args, false)
		case token.QuestionDot:
			optionalChain = true
			p.next()
			switch p.currentKind() {
			case token.LeftParenthesis:
				args := p.parseArgumentList(nil)
				left = p.alloc.CallExpression(p.span(start), left, args, true)
			case token.LeftBracket:
				left = p.parseBracketMember(left, start, true)
			case token.NoSubstitutionTemplate, token.TemplateHead:
				p.errorf(p.token.Span(), "invalid tagged template on optional chain")
			default:
				left = p.parseDotMember(left, start, true)
			}
		case token.NoSubstitutionTemplate, token.TemplateHead:
			if optionalChain {
				p.errorf(p.token.Span(), "invalid tagged template on optional chain")
			}
			left = p.parseTemplateLiteral(left, start)
		default:
			return left
		}
		maybeAsyncArrow = false
	}
}

func (p *parser) parseUpdateExpression() ast.Expr {
	start := p.currentOffset()
	switch p.currentKind() {
	case token.Increment, token.Decrement:
		op := p.currentKind()
		p.next()
		operand := p.parseUnaryExpression()
		p.checkUpdateTarget(operand)
		return &ast.UpdateExpression{Span: p.span(start), Operator: op, Operand: operand}
	}

	operand := p.parseLeftHandSideExpressionAllowCall()
	if kind := p.currentKind(); (kind == token.Increment || kind == token.Decrement) && !p.token.OnNewLine {
		p.checkUpdateTarget(operand)
		p.next()
		return &ast.UpdateExpression{Span: p.span(start), Operator: kind, Operand: operand, Postfix: true}
	}
	return operand
}

func (p *parser) checkUpdateTarget(expr ast.Expr) {
	switch e := unparen(expr).(type) {
	case *ast.Identifier:
		if p.scope.strict && (e.Name == "eval" || e.Name == "arguments") {
			p.errorf(e.Span, "unexpected eval or arguments in strict mode")
		}
		return
	case *ast.MemberExpression:
		if !inOptionalChain(e) {
			return
		}
	}
	p.errorf(ast.Span{Start: expr.Idx0(), End: expr.Idx1()}, "invalid update target")
}

func (p *parser) parseUnaryExpression() ast.Expr {
	p.enter()
	defer p.leave()

	start := p.currentOffset()
	switch p.currentKind() {
	case token.Plus, token.Minus, token.Not, token.BitwiseNot, token.Typeof, token.Void, token.Delete:
		op := p.currentKind()
		p.next()
		operand := p.parseUnaryExpression()
		if op == token.Delete && p.scope.strict {
			if _, ok := unparen(operand).(*ast.Identifier); ok {
				p.errorf(p.span(start), "delete of an unqualified identifier in strict mode")
			}
		}
		return &ast.UnaryExpression{Span: p.span(start), Operator: op, Operand: operand}
	case token.Await:
		if p.scope.allowAwait {
			if p.scope.inFuncParams {
				p.errorf(p.token.Span(), "await expression not allowed in formal parameter")
			}
			p.next()
			arg := p.parseUnaryExpression()
			return &ast.AwaitExpression{Span: p.span(start), Argument: arg}
		}
	}
	return p.parseUpdateExpression()
}

func (p *parser) parseBinaryExpressionOrHigher(minPrecedence Precedence) ast.Expr {
	p.enter()
	defer p.leave()
	start := p.currentOffset()
	var left ast.Expr
	if p.currentKind() == token.PrivateIdentifier {
		left = p.parsePrivateInExpression(minPrecedence)
	} else {
		left = p.parseUnaryExpression()
	}
	return p.parseBinaryExpressionRest(left, start, minPrecedence)
}

func (p *parser) parseBinaryExpressionRest(left ast.Expr, start ast.Idx, minPrecedence Precedence) ast.Expr {
	if _, ok := left.(*arrowCover); ok {
		return left
	}
	for {
		if p.currentKind() == token.RegExp {
			// A / after a complete operand divides.
			p.token = p.scanner.RescanAsDivide(p.token)
		}
		kind := p.currentKind()
		lbp := kindToPrecedence(kind)
		if lbp <= minPrecedence || (kind == token.In && !p.scope.allowIn) {
			return left
		}

		if kind == token.Exponent {
			switch left.(type) {
			case *ast.UnaryExpression, *ast.AwaitExpression:
				p.errorf(ast.Span{Start: left.Idx0(), End: left.Idx1()},
					"unary operator used immediately before exponentiation expression")
			}
		}

		p.next()
		right := p.parseBinaryExpressionOrHigher(lbp ^ 1)
		if _, ok := right.(*arrowCover); ok {
			p.errorUnexpectedToken()
		}

		if isLogicalOperator(kind) {
			p.checkCoalesceMixing(kind, left)
			p.checkCoalesceMixing(kind, right)
		}
		left = p.alloc.BinaryExpression(p.span(start), kind, left, right)
	}
}

// checkCoalesceMixing rejects ?? next to an unparenthesized && or ||.
func (p *parser) checkCoalesceMixing(op token.Token, operand ast.Expr) {
	bin, ok := operand.(*ast.BinaryExpression)
	if !ok || !isLogicalOperator(bin.Operator) {
		return
	}
	if (op == token.Coalesce) != (bin.Operator == token.Coalesce) {
		p.errorf(bin.Span, "cannot mix ?? with && or || without parentheses")
	}
}

// parsePrivateInExpression parses the #x of #x in obj.
func (p *parser) parsePrivateInExpression(minPrecedence Precedence) ast.Expr {
	name := &ast.PrivateIdentifier{Span: p.token.Span(), Name: p.token.Value}
	p.next()
	if p.currentKind() != token.In || !p.scope.allowIn || PrecedenceCompare <= minPrecedence {
		p.errorf(name.Span, "unexpected private name #%s", name.Name)
	}
	return name
}

func (p *parser) parseConditionalExpression() ast.Expr {
	start := p.currentOffset()
	test := p.parseBinaryExpressionOrHigher(PrecedenceLowest)
	if _, ok := test.(*arrowCover); ok || p.currentKind() != token.QuestionMark {
		return test
	}
	p.next()

	allowIn := p.scope.allowIn
	p.scope.allowIn = true
	consequent := p.parseAssignmentExpression()
	p.scope.allowIn = allowIn

	p.expect(token.Colon)
	alternate := p.parseAssignmentExpression()
	return &ast.ConditionalExpression{
		Span:       p.span(start),
		Test:       test,
		Consequent: consequent,
		Alternate:  alternate,
	}
}

func (p *parser) parseAssignmentExpression() ast.Expr {
	p.enter()
	defer p.leave()

	cover := p.inheritCover
	p.inheritCover = nil
	own := cover == nil
	if own {
		cover = &coverGrammar{}
	}
	outer := p.cover
	p.cover = cover
	defer func() { p.cover = outer }()

	if p.currentKind() == token.Yield && p.scope.allowYield {
		return p.parseYieldExpression()
	}

	start := p.currentOffset()
	left := p.parseConditionalExpression()

	switch l := left.(type) {
	case *arrowCover:
		return p.parseArrowFunction(start, l)
	case *ast.Identifier:
		if p.currentKind() == token.Arrow {
			if p.token.OnNewLine {
				p.errorUnexpectedToken()
			}
			return p.parseArrowFunction(start, &arrowCover{
				Span:       l.Span,
				params:     ast.Expressions{l},
				paramsSpan: l.Span,
			})
		}
	}

	if kind := p.currentKind(); kind.IsAssign() {
		var target ast.Target
		if kind == token.Assign {
			target = p.reinterpretAsAssignmentTarget(left)
			switch left.(type) {
			case *ast.ObjectLiteral, *ast.ArrayLiteral:
				cover.resolve(left.Idx0())
			}
		} else {
			target = p.reinterpretAsSimpleAssignmentTarget(left)
		}
		p.next()
		right := p.parseAssignmentExpression()
		left = &ast.AssignExpression{Span: p.span(start), Operator: kind, Left: target, Right: right}
	}

	if own {
		p.checkCover(cover)
	}
	return left
}

// startsExpression reports whether a token can begin an expression.
func startsExpression(kind token.Token) bool {
	switch kind {
	case token.Identifier, token.String, token.Number, token.RegExp, token.PrivateIdentifier,
		token.NoSubstitutionTemplate, token.TemplateHead,
		token.LeftParenthesis, token.LeftBracket, token.LeftBrace,
		token.Plus, token.Minus, token.Not, token.BitwiseNot, token.Increment, token.Decrement,
		token.Slash, token.QuotientAssign,
		token.This, token.Super, token.New, token.Function, token.Class, token.Import,
		token.Typeof, token.Void, token.Delete, token.Null, token.Boolean:
		return true
	}
	return kind.IsContextual()
}

func (p *parser) parseYieldExpression() ast.Expr {
	if p.scope.inFuncParams {
		p.errorf(p.token.Span(), "yield expression not allowed in formal parameter")
	}
	start := p.expect(token.Yield)
	node := &ast.YieldExpression{}
	if !p.token.OnNewLine {
		if p.currentKind() == token.Multiply {
			p.next()
			node.Delegate = true
			node.Argument = p.parseAssignmentExpression()
		} else if startsExpression(p.currentKind()) {
			node.Argument = p.parseAssignmentExpression()
		}
	}
	node.Span = p.span(start)
	return node
}

func (p *parser) parseExpression() ast.Expr {
	start := p.currentOffset()
	left := p.parseAssignmentExpression()
	if p.currentKind() != token.Comma {
		return left
	}
	list := ast.Expressions{left}
	for p.currentKind() == token.Comma {
		p.next()
		list = append(list, p.parseAssignmentExpression())
	}
	return &ast.SequenceExpression{Span: p.span(start), Sequence: list}
}

func unparen(expr ast.Expr) ast.Expr {
	for {
		paren, ok := expr.(*ast.ParenthesizedExpression)
		if !ok {
			return expr
		}
		expr = paren.Expression
	}
}

// inOptionalChain reports whether expr is part of an a?.b chain.
func inOptionalChain(expr ast.Expr) bool {
	for {
		switch e := expr.(type) {
		case *ast.MemberExpression:
			if e.Optional {
				return true
			}
			expr = e.Object
		case *ast.CallExpression:
			if e.Optional {
				return true
			}
			expr = e.Callee
		default:
			return false
		}
	}
}
