/*
Package parser implements a parser for ECMAScript source.

	program, err := parser.ParseFile(src)

	expr, err := parser.ParseExpression("[a, b] = [b, a]")

Parsing is fail-fast: the first lexical or syntax error aborts the parse and is
returned as a LexError, *SyntaxError or *RecursionLimitError. No partial tree
is returned.
*/
package parser

import (
	"fmt"

	"github.com/t14raptor/esparse/ast"
	"github.com/t14raptor/esparse/parser/scanner"
	"github.com/t14raptor/esparse/token"
)

// EntryPoint selects the grammar production a source text is parsed as.
type EntryPoint int

const (
	EntryProgram EntryPoint = iota
	EntryStatement
	EntryExpression
)

func (e EntryPoint) String() string {
	switch e {
	case EntryStatement:
		return "statement"
	case EntryExpression:
		return "expression"
	}
	return "program"
}

// ParseEntryPoint returns the entry point named by s. The empty string names
// EntryProgram.
func ParseEntryPoint(s string) (EntryPoint, error) {
	switch s {
	case "", "program":
		return EntryProgram, nil
	case "statement":
		return EntryStatement, nil
	case "expression":
		return EntryExpression, nil
	}
	return 0, fmt.Errorf("unknown entry point %q", s)
}

// DefaultMaxDepth bounds the nesting of expressions and statements.
const DefaultMaxDepth = 512

type options struct {
	maxDepth       int
	sourceType     ast.SourceType
	validateRegExp bool
	strict         bool
}

// Option configures a parse.
type Option func(*options)

// WithMaxDepth sets the nesting limit; exceeding it fails the parse with a
// *RecursionLimitError.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		o.maxDepth = n
	}
}

// WithSourceType parses programs as scripts or modules. Modules are strict,
// accept import and export declarations and reserve await.
func WithSourceType(t ast.SourceType) Option {
	return func(o *options) {
		o.sourceType = t
	}
}

// WithRegExpValidation compiles regular expression literals while scanning.
func WithRegExpValidation(enabled bool) Option {
	return func(o *options) {
		o.validateRegExp = enabled
	}
}

// WithStrict starts parsing in strict mode code.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

type parser struct {
	str     string
	token   scanner.Token
	prevEnd ast.Idx

	scanner *scanner.Scanner

	opts  options
	scope *scope
	depth int
	alloc nodeAllocator

	// cover collects shorthand initializers ({a = 1}) of the innermost
	// assignment expression; inheritCover hands it to a nested one.
	cover        *coverGrammar
	inheritCover *coverGrammar

	// restComma records spread elements followed by a comma, which may not
	// become rest elements.
	restComma map[ast.Node]ast.Idx

	err error
}

func newParser(src string, opts ...Option) *parser {
	o := options{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}
	p := &parser{
		str:       src,
		opts:      o,
		alloc:     newNodeAllocator(len(src)),
		restComma: map[ast.Node]ast.Idx{},
	}
	p.scanner = scanner.NewScanner(src)
	p.scanner.ValidateRegExp = o.validateRegExp
	return p
}

// Parse parses src as the given entry point. The whole input must be
// consumed.
func Parse(src string, entry EntryPoint, opts ...Option) (node ast.Node, err error) {
	p := newParser(src, opts...)
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			node, err = nil, p.err
		}
	}()

	p.openScope()
	p.scope.strict = p.opts.strict || p.module()
	p.scope.allowAwait = p.module()
	p.next()

	switch entry {
	case EntryExpression:
		node = p.parseExpression()
	case EntryStatement:
		if p.module() {
			node = p.parseModuleItem()
		} else {
			node = p.parseStatementListItem()
		}
	default:
		node = p.parseProgram()
	}

	if p.currentKind() != token.Eof {
		p.errorf(p.token.Span(), "unexpected trailing input")
	}
	p.closeScope()
	return node, nil
}

// ParseFile parses the source code of a single JavaScript/ECMAScript source
// file and returns the corresponding ast.Program node.
func ParseFile(src string, opts ...Option) (*ast.Program, error) {
	node, err := Parse(src, EntryProgram, opts...)
	if err != nil {
		return nil, err
	}
	return node.(*ast.Program), nil
}

// ParseExpression parses src as a single expression.
func ParseExpression(src string, opts ...Option) (ast.Expr, error) {
	node, err := Parse(src, EntryExpression, opts...)
	if err != nil {
		return nil, err
	}
	return node.(ast.Expr), nil
}

// ParseStatement parses src as a single statement or declaration.
func ParseStatement(src string, opts ...Option) (ast.Stmt, error) {
	node, err := Parse(src, EntryStatement, opts...)
	if err != nil {
		return nil, err
	}
	return node.(ast.Stmt), nil
}

func (p *parser) module() bool {
	return p.opts.sourceType == ast.SourceModule
}

func (p *parser) next() {
	p.prevEnd = p.token.Idx1
	p.token = p.scanner.Next()
	if p.token.Kind == token.Illegal {
		p.fail(p.scanner.Err())
	}
}

type parserState struct {
	c scanner.Checkpoint

	tok     scanner.Token
	prevEnd ast.Idx
}

func (p *parser) mark() parserState {
	return parserState{
		c:       p.scanner.Checkpoint(),
		tok:     p.token,
		prevEnd: p.prevEnd,
	}
}

func (p *parser) restore(state parserState) {
	p.scanner.Rewind(state.c)
	p.token = state.tok
	p.prevEnd = state.prevEnd
}

func (p *parser) peek() scanner.Token {
	st := p.mark()
	p.next()
	tok := p.token
	p.restore(st)
	return tok
}

func (p *parser) currentKind() token.Token {
	return p.token.Kind
}

func (p *parser) currentOffset() ast.Idx {
	return p.token.Idx0
}

// span covers start through the last consumed token.
func (p *parser) span(start ast.Idx) ast.Span {
	return ast.Span{Start: start, End: p.prevEnd}
}

// isContextual reports whether the current token is the unescaped
// identifier name.
func (p *parser) isContextual(name string) bool {
	return p.token.Kind == token.Identifier && !p.token.HasEscape && p.token.Value == name
}

func (p *parser) canInsertSemicolon() bool {
	kind := p.currentKind()
	return kind == token.Semicolon || kind == token.RightBrace || kind == token.Eof || p.token.OnNewLine
}

// semicolon consumes a statement terminator, inserting one where the
// automatic semicolon insertion rules allow it.
func (p *parser) semicolon() {
	if p.currentKind() == token.Semicolon {
		p.next()
		return
	}
	if !p.canInsertSemicolon() {
		p.errorf(p.token.Span(), "missing semicolon")
	}
}

func (p *parser) expect(value token.Token) ast.Idx {
	idx := p.currentOffset()
	if p.token.Kind != value {
		p.errorUnexpectedToken()
	}
	p.next()
	return idx
}

func (p *parser) enter() {
	p.depth++
	if p.depth > p.opts.maxDepth {
		p.fail(&RecursionLimitError{Span: p.token.Span(), Limit: p.opts.maxDepth})
	}
}

func (p *parser) leave() {
	p.depth--
}
