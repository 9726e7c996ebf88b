package parser

import (
	"github.com/t14raptor/esparse/ast"
	"github.com/t14raptor/esparse/token"
)

// nodeAllocator holds typed arenas for the nodes a parse produces most
// often. Everything else is allocated with &ast.X{}.
type nodeAllocator struct {
	ident    miniArena[ast.Identifier]
	strLit   miniArena[ast.StringLiteral]
	numLit   miniArena[ast.NumberLiteral]
	binExpr  miniArena[ast.BinaryExpression]
	member   miniArena[ast.MemberExpression]
	call     miniArena[ast.CallExpression]
	exprStmt miniArena[ast.ExpressionStatement]
}

func newNodeAllocator(srcLen int) nodeAllocator {
	// Roughly one identifier per eight bytes of typical source.
	idents := srcLen / 8
	return nodeAllocator{
		ident:    newArena[ast.Identifier](idents),
		strLit:   newArena[ast.StringLiteral](idents / 8),
		numLit:   newArena[ast.NumberLiteral](idents / 8),
		binExpr:  newArena[ast.BinaryExpression](idents / 4),
		member:   newArena[ast.MemberExpression](idents / 4),
		call:     newArena[ast.CallExpression](idents / 8),
		exprStmt: newArena[ast.ExpressionStatement](idents / 8),
	}
}

func (a *nodeAllocator) Identifier(span ast.Span, name string) *ast.Identifier {
	n := a.ident.make()
	n.Span, n.Name = span, name
	return n
}

func (a *nodeAllocator) StringLiteral(span ast.Span, raw, value string) *ast.StringLiteral {
	n := a.strLit.make()
	n.Span, n.Raw, n.Value = span, raw, value
	return n
}

func (a *nodeAllocator) NumberLiteral(span ast.Span, raw string, value float64) *ast.NumberLiteral {
	n := a.numLit.make()
	n.Span, n.Raw, n.Value = span, raw, value
	return n
}

func (a *nodeAllocator) BinaryExpression(span ast.Span, op token.Token, left, right ast.Expr) *ast.BinaryExpression {
	n := a.binExpr.make()
	n.Span, n.Operator, n.Left, n.Right = span, op, left, right
	return n
}

func (a *nodeAllocator) MemberExpression(span ast.Span, object, property ast.Expr, computed, optional bool) *ast.MemberExpression {
	n := a.member.make()
	n.Span, n.Object, n.Property = span, object, property
	n.Computed, n.Optional = computed, optional
	return n
}

func (a *nodeAllocator) CallExpression(span ast.Span, callee ast.Expr, args ast.Expressions, optional bool) *ast.CallExpression {
	n := a.call.make()
	n.Span, n.Callee, n.Arguments, n.Optional = span, callee, args, optional
	return n
}

func (a *nodeAllocator) ExpressionStatement(span ast.Span, expr ast.Expr) *ast.ExpressionStatement {
	n := a.exprStmt.make()
	n.Span, n.Expression = span, expr
	return n
}
