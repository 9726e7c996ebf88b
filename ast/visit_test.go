package ast_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/t14raptor/esparse/ast"
	"github.com/t14raptor/esparse/parser"
)

func walkTrace(t *testing.T, src string) string {
	t.Helper()
	program, err := parser.ParseFile(src)
	if err != nil {
		t.Fatalf("failed to parse %q: %v", src, err)
	}
	var out []string
	ast.Inspect(program, func(n ast.Node) bool {
		if n == nil {
			out = append(out, ")")
			return false
		}
		out = append(out, fmt.Sprintf("%T", n)[len("*ast."):])
		return true
	})
	return strings.Join(out, " ")
}

func TestWalkOrder(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"assignment", "a = b",
			"Program ExpressionStatement AssignExpression Identifier ) Identifier ) ) ) )"},
		{"template interleaves", "`x${a}y`",
			"Program ExpressionStatement TemplateLiteral TemplateElement ) Identifier ) TemplateElement ) ) ) )"},
		{"shorthand pattern visits value only", "({a} = b)",
			"Program ExpressionStatement ParenthesizedExpression AssignExpression ObjectPattern PatternProperty PatternElement Identifier ) ) ) ) Identifier ) ) ) ) )"},
		{"array holes skipped", "[, a]",
			"Program ExpressionStatement ArrayLiteral Identifier ) ) ) )"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := walkTrace(t, tt.input); got != tt.expected {
				t.Errorf("walk order\n got: %s\nwant: %s", got, tt.expected)
			}
		})
	}
}

func TestInspectPrune(t *testing.T) {
	program, err := parser.ParseFile("function f() { a; b; } c;")
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	ast.Inspect(program, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.FunctionLiteral:
			return false
		case *ast.Identifier:
			names = append(names, n.Name)
		}
		return true
	})
	if got := strings.Join(names, ","); got != "c" {
		t.Errorf("identifiers = %q; want %q", got, "c")
	}
}

func TestSpan(t *testing.T) {
	s := ast.Span{Start: 2, End: 5}
	if s.String() != "2:5" {
		t.Errorf("String() = %q", s.String())
	}
	if !s.Contains(ast.Span{Start: 2, End: 5}) || !s.Contains(ast.Span{Start: 3, End: 4}) {
		t.Error("span must contain itself and inner spans")
	}
	if s.Contains(ast.Span{Start: 1, End: 4}) || s.Contains(ast.Span{Start: 3, End: 6}) {
		t.Error("span must not contain overlapping spans")
	}
	a := &ast.Identifier{Span: ast.Span{Start: 0, End: 1}}
	b := &ast.Identifier{Span: ast.Span{Start: 4, End: 7}}
	if got := ast.SpanFrom(a, b); got != (ast.Span{Start: 0, End: 7}) {
		t.Errorf("SpanFrom = %v", got)
	}
}

func TestStrictAndSimple(t *testing.T) {
	program, err := parser.ParseFile(`"use strict"; function f(a, b) {} function g(a = 1) { 'use strict' }`)
	if err == nil {
		t.Fatal("'use strict' with a non-simple parameter list must fail")
	}

	program, err = parser.ParseFile(`"use strict"; function f(a, b) {} function g({a}) {}`)
	if err != nil {
		t.Fatal(err)
	}
	if !program.Strict() {
		t.Error("program with a use strict directive must be strict")
	}
	f := program.Body[0].(*ast.FunctionDeclaration).Function
	g := program.Body[1].(*ast.FunctionDeclaration).Function
	if !f.Params.Simple() || g.Params.Simple() {
		t.Errorf("Simple() = %v, %v; want true, false", f.Params.Simple(), g.Params.Simple())
	}
	if f.Body.Strict() {
		t.Error("function body without directives must not report strict")
	}
}
