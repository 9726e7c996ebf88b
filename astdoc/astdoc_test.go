package astdoc

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tdewolff/test"

	"github.com/t14raptor/esparse/ast"
	"github.com/t14raptor/esparse/parser"
)

func printExpr(t *testing.T, src string) *Record {
	t.Helper()
	expr, err := parser.ParseExpression(src)
	if err != nil {
		t.Fatalf("failed to parse %q: %v", src, err)
	}
	return Print(expr)
}

func printStmt(t *testing.T, src string) *Record {
	t.Helper()
	stmt, err := parser.ParseStatement(src)
	if err != nil {
		t.Fatalf("failed to parse %q: %v", src, err)
	}
	return Print(stmt)
}

func field(t *testing.T, r *Record, name string) *Record {
	t.Helper()
	v, ok := r.Get(name).(*Record)
	if !ok {
		t.Fatalf("%s.%s is %#v, not a record", r.Type, name, r.Get(name))
	}
	return v
}

func TestCompoundAssignment(t *testing.T) {
	r := printExpr(t, "a <<= b")
	test.String(t, r.Type, "AssignExpression")
	test.String(t, r.Span.String(), "0:7")
	test.String(t, r.Get("operator").(string), "LeftShift")
	test.String(t, field(t, r, "left").Span.String(), "0:1")
	test.String(t, field(t, r, "right").Span.String(), "6:7")

	names := []string{}
	for _, f := range r.Fields {
		names = append(names, f.Name)
	}
	if diff := cmp.Diff([]string{"operator", "left", "right"}, names); diff != "" {
		t.Errorf("field order (-want +got):\n%s", diff)
	}
}

func TestOperatorNames(t *testing.T) {
	tests := []struct {
		src, op string
	}{
		{"a = b", "Assign"},
		{"a >>>= b", "UnsignedRightShift"},
		{"a ??= b", "Nullish"},
		{"a > b", "MoreThan"},
		{"a ** b", "Exponent"},
		{"!a", "Not"},
		{"a++", "Increase"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			r := printExpr(t, tt.src)
			op, _ := r.Get("operator").(string)
			test.String(t, op, tt.op)
		})
	}
}

func TestJSON(t *testing.T) {
	expr, err := parser.ParseExpression("a")
	test.Error(t, err)
	doc, err := JSON(expr)
	test.Error(t, err)
	test.String(t, string(doc), "{\n  \"type\": \"Identifier\",\n  \"span\": \"0:1\",\n  \"name\": \"a\"\n}")
}

func TestAbsentFields(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"if without else", "if (a) b;", `{"type":"IfStatement","span":"0:9","test":{"type":"Identifier","span":"4:5","name":"a"},"consequent":{"type":"ExpressionStatement","span":"7:9","expression":{"type":"Identifier","span":"7:8","name":"b"}},"alternate":null}`},
		{"bare return in function", "function f() { return }", ""},
		{"empty arguments", "f()", `{"type":"ExpressionStatement","span":"0:3","expression":{"type":"CallExpression","span":"0:3","callee":{"type":"Identifier","span":"0:1","name":"f"},"optional":false,"arguments":[]}}`},
		{"new without arguments", "new F", `{"type":"ExpressionStatement","span":"0:5","expression":{"type":"NewExpression","span":"0:5","callee":{"type":"Identifier","span":"4:5","name":"F"},"arguments":null}}`},
		{"array hole", "[a, , b]", `{"type":"ExpressionStatement","span":"0:8","expression":{"type":"ArrayLiteral","span":"0:8","elements":[{"type":"Identifier","span":"1:2","name":"a"},null,{"type":"Identifier","span":"6:7","name":"b"}]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := printStmt(t, tt.src)
			b, err := r.MarshalJSON()
			test.Error(t, err)
			if tt.want != "" {
				test.String(t, string(b), tt.want)
			}
			test.Error(t, Validate(b))
		})
	}
}

func TestReturnArgumentNull(t *testing.T) {
	r := printStmt(t, "function f() { return }")
	fn := field(t, r, "function")
	body := field(t, fn, "body")
	stmts := body.Get("body").([]*Record)
	test.T(t, len(stmts), 1)
	test.String(t, stmts[0].Type, "ReturnStatement")
	if v := stmts[0].Get("argument"); v != nil {
		t.Fatalf("argument = %#v, want nil", v)
	}
	test.T(t, len(fn.Get("params").(*Record).Get("list").([]*Record)), 0)
}

func TestLiteralValues(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1e400", `{"type":"NumberLiteral","span":"0:5","raw":"1e400","value":null}`},
		{"0x10", `{"type":"NumberLiteral","span":"0:4","raw":"0x10","value":16}`},
		{`"a<b"`, `{"type":"StringLiteral","span":"0:5","raw":"\"a<b\"","value":"a<b"}`},
		{"/a/g", `{"type":"RegExpLiteral","span":"0:4","pattern":"a","flags":"g"}`},
		{"null", `{"type":"NullLiteral","span":"0:4"}`},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			b, err := printExpr(t, tt.src).MarshalJSON()
			test.Error(t, err)
			test.String(t, string(b), tt.want)
		})
	}
}

func TestTaggedTemplateInvalidEscape(t *testing.T) {
	r := printExpr(t, "tag`\\unicode`")
	parts := r.Get("parts").([]*Record)
	test.T(t, len(parts), 1)
	test.String(t, parts[0].Get("raw").(string), `\unicode`)
	if v := parts[0].Get("cooked"); v != nil {
		t.Fatalf("cooked = %#v, want nil", v)
	}
}

func TestTemplatePartsInSourceOrder(t *testing.T) {
	r := printExpr(t, "`a${b}c${d}e`")
	var got []string
	var last ast.Idx
	for _, part := range r.Get("parts").([]*Record) {
		got = append(got, part.Type)
		if part.Span.Start < last {
			t.Errorf("%s at %v starts before the previous part ends", part.Type, part.Span)
		}
		last = part.Span.End
	}
	want := []string{"TemplateElement", "Identifier", "TemplateElement", "Identifier", "TemplateElement"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parts (-want +got):\n%s", diff)
	}
}

func TestPatternDocuments(t *testing.T) {
	r := printExpr(t, "[a, , ...b] = c")
	left := field(t, r, "left")
	test.String(t, left.Type, "ArrayPattern")
	elems := left.Get("elements").([]*Record)
	test.T(t, len(elems), 2)
	test.T(t, elems[1] == nil, true)
	test.String(t, field(t, left, "rest").Type, "Identifier")
}

var documentCorpus = []string{
	"'use strict'; var a = 1, [b, c = 2] = d, {e, f: [g], ...h} = i;",
	"function* f(a, {b} = c, ...d) { yield* a; }",
	"async function g() { for await (const x of y) { await x; } }",
	"class A extends B { static #x = 1; get y() { return this.#x } static { this.z?.(1) } }",
	"label: for (let i = 0; i < 10; i++) { if (i) continue label; else break; }",
	"switch (a) { case 1: b(); default: }",
	"try { throw new Error } catch ({message}) {} finally { debugger }",
	"x = a ? `t${b}u` : (c, d) => ({...c, [d]: d});",
	"do ; while (0) with (o) p",
	"for (k in o); for ([a, b] of c);",
}

// Every node reachable by ast.Walk has a record named after its Go type, and
// every document conforms to the schema.
func TestDocumentShape(t *testing.T) {
	for _, src := range documentCorpus {
		t.Run(src, func(t *testing.T) {
			program, err := parser.ParseFile(src)
			test.Error(t, err)

			ast.Inspect(program, func(n ast.Node) bool {
				if n == nil {
					return false
				}
				r := Print(n)
				test.String(t, r.Type, reflect.TypeOf(n).Elem().Name())
				test.T(t, r.Span, ast.Span{Start: n.Idx0(), End: n.Idx1()})
				return true
			})

			doc, err := JSON(program)
			test.Error(t, err)
			test.Error(t, Validate(doc))
			test.T(t, json.Valid(doc), true)
		})
	}
}

func TestModuleDocument(t *testing.T) {
	program, err := parser.ParseFile(`import d, {a as b} from "m"; export * as ns from "n"; export default class {}`,
		parser.WithSourceType(ast.SourceModule))
	test.Error(t, err)
	r := Print(program)
	test.String(t, r.Get("sourceType").(string), "module")
	body := r.Get("body").([]*Record)
	test.T(t, len(body), 3)

	imp := body[0]
	test.String(t, field(t, imp, "default").Get("name").(string), "d")
	test.T(t, imp.Get("namespace"), nil)
	spec := imp.Get("specifiers").([]*Record)[0]
	test.String(t, field(t, spec, "local").Get("name").(string), "b")
	test.String(t, field(t, spec, "remote").Get("name").(string), "a")

	test.String(t, field(t, body[1], "alias").Get("name").(string), "ns")
	test.String(t, field(t, body[2], "declaration").Type, "ClassDeclaration")
}

func TestValidateRejects(t *testing.T) {
	tests := []string{
		`{"span":"0:1"}`,
		`{"type":"Identifier","span":"a:b"}`,
		`{"type":"Identifier","span":"0:1","name":{"foo":1}}`,
		`[]`,
	}
	for _, doc := range tests {
		t.Run(doc, func(t *testing.T) {
			if err := Validate([]byte(doc)); err == nil {
				t.Fatalf("Validate(%s) succeeded", doc)
			}
		})
	}
}

func TestPrintNil(t *testing.T) {
	var id *ast.Identifier
	test.T(t, Print(id) == nil, true)
	test.T(t, Print(nil) == nil, true)
	b, err := Print(nil).MarshalJSON()
	test.Error(t, err)
	test.String(t, string(b), "null")
}
