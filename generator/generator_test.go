package generator

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/tdewolff/parse/v2/js"
	"github.com/tdewolff/test"

	"github.com/t14raptor/esparse/ast"
	"github.com/t14raptor/esparse/parser"
)

func generateProgram(t *testing.T, src string, opts ...parser.Option) string {
	t.Helper()
	program, err := parser.ParseFile(src, opts...)
	if err != nil {
		t.Fatalf("failed to parse %q: %v", src, err)
	}
	return Generate(program)
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"compound assignment", "a <<= b", "a<<=b;"},
		{"for-in array pattern", "for ([a] in b);", "for([a]in b);"},
		{"for-of object pattern default", "for ({a = 1} of b);", "for({a=1}of b);"},
		{"for with declaration", "for (let i = 0, j; i < n; i++) {}", "for(let i=0,j;i<n;i++){}"},
		{"empty for", "for (;;) {}", "for(;;){}"},
		{"for await", "async function f() { for await (const x of y) {} }", "async function f(){for await(const x of y){}}"},
		{"unary plus after plus", "a + +b", "a+ +b;"},
		{"unary minus after minus", "a - -b", "a- -b;"},
		{"increment after plus", "a + ++b", "a+ ++b;"},
		{"decrement after minus", "a - --b", "a- --b;"},
		{"postfix before plus", "a++ + b", "a++ +b;"},
		{"html comment opener", "a < !--b", "a< !--b;"},
		{"integer member", "1 .toString()", "1 .toString();"},
		{"decimal member", "1..toString()", "1..toString();"},
		{"float member", "1.5.toFixed()", "1.5.toFixed();"},
		{"regexp after divide", "a / /re/g", "a/ /re/g;"},
		{"regexp literal", "x = /[/]+/gi.test(s)", "x=/[/]+/gi.test(s);"},
		{"generator", "function* gen() { yield* a; yield; }", "function*gen(){yield*a;yield;}"},
		{"async function", "async function f() { await x; }", "async function f(){await x;}"},
		{"array pattern", "var [a, , b = 1, ...c] = d", "var[a,,b=1,...c]=d;"},
		{"trailing hole", "[a, , ]", "[a,,];"},
		{"trailing comma dropped", "[a,]", "[a];"},
		{"holes only", "[,,]", "[,,];"},
		{"object literal", "x = { a, b: c, [d]: e, f() {}, get g() { return 1; }, set g(v) {}, ...h }",
			"x={a,b:c,[d]:e,f(){},get g(){return 1;},set g(v){},...h};"},
		{"async generator method", "x = { async *m() {} }", "x={async*m(){}};"},
		{"arrow with params", "(a, b) => a + b", "(a,b)=>a+b;"},
		{"arrow single param", "a => a", "a=>a;"},
		{"arrow parenthesized single param", "(a) => a", "a=>a;"},
		{"async arrow", "async a => a", "async a=>a;"},
		{"async arrow parens", "async (a) => a", "async a=>a;"},
		{"arrow default", "(a = 1) => a", "(a=1)=>a;"},
		{"arrow rest", "(...a) => a", "(...a)=>a;"},
		{"arrow object body", "() => ({})", "()=>({});"},
		{"arrow block body", "() => { return 1 }", "()=>{return 1;};"},
		{"class", "class A extends B { static x = 1; #y; constructor() { super(); } static { init(); } get z() { return this.#y; } }",
			"class A extends B{static x=1;#y;constructor(){super();}static{init();}get z(){return this.#y;}}"},
		{"class expression", "x = class {}", "x=class{};"},
		{"private in", "class A { #x; m(o) { return #x in o; } }", "class A{#x;m(o){return#x in o;}}"},
		{"parenthesized target", "(a) = 1", "a=1;"},
		{"parenthesized compound target", "(a.b) += 1", "a.b+=1;"},
		{"parenthesized pattern element", "[(a)] = 1", "[a]=1;"},
		{"if else", "if (a) b; else c", "if(a)b;else c;"},
		{"if else block", "if (a) {} else {}", "if(a){}else{}"},
		{"do while", "do x(); while (y)", "do x();while(y);"},
		{"while", "while (a) b()", "while(a)b();"},
		{"labelled break", "label: for (;;) { break label; }", "label:for(;;){break label;}"},
		{"continue", "for (;;) continue", "for(;;)continue;"},
		{"switch", "switch (a) { case 1: b(); default: c() }", "switch(a){case 1:b();default:c();}"},
		{"try catch finally", "try { a() } catch { b() } finally { c() }", "try{a();}catch{b();}finally{c();}"},
		{"catch binding", "try {} catch ({message}) {}", "try{}catch({message}){}"},
		{"throw", "throw new Error('x')", "throw new Error('x');"},
		{"debugger", "debugger", "debugger;"},
		{"with", "with (a) b", "with(a)b;"},
		{"template", "`a${b}c${d}e`", "`a${b}c${d}e`;"},
		{"tagged template", "tag`x`", "tag`x`;"},
		{"new without arguments", "new Foo", "new Foo;"},
		{"new with arguments", "new Foo(a, b)", "new Foo(a,b);"},
		{"new target", "function f() { return new.target }", "function f(){return new.target;}"},
		{"optional chain", "a?.b?.[c]?.(d)", "a?.b?.[c]?.(d);"},
		{"keyword operators", "typeof a === 'string'", "typeof a==='string';"},
		{"in and instanceof", "a in b, c instanceof d", "a in b,c instanceof d;"},
		{"void", "void 0", "void 0;"},
		{"delete", "delete a.b", "delete a.b;"},
		{"directive", "'use strict'; a", "'use strict';a;"},
		{"let pattern", "let {a, b: [c]} = d", "let{a,b:[c]}=d;"},
		{"object pattern rest", "let {a, ...b} = c", "let{a,...b}=c;"},
		{"sequence in parens", "x = (1, 2)", "x=(1,2);"},
		{"parens kept", "a ?? (b || c)", "a??(b||c);"},
		{"redundant parens kept", "((a))", "((a));"},
		{"conditional", "a ? b : c", "a?b:c;"},
		{"destructuring assignment", "[a, b] = [b, a]", "[a,b]=[b,a];"},
		{"object assignment pattern", "({a, b: c = 1} = d)", "({a,b:c=1}=d);"},
		{"return string", "function f() { return 'x' }", "function f(){return'x';}"},
		{"spread call", "f(...a, b)", "f(...a,b);"},
		{"exponent", "a ** -b", "a**-b;"},
		{"string keeps raw", `x = "A\n"`, `x="A\n";`},
		{"number keeps raw", "x = 0x1F + 1_000 + 1e3 + 10n", "x=0x1F+1_000+1e3+10n;"},
		{"unicode identifiers", "var ümlaut = π", "var ümlaut=π;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.String(t, generateProgram(t, tt.input), tt.expected)
		})
	}
}

func TestGenerateModule(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"import default and named", "import a, {b as c, d} from 'm'", "import a,{b as c,d}from'm';"},
		{"import namespace", "import * as ns from 'm'", "import*as ns from'm';"},
		{"import bare", "import 'm'", "import'm';"},
		{"import empty", "import {} from 'm'", "import{}from'm';"},
		{"export clause", "let c; export {c as d, c}", "let c;export{c as d,c};"},
		{"export from", "export {default} from 'm'", "export{default}from'm';"},
		{"export all", "export * from 'm'", "export*from'm';"},
		{"export all as", "export * as ns from 'n'", "export*as ns from'n';"},
		{"export default class", "export default class {}", "export default class{}"},
		{"export default function", "export default function () {}", "export default function(){}"},
		{"export default expression", "export default a + b", "export default a+b;"},
		{"export declaration", "export const a = 1", "export const a=1;"},
		{"export async function", "export async function f() {}", "export async function f(){}"},
		{"import meta", "import.meta.url", "import.meta.url;"},
		{"top-level await", "await x", "await x;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.String(t, generateProgram(t, tt.input, parser.WithSourceType(ast.SourceModule)), tt.expected)
		})
	}
}

func TestGenerateEntryPoints(t *testing.T) {
	expr, err := parser.ParseExpression("a = { b }")
	test.Error(t, err)
	test.String(t, Generate(expr), "a={b}")

	stmt, err := parser.ParseStatement("let x = 1")
	test.Error(t, err)
	test.String(t, Generate(stmt), "let x=1;")
}

// Generating, re-parsing and generating again must be a fixed point.
func TestGenerateIdempotent(t *testing.T) {
	sources := []string{
		"a + +b; a - -b; a / /x/; 1 .x",
		"for (let [a, b] of c) { if (a) continue; else break }",
		"label: while (x) { do y(); while (z) }",
		"x = { get a() { return 1 }, set a(v) {}, async *b() {}, [c]: d }",
		"class A extends (B, C) { static #x = 1; static m() { return A.#x } }",
		"var f = async (a, {b}, [c] = [], ...d) => ({a, b, c, d})",
		"`${a}${`${b}`}`",
		"try { throw a } catch ([e]) { } finally { }",
		"switch (x) { case 1: case 2: f(); break; default: }",
		"a ? b ? c : d : e ? f : g",
		"new (a.b().c)(); new new A()()",
		"x = y => z => y + z",
		"delete a[b], void 0, typeof c",
	}
	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			first := generateProgram(t, src)
			second := generateProgram(t, first)
			test.String(t, second, first)
		})
	}
}

func lexTokens(t *testing.T, src string) []string {
	t.Helper()
	l := js.NewLexer(bytes.NewBufferString(src))
	var tokens []string
	for {
		tt, data := l.Next()
		switch tt {
		case js.ErrorToken:
			test.T(t, l.Err(), io.EOF, "lexing "+src)
			return tokens
		case js.WhitespaceToken, js.LineTerminatorToken:
			continue
		}
		tokens = append(tokens, string(data))
	}
}

// The minified output must lex to the same tokens as the input, so that the
// spacing rules never merge or split a token.
func TestGenerateTokenBoundaries(t *testing.T) {
	sources := []string{
		"a + +b;",
		"a - -b;",
		"a + ++b;",
		"a - --b;",
		"a++ + b;",
		"1 .toString();",
		"typeof x in y;",
		"x instanceof y;",
		"function * g() { yield * a; }",
		"var a = b, c = d;",
		"return_ = 1;",
		"if (a) b; else c;",
		"for (x of y) z;",
	}
	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			got := lexTokens(t, generateProgram(t, src))
			test.String(t, strings.Join(got, " "), strings.Join(lexTokens(t, src), " "))
		})
	}
}

func TestOutputSpacing(t *testing.T) {
	o := &output{}
	o.word("return")
	o.word("x")
	o.op("+")
	o.op("+")
	o.number("1")
	o.op(".")
	o.word("a")
	o.op("/")
	o.op("/x/")
	test.String(t, o.String(), "return x+ +1 .a/ /x/")
}
