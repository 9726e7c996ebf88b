// Package astdoc prints a syntax tree as a data document: one record per
// node naming its variant, its span and one field per grammatical role.
//
// Absent children are kept as explicit nulls and empty lists as empty arrays,
// so two documents of the same shape always have the same keys in the same
// order and can be compared textually.
package astdoc

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"

	"github.com/t14raptor/esparse/ast"
)

// Record is the document of a single node.
type Record struct {
	Type   string
	Span   ast.Span
	Fields []Field
}

// Field is one named role of a record. Value is nil, a bool, a string, a
// float64, a *Record or a []*Record whose nil entries are holes.
type Field struct {
	Name  string
	Value any
}

// Get returns the value of the named field, or nil.
func (r *Record) Get(name string) any {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value
		}
	}
	return nil
}

func (r *Record) add(name string, value any) *Record {
	r.Fields = append(r.Fields, Field{Name: name, Value: value})
	return r
}

// Print returns the record of node and its children. A nil node yields nil.
func Print(node ast.Node) *Record {
	if isNil(node) {
		return nil
	}
	r := &Record{
		Type: reflect.TypeOf(node).Elem().Name(),
		Span: ast.Span{Start: node.Idx0(), End: node.Idx1()},
	}

	switch n := node.(type) {
	case *ast.Program:
		r.add("sourceType", n.SourceType.String()).
			add("directives", list(n.Directives)).
			add("body", list(n.Body))
	case *ast.Directive:
		r.add("raw", n.Raw).add("value", n.Value)

	// Expressions

	case *ast.Identifier:
		r.add("name", n.Name)
	case *ast.PrivateIdentifier:
		r.add("name", n.Name)
	case *ast.ThisExpression, *ast.SuperExpression, *ast.NullLiteral,
		*ast.EmptyStatement, *ast.DebuggerStatement:
	case *ast.BooleanLiteral:
		r.add("value", n.Value)
	case *ast.NumberLiteral:
		r.add("raw", n.Raw).add("value", n.Value)
	case *ast.StringLiteral:
		r.add("raw", n.Raw).add("value", n.Value)
	case *ast.RegExpLiteral:
		r.add("pattern", n.Pattern).add("flags", n.Flags)
	case *ast.TemplateElement:
		var cooked any
		if n.Valid {
			cooked = n.Cooked
		}
		r.add("raw", n.Raw).add("cooked", cooked)
	case *ast.TemplateLiteral:
		parts := make([]*Record, 0, len(n.Quasis)+len(n.Expressions))
		for i, q := range n.Quasis {
			parts = append(parts, Print(q))
			if i < len(n.Expressions) {
				parts = append(parts, Print(n.Expressions[i]))
			}
		}
		r.add("tag", node1(n.Tag)).add("parts", parts)
	case *ast.ArrayLiteral:
		r.add("elements", list(n.Elements))
	case *ast.ObjectLiteral:
		r.add("properties", list(n.Properties))
	case *ast.PropertyKeyed:
		r.add("key", node1(n.Key)).
			add("computed", n.Computed).
			add("value", node1(n.Value))
	case *ast.PropertyShort:
		r.add("name", node1(n.Name)).add("initializer", node1(n.Initializer))
	case *ast.PropertyMethod:
		r.add("kind", string(n.Kind)).
			add("key", node1(n.Key)).
			add("computed", n.Computed).
			add("function", node1(n.Function))
	case *ast.UnaryExpression:
		r.add("operator", n.Operator.Name()).add("operand", node1(n.Operand))
	case *ast.UpdateExpression:
		r.add("operator", n.Operator.Name()).
			add("prefix", !n.Postfix).
			add("operand", node1(n.Operand))
	case *ast.BinaryExpression:
		r.add("operator", n.Operator.Name()).
			add("left", node1(n.Left)).
			add("right", node1(n.Right))
	case *ast.AssignExpression:
		r.add("operator", n.Operator.Name()).
			add("left", node1(n.Left)).
			add("right", node1(n.Right))
	case *ast.ConditionalExpression:
		r.add("test", node1(n.Test)).
			add("consequent", node1(n.Consequent)).
			add("alternate", node1(n.Alternate))
	case *ast.CallExpression:
		r.add("callee", node1(n.Callee)).
			add("optional", n.Optional).
			add("arguments", list(n.Arguments))
	case *ast.NewExpression:
		var args any
		if n.Arguments != nil {
			args = list(n.Arguments)
		}
		r.add("callee", node1(n.Callee)).add("arguments", args)
	case *ast.MemberExpression:
		r.add("object", node1(n.Object)).
			add("optional", n.Optional).
			add("computed", n.Computed).
			add("property", node1(n.Property))
	case *ast.SequenceExpression:
		r.add("expressions", list(n.Sequence))
	case *ast.ParenthesizedExpression:
		r.add("expression", node1(n.Expression))
	case *ast.SpreadElement:
		r.add("argument", node1(n.Argument))
	case *ast.YieldExpression:
		r.add("delegate", n.Delegate).add("argument", node1(n.Argument))
	case *ast.AwaitExpression:
		r.add("argument", node1(n.Argument))
	case *ast.MetaProperty:
		r.add("meta", node1(n.Meta)).add("property", node1(n.Property))

	// Functions and classes

	case *ast.FunctionLiteral:
		r.add("async", n.Async).
			add("generator", n.Generator).
			add("name", node1(n.Name)).
			add("params", node1(n.Params)).
			add("body", node1(n.Body))
	case *ast.ArrowFunctionLiteral:
		r.add("async", n.Async).
			add("params", node1(n.Params)).
			add("body", node1(n.Body)).
			add("expression", node1(n.Expression))
	case *ast.ParameterList:
		r.add("list", list(n.List)).add("rest", node1(n.Rest))
	case *ast.FunctionBody:
		r.add("directives", list(n.Directives)).add("body", list(n.List))
	case *ast.ClassLiteral:
		r.add("name", node1(n.Name)).
			add("superClass", node1(n.SuperClass)).
			add("body", list(n.Body))
	case *ast.MethodDefinition:
		r.add("static", n.Static).
			add("kind", string(n.Kind)).
			add("key", node1(n.Key)).
			add("computed", n.Computed).
			add("body", node1(n.Body))
	case *ast.FieldDefinition:
		r.add("static", n.Static).
			add("key", node1(n.Key)).
			add("computed", n.Computed).
			add("initializer", node1(n.Initializer))
	case *ast.StaticBlock:
		r.add("body", list(n.Body))

	// Patterns

	case *ast.ArrayPattern:
		r.add("elements", list(n.Elements)).add("rest", node1(n.Rest))
	case *ast.ObjectPattern:
		r.add("properties", list(n.Properties)).add("rest", node1(n.Rest))
	case *ast.PatternElement:
		r.add("target", node1(n.Target)).add("initializer", node1(n.Initializer))
	case *ast.PatternProperty:
		r.add("key", node1(n.Key)).
			add("computed", n.Computed).
			add("shorthand", n.Shorthand).
			add("value", node1(n.Value))

	// Statements

	case *ast.ExpressionStatement:
		r.add("expression", node1(n.Expression))
	case *ast.BlockStatement:
		r.add("body", list(n.List))
	case *ast.VariableDeclaration:
		r.add("kind", n.Kind.String()).add("declarations", list(n.List))
	case *ast.VariableDeclarator:
		r.add("target", node1(n.Target)).add("initializer", node1(n.Initializer))
	case *ast.FunctionDeclaration:
		r.add("function", node1(n.Function))
	case *ast.ClassDeclaration:
		r.add("class", node1(n.Class))
	case *ast.IfStatement:
		r.add("test", node1(n.Test)).
			add("consequent", node1(n.Consequent)).
			add("alternate", node1(n.Alternate))
	case *ast.ForStatement:
		r.add("declaration", node1(n.Declaration)).
			add("initializer", node1(n.Initializer)).
			add("test", node1(n.Test)).
			add("update", node1(n.Update)).
			add("body", node1(n.Body))
	case *ast.ForInStatement:
		r.add("into", node1(n.Into)).
			add("source", node1(n.Source)).
			add("body", node1(n.Body))
	case *ast.ForOfStatement:
		r.add("await", n.Await).
			add("into", node1(n.Into)).
			add("source", node1(n.Source)).
			add("body", node1(n.Body))
	case *ast.WhileStatement:
		r.add("test", node1(n.Test)).add("body", node1(n.Body))
	case *ast.DoWhileStatement:
		r.add("body", node1(n.Body)).add("test", node1(n.Test))
	case *ast.ReturnStatement:
		r.add("argument", node1(n.Argument))
	case *ast.ThrowStatement:
		r.add("argument", node1(n.Argument))
	case *ast.BreakStatement:
		r.add("label", node1(n.Label))
	case *ast.ContinueStatement:
		r.add("label", node1(n.Label))
	case *ast.LabelledStatement:
		r.add("label", node1(n.Label)).add("body", node1(n.Statement))
	case *ast.TryStatement:
		r.add("block", node1(n.Body)).
			add("handler", node1(n.Catch)).
			add("finalizer", node1(n.Finally))
	case *ast.CatchClause:
		r.add("param", node1(n.Parameter)).add("body", node1(n.Body))
	case *ast.SwitchStatement:
		r.add("discriminant", node1(n.Discriminant)).add("cases", list(n.Body))
	case *ast.CaseClause:
		r.add("test", node1(n.Test)).add("consequent", list(n.Consequent))
	case *ast.WithStatement:
		r.add("object", node1(n.Object)).add("body", node1(n.Body))

	// Modules

	case *ast.ImportDeclaration:
		r.add("default", node1(n.Default)).
			add("namespace", node1(n.Namespace)).
			add("specifiers", list(n.Named)).
			add("source", node1(n.Source))
	case *ast.ModuleSpecifier:
		r.add("local", node1(n.Local)).add("remote", node1(n.Remote))
	case *ast.ExportNamedDeclaration:
		r.add("declaration", node1(n.Declaration)).
			add("specifiers", list(n.Specifiers)).
			add("source", node1(n.Source))
	case *ast.ExportAllDeclaration:
		r.add("alias", node1(n.Alias)).add("source", node1(n.Source))
	case *ast.ExportDefaultDeclaration:
		r.add("declaration", node1(n.Declaration))
	}
	return r
}

// node1 converts an optional child, mapping nil pointers held in interfaces
// to an untyped nil so that they marshal as null.
func node1(n ast.Node) any {
	if r := Print(n); r != nil {
		return r
	}
	return nil
}

func list[T ast.Node](nodes []T) []*Record {
	out := make([]*Record, len(nodes))
	for i, n := range nodes {
		out[i] = Print(n)
	}
	return out
}

func isNil(n ast.Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// MarshalJSON writes type and span first, followed by the fields in order.
func (r *Record) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteString(`{"type":`)
	if err := writeValue(&buf, r.Type); err != nil {
		return nil, err
	}
	buf.WriteString(`,"span":`)
	if err := writeValue(&buf, r.Span.String()); err != nil {
		return nil, err
	}
	for _, f := range r.Fields {
		buf.WriteByte(',')
		if err := writeValue(&buf, f.Name); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeValue(&buf, f.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeValue(buf *bytes.Buffer, v any) error {
	switch v := v.(type) {
	case nil:
		buf.WriteString("null")
		return nil
	case *Record:
		b, err := v.MarshalJSON()
		if err != nil {
			return err
		}
		buf.Write(b)
		return nil
	case []*Record:
		buf.WriteByte('[')
		for i, r := range v {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeValue(buf, r); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case float64:
		// 1e400 and friends overflow to infinity, which JSON cannot hold.
		if math.IsInf(v, 0) || math.IsNaN(v) {
			buf.WriteString("null")
			return nil
		}
	}
	// Raw spellings such as a<b stay readable without HTML escaping.
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1)
	return nil
}

// JSON returns the indented JSON document of node.
func JSON(node ast.Node) ([]byte, error) {
	b, err := Print(node).MarshalJSON()
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, b, "", "  "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
