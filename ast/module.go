package ast

type (
	// ImportDeclaration is import d, * as ns, {a as b} from "m", or the bare
	// import "m".
	ImportDeclaration struct {
		Span
		Default   *Identifier
		Namespace *Identifier
		Named     []*ModuleSpecifier
		Source    *StringLiteral
	}

	// ModuleSpecifier is one entry of an import or export clause. For imports
	// Local is the binding and Remote the imported name; for exports Local is
	// the exported binding and Remote the exported name. Remote is nil when no
	// "as" rename is present.
	ModuleSpecifier struct {
		Span
		Local  *Identifier
		Remote *Identifier
	}

	// ExportNamedDeclaration is export {a, b as c} [from "m"] or an exported
	// declaration.
	ExportNamedDeclaration struct {
		Span
		Declaration Stmt
		Specifiers  []*ModuleSpecifier
		Source      *StringLiteral
	}

	// ExportAllDeclaration is export * [as ns] from "m".
	ExportAllDeclaration struct {
		Span
		Alias  *Identifier
		Source *StringLiteral
	}

	// ExportDefaultDeclaration holds a *FunctionDeclaration, a
	// *ClassDeclaration or an *ExpressionStatement.
	ExportDefaultDeclaration struct {
		Span
		Declaration Stmt
	}
)

func (*ImportDeclaration) _stmt()        {}
func (*ExportNamedDeclaration) _stmt()   {}
func (*ExportAllDeclaration) _stmt()     {}
func (*ExportDefaultDeclaration) _stmt() {}
