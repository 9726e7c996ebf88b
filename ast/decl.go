package ast

import "github.com/t14raptor/esparse/token"

type (
	FunctionDeclaration struct {
		Span
		Function *FunctionLiteral
	}

	ClassDeclaration struct {
		Span
		Class *ClassLiteral
	}

	// VariableDeclaration is a var, let or const declaration; Kind holds the
	// keyword token.
	VariableDeclaration struct {
		Span
		Kind token.Token
		List VariableDeclarators
	}

	VariableDeclarators []*VariableDeclarator

	VariableDeclarator struct {
		Span
		Target      Target
		Initializer Expr
	}
)

func (*FunctionDeclaration) _stmt() {}
func (*ClassDeclaration) _stmt()    {}
func (*VariableDeclaration) _stmt() {}
