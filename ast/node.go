// Package ast declares the types used to represent syntax trees for
// ECMAScript source.
//
// Node variants form a closed set: every variant embeds a Span and implements
// the unexported marker method of the role(s) it can play (expression,
// statement, assignment/binding target, object member, class element).
package ast

import "strconv"

// Idx is a byte offset into the source buffer.
type Idx int

// Span is the half-open byte range [Start, End) a node occupies in the source.
type Span struct {
	Start Idx
	End   Idx
}

// Idx0 returns the index of the first character belonging to the node.
func (s Span) Idx0() Idx { return s.Start }

// Idx1 returns the index of the first character immediately after the node.
func (s Span) Idx1() Idx { return s.End }

// Contains reports whether o lies within s.
func (s Span) Contains(o Span) bool {
	return s.Start <= o.Start && o.End <= s.End
}

// String formats the span as "start:end".
func (s Span) String() string {
	return strconv.Itoa(int(s.Start)) + ":" + strconv.Itoa(int(s.End))
}

// SpanFrom returns the span covering a through b.
func SpanFrom(a, b Node) Span {
	return Span{Start: a.Idx0(), End: b.Idx1()}
}

type Node interface {
	// Idx0 returns the index of the first character belonging to the node.
	Idx0() Idx
	// Idx1 returns the index of the first character immediately after the node.
	Idx1() Idx
}

// SourceType selects the goal symbol used for a program.
type SourceType int

const (
	SourceScript SourceType = iota
	SourceModule
)

func (t SourceType) String() string {
	if t == SourceModule {
		return "module"
	}
	return "script"
}

type (
	// Program is the root of a parsed source file.
	Program struct {
		Span
		SourceType SourceType
		Directives []*Directive
		Body       Statements
	}

	// Directive is a string literal statement of a directive prologue, such as
	// "use strict".
	Directive struct {
		Span
		// Raw is the literal including its quotes.
		Raw   string
		Value string
	}
)

// Strict reports whether the directives switch their scope to strict mode.
func (p *Program) Strict() bool {
	for _, d := range p.Directives {
		if d.Raw[1:len(d.Raw)-1] == "use strict" {
			return true
		}
	}
	return false
}
