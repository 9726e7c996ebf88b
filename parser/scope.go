package parser

import "golang.org/x/exp/slices"

type label struct {
	name      string
	iteration bool
}

type scope struct {
	outer        *scope
	allowIn      bool
	allowLet     bool
	inIteration  bool
	inSwitch     bool
	inFuncParams bool
	inFunction   bool
	inAsync      bool
	allowAwait   bool
	allowYield   bool
	allowSuper   bool
	// inStaticBlock marks the body of a class static block, where return is
	// not allowed.
	inStaticBlock bool
	// allowNewTarget is set inside non-arrow functions, methods, class field
	// initializers and static blocks.
	allowNewTarget bool
	strict         bool

	labels []label
	// labelRun counts the labels directly in front of the statement being
	// parsed.
	labelRun int
}

func (p *parser) openScope() {
	s := &scope{
		outer:   p.scope,
		allowIn: true,
	}
	if p.scope != nil {
		s.strict = p.scope.strict
		s.allowSuper = p.scope.allowSuper
		s.allowNewTarget = p.scope.allowNewTarget
	}
	p.scope = s
}

// openFunctionScope starts the scope of a function body or parameter list.
// Labels, loops and switches of the enclosing code are not visible inside.
func (p *parser) openFunctionScope(async, generator bool) {
	p.openScope()
	p.scope.inFunction = true
	p.scope.allowSuper = true
	p.scope.allowNewTarget = true
	p.scope.inAsync = async
	p.scope.allowAwait = async
	p.scope.allowYield = generator
}

func (p *parser) closeScope() {
	p.scope = p.scope.outer
}

func (s *scope) lookupLabel(name string) (label, bool) {
	if i := slices.IndexFunc(s.labels, func(l label) bool { return l.name == name }); i >= 0 {
		return s.labels[i], true
	}
	if s.outer != nil && !s.inFunction {
		return s.outer.lookupLabel(name)
	}
	return label{}, false
}

// markIterationLabels flags the labels that directly precede a loop.
func (s *scope) markIterationLabels(run int) {
	for i := len(s.labels) - run; i < len(s.labels); i++ {
		s.labels[i].iteration = true
	}
}
