package pddl

import "strings"

// Term is a variable (its name begins with '?') or a constant. Terms that
// originated as a list argument (e.g. the "(money ?a)" inside
// "(>= (money ?a) 10000)") carry the serialized sub-expression as their
// name instead, and are never themselves variables.
type Term struct {
	Name       string
	IsVariable bool
}

// Predicate is a name applied to an ordered list of Terms: an ordinary
// fact predicate ("on", "at"), a comparison operator ("=", "<", "<=", ">",
// ">="), an arithmetic mutator ("increase", "decrease", "assign"), the
// conditional marker ("when"), or a builder-produced negated-fact tag
// ("not:on").
type Predicate struct {
	Name string
	Args []Term
	Line int
}

// ArgNames returns the argument term names, in order.
func (p Predicate) ArgNames() []string {
	names := make([]string, len(p.Args))
	for i, a := range p.Args {
		names[i] = a.Name
	}
	return names
}

// Effect is an add or delete of a fact, or — when Predicate.Name is an
// arithmetic mutator or the conditional marker — a directive dispatched by
// the effect applier in apply.go.
type Effect struct {
	IsNegated bool
	Predicate Predicate
}

// Action is a parametric action schema: not directly executable until
// Ground (in ground.go) substitutes its parameters with concrete objects.
type Action struct {
	Name          string
	Cost          int
	Parameters    []Term
	Preconditions []Predicate
	Effects       []Effect
	Line          int
}

// Domain is a parsed PDDL domain: a name, requirement flags and predicate
// signatures (both collected verbatim and never verified), and the action
// schemas available for grounding.
type Domain struct {
	Name         string
	Requirements []string
	Predicates   []Predicate
	Actions      []Action
}

// Problem is a parsed PDDL problem: the objects available for grounding,
// the initial world state, and the goal conjunction.
type Problem struct {
	Name       string
	DomainName string
	Objects    []string
	Init       *WorldState
	Goal       []Predicate
}

func sexprToTerm(e SExpr) Term {
	if e.IsAtom {
		return Term{Name: e.Atom, IsVariable: strings.HasPrefix(e.Atom, "?")}
	}
	return Term{Name: e.String(), IsVariable: false}
}

func sexprToPredicate(e SExpr, source string) (Predicate, error) {
	if e.IsAtom {
		return Predicate{Name: e.Atom, Line: e.Line}, nil
	}
	if len(e.Children) == 0 {
		return Predicate{}, &BuildError{Source: source, Line: e.Line, Msg: "expected predicate list"}
	}
	p := Predicate{Line: e.Line}
	if e.Children[0].IsAtom {
		p.Name = e.Children[0].Atom
	} else {
		p.Name = e.Children[0].String()
	}
	for _, c := range e.Children[1:] {
		p.Args = append(p.Args, sexprToTerm(c))
	}
	return p, nil
}

// predicateList implements the shared precondition/goal parsing rule:
// (and p1 p2 ...) flattens to one Predicate per child, a (not (P ...)) at
// top level or inside an (and ...) rewrites P's name to "not:P", and
// anything else is a single Predicate.
func predicateList(e SExpr, source string) ([]Predicate, error) {
	if !e.IsAtom && len(e.Children) == 0 {
		return nil, nil
	}
	if Tagged(e, "and") {
		var result []Predicate
		for _, child := range e.Children[1:] {
			if Tagged(child, "not") {
				p, err := notPredicate(child, source)
				if err != nil {
					return nil, err
				}
				result = append(result, p)
				continue
			}
			p, err := sexprToPredicate(child, source)
			if err != nil {
				return nil, err
			}
			result = append(result, p)
		}
		return result, nil
	}
	if Tagged(e, "not") {
		p, err := notPredicate(e, source)
		if err != nil {
			return nil, err
		}
		return []Predicate{p}, nil
	}
	p, err := sexprToPredicate(e, source)
	if err != nil {
		return nil, err
	}
	return []Predicate{p}, nil
}

func notPredicate(e SExpr, source string) (Predicate, error) {
	if len(e.Children) != 2 {
		return Predicate{}, &BuildError{Source: source, Line: e.Line, Msg: "(not ...) expects exactly one predicate"}
	}
	p, err := sexprToPredicate(e.Children[1], source)
	if err != nil {
		return Predicate{}, err
	}
	p.Name = "not:" + p.Name
	return p, nil
}

func parseEffects(e SExpr, source string) ([]Effect, error) {
	if !e.IsAtom && len(e.Children) == 0 {
		return nil, nil
	}
	process := func(eff SExpr) (Effect, error) {
		if Tagged(eff, "not") {
			if len(eff.Children) != 2 {
				return Effect{}, &BuildError{Source: source, Line: eff.Line, Msg: "(not ...) expects exactly one predicate"}
			}
			p, err := sexprToPredicate(eff.Children[1], source)
			if err != nil {
				return Effect{}, err
			}
			return Effect{IsNegated: true, Predicate: p}, nil
		}
		p, err := sexprToPredicate(eff, source)
		if err != nil {
			return Effect{}, err
		}
		return Effect{IsNegated: false, Predicate: p}, nil
	}

	var result []Effect
	if Tagged(e, "and") {
		for _, child := range e.Children[1:] {
			eff, err := process(child)
			if err != nil {
				return nil, err
			}
			result = append(result, eff)
		}
		return result, nil
	}
	eff, err := process(e)
	if err != nil {
		return nil, err
	}
	return []Effect{eff}, nil
}

// parseParameters and parseObjects both skip the "- type" suffix PDDL uses
// to attach (unverified) types to variables and objects.
func parseParameters(e SExpr) []Term {
	var params []Term
	for i := 0; i < len(e.Children); i++ {
		if e.Children[i].IsAtom && e.Children[i].Atom == "-" {
			i++
			continue
		}
		params = append(params, sexprToTerm(e.Children[i]))
	}
	return params
}

func parseObjects(e SExpr) []string {
	var objects []string
	for i := 1; i < len(e.Children); i++ {
		if e.Children[i].IsAtom && e.Children[i].Atom == "-" {
			i++
			continue
		}
		objects = append(objects, e.Children[i].Atom)
	}
	return objects
}

func parseAction(e SExpr, source string) (Action, error) {
	if len(e.Children) < 2 {
		return Action{}, &BuildError{Source: source, Line: e.Line, Msg: ":action too short"}
	}
	a := Action{Cost: 1, Line: e.Line, Name: e.Children[1].Atom}

	for i := 2; i+1 < len(e.Children); i += 2 {
		key := e.Children[i].Atom
		val := e.Children[i+1]
		switch key {
		case ":parameters":
			a.Parameters = parseParameters(val)
		case ":precondition":
			preds, err := predicateList(val, source)
			if err != nil {
				return Action{}, err
			}
			a.Preconditions = preds
		case ":effect":
			effs, err := parseEffects(val, source)
			if err != nil {
				return Action{}, err
			}
			a.Effects = effs
		case ":cost":
			if val.IsAtom {
				if n, ok := parseInt(val.Atom); ok {
					a.Cost = n
				}
			}
		}
	}
	return a, nil
}

// parseInitState adds every :init child verbatim as a fact, including
// (= (fn args...) N) facts. Converting those into fluents is the
// grounder's job (BuildInitialState in ground.go), not the builder's —
// the AST stage only records what was written.
func parseInitState(e SExpr, source string) (*WorldState, error) {
	ws := NewWorldState()
	for _, child := range e.Children[1:] {
		p, err := sexprToPredicate(child, source)
		if err != nil {
			return nil, err
		}
		ws.Add(p)
	}
	return ws, nil
}

// ParseDomain interprets src as a (define (domain NAME) ...) form.
func ParseDomain(src, source string) (*Domain, error) {
	lex := NewLexer(src, source)
	root, err := ParseSExpr(lex)
	if err != nil {
		return nil, err
	}
	if !Tagged(root, "define") {
		return nil, &BuildError{Source: source, Line: root.Line, Msg: "expected (define ...)"}
	}

	d := &Domain{}
	if len(root.Children) > 1 && Tagged(root.Children[1], "domain") && len(root.Children[1].Children) > 1 {
		d.Name = root.Children[1].Children[1].Atom
	}

	for _, section := range root.Children[2:] {
		switch {
		case Tagged(section, ":requirements"):
			for _, c := range section.Children[1:] {
				d.Requirements = append(d.Requirements, c.Atom)
			}
		case Tagged(section, ":predicates"):
			for _, c := range section.Children[1:] {
				p, err := sexprToPredicate(c, source)
				if err != nil {
					return nil, err
				}
				d.Predicates = append(d.Predicates, p)
			}
		case Tagged(section, ":action"):
			a, err := parseAction(section, source)
			if err != nil {
				return nil, err
			}
			d.Actions = append(d.Actions, a)
		}
		// :types, :constants, :functions, :derived are silently ignored.
	}
	return d, nil
}

// ParseProblem interprets src as a (define (problem NAME) ...) form.
func ParseProblem(src, source string) (*Problem, error) {
	lex := NewLexer(src, source)
	root, err := ParseSExpr(lex)
	if err != nil {
		return nil, err
	}
	if !Tagged(root, "define") {
		return nil, &BuildError{Source: source, Line: root.Line, Msg: "expected (define ...)"}
	}

	p := &Problem{Init: NewWorldState()}
	if len(root.Children) > 1 && Tagged(root.Children[1], "problem") && len(root.Children[1].Children) > 1 {
		p.Name = root.Children[1].Children[1].Atom
	}

	for _, section := range root.Children[2:] {
		switch {
		case Tagged(section, ":domain"):
			if len(section.Children) > 1 {
				p.DomainName = section.Children[1].Atom
			}
		case Tagged(section, ":objects"):
			p.Objects = parseObjects(section)
		case Tagged(section, ":init"):
			ws, err := parseInitState(section, source)
			if err != nil {
				return nil, err
			}
			p.Init = ws
		case Tagged(section, ":goal"):
			if len(section.Children) > 1 {
				goals, err := predicateList(section.Children[1], source)
				if err != nil {
					return nil, err
				}
				p.Goal = goals
			}
		}
	}
	return p, nil
}
