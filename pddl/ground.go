package pddl

import "unicode"

// GroundAction is an Action with every parameter substituted by a concrete
// object name. Display follows "schema-name(obj1,obj2,...)".
type GroundAction struct {
	Name          string
	Cost          int
	Preconditions []Predicate
	Effects       []Effect

	// bindingNames holds the substituted argument order purely so String
	// can render "schema-name(obj1,obj2,...)" without re-deriving it from
	// the (already-substituted) preconditions.
	bindingNames []string
}

// String renders the ground action the way plan traces print it:
// "schema-name(obj1,obj2,...)".
func (g GroundAction) String() string {
	s := g.Name + "("
	for i, a := range g.bindingNames {
		if i > 0 {
			s += ","
		}
		s += a
	}
	return s + ")"
}

// Ground produces one GroundAction per element of the Cartesian product of
// p's objects over each action's parameter list. A zero-parameter action
// grounds to exactly one GroundAction.
func Ground(d *Domain, p *Problem) []GroundAction {
	var out []GroundAction
	for _, a := range d.Actions {
		out = append(out, groundAction(a, p.Objects)...)
	}
	return out
}

func groundAction(a Action, objects []string) []GroundAction {
	if len(a.Parameters) == 0 {
		return []GroundAction{{
			Name:          a.Name,
			Cost:          a.Cost,
			Preconditions: append([]Predicate(nil), a.Preconditions...),
			Effects:       append([]Effect(nil), a.Effects...),
			bindingNames:  nil,
		}}
	}

	var results []GroundAction
	combos := cartesianProduct(len(a.Parameters), objects)
	for _, combo := range combos {
		binding := make(map[string]string, len(a.Parameters))
		for i, param := range a.Parameters {
			binding[param.Name] = combo[i]
		}

		preconds := make([]Predicate, len(a.Preconditions))
		for i, pre := range a.Preconditions {
			preconds[i] = substitutePredicate(pre, binding)
		}
		effects := make([]Effect, len(a.Effects))
		for i, eff := range a.Effects {
			effects[i] = substituteEffect(eff, binding)
		}

		results = append(results, GroundAction{
			Name:          a.Name,
			Cost:          a.Cost,
			Preconditions: preconds,
			Effects:       effects,
			bindingNames:  combo,
		})
	}
	return results
}

func cartesianProduct(n int, objects []string) [][]string {
	if n == 0 {
		return [][]string{{}}
	}
	rest := cartesianProduct(n-1, objects)
	var out [][]string
	for _, obj := range objects {
		for _, r := range rest {
			combo := make([]string, 0, n)
			combo = append(combo, obj)
			combo = append(combo, r...)
			out = append(out, combo)
		}
	}
	return out
}

// substitute replaces every occurrence of a bound variable in expr with its
// object name, but only where the occurrence sits on a token boundary: a
// variable name is never replaced when it is a substring of a longer
// identifier. This mirrors the reference implementation's substitution
// rule and matters for expressions like "(distance ?a ?ab)" where ?a must
// not match inside ?ab.
func substitute(expr string, binding map[string]string) string {
	runes := []rune(expr)
	var out []rune
	i := 0
	for i < len(runes) {
		matched := false
		for varName, objName := range binding {
			vr := []rune(varName)
			if i+len(vr) > len(runes) {
				continue
			}
			if string(runes[i:i+len(vr)]) != varName {
				continue
			}
			if i > 0 && isIdentRune(runes[i-1]) {
				continue
			}
			end := i + len(vr)
			if end < len(runes) && isIdentRune(runes[end]) {
				continue
			}
			out = append(out, []rune(objName)...)
			i = end
			matched = true
			break
		}
		if !matched {
			out = append(out, runes[i])
			i++
		}
	}
	return string(out)
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '?'
}

func substituteTerm(t Term, binding map[string]string) Term {
	if t.IsVariable {
		if obj, ok := binding[t.Name]; ok {
			return Term{Name: obj, IsVariable: false}
		}
		return t
	}
	return Term{Name: substitute(t.Name, binding), IsVariable: false}
}

func substitutePredicate(p Predicate, binding map[string]string) Predicate {
	args := make([]Term, len(p.Args))
	for i, a := range p.Args {
		args[i] = substituteTerm(a, binding)
	}
	return Predicate{Name: substitute(p.Name, binding), Args: args, Line: p.Line}
}

func substituteEffect(e Effect, binding map[string]string) Effect {
	return Effect{IsNegated: e.IsNegated, Predicate: substitutePredicate(e.Predicate, binding)}
}

// BuildInitialState converts p.Init into the hybrid representation the
// planner operates on: a fact "(= (fn arg1 arg2 ...) N)" becomes a fluent
// entry at key "fn(arg1,arg2,...)" with value N instead of a plain fact.
// Every other :init fact passes through unchanged.
func BuildInitialState(p *Problem) *WorldState {
	ws := NewWorldState()
	for _, f := range p.Init.Facts() {
		if f.Name == "=" && len(f.Args) == 2 {
			if name, args, ok := splitCall(f.Args[0].Name, "<init>"); ok {
				if n, ok := parseInt(f.Args[1].Name); ok {
					ws.SetFluent(fluentKey(name, args), n)
					continue
				}
			}
		}
		ws.Add(f)
	}
	return ws
}
