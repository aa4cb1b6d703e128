package pddl

// ApplyEffects applies every effect in effs to ws in order, mutating ws in
// place. Callers that need to preserve the pre-action state pass a Clone.
// A "when" effect is evaluated against the in-progress state — effects
// listed earlier in effs are already visible to a later "when" condition.
func ApplyEffects(ws *WorldState, effs []Effect) error {
	for _, e := range effs {
		if err := applyOne(ws, e); err != nil {
			return err
		}
	}
	return nil
}

func applyOne(ws *WorldState, e Effect) error {
	p := e.Predicate

	if p.Name == "when" {
		return applyWhen(ws, p)
	}

	if e.IsNegated {
		ws.Remove(p.Name, p.ArgNames())
		return nil
	}

	switch p.Name {
	case "increase", "decrease", "assign":
		return applyArithmetic(ws, p)
	default:
		ws.Add(p)
		return nil
	}
}

// applyWhen implements (when cond consequent): cond is evaluated
// tolerantly against ws as it stands right now (mid-application), and the
// consequent is applied only if it holds.
func applyWhen(ws *WorldState, p Predicate) error {
	if len(p.Args) != 2 {
		return &EvalError{Expr: "when expects exactly 2 arguments"}
	}
	cond := p.Args[0]
	consequent := p.Args[1]

	condExpr, err := ParseSExprString(cond.Name, "<when>")
	if err != nil {
		return &EvalError{Expr: cond.Name}
	}
	condPred, err := sexprToPredicate(condExpr, "<when>")
	if err != nil {
		return err
	}
	if !ws.Evaluates(condPred) {
		return nil
	}

	consExpr, err := ParseSExprString(consequent.Name, "<when>")
	if err != nil {
		return &EvalError{Expr: consequent.Name}
	}
	eff, err := sexprToEffect(consExpr, "<when>")
	if err != nil {
		return err
	}
	return applyOne(ws, eff)
}

func sexprToEffect(e SExpr, source string) (Effect, error) {
	if Tagged(e, "not") {
		if len(e.Children) != 2 {
			return Effect{}, &BuildError{Source: source, Line: e.Line, Msg: "(not ...) expects exactly one predicate"}
		}
		p, err := sexprToPredicate(e.Children[1], source)
		if err != nil {
			return Effect{}, err
		}
		return Effect{IsNegated: true, Predicate: p}, nil
	}
	p, err := sexprToPredicate(e, source)
	if err != nil {
		return Effect{}, err
	}
	return Effect{IsNegated: false, Predicate: p}, nil
}

// applyArithmetic implements increase/decrease/assign on a fluent named by
// p.Args[0] (a serialized function-call term) using the numeric value of
// p.Args[1], which may itself be a literal or a serialized function call.
// A right-hand side that cannot be evaluated is a hard EvalError — unlike
// precondition evaluation, an effect is never allowed to silently read 0.
func applyArithmetic(ws *WorldState, p Predicate) error {
	if len(p.Args) != 2 {
		return &EvalError{Expr: "arithmetic effect expects exactly 2 arguments"}
	}
	name, args, ok := splitCall(p.Args[0].Name, "<effect>")
	if !ok {
		return &EvalError{Expr: p.Args[0].Name}
	}
	key := fluentKey(name, args)

	rhs, err := evalNumericStrict(ws, p.Args[1].Name)
	if err != nil {
		return err
	}

	switch p.Name {
	case "increase":
		ws.SetFluent(key, ws.GetFluent(key)+rhs)
	case "decrease":
		ws.SetFluent(key, ws.GetFluent(key)-rhs)
	case "assign":
		ws.SetFluent(key, rhs)
	}
	return nil
}
