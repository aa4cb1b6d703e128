package pddl

import "strconv"

// parseInt recognizes the integer-literal grammar used throughout this
// package: an optional leading '-' followed by one or more digits. It is
// stricter than strconv.Atoi in that it rejects a leading '+', and it is
// the single place callers ask "is this string a number at all", matching
// the is_number helper the reference implementation duplicates at each
// numeric call site.
func parseInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	start := 0
	if s[0] == '-' {
		start = 1
	}
	if start >= len(s) {
		return 0, false
	}
	for i := start; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// fluentKey builds the canonical "name(arg1,arg2,...)" shape every fluent
// lookup and assignment goes through.
func fluentKey(name string, args []string) string {
	key := name + "("
	for i, a := range args {
		if i > 0 {
			key += ","
		}
		key += a
	}
	key += ")"
	return key
}

// splitCall re-parses a serialized function-call expression such as
// "(money alice)" into its function name and argument atoms. It returns
// ok=false for anything that isn't a non-empty list.
func splitCall(expr, source string) (name string, args []string, ok bool) {
	e, err := ParseSExprString(expr, source)
	if err != nil || e.IsAtom || len(e.Children) == 0 {
		return "", nil, false
	}
	if e.Children[0].IsAtom {
		name = e.Children[0].Atom
	} else {
		name = e.Children[0].String()
	}
	for _, c := range e.Children[1:] {
		args = append(args, c.Atom)
	}
	return name, args, true
}

// evalNumericTolerant implements the precondition-evaluation numeric
// grammar: an integer literal parses directly, a parenthesized expression
// resolves to a fluent lookup (0 if unset or malformed), and anything else
// is tolerantly read as 0.
func evalNumericTolerant(ws *WorldState, expr string) int {
	if n, ok := parseInt(expr); ok {
		return n
	}
	if expr == "" || expr[0] != '(' {
		return 0
	}
	name, args, ok := splitCall(expr, "<eval>")
	if !ok {
		return 0
	}
	return ws.GetFluent(fluentKey(name, args))
}

// evalNumericStrict is the effect-application counterpart of
// evalNumericTolerant: a malformed or unrecognized expression is a hard
// EvalError rather than a tolerated zero, since an effect that cannot
// compute its own right-hand side is a bug in the domain, not a missing
// fluent.
func evalNumericStrict(ws *WorldState, expr string) (int, error) {
	if n, ok := parseInt(expr); ok {
		return n, nil
	}
	if expr == "" || expr[0] != '(' {
		return 0, &EvalError{Expr: expr}
	}
	name, args, ok := splitCall(expr, "<effect>")
	if !ok {
		return 0, &EvalError{Expr: expr}
	}
	return ws.GetFluent(fluentKey(name, args)), nil
}
