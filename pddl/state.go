package pddl

import (
	"sort"
	"strconv"
	"strings"
)

// WorldState is the hybrid store the planner searches over: a set of
// ground facts and a mapping from fluent key to signed integer. Values
// are treated as immutable once handed to a caller; mutation happens
// through Add/Remove/SetFluent, and the planner always mutates a Clone.
type WorldState struct {
	facts   map[string]Predicate
	fluents map[string]int
}

// NewWorldState returns an empty world state.
func NewWorldState() *WorldState {
	return &WorldState{
		facts:   make(map[string]Predicate),
		fluents: make(map[string]int),
	}
}

func factKey(name string, args []string) string {
	return name + "," + strings.Join(args, ",")
}

// Holds reports whether a ground fact with this name and exact argument
// name vector is present.
func (ws *WorldState) Holds(name string, args []string) bool {
	_, ok := ws.facts[factKey(name, args)]
	return ok
}

// Add inserts p into the fact set. Insertion is idempotent: adding an
// already-present fact is a no-op, preserving the fact-set-uniqueness
// invariant.
func (ws *WorldState) Add(p Predicate) {
	ws.facts[factKey(p.Name, p.ArgNames())] = p
}

// Remove deletes every fact matching name and args (at most one, given the
// uniqueness invariant, but the call is safe regardless).
func (ws *WorldState) Remove(name string, args []string) {
	delete(ws.facts, factKey(name, args))
}

// Facts returns every fact currently stored, in an unspecified order.
func (ws *WorldState) Facts() []Predicate {
	out := make([]Predicate, 0, len(ws.facts))
	for _, p := range ws.facts {
		out = append(out, p)
	}
	return out
}

// GetFluent returns the value stored for key, or 0 if key was never set.
func (ws *WorldState) GetFluent(key string) int {
	return ws.fluents[key]
}

// SetFluent assigns val to key.
func (ws *WorldState) SetFluent(key string, val int) {
	ws.fluents[key] = val
}

// HasFluent reports whether key has ever been explicitly set.
func (ws *WorldState) HasFluent(key string) bool {
	_, ok := ws.fluents[key]
	return ok
}

// Fluents returns every fluent key and value currently stored, in an
// unspecified order.
func (ws *WorldState) Fluents() map[string]int {
	out := make(map[string]int, len(ws.fluents))
	for k, v := range ws.fluents {
		out[k] = v
	}
	return out
}

// Clone returns an independent copy: mutating the clone never affects ws.
func (ws *WorldState) Clone() *WorldState {
	clone := &WorldState{
		facts:   make(map[string]Predicate, len(ws.facts)),
		fluents: make(map[string]int, len(ws.fluents)),
	}
	for k, v := range ws.facts {
		clone.facts[k] = v
	}
	for k, v := range ws.fluents {
		clone.fluents[k] = v
	}
	return clone
}

// Equal reports whether two world states have identical fluent maps and
// identical fact sets, independent of insertion order.
func (ws *WorldState) Equal(other *WorldState) bool {
	if len(ws.fluents) != len(other.fluents) || len(ws.facts) != len(other.facts) {
		return false
	}
	for k, v := range ws.fluents {
		if ov, ok := other.fluents[k]; !ok || ov != v {
			return false
		}
	}
	for k := range ws.facts {
		if _, ok := other.facts[k]; !ok {
			return false
		}
	}
	return true
}

// Evaluates dispatches on p.Name: a "not:" prefix inverts evaluation of
// the stripped predicate; one of =, <, <=, >, >= with exactly two
// arguments compares their numeric evaluation; anything else is a plain
// fact lookup.
func (ws *WorldState) Evaluates(p Predicate) bool {
	if strings.HasPrefix(p.Name, "not:") {
		inner := Predicate{Name: strings.TrimPrefix(p.Name, "not:"), Args: p.Args, Line: p.Line}
		return !ws.Evaluates(inner)
	}

	switch p.Name {
	case "=", "<", "<=", ">", ">=":
		if len(p.Args) != 2 {
			return false
		}
		lhs := evalNumericTolerant(ws, p.Args[0].Name)
		rhs := evalNumericTolerant(ws, p.Args[1].Name)
		switch p.Name {
		case "=":
			return lhs == rhs
		case "<":
			return lhs < rhs
		case "<=":
			return lhs <= rhs
		case ">":
			return lhs > rhs
		case ">=":
			return lhs >= rhs
		}
	}

	return ws.Holds(p.Name, p.ArgNames())
}

// IsGoalReached reports whether every predicate in goals currently
// evaluates true.
func (ws *WorldState) IsGoalReached(goals []Predicate) bool {
	for _, g := range goals {
		if !ws.Evaluates(g) {
			return false
		}
	}
	return true
}

// StateKey produces the canonical string the planner deduplicates the
// search frontier on (see §4.6 of the specification): fluents in ascending
// key order as "key=bucketed;", then facts serialized as
// "name,arg1,arg2,..." sorted lexicographically, each followed by ";".
// bucketSize == 0 hashes fluent values exactly; bucketSize > 0 divides
// each value by bucketSize first, using Go's truncating (toward zero)
// integer division.
func (ws *WorldState) StateKey(bucketSize int) string {
	var b strings.Builder

	fluentKeys := make([]string, 0, len(ws.fluents))
	for k := range ws.fluents {
		fluentKeys = append(fluentKeys, k)
	}
	sort.Strings(fluentKeys)
	for _, k := range fluentKeys {
		v := ws.fluents[k]
		if bucketSize > 0 {
			v = v / bucketSize
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(strconv.Itoa(v))
		b.WriteByte(';')
	}

	factStrs := make([]string, 0, len(ws.facts))
	for _, p := range ws.facts {
		s := p.Name
		for _, a := range p.Args {
			s += "," + a.Name
		}
		factStrs = append(factStrs, s)
	}
	sort.Strings(factStrs)
	for _, s := range factStrs {
		b.WriteString(s)
		b.WriteByte(';')
	}

	return b.String()
}
