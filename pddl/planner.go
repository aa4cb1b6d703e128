package pddl

import (
	"container/heap"

	"go.uber.org/zap"
)

// Heuristic estimates the remaining cost to reach goals from ws. The
// default (DefaultHeuristic) counts unsatisfied goal conjuncts, which is
// admissible whenever every ground action costs at least 1.
type Heuristic func(ws *WorldState, goals []Predicate) int

// DefaultHeuristic counts how many goal predicates currently evaluate
// false.
func DefaultHeuristic(ws *WorldState, goals []Predicate) int {
	n := 0
	for _, g := range goals {
		if !ws.Evaluates(g) {
			n++
		}
	}
	return n
}

// PlannerConfig tunes the search. The zero value is usable: it runs with
// the default cap of 500000 iterations, exact state keys, the default
// heuristic, and a no-op logger.
type PlannerConfig struct {
	// MaxIterations caps the number of nodes popped from the open set
	// before giving up. Zero (or a negative value) means the default of
	// 500000.
	MaxIterations int

	// FluentBucketSize, when > 0, groups fluent values into buckets of
	// this width for the purposes of state deduplication, trading
	// optimality for a smaller search space. Zero means exact fluent
	// values, which is required for a provably optimal plan.
	FluentBucketSize int

	// Heuristic is consulted on every generated node. Defaults to
	// DefaultHeuristic when nil.
	Heuristic Heuristic

	// Verbose, when true, logs progress every 1000 iterations in addition
	// to the terminal-event logging (max-iterations, goal-reached,
	// open-set-exhausted) that always happens regardless of this flag.
	Verbose bool

	// Logger receives search progress, terminal events, and warnings about
	// skipped actions. Defaults to zap.NewNop() when nil.
	Logger *zap.Logger
}

// Result is the outcome of a planning attempt. A failed search (goal never
// reached, or MaxIterations exhausted) is reported here, not as an error.
// Plan returns no error at all: a ground action whose effects cannot be
// evaluated is logged as a warning and skipped as a successor.
type Result struct {
	Success    bool
	Plan       []GroundAction
	FinalState *WorldState
	Iterations int
}

type searchNode struct {
	state *WorldState
	plan  []GroundAction
	g     int
	f     int
}

type nodeHeap []*searchNode

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].f < h[j].f }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*searchNode)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Plan runs A* search from initial over actions, looking for a sequence
// that satisfies goals. The goal test runs before the visited-state check
// on every pop, so a goal state reached more cheaply than a previous visit
// to the same state key is still accepted. The pop-time visited check
// discards a node whose state key already has a recorded best cost <= its
// own and otherwise records its cost as the best for that key; the
// push-time check skips a successor whose key already has a recorded best
// cost <= the successor's.
func Plan(initial *WorldState, actions []GroundAction, goals []Predicate, config PlannerConfig) Result {
	h := config.Heuristic
	if h == nil {
		h = DefaultHeuristic
	}
	maxIterations := config.MaxIterations
	if maxIterations <= 0 {
		maxIterations = 500000
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	open := &nodeHeap{}
	heap.Init(open)
	start := &searchNode{state: initial, g: 0, f: h(initial, goals)}
	heap.Push(open, start)

	bestCost := map[string]int{}

	iterations := 0
	for open.Len() > 0 {
		if iterations >= maxIterations {
			logger.Debug("max iterations reached", zap.Int("iterations", iterations))
			return Result{Success: false, Iterations: iterations}
		}
		iterations++

		if config.Verbose && iterations%1000 == 0 {
			logger.Debug("search progress",
				zap.Int("iterations", iterations),
				zap.Int("open", open.Len()),
				zap.Int("visited", len(bestCost)))
		}

		node := heap.Pop(open).(*searchNode)

		if node.state.IsGoalReached(goals) {
			logger.Debug("goal reached", zap.Int("iterations", iterations), zap.Int("cost", node.g))
			return Result{Success: true, Plan: node.plan, FinalState: node.state, Iterations: iterations}
		}

		key := node.state.StateKey(config.FluentBucketSize)
		if best, ok := bestCost[key]; ok && best <= node.g {
			continue
		}
		bestCost[key] = node.g

		for _, a := range actions {
			if !node.state.IsGoalReached(a.Preconditions) {
				continue
			}
			succ := node.state.Clone()
			if err := ApplyEffects(succ, a.Effects); err != nil {
				logger.Warn("skipping action with unevaluable effect", zap.String("action", a.String()), zap.Error(err))
				continue
			}

			g := node.g + a.Cost
			succKey := succ.StateKey(config.FluentBucketSize)
			if best, ok := bestCost[succKey]; ok && best <= g {
				continue
			}

			plan := make([]GroundAction, len(node.plan)+1)
			copy(plan, node.plan)
			plan[len(node.plan)] = a

			heap.Push(open, &searchNode{
				state: succ,
				plan:  plan,
				g:     g,
				f:     g + h(succ, goals),
			})
		}
	}

	logger.Debug("open set exhausted without reaching goal", zap.Int("iterations", iterations))
	return Result{Success: false, Iterations: iterations}
}
