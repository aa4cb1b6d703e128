package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pddlplan/pddl"
)

var planFlags = struct {
	domainPath    string
	problemPath   string
	verbose       bool
	maxIterations int
	bucket        int
}{}

func runPlan(cmd *cobra.Command, args []string) error {
	l, err := newLogger(planFlags.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = l
	defer func() { _ = logger.Sync() }()

	domain, err := pddl.LoadDomain(planFlags.domainPath)
	if err != nil {
		return err
	}
	problem, err := pddl.LoadProblem(planFlags.problemPath)
	if err != nil {
		return err
	}

	fmt.Printf("Domain: %s (%d action schemas)\n", domain.Name, len(domain.Actions))
	fmt.Printf("Problem: %s (objects: %v)\n", problem.Name, problem.Objects)

	ground := pddl.Ground(domain, problem)
	fmt.Printf("\nGround actions (%d):\n", len(ground))
	for _, a := range ground {
		fmt.Printf("  %s  cost=%d\n", a.String(), a.Cost)
	}

	initial := pddl.BuildInitialState(problem)
	printState("\nInitial state", initial)

	config := pddl.PlannerConfig{
		MaxIterations:    planFlags.maxIterations,
		FluentBucketSize: planFlags.bucket,
		Verbose:          planFlags.verbose,
		Logger:           logger,
	}

	logger.Debug("starting search",
		zap.Int("ground_actions", len(ground)),
		zap.Int("goal_conjuncts", len(problem.Goal)))

	result := pddl.Plan(initial, ground, problem.Goal, config)

	fmt.Printf("\nIterations: %d\n", result.Iterations)
	if !result.Success {
		fmt.Println("Goal reached? NO")
		return fmt.Errorf("no plan found within %d iterations", result.Iterations)
	}

	fmt.Printf("Plan found (%d steps):\n", len(result.Plan))
	state := initial.Clone()
	for i, a := range result.Plan {
		fmt.Printf("\nStep %d: %s\n", i+1, a.String())
		if err := pddl.ApplyEffects(state, a.Effects); err != nil {
			return err
		}
		printState(fmt.Sprintf("  state after step %d", i+1), state)
	}

	printState("\nFinal state", result.FinalState)
	fmt.Println("Goal reached? YES")
	return nil
}

func printState(label string, ws *pddl.WorldState) {
	fmt.Println(label + ":")

	fluents := ws.Fluents()
	keys := make([]string, 0, len(fluents))
	for k := range fluents {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %s = %d\n", k, fluents[k])
	}

	facts := ws.Facts()
	names := make([]string, len(facts))
	for i, f := range facts {
		s := f.Name
		for _, a := range f.Args {
			s += " " + a.Name
		}
		names[i] = s
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Printf("  (%s)\n", n)
	}
}
