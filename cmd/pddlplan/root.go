package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var rootCmd = &cobra.Command{
	Use:   "pddlplan",
	Short: "Ground a PDDL domain/problem pair and search for a plan",
	Long: `pddlplan reads a PDDL domain and problem file, grounds every action
schema against the problem's objects, and runs an A* search over the
resulting hybrid fact/fluent state space for a sequence of actions that
reaches the goal.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runPlan,
}

var logger *zap.Logger

func init() {
	rootCmd.Flags().StringVarP(&planFlags.domainPath, "domain", "d", "", "path to the domain file (required)")
	rootCmd.Flags().StringVarP(&planFlags.problemPath, "problem", "p", "", "path to the problem file (required)")
	rootCmd.Flags().BoolVarP(&planFlags.verbose, "verbose", "v", false, "enable verbose planner logging")
	rootCmd.Flags().IntVar(&planFlags.maxIterations, "max-iterations", 500000, "cap on the number of search nodes expanded")
	rootCmd.Flags().IntVar(&planFlags.bucket, "bucket", 0, "fluent bucket size for state deduplication (0 = exact)")
	_ = rootCmd.MarkFlagRequired("domain")
	_ = rootCmd.MarkFlagRequired("problem")
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

// Execute runs the root command and reports the error it returned, if any;
// it does not print it and does not itself call os.Exit, so that main stays
// the single print-and-exit point.
func Execute() error {
	return rootCmd.Execute()
}
