// Package main implements the resume_optimizer CLI for scoring and optimizing resumes against job descriptions.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/config"
	"github.com/jonathan/resume-optimizer/internal/history"
	"github.com/jonathan/resume-optimizer/internal/nlp"
	"github.com/jonathan/resume-optimizer/internal/observability"
	"github.com/jonathan/resume-optimizer/internal/optimizer"
	"github.com/jonathan/resume-optimizer/internal/types"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Optimize a resume snapshot for a job description",
	Long:  "Runs the optimization pipeline: rewrite weak bullet verbs, inject missing job-description keywords, suggest quantification metrics, standardize formatting. Returns the optimized snapshot, the categorized change list and the score delta.",
	RunE:  runOptimize,
}

var (
	optResumePath  string
	optJobPath     string
	optOutputPath  string
	optConfigPath  string
	optVerbose     bool
	optMaxKeywords int
	optNoRewrite   bool
	optNoInject    bool
	optNoSuggest   bool
	optNoFormat    bool
)

func init() {
	optimizeCmd.Flags().StringVarP(&optResumePath, "resume", "r", "", "Path to resume snapshot JSON (required)")
	optimizeCmd.Flags().StringVarP(&optJobPath, "job", "j", "", "Path to job description text file (required)")
	optimizeCmd.Flags().StringVarP(&optOutputPath, "output", "o", "", "Path to write the optimization result JSON (default: stdout)")
	optimizeCmd.Flags().StringVarP(&optConfigPath, "config", "c", "", "Path to JSON config file")
	optimizeCmd.Flags().BoolVarP(&optVerbose, "verbose", "v", false, "Print a formatted result summary to stderr")
	optimizeCmd.Flags().IntVar(&optMaxKeywords, "max-keywords", 0, "Maximum keywords to inject (default 10)")
	optimizeCmd.Flags().BoolVar(&optNoRewrite, "no-rewrite", false, "Skip bullet rewriting")
	optimizeCmd.Flags().BoolVar(&optNoInject, "no-inject", false, "Skip keyword injection")
	optimizeCmd.Flags().BoolVar(&optNoSuggest, "no-suggest", false, "Skip quantification suggestions")
	optimizeCmd.Flags().BoolVar(&optNoFormat, "no-format", false, "Skip formatting standardization")

	if err := optimizeCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := optimizeCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(_ *cobra.Command, _ []string) error {
	opts, err := resolveOptions()
	if err != nil {
		return err
	}

	snapshot, err := loadSnapshot(optResumePath)
	if err != nil {
		return err
	}
	jobDescription, err := loadJobDescription(optJobPath)
	if err != nil {
		return err
	}

	model, err := nlp.Load()
	if err != nil {
		return fmt.Errorf("failed to initialize NLP model: %w", err)
	}

	result, err := optimizer.New(model).Optimize(snapshot, jobDescription, opts)
	if err != nil {
		return err
	}

	// Record original and optimized states as an append-only history so the
	// change list can be reproduced from the stored versions.
	store := history.NewStore()
	store.Append(snapshot, "original")
	store.Append(result.OptimizedSnapshot, "optimized")

	if optVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintOptimizationResult(result)
		if diff, ok := store.DiffLatest(); ok {
			printer.PrintDiff(diff)
		}
	}
	return writeJSON(optOutputPath, result)
}

// resolveOptions merges the optional config file under the CLI flags.
func resolveOptions() (*types.OptimizeOptions, error) {
	opts := &types.OptimizeOptions{}

	if optConfigPath != "" {
		cfg, err := config.LoadConfig(optConfigPath)
		if err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		opts.RewriteBullets = cfg.RewriteBullets
		opts.InjectKeywords = cfg.InjectKeywords
		opts.SuggestQuantifications = cfg.SuggestQuantifications
		opts.StandardizeFormatting = cfg.StandardizeFormatting
		opts.MaxKeywords = cfg.MaxKeywords
		if cfg.Verbose {
			optVerbose = true
		}
	}

	disabled := false
	if optNoRewrite {
		opts.RewriteBullets = &disabled
	}
	if optNoInject {
		opts.InjectKeywords = &disabled
	}
	if optNoSuggest {
		opts.SuggestQuantifications = &disabled
	}
	if optNoFormat {
		opts.StandardizeFormatting = &disabled
	}
	if optMaxKeywords > 0 {
		opts.MaxKeywords = optMaxKeywords
	}
	return opts, nil
}
