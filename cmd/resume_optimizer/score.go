// Package main implements the resume_optimizer CLI for scoring and optimizing resumes against job descriptions.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/keywords"
	"github.com/jonathan/resume-optimizer/internal/nlp"
	"github.com/jonathan/resume-optimizer/internal/observability"
	"github.com/jonathan/resume-optimizer/internal/scoring"
	"github.com/jonathan/resume-optimizer/internal/verbs"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume snapshot against a job description",
	Long:  "Computes the weighted composite ATS score (keyword match, skill relevance, section completeness, experience impact, quantification, action verbs) plus matched/missing keyword lists.",
	RunE:  runScore,
}

var (
	scoreResumePath string
	scoreJobPath    string
	scoreOutputPath string
	scoreVerbose    bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResumePath, "resume", "r", "", "Path to resume snapshot JSON (required)")
	scoreCmd.Flags().StringVarP(&scoreJobPath, "job", "j", "", "Path to job description text file (required)")
	scoreCmd.Flags().StringVarP(&scoreOutputPath, "output", "o", "", "Path to write the score report JSON (default: stdout)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a formatted score summary to stderr")

	if err := scoreCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := scoreCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	snapshot, err := loadSnapshot(scoreResumePath)
	if err != nil {
		return err
	}
	jobDescription, err := loadJobDescription(scoreJobPath)
	if err != nil {
		return err
	}

	model, err := nlp.Load()
	if err != nil {
		return fmt.Errorf("failed to initialize NLP model: %w", err)
	}

	engine := scoring.NewEngine(keywords.NewExtractor(model), verbs.NewAnalyzer())
	report, err := engine.Score(snapshot, jobDescription)
	if err != nil {
		return err
	}

	if scoreVerbose {
		observability.NewPrinter(os.Stderr).PrintScoreReport(report)
	}
	return writeJSON(scoreOutputPath, report)
}
