// Package main implements the resume_optimizer CLI for scoring and optimizing resumes against job descriptions.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/diffing"
	"github.com/jonathan/resume-optimizer/internal/observability"
)

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Compare two resume snapshots",
	Long:  "Performs a field-by-field structural comparison of two snapshot files and classifies every difference as an addition, deletion or modification.",
	RunE:  runDiff,
}

var (
	diffBasePath   string
	diffTargetPath string
	diffOutputPath string
	diffVerbose    bool
)

func init() {
	diffCmd.Flags().StringVarP(&diffBasePath, "base", "a", "", "Path to the base snapshot JSON (required)")
	diffCmd.Flags().StringVarP(&diffTargetPath, "target", "b", "", "Path to the target snapshot JSON (required)")
	diffCmd.Flags().StringVarP(&diffOutputPath, "output", "o", "", "Path to write the diff JSON (default: stdout)")
	diffCmd.Flags().BoolVarP(&diffVerbose, "verbose", "v", false, "Print a formatted diff to stderr")

	if err := diffCmd.MarkFlagRequired("base"); err != nil {
		panic(fmt.Sprintf("failed to mark base flag as required: %v", err))
	}
	if err := diffCmd.MarkFlagRequired("target"); err != nil {
		panic(fmt.Sprintf("failed to mark target flag as required: %v", err))
	}

	rootCmd.AddCommand(diffCmd)
}

func runDiff(_ *cobra.Command, _ []string) error {
	base, err := loadSnapshot(diffBasePath)
	if err != nil {
		return err
	}
	target, err := loadSnapshot(diffTargetPath)
	if err != nil {
		return err
	}

	diff := diffing.Compare(base, target)

	if diffVerbose {
		observability.NewPrinter(os.Stderr).PrintDiff(diff)
	}
	return writeJSON(diffOutputPath, diff)
}
