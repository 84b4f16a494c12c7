// Package main implements the resume_optimizer CLI for scoring and optimizing resumes against job descriptions.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_optimizer",
	Short: "Resume scoring and optimization",
	Long:  "Resume Optimizer scores a resume snapshot against a job description, proposes rule-driven edits to improve the score, and compares snapshot versions.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
