// Package main implements the resume_optimizer CLI for scoring and optimizing resumes against job descriptions.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/schemas"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// loadSnapshot reads, schema-validates and parses a resume snapshot file.
func loadSnapshot(path string) (*types.ResumeSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file %s: %w", path, err)
	}

	if err := schemas.ValidateSnapshotJSON(data); err != nil {
		return nil, fmt.Errorf("resume file %s is not a valid snapshot: %w", path, err)
	}

	var snapshot types.ResumeSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON %s: %w", path, err)
	}

	if err := snapshot.Validate(); err != nil {
		return nil, fmt.Errorf("invalid resume snapshot %s: %w", path, err)
	}
	return &snapshot, nil
}

// loadJobDescription reads a job description text file.
func loadJobDescription(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read job description %s: %w", path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// writeJSON marshals v with indentation to path, or to stdout when path is
// empty.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	if path == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write output %s: %w", path, err)
	}
	return nil
}
