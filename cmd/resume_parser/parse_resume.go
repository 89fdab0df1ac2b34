package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/parsing"
	"github.com/jonathan/resume-parser/internal/schemas"
	"github.com/spf13/cobra"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Parse a resume markdown file into a structured model",
	Long:  "Parse a resume markdown file into a structured model with sections, skills, and derived years of experience, and report validation findings.",
	RunE:  runParseResume,
}

var (
	resumeFile         string
	resumeOutDir       string
	resumeVerbose      bool
	resumeCheckSchema  bool
	resumeStrictVerify bool
)

func init() {
	parseResumeCmd.Flags().StringVarP(&resumeFile, "file", "f", "", "Path to resume markdown file (required)")
	parseResumeCmd.Flags().StringVarP(&resumeOutDir, "out", "o", "", "Output directory for parsed artifacts")
	parseResumeCmd.Flags().BoolVarP(&resumeVerbose, "verbose", "v", false, "Print a detailed parse summary")
	parseResumeCmd.Flags().BoolVar(&resumeCheckSchema, "validate", false, "Validate emitted JSON against the embedded schema")
	parseResumeCmd.Flags().BoolVar(&resumeStrictVerify, "strict", false, "Exit non-zero when validation findings exist")

	parseResumeCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(cmd *cobra.Command, args []string) error {
	content, meta, err := ingestion.IngestResume(resumeFile)
	if err != nil {
		return fmt.Errorf("failed to ingest resume: %w", err)
	}

	resume, err := parsing.ParseResume(content)
	if err != nil {
		return fmt.Errorf("resume parsing failed: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	if resumeVerbose {
		printer.PrintResume(resume)
	}

	findings := resume.Validate()
	printer.PrintFindings("Resume Findings", findings)
	if resumeStrictVerify && len(findings) > 0 {
		return fmt.Errorf("resume has %d validation findings", len(findings))
	}

	modelJSON, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal resume: %w", err)
	}

	if resumeCheckSchema {
		if err := schemas.ValidateResumeJSON(modelJSON); err != nil {
			return fmt.Errorf("resume schema validation failed: %w", err)
		}
	}

	if resumeOutDir != "" {
		if err := ingestion.WriteArtifacts(resumeOutDir, "resume", modelJSON, meta); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Parsed resume: %s/resume.json\n", resumeOutDir)
	} else {
		fmt.Fprintf(os.Stdout, "%s\n", modelJSON)
	}

	return nil
}
