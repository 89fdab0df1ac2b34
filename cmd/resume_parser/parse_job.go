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

var parseJobCmd = &cobra.Command{
	Use:   "parse-job",
	Short: "Parse a job posting text file into a structured model",
	Long:  "Parse a job posting text file into a structured model with required and nice-to-have skills, responsibilities, qualifications, and ATS keywords.",
	RunE:  runParseJob,
}

var (
	jobFile         string
	jobOutDir       string
	jobVerbose      bool
	jobCheckSchema  bool
	jobStrictVerify bool
)

func init() {
	parseJobCmd.Flags().StringVarP(&jobFile, "file", "f", "", "Path to job posting text file (required)")
	parseJobCmd.Flags().StringVarP(&jobOutDir, "out", "o", "", "Output directory for parsed artifacts")
	parseJobCmd.Flags().BoolVarP(&jobVerbose, "verbose", "v", false, "Print a detailed parse summary")
	parseJobCmd.Flags().BoolVar(&jobCheckSchema, "validate", false, "Validate emitted JSON against the embedded schema")
	parseJobCmd.Flags().BoolVar(&jobStrictVerify, "strict", false, "Exit non-zero when validation findings exist")

	parseJobCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(parseJobCmd)
}

func runParseJob(cmd *cobra.Command, args []string) error {
	cleanedText, meta, err := ingestion.IngestJobPosting(jobFile)
	if err != nil {
		return fmt.Errorf("failed to ingest job posting: %w", err)
	}

	job, err := parsing.ParseJobDescription(cleanedText)
	if err != nil {
		return fmt.Errorf("job parsing failed: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	if jobVerbose {
		printer.PrintJobDescription(job)
	}

	findings := job.Validate()
	printer.PrintFindings("Job Description Findings", findings)
	if jobStrictVerify && len(findings) > 0 {
		return fmt.Errorf("job description has %d validation findings", len(findings))
	}

	modelJSON, err := json.MarshalIndent(job, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal job description: %w", err)
	}

	if jobCheckSchema {
		if err := schemas.ValidateJobDescriptionJSON(modelJSON); err != nil {
			return fmt.Errorf("job schema validation failed: %w", err)
		}
	}

	if jobOutDir != "" {
		if err := ingestion.WriteArtifacts(jobOutDir, "job_description", modelJSON, meta); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Parsed job description: %s/job_description.json\n", jobOutDir)
	} else {
		fmt.Fprintf(os.Stdout, "%s\n", modelJSON)
	}

	return nil
}
