package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/parsing"
	"github.com/jonathan/resume-parser/internal/schemas"
	"github.com/jonathan/resume-parser/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Parse a resume and a job posting together",
	Long:  "Parse a resume and a job posting concurrently, report validation findings for both, and emit both structured models.",
	RunE:  runAnalyze,
}

var (
	analyzeConfigFile string
	analyzeFlags      config.Config
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeConfigFile, "config", "c", "", "Path to JSON config file")
	analyzeCmd.Flags().StringVarP(&analyzeFlags.Resume, "resume", "r", "", "Path to resume markdown file")
	analyzeCmd.Flags().StringVarP(&analyzeFlags.Job, "job", "j", "", "Path to job posting text file")
	analyzeCmd.Flags().StringVarP(&analyzeFlags.OutDir, "out", "o", "", "Output directory for parsed artifacts")
	analyzeCmd.Flags().BoolVarP(&analyzeFlags.Verbose, "verbose", "v", false, "Print detailed parse summaries")
	analyzeCmd.Flags().BoolVar(&analyzeFlags.ValidateSchema, "validate", false, "Validate emitted JSON against the embedded schemas")
	analyzeCmd.Flags().BoolVar(&analyzeFlags.Strict, "strict", false, "Exit non-zero when validation findings exist")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := &config.Config{}
	if analyzeConfigFile != "" {
		loaded, err := config.LoadConfig(analyzeConfigFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.Merge(&analyzeFlags)

	if cfg.Resume == "" || cfg.Job == "" {
		return fmt.Errorf("both --resume and --job must be provided (via flags or config)")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Parsing is purely functional over immutable input, so both documents
	// can be processed concurrently without synchronization.
	var (
		resume     *types.Resume
		resumeMeta *ingestion.Metadata
		job        *types.JobDescription
		jobMeta    *ingestion.Metadata
	)

	var g errgroup.Group

	g.Go(func() error {
		content, meta, err := ingestion.IngestResume(cfg.Resume)
		if err != nil {
			return fmt.Errorf("failed to ingest resume: %w", err)
		}
		parsed, err := parsing.ParseResume(content)
		if err != nil {
			return fmt.Errorf("resume parsing failed: %w", err)
		}
		resume, resumeMeta = parsed, meta
		return nil
	})

	g.Go(func() error {
		cleanedText, meta, err := ingestion.IngestJobPosting(cfg.Job)
		if err != nil {
			return fmt.Errorf("failed to ingest job posting: %w", err)
		}
		parsed, err := parsing.ParseJobDescription(cleanedText)
		if err != nil {
			return fmt.Errorf("job parsing failed: %w", err)
		}
		job, jobMeta = parsed, meta
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintResume(resume)
		printer.PrintJobDescription(job)
	}

	resumeFindings := resume.Validate()
	jobFindings := job.Validate()
	printer.PrintFindings("Resume Findings", resumeFindings)
	printer.PrintFindings("Job Description Findings", jobFindings)
	if cfg.Strict && len(resumeFindings)+len(jobFindings) > 0 {
		return fmt.Errorf("validation produced %d findings", len(resumeFindings)+len(jobFindings))
	}

	resumeJSON, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal resume: %w", err)
	}
	jobJSON, err := json.MarshalIndent(job, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal job description: %w", err)
	}

	if cfg.ValidateSchema {
		if err := schemas.ValidateResumeJSON(resumeJSON); err != nil {
			return fmt.Errorf("resume schema validation failed: %w", err)
		}
		if err := schemas.ValidateJobDescriptionJSON(jobJSON); err != nil {
			return fmt.Errorf("job schema validation failed: %w", err)
		}
	}

	if cfg.OutDir != "" {
		if err := ingestion.WriteArtifacts(cfg.OutDir, "resume", resumeJSON, resumeMeta); err != nil {
			return fmt.Errorf("failed to write resume output: %w", err)
		}
		if err := ingestion.WriteArtifacts(cfg.OutDir, "job_description", jobJSON, jobMeta); err != nil {
			return fmt.Errorf("failed to write job output: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Wrote artifacts to %s\n", cfg.OutDir)
	} else {
		fmt.Fprintf(os.Stdout, "%s\n%s\n", resumeJSON, jobJSON)
	}

	return nil
}
