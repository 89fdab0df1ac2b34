// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// itemList renders up to maxItemsToShow entries with a truncation note.
func itemList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(label + ":\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
	sb.WriteString("\n")
}

// PrintResume outputs a human-readable summary of a parsed resume.
func (p *Printer) PrintResume(resume *types.Resume) {
	if resume == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:   %s\n", resume.FullName))
	if resume.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:  %s\n", resume.Email))
	}
	if resume.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:  %s\n", resume.Phone))
	}
	if resume.YearsOfExperience != nil {
		sb.WriteString(fmt.Sprintf("Years:  %d (%s)\n", *resume.YearsOfExperience, resume.ExperienceCalculationMethod))
	}
	sb.WriteString("\n")

	if len(resume.Sections) > 0 {
		sb.WriteString("Sections:\n")
		for _, section := range resume.Sections {
			if section.Kind == types.SectionOther {
				sb.WriteString(fmt.Sprintf("  • %s (unrecognized)\n", section.Name))
			} else {
				sb.WriteString(fmt.Sprintf("  • %s\n", section.Name))
			}
		}
		sb.WriteString("\n")
	}

	itemList(&sb, "Skills", resume.Skills)

	p.printBox("Parsed Resume", strings.TrimRight(sb.String(), "\n"))
}

// PrintJobDescription outputs a human-readable summary of a parsed job description.
func (p *Printer) PrintJobDescription(job *types.JobDescription) {
	if job == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:    %s\n", job.Title))
	sb.WriteString(fmt.Sprintf("Company:  %s\n", job.Company))
	if job.YearsOfExperience > 0 {
		sb.WriteString(fmt.Sprintf("Years:    %d\n", job.YearsOfExperience))
	}
	sb.WriteString("\n")

	itemList(&sb, "Required Skills", job.RequiredSkills)
	itemList(&sb, "Nice to Have", job.NiceToHaveSkills)
	itemList(&sb, "Responsibilities", job.Responsibilities)
	itemList(&sb, "Qualifications", job.Qualifications)
	sb.WriteString(fmt.Sprintf("Keywords: %d ATS tokens\n", len(job.Keywords)))

	p.printBox("Parsed Job Description", strings.TrimRight(sb.String(), "\n"))
}

// PrintFindings outputs validation findings for a document.
func (p *Printer) PrintFindings(title string, findings []string) {
	if len(findings) == 0 {
		return
	}

	var sb strings.Builder
	for _, finding := range findings {
		sb.WriteString(fmt.Sprintf("  • %s\n", finding))
	}
	p.printBox(title, strings.TrimRight(sb.String(), "\n"))
}
