// Package parsing implements the deterministic document parsing engine for
// resumes and job descriptions. Parsers are pure functions over immutable
// input text; all pattern tables are package-level constants, so concurrent
// parses need no synchronization.
package parsing

import (
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/resume-parser/internal/skills"
	"github.com/jonathan/resume-parser/internal/types"
)

var (
	nameHeading    = regexp.MustCompile(`(?m)^#\s+(.+)$`)
	nameSeparators = regexp.MustCompile(`\s*[|•]\s*`)
	emailPattern   = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Phone formats, most permissive first: (555) 123-4567, 555-123-4567,
	// 555.123.4567, 5551234567.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\d{3}[-.\s]\d{3}[-.\s]\d{4}`),
	}

	categoryLine       = regexp.MustCompile(`^[^:]+:\s*(.+)$`)
	markdownEmphasis   = regexp.MustCompile(`\*+`)
	summaryYears       = regexp.MustCompile(`(?i)(\d+)\s*(?:\+\s*)?years?\s*(?:of\s*)?(?:experience|expertise)`)
	experienceDateSpan = regexp.MustCompile(`(?i)\b(\d{4})\s*[-–]\s*(?:(\d{4})|Present|Current)\b`)
)

// ParseResume parses a resume from markdown content. It fails only on empty
// or whitespace-only input; every individual field degrades to its default
// when no pattern matches.
func ParseResume(markdown string) (*types.Resume, error) {
	if strings.TrimSpace(markdown) == "" {
		return nil, &InvalidInputError{Document: "resume"}
	}

	resume := &types.Resume{
		FullName:   extractName(markdown),
		Email:      emailPattern.FindString(markdown),
		Phone:      extractPhone(markdown),
		Sections:   parseSections(markdown),
		RawContent: markdown,
	}

	resume.Skills = extractResumeSkills(resume)
	resume.YearsOfExperience, resume.ExperienceCalculationMethod = calculateExperience(resume)

	return resume, nil
}

// extractName takes the first H1 heading as the candidate name, trimming any
// trailing contact info separated by "|" or "•".
func extractName(markdown string) string {
	m := nameHeading.FindStringSubmatch(markdown)
	if m == nil {
		return "Unknown"
	}
	name := strings.TrimSpace(m[1])
	if parts := nameSeparators.Split(name, -1); len(parts) > 0 {
		name = strings.TrimSpace(parts[0])
	}
	return name
}

func extractPhone(markdown string) string {
	for _, pattern := range phonePatterns {
		if match := pattern.FindString(markdown); match != "" {
			return match
		}
	}
	return ""
}

// extractResumeSkills pulls skills out of the Skills section. Three line
// shapes are recognized: "Category: a, b, c", bulleted lists, and bare
// comma-separated lines. Tokens run through the shared normalizer and are
// deduplicated case-insensitively preserving first-seen casing.
func extractResumeSkills(resume *types.Resume) []string {
	section := resume.GetSection("Skills")
	if section == nil {
		return []string{}
	}

	var raw []string
	for _, line := range strings.Split(section.Content, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case categoryLine.MatchString(trimmed):
			list := categoryLine.FindStringSubmatch(trimmed)[1]
			list = markdownEmphasis.ReplaceAllString(list, "")
			raw = append(raw, skills.ParseList(list)...)
		case strings.HasPrefix(trimmed, "-"):
			raw = append(raw, skills.ParseList(trimmed)...)
		case strings.Contains(line, ",") && !strings.Contains(line, ":"):
			raw = append(raw, skills.ParseList(line)...)
		}
	}

	return skills.NormalizeAll(raw)
}

// calculateExperience derives years of experience with two strategies in
// strict precedence: an explicit mention in the Summary section wins over
// date arithmetic on the Experience section. The result is never negative;
// when neither strategy yields a value both returns are zero values.
func calculateExperience(resume *types.Resume) (*int, types.ExperienceMethod) {
	if summary := resume.GetSection("Summary"); summary != nil {
		if m := summaryYears.FindStringSubmatch(summary.Content); m != nil {
			years := atoiSafe(m[1])
			return &years, types.MethodFromSummary
		}
	}

	experience := resume.GetSection("Experience")
	if experience == nil {
		return nil, ""
	}

	matches := experienceDateSpan.FindAllStringSubmatch(experience.Content, -1)
	if len(matches) == 0 {
		return nil, ""
	}

	earliest := 0
	// Present/Current resolve to the current year; an explicit end year only
	// moves the latest bound forward, never back.
	latest := time.Now().Year()

	for _, m := range matches {
		start := atoiSafe(m[1])
		if earliest == 0 || start < earliest {
			earliest = start
		}
		if m[2] != "" {
			if end := atoiSafe(m[2]); end > latest {
				latest = end
			}
		}
	}

	if earliest == 0 || latest < earliest {
		return nil, ""
	}

	years := latest - earliest
	return &years, types.MethodFromDates
}

// atoiSafe converts a digits-only capture to an int. Captures come from
// \d-anchored patterns, so failure is impossible; 0 is the safe fallback.
func atoiSafe(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
