// Package types provides type definitions for structured data used throughout the resume-parser system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// SectionKind identifies which canonical section a resume block belongs to.
type SectionKind string

// Canonical section kinds. SectionOther covers headings the normalization
// table does not recognize; for those, Section.Name keeps the original text.
const (
	SectionSummary    SectionKind = "Summary"
	SectionExperience SectionKind = "Experience"
	SectionSkills     SectionKind = "Skills"
	SectionEducation  SectionKind = "Education"
	SectionOther      SectionKind = "Other"
)

// ExperienceMethod records which strategy produced a resume's years of experience.
type ExperienceMethod string

// Experience calculation methods.
const (
	MethodFromSummary ExperienceMethod = "from_summary"
	MethodFromDates   ExperienceMethod = "from_dates"
)

// Section represents a block of a resume delimited by a level-2 heading.
type Section struct {
	Kind         SectionKind `json:"kind"`
	Name         string      `json:"name"`
	Content      string      `json:"content"`
	OriginalName string      `json:"original_name,omitempty"`
}

// Resume represents a parsed resume. It is a value object: constructed once
// by parsing.ParseResume and never mutated afterward.
type Resume struct {
	FullName                    string           `json:"full_name"`
	Email                       string           `json:"email,omitempty"`
	Phone                       string           `json:"phone,omitempty"`
	Sections                    []Section        `json:"sections"`
	RawContent                  string           `json:"-"`
	Skills                      []string         `json:"skills"`
	YearsOfExperience           *int             `json:"years_of_experience,omitempty"`
	ExperienceCalculationMethod ExperienceMethod `json:"experience_calculation_method,omitempty"`
}

// GetSection returns the first section whose name matches (case-insensitive),
// or nil if no such section exists. Callers pass canonical names
// ("Summary", "Experience", ...); unrecognized headings are matched verbatim.
func (r *Resume) GetSection(name string) *Section {
	for i := range r.Sections {
		if strings.EqualFold(r.Sections[i].Name, name) {
			return &r.Sections[i]
		}
	}
	return nil
}

// Validate reports advisory findings about the resume. It never fails; the
// caller decides whether the findings block further processing.
func (r *Resume) Validate() []string {
	var errors []string

	for _, name := range []string{"Summary", "Experience", "Skills"} {
		if r.GetSection(name) == nil {
			errors = append(errors, "Missing required section: "+name)
		}
	}

	if r.Email == "" {
		errors = append(errors, "Missing email address")
	}

	return errors
}
