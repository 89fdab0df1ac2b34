package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// sectionMappings maps lowercased heading text to its canonical section
// kind. A heading missing from the table keeps its original text as the
// section name. "qualifications" maps to Education; see DESIGN.md for why.
var sectionMappings = map[string]types.SectionKind{
	// Summary variations
	"summary":              types.SectionSummary,
	"professional summary": types.SectionSummary,
	"profile":              types.SectionSummary,
	"objective":            types.SectionSummary,
	"career objective":     types.SectionSummary,
	"executive summary":    types.SectionSummary,

	// Experience variations
	"experience":              types.SectionExperience,
	"work experience":         types.SectionExperience,
	"professional experience": types.SectionExperience,
	"employment":              types.SectionExperience,
	"work history":            types.SectionExperience,
	"employment history":      types.SectionExperience,
	"career history":          types.SectionExperience,

	// Skills variations
	"skills":            types.SectionSkills,
	"technical skills":  types.SectionSkills,
	"core competencies": types.SectionSkills,
	"competencies":      types.SectionSkills,
	"expertise":         types.SectionSkills,

	// Education variations
	"education":            types.SectionEducation,
	"education & training": types.SectionEducation,
	"academic background":  types.SectionEducation,
	"qualifications":       types.SectionEducation,
	"certifications":       types.SectionEducation,
}

var sectionHeading = regexp.MustCompile(`^##\s+(.+)$`)

// normalizeSectionName resolves a raw heading to its canonical name. On a
// table miss the original text is returned untouched, never a partial
// normalization.
func normalizeSectionName(name string) (types.SectionKind, string) {
	key := strings.ToLower(strings.TrimSpace(name))
	if kind, ok := sectionMappings[key]; ok {
		return kind, string(kind)
	}
	return types.SectionOther, name
}

// parseSections splits resume markdown into ordered sections delimited by
// level-2 headings. Lines before the first heading are the title/contact
// preamble and belong to no section. A section whose body is empty after
// trimming is dropped; the trailing section is flushed at end of input.
func parseSections(markdown string) []types.Section {
	// Non-nil so an empty resume serializes as [] rather than null.
	sections := []types.Section{}

	var currentName string
	var currentBody []string
	inSection := false

	flush := func() {
		if !inSection {
			return
		}
		content := strings.TrimSpace(strings.Join(currentBody, "\n"))
		if content == "" {
			return
		}
		kind, name := normalizeSectionName(currentName)
		sections = append(sections, types.Section{
			Kind:         kind,
			Name:         name,
			Content:      content,
			OriginalName: currentName,
		})
	}

	for _, line := range strings.Split(markdown, "\n") {
		if m := sectionHeading.FindStringSubmatch(line); m != nil {
			flush()
			currentName = strings.TrimSpace(m[1])
			currentBody = currentBody[:0]
			inSection = true
			continue
		}
		if inSection {
			currentBody = append(currentBody, line)
		}
	}
	flush()

	return sections
}
