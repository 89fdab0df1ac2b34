package parsing

import (
	"testing"

	"github.com/jonathan/resume-parser/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSections(t *testing.T) {
	t.Run("splits on level-2 headings in order", func(t *testing.T) {
		markdown := "# Jane Doe\n\n## Summary\nSeasoned engineer.\n\n## Experience\nAcme 2016-2020\n\n## Skills\n- Python\n"

		sections := parseSections(markdown)

		require.Len(t, sections, 3)
		assert.Equal(t, "Summary", sections[0].Name)
		assert.Equal(t, "Experience", sections[1].Name)
		assert.Equal(t, "Skills", sections[2].Name)
	})

	t.Run("preamble before first heading is discarded", func(t *testing.T) {
		markdown := "# Jane Doe\njane@example.com\n\n## Summary\nEngineer.\n"

		sections := parseSections(markdown)

		require.Len(t, sections, 1)
		assert.Equal(t, "Summary", sections[0].Name)
	})

	t.Run("section body round-trips verbatim", func(t *testing.T) {
		body := "Built things.\n\n  Indented detail line.\nFinal line."
		markdown := "## Experience\n" + body + "\n\n## Skills\nPython\n"

		sections := parseSections(markdown)

		require.Len(t, sections, 2)
		assert.Equal(t, body, sections[0].Content)
	})

	t.Run("empty-bodied section is dropped", func(t *testing.T) {
		markdown := "## Summary\n\n\n## Skills\nPython\n"

		sections := parseSections(markdown)

		require.Len(t, sections, 1)
		assert.Equal(t, "Skills", sections[0].Name)
	})

	t.Run("trailing section flushed at end of input", func(t *testing.T) {
		markdown := "## Summary\nEngineer.\n\n## Education\nBS in CS"

		sections := parseSections(markdown)

		require.Len(t, sections, 2)
		assert.Equal(t, "Education", sections[1].Name)
		assert.Equal(t, "BS in CS", sections[1].Content)
	})

	t.Run("unrecognized heading keeps original name", func(t *testing.T) {
		markdown := "## Volunteer Work\nHelped out.\n"

		sections := parseSections(markdown)

		require.Len(t, sections, 1)
		assert.Equal(t, types.SectionOther, sections[0].Kind)
		assert.Equal(t, "Volunteer Work", sections[0].Name)
		assert.Equal(t, "Volunteer Work", sections[0].OriginalName)
	})
}

func TestNormalizeSectionName(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectedKind types.SectionKind
		expectedName string
	}{
		{"summary", "Summary", types.SectionSummary, "Summary"},
		{"professional summary", "Professional Summary", types.SectionSummary, "Summary"},
		{"profile", "PROFILE", types.SectionSummary, "Summary"},
		{"objective", "objective", types.SectionSummary, "Summary"},
		{"work history", "Work History", types.SectionExperience, "Experience"},
		{"employment history", "EMPLOYMENT HISTORY", types.SectionExperience, "Experience"},
		{"career history", "Career History", types.SectionExperience, "Experience"},
		{"technical skills", "Technical Skills", types.SectionSkills, "Skills"},
		{"core competencies", "Core Competencies", types.SectionSkills, "Skills"},
		{"expertise", "Expertise", types.SectionSkills, "Skills"},
		{"qualifications maps to education", "Qualifications", types.SectionEducation, "Education"},
		{"certifications", "Certifications", types.SectionEducation, "Education"},
		{"education and training", "Education & Training", types.SectionEducation, "Education"},
		{"whitespace trimmed", "  Skills  ", types.SectionSkills, "Skills"},
		{"unknown keeps original", "Hobbies", types.SectionOther, "Hobbies"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, name := normalizeSectionName(tt.input)
			assert.Equal(t, tt.expectedKind, kind)
			assert.Equal(t, tt.expectedName, name)
		})
	}
}
