package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func completeJob() *JobDescription {
	return &JobDescription{
		Title:             "Senior Engineer",
		Company:           "Acme Corp",
		RequiredSkills:    []string{"Python", "SQL"},
		NiceToHaveSkills:  []string{"Docker"},
		YearsOfExperience: 3,
		Responsibilities:  []string{"Build data pipelines"},
		Keywords:          []string{"python", "sql"},
	}
}

func TestJobDescriptionValidate(t *testing.T) {
	t.Run("complete posting has no findings", func(t *testing.T) {
		assert.Empty(t, completeJob().Validate())
	})

	t.Run("unknown sentinel counts as missing", func(t *testing.T) {
		job := completeJob()
		job.Title = "Unknown"
		job.Company = "Unknown"

		assert.Equal(t, []string{
			"Missing or unclear job title",
			"Missing company name",
		}, job.Validate())
	})

	t.Run("no required skills reported", func(t *testing.T) {
		job := completeJob()
		job.RequiredSkills = nil

		assert.Equal(t, []string{"No required skills identified"}, job.Validate())
	})

	t.Run("qualifications satisfy the duties check", func(t *testing.T) {
		job := completeJob()
		job.Responsibilities = nil
		job.Qualifications = []string{"Bachelor's degree"}

		assert.Empty(t, job.Validate())
	})

	t.Run("years finding only on mostly-empty postings", func(t *testing.T) {
		sparse := &JobDescription{}

		findings := sparse.Validate()

		assert.Contains(t, findings, "Years of experience not specified")
		assert.Len(t, findings, 5)
	})

	t.Run("years finding suppressed when posting is otherwise sound", func(t *testing.T) {
		job := completeJob()
		job.YearsOfExperience = 0

		assert.Empty(t, job.Validate())
	})
}

func TestHasKeyword(t *testing.T) {
	job := completeJob()

	assert.True(t, job.HasKeyword("python"))
	assert.False(t, job.HasKeyword("Python"))
	assert.False(t, job.HasKeyword("rust"))
}
