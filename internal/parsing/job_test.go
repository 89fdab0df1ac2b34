package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJob = `Senior Engineer
Acme Corp

Required Skills:
- Python
- SQL

Nice to Have:
- Docker

Responsibilities:
- Design and build data pipelines
- Maintain production services

Qualifications:
- Bachelor's degree in Computer Science.
- 3-5 years of experience

10+ years of experience is welcome too.
`

func TestParseJobDescription(t *testing.T) {
	job, err := ParseJobDescription(sampleJob)
	require.NoError(t, err)

	t.Run("title and company", func(t *testing.T) {
		assert.Equal(t, "Senior Engineer", job.Title)
		assert.Equal(t, "Acme Corp", job.Company)
	})

	t.Run("skill groups", func(t *testing.T) {
		assert.Equal(t, []string{"Python", "SQL"}, job.RequiredSkills)
		assert.Equal(t, []string{"Docker"}, job.NiceToHaveSkills)
	})

	t.Run("years reduce to minimum across mentions", func(t *testing.T) {
		assert.Equal(t, 3, job.YearsOfExperience)
	})

	t.Run("responsibilities", func(t *testing.T) {
		assert.Equal(t, []string{
			"Design and build data pipelines",
			"Maintain production services",
		}, job.Responsibilities)
	})

	t.Run("qualifications keep credential lines", func(t *testing.T) {
		assert.Contains(t, job.Qualifications, "Bachelor's degree in Computer Science.")
		assert.Contains(t, job.Qualifications, "3-5 years of experience")
	})

	t.Run("keywords sorted and lowercase", func(t *testing.T) {
		assert.Equal(t, []string{
			"build", "design", "docker", "maintain", "python", "sql",
		}, job.Keywords)
	})

	t.Run("raw content preserved", func(t *testing.T) {
		assert.Equal(t, sampleJob, job.RawContent)
	})
}

func TestParseJobDescriptionEmptyInput(t *testing.T) {
	for _, input := range []string{"", "  \n\t "} {
		_, err := ParseJobDescription(input)

		var invalidErr *InvalidInputError
		require.ErrorAs(t, err, &invalidErr)
		assert.Equal(t, "job description", invalidErr.Document)
	}
}

func TestExtractSkillGroup(t *testing.T) {
	t.Run("groups deduplicate independently", func(t *testing.T) {
		text := "Requirements:\n- Python\n\nNice to Have:\n- Python\n- Docker\n"

		required := extractSkillGroup(text, requiredHeaders, requiredInlinePatterns)
		nice := extractSkillGroup(text, niceToHaveHeaders, niceToHaveInlinePatterns)

		assert.Equal(t, []string{"Python"}, required)
		assert.Equal(t, []string{"Python", "Docker"}, nice)
	})

	t.Run("inline required phrasing", func(t *testing.T) {
		text := "Experience with Kubernetes is required.\n"

		required := extractSkillGroup(text, requiredHeaders, requiredInlinePatterns)

		assert.Equal(t, []string{"Kubernetes"}, required)
	})

	t.Run("inline plus phrasing is nice to have", func(t *testing.T) {
		text := "Terraform would be a plus.\n"

		nice := extractSkillGroup(text, niceToHaveHeaders, niceToHaveInlinePatterns)

		assert.Equal(t, []string{"Terraform"}, nice)
	})

	t.Run("header duplicates collapse", func(t *testing.T) {
		text := "Must Have:\n- go\n- Go\n- GO\n"

		required := extractSkillGroup(text, requiredHeaders, requiredInlinePatterns)

		assert.Equal(t, []string{"Go"}, required)
	})

	t.Run("no matches yields empty", func(t *testing.T) {
		assert.Empty(t, extractSkillGroup("We make widgets.", requiredHeaders, requiredInlinePatterns))
	})
}

func TestExtractResponsibilities(t *testing.T) {
	t.Run("short fragments dropped", func(t *testing.T) {
		text := "Responsibilities:\n- Ship it\n- Own the deployment pipeline end to end\n"

		got := extractResponsibilities(text)

		assert.Equal(t, []string{"Own the deployment pipeline end to end"}, got)
	})

	t.Run("responsible-for clause captured", func(t *testing.T) {
		text := "You will be responsible for maintaining the billing service. Other duties vary.\n"

		got := extractResponsibilities(text)

		assert.Equal(t, []string{"maintaining the billing service"}, got)
	})

	t.Run("none present", func(t *testing.T) {
		assert.Empty(t, extractResponsibilities("A short posting with no duties listed"))
	})
}

func TestExtractQualifications(t *testing.T) {
	t.Run("only credential lines kept", func(t *testing.T) {
		text := "Qualifications:\n- Master's degree in Statistics preferred\n- Friendly attitude\n- 2 years of relevant work\n"

		got := extractQualifications(text)

		assert.Contains(t, got, "Master's degree in Statistics preferred")
		assert.Contains(t, got, "2 years of relevant work")
		assert.NotContains(t, got, "Friendly attitude")
	})

	t.Run("inline degree mention", func(t *testing.T) {
		got := extractQualifications("Candidates need a BS in Computer Science to apply.")

		assert.Equal(t, []string{"BS in Computer Science to apply"}, got)
	})

	t.Run("none present", func(t *testing.T) {
		assert.Empty(t, extractQualifications("No formal education needed here"))
	})
}

func TestJobDescriptionDefaults(t *testing.T) {
	job, err := ParseJobDescription("We make widgets, apply today.\nJoin a tiny team, fully remote.\n")
	require.NoError(t, err)

	assert.Equal(t, "Unknown", job.Title)
	assert.Equal(t, "Unknown", job.Company)
	assert.Empty(t, job.RequiredSkills)
	assert.Zero(t, job.YearsOfExperience)
}
