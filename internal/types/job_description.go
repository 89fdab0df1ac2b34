package types

// JobDescription represents a parsed job posting. Like Resume, it is an
// immutable value object produced by parsing.ParseJobDescription.
type JobDescription struct {
	Title             string   `json:"title"`
	Company           string   `json:"company"`
	RawContent        string   `json:"-"`
	RequiredSkills    []string `json:"required_skills"`
	NiceToHaveSkills  []string `json:"nice_to_have_skills"`
	YearsOfExperience int      `json:"years_of_experience"`
	Responsibilities  []string `json:"responsibilities"`
	Qualifications    []string `json:"qualifications"`

	// Keywords is the ATS keyword set, rendered as a sorted lowercase slice
	// so serialization is deterministic.
	Keywords []string `json:"keywords"`
}

// Validate reports advisory findings about the job description. The
// years-of-experience finding is only added as a secondary signal when the
// posting is already missing most other key information.
func (j *JobDescription) Validate() []string {
	var errors []string

	if j.Title == "" || j.Title == "Unknown" {
		errors = append(errors, "Missing or unclear job title")
	}

	if j.Company == "" || j.Company == "Unknown" {
		errors = append(errors, "Missing company name")
	}

	if len(j.RequiredSkills) == 0 {
		errors = append(errors, "No required skills identified")
	}

	if len(j.Responsibilities) == 0 && len(j.Qualifications) == 0 {
		errors = append(errors, "No responsibilities or qualifications found")
	}

	if j.YearsOfExperience == 0 && len(errors) > 2 {
		errors = append(errors, "Years of experience not specified")
	}

	return errors
}

// HasKeyword reports whether the given token is in the ATS keyword set.
// Keywords are stored lowercase; the lookup expects a lowercase token.
func (j *JobDescription) HasKeyword(token string) bool {
	for _, k := range j.Keywords {
		if k == token {
			return true
		}
	}
	return false
}
