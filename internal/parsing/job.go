package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/skills"
	"github.com/jonathan/resume-parser/internal/types"
)

// minMeaningfulLineLen filters noise captured under responsibility and
// requirement headers; anything this short is a fragment, not a statement.
const minMeaningfulLineLen = 10

// requiredHeaders introduce blocks of required skills.
var requiredHeaders = compileHeaderPatterns([]string{
	`Required\s*(?:Skills?|Qualifications?)?:?`,
	`Requirements?:?`,
	`Must\s*(?:Have|Haves?)?:?`,
	`Essential\s*(?:Skills?|Qualifications?)?:?`,
	`Mandatory\s*(?:Skills?|Requirements?)?:?`,
	`Should\s*have:?`,
})

// niceToHaveHeaders introduce blocks of optional skills.
var niceToHaveHeaders = compileHeaderPatterns([]string{
	`Nice\s*to\s*(?:Have|Haves?)?:?`,
	`Preferred\s*(?:Skills?|Qualifications?)?:?`,
	`Bonus\s*(?:Skills?|Points?)?:?`,
	`(?:Would\s*be\s*)?(?:a\s*)?Plus:?`,
	`Desirable\s*(?:Skills?)?:?`,
	`(?:Good|Great)\s*to\s*Have:?`,
})

var responsibilityHeaders = compileHeaderPatterns([]string{
	`Responsibilities?:?`,
	`(?:Key\s+)?Duties:?`,
	`What\s+you[’']?ll\s+do:?`,
	`You\s+will:?`,
	`Role\s+(?:Responsibilities?|Overview):?`,
})

var qualificationHeaders = compileHeaderPatterns([]string{
	`Qualifications?:?`,
	`Education\s*(?:Requirements?)?:?`,
	`(?:Minimum\s+)?Requirements?:?`,
	`Required\s+Education:?`,
})

var (
	requiredInlinePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:strong|solid|extensive|expert)\s+(?:knowledge|experience|proficiency)\s+(?:in|with|of)\s+([A-Za-z0-9\s,/.-]+)`),
		regexp.MustCompile(`(?i)(?:experience|proficiency|expertise)\s+(?:with|in)\s+([A-Za-z0-9\s,/.-]+)\s+(?:required|is\s+required)`),
	}
	niceToHaveInlinePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)([A-Za-z0-9\s,/.-]+?)\s+(?:would\s+be|is)\s+(?:a\s+)?(?:plus|bonus|advantage)`),
		regexp.MustCompile(`(?i)(?:experience\s+with|knowledge\s+of)\s+([A-Za-z0-9\s,/.-]+?)\s+(?:is\s+)?(?:preferred|desired)`),
	}
	responsibilityInlinePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)(?:will\s+)?(?:be\s+)?(?:responsible\s+for|expected\s+to)\s+([^.]+)`),
		regexp.MustCompile(`(?im)(?:Day\s+to\s+day|Daily),?\s*(?:you[’']?ll\s+)?(.+?)(?:\.|$)`),
	}
	degreePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)((?:Bachelor|Master|PhD|Doctoral)[’']?s?\s+degree\s+[^.]+)`),
		regexp.MustCompile(`(?i)((?:BS|BA|MS|MA|MBA|PhD)\s+in\s+[^.]+)`),
	}

	leadingBullet = regexp.MustCompile(`^[-•*]\s*`)
)

// credentialWords identify qualification lines worth keeping.
var credentialWords = []string{
	"degree", "bachelor", "master", "phd", "education",
	"certification", "diploma", "years",
}

// compileHeaderPatterns turns header fragments into patterns that capture
// the run of bulleted lines following the header.
func compileHeaderPatterns(headers []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(headers))
	for _, h := range headers {
		patterns = append(patterns, regexp.MustCompile(`(?im)`+h+`\s*\n((?:[-•*]\s*[^\n]+\n?)+)`))
	}
	return patterns
}

// headerBlocks returns every bullet block captured by any of the given
// header patterns, in order of appearance per pattern.
func headerBlocks(text string, patterns []*regexp.Regexp) []string {
	var blocks []string
	for _, p := range patterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			blocks = append(blocks, m[1])
		}
	}
	return blocks
}

// ParseJobDescription parses a job posting from raw text. It fails only on
// empty or whitespace-only input; every field extractor degrades to a
// documented default.
func ParseJobDescription(text string) (*types.JobDescription, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &InvalidInputError{Document: "job description"}
	}

	job := &types.JobDescription{
		Title:             extractTitle(text),
		Company:           extractCompany(text),
		RawContent:        text,
		RequiredSkills:    extractSkillGroup(text, requiredHeaders, requiredInlinePatterns),
		NiceToHaveSkills:  extractSkillGroup(text, niceToHaveHeaders, niceToHaveInlinePatterns),
		YearsOfExperience: extractYearsOfExperience(text),
		Responsibilities:  extractResponsibilities(text),
		Qualifications:    extractQualifications(text),
	}

	job.Keywords = extractKeywords(job)

	return job, nil
}

// extractSkillGroup collects skills appearing under the given headers plus
// any matched by the inline patterns, then normalizes and deduplicates the
// group. Required and nice-to-have groups are deduplicated independently; a
// skill the posting lists under both legitimately appears in both.
func extractSkillGroup(text string, headers, inline []*regexp.Regexp) []string {
	var raw []string

	for _, block := range headerBlocks(text, headers) {
		raw = append(raw, skills.ParseList(block)...)
	}
	for _, pattern := range inline {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			raw = append(raw, skills.ParseList(m[1])...)
		}
	}

	return skills.NormalizeAll(raw)
}

// extractResponsibilities captures bulleted duties under responsibility
// headers and inline "responsible for X" clauses. Lines under ten
// characters are discarded as noise.
func extractResponsibilities(text string) []string {
	responsibilities := []string{}

	for _, block := range headerBlocks(text, responsibilityHeaders) {
		for _, line := range strings.Split(strings.TrimSpace(block), "\n") {
			cleaned := strings.TrimSpace(leadingBullet.ReplaceAllString(line, ""))
			if len(cleaned) > minMeaningfulLineLen {
				responsibilities = append(responsibilities, cleaned)
			}
		}
	}

	for _, pattern := range responsibilityInlinePatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			cleaned := strings.TrimSpace(m[1])
			if len(cleaned) > minMeaningfulLineLen {
				responsibilities = append(responsibilities, cleaned)
			}
		}
	}

	return responsibilities
}

// extractQualifications captures credential-bearing lines under
// qualification headers plus inline degree mentions.
func extractQualifications(text string) []string {
	qualifications := []string{}

	for _, block := range headerBlocks(text, qualificationHeaders) {
		for _, line := range strings.Split(strings.TrimSpace(block), "\n") {
			cleaned := strings.TrimSpace(leadingBullet.ReplaceAllString(line, ""))
			if cleaned == "" {
				continue
			}
			lower := strings.ToLower(cleaned)
			for _, word := range credentialWords {
				if strings.Contains(lower, word) {
					qualifications = append(qualifications, cleaned)
					break
				}
			}
		}
	}

	for _, pattern := range degreePatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			candidate := strings.TrimSpace(m[1])
			if candidate == "" {
				continue
			}
			duplicate := false
			for _, q := range qualifications {
				if q == candidate {
					duplicate = true
					break
				}
			}
			if !duplicate {
				qualifications = append(qualifications, candidate)
			}
		}
	}

	return qualifications
}
