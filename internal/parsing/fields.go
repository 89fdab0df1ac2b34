package parsing

import (
	"regexp"
	"strings"
)

// titleScanLimit bounds how deep into the posting the title cascade looks.
const titleScanLimit = 10

// maxCompanyLineLen / maxTitleLineLen bound the fallback "short line" rules.
const (
	maxTitleLineLen   = 100
	maxCompanyLineLen = 50
)

var (
	titleLabelLine = regexp.MustCompile(`(?i)^(?:Job Title|Position|Role|Title):\s*(.+)$`)
	atForSplit     = regexp.MustCompile(`\s+(?:at|for)\s+`)
	hiringPhrase   = regexp.MustCompile(`(?i)(?:We're|We are)\s+(?:hiring|looking for|seeking)\s+(?:a|an)?\s*([^!.]+?)(?:\s+to\s+|\s+at\s+|!|\.|$)`)
	joinClause     = regexp.MustCompile(`(?i)\s+to\s+join.*$`)
	positionSuffix = regexp.MustCompile(`(?i)^(.+?)\s+(?:position|role|opportunity)\s*(?:available|open)?`)
	anyDigit       = regexp.MustCompile(`\d`)
)

// titleExcludedWords disqualify a line from the short-line fallback rule.
var titleExcludedWords = []string{"about", "location", "description"}

// titleHiringPhrases mark lines already covered by the hiring-phrase rule.
var titleHiringPhrases = []string{"we're hiring", "we are hiring", "looking for", "seeking"}

// titleRule is one step of the title cascade, evaluated per line in
// priority order. The first rule to return ok wins.
type titleRule struct {
	name  string
	apply func(line string) (string, bool)
}

var titleRules = []titleRule{
	{
		name: "label",
		apply: func(line string) (string, bool) {
			if m := titleLabelLine.FindStringSubmatch(line); m != nil {
				return strings.TrimSpace(m[1]), true
			}
			return "", false
		},
	},
	{
		name: "at-for",
		apply: func(line string) (string, bool) {
			if !strings.Contains(line, " at ") && !strings.Contains(line, " for ") {
				return "", false
			}
			title := strings.TrimSpace(atForSplit.Split(line, -1)[0])
			if title != "" && !anyDigit.MatchString(title) {
				return title, true
			}
			return "", false
		},
	},
	{
		name: "hiring-phrase",
		apply: func(line string) (string, bool) {
			m := hiringPhrase.FindStringSubmatch(line)
			if m == nil {
				return "", false
			}
			title := strings.TrimSpace(m[1])
			title = joinClause.ReplaceAllString(title, "")
			if title != "" {
				return title, true
			}
			return "", false
		},
	},
	{
		name: "short-line",
		apply: func(line string) (string, bool) {
			if len(line) >= maxTitleLineLen || strings.Contains(line, ":") {
				return "", false
			}
			lower := strings.ToLower(line)
			for _, word := range titleExcludedWords {
				if strings.Contains(lower, word) {
					return "", false
				}
			}
			for _, phrase := range titleHiringPhrases {
				if strings.Contains(lower, phrase) {
					return "", false
				}
			}
			if m := positionSuffix.FindStringSubmatch(line); m != nil {
				return strings.TrimSpace(m[1]), true
			}
			if !strings.HasSuffix(line, ".") && !strings.HasSuffix(line, "!") {
				return line, true
			}
			return "", false
		},
	},
}

// extractTitle runs the title cascade over the first few lines of the
// posting. Rules are tried in priority order on each line; the first match
// anywhere wins. Default "Unknown".
func extractTitle(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) > titleScanLimit {
		lines = lines[:titleScanLimit]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, rule := range titleRules {
			if title, ok := rule.apply(line); ok {
				return title
			}
		}
	}
	return "Unknown"
}

var (
	companyLabelPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)^Company:\s*(.+?)$`),
		regexp.MustCompile(`(?im)^Employer:\s*(.+?)$`),
		regexp.MustCompile(`(?im)^Organization:\s*(.+?)$`),
	}
	// Capitalized-phrase patterns; $ is line-relative so a company name at
	// the end of a line is captured without swallowing following lines.
	// The connective words match case-insensitively but the captured phrase
	// must start with a capital letter; lowercase narrative ("at scale")
	// never reads as a company name.
	companyPhrasePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?m)\b(?i:at)\s+([A-Z][A-Za-z0-9\s&.-]+?)(?:\s*[!,.]|\s*$)`),
		regexp.MustCompile(`(?m)\b(?i:for)\s+([A-Z][A-Za-z0-9\s&.-]+?)(?:\s*[!,.]|\s*$)`),
		regexp.MustCompile(`(?m)\b(?i:join|joining)\s+(?i:our\s+)?(?i:team\s+at\s+)?([A-Z][A-Za-z0-9\s&.-]+?)(?:[!,.]|$)`),
	}
	trailingDash   = regexp.MustCompile(`\s*[-–]\s*$`)
	trailingClause = regexp.MustCompile(`\s+(?:to|who|that)\s+.*$`)

	companyNarrativeWords = []string{"about", "location", "we", "our"}
)

// extractCompany finds the company name. A short standalone line right under
// the title is tried first, then explicit label lines, then "at/for/join
// <Capitalized phrase>" patterns with trailing clauses stripped.
// Default "Unknown".
func extractCompany(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	// A company name commonly sits alone on the second or third line.
	// Bulleted and narrative lines never qualify.
	for i := 1; i < len(lines) && i < 4; i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || len(line) >= maxCompanyLineLen {
			continue
		}
		if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•") || strings.HasPrefix(line, "*") {
			continue
		}
		lower := strings.ToLower(line)
		narrative := false
		for _, word := range companyNarrativeWords {
			if strings.Contains(lower, word) {
				narrative = true
				break
			}
		}
		if narrative {
			continue
		}
		if !strings.HasSuffix(line, ".") && !strings.Contains(line, ":") && !strings.Contains(line, ",") {
			return line
		}
	}

	for _, pattern := range append(append([]*regexp.Regexp{}, companyLabelPatterns...), companyPhrasePatterns...) {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		company := strings.TrimSpace(m[1])
		company = trailingDash.ReplaceAllString(company, "")
		company = strings.Trim(company, ".,;!")
		company = trailingClause.ReplaceAllString(company, "")
		if company != "" {
			return company
		}
	}

	return "Unknown"
}

// yearsPatterns are all families that can state an experience requirement.
// Every match across every family contributes; the reduction below takes the
// minimum, so the most lenient reading of the posting wins.
var yearsPatterns = []*regexp.Regexp{
	// Range: "3-5 years ... experience"
	regexp.MustCompile(`(?i)(\d+)\s*(?:-|to)\s*\d+\s*years?\s*.*?(?:experience|expertise)`),
	// Plain: "5+ years of experience"
	regexp.MustCompile(`(?i)(\d+)\+?\s*(?:to\s*\d+\s*)?years?\s*(?:of\s*)?(?:experience|expertise)`),
	// Floor stated first: "minimum 3 years", "at least 3 years"
	regexp.MustCompile(`(?i)(?:minimum|at\s*least|requires?)\s*(\d+)\s*years?`),
	// Floor stated last: "3 years minimum", "3 years required"
	regexp.MustCompile(`(?i)(\d+)\s*years?\s*(?:minimum|required)`),
	// Qualified: "5 years Python experience"
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s+(?:of\s+)?[\w\s]+\s+experience`),
}

// extractYearsOfExperience aggregates every years mention in the posting and
// returns the minimum, or 0 when nothing matched. Minimum rather than first
// match: a posting listing "3-5 years" and "10+ years" requires 3.
func extractYearsOfExperience(text string) int {
	var all []int
	for _, pattern := range yearsPatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			all = append(all, atoiSafe(m[1]))
		}
	}

	if len(all) == 0 {
		return 0
	}
	minYears := all[0]
	for _, y := range all[1:] {
		if y < minYears {
			minYears = y
		}
	}
	return minYears
}
