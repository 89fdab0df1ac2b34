package parsing

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// Keyword length bounds, exclusive on both ends.
const (
	minKeywordLen = 2
	maxKeywordLen = 30
)

// technicalTermPatterns are curated families of ATS-relevant technical
// vocabulary, matched case-insensitively against the full posting text.
var technicalTermPatterns = []*regexp.Regexp{
	// Languages
	regexp.MustCompile(`(?i)\b(?:python|java|javascript|typescript|c\+\+|c#|ruby|go|rust|php|swift|kotlin)\b`),
	// Frameworks
	regexp.MustCompile(`(?i)\b(?:react|angular|vue|django|flask|spring|rails|express|fastapi)\b`),
	// Databases
	regexp.MustCompile(`(?i)\b(?:sql|nosql|postgresql|mysql|mongodb|redis|elasticsearch)\b`),
	// Cloud
	regexp.MustCompile(`(?i)\b(?:aws|azure|gcp|cloud|serverless|lambda|kubernetes|docker)\b`),
	// API styles
	regexp.MustCompile(`(?i)\b(?:api|rest|restful|graphql|grpc|websocket|microservices)\b`),
	// VCS / CI
	regexp.MustCompile(`(?i)\b(?:git|github|gitlab|bitbucket|ci/cd|jenkins|travis|circle)\b`),
	// Methodology
	regexp.MustCompile(`(?i)\b(?:agile|scrum|kanban|waterfall|lean|devops)\b`),
	// Testing
	regexp.MustCompile(`(?i)\b(?:tdd|bdd|unit\s+test|integration\s+test|e2e|testing)\b`),
	// ML / AI
	regexp.MustCompile(`(?i)\b(?:machine\s+learning|ml|ai|artificial\s+intelligence|deep\s+learning|nlp)\b`),
	// Data
	regexp.MustCompile(`(?i)\b(?:data\s+science|analytics|visualization|etl|data\s+pipeline)\b`),
}

// actionVerbs found inside extracted responsibilities become keywords.
var actionVerbs = []string{
	"design", "develop", "implement", "build", "create", "optimize",
	"lead", "manage", "architect", "deploy", "maintain", "analyze",
}

// keywordStopwords are dropped when splitting multi-word skills.
var keywordStopwords = map[string]struct{}{
	"and": {}, "the": {}, "for": {}, "with": {},
}

// extractKeywords mines the ATS keyword set for a parsed job description:
// curated technical terms from the raw text, every extracted skill plus the
// significant words of multi-word skills, and action verbs appearing in the
// responsibilities. The set is lowercase, filtered to lengths strictly
// between 2 and 30, and returned sorted for deterministic output.
func extractKeywords(job *types.JobDescription) []string {
	keywords := make(map[string]struct{})

	text := strings.ToLower(job.RawContent)
	for _, pattern := range technicalTermPatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			keywords[strings.ToLower(match)] = struct{}{}
		}
	}

	allSkills := make([]string, 0, len(job.RequiredSkills)+len(job.NiceToHaveSkills))
	allSkills = append(allSkills, job.RequiredSkills...)
	allSkills = append(allSkills, job.NiceToHaveSkills...)
	for _, skill := range allSkills {
		keywords[strings.ToLower(skill)] = struct{}{}
		words := strings.Fields(skill)
		if len(words) > 1 {
			for _, word := range words {
				lower := strings.ToLower(word)
				if len(word) <= minKeywordLen {
					continue
				}
				if _, stop := keywordStopwords[lower]; stop {
					continue
				}
				keywords[lower] = struct{}{}
			}
		}
	}

	for _, resp := range job.Responsibilities {
		lower := strings.ToLower(resp)
		for _, verb := range actionVerbs {
			if strings.Contains(lower, verb) {
				keywords[verb] = struct{}{}
			}
		}
	}

	cleaned := make([]string, 0, len(keywords))
	for keyword := range keywords {
		keyword = strings.TrimSpace(keyword)
		if len(keyword) > minKeywordLen && len(keyword) < maxKeywordLen {
			cleaned = append(cleaned, keyword)
		}
	}
	sort.Strings(cleaned)

	return cleaned
}
