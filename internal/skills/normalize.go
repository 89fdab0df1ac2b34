// Package skills provides skill list tokenization and skill name
// normalization. The tables here are the single source of truth for
// canonical skill spellings; they are read-only after process start.
package skills

import (
	"regexp"
	"strings"
	"unicode"
)

// skillAliases maps shorthand skill tokens to canonical names.
// Matched on the exact lowercased token before any other table.
var skillAliases = map[string]string{
	"js":       "JavaScript",
	"ts":       "TypeScript",
	"py":       "Python",
	"node":     "Node.js",
	"react.js": "React",
	"vue.js":   "Vue",
	"postgres": "PostgreSQL",
	"mongo":    "MongoDB",
	"k8s":      "Kubernetes",
	"ml":       "ML",
	"ai":       "Artificial Intelligence",
	"ci/cd":    "CI/CD",
	"tdd":      "Test-Driven Development",
}

// allCapsTerms are acronyms that are always rendered upper-case.
var allCapsTerms = map[string]struct{}{
	"sql":   {},
	"html":  {},
	"css":   {},
	"xml":   {},
	"json":  {},
	"api":   {},
	"rest":  {},
	"aws":   {},
	"gcp":   {},
	"ci/cd": {},
	"tdd":   {},
	"bdd":   {},
}

// mixedCaseEntry is one (lowercase key, canonical value) pair of the
// mixed-case table.
type mixedCaseEntry struct {
	key   string
	value string
}

// mixedCaseTerms maps known technology names to their canonical casing.
// An exact lowercase match wins first; otherwise the first entry whose key
// is a substring of the token wins. Iteration order is significant, which is
// why this is a slice rather than a map.
var mixedCaseTerms = []mixedCaseEntry{
	{"javascript", "JavaScript"},
	{"typescript", "TypeScript"},
	{"python", "Python"},
	{"java", "Java"},
	{"c#", "C#"},
	{"c++", "C++"},
	{"node.js", "Node.js"},
	{"vue.js", "Vue.js"},
	{"angular.js", "Angular.js"},
	{"postgresql", "PostgreSQL"},
	{"mysql", "MySQL"},
	{"mongodb", "MongoDB"},
	{"graphql", "GraphQL"},
	{"django", "Django"},
	{"flask", "Flask"},
	{"react", "React"},
	{"react.js", "React"},
	{"kubernetes", "Kubernetes"},
	{"docker", "Docker"},
	{"git", "Git"},
	{"github", "GitHub"},
	{"gitlab", "GitLab"},
	{"linux", "Linux"},
	{"macos", "macOS"},
	{"redis", "Redis"},
	{"elasticsearch", "Elasticsearch"},
	{"machine learning", "Machine Learning"},
	{"aws certification", "AWS"},
	{"graphql knowledge", "GraphQL"},
	{"docker containerization", "Docker"},
	{"rest api development", "REST API"},
	{"linux/unix proficiency", "Linux/Unix"},
	{"ml background", "ML"},
	{"mobile development", "Mobile Development"},
}

// languageNames are programming languages whose trailing noun phrases are
// dropped ("Python programming" -> "Python").
var languageNames = []string{
	"python", "java", "javascript", "typescript", "c++", "c#", "ruby", "go", "rust",
}

var (
	multiSpace      = regexp.MustCompile(`\s+`)
	qualifierSuffix = regexp.MustCompile(`(?i)\s*(?:experience|knowledge|skills?|expertise|proficiency)$`)
)

// Normalize maps a raw skill token to its canonical display form. It trims
// punctuation, strips trailing qualifier suffixes, and then consults the
// alias, all-caps, and mixed-case tables in that order. Tokens unknown to
// every table get per-word capitalization. Normalizing an already-canonical
// name returns it unchanged.
func Normalize(skill string) string {
	skill = strings.Trim(strings.TrimSpace(skill), ".,;:")
	skill = multiSpace.ReplaceAllString(skill, " ")
	skill = qualifierSuffix.ReplaceAllString(skill, "")
	if skill == "" {
		return ""
	}

	lower := strings.ToLower(skill)
	if canonical, ok := skillAliases[lower]; ok {
		return canonical
	}

	// "Python programming" and friends reduce to the bare language name.
	for _, lang := range languageNames {
		if strings.HasPrefix(lower, lang+" ") {
			skill = lang
			lower = lang
		}
	}

	if _, ok := allCapsTerms[lower]; ok {
		return strings.ToUpper(skill)
	}

	for _, entry := range mixedCaseTerms {
		if entry.key == lower {
			return entry.value
		}
	}
	for _, entry := range mixedCaseTerms {
		if strings.Contains(lower, entry.key) {
			return entry.value
		}
	}

	return capitalizeWords(skill)
}

// NormalizeAll normalizes a list of raw skill tokens and deduplicates them
// case-insensitively, preserving the casing of the first occurrence.
func NormalizeAll(raw []string) []string {
	normalized := make([]string, 0, len(raw))
	seen := make(map[string]struct{})

	for _, skill := range raw {
		canonical := Normalize(skill)
		if canonical == "" {
			continue
		}
		key := strings.ToLower(canonical)
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		normalized = append(normalized, canonical)
	}

	return normalized
}

// capitalizeWords upper-cases the first letter of each all-lowercase word.
// Words that already carry an upper-case letter are kept as written so that
// canonical names survive re-normalization.
func capitalizeWords(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		if word == strings.ToLower(word) {
			runes := []rune(word)
			runes[0] = unicode.ToUpper(runes[0])
			words[i] = string(runes)
		}
	}
	return strings.Join(words, " ")
}
