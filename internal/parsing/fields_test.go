package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"label line", "Job Title: Staff Engineer\nAcme Corp\n", "Staff Engineer"},
		{"position label", "Position: Data Scientist\n", "Data Scientist"},
		{"at split", "Backend Engineer at Globex\n", "Backend Engineer"},
		{"for split", "Product Designer for Initech\n", "Product Designer"},
		{"at split rejects dates", "2020 at Acme.\nPlatform Engineer\n", "Platform Engineer"},
		{"hiring phrase with join clause", "We're hiring a DevOps Engineer to join our team!\n", "DevOps Engineer"},
		{"seeking phrase", "We are seeking a Site Reliability Engineer!\n", "Site Reliability Engineer"},
		{"position suffix", "Frontend Developer position available\n", "Frontend Developer"},
		{"short line fallback", "Senior Engineer\nAcme Corp\n", "Senior Engineer"},
		{"excluded words skip line", "About the role\nSenior Engineer\n", "Senior Engineer"},
		{"blank lines skipped", "\n\nSenior Engineer\n", "Senior Engineer"},
		{"nothing matches", "about the position.\nlocation: remote.\n", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractTitle(tt.text))
		})
	}
}

func TestExtractCompany(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"standalone second line", "Senior Engineer\nAcme Corp\n\nDetails follow.", "Acme Corp"},
		{"bullet lines skipped", "Senior Engineer\n- Python\n- SQL\nJoin the team at Acme Corp.", "Acme Corp"},
		{"company label", "Senior Engineer\n\nCompany: TechStart Inc.\n", "TechStart Inc"},
		{"employer label", "Engineer\n\nEmployer: Initech\n", "Initech"},
		{"at phrase", "Come work at Globex, a leader in widgets.\n", "Globex"},
		{"at phrase end of line", "Senior Engineer at Acme Corp\nMore text below.", "Acme Corp"},
		{"lowercase after at is narrative", "We operate at scale every day.\nJoin us, apply now at Hooli!", "Hooli"},
		{"join our team", "Join our team at Wayne Enterprises!\n", "Wayne Enterprises"},
		{"trailing dash stripped", "Work for Stark Industries -\nRemote work, flexible hours.\n", "Stark Industries"},
		{"nothing matches", "an engineering position.\nremote work available.\n", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractCompany(tt.text))
		})
	}
}

func TestExtractYearsOfExperience(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"plain", "5+ years of experience with Go", 5},
		{"range takes lower bound", "3-5 years of experience required", 3},
		{"minimum phrasing", "Minimum 4 years in backend development", 4},
		{"floor stated last", "7 years minimum", 7},
		{"qualified", "2 years Python experience", 2},
		{"multiple mentions reduce to minimum", "3-5 years of experience.\n10+ years of experience preferred.", 3},
		{"no mention", "Experience with cloud platforms", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractYearsOfExperience(tt.text))
		})
	}
}
