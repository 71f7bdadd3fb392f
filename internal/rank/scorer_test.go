package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobscout/internal/domain"
)

func TestScore_AllRulesAdditive(t *testing.T) {
	profile := domain.CandidateProfile{
		RemoteOK:   true,
		Titles:     []string{"Engineer"},
		CoreSkills: []string{"Python"},
		NiceSkills: []string{"Docker"},
	}
	job := domain.Posting{
		Title:       "Senior Engineer",
		Description: "Remote role using Python and Docker.",
	}

	score, reasons := Score(job, profile)

	assert.InDelta(t, 5.0, score, 1e-9) // 2.0 core + 0.8 nice + 1.5 title + 0.7 remote
	require.Len(t, reasons, 4)
	assert.Equal(t, []string{
		"Core skill: Python",
		"Bonus: Docker",
		"Title match: Engineer",
		"Remote-friendly signals",
	}, reasons)
}

func TestScore_WordBoundaries(t *testing.T) {
	cases := []struct {
		name  string
		skill string
		text  string
		hit   bool
	}{
		{"go does not match golang", "Go", "Golang forever", false},
		{"go matches own token", "Go", "We write Go services", true},
		{"java does not match javascript", "java", "javascript everywhere", false},
		{"java matches java", "java", "Java and javascript", true},
		{"case insensitive", "python", "PYTHON shop", true},
		{"punctuation is a boundary", "python", "We love Python, mostly.", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profile := domain.CandidateProfile{CoreSkills: []string{tc.skill}}
			job := domain.Posting{Title: "Role", Description: tc.text}

			score, reasons := Score(job, profile)
			if tc.hit {
				assert.InDelta(t, 2.0, score, 1e-9)
				assert.Equal(t, []string{"Core skill: " + tc.skill}, reasons)
			} else {
				assert.Zero(t, score)
				assert.Empty(t, reasons)
			}
		})
	}
}

func TestScore_TitleMatchIgnoresDescription(t *testing.T) {
	profile := domain.CandidateProfile{Titles: []string{"Engineer"}}
	job := domain.Posting{
		Title:       "Staff Developer",
		Description: "Engineer things all day",
	}

	score, reasons := Score(job, profile)
	assert.Zero(t, score)
	assert.Empty(t, reasons)
}

func TestScore_RemoteSignalOncePerRule(t *testing.T) {
	profile := domain.CandidateProfile{RemoteOK: true}
	job := domain.Posting{
		Title:       "Role",
		Description: "Remote, distributed, work from anywhere",
	}

	score, reasons := Score(job, profile)
	assert.InDelta(t, 0.7, score, 1e-9)
	assert.Equal(t, []string{"Remote-friendly signals"}, reasons)
}

func TestScore_RemoteSignalIgnoredWhenNotRemoteOK(t *testing.T) {
	profile := domain.CandidateProfile{RemoteOK: false}
	job := domain.Posting{Title: "Role", Description: "fully remote"}

	score, _ := Score(job, profile)
	assert.Zero(t, score)
}

func TestScore_StackSynergy(t *testing.T) {
	profile := domain.CandidateProfile{}

	score, reasons := Score(domain.Posting{
		Title:       "Full-stack Developer",
		Description: "Ruby on Rails backend with a React front-end",
	}, profile)
	assert.InDelta(t, 0.6, score, 1e-9)
	assert.Equal(t, []string{"Stack synergy: Rails + React"}, reasons)

	// either side alone is not synergy
	score, _ = Score(domain.Posting{Title: "Role", Description: "React only"}, profile)
	assert.Zero(t, score)
	score, _ = Score(domain.Posting{Title: "Role", Description: "Rails only"}, profile)
	assert.Zero(t, score)
}

func TestScore_Deterministic(t *testing.T) {
	profile := domain.CandidateProfile{
		RemoteOK:   true,
		Titles:     []string{"Engineer", "Developer"},
		CoreSkills: []string{"Go", "Postgres"},
		NiceSkills: []string{"Docker", "Kubernetes"},
	}
	job := domain.Posting{
		Title:       "Backend Engineer",
		Description: "Go and Postgres, Docker deploys, remote-first.",
	}

	s1, r1 := Score(job, profile)
	s2, r2 := Score(job, profile)
	assert.Equal(t, s1, s2)
	assert.Equal(t, r1, r2)
}
