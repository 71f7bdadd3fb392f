package rank

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobscout/internal/domain"
)

func postingWithSkills(url string, skills ...string) domain.Posting {
	desc := ""
	for _, s := range skills {
		desc += s + " "
	}
	return domain.Posting{Title: "Role", URL: url, Description: desc}
}

func TestRank_SortsByScoreDescending(t *testing.T) {
	profile := domain.CandidateProfile{CoreSkills: []string{"go", "postgres", "kafka"}}

	jobs := []domain.Posting{
		postingWithSkills("u1", "go"),
		postingWithSkills("u2", "go", "postgres", "kafka"),
		postingWithSkills("u3", "go", "postgres"),
	}

	ranked := Rank(jobs, profile, 10)
	require.Len(t, ranked, 3)
	assert.Equal(t, "u2", ranked[0].Posting.URL)
	assert.Equal(t, "u3", ranked[1].Posting.URL)
	assert.Equal(t, "u1", ranked[2].Posting.URL)
}

func TestRank_LimitSemantics(t *testing.T) {
	profile := domain.CandidateProfile{}
	var jobs []domain.Posting
	for i := 0; i < 5; i++ {
		jobs = append(jobs, postingWithSkills(fmt.Sprintf("u%d", i)))
	}

	assert.Empty(t, Rank(jobs, profile, 0))
	assert.Len(t, Rank(jobs, profile, 3), 3)
	assert.Len(t, Rank(jobs, profile, 5), 5)
	assert.Len(t, Rank(jobs, profile, 99), 5)
	assert.Empty(t, Rank(nil, profile, 10))
}

func TestRank_TiesPreserveInputOrder(t *testing.T) {
	profile := domain.CandidateProfile{CoreSkills: []string{"go"}}

	// u2/u3/u4 all score 0; they must come out in input order.
	jobs := []domain.Posting{
		postingWithSkills("u2"),
		postingWithSkills("u3"),
		postingWithSkills("u1", "go"),
		postingWithSkills("u4"),
	}

	ranked := Rank(jobs, profile, 10)
	require.Len(t, ranked, 4)
	assert.Equal(t, "u1", ranked[0].Posting.URL)
	assert.Equal(t, "u2", ranked[1].Posting.URL)
	assert.Equal(t, "u3", ranked[2].Posting.URL)
	assert.Equal(t, "u4", ranked[3].Posting.URL)
}
