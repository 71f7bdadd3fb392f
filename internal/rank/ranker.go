package rank

import (
	"sort"

	"jobscout/internal/domain"
)

// Rank scores every posting and returns the limit highest, sorted by score
// descending. The sort is stable: equal scores keep their relative input
// order. A limit of 0 yields an empty result; a limit beyond the input size
// returns everything.
func Rank(jobs []domain.Posting, profile domain.CandidateProfile, limit int) []domain.ScoredPosting {
	scored := make([]domain.ScoredPosting, 0, len(jobs))
	for _, j := range jobs {
		s, reasons := Score(j, profile)
		scored = append(scored, domain.ScoredPosting{Posting: j, Score: s, Reasons: reasons})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if limit < 0 {
		limit = 0
	}
	if limit < len(scored) {
		scored = scored[:limit]
	}
	return scored
}
