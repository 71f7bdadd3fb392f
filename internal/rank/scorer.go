package rank

import (
	"regexp"
	"strings"
	"sync"

	"jobscout/internal/domain"
)

// remote-signal words; scored once no matter how many appear.
var remoteSignals = []string{"remote", "distributed", "anywhere"}

// Score evaluates one posting against the profile. Pure and deterministic:
// the same inputs always produce the same score and the same reasons, in
// rule-evaluation order. Skills match on exact word boundaries, so "java"
// never fires on "javascript"; desired titles are substring matches against
// the posting title only.
func Score(job domain.Posting, profile domain.CandidateProfile) (float64, []string) {
	text := strings.ToLower(job.Title + " " + job.Description)
	titleLow := strings.ToLower(job.Title)

	score := 0.0
	var reasons []string

	for _, skill := range profile.CoreSkills {
		if containsWord(text, skill) {
			score += 2.0
			reasons = append(reasons, "Core skill: "+skill)
		}
	}

	for _, skill := range profile.NiceSkills {
		if containsWord(text, skill) {
			score += 0.8
			reasons = append(reasons, "Bonus: "+skill)
		}
	}

	for _, t := range profile.Titles {
		if t != "" && strings.Contains(titleLow, strings.ToLower(t)) {
			score += 1.5
			reasons = append(reasons, "Title match: "+t)
		}
	}

	if profile.RemoteOK {
		for _, w := range remoteSignals {
			if strings.Contains(text, w) {
				score += 0.7
				reasons = append(reasons, "Remote-friendly signals")
				break
			}
		}
	}

	if (strings.Contains(text, "rails") || strings.Contains(text, "ruby")) && strings.Contains(text, "react") {
		score += 0.6
		reasons = append(reasons, "Stack synergy: Rails + React")
	}

	return score, reasons
}

var (
	wordReMu    sync.Mutex
	wordReCache = map[string]*regexp.Regexp{}
)

// containsWord reports whether needle occurs in text as a whole word.
// text must already be lowercased.
func containsWord(text, needle string) bool {
	needle = strings.ToLower(strings.TrimSpace(needle))
	if needle == "" {
		return false
	}

	wordReMu.Lock()
	re, ok := wordReCache[needle]
	if !ok {
		re = regexp.MustCompile(`\b` + regexp.QuoteMeta(needle) + `\b`)
		wordReCache[needle] = re
	}
	wordReMu.Unlock()

	return re.MatchString(text)
}
