package domain

import "time"

// Source identifies which board kind produced a posting.
type Source string

const (
	SourceLever      Source = "lever"
	SourceGreenhouse Source = "greenhouse"
)

// Posting is the canonical job record, independent of source kind.
// URL is the natural primary key; a record without one never becomes
// a Posting (normalizers drop it instead).
type Posting struct {
	Source      Source
	Company     string
	Title       string
	Location    string // empty means unknown
	URL         string
	Description string // plain text, never HTML
	PostedAt    *time.Time
	// Raw is the untouched decoded source record, kept for traceability.
	// Nothing downstream interprets it.
	Raw map[string]any
}

// ScoredPosting pairs a posting with its relevance score and the
// human-readable reasons that produced it. Ephemeral; never persisted.
type ScoredPosting struct {
	Posting Posting
	Score   float64
	Reasons []string
}
