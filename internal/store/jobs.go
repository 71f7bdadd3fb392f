package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"jobscout/internal/domain"
)

// ErrNotFound is returned when a requested posting URL has never been
// stored. Callers surface it as a terminal condition for that request.
var ErrNotFound = errors.New("job not found")

// UpsertJob inserts a posting keyed by URL. A URL that already exists is a
// silent no-op: first write wins, stale fields are never refreshed by
// re-discovery. Returns whether a new row was added.
func (d *DB) UpsertJob(ctx context.Context, p domain.Posting) (added bool, err error) {
	if p.URL == "" {
		return false, errors.New("missing url")
	}

	var postedAt any
	if p.PostedAt != nil {
		postedAt = p.PostedAt.UTC().Format(time.RFC3339)
	}
	var loc any
	if p.Location != "" {
		loc = p.Location
	}

	res, err := d.Pool.ExecContext(ctx, `
INSERT OR IGNORE INTO jobs (source, company, title, location, url, posted_at, description)
VALUES (?, ?, ?, ?, ?, ?, ?);`,
		string(p.Source), p.Company, p.Title, loc, p.URL, postedAt, p.Description,
	)
	if err != nil {
		return false, fmt.Errorf("insert job: %w", err)
	}

	n, _ := res.RowsAffected()
	return n > 0, nil
}

// GetJob returns the stored posting for a URL, or ErrNotFound.
func (d *DB) GetJob(ctx context.Context, url string) (domain.Posting, error) {
	row := d.Pool.QueryRowContext(ctx, `
SELECT source, company, title, location, url, posted_at, description
FROM jobs
WHERE url = ?;`, url)

	var (
		p        domain.Posting
		src      string
		loc      sql.NullString
		postedAt sql.NullString
		desc     sql.NullString
	)
	err := row.Scan(&src, &p.Company, &p.Title, &loc, &p.URL, &postedAt, &desc)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Posting{}, ErrNotFound
	}
	if err != nil {
		return domain.Posting{}, fmt.Errorf("get job: %w", err)
	}

	p.Source = domain.Source(src)
	p.Location = loc.String
	p.Description = desc.String
	if postedAt.Valid {
		if t, perr := time.Parse(time.RFC3339, postedAt.String); perr == nil {
			p.PostedAt = &t
		}
	}
	return p, nil
}

// CountJobs reports the number of stored postings.
func (d *DB) CountJobs(ctx context.Context) (int, error) {
	var n int
	if err := d.Pool.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs;`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count jobs: %w", err)
	}
	return n, nil
}
