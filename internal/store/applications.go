package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// appliedAtLayout is RFC 3339 with fixed-width nanoseconds so the stored
// strings sort lexicographically under ORDER BY applied_at.
const appliedAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Application is one append-only event in a job URL's application
// lifecycle. Rows are never updated or deleted.
type Application struct {
	ID            int64
	JobURL        string
	AppliedAt     time.Time
	Status        string
	ResumeVersion string
	Notes         string
}

// LogApplication appends one event for jobURL with the current timestamp.
// An empty status defaults to "draft".
func (d *DB) LogApplication(ctx context.Context, jobURL, status, resumeVersion, notes string) error {
	if status == "" {
		status = "draft"
	}
	var rv any
	if resumeVersion != "" {
		rv = resumeVersion
	}

	_, err := d.Pool.ExecContext(ctx, `
INSERT INTO applications (job_url, applied_at, status, resume_version, notes)
VALUES (?, ?, ?, ?, ?);`,
		jobURL, time.Now().UTC().Format(appliedAtLayout), status, rv, notes,
	)
	if err != nil {
		return fmt.Errorf("log application: %w", err)
	}
	return nil
}

// ListApplications returns events newest first. An empty status means all.
func (d *DB) ListApplications(ctx context.Context, status string) ([]Application, error) {
	query := `
SELECT id, job_url, applied_at, status, resume_version, notes
FROM applications
ORDER BY applied_at DESC, id DESC;`
	args := []any{}
	if status != "" {
		query = `
SELECT id, job_url, applied_at, status, resume_version, notes
FROM applications
WHERE status = ?
ORDER BY applied_at DESC, id DESC;`
		args = append(args, status)
	}

	rows, err := d.Pool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	var out []Application
	for rows.Next() {
		var (
			a       Application
			applied string
			rv      sql.NullString
			notes   sql.NullString
		)
		if err := rows.Scan(&a.ID, &a.JobURL, &applied, &a.Status, &rv, &notes); err != nil {
			return nil, err
		}
		a.AppliedAt, _ = time.Parse(appliedAtLayout, applied)
		a.ResumeVersion = rv.String
		a.Notes = notes.String
		out = append(out, a)
	}
	return out, rows.Err()
}
