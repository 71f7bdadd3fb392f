// Package aggregate runs fetch+normalize across a configured set of source
// instances and merges the results. One instance failing never aborts the
// batch; it is reported and excluded.
package aggregate

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"jobscout/internal/domain"
	"jobscout/internal/source"
)

// Fetcher retrieves and normalizes every posting for one instance of its
// source kind.
type Fetcher interface {
	Kind() domain.Source
	Fetch(ctx context.Context, inst source.Instance) ([]domain.Posting, error)
}

// Failure records one instance that contributed nothing to the batch.
type Failure struct {
	Instance source.Instance
	Err      error
}

type Aggregator struct {
	log      *zap.Logger
	fetchers map[domain.Source]Fetcher
	timeout  time.Duration
	parallel int
}

func New(log *zap.Logger, fetchers ...Fetcher) *Aggregator {
	m := make(map[domain.Source]Fetcher, len(fetchers))
	for _, f := range fetchers {
		m[f.Kind()] = f
	}
	return &Aggregator{
		log:      log,
		fetchers: m,
		timeout:  2 * time.Minute,
		parallel: 8,
	}
}

type result struct {
	inst     source.Instance
	postings []domain.Posting
	err      error
}

// Run fetches all instances concurrently and merges every posting into one
// flat collection, deduplicated by URL (first occurrence wins). Failed
// instances are logged as warnings and returned alongside the merged set.
// Record order within one instance is preserved; no cross-source order is
// guaranteed.
func (a *Aggregator) Run(ctx context.Context, instances []source.Instance) ([]domain.Posting, []Failure) {
	results := make(chan result, len(instances))

	var g errgroup.Group
	g.SetLimit(a.parallel)

	for _, inst := range instances {
		inst := inst
		g.Go(func() error {
			f, ok := a.fetchers[inst.Kind]
			if !ok {
				results <- result{inst: inst, err: fmt.Errorf("no fetcher for source kind %q", inst.Kind)}
				return nil
			}

			fctx, cancel := context.WithTimeout(ctx, a.timeout)
			defer cancel()

			postings, err := f.Fetch(fctx, inst)
			results <- result{inst: inst, postings: postings, err: err}
			return nil // best-effort: don't cancel siblings
		})
	}

	_ = g.Wait()
	close(results)

	var (
		merged   []domain.Posting
		failures []Failure
		seen     = map[string]bool{}
	)
	for res := range results {
		if res.err != nil {
			a.log.Warn("source fetch failed",
				zap.String("instance", res.inst.String()),
				zap.Error(res.err))
			failures = append(failures, Failure{Instance: res.inst, Err: res.err})
			continue
		}
		a.log.Info("source fetched",
			zap.String("instance", res.inst.String()),
			zap.Int("postings", len(res.postings)))
		for _, p := range res.postings {
			if seen[p.URL] {
				continue
			}
			seen[p.URL] = true
			merged = append(merged, p)
		}
	}

	return merged, failures
}
