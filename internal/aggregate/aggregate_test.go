package aggregate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"jobscout/internal/domain"
	"jobscout/internal/source"
)

type fakeFetcher struct {
	kind domain.Source
	fn   func(inst source.Instance) ([]domain.Posting, error)
}

func (f fakeFetcher) Kind() domain.Source { return f.kind }

func (f fakeFetcher) Fetch(_ context.Context, inst source.Instance) ([]domain.Posting, error) {
	return f.fn(inst)
}

func postings(urls ...string) []domain.Posting {
	out := make([]domain.Posting, 0, len(urls))
	for _, u := range urls {
		out = append(out, domain.Posting{URL: u, Title: "Role"})
	}
	return out
}

func TestRun_OneFailureDoesNotReduceOthers(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	log := zap.New(core)

	f := fakeFetcher{kind: domain.SourceLever, fn: func(inst source.Instance) ([]domain.Posting, error) {
		switch inst.ID {
		case "a":
			return postings("https://a/1", "https://a/2"), nil
		case "b":
			return nil, &source.FetchError{Instance: inst, Err: errors.New("boom")}
		case "c":
			return postings("https://c/1"), nil
		}
		return nil, errors.New("unexpected instance")
	}}

	agg := New(log, f)
	merged, failures := agg.Run(context.Background(), []source.Instance{
		{Kind: domain.SourceLever, ID: "a"},
		{Kind: domain.SourceLever, ID: "b"},
		{Kind: domain.SourceLever, ID: "c"},
	})

	assert.Len(t, merged, 3)
	require.Len(t, failures, 1)
	assert.Equal(t, "b", failures[0].Instance.ID)

	warnings := logs.FilterMessage("source fetch failed").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "lever:b", warnings[0].ContextMap()["instance"])
}

func TestRun_DeduplicatesByURLFirstWins(t *testing.T) {
	f := fakeFetcher{kind: domain.SourceLever, fn: func(inst source.Instance) ([]domain.Posting, error) {
		return []domain.Posting{
			{URL: "https://a/1", Title: "First"},
			{URL: "https://a/1", Title: "Second"},
			{URL: "https://a/2", Title: "Other"},
		}, nil
	}}

	agg := New(zap.NewNop(), f)
	merged, failures := agg.Run(context.Background(), []source.Instance{
		{Kind: domain.SourceLever, ID: "a"},
	})

	assert.Empty(t, failures)
	require.Len(t, merged, 2)
	assert.Equal(t, "First", merged[0].Title)
	assert.Equal(t, "Other", merged[1].Title)
}

func TestRun_PreservesWithinSourceOrder(t *testing.T) {
	f := fakeFetcher{kind: domain.SourceLever, fn: func(inst source.Instance) ([]domain.Posting, error) {
		return postings("https://x/1", "https://x/2", "https://x/3"), nil
	}}

	agg := New(zap.NewNop(), f)
	merged, _ := agg.Run(context.Background(), []source.Instance{
		{Kind: domain.SourceLever, ID: "x"},
	})

	require.Len(t, merged, 3)
	assert.Equal(t, "https://x/1", merged[0].URL)
	assert.Equal(t, "https://x/2", merged[1].URL)
	assert.Equal(t, "https://x/3", merged[2].URL)
}

func TestRun_UnknownKindIsAFailure(t *testing.T) {
	agg := New(zap.NewNop()) // no fetchers registered
	merged, failures := agg.Run(context.Background(), []source.Instance{
		{Kind: domain.SourceGreenhouse, ID: "board"},
	})

	assert.Empty(t, merged)
	require.Len(t, failures, 1)
}

func TestRun_NoInstances(t *testing.T) {
	agg := New(zap.NewNop())
	merged, failures := agg.Run(context.Background(), nil)
	assert.Empty(t, merged)
	assert.Empty(t, failures)
}
