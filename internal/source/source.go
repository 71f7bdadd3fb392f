package source

import (
	"fmt"

	"jobscout/internal/domain"
)

// Instance is one queryable board: a Lever organization slug, or a
// Greenhouse board URL/token.
type Instance struct {
	Kind domain.Source
	// ID is the org slug (lever) or board URL/token (greenhouse).
	ID string
	// Name is an optional display name; falls back to ID.
	Name string
}

func (in Instance) String() string {
	return fmt.Sprintf("%s:%s", in.Kind, in.ID)
}

// Label is the name used when a posting carries no company of its own.
func (in Instance) Label() string {
	if in.Name != "" {
		return in.Name
	}
	return in.ID
}

// FetchError wraps any failure retrieving one instance: network errors,
// non-2xx statuses, malformed bodies. It is recoverable and isolated to
// that instance; the aggregator reports it and moves on.
type FetchError struct {
	Instance Instance
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Instance, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
