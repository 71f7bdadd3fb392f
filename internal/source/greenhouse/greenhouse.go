// Package greenhouse fetches postings from the Greenhouse Job Board API.
// The response is the wrapped kind: an object carrying a jobs array plus
// shared fields (the board's organization name).
package greenhouse

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"jobscout/internal/domain"
	"jobscout/internal/source"
)

const userAgent = "jobscout/1.0 (+human-in-the-loop)"

type Client struct {
	hc      *http.Client
	limiter *source.HostLimiter
	apiBase string
}

func New(limiter *source.HostLimiter) *Client {
	return &Client{
		hc:      &http.Client{Timeout: 20 * time.Second},
		limiter: limiter,
		apiBase: "https://boards-api.greenhouse.io",
	}
}

func (c *Client) Kind() domain.Source { return domain.SourceGreenhouse }

// apiURL resolves a board identifier to the Job Board API endpoint.
// A boards-api URL passes through untouched; anything else is treated as
// a board URL or bare token, and the token is the last path segment:
//
//	https://boards.greenhouse.io/github -> token "github"
func (c *Client) apiURL(id string) string {
	id = strings.TrimRight(strings.TrimSpace(id), "/")
	if strings.Contains(id, "boards-api.greenhouse.io") {
		return id
	}
	token := id
	if i := strings.LastIndex(id, "/"); i >= 0 {
		token = id[i+1:]
	}
	return fmt.Sprintf("%s/v1/boards/%s/jobs?content=true", c.apiBase, token)
}

func (c *Client) Fetch(ctx context.Context, inst source.Instance) ([]domain.Posting, error) {
	apiURL := c.apiURL(inst.ID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, &source.FetchError{Instance: inst, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	if err := c.limiter.WaitURL(ctx, apiURL); err != nil {
		return nil, &source.FetchError{Instance: inst, Err: err}
	}
	res, err := c.hc.Do(req)
	if err != nil {
		return nil, &source.FetchError{Instance: inst, Err: fmt.Errorf("greenhouse get: %w", err)}
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return nil, &source.FetchError{Instance: inst, Err: fmt.Errorf("greenhouse status %d", res.StatusCode)}
	}

	var wrapper map[string]any
	if err := json.NewDecoder(res.Body).Decode(&wrapper); err != nil {
		return nil, &source.FetchError{Instance: inst, Err: fmt.Errorf("greenhouse decode: %w", err)}
	}

	boardName := source.Str(wrapper, "name")
	items := source.List(wrapper, "jobs")

	out := make([]domain.Posting, 0, len(items))
	for _, item := range items {
		if p, ok := normalize(item, boardName, inst); ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// normalize maps one wrapped record into a canonical posting, using the
// enclosing response's organization name when the record has no company
// of its own. Returns false when the record has no usable URL.
func normalize(item map[string]any, boardName string, inst source.Instance) (domain.Posting, bool) {
	u := source.Str(item, "absolute_url", "url")
	if u == "" {
		return domain.Posting{}, false
	}

	title := source.Str(item, "title")
	if title == "" {
		title = "Unknown"
	}

	company := source.Str(item, "company")
	if company == "" {
		company = boardName
	}
	if company == "" {
		company = inst.Label()
	}

	loc := source.NestedStr(item, "location", "name")

	desc := source.HTMLToText(source.Str(item, "content"))

	var postedAt *time.Time
	if s := source.Str(item, "updated_at"); s != "" {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			t = t.UTC()
			postedAt = &t
		}
		// unparsable dates degrade to unknown, never to a failure
	}

	return domain.Posting{
		Source:      domain.SourceGreenhouse,
		Company:     company,
		Title:       title,
		Location:    loc,
		URL:         u,
		Description: desc,
		PostedAt:    postedAt,
		Raw:         item,
	}, true
}
