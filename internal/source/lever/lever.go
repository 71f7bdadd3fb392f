// Package lever fetches public postings from the Lever Postings API.
// The response is the flat-list kind: the body itself is the postings array.
package lever

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"jobscout/internal/domain"
	"jobscout/internal/source"
)

const userAgent = "jobscout/1.0 (+human-in-the-loop)"

type Client struct {
	hc      *http.Client
	limiter *source.HostLimiter
	baseURL string
}

func New(limiter *source.HostLimiter) *Client {
	return &Client{
		hc:      &http.Client{Timeout: 20 * time.Second},
		limiter: limiter,
		baseURL: "https://api.lever.co/v0/postings",
	}
}

func (c *Client) Kind() domain.Source { return domain.SourceLever }

// Fetch retrieves every posting for one org slug. Records without a usable
// URL are dropped, not errored.
func (c *Client) Fetch(ctx context.Context, inst source.Instance) ([]domain.Posting, error) {
	apiURL := fmt.Sprintf("%s/%s?mode=json", c.baseURL, url.PathEscape(inst.ID))

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
		return nil, &source.FetchError{Instance: inst, Err: fmt.Errorf("lever get: %w", err)}
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return nil, &source.FetchError{Instance: inst, Err: fmt.Errorf("lever status %d", res.StatusCode)}
	}

	var items []map[string]any
	if err := json.NewDecoder(res.Body).Decode(&items); err != nil {
		return nil, &source.FetchError{Instance: inst, Err: fmt.Errorf("lever decode: %w", err)}
	}

	out := make([]domain.Posting, 0, len(items))
	for _, item := range items {
		if p, ok := normalize(item, inst); ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// normalize maps one raw Lever record into a canonical posting. Returns
// false when the record has no usable URL.
func normalize(item map[string]any, inst source.Instance) (domain.Posting, bool) {
	u := source.Str(item, "applyUrl", "hostedUrl", "url")
	if u == "" {
		return domain.Posting{}, false
	}

	title := source.Str(item, "text", "title")
	if title == "" {
		title = "Unknown"
	}

	company := source.NestedStr(item, "categories", "team")
	if company == "" {
		company = source.Str(item, "company")
	}
	if company == "" {
		company = inst.Label()
	}

	loc := source.NestedStr(item, "categories", "location")
	if loc == "" {
		loc = source.Str(item, "location")
	}
	if loc == "" {
		loc = source.NestedStr(item, "location", "name")
	}

	body := source.Str(item, "descriptionPlain")
	if body == "" {
		body = source.HTMLToText(source.Str(item, "description"))
	}
	extra := source.Str(item, "additionalPlain")
	if extra == "" {
		extra = source.HTMLToText(source.Str(item, "additional"))
	}
	desc := strings.TrimSpace(body + "\n" + extra)

	// createdAt is a millisecond epoch when present.
	var postedAt *time.Time
	if ms, ok := source.Num(item, "createdAt"); ok && ms > 0 {
		t := time.UnixMilli(int64(ms)).UTC()
		postedAt = &t
	}

	return domain.Posting{
		Source:      domain.SourceLever,
		Company:     company,
		Title:       title,
		Location:    loc,
		URL:         u,
		Description: desc,
		PostedAt:    postedAt,
		Raw:         item,
	}, true
}
