// Package providers holds the stock-photo search clients. Every provider is
// optional: a missing credential means the provider is skipped, not an error.
package providers

import (
	"context"
	"net/http"
	"time"
)

// ImageCandidate is a single provider search result. It only lives through
// the scoring pass in the image resolver and is never persisted.
type ImageCandidate struct {
	Provider    string
	URL         string
	ThumbURL    string
	Description string
	Likes       int
	Views       int
	// Color is the dominant color as a hex string ("#aabbcc"), empty when
	// the provider does not report one.
	Color string
}

type Provider interface {
	Name() string
	Search(ctx context.Context, query string, perPage int) ([]ImageCandidate, error)
}

// Provider calls are short blocking requests; a hung provider must not stall
// a whole extraction.
const requestTimeout = 5 * time.Second

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: requestTimeout}
}
