package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const unsplashAPIURL = "https://api.unsplash.com/search/photos"

type UnsplashProvider struct {
	accessKey  string
	baseURL    string
	httpClient *http.Client
}

func NewUnsplashProvider(accessKey string) *UnsplashProvider {
	return &UnsplashProvider{
		accessKey:  accessKey,
		baseURL:    unsplashAPIURL,
		httpClient: newHTTPClient(),
	}
}

func (p *UnsplashProvider) Name() string { return "unsplash" }

func (p *UnsplashProvider) Search(ctx context.Context, query string, perPage int) ([]ImageCandidate, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("orientation", "landscape")
	params.Set("content_filter", "high")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Client-ID "+p.accessKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unsplash: status %d", resp.StatusCode)
	}

	var payload struct {
		Results []struct {
			Description    string `json:"description"`
			AltDescription string `json:"alt_description"`
			Likes          int    `json:"likes"`
			Color          string `json:"color"`
			URLs           struct {
				Regular string `json:"regular"`
				Small   string `json:"small"`
			} `json:"urls"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("unsplash: decode: %w", err)
	}

	candidates := make([]ImageCandidate, 0, len(payload.Results))
	for _, r := range payload.Results {
		desc := r.Description
		if desc == "" {
			desc = r.AltDescription
		}
		candidates = append(candidates, ImageCandidate{
			Provider:    p.Name(),
			URL:         r.URLs.Regular,
			ThumbURL:    r.URLs.Small,
			Description: desc,
			Likes:       r.Likes,
			Color:       r.Color,
		})
	}
	return candidates, nil
}
