package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const pixabayAPIURL = "https://pixabay.com/api/"

type PixabayProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewPixabayProvider(apiKey string) *PixabayProvider {
	return &PixabayProvider{
		apiKey:     apiKey,
		baseURL:    pixabayAPIURL,
		httpClient: newHTTPClient(),
	}
}

func (p *PixabayProvider) Name() string { return "pixabay" }

func (p *PixabayProvider) Search(ctx context.Context, query string, perPage int) ([]ImageCandidate, error) {
	// Pixabay rejects per_page below 3.
	if perPage < 3 {
		perPage = 3
	}

	params := url.Values{}
	params.Set("key", p.apiKey)
	params.Set("q", query)
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("image_type", "photo")
	params.Set("orientation", "horizontal")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pixabay: status %d", resp.StatusCode)
	}

	var payload struct {
		Hits []struct {
			Tags          string `json:"tags"`
			Likes         int    `json:"likes"`
			Views         int    `json:"views"`
			LargeImageURL string `json:"largeImageURL"`
			PreviewURL    string `json:"previewURL"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("pixabay: decode: %w", err)
	}

	candidates := make([]ImageCandidate, 0, len(payload.Hits))
	for _, hit := range payload.Hits {
		candidates = append(candidates, ImageCandidate{
			Provider:    p.Name(),
			URL:         hit.LargeImageURL,
			ThumbURL:    hit.PreviewURL,
			Description: hit.Tags,
			Likes:       hit.Likes,
			Views:       hit.Views,
		})
	}
	return candidates, nil
}
