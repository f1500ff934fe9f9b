package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const pexelsAPIURL = "https://api.pexels.com/v1/search"

type PexelsProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewPexelsProvider(apiKey string) *PexelsProvider {
	return &PexelsProvider{
		apiKey:     apiKey,
		baseURL:    pexelsAPIURL,
		httpClient: newHTTPClient(),
	}
}

func (p *PexelsProvider) Name() string { return "pexels" }

func (p *PexelsProvider) Search(ctx context.Context, query string, perPage int) ([]ImageCandidate, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("orientation", "landscape")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pexels: status %d", resp.StatusCode)
	}

	var payload struct {
		Photos []struct {
			Alt      string `json:"alt"`
			AvgColor string `json:"avg_color"`
			Src      struct {
				Large2x string `json:"large2x"`
				Medium  string `json:"medium"`
			} `json:"src"`
		} `json:"photos"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("pexels: decode: %w", err)
	}

	candidates := make([]ImageCandidate, 0, len(payload.Photos))
	for _, photo := range payload.Photos {
		candidates = append(candidates, ImageCandidate{
			Provider:    p.Name(),
			URL:         photo.Src.Large2x,
			ThumbURL:    photo.Src.Medium,
			Description: photo.Alt,
			Color:       photo.AvgColor,
		})
	}
	return candidates, nil
}
