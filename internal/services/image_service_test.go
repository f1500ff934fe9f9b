package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripdesk/internal/models/db_models"
	"tripdesk/internal/services"
	"tripdesk/pkg/imagecache"
	"tripdesk/pkg/providers"
)

func newImageService(catalog fakeCatalog, photoRepo *fakePhotoRepo, llm *fakeLLM, provs ...providers.Provider) services.ImageServiceInterface {
	return services.NewImageService(catalog, photoRepo, llm, provs, imagecache.NewMemoryCache())
}

// TestResolveCityImages_CatalogCycles verifies that a short catalog entry is
// cycled until the requested count is reached.
func TestResolveCityImages_CatalogCycles(t *testing.T) {
	catalog := fakeCatalog{"Lima": {"url-a", "url-b"}}
	svc := newImageService(catalog, &fakePhotoRepo{}, &fakeLLM{})

	urls := svc.ResolveCityImages(context.Background(), "Lima", 5)

	require.Len(t, urls, 5)
	assert.Equal(t, []string{"url-a", "url-b", "url-a", "url-b", "url-a"}, urls)
}

// TestResolveCityImages_FallbackPadding verifies that with no catalog entry
// and no providers the result is still exactly count fallback URLs.
func TestResolveCityImages_FallbackPadding(t *testing.T) {
	svc := newImageService(fakeCatalog{}, &fakePhotoRepo{}, &fakeLLM{})

	urls := svc.ResolveCityImages(context.Background(), "Atlantis", 3)

	require.Len(t, urls, 3)
	for _, url := range urls {
		assert.Equal(t, services.FallbackImageURL, url)
	}
}

// TestResolveCityImages_CacheHit verifies that a repeated query for the same
// city and count never hits the providers again.
func TestResolveCityImages_CacheHit(t *testing.T) {
	provider := &fakeProvider{
		name:    "unsplash",
		results: []providers.ImageCandidate{{Provider: "unsplash", URL: "u1", Likes: 10}},
	}
	svc := newImageService(fakeCatalog{}, &fakePhotoRepo{}, &fakeLLM{}, provider)

	first := svc.ResolveCityImages(context.Background(), "Quito", 2)
	callsAfterFirst := provider.calls
	second := svc.ResolveCityImages(context.Background(), "Quito", 2)

	assert.Equal(t, first, second)
	assert.Equal(t, callsAfterFirst, provider.calls)
}

// TestResolveCityImages_ScoringOrder verifies likes, views and provider
// bonus together decide the ranking.
func TestResolveCityImages_ScoringOrder(t *testing.T) {
	unsplash := &fakeProvider{
		name: "unsplash",
		// 10 + 30 = 40
		results: []providers.ImageCandidate{{Provider: "unsplash", URL: "u-low", Likes: 10}},
	}
	pixabay := &fakeProvider{
		name: "pixabay",
		// 20 + 50000*0.002 + 10 = 130
		results: []providers.ImageCandidate{{Provider: "pixabay", URL: "p-high", Likes: 20, Views: 50000}},
	}
	svc := newImageService(fakeCatalog{}, &fakePhotoRepo{}, &fakeLLM{}, unsplash, pixabay)

	urls := svc.ResolveCityImages(context.Background(), "Quito", 2)

	require.Len(t, urls, 2)
	assert.Equal(t, "p-high", urls[0])
	assert.Equal(t, "u-low", urls[1])
}

// TestResolveCityImages_GrayscaleFiltered verifies that near-colorless
// dominant colors are dropped while colorful and unknown ones survive.
func TestResolveCityImages_GrayscaleFiltered(t *testing.T) {
	provider := &fakeProvider{
		name: "unsplash",
		results: []providers.ImageCandidate{
			{Provider: "unsplash", URL: "gray", Likes: 1000, Color: "#777777"},
			{Provider: "unsplash", URL: "red", Likes: 10, Color: "#ff0000"},
		},
	}
	svc := newImageService(fakeCatalog{}, &fakePhotoRepo{}, &fakeLLM{}, provider)

	urls := svc.ResolveCityImages(context.Background(), "Quito", 1)

	require.Len(t, urls, 1)
	assert.Equal(t, "red", urls[0])
}

// TestResolveHeroImage_PrefersIconicDestination verifies iconic destinations
// win over the first destination.
func TestResolveHeroImage_PrefersIconicDestination(t *testing.T) {
	catalog := fakeCatalog{
		"Lima":         {"lima-url"},
		"Machu Picchu": {"machu-url"},
	}
	svc := newImageService(catalog, &fakePhotoRepo{}, &fakeLLM{})

	hero := svc.ResolveHeroImage(context.Background(), []string{"Lima", "Machu Picchu"})

	assert.Equal(t, "machu-url", hero)
}

func TestResolveHeroImage_NoDestinations(t *testing.T) {
	svc := newImageService(fakeCatalog{}, &fakePhotoRepo{}, &fakeLLM{})

	assert.Equal(t, services.FallbackImageURL, svc.ResolveHeroImage(context.Background(), nil))
}

// TestLookupLandmarkImage_ExactMatch verifies the curated store is consulted
// before any AI matching.
func TestLookupLandmarkImage_ExactMatch(t *testing.T) {
	repo := &fakePhotoRepo{photos: []db_models.DestinationImage{
		{City: "Buenos Aires", Landmark: "Obelisco", ImageURL: "obelisco-url"},
	}}
	llm := &fakeLLM{}
	svc := newImageService(fakeCatalog{}, repo, llm)

	url, curated := svc.LookupLandmarkImage(context.Background(), "Buenos Aires", "Obelisco")

	assert.True(t, curated)
	assert.Equal(t, "obelisco-url", url)
	assert.Zero(t, llm.calls)
}

// TestLookupLandmarkImage_SemanticMatch verifies a synonym resolves through
// the AI matcher to the stored landmark.
func TestLookupLandmarkImage_SemanticMatch(t *testing.T) {
	repo := &fakePhotoRepo{photos: []db_models.DestinationImage{
		{City: "Buenos Aires", Landmark: "Puerto Madero", ImageURL: "madero-url"},
	}}
	svc := newImageService(fakeCatalog{}, repo, &fakeLLM{textResponse: "Puerto Madero"})

	url, curated := svc.LookupLandmarkImage(context.Background(), "Buenos Aires", "Ponte da Mulher")

	assert.True(t, curated)
	assert.Equal(t, "madero-url", url)
}

// TestLookupLandmarkImage_NoMatch verifies the sentinel answer yields a miss.
func TestLookupLandmarkImage_NoMatch(t *testing.T) {
	repo := &fakePhotoRepo{photos: []db_models.DestinationImage{
		{City: "Buenos Aires", Landmark: "Obelisco", ImageURL: "obelisco-url"},
	}}
	svc := newImageService(fakeCatalog{}, repo, &fakeLLM{textResponse: "NENHUM"})

	url, curated := svc.LookupLandmarkImage(context.Background(), "Buenos Aires", "Torre Eiffel")

	assert.False(t, curated)
	assert.Empty(t, url)
}

// TestLookupLandmarkImage_StoreUnavailable verifies a disabled store is a
// plain miss, not an error.
func TestLookupLandmarkImage_StoreUnavailable(t *testing.T) {
	svc := newImageService(fakeCatalog{}, &fakePhotoRepo{unavailable: true}, &fakeLLM{})

	url, curated := svc.LookupLandmarkImage(context.Background(), "Buenos Aires", "Obelisco")

	assert.False(t, curated)
	assert.Empty(t, url)
}
