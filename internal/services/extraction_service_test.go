package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripdesk/internal/services"
	"tripdesk/pkg/imagecache"
	"tripdesk/pkg/providers"
	"tripdesk/pkg/utils"
)

func newExtractionService(tripRepo *fakeTripRepo, extractLLM *fakeLLM, itineraryLLM *fakeLLM) services.ExtractionServiceInterface {
	images := services.NewImageService(
		fakeCatalog{"Lima": {"lima-url"}, "Roma": {"roma-url"}},
		&fakePhotoRepo{}, extractLLM, []providers.Provider{}, imagecache.NewMemoryCache())
	itinerary := services.NewItineraryService(itineraryLLM)
	return services.NewExtractionService(tripRepo, extractLLM, images, itinerary)
}

// TestExtractTrip_NoPDFs_UsesMock verifies the mock document is produced and
// persisted when the trip folder holds no readable PDFs.
func TestExtractTrip_NoPDFs_UsesMock(t *testing.T) {
	repo := newFakeTripRepo()
	svc := newExtractionService(repo, &fakeLLM{}, &fakeLLM{textResponse: "[]"})

	result, err := svc.ExtractTrip(context.Background(), "trip_abc", "Ana")

	require.NoError(t, err)
	assert.Equal(t, "no_readable_pdfs", result.Fallback)
	assert.Equal(t, "Ana", result.Trip.Cliente)
	assert.Equal(t, float64(6656), result.Trip.PacoteBase.Valor)
	assert.Equal(t, "lima-url", result.Trip.ImagemHero)
	require.Contains(t, repo.saved, "trip_abc")
}

// TestExtractTrip_AIFailure_UsesMock verifies a failed model call degrades
// to the mock document rather than erroring.
func TestExtractTrip_AIFailure_UsesMock(t *testing.T) {
	repo := newFakeTripRepo()
	repo.texts = []string{"=== Arquivo: orcamento.pdf ===\nconteudo"}
	svc := newExtractionService(repo, &fakeLLM{err: errors.New("timeout")}, &fakeLLM{})

	result, err := svc.ExtractTrip(context.Background(), "trip_abc", "")

	require.NoError(t, err)
	assert.Equal(t, "ai_extraction_failed", result.Fallback)
	assert.Equal(t, "Cliente (dados simulados)", result.Trip.Cliente)
}

// TestExtractTrip_Success verifies a clean extraction is enriched with hero
// image, city images and itinerary, and the client name is stamped on.
func TestExtractTrip_Success(t *testing.T) {
	repo := newFakeTripRepo()
	repo.texts = []string{"=== Arquivo: orcamento.pdf ===\nconteudo"}

	extractLLM := &fakeLLM{jsonResponse: `{
		"cliente": "Cliente",
		"periodo": {"inicio": "10/03", "fim": "14/03"},
		"voos": [],
		"hoteis": [{"cidade": "Roma", "nome": "Hotel Roma", "noites": 4}],
		"passeios": [],
		"pacote_base": {"descricao": "Aéreo + Hotel", "valor": 8000}
	}`}
	itineraryLLM := &fakeLLM{textResponse: `[{"dia": 1, "data": "10/03", "titulo": "Chegada a Roma", "landmark": "Roma cityscape", "descricao": "x", "dica": "y"}]`}

	svc := newExtractionService(repo, extractLLM, itineraryLLM)

	result, err := svc.ExtractTrip(context.Background(), "trip_abc", "Marcos")

	require.NoError(t, err)
	assert.Empty(t, result.Fallback)
	assert.Equal(t, "Marcos", result.Trip.Cliente)
	assert.Equal(t, "roma-url", result.Trip.ImagemHero)
	require.Contains(t, result.Trip.ImagensCidades, "Roma")
	assert.Len(t, result.Trip.ImagensCidades["Roma"], 3)
	require.Len(t, result.Trip.Roteiro, 1)
}

// TestExtractTrip_UnknownTrip verifies a missing upload folder propagates as
// a not-found error.
func TestExtractTrip_UnknownTrip(t *testing.T) {
	repo := newFakeTripRepo()
	repo.readErr = utils.ErrUploadFolderNotFound
	svc := newExtractionService(repo, &fakeLLM{}, &fakeLLM{})

	_, err := svc.ExtractTrip(context.Background(), "trip_missing", "")

	assert.ErrorIs(t, err, utils.ErrUploadFolderNotFound)
}
