package repositories_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripdesk/internal/models/trip_models"
	"tripdesk/internal/repositories"
	"tripdesk/pkg/utils"
)

func newRepo(t *testing.T) repositories.TripRepositoryInterface {
	t.Helper()
	repo, err := repositories.NewTripRepository(t.TempDir())
	require.NoError(t, err)
	return repo
}

func TestNewTripID(t *testing.T) {
	repo := newRepo(t)

	id := repo.NewTripID()

	assert.True(t, strings.HasPrefix(id, "trip_"))
	assert.Len(t, id, len("trip_")+12)
	assert.NotEqual(t, id, repo.NewTripID())
}

// TestSaveAndLoadExtraction verifies the document round-trips through the
// JSON store unchanged.
func TestSaveAndLoadExtraction(t *testing.T) {
	repo := newRepo(t)

	trip := &trip_models.TripRecord{
		Cliente: "Ana",
		Periodo: trip_models.Period{Inicio: "15/02", Fim: "22/02"},
		Hoteis:  []trip_models.Hotel{{Cidade: "Lima", Nome: "Hotel", Noites: 3}},
	}
	require.NoError(t, repo.SaveExtraction("trip_abc", trip))

	loaded, err := repo.LoadExtraction("trip_abc")

	require.NoError(t, err)
	assert.Equal(t, trip, loaded)
}

func TestLoadExtraction_Unknown(t *testing.T) {
	repo := newRepo(t)

	_, err := repo.LoadExtraction("trip_missing")

	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestSaveUploadedFile(t *testing.T) {
	repo := newRepo(t)

	assert.False(t, repo.HasUploads("trip_abc"))

	err := repo.SaveUploadedFile("trip_abc", "orcamento.pdf", strings.NewReader("%PDF-1.4"))

	require.NoError(t, err)
	assert.True(t, repo.HasUploads("trip_abc"))
}

// TestSaveUploadedFile_StripsPath verifies a path-traversal filename lands
// inside the trip folder.
func TestSaveUploadedFile_StripsPath(t *testing.T) {
	repo := newRepo(t)

	err := repo.SaveUploadedFile("trip_abc", "../../evil.pdf", strings.NewReader("x"))

	require.NoError(t, err)
	assert.True(t, repo.HasUploads("trip_abc"))
}

func TestReadUploadedTexts_MissingFolder(t *testing.T) {
	repo := newRepo(t)

	_, err := repo.ReadUploadedTexts("trip_missing")

	assert.ErrorIs(t, err, utils.ErrUploadFolderNotFound)
}

// TestReadUploadedTexts_SkipsNonPDF verifies non-PDF uploads are ignored
// without failing the read.
func TestReadUploadedTexts_SkipsNonPDF(t *testing.T) {
	repo := newRepo(t)
	require.NoError(t, repo.SaveUploadedFile("trip_abc", "notas.txt", strings.NewReader("texto")))

	texts, err := repo.ReadUploadedTexts("trip_abc")

	require.NoError(t, err)
	assert.Empty(t, texts)
}
