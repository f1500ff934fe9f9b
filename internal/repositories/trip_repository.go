package repositories

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"tripdesk/internal/models/trip_models"
	"tripdesk/pkg/pdftext"
	"tripdesk/pkg/utils"
)

// DemoTripID serves the fixed demonstration document.
const DemoTripID = "demo"

const demoFileName = "extracao_simulada.json"

type TripRepositoryInterface interface {
	NewTripID() string
	SaveUploadedFile(tripID string, filename string, src io.Reader) error
	HasUploads(tripID string) bool
	ReadUploadedTexts(tripID string) ([]string, error)
	SaveExtraction(tripID string, trip *trip_models.TripRecord) error
	LoadExtraction(tripID string) (*trip_models.TripRecord, error)
}

// TripRepository stores one upload folder and one JSON extraction document
// per trip id under the data directory. Documents are overwritten wholesale
// on re-extraction, never patched.
type TripRepository struct {
	uploadsDir    string
	extractionDir string
}

func NewTripRepository(baseDir string) (TripRepositoryInterface, error) {
	repo := &TripRepository{
		uploadsDir:    filepath.Join(baseDir, "uploads"),
		extractionDir: filepath.Join(baseDir, "extracao"),
	}

	for _, dir := range []string{repo.uploadsDir, repo.extractionDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return repo, nil
}

func (r *TripRepository) NewTripID() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "trip_" + id[:12]
}

func (r *TripRepository) SaveUploadedFile(tripID string, filename string, src io.Reader) error {
	folder := filepath.Join(r.uploadsDir, tripID)
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return err
	}

	dst, err := os.Create(filepath.Join(folder, filepath.Base(filename)))
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

func (r *TripRepository) HasUploads(tripID string) bool {
	info, err := os.Stat(filepath.Join(r.uploadsDir, tripID))
	return err == nil && info.IsDir()
}

// ReadUploadedTexts extracts the text of every uploaded PDF, labelled with a
// file-boundary separator. Unreadable or empty files are skipped, not fatal.
func (r *TripRepository) ReadUploadedTexts(tripID string) ([]string, error) {
	folder := filepath.Join(r.uploadsDir, tripID)
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, utils.ErrUploadFolderNotFound
	}

	var texts []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}

		text, err := pdftext.ExtractText(filepath.Join(folder, entry.Name()))
		if err != nil {
			log.Printf("Failed to read %s: %v", entry.Name(), err)
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		texts = append(texts, fmt.Sprintf("=== Arquivo: %s ===\n%s", entry.Name(), text))
	}
	return texts, nil
}

func (r *TripRepository) SaveExtraction(tripID string, trip *trip_models.TripRecord) error {
	data, err := json.MarshalIndent(trip, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(r.extractionDir, tripID+".json"), data, 0o644)
}

func (r *TripRepository) LoadExtraction(tripID string) (*trip_models.TripRecord, error) {
	name := tripID + ".json"
	if tripID == DemoTripID {
		name = demoFileName
	}

	data, err := os.ReadFile(filepath.Join(r.extractionDir, name))
	if err != nil {
		return nil, utils.ErrTripNotFound
	}

	var trip trip_models.TripRecord
	if err := json.Unmarshal(data, &trip); err != nil {
		return nil, fmt.Errorf("corrupt trip document %s: %w", tripID, err)
	}
	return &trip, nil
}
