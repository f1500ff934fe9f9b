package services_test

import (
	"context"
	"io"
	"strings"

	"tripdesk/internal/models/db_models"
	"tripdesk/internal/models/trip_models"
	"tripdesk/pkg/providers"
	"tripdesk/pkg/utils"
)

type fakeLLM struct {
	jsonResponse string
	textResponse string
	err          error
	calls        int
	lastPrompt   string
}

func (f *fakeLLM) CompleteJSON(ctx context.Context, system string, prompt string, temperature float32) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	return f.jsonResponse, f.err
}

func (f *fakeLLM) Complete(ctx context.Context, system string, prompt string, temperature float32, maxTokens int) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	return f.textResponse, f.err
}

type fakeCatalog map[string][]string

func (f fakeCatalog) Lookup(city string) []string { return f[city] }

type fakePhotoRepo struct {
	photos      []db_models.DestinationImage
	unavailable bool
}

func (f *fakePhotoRepo) URLExists(ctx context.Context, imageURL string) (bool, error) {
	if f.unavailable {
		return false, utils.ErrStoreUnavailable
	}
	for _, p := range f.photos {
		if p.ImageURL == imageURL {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePhotoRepo) CountByLandmarkPrefix(ctx context.Context, city string, landmark string) (int64, error) {
	if f.unavailable {
		return 0, utils.ErrStoreUnavailable
	}
	var count int64
	for _, p := range f.photos {
		if p.City == city && strings.HasPrefix(strings.ToLower(p.Landmark), strings.ToLower(landmark)) {
			count++
		}
	}
	return count, nil
}

func (f *fakePhotoRepo) Insert(ctx context.Context, photo *db_models.DestinationImage) error {
	if f.unavailable {
		return utils.ErrStoreUnavailable
	}
	f.photos = append(f.photos, *photo)
	return nil
}

func (f *fakePhotoRepo) Lookup(ctx context.Context, city string, landmark string) (*db_models.DestinationImage, error) {
	if f.unavailable {
		return nil, utils.ErrStoreUnavailable
	}
	for i := range f.photos {
		if f.photos[i].City == city && f.photos[i].Landmark == landmark {
			return &f.photos[i], nil
		}
	}
	return nil, nil
}

func (f *fakePhotoRepo) ListLandmarks(ctx context.Context, city string) ([]string, error) {
	if f.unavailable {
		return nil, utils.ErrStoreUnavailable
	}
	var landmarks []string
	for _, p := range f.photos {
		if p.City == city {
			landmarks = append(landmarks, p.Landmark)
		}
	}
	return landmarks, nil
}

func (f *fakePhotoRepo) ListAll(ctx context.Context) ([]db_models.DestinationImage, error) {
	if f.unavailable {
		return nil, utils.ErrStoreUnavailable
	}
	return f.photos, nil
}

type fakeProvider struct {
	name    string
	results []providers.ImageCandidate
	err     error
	calls   int
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Search(ctx context.Context, query string, perPage int) ([]providers.ImageCandidate, error) {
	f.calls++
	return f.results, f.err
}

type fakeTripRepo struct {
	texts   []string
	readErr error
	saveErr error
	saved   map[string]*trip_models.TripRecord
}

func newFakeTripRepo() *fakeTripRepo {
	return &fakeTripRepo{saved: make(map[string]*trip_models.TripRecord)}
}

func (f *fakeTripRepo) NewTripID() string { return "trip_test" }

func (f *fakeTripRepo) SaveUploadedFile(tripID string, filename string, src io.Reader) error {
	return nil
}

func (f *fakeTripRepo) HasUploads(tripID string) bool { return f.readErr == nil }

func (f *fakeTripRepo) ReadUploadedTexts(tripID string) ([]string, error) {
	return f.texts, f.readErr
}

func (f *fakeTripRepo) SaveExtraction(tripID string, trip *trip_models.TripRecord) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved[tripID] = trip
	return nil
}

func (f *fakeTripRepo) LoadExtraction(tripID string) (*trip_models.TripRecord, error) {
	trip, ok := f.saved[tripID]
	if !ok {
		return nil, utils.ErrTripNotFound
	}
	return trip, nil
}
