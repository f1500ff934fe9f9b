package services

import (
	"context"
	"io"

	"tripdesk/internal/models/trip_models"
	"tripdesk/internal/repositories"
)

type TripServiceInterface interface {
	NewTripID() string
	SaveFile(tripID string, filename string, src io.Reader) error
	HasUploads(tripID string) bool
	GetTrip(ctx context.Context, tripID string) (*trip_models.TripRecord, error)
}

type TripService struct {
	tripRepo repositories.TripRepositoryInterface
	images   ImageServiceInterface
}

func NewTripService(tripRepo repositories.TripRepositoryInterface, images ImageServiceInterface) TripServiceInterface {
	return &TripService{tripRepo: tripRepo, images: images}
}

func (s *TripService) NewTripID() string {
	return s.tripRepo.NewTripID()
}

func (s *TripService) SaveFile(tripID string, filename string, src io.Reader) error {
	return s.tripRepo.SaveUploadedFile(tripID, filename, src)
}

func (s *TripService) HasUploads(tripID string) bool {
	return s.tripRepo.HasUploads(tripID)
}

// GetTrip loads the stored document and refreshes hero and city images on
// every read, so curation done after extraction shows up without
// re-extracting. The itinerary is kept as extracted.
func (s *TripService) GetTrip(ctx context.Context, tripID string) (*trip_models.TripRecord, error) {
	trip, err := s.tripRepo.LoadExtraction(tripID)
	if err != nil {
		return nil, err
	}

	if cities := trip.HotelCities(); len(cities) > 0 {
		trip.ImagemHero = s.images.ResolveHeroImage(ctx, cities)
		trip.ImagensCidades = s.images.ResolveAllCityImages(ctx, cities, 3)
	}
	return trip, nil
}
