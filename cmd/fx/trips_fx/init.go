package trips_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"tripdesk/internal/repositories"
	"tripdesk/internal/services"
	"tripdesk/pkg/utils"
)

var Module = fx.Provide(
	provideTripRepo,
	provideTripService,
	provideItineraryService,
	provideExtractionService,
	provideSimulationService)

func provideTripRepo() repositories.TripRepositoryInterface {
	dir := os.Getenv("DATA_DIR")
	if dir == "" {
		dir = "data"
	}

	repo, err := repositories.NewTripRepository(dir)
	if err != nil {
		log.Fatalf("Failed to prepare trip storage under %s: %v", dir, err)
	}
	return repo
}

func provideTripService(
	tripRepo repositories.TripRepositoryInterface,
	images services.ImageServiceInterface,
) services.TripServiceInterface {
	return services.NewTripService(tripRepo, images)
}

func provideItineraryService(aiClient utils.LLMClientInterface) services.ItineraryServiceInterface {
	return services.NewItineraryService(aiClient)
}

func provideExtractionService(
	tripRepo repositories.TripRepositoryInterface,
	aiClient utils.LLMClientInterface,
	images services.ImageServiceInterface,
	itinerary services.ItineraryServiceInterface,
) services.ExtractionServiceInterface {
	return services.NewExtractionService(tripRepo, aiClient, images, itinerary)
}

func provideSimulationService() services.SimulationServiceInterface {
	return services.NewSimulationService()
}
