package images_fx

import (
	"log"
	"os"
	"path/filepath"

	"go.uber.org/fx"

	"tripdesk/internal/repositories"
	"tripdesk/internal/services"
	"tripdesk/pkg/imagecache"
	"tripdesk/pkg/providers"
	"tripdesk/pkg/utils"
)

var Module = fx.Provide(
	provideCatalogRepo, provideImageService)

func provideCatalogRepo() repositories.CatalogRepositoryInterface {
	path := filepath.Join(dataDir(), "city_catalog.json")

	repo, err := repositories.NewCatalogRepository(path)
	if err != nil {
		log.Printf("City catalog not loaded from %s, catalog tier disabled: %v", path, err)
	}
	return repo
}

func provideImageService(
	catalog repositories.CatalogRepositoryInterface,
	photoRepo repositories.PhotoRepositoryInterface,
	aiClient utils.LLMClientInterface,
	searchProviders []providers.Provider,
	cache imagecache.Cache,
) services.ImageServiceInterface {
	return services.NewImageService(catalog, photoRepo, aiClient, searchProviders, cache)
}

func dataDir() string {
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		return dir
	}
	return "data"
}
