package photos_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripdesk/internal/repositories"
	"tripdesk/internal/services"
	"tripdesk/pkg/utils"
)

var Module = fx.Provide(
	providePhotoRepo, providePhotoService)

func providePhotoRepo(db *gorm.DB) repositories.PhotoRepositoryInterface {
	return repositories.NewPhotoRepository(db)
}

func providePhotoService(
	photoRepo repositories.PhotoRepositoryInterface,
	aiClient utils.LLMClientInterface,
) services.PhotoServiceInterface {
	return services.NewPhotoService(photoRepo, aiClient)
}
