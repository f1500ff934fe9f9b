package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"tripdesk/internal/models/db_models"
	"tripdesk/internal/models/response_models"
	"tripdesk/internal/repositories"
	"tripdesk/pkg/utils"
)

type PhotoServiceInterface interface {
	CuratePhoto(ctx context.Context, city, landmark, imageURL, source, description string) (*db_models.DestinationImage, error)
	AnalyzePhoto(ctx context.Context, imageURL string) (*response_models.PhotoAnalysis, error)
	ListPhotos(ctx context.Context) ([]db_models.DestinationImage, error)
}

type PhotoService struct {
	photoRepo repositories.PhotoRepositoryInterface
	aiClient  utils.LLMClientInterface
}

func NewPhotoService(photoRepo repositories.PhotoRepositoryInterface, aiClient utils.LLMClientInterface) PhotoServiceInterface {
	return &PhotoService{photoRepo: photoRepo, aiClient: aiClient}
}

// CuratePhoto inserts a curated image. The same URL is never stored twice,
// and a landmark already present for the city gets a numeric suffix instead
// of colliding ("Obelisco", "Obelisco 2", ...). Manual curation gets top
// quality, anything else one notch below.
func (s *PhotoService) CuratePhoto(ctx context.Context, city, landmark, imageURL, source, description string) (*db_models.DestinationImage, error) {
	city = strings.TrimSpace(city)
	landmark = strings.TrimSpace(landmark)
	imageURL = strings.TrimSpace(imageURL)
	if city == "" || landmark == "" || !strings.HasPrefix(imageURL, "http") {
		return nil, utils.ErrInvalidInput
	}

	exists, err := s.photoRepo.URLExists(ctx, imageURL)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, utils.ErrDuplicatePhotoURL
	}

	count, err := s.photoRepo.CountByLandmarkPrefix(ctx, city, landmark)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		landmark = fmt.Sprintf("%s %d", landmark, count+1)
		log.Printf("Landmark already curated, storing as %q", landmark)
	}

	if source == "" {
		source = db_models.SourceManual
	}
	quality := 4
	if source == db_models.SourceManual {
		quality = 5
	}

	photo := &db_models.DestinationImage{
		City:        city,
		Landmark:    landmark,
		ImageURL:    imageURL,
		Source:      source,
		Quality:     quality,
		Description: description,
	}
	if err := s.photoRepo.Insert(ctx, photo); err != nil {
		return nil, err
	}
	return photo, nil
}

// AnalyzePhoto asks the model to identify city, landmark and a short
// description from the image URL alone, so curators only have to paste a
// link.
func (s *PhotoService) AnalyzePhoto(ctx context.Context, imageURL string) (*response_models.PhotoAnalysis, error) {
	prompt := fmt.Sprintf(`Analise esta URL de imagem e identifique o destino turístico:

URL: %s

IMPORTANTE:
- CITY = nome da cidade (ex: "Buenos Aires", "Lima", "Paris", "San Carlos de Bariloche")
- LANDMARK = ponto turístico ESPECÍFICO (ex: "Obelisco", "Torre Eiffel", "Cristo Redentor", "Cerro Catedral")
- Se for uma foto genérica da cidade sem landmark específico, use o nome da cidade no landmark também

Exemplos corretos:
- Foto do Obelisco → city: "Buenos Aires", landmark: "Obelisco"
- Foto de La Boca → city: "Buenos Aires", landmark: "La Boca"
- Foto do skyline genérico de BA → city: "Buenos Aires", landmark: "Buenos Aires"
- Foto do Cerro Catedral → city: "San Carlos de Bariloche", landmark: "Cerro Catedral"
- Foto do lago Nahuel Huapi → city: "San Carlos de Bariloche", landmark: "Lago Nahuel Huapi"

Retorne APENAS JSON válido:
{
  "city": "Nome da Cidade",
  "landmark": "Nome do Landmark Específico",
  "description": "Descrição curta em português (max 100 caracteres)"
}`, imageURL)

	raw, err := s.aiClient.CompleteJSON(ctx,
		"Você é especialista em identificar destinos turísticos. Retorne APENAS JSON válido, sem markdown.",
		prompt, 0.3)
	if err != nil {
		return nil, err
	}

	var analysis response_models.PhotoAnalysis
	if err := json.Unmarshal([]byte(utils.CleanJSONResponse(raw)), &analysis); err != nil {
		return nil, utils.ErrUnexpectedBehaviorOfAI
	}
	if analysis.City == "" || analysis.Landmark == "" {
		return nil, utils.ErrUnexpectedBehaviorOfAI
	}
	return &analysis, nil
}

func (s *PhotoService) ListPhotos(ctx context.Context) ([]db_models.DestinationImage, error) {
	return s.photoRepo.ListAll(ctx)
}
