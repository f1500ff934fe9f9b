package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"tripdesk/internal/models/trip_models"
	"tripdesk/internal/repositories"
	"tripdesk/pkg/utils"
)

// ExtractionResult reports what was produced and how. Fallback is empty on a
// clean AI extraction and names the degradation reason otherwise.
type ExtractionResult struct {
	Trip     *trip_models.TripRecord
	Fallback string
}

type ExtractionServiceInterface interface {
	ExtractTrip(ctx context.Context, tripID string, clientName string) (*ExtractionResult, error)
	// EnrichTrip refreshes hero image, city images and itinerary in place.
	// Each enrichment is best effort.
	EnrichTrip(ctx context.Context, trip *trip_models.TripRecord)
}

type ExtractionService struct {
	tripRepo  repositories.TripRepositoryInterface
	aiClient  utils.LLMClientInterface
	images    ImageServiceInterface
	itinerary ItineraryServiceInterface
}

func NewExtractionService(
	tripRepo repositories.TripRepositoryInterface,
	aiClient utils.LLMClientInterface,
	images ImageServiceInterface,
	itinerary ItineraryServiceInterface,
) ExtractionServiceInterface {
	return &ExtractionService{
		tripRepo:  tripRepo,
		aiClient:  aiClient,
		images:    images,
		itinerary: itinerary,
	}
}

const extractionSystemPrompt = "Você é um assistente especializado em extrair dados de orçamentos de viagem. Retorne SEMPRE em formato JSON válido."

// ExtractTrip turns the trip's uploaded quote PDFs into a structured trip
// document and persists it. Missing documents or a failed model call degrade
// to the mock document instead of failing; only an unknown trip id errors.
func (s *ExtractionService) ExtractTrip(ctx context.Context, tripID string, clientName string) (*ExtractionResult, error) {
	texts, err := s.tripRepo.ReadUploadedTexts(tripID)
	if err != nil {
		return nil, err
	}

	// The mock document only gets a hero image; full enrichment is reserved
	// for real extractions.
	result := &ExtractionResult{}
	if len(texts) == 0 {
		log.Println("No readable PDFs found, using mock data")
		result.Trip = s.mockTrip(ctx, clientName)
		result.Fallback = "no_readable_pdfs"
	} else {
		trip, err := s.extractWithAI(ctx, strings.Join(texts, "\n\n"), clientName)
		if err != nil {
			log.Printf("AI extraction failed: %v", err)
			result.Trip = s.mockTrip(ctx, clientName)
			result.Fallback = "ai_extraction_failed"
		} else {
			result.Trip = trip
			log.Printf("Extracted trip data from %d file(s)", len(texts))
			s.EnrichTrip(ctx, result.Trip)
		}
	}

	if err := s.tripRepo.SaveExtraction(tripID, result.Trip); err != nil {
		return nil, fmt.Errorf("failed to persist trip document: %w", err)
	}
	return result, nil
}

func (s *ExtractionService) extractWithAI(ctx context.Context, allText string, clientName string) (*trip_models.TripRecord, error) {
	name := clientName
	if name == "" {
		name = "Cliente"
	}

	prompt := fmt.Sprintf(`Analise o seguinte conteúdo de orçamento de viagem e extraia as informações em formato JSON.

CONTEÚDO DOS ARQUIVOS:
%s

INSTRUÇÕES:
- Extraia TODAS as informações disponíveis
- Use o formato JSON exato especificado abaixo
- Se algum campo não estiver disponível, use valores razoáveis ou deixe vazio
- Datas no formato DD/MM ou DD/MM/AAAA
- Valores numéricos sem símbolos de moeda
- Para o campo "cliente", use: "%s"

FORMATO JSON (retorne APENAS JSON, sem texto adicional):
{
  "cliente": "%s",
  "periodo": {
    "inicio": "DD/MM",
    "fim": "DD/MM"
  },
  "voos": [
    {
      "origem": "Cidade (CÓDIGO)",
      "destino": "Cidade (CÓDIGO)",
      "data": "DD/MM",
      "horario_saida": "HH:MM",
      "horario_chegada": "HH:MM"
    }
  ],
  "hoteis": [
    {
      "cidade": "Cidade",
      "nome": "Nome do hotel",
      "noites": 3,
      "checkin": "DD/MM",
      "checkout": "DD/MM",
      "regime": "Tipo de alimentação"
    }
  ],
  "passeios": [
    {
      "nome": "Nome do passeio",
      "valor_por_pessoa": 100,
      "incluido": false
    }
  ],
  "pacote_base": {
    "descricao": "Aéreo + Hotel",
    "valor": 5000
  }
}`, allText, name, name)

	raw, err := s.aiClient.CompleteJSON(ctx, extractionSystemPrompt, prompt, 0.1)
	if err != nil {
		return nil, err
	}

	var trip trip_models.TripRecord
	if err := json.Unmarshal([]byte(utils.CleanJSONResponse(raw)), &trip); err != nil {
		return nil, utils.ErrUnexpectedBehaviorOfAI
	}

	if clientName != "" {
		trip.Cliente = clientName
	}
	return &trip, nil
}

func (s *ExtractionService) EnrichTrip(ctx context.Context, trip *trip_models.TripRecord) {
	cities := trip.HotelCities()
	if len(cities) > 0 {
		trip.ImagemHero = s.images.ResolveHeroImage(ctx, cities)
		trip.ImagensCidades = s.images.ResolveAllCityImages(ctx, cities, 3)
	} else {
		log.Println("No destinations identified, skipping images")
	}

	trip.Roteiro = s.itinerary.GenerateItinerary(ctx, trip)
	log.Printf("Itinerary generated with %d day(s)", len(trip.Roteiro))
}

func (s *ExtractionService) mockTrip(ctx context.Context, clientName string) *trip_models.TripRecord {
	cliente := clientName
	if cliente == "" {
		cliente = "Cliente (dados simulados)"
	}

	trip := &trip_models.TripRecord{
		Cliente: cliente,
		Periodo: trip_models.Period{Inicio: "15/02", Fim: "22/02"},
		Voos: []trip_models.Flight{
			{
				Origem:         "São Paulo (GRU)",
				Destino:        "Lima (LIM)",
				Data:           "15/02",
				HorarioSaida:   "09:15",
				HorarioChegada: "14:30",
			},
		},
		Hoteis: []trip_models.Hotel{
			{
				Cidade:   "Lima",
				Nome:     "Hotel (dados simulados)",
				Noites:   3,
				Checkin:  "15/02",
				Checkout: "18/02",
				Regime:   "Sem alimentação",
			},
		},
		Passeios: []trip_models.Tour{
			{Nome: "Passeio (dados simulados)", ValorPorPessoa: 64, Incluido: false},
		},
		PacoteBase: trip_models.BasePackage{
			Descricao: "Aéreo + Hotel (casal)",
			Valor:     6656,
		},
	}

	if cities := trip.HotelCities(); len(cities) > 0 {
		trip.ImagemHero = s.images.ResolveHeroImage(ctx, cities)
	}
	return trip
}
