package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"tripdesk/internal/models/trip_models"
	"tripdesk/pkg/utils"
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, trip *trip_models.TripRecord) []trip_models.ItineraryDay
}

type ItineraryService struct {
	aiClient utils.LLMClientInterface
}

func NewItineraryService(aiClient utils.LLMClientInterface) ItineraryServiceInterface {
	return &ItineraryService{aiClient: aiClient}
}

const itinerarySystemPrompt = "Você é um especialista em roteiros de viagem. Crie roteiros detalhados, práticos e inspiradores. SEMPRE inclua o campo 'landmark' em cada dia. Retorne APENAS JSON array limpo, sem markdown."

// GenerateItinerary builds the day-by-day plan for a trip. Failures are
// logged and yield an empty plan; the trip document stays valid without one.
func (s *ItineraryService) GenerateItinerary(ctx context.Context, trip *trip_models.TripRecord) []trip_models.ItineraryDay {
	mainCity := "Buenos Aires"
	if cities := trip.HotelCities(); len(cities) > 0 {
		mainCity = cities[0]
	}

	transfer := "a-incluir"
	if trip.HasTransfer() {
		transfer = "incluido"
	}

	prompt := buildItineraryPrompt(trip, mainCity, transfer)

	raw, err := s.aiClient.Complete(ctx, itinerarySystemPrompt, prompt, 0.7, 3000)
	if err != nil {
		log.Printf("Itinerary generation failed: %v", err)
		return []trip_models.ItineraryDay{}
	}

	raw = utils.CleanJSONResponse(raw)

	var days []trip_models.ItineraryDay
	if err := json.Unmarshal([]byte(raw), &days); err != nil {
		log.Printf("Itinerary response is not a JSON array: %v", err)
		return []trip_models.ItineraryDay{}
	}

	// Every day carries a landmark so the panel can pick a photo for it.
	for i := range days {
		if strings.TrimSpace(days[i].Landmark) == "" {
			days[i].Landmark = mainCity + " cityscape"
		}
	}
	return days
}

func buildItineraryPrompt(trip *trip_models.TripRecord, mainCity string, transfer string) string {
	flights, _ := json.MarshalIndent(trip.Voos, "", "  ")
	hotels, _ := json.MarshalIndent(trip.Hoteis, "", "  ")
	tours, _ := json.MarshalIndent(trip.Passeios, "", "  ")

	return fmt.Sprintf(`Crie um roteiro dia-a-dia COMPLETO para esta viagem a %[1]s:

PERÍODO: %[2]s a %[3]s

VOOS:
%[4]s

HOTÉIS:
%[5]s

PASSEIOS INCLUÍDOS:
%[6]s

REGRAS OBRIGATÓRIAS:

1. CAMPO "landmark" É OBRIGATÓRIO EM CADA DIA:
   - O campo "landmark" define qual FOTO será exibida naquele dia
   - Use APENAS o nome do lugar, sem cidade ou país
   - Exemplos corretos: "Obelisco", "Palermo", "La Boca", "Puerto Madero", "Recoleta"
   - Dia 1 (chegada): use "%[1]s cityscape"
   - Último dia (partida): use "%[1]s airport"

2. DIA DE CHEGADA (Dia 1):
   - Título: "Chegada a %[1]s"
   - landmark: "%[1]s cityscape"
   - Horário: Mostrar horário de chegada do voo
   - Descrição: 2-3 parágrafos sobre chegada, transfer, check-in e primeira noite
   - Transfer: "%[7]s"
   - Dica: Uma dica prática sobre o bairro do hotel

3. DIAS INTERMEDIÁRIOS (Dia 2 até penúltimo):
   - Título: Nome de atividade/bairro (ex: "City Tour", "Explorando Palermo", "La Boca e Caminito")
   - landmark: Nome DO LOCAL específico visitado (ex: "Obelisco", "Palermo", "La Boca", "Recoleta", "Puerto Madero")
   - Descrição: 2-3 parágrafos com sugestões de manhã, tarde e noite
   - VARIE os bairros/locais a cada dia
   - Se tem passeio incluído: mencionar "✓ [Nome do passeio] incluído"
   - Dica: Dica sobre restaurantes, horários, transporte

4. DIA DE PARTIDA (Último dia):
   - Título: "Retorno"
   - landmark: "%[1]s airport"
   - Horário: Mostrar horário do voo de volta
   - Descrição: Check-out, transfer ao aeroporto, despedida
   - Transfer: "%[7]s"
   - Dica: Dica sobre check-in antecipado

LANDMARKS VÁLIDOS PARA %[1]s:
- "Obelisco" (monumento icônico na Av. 9 de Julio)
- "Palermo" (bairro com parques e jardins)
- "La Boca" (bairro colorido com Caminito)
- "Puerto Madero" (bairro moderno à beira-mar)
- "Recoleta" (cemitério e arquitetura)
- "San Telmo" (feira de antiguidades)
- "Teatro Colón" (ópera house)
- "Casa Rosada" (Plaza de Mayo)

FORMATO JSON (retorne APENAS JSON array limpo, sem `+"```"+`json):
[
  {
    "dia": 1,
    "data": "30/01",
    "titulo": "Chegada a %[1]s",
    "landmark": "%[1]s cityscape",
    "horario": "Chegada às 17:00",
    "descricao": "Texto com 2-3 parágrafos separados por \n\n.",
    "transfer": "%[7]s",
    "dica": "Uma dica prática."
  },
  {
    "dia": 2,
    "data": "31/01",
    "titulo": "City Tour",
    "landmark": "Obelisco",
    "horario": null,
    "descricao": "Texto com 2-3 parágrafos separados por \n\n.",
    "transfer": null,
    "dica": "Uma dica prática."
  }
]

IMPORTANTE: CADA DIA DEVE TER UM LANDMARK DIFERENTE para garantir variedade visual nas fotos!`,
		mainCity, trip.Periodo.Inicio, trip.Periodo.Fim,
		string(flights), string(hotels), string(tours), transfer)
}
