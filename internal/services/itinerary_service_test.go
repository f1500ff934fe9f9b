package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripdesk/internal/models/trip_models"
	"tripdesk/internal/services"
)

func limaTrip() *trip_models.TripRecord {
	return &trip_models.TripRecord{
		Periodo: trip_models.Period{Inicio: "15/02", Fim: "18/02"},
		Hoteis:  []trip_models.Hotel{{Cidade: "Lima", Nome: "Hotel", Noites: 3}},
	}
}

// TestGenerateItinerary_ParsesDays verifies fenced JSON is accepted and a day
// without a landmark gets the generic cityscape backfill.
func TestGenerateItinerary_ParsesDays(t *testing.T) {
	llm := &fakeLLM{textResponse: "```json\n" + `[
		{"dia": 1, "data": "15/02", "titulo": "Chegada a Lima", "landmark": "Lima cityscape", "descricao": "x", "dica": "y"},
		{"dia": 2, "data": "16/02", "titulo": "City Tour", "landmark": "", "descricao": "x", "dica": "y"}
	]` + "\n```"}
	svc := services.NewItineraryService(llm)

	days := svc.GenerateItinerary(context.Background(), limaTrip())

	require.Len(t, days, 2)
	assert.Equal(t, "Lima cityscape", days[0].Landmark)
	assert.Equal(t, "Lima cityscape", days[1].Landmark)
}

// TestGenerateItinerary_NonArray verifies a JSON object response yields an
// empty plan instead of an error.
func TestGenerateItinerary_NonArray(t *testing.T) {
	svc := services.NewItineraryService(&fakeLLM{textResponse: `{"roteiro": []}`})

	days := svc.GenerateItinerary(context.Background(), limaTrip())

	assert.Empty(t, days)
}

// TestGenerateItinerary_PromptContract verifies the prompt carries the
// mandatory sections the model is steered by, including the suggested
// landmark list.
func TestGenerateItinerary_PromptContract(t *testing.T) {
	llm := &fakeLLM{textResponse: "[]"}
	svc := services.NewItineraryService(llm)

	svc.GenerateItinerary(context.Background(), limaTrip())

	assert.Contains(t, llm.lastPrompt, "LANDMARKS VÁLIDOS PARA Lima")
	assert.Contains(t, llm.lastPrompt, `"Puerto Madero" (bairro moderno à beira-mar)`)
	assert.Contains(t, llm.lastPrompt, "Chegada a Lima")
	assert.Contains(t, llm.lastPrompt, "Lima airport")
}

func TestGenerateItinerary_ModelFailure(t *testing.T) {
	svc := services.NewItineraryService(&fakeLLM{err: errors.New("rate limited")})

	days := svc.GenerateItinerary(context.Background(), limaTrip())

	assert.Empty(t, days)
}
