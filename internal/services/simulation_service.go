package services

import (
	"strings"
	"time"
	"unicode"

	"tripdesk/internal/models/request_models"
	"tripdesk/internal/models/response_models"
)

type SimulationServiceInterface interface {
	Simulate(req *request_models.TripSimulationRequest) *response_models.TripSimulationResponse
}

type SimulationService struct{}

func NewSimulationService() SimulationServiceInterface {
	return &SimulationService{}
}

// Destination airports treated as domestic.
var domesticAirports = map[string]bool{
	"GIG": true,
	"GRU": true,
	"CNF": true,
	"SSA": true,
}

// Simulate quotes a trip with canned pricing. Unparsable or inverted dates
// fall back to a 5-day estimate rather than erroring.
func (s *SimulationService) Simulate(req *request_models.TripSimulationRequest) *response_models.TripSimulationResponse {
	days := tripDays(req.DataIda, req.DataVolta)

	tripType := "Internacional"
	if domesticAirports[req.Destino] {
		tripType = "Nacional"
	}

	class := "economica"
	if req.Classe != nil && *req.Classe != "" {
		class = *req.Classe
	}

	nights := days
	if nights <= 0 {
		nights = 5
	}

	return &response_models.TripSimulationResponse{
		TripID: "sim_" + strings.ToLower(req.Origem) + "_" + strings.ToLower(req.Destino),
		Status: "simulated",
		Resumo: response_models.TripResumo{
			Destino: req.Destino,
			Dias:    nights,
			Tipo:    tripType,
		},
		Simulacao: response_models.TripSimulationData{
			Aereo: response_models.TripSimulationDetailAereo{
				Companhia:     "Companhia Demo",
				Classe:        capitalize(class),
				PrecoEstimado: 4200.0,
			},
			Hospedagem: response_models.TripSimulationDetailHospedagem{
				Tipo:          "Hotel 4 estrelas",
				Noites:        nights,
				PrecoEstimado: 3800.0,
			},
		},
	}
}

func tripDays(departure string, returning string) int {
	d1, err1 := time.Parse("2006-01-02", departure)
	d2, err2 := time.Parse("2006-01-02", returning)
	if err1 != nil || err2 != nil {
		return 0
	}

	days := int(d2.Sub(d1).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
