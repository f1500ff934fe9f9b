// Package trip_models holds the trip document shape produced by extraction.
// JSON keys follow the seller-panel wire contract (Portuguese field names);
// a document's shape is whatever extraction and enrichment produced at write
// time, there is no versioning.
package trip_models

import "strings"

type TripRecord struct {
	Cliente        string              `json:"cliente"`
	Periodo        Period              `json:"periodo"`
	Voos           []Flight            `json:"voos"`
	Hoteis         []Hotel             `json:"hoteis"`
	Passeios       []Tour              `json:"passeios"`
	PacoteBase     BasePackage         `json:"pacote_base"`
	ImagemHero     string              `json:"imagem_hero,omitempty"`
	ImagensCidades map[string][]string `json:"imagens_cidades,omitempty"`
	Roteiro        []ItineraryDay      `json:"roteiro,omitempty"`
}

type Period struct {
	Inicio string `json:"inicio"`
	Fim    string `json:"fim"`
}

type Flight struct {
	Origem         string `json:"origem"`
	Destino        string `json:"destino"`
	Data           string `json:"data"`
	HorarioSaida   string `json:"horario_saida"`
	HorarioChegada string `json:"horario_chegada"`
}

type Hotel struct {
	Cidade   string `json:"cidade"`
	Nome     string `json:"nome"`
	Noites   int    `json:"noites"`
	Checkin  string `json:"checkin"`
	Checkout string `json:"checkout"`
	Regime   string `json:"regime"`
}

type Tour struct {
	Nome           string  `json:"nome"`
	ValorPorPessoa float64 `json:"valor_por_pessoa"`
	Incluido       bool    `json:"incluido"`
}

type BasePackage struct {
	Descricao string  `json:"descricao"`
	Valor     float64 `json:"valor"`
}

// ItineraryDay is created wholesale by one language-model call and never
// partially updated. Landmark keys the photo lookup for the day and is
// backfilled when the model omits it.
type ItineraryDay struct {
	Dia       int     `json:"dia"`
	Data      string  `json:"data"`
	Titulo    string  `json:"titulo"`
	Landmark  string  `json:"landmark"`
	Horario   *string `json:"horario"`
	Descricao string  `json:"descricao"`
	Transfer  *string `json:"transfer"`
	Dica      string  `json:"dica"`
}

// HotelCities returns the distinct hotel cities in first-seen order. The
// first one is the trip's primary city by convention.
func (t *TripRecord) HotelCities() []string {
	var cities []string
	seen := make(map[string]bool)
	for _, hotel := range t.Hoteis {
		city := strings.TrimSpace(hotel.Cidade)
		if city == "" || seen[city] {
			continue
		}
		seen[city] = true
		cities = append(cities, city)
	}
	return cities
}

// HasTransfer reports whether any tour name mentions a transfer.
func (t *TripRecord) HasTransfer() bool {
	for _, tour := range t.Passeios {
		if strings.Contains(strings.ToLower(tour.Nome), "transfer") {
			return true
		}
	}
	return false
}
