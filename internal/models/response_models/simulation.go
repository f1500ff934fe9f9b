package response_models

type TripResumo struct {
	Destino string `json:"destino"`
	Dias    int    `json:"dias"`
	Tipo    string `json:"tipo"`
}

type TripSimulationDetailAereo struct {
	Companhia     string  `json:"companhia"`
	Classe        string  `json:"classe"`
	PrecoEstimado float64 `json:"preco_estimado"`
}

type TripSimulationDetailHospedagem struct {
	Tipo          string  `json:"tipo"`
	Noites        int     `json:"noites"`
	PrecoEstimado float64 `json:"preco_estimado"`
}

type TripSimulationData struct {
	Aereo      TripSimulationDetailAereo      `json:"aereo"`
	Hospedagem TripSimulationDetailHospedagem `json:"hospedagem"`
}

type TripSimulationResponse struct {
	TripID    string             `json:"trip_id"`
	Status    string             `json:"status"`
	Resumo    TripResumo         `json:"resumo"`
	Simulacao TripSimulationData `json:"simulacao"`
}
