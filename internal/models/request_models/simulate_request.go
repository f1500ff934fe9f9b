package request_models

type TripSimulationRequest struct {
	Origem             string  `json:"origem" binding:"required"`
	Destino            string  `json:"destino" binding:"required"`
	DataIda            string  `json:"data_ida" binding:"required"`
	DataVolta          string  `json:"data_volta" binding:"required"`
	FlexibilidadeDatas *bool   `json:"flexibilidade_datas"`
	Classe             *string `json:"classe"`
	Observacoes        *string `json:"observacoes"`
}
