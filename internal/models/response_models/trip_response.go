package response_models

import "tripdesk/internal/models/trip_models"

type TripResponse struct {
	TripID string                  `json:"trip_id"`
	Status string                  `json:"status"`
	Data   *trip_models.TripRecord `json:"data"`
}

type UploadResponse struct {
	TripID  string   `json:"trip_id"`
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Files   []string `json:"files"`
}

type ExtractResponse struct {
	TripID  string `json:"trip_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
	// Fallback names the degradation reason when the extraction had to fall
	// back to mock data; empty on a clean run.
	Fallback string `json:"fallback,omitempty"`
}
