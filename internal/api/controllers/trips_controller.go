package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripdesk/internal/models/request_models"
	"tripdesk/internal/models/response_models"
	"tripdesk/internal/services"
	"tripdesk/pkg/utils"
)

type TripsController struct {
	tripService       services.TripServiceInterface
	extractionService services.ExtractionServiceInterface
	simulationService services.SimulationServiceInterface
}

func NewTripsController(
	tripService services.TripServiceInterface,
	extractionService services.ExtractionServiceInterface,
	simulationService services.SimulationServiceInterface,
) *TripsController {
	return &TripsController{
		tripService:       tripService,
		extractionService: extractionService,
		simulationService: simulationService,
	}
}

// Upload godoc
// @Summary Upload quote documents
// @Description Store one or more quote PDFs under a freshly minted trip ID
// @Tags Trips
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Quote PDFs"
// @Success 200 {object} response_models.UploadResponse
// @Failure 400 {object} utils.APIResponse
// @Router /upload [post]
func (t *TripsController) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "At least one file is required")
		return
	}

	tripID := t.tripService.NewTripID()

	var saved []string
	for _, header := range files {
		src, err := header.Open()
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, "Failed to read uploaded file")
			return
		}

		err = t.tripService.SaveFile(tripID, header.Filename, src)
		src.Close()
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, "Failed to store uploaded file")
			return
		}
		saved = append(saved, header.Filename)
	}

	utils.RespondSuccess(c, response_models.UploadResponse{
		TripID:  tripID,
		Status:  "uploaded",
		Message: fmt.Sprintf("%d arquivo(s) enviado(s) com sucesso", len(saved)),
		Files:   saved,
	}, "Files uploaded successfully")
}

// GetTrip godoc
// @Summary Get a trip document
// @Description Fetch the extracted trip document, with hero and city images refreshed on every read
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID (use 'demo' for the demonstration document)"
// @Success 200 {object} response_models.TripResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{tripId} [get]
func (t *TripsController) GetTrip(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	trip, err := t.tripService.GetTrip(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.TripResponse{
		TripID: tripID,
		Status: "ok",
		Data:   trip,
	}, "Trip fetched successfully")
}

// Extract godoc
// @Summary Extract trip data from uploaded documents
// @Description Run AI extraction over the trip's uploaded PDFs and persist the resulting document
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param cliente query string false "Client name to stamp on the document"
// @Success 200 {object} response_models.ExtractResponse
// @Failure 404 {object} utils.APIResponse
// @Router /extract/{tripId} [post]
func (t *TripsController) Extract(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	if !t.tripService.HasUploads(tripID) {
		utils.HandleServiceError(c, utils.ErrUploadFolderNotFound)
		return
	}

	result, err := t.extractionService.ExtractTrip(c.Request.Context(), tripID, c.Query("cliente"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ExtractResponse{
		TripID:   tripID,
		Status:   "extracted",
		Message:  "Dados extraídos com sucesso",
		Fallback: result.Fallback,
	}, "Extraction completed")
}

// Simulate godoc
// @Summary Simulate a trip quote
// @Description Produce a canned flight and hotel quote for the requested route and dates
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.TripSimulationRequest true "Origin, destination and ISO dates"
// @Success 200 {object} response_models.TripSimulationResponse
// @Failure 400 {object} utils.APIResponse
// @Router /trips/simulate [post]
func (t *TripsController) Simulate(c *gin.Context) {
	var req request_models.TripSimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "origem, destino, data_ida and data_volta are required")
		return
	}

	utils.RespondSuccess(c, t.simulationService.Simulate(&req), "Simulation completed")
}
