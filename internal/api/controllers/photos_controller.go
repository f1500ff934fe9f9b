package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripdesk/internal/models/request_models"
	"tripdesk/internal/models/response_models"
	"tripdesk/internal/services"
	"tripdesk/pkg/utils"
)

type PhotosController struct {
	photoService services.PhotoServiceInterface
	imageService services.ImageServiceInterface
}

func NewPhotosController(photoService services.PhotoServiceInterface, imageService services.ImageServiceInterface) *PhotosController {
	return &PhotosController{
		photoService: photoService,
		imageService: imageService,
	}
}

// ListPhotos godoc
// @Summary List curated photos
// @Tags Photos
// @Produce json
// @Success 200 {array} db_models.DestinationImage
// @Failure 503 {object} utils.APIResponse
// @Router /photos [get]
func (p *PhotosController) ListPhotos(c *gin.Context) {
	photos, err := p.photoService.ListPhotos(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, photos, "Photos fetched successfully")
}

// LookupPhoto godoc
// @Summary Resolve the photo for a landmark
// @Description Look the landmark up in the curated store (with AI matching of synonyms), falling back to a city image
// @Tags Photos
// @Produce json
// @Param city query string true "City name"
// @Param landmark query string true "Landmark name"
// @Success 200 {object} response_models.LandmarkImageResponse
// @Failure 400 {object} utils.APIResponse
// @Router /photos/lookup [get]
func (p *PhotosController) LookupPhoto(c *gin.Context) {
	city := c.Query("city")
	landmark := c.Query("landmark")
	if city == "" || landmark == "" {
		utils.RespondError(c, http.StatusBadRequest, "city and landmark are required")
		return
	}

	url, curated := p.imageService.LookupLandmarkImage(c.Request.Context(), city, landmark)
	if !curated {
		urls := p.imageService.ResolveCityImages(c.Request.Context(), city, 1)
		url = urls[0]
	}

	utils.RespondSuccess(c, response_models.LandmarkImageResponse{
		City:     city,
		Landmark: landmark,
		ImageURL: url,
		Curated:  curated,
	}, "Image resolved successfully")
}

// CreatePhoto godoc
// @Summary Curate a photo
// @Description Register a curated image for a landmark. Duplicate URLs are rejected; repeated landmarks get a numeric suffix
// @Tags Photos
// @Accept json
// @Produce json
// @Param request body request_models.CreatePhotoRequest true "City, landmark and image URL"
// @Success 200 {object} db_models.DestinationImage
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /photos [post]
func (p *PhotosController) CreatePhoto(c *gin.Context) {
	var req request_models.CreatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "city, landmark and image_url are required")
		return
	}

	photo, err := p.photoService.CuratePhoto(c.Request.Context(), req.City, req.Landmark, req.ImageURL, req.Source, req.Description)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, photo, "Photo curated successfully")
}

// AnalyzePhoto godoc
// @Summary Analyze a photo URL
// @Description Identify city, landmark and description from an image URL so curators only paste a link
// @Tags Photos
// @Accept json
// @Produce json
// @Param request body request_models.AnalyzePhotoRequest true "Image URL"
// @Success 200 {object} response_models.PhotoAnalysis
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /photos/analyze [post]
func (p *PhotosController) AnalyzePhoto(c *gin.Context) {
	var req request_models.AnalyzePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "image_url is required")
		return
	}

	analysis, err := p.photoService.AnalyzePhoto(c.Request.Context(), req.ImageURL)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, analysis, "Photo analyzed successfully")
}
