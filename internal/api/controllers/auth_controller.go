package controllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"tripdesk/internal/models/request_models"
	"tripdesk/internal/models/response_models"
	"tripdesk/pkg/utils"
)

// AuthController issues curator tokens. There is a single shared curator
// credential, checked against the bcrypt hash in CURATOR_PASSWORD_HASH.
type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

// Token godoc
// @Summary Get a curator token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.CuratorLoginRequest true "Curator password"
// @Success 200 {object} response_models.TokenResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/token [post]
func (a *AuthController) Token(c *gin.Context) {
	var req request_models.CuratorLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "password is required")
		return
	}

	hash := os.Getenv("CURATOR_PASSWORD_HASH")
	if hash == "" || utils.ComparePasswords(hash, req.Password) != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.CreateToken("curator", "curator")
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	utils.RespondSuccess(c, response_models.TokenResponse{Token: token}, "Token issued successfully")
}
