package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"favoritos/internal/models/request_models"
	"favoritos/internal/models/response_models"
	"favoritos/internal/services"
	"favoritos/pkg/utils"
)

type AutenticacaoController struct {
	autenticacaoService services.AutenticacaoServiceInterface
}

func NewAutenticacaoController(autenticacaoService services.AutenticacaoServiceInterface) *AutenticacaoController {
	return &AutenticacaoController{
		autenticacaoService: autenticacaoService,
	}
}

// Token godoc
// @Summary Autentica o cliente e retorna um token de acesso JWT
// @Tags Autenticação
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "E-mail do cliente"
// @Param password formData string true "Senha do cliente"
// @Success 200 {object} response_models.TokenResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/token [post]
func (a *AutenticacaoController) Token(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, "Invalid request format")
		return
	}

	token, err := a.autenticacaoService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response_models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
