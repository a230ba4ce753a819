package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"favoritos/internal/models/request_models"
	"favoritos/internal/models/response_models"
	"favoritos/internal/services"
	"favoritos/pkg/middleware"
	"favoritos/pkg/utils"
)

type ClienteController struct {
	clienteService services.ClienteServiceInterface
}

func NewClienteController(clienteService services.ClienteServiceInterface) *ClienteController {
	return &ClienteController{
		clienteService: clienteService,
	}
}

// Create godoc
// @Summary Criar um novo cliente
// @Tags Clientes
// @Accept json
// @Produce json
// @Param request body request_models.ClienteCadastrar true "Dados do cliente"
// @Success 201 {object} response_models.ClienteDetalhar
// @Failure 409 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /clientes/ [post]
func (cc *ClienteController) Create(c *gin.Context) {
	var req request_models.ClienteCadastrar
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, "Invalid request format")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	cliente, err := cc.clienteService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response_models.NewClienteDetalhar(cliente))
}

// Get godoc
// @Summary Obter detalhes de um cliente
// @Tags Clientes
// @Produce json
// @Param id path string true "ID do cliente"
// @Success 200 {object} response_models.ClienteDetalhar
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /clientes/{id} [get]
func (cc *ClienteController) Get(c *gin.Context) {
	cliente := middleware.GetCliente(c)

	c.JSON(http.StatusOK, response_models.NewClienteDetalhar(cliente))
}

// Update godoc
// @Summary Atualizar um cliente
// @Tags Clientes
// @Accept json
// @Produce json
// @Param id path string true "ID do cliente"
// @Param request body request_models.ClienteAtualizar true "Dados do cliente"
// @Success 200 {object} response_models.ClienteDetalhar
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /clientes/{id} [put]
func (cc *ClienteController) Update(c *gin.Context) {
	var req request_models.ClienteAtualizar
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, "Invalid request format")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	cliente := middleware.GetCliente(c)
	atualizado, err := cc.clienteService.Update(c.Request.Context(), cliente, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response_models.NewClienteDetalhar(atualizado))
}

// Delete godoc
// @Summary Excluir um cliente
// @Tags Clientes
// @Param id path string true "ID do cliente"
// @Success 204
// @Security BearerAuth
// @Router /clientes/{id} [delete]
func (cc *ClienteController) Delete(c *gin.Context) {
	cliente := middleware.GetCliente(c)

	if err := cc.clienteService.Delete(c.Request.Context(), cliente); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
