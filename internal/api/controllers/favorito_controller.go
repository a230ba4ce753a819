package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"favoritos/internal/models/request_models"
	"favoritos/internal/models/response_models"
	"favoritos/internal/services"
	"favoritos/pkg/middleware"
	"favoritos/pkg/utils"
)

const (
	tamanhoPadrao = 10
	tamanhoMaximo = 100
)

type FavoritoController struct {
	favoritoService services.FavoritoServiceInterface
}

func NewFavoritoController(favoritoService services.FavoritoServiceInterface) *FavoritoController {
	return &FavoritoController{
		favoritoService: favoritoService,
	}
}

// List godoc
// @Summary Listar produtos favoritos de um cliente
// @Tags Favoritos
// @Produce json
// @Param id path string true "ID do cliente"
// @Param pagina query int false "Número da página" default(1)
// @Param tamanho query int false "Itens por página" default(10)
// @Success 200 {object} response_models.RespostaPaginada
// @Failure 503 {object} utils.APIResponse
// @Security BearerAuth
// @Router /clientes/{id}/favoritos/ [get]
func (fc *FavoritoController) List(c *gin.Context) {
	pagina, tamanho, err := paginacaoParams(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	cliente := middleware.GetCliente(c)
	produtos, total, err := fc.favoritoService.List(c.Request.Context(), cliente, pagina, tamanho)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response_models.RespostaPaginada{
		Itens:   produtos,
		Total:   total,
		Pagina:  pagina,
		Tamanho: tamanho,
	})
}

// Add godoc
// @Summary Adicionar um produto aos favoritos do cliente logado
// @Tags Favoritos
// @Accept json
// @Produce json
// @Param id path string true "ID do cliente"
// @Param request body request_models.FavoritoAdicionar true "Produto a favoritar"
// @Success 201 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /clientes/{id}/favoritos/ [post]
func (fc *FavoritoController) Add(c *gin.Context) {
	var req request_models.FavoritoAdicionar
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, "Invalid request format")
		return
	}

	cliente := middleware.GetCliente(c)
	if err := fc.favoritoService.Add(c.Request.Context(), cliente, req.ProdutoID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, nil, "Produto adicionado aos favoritos com sucesso")
}

// Remove godoc
// @Summary Remover um produto dos favoritos
// @Tags Favoritos
// @Param id path string true "ID do cliente"
// @Param produto_id path string true "ID do produto"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /clientes/{id}/favoritos/{produto_id} [delete]
func (fc *FavoritoController) Remove(c *gin.Context) {
	cliente := middleware.GetCliente(c)

	if err := fc.favoritoService.Remove(c.Request.Context(), cliente, c.Param("produto_id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func paginacaoParams(c *gin.Context) (int, int, error) {
	pagina, err := strconv.Atoi(c.DefaultQuery("pagina", "1"))
	if err != nil || pagina < 1 {
		return 0, 0, utils.ErrInvalidPage
	}

	tamanho, err := strconv.Atoi(c.DefaultQuery("tamanho", strconv.Itoa(tamanhoPadrao)))
	if err != nil || tamanho < 1 || tamanho > tamanhoMaximo {
		return 0, 0, utils.ErrInvalidPageSize
	}

	return pagina, tamanho, nil
}
