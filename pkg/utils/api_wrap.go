package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps domain errors to HTTP status codes. Anything not in
// the taxonomy is a 500 with a generic message.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		c.Header("WWW-Authenticate", "Bearer")
		RespondError(c, http.StatusUnauthorized, "E-mail ou senha inválidos")
	case errors.Is(err, ErrTokenInvalid):
		c.Header("WWW-Authenticate", "Bearer")
		RespondError(c, http.StatusUnauthorized, ErrTokenInvalid.Error())
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, ErrForbidden.Error())
	case errors.Is(err, ErrEmailTaken):
		RespondError(c, http.StatusConflict, ErrEmailTaken.Error())
	case errors.Is(err, ErrFavoritoExists):
		RespondError(c, http.StatusConflict, ErrFavoritoExists.Error())
	case errors.Is(err, ErrClienteNotFound):
		RespondError(c, http.StatusNotFound, ErrClienteNotFound.Error())
	case errors.Is(err, ErrFavoritoNotFound):
		RespondError(c, http.StatusNotFound, ErrFavoritoNotFound.Error())
	case errors.Is(err, ErrProdutoNotFound):
		RespondError(c, http.StatusNotFound, ErrProdutoNotFound.Error())
	case errors.Is(err, ErrProdutoUnavailable):
		RespondError(c, http.StatusServiceUnavailable, ErrProdutoUnavailable.Error())
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
	default:
		log.Printf("unexpected error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
