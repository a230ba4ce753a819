package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"favoritos/internal/models/db_models"
	"favoritos/pkg/utils"
)

const ClienteContextKey = "cliente"

// ClienteResolver is the slice of the cliente service the auth middleware
// needs: resolve a token subject to an active account.
type ClienteResolver interface {
	FindByID(ctx context.Context, id string) (*db_models.Cliente, error)
}

// JWTAuthMiddleware validates the bearer token and loads the cliente it names.
// A missing header, a bad token or a deleted account all end the request with
// 401 before any handler runs.
func JWTAuthMiddleware(resolver ClienteResolver, chaveJWT []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Header("WWW-Authenticate", "Bearer")
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		clienteID, err := utils.ValidateToken(tokenString, chaveJWT)
		if err != nil {
			c.Header("WWW-Authenticate", "Bearer")
			utils.RespondError(c, http.StatusUnauthorized, utils.ErrTokenInvalid.Error())
			c.Abort()
			return
		}

		cliente, err := resolver.FindByID(c.Request.Context(), clienteID.String())
		if err != nil || cliente == nil {
			c.Header("WWW-Authenticate", "Bearer")
			utils.RespondError(c, http.StatusUnauthorized, utils.ErrTokenInvalid.Error())
			c.Abort()
			return
		}

		c.Set(ClienteContextKey, cliente)
		c.Next()
	}
}

// SelfOnlyMiddleware compares the authenticated cliente with the :id path
// parameter. A foreign or malformed id can never be the caller's own, so both
// are 403.
func SelfOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cliente := GetCliente(c)
		if cliente == nil {
			c.Header("WWW-Authenticate", "Bearer")
			utils.RespondError(c, http.StatusUnauthorized, utils.ErrTokenInvalid.Error())
			c.Abort()
			return
		}

		if c.Param("id") != cliente.ID.String() {
			utils.RespondError(c, http.StatusForbidden, utils.ErrForbidden.Error())
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetCliente(c *gin.Context) *db_models.Cliente {
	v, ok := c.Get(ClienteContextKey)
	if !ok {
		return nil
	}
	cliente, ok := v.(*db_models.Cliente)
	if !ok {
		return nil
	}
	return cliente
}
