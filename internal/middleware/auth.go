package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vinibarber/agenda-api/internal/auth"
	"github.com/vinibarber/agenda-api/internal/httperr"
)

const ContextProviderID = "providerID"

func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Token não fornecido.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Token não fornecido.")
			c.Abort()
			return
		}

		providerID, ok := tokens.Verify(parts[1])
		if !ok {
			httperr.Unauthorized(c, "invalid_token", "Token inválido.")
			c.Abort()
			return
		}

		c.Set(ContextProviderID, providerID)
		c.Next()
	}
}

// ProviderID lê o id do barbeiro autenticado colocado no contexto pelo
// AuthMiddleware.
func ProviderID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(ContextProviderID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
