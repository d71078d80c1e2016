package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-Id"

// RequestID garante que toda resposta carrega um id de requisição,
// reaproveitando o do cliente quando vier no header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(HeaderRequestID, id)
		c.Writer.Header().Set(HeaderRequestID, id)

		c.Next()
	}
}
