package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vinibarber/agenda-api/internal/apperr"
)

// parseIDParam converte o :id numérico da rota. Id não numérico vira 400
// tipado, nunca chega ao serviço.
func parseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.InvalidID("Id inválido.")
	}

	return uint(id), nil
}
