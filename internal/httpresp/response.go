package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body é o envelope padrão de sucesso: {message, data?}.
type Body struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type ListBody[T any] struct {
	Message string `json:"message"`
	Data    []T    `json:"data"`
	Total   int    `json:"total"`
}

func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Body{Message: message, Data: data})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Body{Message: message, Data: data})
}

// List responde 200 com a lista e o total. Lista vazia é resposta válida,
// nunca 404.
func List[T any](c *gin.Context, message string, data []T) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, ListBody[T]{
		Message: message,
		Data:    data,
		Total:   len(data),
	})
}
