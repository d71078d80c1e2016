package httperr

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vinibarber/agenda-api/internal/apperr"
	"github.com/vinibarber/agenda-api/internal/sl"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

// statusByKind é a tabela única de tradução Kind → status code.
var statusByKind = map[apperr.Kind]int{
	apperr.KindValidation:   http.StatusBadRequest,
	apperr.KindInvalidID:    http.StatusBadRequest,
	apperr.KindUnauthorized: http.StatusUnauthorized,
	apperr.KindForbidden:    http.StatusForbidden,
	apperr.KindNotFound:     http.StatusNotFound,
	apperr.KindConflict:     http.StatusConflict,
	apperr.KindInternal:     http.StatusInternalServerError,
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

// Handle traduz um erro de serviço para a resposta HTTP. Erros internos são
// logados com a causa; o cliente recebe só a mensagem genérica.
func Handle(c *gin.Context, err error) {
	ae := apperr.From(err)

	status, ok := statusByKind[ae.Kind]
	if !ok {
		status = http.StatusInternalServerError
	}

	if ae.Kind == apperr.KindInternal {
		slog.Error("unexpected error",
			slog.String("path", c.FullPath()),
			sl.Err(ae),
		)
	}

	Write(c, status, ae.Code, ae.Message)
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}
