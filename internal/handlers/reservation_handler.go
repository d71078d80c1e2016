package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vinibarber/agenda-api/internal/httperr"
	"github.com/vinibarber/agenda-api/internal/httpresp"
	ucReservation "github.com/vinibarber/agenda-api/internal/usecase/reservation"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type ReservationHandler struct {
	createUC        *ucReservation.CreateReservation
	cancelUC        *ucReservation.CancelReservation
	cancelByEmailUC *ucReservation.CancelReservationByEmail
	getUC           *ucReservation.GetReservation
	listUC          *ucReservation.ListReservations
}

func NewReservationHandler(
	createUC *ucReservation.CreateReservation,
	cancelUC *ucReservation.CancelReservation,
	cancelByEmailUC *ucReservation.CancelReservationByEmail,
	getUC *ucReservation.GetReservation,
	listUC *ucReservation.ListReservations,
) *ReservationHandler {
	return &ReservationHandler{
		createUC:        createUC,
		cancelUC:        cancelUC,
		cancelByEmailUC: cancelByEmailUC,
		getUC:           getUC,
		listUC:          listUC,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type CreateReservationRequest struct {
	SlotID      uint   `json:"slot_id" binding:"required"`
	ClientName  string `json:"client_name" binding:"required"`
	ClientEmail string `json:"client_email" binding:"required,email"`
}

type CancelByEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

////////////////////////////////////////////////////////
// HANDLERS
////////////////////////////////////////////////////////

// Create é a reserva pública feita pelo cliente (POST /reserva).
func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Campos obrigatórios ausentes ou inválidos.")
		return
	}

	res, err := h.createUC.Execute(c.Request.Context(), ucReservation.CreateReservationInput{
		SlotID:      req.SlotID,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
	})
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.Created(c, "Reserva criada com sucesso.", res)
}

// Cancel é o cancelamento feito pelo barbeiro autenticado
// (DELETE /reserva/:id).
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	res, err := h.cancelUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.OK(c, "Reserva cancelada com sucesso.", res)
}

// CancelByEmail é o autocancelamento do cliente
// (POST /reserva/:id/cancelar), com a identidade provada pelo e-mail.
func (h *ReservationHandler) CancelByEmail(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	var req CancelByEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Campos obrigatórios ausentes ou inválidos.")
		return
	}

	res, err := h.cancelByEmailUC.Execute(c.Request.Context(), id, req.Email)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.OK(c, "Reserva cancelada com sucesso.", res)
}

func (h *ReservationHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	res, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.OK(c, "Reserva encontrada.", res)
}

func (h *ReservationHandler) List(c *gin.Context) {
	list, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.List(c, "Reservas encontradas.", list)
}
