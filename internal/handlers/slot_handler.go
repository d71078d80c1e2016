package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vinibarber/agenda-api/internal/httperr"
	"github.com/vinibarber/agenda-api/internal/httpresp"
	"github.com/vinibarber/agenda-api/internal/middleware"
	ucSlot "github.com/vinibarber/agenda-api/internal/usecase/slot"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type SlotHandler struct {
	createUC        *ucSlot.CreateSlot
	updateUC        *ucSlot.UpdateSlot
	deleteUC        *ucSlot.DeleteSlot
	getUC           *ucSlot.GetSlot
	listUC          *ucSlot.ListSlots
	listAvailableUC *ucSlot.ListAvailableSlots
}

func NewSlotHandler(
	createUC *ucSlot.CreateSlot,
	updateUC *ucSlot.UpdateSlot,
	deleteUC *ucSlot.DeleteSlot,
	getUC *ucSlot.GetSlot,
	listUC *ucSlot.ListSlots,
	listAvailableUC *ucSlot.ListAvailableSlots,
) *SlotHandler {
	return &SlotHandler{
		createUC:        createUC,
		updateUC:        updateUC,
		deleteUC:        deleteUC,
		getUC:           getUC,
		listUC:          listUC,
		listAvailableUC: listAvailableUC,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type CreateSlotRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	Available *bool     `json:"available" binding:"required"`
}

type UpdateSlotRequest struct {
	StartTime *time.Time `json:"start_time"`
	Available *bool      `json:"available"`
}

////////////////////////////////////////////////////////
// HANDLERS
////////////////////////////////////////////////////////

// Create cadastra um horário para o barbeiro autenticado (POST /horario).
// O dono vem do token, nunca do body.
func (h *SlotHandler) Create(c *gin.Context) {
	providerID, ok := middleware.ProviderID(c)
	if !ok {
		httperr.Unauthorized(c, "provider_not_in_context", "Token inválido.")
		return
	}

	var req CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Campos obrigatórios ausentes ou inválidos.")
		return
	}

	s, err := h.createUC.Execute(c.Request.Context(), ucSlot.CreateSlotInput{
		ProviderID: providerID,
		StartTime:  req.StartTime,
		Available:  *req.Available,
	})
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.Created(c, "Horário criado com sucesso.", s)
}

func (h *SlotHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	var req UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	s, err := h.updateUC.Execute(c.Request.Context(), id, ucSlot.UpdateSlotInput{
		StartTime: req.StartTime,
		Available: req.Available,
	})
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.OK(c, "Horário atualizado com sucesso.", s)
}

func (h *SlotHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	s, err := h.deleteUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.OK(c, "Horário deletado com sucesso.", s)
}

func (h *SlotHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	s, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.OK(c, "Horário encontrado.", s)
}

func (h *SlotHandler) List(c *gin.Context) {
	slots, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.List(c, "Horários encontrados.", slots)
}

// ListAvailable é a rota pública da página de reserva
// (GET /horarios/disponiveis/:id, onde :id é o barbeiro).
func (h *SlotHandler) ListAvailable(c *gin.Context) {
	providerID, err := parseIDParam(c, "id")
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	slots, err := h.listAvailableUC.Execute(c.Request.Context(), providerID)
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	httpresp.List(c, "Horários disponíveis.", slots)
}
