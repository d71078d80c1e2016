package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/vinibarber/agenda-api/internal/apperr"
	"github.com/vinibarber/agenda-api/internal/audit"
	"github.com/vinibarber/agenda-api/internal/httperr"
	"github.com/vinibarber/agenda-api/internal/httpresp"
	"github.com/vinibarber/agenda-api/internal/models"
)

type ProviderHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewProviderHandler(db *gorm.DB, audit *audit.Dispatcher) *ProviderHandler {
	return &ProviderHandler{db: db, audit: audit}
}

// UpdateProviderRequest é parcial: só os campos enviados são alterados.
type UpdateProviderRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Slug     *string `json:"slug"`
}

// Update altera o perfil (PUT /user/:id). A autenticação é exigida na rota,
// mas o id alterado é o do path: qualquer barbeiro autenticado consegue
// editar o perfil de outro. Comportamento herdado, coberto por teste.
func (h *ProviderHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	var provider models.Provider
	if err := h.db.First(&provider, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "provider_not_found", "Usuário não encontrado.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno do servidor.")
		return
	}

	var req UpdateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	if req.Name != nil {
		provider.Name = *req.Name
	}
	if req.Email != nil {
		provider.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Slug != nil {
		provider.Slug = strings.ToLower(strings.TrimSpace(*req.Slug))
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "failed_to_hash_password", "Erro ao atualizar usuário.")
			return
		}
		provider.PasswordHash = string(hashed)
	}

	if err := h.db.Save(&provider).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Handle(c, apperr.Conflict("provider_already_exists", "E-mail ou slug já cadastrado."))
			return
		}
		httperr.Internal(c, "failed_to_update_provider", "Erro ao atualizar usuário.")
		return
	}

	httpresp.OK(c, "Usuário atualizado com sucesso.", provider)
}

// List devolve todos os barbeiros cadastrados (sem paginação).
func (h *ProviderHandler) List(c *gin.Context) {
	var providers []models.Provider
	if err := h.db.Order("id ASC").Find(&providers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_providers", "Erro ao listar usuários.")
		return
	}

	httpresp.List(c, "Usuários encontrados.", providers)
}

func (h *ProviderHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	var provider models.Provider
	if err := h.db.First(&provider, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "provider_not_found", "Usuário não encontrado.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno do servidor.")
		return
	}

	httpresp.OK(c, "Usuário encontrado.", provider)
}

// GetBySlug é a busca pública usada pela página de reserva
// (GET /barbeiro/:slug).
func (h *ProviderHandler) GetBySlug(c *gin.Context) {
	slug := strings.ToLower(strings.TrimSpace(c.Param("slug")))

	var provider models.Provider
	if err := h.db.Where("slug = ?", slug).First(&provider).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "provider_not_found", "Barbeiro não encontrado.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno do servidor.")
		return
	}

	httpresp.OK(c, "Barbeiro encontrado.", provider)
}

// Delete remove a conta. Horários e reservas do barbeiro caem junto, via
// cascade do banco.
func (h *ProviderHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	var provider models.Provider
	if err := h.db.First(&provider, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "provider_not_found", "Usuário não encontrado.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno do servidor.")
		return
	}

	if err := h.db.Delete(&provider).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_provider", "Erro ao deletar usuário.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ProviderID: provider.ID,
		Action:     "provider_deleted",
		Entity:     "provider",
		EntityID:   &provider.ID,
	})

	httpresp.OK(c, "Usuário deletado com sucesso.", provider)
}
