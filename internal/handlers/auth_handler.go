package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/vinibarber/agenda-api/internal/apperr"
	"github.com/vinibarber/agenda-api/internal/audit"
	"github.com/vinibarber/agenda-api/internal/auth"
	"github.com/vinibarber/agenda-api/internal/httperr"
	"github.com/vinibarber/agenda-api/internal/httpresp"
	"github.com/vinibarber/agenda-api/internal/models"
)

type AuthHandler struct {
	db     *gorm.DB
	tokens *auth.TokenManager
	audit  *audit.Dispatcher

	// emailDomainValid é injetado para o cadastro não depender de DNS
	// nos testes.
	emailDomainValid func(string) bool
}

func NewAuthHandler(
	db *gorm.DB,
	tokens *auth.TokenManager,
	audit *audit.Dispatcher,
	emailDomainValid func(string) bool,
) *AuthHandler {
	return &AuthHandler{
		db:               db,
		tokens:           tokens,
		audit:            audit,
		emailDomainValid: emailDomainValid,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Slug     string `json:"slug" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// Register é o cadastro público do barbeiro (POST /user).
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Campos obrigatórios ausentes ou inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	slug := strings.ToLower(strings.TrimSpace(req.Slug))

	if !h.emailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
		return
	}

	var count int64
	h.db.Model(&models.Provider{}).
		Where("email = ? OR slug = ?", email, slug).
		Count(&count)
	if count > 0 {
		httperr.Handle(c, apperr.Conflict("provider_already_exists", "E-mail ou slug já cadastrado."))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao criar usuário.")
		return
	}

	provider := models.Provider{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Slug:         slug,
	}

	if err := h.db.Create(&provider).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Handle(c, apperr.Conflict("provider_already_exists", "E-mail ou slug já cadastrado."))
			return
		}
		httperr.Internal(c, "failed_to_create_provider", "Erro ao criar usuário.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ProviderID: provider.ID,
		Action:     "provider_registered",
		Entity:     "provider",
		EntityID:   &provider.ID,
	})

	httpresp.Created(c, "Usuário criado com sucesso.", provider)
}

// Login autentica por e-mail e senha e devolve o token com o perfil público.
// E-mail desconhecido e senha errada caem no mesmo erro, sem revelar qual
// das duas checagens falhou.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Campos obrigatórios ausentes ou inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var provider models.Provider
	if err := h.db.Where("email = ?", email).First(&provider).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno do servidor.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(provider.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas.")
		return
	}

	token, err := h.tokens.Issue(provider.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	httpresp.OK(c, "Login realizado com sucesso.", gin.H{
		"usuario": gin.H{
			"id":    provider.ID,
			"name":  provider.Name,
			"email": provider.Email,
			"slug":  provider.Slug,
		},
		"token": token,
	})
}
