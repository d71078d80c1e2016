package routes

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vinibarber/agenda-api/internal/audit"
	"github.com/vinibarber/agenda-api/internal/auth"
	"github.com/vinibarber/agenda-api/internal/cache"
	"github.com/vinibarber/agenda-api/internal/config"
	"github.com/vinibarber/agenda-api/internal/handlers"
	infraRepo "github.com/vinibarber/agenda-api/internal/infra/repository"
	"github.com/vinibarber/agenda-api/internal/middleware"
	"github.com/vinibarber/agenda-api/internal/sl"
	ucReservation "github.com/vinibarber/agenda-api/internal/usecase/reservation"
	ucSlot "github.com/vinibarber/agenda-api/internal/usecase/slot"
	"github.com/vinibarber/agenda-api/internal/validators"
)

// Deps agrupa as dependências substituíveis do registro de rotas.
// Produção usa Register; os testes chamam RegisterWithDeps com cache Noop
// e validador de e-mail permissivo.
type Deps struct {
	Cache            cache.Cache
	EmailDomainValid func(string) bool
}

func Register(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	var c cache.Cache = cache.Noop{}

	if cfg.RedisAddr != "" {
		redisCache, err := cache.NewRedis(context.Background(), cfg.RedisAddr)
		if err != nil {
			// Sem Redis a API continua funcionando, só sem cache.
			slog.Warn("redis unavailable, running without cache", sl.Err(err))
		} else {
			c = redisCache
		}
	}

	RegisterWithDeps(r, db, cfg, Deps{
		Cache:            c,
		EmailDomainValid: validators.IsEmailDomainValid,
	})
}

func RegisterWithDeps(r *gin.Engine, db *gorm.DB, cfg *config.Config, deps Deps) {

	// ======================================================
	// 🔧 INFRA
	// ======================================================
	slotRepo := infraRepo.NewSlotGormRepository(db)
	reservationRepo := infraRepo.NewReservationGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	tokens := auth.NewTokenManager(cfg.JWTSecret)

	// ======================================================
	// 🧠 USE CASES — SLOTS
	// ======================================================
	createSlotUC := ucSlot.NewCreateSlot(slotRepo, deps.Cache, auditDispatcher)
	updateSlotUC := ucSlot.NewUpdateSlot(slotRepo, deps.Cache, auditDispatcher)
	deleteSlotUC := ucSlot.NewDeleteSlot(slotRepo, deps.Cache, auditDispatcher)
	getSlotUC := ucSlot.NewGetSlot(slotRepo)
	listSlotsUC := ucSlot.NewListSlots(slotRepo)
	listAvailableUC := ucSlot.NewListAvailableSlots(slotRepo, deps.Cache)

	// ======================================================
	// 🧠 USE CASES — RESERVATIONS
	// ======================================================
	createReservationUC := ucReservation.NewCreateReservation(
		reservationRepo,
		deps.Cache,
		auditDispatcher,
	)

	cancelReservationUC := ucReservation.NewCancelReservation(
		reservationRepo,
		deps.Cache,
		auditDispatcher,
	)

	cancelByEmailUC := ucReservation.NewCancelReservationByEmail(
		reservationRepo,
		cancelReservationUC,
	)

	getReservationUC := ucReservation.NewGetReservation(reservationRepo)
	listReservationsUC := ucReservation.NewListReservations(reservationRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, tokens, auditDispatcher, deps.EmailDomainValid)
	providerHandler := handlers.NewProviderHandler(db, auditDispatcher)

	slotHandler := handlers.NewSlotHandler(
		createSlotUC,
		updateSlotUC,
		deleteSlotUC,
		getSlotUC,
		listSlotsUC,
		listAvailableUC,
	)

	reservationHandler := handlers.NewReservationHandler(
		createReservationUC,
		cancelReservationUC,
		cancelByEmailUC,
		getReservationUC,
		listReservationsUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 ROTAS
	// ======================================================

	// ------------------------------
	// Públicas
	// ------------------------------
	r.POST("/user", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.GET("/user/:id", providerHandler.GetByID)
	r.GET("/barbeiro/:slug", providerHandler.GetBySlug)

	r.GET("/horarios/disponiveis/:id", slotHandler.ListAvailable)

	r.POST("/reserva", reservationHandler.Create)
	r.POST("/reserva/:id/cancelar", reservationHandler.CancelByEmail)

	// ------------------------------
	// Autenticadas (bearer)
	// ------------------------------
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(tokens))
	{
		secured.PUT("/user/:id", providerHandler.Update)
		secured.GET("/user", providerHandler.List)
		secured.DELETE("/user/:id", providerHandler.Delete)

		secured.POST("/horario", slotHandler.Create)
		secured.PUT("/horario/:id", slotHandler.Update)
		secured.DELETE("/horario/:id", slotHandler.Delete)
		secured.GET("/horario/:id", slotHandler.GetByID)
		secured.GET("/horarios", slotHandler.List)

		secured.DELETE("/reserva/:id", reservationHandler.Cancel)
		secured.GET("/reservas", reservationHandler.List)
		secured.GET("/reserva/:id", reservationHandler.GetByID)

		secured.GET("/auditoria", auditLogsHandler.List)
	}
}
