package reservation

import (
	"context"
	"time"

	"github.com/vinibarber/agenda-api/internal/apperr"
	"github.com/vinibarber/agenda-api/internal/audit"
	"github.com/vinibarber/agenda-api/internal/cache"
	domain "github.com/vinibarber/agenda-api/internal/domain/reservation"
	"github.com/vinibarber/agenda-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	SlotID      uint
	ClientName  string
	ClientEmail string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo  domain.Repository
	cache cache.Cache
	audit *audit.Dispatcher
}

func NewCreateReservation(
	repo domain.Repository,
	c cache.Cache,
	audit *audit.Dispatcher,
) *CreateReservation {
	return &CreateReservation{
		repo:  repo,
		cache: c,
		audit: audit,
	}
}

// Execute reserva um horário para um cliente. As pré-condições são checadas
// aqui; a ocupação do horário e o insert da reserva acontecem numa única
// transação no repositório, com o update condicional do flag e o índice
// único em slot_id fechando a corrida entre duas reservas simultâneas.
func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	// --------------------------------------------------
	// 1️⃣ Horário existe?
	// --------------------------------------------------
	s, err := uc.repo.GetSlot(ctx, in.SlotID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Ainda livre?
	// --------------------------------------------------
	if !s.Available {
		return nil, apperr.Conflict(
			"slot_already_reserved",
			"Este horário já está reservado.",
		)
	}

	// --------------------------------------------------
	// 3️⃣ Ainda no futuro?
	// --------------------------------------------------
	if s.StartTime.Before(time.Now()) {
		return nil, apperr.Validation(
			"slot_in_past",
			"Não é possível reservar um horário no passado.",
		)
	}

	// --------------------------------------------------
	// 4️⃣ Sem reserva anterior sobre o mesmo horário
	// --------------------------------------------------
	if _, err := uc.repo.GetBySlotID(ctx, in.SlotID); err == nil {
		return nil, apperr.Conflict(
			"slot_already_reserved",
			"Este horário já está reservado.",
		)
	} else if !apperr.Is(err, apperr.KindNotFound) {
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Ocupa + insere (transacional)
	// --------------------------------------------------
	res := &models.Reservation{
		SlotID:      in.SlotID,
		ClientName:  in.ClientName,
		ClientEmail: in.ClientEmail,
	}

	if err := uc.repo.CreateClaiming(ctx, res); err != nil {
		return nil, err
	}

	// Snapshot do horário na resposta, já com o flag ocupado.
	s.Available = false
	res.Slot = *s

	_ = uc.cache.Invalidate(cache.AvailableSlotsKey(s.ProviderID))

	uc.audit.Dispatch(audit.Event{
		ProviderID: s.ProviderID,
		Action:     "reservation_created",
		Entity:     "reservation",
		EntityID:   &res.ID,
		Metadata:   map[string]any{"client_email": in.ClientEmail},
	})

	return res, nil
}
