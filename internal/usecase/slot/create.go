package slot

import (
	"context"
	"time"

	"github.com/vinibarber/agenda-api/internal/apperr"
	"github.com/vinibarber/agenda-api/internal/audit"
	"github.com/vinibarber/agenda-api/internal/cache"
	domain "github.com/vinibarber/agenda-api/internal/domain/slot"
	"github.com/vinibarber/agenda-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateSlotInput struct {
	ProviderID uint
	StartTime  time.Time
	Available  bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateSlot struct {
	repo  domain.Repository
	cache cache.Cache
	audit *audit.Dispatcher
}

func NewCreateSlot(
	repo domain.Repository,
	c cache.Cache,
	audit *audit.Dispatcher,
) *CreateSlot {
	return &CreateSlot{
		repo:  repo,
		cache: c,
		audit: audit,
	}
}

func (uc *CreateSlot) Execute(
	ctx context.Context,
	in CreateSlotInput,
) (*models.Slot, error) {

	if err := domain.ValidateStartTime(in.StartTime, time.Now()); err != nil {
		return nil, err
	}

	exists, err := uc.repo.ExistsAt(ctx, in.ProviderID, in.StartTime)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict(
			"slot_already_exists",
			"Já existe um horário cadastrado para este barbeiro nesta data/hora.",
		)
	}

	s := &models.Slot{
		ProviderID: in.ProviderID,
		StartTime:  in.StartTime,
		Available:  in.Available,
	}

	// O índice único (provider_id, start_time) segura a corrida entre o
	// ExistsAt e o insert.
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}

	_ = uc.cache.Invalidate(cache.AvailableSlotsKey(in.ProviderID))

	uc.audit.Dispatch(audit.Event{
		ProviderID: in.ProviderID,
		Action:     "slot_created",
		Entity:     "slot",
		EntityID:   &s.ID,
	})

	return s, nil
}
