package slot

import (
	"context"
	"time"

	"github.com/vinibarber/agenda-api/internal/audit"
	"github.com/vinibarber/agenda-api/internal/cache"
	domain "github.com/vinibarber/agenda-api/internal/domain/slot"
	"github.com/vinibarber/agenda-api/internal/models"
)

// UpdateSlotInput é parcial: campo nil mantém o valor atual.
type UpdateSlotInput struct {
	StartTime *time.Time
	Available *bool
}

type UpdateSlot struct {
	repo  domain.Repository
	cache cache.Cache
	audit *audit.Dispatcher
}

func NewUpdateSlot(
	repo domain.Repository,
	c cache.Cache,
	audit *audit.Dispatcher,
) *UpdateSlot {
	return &UpdateSlot{
		repo:  repo,
		cache: c,
		audit: audit,
	}
}

func (uc *UpdateSlot) Execute(
	ctx context.Context,
	slotID uint,
	in UpdateSlotInput,
) (*models.Slot, error) {

	s, err := uc.repo.GetByID(ctx, slotID)
	if err != nil {
		return nil, err
	}

	if in.StartTime != nil {
		if err := domain.ValidateStartTime(*in.StartTime, time.Now()); err != nil {
			return nil, err
		}
		s.StartTime = *in.StartTime
	}

	if in.Available != nil {
		s.Available = *in.Available
	}

	if err := uc.repo.Save(ctx, s); err != nil {
		return nil, err
	}

	_ = uc.cache.Invalidate(cache.AvailableSlotsKey(s.ProviderID))

	uc.audit.Dispatch(audit.Event{
		ProviderID: s.ProviderID,
		Action:     "slot_updated",
		Entity:     "slot",
		EntityID:   &s.ID,
	})

	return s, nil
}
