package slot

import (
	"context"

	"github.com/vinibarber/agenda-api/internal/audit"
	"github.com/vinibarber/agenda-api/internal/cache"
	domain "github.com/vinibarber/agenda-api/internal/domain/slot"
	"github.com/vinibarber/agenda-api/internal/models"
)

type DeleteSlot struct {
	repo  domain.Repository
	cache cache.Cache
	audit *audit.Dispatcher
}

func NewDeleteSlot(
	repo domain.Repository,
	c cache.Cache,
	audit *audit.Dispatcher,
) *DeleteSlot {
	return &DeleteSlot{
		repo:  repo,
		cache: c,
		audit: audit,
	}
}

// Execute devolve a representação do horário removido, como o front espera.
func (uc *DeleteSlot) Execute(ctx context.Context, slotID uint) (*models.Slot, error) {
	s, err := uc.repo.GetByID(ctx, slotID)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Delete(ctx, s); err != nil {
		return nil, err
	}

	_ = uc.cache.Invalidate(cache.AvailableSlotsKey(s.ProviderID))

	uc.audit.Dispatch(audit.Event{
		ProviderID: s.ProviderID,
		Action:     "slot_deleted",
		Entity:     "slot",
		EntityID:   &s.ID,
	})

	return s, nil
}
