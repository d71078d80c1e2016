package slot

import (
	"context"
	"log/slog"
	"time"

	"github.com/vinibarber/agenda-api/internal/cache"
	domain "github.com/vinibarber/agenda-api/internal/domain/slot"
	"github.com/vinibarber/agenda-api/internal/models"
	"github.com/vinibarber/agenda-api/internal/sl"
)

// ListAvailableSlots alimenta a página pública de reserva: horários livres e
// futuros de um barbeiro, ordenados. Passa pelo cache porque é de longe a
// consulta mais chamada.
type ListAvailableSlots struct {
	repo  domain.Repository
	cache cache.Cache
}

func NewListAvailableSlots(repo domain.Repository, c cache.Cache) *ListAvailableSlots {
	return &ListAvailableSlots{repo: repo, cache: c}
}

func (uc *ListAvailableSlots) Execute(
	ctx context.Context,
	providerID uint,
) ([]models.Slot, error) {

	key := cache.AvailableSlotsKey(providerID)

	var cached []models.Slot
	hit, err := uc.cache.Get(key, &cached)
	if err != nil {
		// Cache indisponível não derruba a listagem.
		slog.Warn("available slots cache read failed", sl.Err(err))
	}
	if hit {
		return cached, nil
	}

	slots, err := uc.repo.ListAvailable(ctx, providerID, time.Now())
	if err != nil {
		return nil, err
	}

	if err := uc.cache.Set(key, slots, cache.AvailableSlotsTTL); err != nil {
		slog.Warn("available slots cache write failed", sl.Err(err))
	}

	return slots, nil
}
