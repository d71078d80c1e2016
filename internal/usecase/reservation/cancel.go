package reservation

import (
	"context"

	"github.com/vinibarber/agenda-api/internal/audit"
	"github.com/vinibarber/agenda-api/internal/cache"
	domain "github.com/vinibarber/agenda-api/internal/domain/reservation"
	"github.com/vinibarber/agenda-api/internal/models"
)

type CancelReservation struct {
	repo  domain.Repository
	cache cache.Cache
	audit *audit.Dispatcher
}

func NewCancelReservation(
	repo domain.Repository,
	c cache.Cache,
	audit *audit.Dispatcher,
) *CancelReservation {
	return &CancelReservation{
		repo:  repo,
		cache: c,
		audit: audit,
	}
}

// Execute cancela a reserva e devolve o horário ao estado livre, na mesma
// transação. A representação da reserva removida volta na resposta.
func (uc *CancelReservation) Execute(
	ctx context.Context,
	reservationID uint,
) (*models.Reservation, error) {

	res, err := uc.repo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.DeleteReleasing(ctx, res); err != nil {
		return nil, err
	}

	res.Slot.Available = true

	_ = uc.cache.Invalidate(cache.AvailableSlotsKey(res.Slot.ProviderID))

	uc.audit.Dispatch(audit.Event{
		ProviderID: res.Slot.ProviderID,
		Action:     "reservation_cancelled",
		Entity:     "reservation",
		EntityID:   &res.ID,
	})

	return res, nil
}
