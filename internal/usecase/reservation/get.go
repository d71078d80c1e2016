package reservation

import (
	"context"

	domain "github.com/vinibarber/agenda-api/internal/domain/reservation"
	"github.com/vinibarber/agenda-api/internal/models"
)

type GetReservation struct {
	repo domain.Repository
}

func NewGetReservation(repo domain.Repository) *GetReservation {
	return &GetReservation{repo: repo}
}

func (uc *GetReservation) Execute(
	ctx context.Context,
	reservationID uint,
) (*models.Reservation, error) {
	return uc.repo.GetByID(ctx, reservationID)
}
