package reservation

import (
	"context"

	"github.com/vinibarber/agenda-api/internal/apperr"
	domain "github.com/vinibarber/agenda-api/internal/domain/reservation"
	"github.com/vinibarber/agenda-api/internal/models"
)

// CancelReservationByEmail é o autocancelamento do cliente: a identidade é
// provada pelo e-mail informado na reserva, não por token.
type CancelReservationByEmail struct {
	repo   domain.Repository
	cancel *CancelReservation
}

func NewCancelReservationByEmail(
	repo domain.Repository,
	cancel *CancelReservation,
) *CancelReservationByEmail {
	return &CancelReservationByEmail{
		repo:   repo,
		cancel: cancel,
	}
}

func (uc *CancelReservationByEmail) Execute(
	ctx context.Context,
	reservationID uint,
	claimedEmail string,
) (*models.Reservation, error) {

	res, err := uc.repo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if res.ClientEmail != claimedEmail {
		return nil, apperr.Forbidden(
			"reservation_forbidden",
			"Você não tem permissão para cancelar esta reserva.",
		)
	}

	return uc.cancel.Execute(ctx, reservationID)
}
