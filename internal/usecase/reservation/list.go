package reservation

import (
	"context"

	domain "github.com/vinibarber/agenda-api/internal/domain/reservation"
	"github.com/vinibarber/agenda-api/internal/models"
)

type ListReservations struct {
	repo domain.Repository
}

func NewListReservations(repo domain.Repository) *ListReservations {
	return &ListReservations{repo: repo}
}

// Execute devolve todas as reservas com o horário associado embutido.
func (uc *ListReservations) Execute(ctx context.Context) ([]models.Reservation, error) {
	return uc.repo.ListAll(ctx)
}
