package slot

import (
	"context"
	"time"

	"github.com/vinibarber/agenda-api/internal/models"
)

type Repository interface {
	Create(ctx context.Context, s *models.Slot) error
	Save(ctx context.Context, s *models.Slot) error
	Delete(ctx context.Context, s *models.Slot) error

	GetByID(ctx context.Context, id uint) (*models.Slot, error)
	ListAll(ctx context.Context) ([]models.Slot, error)

	// ListAvailable devolve os horários livres e futuros de um barbeiro,
	// em ordem crescente de data/hora.
	ListAvailable(
		ctx context.Context,
		providerID uint,
		after time.Time,
	) ([]models.Slot, error)

	ExistsAt(
		ctx context.Context,
		providerID uint,
		start time.Time,
	) (bool, error)

	// MarkUnavailable ocupa o horário de forma condicional: falha com
	// Conflict se o flag já estava false. Uso interno das reservas.
	MarkUnavailable(ctx context.Context, slotID uint) error

	// MarkAvailable libera o horário. Idempotente.
	MarkAvailable(ctx context.Context, slotID uint) error
}
