package reservation

import (
	"context"

	"github.com/vinibarber/agenda-api/internal/models"
)

type Repository interface {
	// -------- Slot (leituras de pré-condição) --------
	GetSlot(ctx context.Context, slotID uint) (*models.Slot, error)

	GetBySlotID(ctx context.Context, slotID uint) (*models.Reservation, error)

	// -------- Reservation (transições acopladas ao Slot) --------

	// CreateClaiming cria a reserva e ocupa o horário numa única transação.
	// Se qualquer passo falhar, nada persiste: não existe estado com horário
	// ocupado e reserva ausente.
	CreateClaiming(ctx context.Context, r *models.Reservation) error

	// DeleteReleasing apaga a reserva e libera o horário numa única transação.
	DeleteReleasing(ctx context.Context, r *models.Reservation) error

	GetByID(ctx context.Context, id uint) (*models.Reservation, error)
	ListAll(ctx context.Context) ([]models.Reservation, error)
}
