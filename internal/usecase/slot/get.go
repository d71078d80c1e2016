package slot

import (
	"context"

	domain "github.com/vinibarber/agenda-api/internal/domain/slot"
	"github.com/vinibarber/agenda-api/internal/models"
)

type GetSlot struct {
	repo domain.Repository
}

func NewGetSlot(repo domain.Repository) *GetSlot {
	return &GetSlot{repo: repo}
}

func (uc *GetSlot) Execute(ctx context.Context, slotID uint) (*models.Slot, error) {
	return uc.repo.GetByID(ctx, slotID)
}
