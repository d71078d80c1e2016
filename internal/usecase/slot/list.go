package slot

import (
	"context"

	domain "github.com/vinibarber/agenda-api/internal/domain/slot"
	"github.com/vinibarber/agenda-api/internal/models"
)

type ListSlots struct {
	repo domain.Repository
}

func NewListSlots(repo domain.Repository) *ListSlots {
	return &ListSlots{repo: repo}
}

// Execute devolve todos os horários. Lista vazia é resultado válido; quem
// decide a forma da resposta é a camada HTTP.
func (uc *ListSlots) Execute(ctx context.Context) ([]models.Slot, error) {
	return uc.repo.ListAll(ctx)
}
