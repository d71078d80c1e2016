package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/vinibarber/agenda-api/internal/apperr"
	domain "github.com/vinibarber/agenda-api/internal/domain/slot"
	"github.com/vinibarber/agenda-api/internal/models"
)

type SlotGormRepository struct {
	db *gorm.DB
}

func NewSlotGormRepository(db *gorm.DB) *SlotGormRepository {
	return &SlotGormRepository{db: db}
}

// --------------------------------------------------
// CRUD
// --------------------------------------------------

func (r *SlotGormRepository) Create(ctx context.Context, s *models.Slot) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict(
				"slot_already_exists",
				"Já existe um horário cadastrado para este barbeiro nesta data/hora.",
			)
		}
		return err
	}
	return nil
}

func (r *SlotGormRepository) Save(ctx context.Context, s *models.Slot) error {
	if err := r.db.WithContext(ctx).Save(s).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict(
				"slot_already_exists",
				"Já existe um horário cadastrado para este barbeiro nesta data/hora.",
			)
		}
		return err
	}
	return nil
}

func (r *SlotGormRepository) Delete(ctx context.Context, s *models.Slot) error {
	return r.db.WithContext(ctx).Delete(s).Error
}

func (r *SlotGormRepository) GetByID(ctx context.Context, id uint) (*models.Slot, error) {
	var s models.Slot
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("slot_not_found", "Horário não encontrado.")
		}
		return nil, err
	}
	return &s, nil
}

func (r *SlotGormRepository) ListAll(ctx context.Context) ([]models.Slot, error) {
	var slots []models.Slot
	if err := r.db.WithContext(ctx).
		Order("start_time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *SlotGormRepository) ListAvailable(
	ctx context.Context,
	providerID uint,
	after time.Time,
) ([]models.Slot, error) {

	var slots []models.Slot
	if err := r.db.WithContext(ctx).
		Where(
			"provider_id = ? AND available = ? AND start_time > ?",
			providerID, true, after,
		).
		Order("start_time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *SlotGormRepository) ExistsAt(
	ctx context.Context,
	providerID uint,
	start time.Time,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Slot{}).
		Where("provider_id = ? AND start_time = ?", providerID, start).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Transições de disponibilidade (uso interno das reservas)
// --------------------------------------------------

// MarkUnavailable é um update condicional: só ocupa o horário se ele ainda
// estava livre. RowsAffected zero distingue "já ocupado" de "não existe".
func (r *SlotGormRepository) MarkUnavailable(ctx context.Context, slotID uint) error {
	res := r.db.WithContext(ctx).
		Model(&models.Slot{}).
		Where("id = ? AND available = ?", slotID, true).
		Update("available", false)

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&models.Slot{}).
			Where("id = ?", slotID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return apperr.NotFound("slot_not_found", "Horário não encontrado.")
		}
		return apperr.Conflict("slot_taken", "Este horário já está ocupado.")
	}

	return nil
}

func (r *SlotGormRepository) MarkAvailable(ctx context.Context, slotID uint) error {
	res := r.db.WithContext(ctx).
		Model(&models.Slot{}).
		Where("id = ?", slotID).
		Update("available", true)

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return apperr.NotFound("slot_not_found", "Horário não encontrado.")
	}

	return nil
}

// Compile-time check
var _ domain.Repository = (*SlotGormRepository)(nil)
