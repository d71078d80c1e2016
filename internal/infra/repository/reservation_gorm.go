package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/vinibarber/agenda-api/internal/apperr"
	domain "github.com/vinibarber/agenda-api/internal/domain/reservation"
	"github.com/vinibarber/agenda-api/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// --------------------------------------------------
// Slot
// --------------------------------------------------

func (r *ReservationGormRepository) GetSlot(
	ctx context.Context,
	slotID uint,
) (*models.Slot, error) {

	var s models.Slot
	if err := r.db.WithContext(ctx).First(&s, slotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("slot_not_found", "Horário não encontrado.")
		}
		return nil, err
	}
	return &s, nil
}

func (r *ReservationGormRepository) GetBySlotID(
	ctx context.Context,
	slotID uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Where("slot_id = ?", slotID).
		First(&res).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("reservation_not_found", "Reserva não encontrada.")
		}
		return nil, err
	}
	return &res, nil
}

// --------------------------------------------------
// Transições acopladas reserva ↔ horário
// --------------------------------------------------

// CreateClaiming ocupa o horário e insere a reserva numa única transação.
// O update condicional do flag e o índice único em slot_id garantem que duas
// reservas concorrentes no mesmo horário nunca passam as duas.
func (r *ReservationGormRepository) CreateClaiming(
	ctx context.Context,
	res *models.Reservation,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := NewSlotGormRepository(tx).MarkUnavailable(ctx, res.SlotID); err != nil {
			return err
		}

		if err := tx.Create(res).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.Conflict(
					"slot_already_reserved",
					"Este horário já está reservado.",
				)
			}
			return err
		}

		return nil
	})
}

// DeleteReleasing libera o horário e apaga a reserva numa única transação.
func (r *ReservationGormRepository) DeleteReleasing(
	ctx context.Context,
	res *models.Reservation,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if res.SlotID != 0 {
			if err := NewSlotGormRepository(tx).MarkAvailable(ctx, res.SlotID); err != nil {
				return err
			}
		}

		return tx.Delete(&models.Reservation{}, res.ID).Error
	})
}

// --------------------------------------------------
// Leituras
// --------------------------------------------------

func (r *ReservationGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Slot").
		First(&res, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("reservation_not_found", "Reserva não encontrada.")
		}
		return nil, err
	}
	return &res, nil
}

func (r *ReservationGormRepository) ListAll(ctx context.Context) ([]models.Reservation, error) {
	var list []models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Slot").
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
