package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vinibarber/agenda-api/internal/apperr"
	"github.com/vinibarber/agenda-api/internal/audit"
	"github.com/vinibarber/agenda-api/internal/cache"
	"github.com/vinibarber/agenda-api/internal/db"
	infraRepo "github.com/vinibarber/agenda-api/internal/infra/repository"
	"github.com/vinibarber/agenda-api/internal/models"
)

type fixture struct {
	db       *gorm.DB
	provider models.Provider

	create        *CreateReservation
	cancel        *CancelReservation
	cancelByEmail *CancelReservationByEmail
	get           *GetReservation
	list          *ListReservations
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	gdb := db.OpenTest(t)

	provider := models.Provider{
		Name:         "Vini",
		Email:        "vini@barber.dev",
		PasswordHash: "x",
		Slug:         "vini-barber",
	}
	require.NoError(t, gdb.Create(&provider).Error)

	repo := infraRepo.NewReservationGormRepository(gdb)
	dispatcher := audit.NewDispatcher(audit.New(gdb))
	noop := cache.Noop{}

	cancel := NewCancelReservation(repo, noop, dispatcher)

	return &fixture{
		db:            gdb,
		provider:      provider,
		create:        NewCreateReservation(repo, noop, dispatcher),
		cancel:        cancel,
		cancelByEmail: NewCancelReservationByEmail(repo, cancel),
		get:           NewGetReservation(repo),
		list:          NewListReservations(repo),
	}
}

func (f *fixture) newSlot(t *testing.T, start time.Time, available bool) models.Slot {
	t.Helper()

	s := models.Slot{
		ProviderID: f.provider.ID,
		StartTime:  start,
		Available:  available,
	}
	require.NoError(t, f.db.Create(&s).Error)
	return s
}

func (f *fixture) slotByID(t *testing.T, id uint) models.Slot {
	t.Helper()

	var s models.Slot
	require.NoError(t, f.db.First(&s, id).Error)
	return s
}

func TestCreateReservation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	s := f.newSlot(t, time.Now().Add(time.Hour), true)

	res, err := f.create.Execute(ctx, CreateReservationInput{
		SlotID:      s.ID,
		ClientName:  "Ana",
		ClientEmail: "a@x.com",
	})
	require.NoError(t, err)
	assert.NotZero(t, res.ID)
	assert.Equal(t, s.ID, res.Slot.ID)
	assert.False(t, res.Slot.Available)

	// O horário fica ocupado no banco.
	assert.False(t, f.slotByID(t, s.ID).Available)
}

func TestCreateReservation_SlotNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.create.Execute(context.Background(), CreateReservationInput{
		SlotID:      9999,
		ClientName:  "Ana",
		ClientEmail: "a@x.com",
	})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestCreateReservation_SlotUnavailable(t *testing.T) {
	f := newFixture(t)

	s := f.newSlot(t, time.Now().Add(time.Hour), false)

	_, err := f.create.Execute(context.Background(), CreateReservationInput{
		SlotID:      s.ID,
		ClientName:  "Ana",
		ClientEmail: "a@x.com",
	})
	assert.True(t, apperr.Is(err, apperr.KindConflict))
}

func TestCreateReservation_SlotInPast(t *testing.T) {
	f := newFixture(t)

	s := f.newSlot(t, time.Now().Add(-time.Hour), true)

	_, err := f.create.Execute(context.Background(), CreateReservationInput{
		SlotID:      s.ID,
		ClientName:  "Ana",
		ClientEmail: "a@x.com",
	})
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestCreateReservation_DoubleBooking(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	s := f.newSlot(t, time.Now().Add(time.Hour), true)

	_, err := f.create.Execute(ctx, CreateReservationInput{
		SlotID:      s.ID,
		ClientName:  "Ana",
		ClientEmail: "a@x.com",
	})
	require.NoError(t, err)

	_, err = f.create.Execute(ctx, CreateReservationInput{
		SlotID:      s.ID,
		ClientName:  "Bia",
		ClientEmail: "b@x.com",
	})
	assert.True(t, apperr.Is(err, apperr.KindConflict))
}

func TestCancelReservation_ReleasesSlot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	s := f.newSlot(t, time.Now().Add(time.Hour), true)

	res, err := f.create.Execute(ctx, CreateReservationInput{
		SlotID:      s.ID,
		ClientName:  "Ana",
		ClientEmail: "a@x.com",
	})
	require.NoError(t, err)

	cancelled, err := f.cancel.Execute(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, res.ID, cancelled.ID)

	// Horário liberado e reserva removida.
	assert.True(t, f.slotByID(t, s.ID).Available)

	_, err = f.get.Execute(ctx, res.ID)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestCancelReservation_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.cancel.Execute(context.Background(), 9999)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestCancelByEmail_WrongEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	s := f.newSlot(t, time.Now().Add(time.Hour), true)

	res, err := f.create.Execute(ctx, CreateReservationInput{
		SlotID:      s.ID,
		ClientName:  "Ana",
		ClientEmail: "a@x.com",
	})
	require.NoError(t, err)

	_, err = f.cancelByEmail.Execute(ctx, res.ID, "intrusa@x.com")
	assert.True(t, apperr.Is(err, apperr.KindForbidden))

	// A reserva continua existindo.
	_, err = f.get.Execute(ctx, res.ID)
	require.NoError(t, err)
}

func TestCancelByEmail_MatchingEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	s := f.newSlot(t, time.Now().Add(time.Hour), true)

	res, err := f.create.Execute(ctx, CreateReservationInput{
		SlotID:      s.ID,
		ClientName:  "Ana",
		ClientEmail: "a@x.com",
	})
	require.NoError(t, err)

	_, err = f.cancelByEmail.Execute(ctx, res.ID, "a@x.com")
	require.NoError(t, err)

	assert.True(t, f.slotByID(t, s.ID).Available)
}

// O ciclo completo: reservar, cancelar e reservar de novo o mesmo horário.
func TestReservationRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	s := f.newSlot(t, time.Now().Add(time.Hour), true)

	first, err := f.create.Execute(ctx, CreateReservationInput{
		SlotID:      s.ID,
		ClientName:  "Ana",
		ClientEmail: "a@x.com",
	})
	require.NoError(t, err)
	assert.False(t, f.slotByID(t, s.ID).Available)

	_, err = f.cancel.Execute(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, f.slotByID(t, s.ID).Available)

	second, err := f.create.Execute(ctx, CreateReservationInput{
		SlotID:      s.ID,
		ClientName:  "Bia",
		ClientEmail: "b@x.com",
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, f.slotByID(t, s.ID).Available)
}

func TestListReservations_IncludesSlot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	s := f.newSlot(t, time.Now().Add(time.Hour), true)

	_, err := f.create.Execute(ctx, CreateReservationInput{
		SlotID:      s.ID,
		ClientName:  "Ana",
		ClientEmail: "a@x.com",
	})
	require.NoError(t, err)

	list, err := f.list.Execute(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, s.ID, list[0].Slot.ID)
}
