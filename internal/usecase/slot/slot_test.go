package slot

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

	create        *CreateSlot
	update        *UpdateSlot
	delete        *DeleteSlot
	get           *GetSlot
	list          *ListSlots
	listAvailable *ListAvailableSlots
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

	repo := infraRepo.NewSlotGormRepository(gdb)
	dispatcher := audit.NewDispatcher(audit.New(gdb))
	noop := cache.Noop{}

	return &fixture{
		db:            gdb,
		provider:      provider,
		create:        NewCreateSlot(repo, noop, dispatcher),
		update:        NewUpdateSlot(repo, noop, dispatcher),
		delete:        NewDeleteSlot(repo, noop, dispatcher),
		get:           NewGetSlot(repo),
		list:          NewListSlots(repo),
		listAvailable: NewListAvailableSlots(repo, noop),
	}
}

func TestCreateSlot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	start := time.Now().Add(time.Hour).Truncate(time.Second)

	s, err := f.create.Execute(ctx, CreateSlotInput{
		ProviderID: f.provider.ID,
		StartTime:  start,
		Available:  true,
	})
	require.NoError(t, err)
	assert.NotZero(t, s.ID)
	assert.True(t, s.Available)
}

func TestCreateSlot_InPast(t *testing.T) {
	f := newFixture(t)

	_, err := f.create.Execute(context.Background(), CreateSlotInput{
		ProviderID: f.provider.ID,
		StartTime:  time.Now().Add(-time.Minute),
		Available:  true,
	})
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestCreateSlot_DuplicateStartTime(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	start := time.Now().Add(time.Hour).Truncate(time.Second)

	in := CreateSlotInput{ProviderID: f.provider.ID, StartTime: start, Available: true}

	_, err := f.create.Execute(ctx, in)
	require.NoError(t, err)

	_, err = f.create.Execute(ctx, in)
	assert.True(t, apperr.Is(err, apperr.KindConflict))
}

func TestUpdateSlot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	s, err := f.create.Execute(ctx, CreateSlotInput{
		ProviderID: f.provider.ID,
		StartTime:  time.Now().Add(time.Hour).Truncate(time.Second),
		Available:  true,
	})
	require.NoError(t, err)

	newStart := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	unavailable := false

	updated, err := f.update.Execute(ctx, s.ID, UpdateSlotInput{
		StartTime: &newStart,
		Available: &unavailable,
	})
	require.NoError(t, err)
	assert.True(t, updated.StartTime.Equal(newStart))
	assert.False(t, updated.Available)
}

func TestUpdateSlot_PartialKeepsFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	start := time.Now().Add(time.Hour).Truncate(time.Second)
	s, err := f.create.Execute(ctx, CreateSlotInput{
		ProviderID: f.provider.ID,
		StartTime:  start,
		Available:  true,
	})
	require.NoError(t, err)

	unavailable := false
	updated, err := f.update.Execute(ctx, s.ID, UpdateSlotInput{Available: &unavailable})
	require.NoError(t, err)

	assert.True(t, updated.StartTime.Equal(start), "start_time não enviado deve ser mantido")
	assert.False(t, updated.Available)
}

func TestUpdateSlot_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.update.Execute(context.Background(), 9999, UpdateSlotInput{})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestUpdateSlot_ToPast(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	s, err := f.create.Execute(ctx, CreateSlotInput{
		ProviderID: f.provider.ID,
		StartTime:  time.Now().Add(time.Hour).Truncate(time.Second),
		Available:  true,
	})
	require.NoError(t, err)

	past := time.Now().Add(-time.Hour)
	_, err = f.update.Execute(ctx, s.ID, UpdateSlotInput{StartTime: &past})
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestDeleteSlot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	s, err := f.create.Execute(ctx, CreateSlotInput{
		ProviderID: f.provider.ID,
		StartTime:  time.Now().Add(time.Hour).Truncate(time.Second),
		Available:  true,
	})
	require.NoError(t, err)

	deleted, err := f.delete.Execute(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, deleted.ID)

	_, err = f.get.Execute(ctx, s.ID)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestDeleteSlot_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.delete.Execute(context.Background(), 9999)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestListAvailableSlots(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	now := time.Now().Truncate(time.Second)

	// Livre e futuro: entra, e por último na ordenação.
	later, err := f.create.Execute(ctx, CreateSlotInput{
		ProviderID: f.provider.ID,
		StartTime:  now.Add(3 * time.Hour),
		Available:  true,
	})
	require.NoError(t, err)

	sooner, err := f.create.Execute(ctx, CreateSlotInput{
		ProviderID: f.provider.ID,
		StartTime:  now.Add(time.Hour),
		Available:  true,
	})
	require.NoError(t, err)

	// Ocupado: fora.
	_, err = f.create.Execute(ctx, CreateSlotInput{
		ProviderID: f.provider.ID,
		StartTime:  now.Add(2 * time.Hour),
		Available:  false,
	})
	require.NoError(t, err)

	// Passado: fora (inserido direto, a criação normal rejeita passado).
	require.NoError(t, f.db.Create(&models.Slot{
		ProviderID: f.provider.ID,
		StartTime:  now.Add(-time.Hour),
		Available:  true,
	}).Error)

	slots, err := f.listAvailable.Execute(ctx, f.provider.ID)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, sooner.ID, slots[0].ID)
	assert.Equal(t, later.ID, slots[1].ID)
}

func TestListAvailableSlots_Empty(t *testing.T) {
	f := newFixture(t)

	slots, err := f.listAvailable.Execute(context.Background(), f.provider.ID)
	require.NoError(t, err)
	assert.Empty(t, slots)
}
