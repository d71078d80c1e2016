package audit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinibarber/agenda-api/internal/db"
	"github.com/vinibarber/agenda-api/internal/models"
)

func TestDispatcherPersistsEvent(t *testing.T) {
	gdb := db.OpenTest(t)

	dispatcher := NewDispatcher(New(gdb))

	entityID := uint(7)
	dispatcher.Dispatch(Event{
		ProviderID: 1,
		Action:     "slot_created",
		Entity:     "slot",
		EntityID:   &entityID,
		Metadata:   map[string]any{"origem": "teste"},
	})

	// A gravação é assíncrona.
	assert.Eventually(t, func() bool {
		var count int64
		if err := gdb.Model(&models.AuditLog{}).Count(&count).Error; err != nil {
			return false
		}
		return count == 1
	}, 2*time.Second, 10*time.Millisecond)

	var entry models.AuditLog
	require.NoError(t, gdb.First(&entry).Error)
	assert.Equal(t, "slot_created", entry.Action)
	assert.Equal(t, "slot", entry.Entity)
	require.NotNil(t, entry.EntityID)
	assert.Equal(t, entityID, *entry.EntityID)
	assert.Contains(t, entry.Metadata, "origem")
}
