package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom_TypedError(t *testing.T) {
	err := Conflict("slot_taken", "Este horário já está ocupado.")

	ae := From(fmt.Errorf("wrap: %w", err))
	assert.Equal(t, KindConflict, ae.Kind)
	assert.Equal(t, "slot_taken", ae.Code)
}

func TestFrom_UntypedError(t *testing.T) {
	ae := From(errors.New("connection reset"))

	assert.Equal(t, KindInternal, ae.Kind)
	assert.Equal(t, "internal_error", ae.Code)
	// A mensagem para o cliente não pode vazar a causa.
	assert.NotContains(t, ae.Message, "connection reset")
}

func TestIs(t *testing.T) {
	assert.True(t, Is(NotFound("x", "y"), KindNotFound))
	assert.False(t, Is(NotFound("x", "y"), KindConflict))
	assert.False(t, Is(errors.New("plain"), KindNotFound))
}
