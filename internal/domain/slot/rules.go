package slot

import (
	"time"

	"github.com/vinibarber/agenda-api/internal/apperr"
)

// ValidateStartTime rejeita horário no passado (ou exatamente agora).
// Vale na criação e em qualquer update que mude a data/hora.
func ValidateStartTime(start, now time.Time) error {
	if !start.After(now) {
		return apperr.Validation(
			"slot_in_past",
			"Não é possível usar um horário no passado.",
		)
	}
	return nil
}
