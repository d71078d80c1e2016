package models

import "time"

// Slot é uma unidade de horário reservável, sempre de um único barbeiro.
// O índice composto impede dois horários do mesmo barbeiro na mesma data/hora.
type Slot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProviderID uint     `gorm:"not null;uniqueIndex:idx_slots_provider_start" json:"provider_id"`
	Provider   Provider `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	StartTime time.Time `gorm:"not null;uniqueIndex:idx_slots_provider_start" json:"start_time"`
	Available bool      `json:"available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
