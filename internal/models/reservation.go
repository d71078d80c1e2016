package models

import "time"

// Reservation é a reserva de um cliente sobre exatamente um Slot.
// O uniqueIndex em SlotID é o backstop contra double booking.
type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SlotID uint `gorm:"not null;uniqueIndex" json:"slot_id"`
	Slot   Slot `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"slot"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientEmail string `gorm:"size:100;not null" json:"client_email"`

	CreatedAt time.Time `json:"created_at"`
}
