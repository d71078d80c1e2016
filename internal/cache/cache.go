// Package cache guarda as listagens públicas de horários disponíveis,
// que são o caminho mais quente da API (página de reserva do cliente).
package cache

import (
	"fmt"
	"time"
)

// AvailableSlotsTTL é curto de propósito: o cache só absorve rajadas de
// leitura da página pública, a fonte de verdade continua sendo o banco.
const AvailableSlotsTTL = 30 * time.Second

type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// AvailableSlotsKey é a chave da listagem pública de um barbeiro.
func AvailableSlotsKey(providerID uint) string {
	return fmt.Sprintf("slots:disponiveis:%d", providerID)
}

// Noop é usado quando não há Redis configurado e nos testes.
type Noop struct{}

func (Noop) Get(string, any) (bool, error)        { return false, nil }
func (Noop) Set(string, any, time.Duration) error { return nil }
func (Noop) Invalidate(string) error              { return nil }
