package audit

import "log/slog"

// Event registra uma ação relevante da agenda: criação/alteração de horário,
// reserva feita ou cancelada, cadastro de barbeiro.
type Event struct {
	ProviderID uint
	Action     string
	Entity     string
	EntityID   *uint
	Metadata   any
}

// Dispatcher grava eventos de auditoria fora do caminho da requisição.
// Fila cheia descarta o evento: auditoria nunca derruba a API.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.ProviderID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			slog.Error("audit write failed", slog.String("action", ev.Action))
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		slog.Warn("audit queue full, dropping event", slog.String("action", ev.Action))
	}
}
