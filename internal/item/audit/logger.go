// Package audit writes one structured log entry per item store mutation.
package audit

import (
	"github.com/rs/zerolog"

	"github.com/ridloal/item-inventory-service/internal/item/repository"
)

type Logger struct {
	logger zerolog.Logger
}

func NewLogger(logger zerolog.Logger) *Logger {
	return &Logger{
		logger: logger.With().Str("component", "audit").Logger(),
	}
}

// Attach subscribes the logger to the store and returns the unsubscribe func.
func (l *Logger) Attach(repo repository.ItemRepository) func() {
	return repo.Subscribe(l.Record)
}

func (l *Logger) Record(ev repository.Event) {
	if l == nil {
		return
	}
	entry := l.logger.Info().
		Str("event", string(ev.Type)).
		Int("count", ev.Count)
	if ev.ItemID != 0 {
		entry = entry.Int("item_id", ev.ItemID)
	}
	entry.Msg("item store mutated")
}
