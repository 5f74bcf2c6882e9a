// Package journal implements the entry-ingestion pipeline: prompt building,
// completion, strict parsing of the model output, and reconciliation against
// the date-unique store with insert-then-merge-on-conflict semantics.
package journal

import (
	"context"
	"log/slog"

	"github.com/journai/journai-backend/internal/domain"
)

// entryStore is the date-unique journal entry collection.
type entryStore interface {
	Insert(ctx context.Context, entry domain.JournalEntry) error
	UpdateByDate(ctx context.Context, date domain.Date, rate float64, shortSummary string) error
	ListAll(ctx context.Context) ([]domain.JournalEntry, error)
	DeleteByDate(ctx context.Context, date domain.Date) error
}

// completer returns the model's first completion text for a prompt.
type completer interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// Service orchestrates journal entry ingestion, listing, and deletion.
type Service struct {
	entries entryStore
	llm     completer
	log     *slog.Logger
}

// NewService creates a new journal service.
func NewService(log *slog.Logger, entries entryStore, llm completer) *Service {
	return &Service{
		entries: entries,
		llm:     llm,
		log:     log.With("service", "journal"),
	}
}
