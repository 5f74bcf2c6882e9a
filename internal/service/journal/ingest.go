package journal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/journai/journai-backend/internal/domain"
)

// CreateEntry runs the ingestion pipeline for one request: it builds the
// prompt, obtains exactly one completion, parses it into a structured entry,
// and reconciles the result against storage. Uniqueness on date is enforced
// only at storage time, so the insert is optimistic: a duplicate date is the
// single recovered condition and falls back to merging the mutable fields
// (last write for a date wins). Every other failure at any step terminates
// the pipeline with no further side effects.
//
// The returned entry is the parsed model output, never re-read from storage.
func (s *Service) CreateEntry(ctx context.Context, input CreateEntryInput) (*domain.JournalEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = domain.Today()
	}

	prompt := buildPrompt(input.Name, date, input.Summary)

	text, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("complete entry prompt: %w", err)
	}

	entry, err := parseEntry(text)
	if err != nil {
		return nil, err
	}

	merged := false
	if err := s.entries.Insert(ctx, entry); err != nil {
		if !errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("insert journal entry: %w", err)
		}
		if err := s.entries.UpdateByDate(ctx, entry.Date, entry.Rate, entry.ShortSummary); err != nil {
			return nil, fmt.Errorf("merge journal entry: %w", err)
		}
		merged = true
	}

	s.log.InfoContext(ctx, "journal entry ingested",
		slog.String("date", entry.Date.String()),
		slog.Float64("rate", entry.Rate),
		slog.Bool("merged", merged),
	)

	return &entry, nil
}
