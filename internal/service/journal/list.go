package journal

import (
	"context"
	"fmt"

	"github.com/journai/journai-backend/internal/domain"
)

// ListEntries returns every stored journal entry.
func (s *Service) ListEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	entries, err := s.entries.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}

	return entries, nil
}
