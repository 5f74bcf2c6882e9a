package journal

import (
	"context"
	"fmt"
	"log/slog"
)

// DeleteEntry removes the entry matching the given date. Deleting a date with
// no stored entry is a no-op success.
func (s *Service) DeleteEntry(ctx context.Context, input DeleteEntryInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.entries.DeleteByDate(ctx, input.Date); err != nil {
		return fmt.Errorf("delete journal entry: %w", err)
	}

	s.log.InfoContext(ctx, "journal entry deleted",
		slog.String("date", input.Date.String()),
	)

	return nil
}
