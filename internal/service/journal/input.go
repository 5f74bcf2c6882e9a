package journal

import (
	"strings"

	"github.com/journai/journai-backend/internal/domain"
)

const (
	maxNameLen    = 200
	maxSummaryLen = 4000
)

// CreateEntryInput holds the parameters for ingesting a journal entry.
// A zero Date means "today", resolved server-side in UTC.
type CreateEntryInput struct {
	Name    string
	Summary string
	Date    domain.Date
}

// Validate checks all fields and collects all errors.
func (i CreateEntryInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}

	summary := strings.TrimSpace(i.Summary)
	if summary == "" {
		errs = append(errs, domain.FieldError{Field: "summary", Message: "required"})
	}
	if len(summary) > maxSummaryLen {
		errs = append(errs, domain.FieldError{Field: "summary", Message: "max 4000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteEntryInput holds the parameters for deleting a journal entry.
type DeleteEntryInput struct {
	Date domain.Date
}

// Validate checks all fields.
func (i DeleteEntryInput) Validate() error {
	if i.Date.IsZero() {
		return domain.NewValidationError("date", "required")
	}
	return nil
}
