package journal

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/journai/journai-backend/internal/domain"
)

// parseEntry parses completion text into a validated journal entry. Parsing
// is strict against the three required fields: missing fields, wrong types,
// malformed syntax, trailing content after the object, and an out-of-range
// rate all fail with domain.ErrMalformedCompletion carrying the underlying
// diagnostic. Unknown extra fields are tolerated.
func parseEntry(text string) (domain.JournalEntry, error) {
	var raw struct {
		Date         *domain.Date `json:"date"`
		Rate         *float64     `json:"rate"`
		ShortSummary *string      `json:"short_summary"`
	}

	dec := json.NewDecoder(strings.NewReader(text))
	if err := dec.Decode(&raw); err != nil {
		return domain.JournalEntry{}, fmt.Errorf("%w: %v", domain.ErrMalformedCompletion, err)
	}

	// The completion must be exactly one JSON value.
	if _, err := dec.Token(); err != io.EOF {
		return domain.JournalEntry{}, fmt.Errorf("%w: trailing data after entry", domain.ErrMalformedCompletion)
	}

	switch {
	case raw.Date == nil:
		return domain.JournalEntry{}, fmt.Errorf("%w: missing field %q", domain.ErrMalformedCompletion, "date")
	case raw.Rate == nil:
		return domain.JournalEntry{}, fmt.Errorf("%w: missing field %q", domain.ErrMalformedCompletion, "rate")
	case raw.ShortSummary == nil:
		return domain.JournalEntry{}, fmt.Errorf("%w: missing field %q", domain.ErrMalformedCompletion, "short_summary")
	}

	if *raw.Rate < 0 || *raw.Rate > 1 {
		return domain.JournalEntry{}, fmt.Errorf("%w: rate %v outside [0,1]", domain.ErrMalformedCompletion, *raw.Rate)
	}

	return domain.JournalEntry{
		Date:         *raw.Date,
		Rate:         *raw.Rate,
		ShortSummary: *raw.ShortSummary,
	}, nil
}
