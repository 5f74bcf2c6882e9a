// Package domain holds the core entities and sentinel errors shared by all
// layers: the journal entry, its calendar-date key, and the error taxonomy of
// the ingestion pipeline.
package domain

// JournalEntry is the structured daily record produced by the model and
// persisted under a uniqueness constraint on Date. It has no partial states:
// an entry becomes visible only once fully formed, is mutated only by the
// merge path (Rate and ShortSummary), and is removed only by an explicit
// delete.
type JournalEntry struct {
	Date         Date    `json:"date"`
	Rate         float64 `json:"rate"`
	ShortSummary string  `json:"short_summary"`
}
