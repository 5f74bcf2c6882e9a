// Package entry implements the journal entry store backed by PostgreSQL.
// Uniqueness of the calendar date is enforced by the primary key on the
// journal_entries table; a violated insert surfaces as domain.ErrAlreadyExists
// so the caller can take the merge path.
package entry

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/journai/journai-backend/internal/adapter/postgres"
	"github.com/journai/journai-backend/internal/domain"
)

const table = "journal_entries"

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides journal entry persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new journal entry repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// entryRow mirrors the journal_entries columns read by this repo.
type entryRow struct {
	Date         time.Time `db:"date"`
	Rate         float64   `db:"rate"`
	ShortSummary string    `db:"short_summary"`
}

func (r entryRow) toDomain() domain.JournalEntry {
	return domain.JournalEntry{
		Date:         domain.DateOf(r.Date),
		Rate:         r.Rate,
		ShortSummary: r.ShortSummary,
	}
}

// Insert adds a new entry. Returns domain.ErrAlreadyExists if an entry with
// the same date is already stored.
func (r *Repo) Insert(ctx context.Context, entry domain.JournalEntry) error {
	sql, args, err := qb.Insert(table).
		Columns("date", "rate", "short_summary").
		Values(entry.Date.Time(), entry.Rate, entry.ShortSummary).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "journal_entry", entry.Date.String())
	}

	return nil
}

// UpdateByDate sets the mutable fields of the entry matching date. It is the
// merge half of insert-then-merge: repeated calls with the same arguments
// converge to the same stored state. Returns domain.ErrNotFound if no entry
// matches.
func (r *Repo) UpdateByDate(ctx context.Context, date domain.Date, rate float64, shortSummary string) error {
	sql, args, err := qb.Update(table).
		Set("rate", rate).
		Set("short_summary", shortSummary).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"date": date.Time()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	tag, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "journal_entry", date.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("journal_entry %s: %w", date, domain.ErrNotFound)
	}

	return nil
}

// ListAll returns every stored entry ordered by date ascending.
func (r *Repo) ListAll(ctx context.Context) ([]domain.JournalEntry, error) {
	sql, args, err := qb.Select("date", "rate", "short_summary").
		From(table).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var rows []entryRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list journal_entries: %w", err)
	}

	entries := make([]domain.JournalEntry, len(rows))
	for i, row := range rows {
		entries[i] = row.toDomain()
	}

	return entries, nil
}

// DeleteByDate removes the entry matching date, if any. Deleting an absent
// date is a no-op success.
func (r *Repo) DeleteByDate(ctx context.Context, date domain.Date) error {
	sql, args, err := qb.Delete(table).
		Where(sq.Eq{"date": date.Time()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	if _, err := r.q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "journal_entry", date.String())
	}

	return nil
}
