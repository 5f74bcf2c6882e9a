package journal

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/journai/journai-backend/internal/domain"
)

func newTestService(t *testing.T, store *entryStoreMock, llm *completerMock) *Service {
	t.Helper()
	return &Service{
		entries: store,
		llm:     llm,
		log:     slog.Default(),
	}
}

func mustDate(t *testing.T, s string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(s)
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	return d
}

func TestCreateEntry_Success(t *testing.T) {
	t.Parallel()

	store := &entryStoreMock{
		InsertFunc: func(ctx context.Context, entry domain.JournalEntry) error {
			return nil
		},
	}
	llm := &completerMock{
		CompleteFunc: func(ctx context.Context, prompt Prompt) (string, error) {
			return `{"date":"2024-03-01","rate":0.8,"short_summary":"Productive day"}`, nil
		},
	}

	svc := newTestService(t, store, llm)

	result, err := svc.CreateEntry(context.Background(), CreateEntryInput{
		Name:    "Ana",
		Summary: "Felt productive",
		Date:    mustDate(t, "2024-03-01"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Date.String() != "2024-03-01" {
		t.Errorf("date: got %s, want 2024-03-01", result.Date)
	}
	if result.Rate != 0.8 {
		t.Errorf("rate: got %v, want 0.8", result.Rate)
	}
	if result.ShortSummary != "Productive day" {
		t.Errorf("short_summary: got %q", result.ShortSummary)
	}

	if len(store.InsertCalls()) != 1 {
		t.Errorf("Insert calls: got %d, want 1", len(store.InsertCalls()))
	}
	if len(store.UpdateByDateCalls()) != 0 {
		t.Errorf("UpdateByDate calls: got %d, want 0", len(store.UpdateByDateCalls()))
	}
}

func TestCreateEntry_PromptEmbedsNameDateSummary(t *testing.T) {
	t.Parallel()

	store := &entryStoreMock{
		InsertFunc: func(ctx context.Context, entry domain.JournalEntry) error { return nil },
	}
	llm := &completerMock{
		CompleteFunc: func(ctx context.Context, prompt Prompt) (string, error) {
			return `{"date":"2024-03-01","rate":0.5,"short_summary":"ok"}`, nil
		},
	}
	svc := newTestService(t, store, llm)

	_, err := svc.CreateEntry(context.Background(), CreateEntryInput{
		Name:    "Ana",
		Summary: "Felt productive",
		Date:    mustDate(t, "2024-03-01"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	calls := llm.CompleteCalls()
	if len(calls) != 1 {
		t.Fatalf("Complete calls: got %d, want 1", len(calls))
	}
	if got, want := calls[0].Prompt.User, "Ana (2024-03-01): Felt productive"; got != want {
		t.Errorf("user message: got %q, want %q", got, want)
	}
	if calls[0].Prompt.System == "" {
		t.Error("system instruction must not be empty")
	}
	if !strings.Contains(calls[0].Prompt.System, "short_summary") {
		t.Error("system instruction should name the output schema")
	}
}

func TestCreateEntry_DefaultsDateToToday(t *testing.T) {
	t.Parallel()

	today := domain.Today()

	store := &entryStoreMock{
		InsertFunc: func(ctx context.Context, entry domain.JournalEntry) error { return nil },
	}
	llm := &completerMock{
		CompleteFunc: func(ctx context.Context, prompt Prompt) (string, error) {
			return `{"date":"` + today.String() + `","rate":0.5,"short_summary":"ok"}`, nil
		},
	}
	svc := newTestService(t, store, llm)

	_, err := svc.CreateEntry(context.Background(), CreateEntryInput{
		Name:    "Ana",
		Summary: "A normal day",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	calls := llm.CompleteCalls()
	if len(calls) != 1 {
		t.Fatalf("Complete calls: got %d, want 1", len(calls))
	}
	if !strings.Contains(calls[0].Prompt.User, "("+today.String()+")") {
		t.Errorf("user message %q should embed today's date %s", calls[0].Prompt.User, today)
	}
}

func TestCreateEntry_MergeOnDuplicateDate(t *testing.T) {
	t.Parallel()

	store := &entryStoreMock{
		InsertFunc: func(ctx context.Context, entry domain.JournalEntry) error {
			return domain.ErrAlreadyExists
		},
		UpdateByDateFunc: func(ctx context.Context, date domain.Date, rate float64, shortSummary string) error {
			return nil
		},
	}
	llm := &completerMock{
		CompleteFunc: func(ctx context.Context, prompt Prompt) (string, error) {
			return `{"date":"2024-03-01","rate":0.3,"short_summary":"Tired, revised"}`, nil
		},
	}
	svc := newTestService(t, store, llm)

	result, err := svc.CreateEntry(context.Background(), CreateEntryInput{
		Name:    "Ana",
		Summary: "Exhausting day",
		Date:    mustDate(t, "2024-03-01"),
	})
	if err != nil {
		t.Fatalf("merged conflict must not be an error, got: %v", err)
	}

	// Response is the parsed model output, not a re-read from storage.
	if result.Rate != 0.3 || result.ShortSummary != "Tired, revised" {
		t.Errorf("result = %+v, want parsed completion", result)
	}

	merges := store.UpdateByDateCalls()
	if len(merges) != 1 {
		t.Fatalf("UpdateByDate calls: got %d, want 1", len(merges))
	}
	if merges[0].Date.String() != "2024-03-01" {
		t.Errorf("merge date: got %s, want 2024-03-01", merges[0].Date)
	}
	if merges[0].Rate != 0.3 || merges[0].ShortSummary != "Tired, revised" {
		t.Errorf("merge fields: got %+v", merges[0])
	}
}

func TestCreateEntry_MergeFailureSurfaces(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	store := &entryStoreMock{
		InsertFunc: func(ctx context.Context, entry domain.JournalEntry) error {
			return domain.ErrAlreadyExists
		},
		UpdateByDateFunc: func(ctx context.Context, date domain.Date, rate float64, shortSummary string) error {
			return cause
		},
	}
	llm := &completerMock{
		CompleteFunc: func(ctx context.Context, prompt Prompt) (string, error) {
			return `{"date":"2024-03-01","rate":0.3,"short_summary":"x"}`, nil
		},
	}
	svc := newTestService(t, store, llm)

	_, err := svc.CreateEntry(context.Background(), CreateEntryInput{
		Name:    "Ana",
		Summary: "day",
		Date:    mustDate(t, "2024-03-01"),
	})
	if !errors.Is(err, cause) {
		t.Fatalf("merge failure not surfaced: %v", err)
	}
}

func TestCreateEntry_NonConflictInsertFailureIsTerminal(t *testing.T) {
	t.Parallel()

	cause := errors.New("storage outage")
	store := &entryStoreMock{
		InsertFunc: func(ctx context.Context, entry domain.JournalEntry) error {
			return cause
		},
	}
	llm := &completerMock{
		CompleteFunc: func(ctx context.Context, prompt Prompt) (string, error) {
			return `{"date":"2024-03-01","rate":0.5,"short_summary":"x"}`, nil
		},
	}
	svc := newTestService(t, store, llm)

	_, err := svc.CreateEntry(context.Background(), CreateEntryInput{
		Name:    "Ana",
		Summary: "day",
		Date:    mustDate(t, "2024-03-01"),
	})
	if !errors.Is(err, cause) {
		t.Fatalf("storage outage not surfaced: %v", err)
	}
	if len(store.UpdateByDateCalls()) != 0 {
		t.Error("merge path must not run on non-conflict storage failure")
	}
}

func TestCreateEntry_CompletionFailure_NoStorageMutation(t *testing.T) {
	t.Parallel()

	store := &entryStoreMock{}
	llm := &completerMock{
		CompleteFunc: func(ctx context.Context, prompt Prompt) (string, error) {
			return "", domain.ErrNoCompletion
		},
	}
	svc := newTestService(t, store, llm)

	_, err := svc.CreateEntry(context.Background(), CreateEntryInput{
		Name:    "Ana",
		Summary: "day",
		Date:    mustDate(t, "2024-03-01"),
	})
	if !errors.Is(err, domain.ErrNoCompletion) {
		t.Fatalf("expected ErrNoCompletion, got: %v", err)
	}
	if len(store.InsertCalls()) != 0 || len(store.UpdateByDateCalls()) != 0 {
		t.Error("no storage mutation may occur when the completion fails")
	}
}

func TestCreateEntry_MalformedCompletion_NoStorageMutation(t *testing.T) {
	t.Parallel()

	store := &entryStoreMock{}
	llm := &completerMock{
		CompleteFunc: func(ctx context.Context, prompt Prompt) (string, error) {
			return "I had a great day, thanks for asking!", nil
		},
	}
	svc := newTestService(t, store, llm)

	_, err := svc.CreateEntry(context.Background(), CreateEntryInput{
		Name:    "Ana",
		Summary: "day",
		Date:    mustDate(t, "2024-03-01"),
	})
	if !errors.Is(err, domain.ErrMalformedCompletion) {
		t.Fatalf("expected ErrMalformedCompletion, got: %v", err)
	}
	if len(store.InsertCalls()) != 0 || len(store.UpdateByDateCalls()) != 0 {
		t.Error("no storage mutation may occur when parsing fails")
	}
}

func TestCreateEntry_InvalidInput(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &entryStoreMock{}, &completerMock{})

	tests := []struct {
		name  string
		input CreateEntryInput
		field string
	}{
		{"empty name", CreateEntryInput{Summary: "day"}, "name"},
		{"empty summary", CreateEntryInput{Name: "Ana"}, "summary"},
		{"whitespace name", CreateEntryInput{Name: "   ", Summary: "day"}, "name"},
		{"oversized summary", CreateEntryInput{Name: "Ana", Summary: strings.Repeat("a", maxSummaryLen+1)}, "summary"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := svc.CreateEntry(context.Background(), tt.input)
			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %T: %v", err, err)
			}
			if ve.Errors[0].Field != tt.field {
				t.Errorf("field: got %q, want %q", ve.Errors[0].Field, tt.field)
			}
		})
	}
}
