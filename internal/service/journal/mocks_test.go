package journal

import (
	"context"
	"sync"

	"github.com/journai/journai-backend/internal/domain"
)

var _ entryStore = &entryStoreMock{}

type entryStoreMock struct {
	InsertFunc       func(ctx context.Context, entry domain.JournalEntry) error
	UpdateByDateFunc func(ctx context.Context, date domain.Date, rate float64, shortSummary string) error
	ListAllFunc      func(ctx context.Context) ([]domain.JournalEntry, error)
	DeleteByDateFunc func(ctx context.Context, date domain.Date) error

	calls struct {
		Insert []struct {
			Entry domain.JournalEntry
		}
		UpdateByDate []struct {
			Date         domain.Date
			Rate         float64
			ShortSummary string
		}
		ListAll []struct{}
		DeleteByDate []struct {
			Date domain.Date
		}
	}
	mu sync.Mutex
}

func (mock *entryStoreMock) Insert(ctx context.Context, entry domain.JournalEntry) error {
	if mock.InsertFunc == nil {
		panic("entryStoreMock.InsertFunc: method is nil but entryStore.Insert was just called")
	}
	mock.mu.Lock()
	mock.calls.Insert = append(mock.calls.Insert, struct {
		Entry domain.JournalEntry
	}{Entry: entry})
	mock.mu.Unlock()
	return mock.InsertFunc(ctx, entry)
}

func (mock *entryStoreMock) InsertCalls() []struct {
	Entry domain.JournalEntry
} {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.Insert
}

func (mock *entryStoreMock) UpdateByDate(ctx context.Context, date domain.Date, rate float64, shortSummary string) error {
	if mock.UpdateByDateFunc == nil {
		panic("entryStoreMock.UpdateByDateFunc: method is nil but entryStore.UpdateByDate was just called")
	}
	mock.mu.Lock()
	mock.calls.UpdateByDate = append(mock.calls.UpdateByDate, struct {
		Date         domain.Date
		Rate         float64
		ShortSummary string
	}{Date: date, Rate: rate, ShortSummary: shortSummary})
	mock.mu.Unlock()
	return mock.UpdateByDateFunc(ctx, date, rate, shortSummary)
}

func (mock *entryStoreMock) UpdateByDateCalls() []struct {
	Date         domain.Date
	Rate         float64
	ShortSummary string
} {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.UpdateByDate
}

func (mock *entryStoreMock) ListAll(ctx context.Context) ([]domain.JournalEntry, error) {
	if mock.ListAllFunc == nil {
		panic("entryStoreMock.ListAllFunc: method is nil but entryStore.ListAll was just called")
	}
	mock.mu.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, struct{}{})
	mock.mu.Unlock()
	return mock.ListAllFunc(ctx)
}

func (mock *entryStoreMock) DeleteByDate(ctx context.Context, date domain.Date) error {
	if mock.DeleteByDateFunc == nil {
		panic("entryStoreMock.DeleteByDateFunc: method is nil but entryStore.DeleteByDate was just called")
	}
	mock.mu.Lock()
	mock.calls.DeleteByDate = append(mock.calls.DeleteByDate, struct {
		Date domain.Date
	}{Date: date})
	mock.mu.Unlock()
	return mock.DeleteByDateFunc(ctx, date)
}

func (mock *entryStoreMock) DeleteByDateCalls() []struct {
	Date domain.Date
} {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.DeleteByDate
}

var _ completer = &completerMock{}

type completerMock struct {
	CompleteFunc func(ctx context.Context, prompt Prompt) (string, error)

	calls struct {
		Complete []struct {
			Prompt Prompt
		}
	}
	mu sync.Mutex
}

func (mock *completerMock) Complete(ctx context.Context, prompt Prompt) (string, error) {
	if mock.CompleteFunc == nil {
		panic("completerMock.CompleteFunc: method is nil but completer.Complete was just called")
	}
	mock.mu.Lock()
	mock.calls.Complete = append(mock.calls.Complete, struct {
		Prompt Prompt
	}{Prompt: prompt})
	mock.mu.Unlock()
	return mock.CompleteFunc(ctx, prompt)
}

func (mock *completerMock) CompleteCalls() []struct {
	Prompt Prompt
} {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.Complete
}
