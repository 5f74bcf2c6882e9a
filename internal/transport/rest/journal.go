package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/journai/journai-backend/internal/domain"
	"github.com/journai/journai-backend/internal/service/journal"
)

type journalService interface {
	CreateEntry(ctx context.Context, in journal.CreateEntryInput) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context) ([]domain.JournalEntry, error)
	DeleteEntry(ctx context.Context, in journal.DeleteEntryInput) error
}

// JournalHandler serves the journal entry endpoints.
type JournalHandler struct {
	svc journalService
	log *slog.Logger
}

func NewJournalHandler(log *slog.Logger, svc journalService) *JournalHandler {
	return &JournalHandler{svc: svc, log: log.With("handler", "journal")}
}

type createEntryRequest struct {
	Name    string       `json:"name"`
	Summary string       `json:"summary"`
	Date    *domain.Date `json:"date,omitempty"`
}

type entryResponse struct {
	Date         domain.Date `json:"date"`
	Rate         float64     `json:"rate"`
	ShortSummary string      `json:"short_summary"`
}

func toEntryResponse(e domain.JournalEntry) entryResponse {
	return entryResponse{Date: e.Date, Rate: e.Rate, ShortSummary: e.ShortSummary}
}

// Create handles POST /: it runs the raw journal through the model and
// persists the structured entry.
func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in := journal.CreateEntryInput{Name: req.Name, Summary: req.Summary}
	if req.Date != nil {
		in.Date = *req.Date
	}

	entry, err := h.svc.CreateEntry(r.Context(), in)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(*entry))
}

// List handles GET /: it returns every stored entry ordered by date.
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.ListEntries(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, toEntryResponse(e))
	}

	writeJSON(w, http.StatusOK, resp)
}

type deleteEntryRequest struct {
	Date domain.Date `json:"date"`
}

// Delete handles DELETE /: it removes the entry for the given date. Deleting
// a date with no entry is not an error.
func (h *JournalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.DeleteEntry(r.Context(), journal.DeleteEntryInput{Date: req.Date}); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *JournalHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		// Completion, parse, and storage faults are all server-side.
		h.log.ErrorContext(r.Context(), "journal request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
