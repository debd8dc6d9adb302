package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pairlog/pairlog-backend/internal/domain"
	"github.com/pairlog/pairlog-backend/internal/service/summary"
)

// summaryService defines the minimal interface needed by SummaryHandler.
type summaryService interface {
	ListEntries(ctx context.Context, input summary.ListInput) ([]domain.EntryWithSummary, error)
	WeeklySummary(ctx context.Context, weekStart *time.Time) (*domain.WeeklySummary, error)
}

// SummaryHandler serves the decorated entry listing and weekly totals.
type SummaryHandler struct {
	svc summaryService
	log *slog.Logger
}

// NewSummaryHandler creates a SummaryHandler.
func NewSummaryHandler(svc summaryService, logger *slog.Logger) *SummaryHandler {
	return &SummaryHandler{svc: svc, log: logger.With("handler", "summary")}
}

type activitySummaryResponse struct {
	Reaction int `json:"reaction"`
	Comment  int `json:"comment"`
	Reply    int `json:"reply"`
}

type entryWithSummaryResponse struct {
	entryResponse
	Activity            activitySummaryResponse `json:"activity"`
	UnreadActivityCount int                     `json:"unreadActivityCount"`
}

type weeklySummaryResponse struct {
	WeekStart  time.Time      `json:"weekStart"`
	Totals     map[string]int `json:"totals"`
	EntryCount int            `json:"entryCount"`
}

// ListEntries handles GET /entries. Recognized query parameters:
// week_start (RFC 3339 or YYYY-MM-DD), date (same formats), user_id.
func (h *SummaryHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	var input summary.ListInput

	if raw := r.URL.Query().Get("week_start"); raw != "" {
		t, ok := parseQueryTime(raw)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid week_start")
			return
		}
		input.WeekStart = &t
	}
	if raw := r.URL.Query().Get("date"); raw != "" {
		t, ok := parseQueryTime(raw)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid date")
			return
		}
		input.Date = &t
	}
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid user_id")
			return
		}
		input.UserID = &id
	}

	rows, err := h.svc.ListEntries(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]entryWithSummaryResponse, len(rows))
	for i := range rows {
		out[i] = entryWithSummaryResponse{
			entryResponse: toEntryResponse(&rows[i].Entry),
			Activity: activitySummaryResponse{
				Reaction: rows[i].ActivitySummary.Reaction,
				Comment:  rows[i].ActivitySummary.Comment,
				Reply:    rows[i].ActivitySummary.Reply,
			},
			UnreadActivityCount: rows[i].UnreadActivityCount,
		}
	}

	writeJSON(w, http.StatusOK, out)
}

// Weekly handles GET /summary/weekly. An absent week_start means the
// current week; any instant inside a week selects that week.
func (h *SummaryHandler) Weekly(w http.ResponseWriter, r *http.Request) {
	var weekStart *time.Time
	if raw := r.URL.Query().Get("week_start"); raw != "" {
		t, ok := parseQueryTime(raw)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid week_start")
			return
		}
		weekStart = &t
	}

	result, err := h.svc.WeeklySummary(r.Context(), weekStart)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	totals := make(map[string]int, len(result.Totals))
	for id, n := range result.Totals {
		totals[id.String()] = n
	}

	writeJSON(w, http.StatusOK, weeklySummaryResponse{
		WeekStart:  result.WeekStart,
		Totals:     totals,
		EntryCount: result.EntryCount,
	})
}

func parseQueryTime(raw string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
