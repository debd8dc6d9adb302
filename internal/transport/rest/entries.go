package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pairlog/pairlog-backend/internal/domain"
	"github.com/pairlog/pairlog-backend/internal/service/journal"
)

// journalService defines the minimal interface needed by EntryHandler.
type journalService interface {
	CreateEntry(ctx context.Context, input journal.CreateEntryInput) (*domain.Entry, error)
	GetEntry(ctx context.Context, entryID uuid.UUID) (*domain.Entry, error)
	UpdateEntry(ctx context.Context, input journal.UpdateEntryInput) (*domain.Entry, error)
	DeleteEntry(ctx context.Context, input journal.DeleteEntryInput) error
}

// EntryHandler serves entry CRUD endpoints.
type EntryHandler struct {
	svc journalService
	log *slog.Logger
}

// NewEntryHandler creates an EntryHandler.
func NewEntryHandler(svc journalService, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{svc: svc, log: logger.With("handler", "entries")}
}

type createEntryRequest struct {
	UserID   string   `json:"userId"`
	Date     string   `json:"date"`
	Count    int      `json:"count"`
	Note     *string  `json:"note"`
	Tags     []string `json:"tags"`
	ImageURL *string  `json:"imageUrl"`
}

// updateEntryRequest carries a partial update. The Optional fields
// distinguish an absent key from an explicit null.
type updateEntryRequest struct {
	Date     *string                   `json:"date"`
	Count    *int                      `json:"count"`
	Note     domain.Optional[string]   `json:"note"`
	Tags     domain.Optional[[]string] `json:"tags"`
	ImageURL domain.Optional[string]   `json:"imageUrl"`
}

type entryResponse struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Date      time.Time  `json:"date"`
	WeekStart time.Time  `json:"weekStart"`
	Count     int        `json:"count"`
	Note      *string    `json:"note"`
	Tags      []string   `json:"tags"`
	ImageURL  *string    `json:"imageUrl"`
	EditedAt  *time.Time `json:"editedAt"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Create handles POST /entries.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	entry, err := h.svc.CreateEntry(r.Context(), journal.CreateEntryInput{
		UserID:   userID,
		Date:     req.Date,
		Count:    req.Count,
		Note:     req.Note,
		Tags:     req.Tags,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

// Get handles GET /entries/{id}.
func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid entry id")
		return
	}

	entry, err := h.svc.GetEntry(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// Update handles PATCH /entries/{id}.
func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid entry id")
		return
	}
	requester, ok := requesterID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "missing or invalid X-User-Id header")
		return
	}

	var req updateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.svc.UpdateEntry(r.Context(), journal.UpdateEntryInput{
		EntryID:     id,
		RequesterID: requester,
		Date:        req.Date,
		Count:       req.Count,
		Note:        req.Note,
		Tags:        req.Tags,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// Delete handles DELETE /entries/{id}.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid entry id")
		return
	}
	requester, ok := requesterID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "missing or invalid X-User-Id header")
		return
	}

	err := h.svc.DeleteEntry(r.Context(), journal.DeleteEntryInput{
		EntryID:     id,
		RequesterID: requester,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toEntryResponse(e *domain.Entry) entryResponse {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	return entryResponse{
		ID:        e.ID.String(),
		UserID:    e.UserID.String(),
		Date:      e.Date,
		WeekStart: e.WeekStart,
		Count:     e.Count,
		Note:      e.Note,
		Tags:      tags,
		ImageURL:  e.ImageURL,
		EditedAt:  e.EditedAt,
		CreatedAt: e.CreatedAt,
	}
}
