package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pairlog/pairlog-backend/internal/domain"
	"github.com/pairlog/pairlog-backend/internal/service/activity"
)

// activityService defines the minimal interface needed by ActivityHandler.
type activityService interface {
	Record(ctx context.Context, input activity.RecordInput) (*domain.EntryActivity, error)
	ListForEntry(ctx context.Context, entryID uuid.UUID) ([]domain.EntryActivity, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, entryID, userID uuid.UUID) error
}

// ActivityHandler serves entry activity and notification endpoints.
type ActivityHandler struct {
	svc activityService
	log *slog.Logger
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(svc activityService, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{svc: svc, log: logger.With("handler", "activities")}
}

type recordActivityRequest struct {
	Type    string  `json:"type"`
	Content *string `json:"content"`
}

type activityResponse struct {
	ID        string    `json:"id"`
	EntryID   string    `json:"entryId"`
	ActorID   string    `json:"actorId"`
	Type      string    `json:"type"`
	Content   *string   `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Record handles POST /entries/{id}/activities.
func (h *ActivityHandler) Record(w http.ResponseWriter, r *http.Request) {
	entryID, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid entry id")
		return
	}
	actorID, ok := requesterID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "missing or invalid X-User-Id header")
		return
	}

	var req recordActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Record(r.Context(), activity.RecordInput{
		EntryID: entryID,
		ActorID: actorID,
		Type:    domain.ActivityType(req.Type),
		Content: req.Content,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toActivityResponse(created))
}

// List handles GET /entries/{id}/activities.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	entryID, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid entry id")
		return
	}

	activities, err := h.svc.ListForEntry(r.Context(), entryID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]activityResponse, len(activities))
	for i := range activities {
		out[i] = toActivityResponse(&activities[i])
	}

	writeJSON(w, http.StatusOK, out)
}

// UnreadCount handles GET /notifications/unread-count.
func (h *ActivityHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	userID, ok := requesterID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "missing or invalid X-User-Id header")
		return
	}

	count, err := h.svc.UnreadCount(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"count": count})
}

// MarkRead handles POST /entries/{id}/notifications/read.
func (h *ActivityHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	entryID, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid entry id")
		return
	}
	userID, ok := requesterID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "missing or invalid X-User-Id header")
		return
	}

	if err := h.svc.MarkRead(r.Context(), entryID, userID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toActivityResponse(a *domain.EntryActivity) activityResponse {
	return activityResponse{
		ID:        a.ID.String(),
		EntryID:   a.EntryID.String(),
		ActorID:   a.ActorID.String(),
		Type:      a.Type.String(),
		Content:   a.Content,
		CreatedAt: a.CreatedAt,
	}
}
