package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pairlog/pairlog-backend/internal/domain"
	"github.com/pairlog/pairlog-backend/internal/service/activity"
)

type activityServiceMock struct {
	RecordFunc       func(ctx context.Context, input activity.RecordInput) (*domain.EntryActivity, error)
	ListForEntryFunc func(ctx context.Context, entryID uuid.UUID) ([]domain.EntryActivity, error)
	UnreadCountFunc  func(ctx context.Context, userID uuid.UUID) (int, error)
	MarkReadFunc     func(ctx context.Context, entryID, userID uuid.UUID) error
}

func (m *activityServiceMock) Record(ctx context.Context, input activity.RecordInput) (*domain.EntryActivity, error) {
	return m.RecordFunc(ctx, input)
}

func (m *activityServiceMock) ListForEntry(ctx context.Context, entryID uuid.UUID) ([]domain.EntryActivity, error) {
	return m.ListForEntryFunc(ctx, entryID)
}

func (m *activityServiceMock) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	return m.UnreadCountFunc(ctx, userID)
}

func (m *activityServiceMock) MarkRead(ctx context.Context, entryID, userID uuid.UUID) error {
	return m.MarkReadFunc(ctx, entryID, userID)
}

func TestRecordActivity_Success(t *testing.T) {
	t.Parallel()

	entryID := uuid.New()
	actorID := uuid.New()
	content := "so proud of you"

	svc := &activityServiceMock{
		RecordFunc: func(ctx context.Context, input activity.RecordInput) (*domain.EntryActivity, error) {
			if input.EntryID != entryID || input.ActorID != actorID {
				t.Errorf("unexpected input: %+v", input)
			}
			if input.Type != domain.ActivityComment {
				t.Errorf("Type: got %q, want comment", input.Type)
			}
			return &domain.EntryActivity{
				ID:        uuid.New(),
				EntryID:   entryID,
				ActorID:   actorID,
				Type:      input.Type,
				Content:   input.Content,
				CreatedAt: time.Now(),
			}, nil
		},
	}
	h := NewActivityHandler(svc, slog.Default())

	body := `{"type":"comment","content":"` + content + `"}`
	req := httptest.NewRequest(http.MethodPost, "/entries/"+entryID.String()+"/activities", strings.NewReader(body))
	req.SetPathValue("id", entryID.String())
	req.Header.Set("X-User-Id", actorID.String())
	rec := httptest.NewRecorder()

	h.Record(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp activityResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Type != "comment" {
		t.Errorf("Type: got %q, want comment", resp.Type)
	}
	if resp.Content == nil || *resp.Content != content {
		t.Errorf("Content: got %v, want %q", resp.Content, content)
	}
}

func TestRecordActivity_MissingActorHeader(t *testing.T) {
	t.Parallel()

	entryID := uuid.New()
	h := NewActivityHandler(&activityServiceMock{}, slog.Default())

	req := httptest.NewRequest(http.MethodPost, "/entries/"+entryID.String()+"/activities", strings.NewReader(`{"type":"reaction"}`))
	req.SetPathValue("id", entryID.String())
	rec := httptest.NewRecorder()

	h.Record(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestRecordActivity_EntryNotFound(t *testing.T) {
	t.Parallel()

	entryID := uuid.New()
	svc := &activityServiceMock{
		RecordFunc: func(ctx context.Context, input activity.RecordInput) (*domain.EntryActivity, error) {
			return nil, domain.ErrNotFound
		},
	}
	h := NewActivityHandler(svc, slog.Default())

	req := httptest.NewRequest(http.MethodPost, "/entries/"+entryID.String()+"/activities", strings.NewReader(`{"type":"reaction"}`))
	req.SetPathValue("id", entryID.String())
	req.Header.Set("X-User-Id", uuid.NewString())
	rec := httptest.NewRecorder()

	h.Record(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestListActivities_Success(t *testing.T) {
	t.Parallel()

	entryID := uuid.New()
	svc := &activityServiceMock{
		ListForEntryFunc: func(ctx context.Context, id uuid.UUID) ([]domain.EntryActivity, error) {
			return []domain.EntryActivity{
				{ID: uuid.New(), EntryID: id, ActorID: uuid.New(), Type: domain.ActivityReaction},
				{ID: uuid.New(), EntryID: id, ActorID: uuid.New(), Type: domain.ActivityReply},
			}, nil
		},
	}
	h := NewActivityHandler(svc, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/entries/"+entryID.String()+"/activities", nil)
	req.SetPathValue("id", entryID.String())
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp []activityResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(resp))
	}
}

func TestUnreadCount_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	svc := &activityServiceMock{
		UnreadCountFunc: func(ctx context.Context, id uuid.UUID) (int, error) {
			if id != userID {
				t.Errorf("userID: got %v, want %v", id, userID)
			}
			return 7, nil
		},
	}
	h := NewActivityHandler(svc, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/notifications/unread-count", nil)
	req.Header.Set("X-User-Id", userID.String())
	rec := httptest.NewRecorder()

	h.UnreadCount(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp map[string]int
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["count"] != 7 {
		t.Errorf("count: got %d, want 7", resp["count"])
	}
}

func TestMarkRead_Success(t *testing.T) {
	t.Parallel()

	entryID := uuid.New()
	userID := uuid.New()

	svc := &activityServiceMock{
		MarkReadFunc: func(ctx context.Context, e, u uuid.UUID) error {
			if e != entryID || u != userID {
				t.Errorf("unexpected args: entry=%v user=%v", e, u)
			}
			return nil
		},
	}
	h := NewActivityHandler(svc, slog.Default())

	req := httptest.NewRequest(http.MethodPost, "/entries/"+entryID.String()+"/notifications/read", nil)
	req.SetPathValue("id", entryID.String())
	req.Header.Set("X-User-Id", userID.String())
	rec := httptest.NewRecorder()

	h.MarkRead(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", rec.Code)
	}
}
