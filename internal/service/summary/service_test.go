package summary

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pairlog/pairlog-backend/internal/domain"
)

var testNow = time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC) // a Wednesday

func newTestService(t *testing.T, entries *entryRepoMock, activities *activityRepoMock, notifications *notificationRepoMock) *Service {
	t.Helper()
	if activities == nil {
		activities = &activityRepoMock{
			CountByEntryIDsFunc: func(ctx context.Context, entryIDs []uuid.UUID) (map[uuid.UUID]domain.ActivitySummary, error) {
				return map[uuid.UUID]domain.ActivitySummary{}, nil
			},
		}
	}
	if notifications == nil {
		notifications = &notificationRepoMock{
			CountUnreadByEntryIDsFunc: func(ctx context.Context, userID uuid.UUID, entryIDs []uuid.UUID) (map[uuid.UUID]int, error) {
				return map[uuid.UUID]int{}, nil
			},
		}
	}
	return &Service{
		log:           slog.Default(),
		entries:       entries,
		activities:    activities,
		notifications: notifications,
		now:           func() time.Time { return testNow },
	}
}

func testEntries(owner uuid.UUID, n int) []domain.Entry {
	entries := make([]domain.Entry, n)
	base := time.Date(2025, 6, 16, 20, 0, 0, 0, time.UTC)
	for i := range entries {
		date := base.AddDate(0, 0, -i) // newest first, as the repo returns them
		entries[i] = domain.Entry{
			ID:        uuid.New(),
			UserID:    owner,
			Date:      date,
			WeekStart: domain.WeekStartOf(date),
			Count:     1,
			CreatedAt: date,
		}
	}
	return entries
}

// ---------------------------------------------------------------------------
// ListEntries
// ---------------------------------------------------------------------------

func TestListEntries_DecoratesWithActivityCounts(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	stored := testEntries(owner, 2)

	entries := &entryRepoMock{
		FindFunc: func(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error) {
			return stored, nil
		},
	}
	activities := &activityRepoMock{
		CountByEntryIDsFunc: func(ctx context.Context, entryIDs []uuid.UUID) (map[uuid.UUID]domain.ActivitySummary, error) {
			if len(entryIDs) != 2 {
				t.Errorf("expected 2 entry ids, got %d", len(entryIDs))
			}
			return map[uuid.UUID]domain.ActivitySummary{
				stored[0].ID: {Reaction: 2, Comment: 1},
			}, nil
		},
	}
	svc := newTestService(t, entries, activities, nil)

	result, err := svc.ListEntries(context.Background(), ListInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(result))
	}
	if result[0].ActivitySummary.Reaction != 2 || result[0].ActivitySummary.Comment != 1 {
		t.Errorf("first row summary mismatch: %+v", result[0].ActivitySummary)
	}
	// No activity recorded for the second entry: zero-valued summary.
	if result[1].ActivitySummary != (domain.ActivitySummary{}) {
		t.Errorf("second row summary should be zero, got %+v", result[1].ActivitySummary)
	}
}

func TestListEntries_UnreadOnlyWithUserFilter(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	stored := testEntries(owner, 1)

	entries := &entryRepoMock{
		FindFunc: func(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error) {
			return stored, nil
		},
	}
	notifications := &notificationRepoMock{
		CountUnreadByEntryIDsFunc: func(ctx context.Context, userID uuid.UUID, entryIDs []uuid.UUID) (map[uuid.UUID]int, error) {
			if userID != owner {
				t.Errorf("unread lookup for wrong user: %v", userID)
			}
			return map[uuid.UUID]int{stored[0].ID: 4}, nil
		},
	}
	svc := newTestService(t, entries, nil, notifications)

	// Without a user filter, no unread lookup happens.
	result, err := svc.ListEntries(context.Background(), ListInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if notifications.calls != 0 {
		t.Errorf("unread lookup without user filter: got %d calls, want 0", notifications.calls)
	}
	if result[0].UnreadActivityCount != 0 {
		t.Errorf("unread should be 0 without user filter, got %d", result[0].UnreadActivityCount)
	}

	// With a user filter, the rows carry unread counts.
	result, err = svc.ListEntries(context.Background(), ListInput{UserID: &owner})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if notifications.calls != 1 {
		t.Errorf("unread lookups: got %d, want 1", notifications.calls)
	}
	if result[0].UnreadActivityCount != 4 {
		t.Errorf("unread: got %d, want 4", result[0].UnreadActivityCount)
	}
}

func TestListEntries_PassesFiltersThrough(t *testing.T) {
	t.Parallel()

	week := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	day := time.Date(2025, 6, 17, 15, 0, 0, 0, time.UTC)
	owner := uuid.New()

	entries := &entryRepoMock{
		FindFunc: func(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error) {
			if filter.WeekStart == nil || !filter.WeekStart.Equal(week) {
				t.Errorf("WeekStart filter not passed through: %v", filter.WeekStart)
			}
			if filter.Day == nil || !filter.Day.Equal(day) {
				t.Errorf("Day filter not passed through: %v", filter.Day)
			}
			if filter.UserID == nil || *filter.UserID != owner {
				t.Errorf("UserID filter not passed through: %v", filter.UserID)
			}
			return []domain.Entry{}, nil
		},
	}
	svc := newTestService(t, entries, nil, nil)

	result, err := svc.ListEntries(context.Background(), ListInput{
		WeekStart: &week,
		Date:      &day,
		UserID:    &owner,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result) != 0 {
		t.Fatalf("expected empty result, got %d", len(result))
	}
}

func TestListEntries_SnapsWeekFilterToMonday(t *testing.T) {
	t.Parallel()

	wednesday := time.Date(2025, 6, 18, 9, 30, 0, 0, time.UTC)
	monday := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

	entries := &entryRepoMock{
		FindFunc: func(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error) {
			if filter.WeekStart == nil || !filter.WeekStart.Equal(monday) {
				t.Errorf("WeekStart filter: got %v, want %v", filter.WeekStart, monday)
			}
			return []domain.Entry{}, nil
		},
	}
	svc := newTestService(t, entries, nil, nil)

	if _, err := svc.ListEntries(context.Background(), ListInput{WeekStart: &wednesday}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListEntries_RepoError(t *testing.T) {
	t.Parallel()

	repoErr := errors.New("connection lost")
	entries := &entryRepoMock{
		FindFunc: func(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error) {
			return nil, repoErr
		},
	}
	svc := newTestService(t, entries, nil, nil)

	_, err := svc.ListEntries(context.Background(), ListInput{})
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// WeeklySummary
// ---------------------------------------------------------------------------

func TestWeeklySummary_DefaultsToCurrentWeek(t *testing.T) {
	t.Parallel()

	wantWeek := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC) // Monday of testNow's week
	alice, bob := uuid.New(), uuid.New()

	entries := &entryRepoMock{
		WeekTotalsFunc: func(ctx context.Context, weekStart time.Time) (map[uuid.UUID]int, int, error) {
			if !weekStart.Equal(wantWeek) {
				t.Errorf("weekStart: got %v, want %v", weekStart, wantWeek)
			}
			return map[uuid.UUID]int{alice: 3, bob: 1}, 4, nil
		},
	}
	svc := newTestService(t, entries, nil, nil)

	result, err := svc.WeeklySummary(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.WeekStart.Equal(wantWeek) {
		t.Errorf("WeekStart: got %v, want %v", result.WeekStart, wantWeek)
	}
	if result.Totals[alice] != 3 || result.Totals[bob] != 1 {
		t.Errorf("Totals mismatch: %v", result.Totals)
	}
	if result.EntryCount != 4 {
		t.Errorf("EntryCount: got %d, want 4", result.EntryCount)
	}
}

func TestWeeklySummary_NormalizesMidweekInstant(t *testing.T) {
	t.Parallel()

	thursday := time.Date(2025, 3, 13, 18, 30, 0, 0, time.UTC)
	wantWeek := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	entries := &entryRepoMock{
		WeekTotalsFunc: func(ctx context.Context, weekStart time.Time) (map[uuid.UUID]int, int, error) {
			if !weekStart.Equal(wantWeek) {
				t.Errorf("weekStart: got %v, want %v", weekStart, wantWeek)
			}
			return map[uuid.UUID]int{}, 0, nil
		},
	}
	svc := newTestService(t, entries, nil, nil)

	result, err := svc.WeeklySummary(context.Background(), &thursday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.WeekStart.Equal(wantWeek) {
		t.Errorf("WeekStart: got %v, want %v", result.WeekStart, wantWeek)
	}
	if len(result.Totals) != 0 {
		t.Errorf("expected empty totals, got %v", result.Totals)
	}
}
