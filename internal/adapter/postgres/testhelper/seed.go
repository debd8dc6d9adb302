package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pairlog/pairlog-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a participant row. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Name:      "Test User " + suffix,
		LoveName:  "love-" + suffix,
		Track:     domain.TrackLeft,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, name, love_name, track, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Name, user.LoveName, string(user.Track), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedEntry creates an entry for the given user on the given date.
// WeekStart is derived the same way production code derives it.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, date time.Time, count int) domain.Entry {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	entry := domain.Entry{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      date,
		WeekStart: domain.WeekStartOf(date),
		Count:     count,
		Tags:      []string{},
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO entries (id, user_id, date, week_start, count, note, tags, image_url, edited_at, created_at)
		 VALUES ($1, $2, $3, $4, $5, NULL, NULL, NULL, NULL, $6)`,
		entry.ID, entry.UserID, entry.Date, entry.WeekStart, entry.Count, entry.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry insert entry: %v", err)
	}

	return entry
}

// SeedActivity appends an activity to an entry.
func SeedActivity(t *testing.T, pool *pgxpool.Pool, entryID, actorID uuid.UUID, typ domain.ActivityType, content *string) domain.EntryActivity {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	act := domain.EntryActivity{
		ID:        uuid.New(),
		EntryID:   entryID,
		ActorID:   actorID,
		Type:      typ,
		Content:   content,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO entry_activities (id, entry_id, actor_id, type, content, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		act.ID, act.EntryID, act.ActorID, string(act.Type), act.Content, act.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedActivity insert activity: %v", err)
	}

	return act
}

// SeedNotification creates a notification addressed to recipientID for the
// given entry/activity pair.
func SeedNotification(t *testing.T, pool *pgxpool.Pool, recipientID, actorID, entryID, activityID uuid.UUID, typ domain.ActivityType) domain.Notification {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	n := domain.Notification{
		ID:         uuid.New(),
		UserID:     recipientID,
		ActorID:    actorID,
		EntryID:    entryID,
		ActivityID: activityID,
		Type:       typ,
		IsRead:     false,
		CreatedAt:  now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO notifications (id, user_id, actor_id, entry_id, activity_id, type, is_read, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		n.ID, n.UserID, n.ActorID, n.EntryID, n.ActivityID, string(n.Type), n.IsRead, n.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedNotification insert notification: %v", err)
	}

	return n
}
