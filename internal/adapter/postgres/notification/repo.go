// Package notification implements the Notification repository using PostgreSQL.
package notification

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/pairlog/pairlog-backend/internal/adapter/postgres"
	"github.com/pairlog/pairlog-backend/internal/domain"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const table = "notifications"

const columns = "id, user_id, actor_id, entry_id, activity_id, type, is_read, created_at"

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new notification repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new notification and returns the persisted row.
func (r *Repo) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Insert(table).
		Columns("id", "user_id", "actor_id", "entry_id", "activity_id", "type", "is_read", "created_at").
		Values(n.ID, n.UserID, n.ActorID, n.EntryID, n.ActivityID, string(n.Type), n.IsRead, n.CreatedAt).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create notification: %w", err)
	}

	created, err := scanNotification(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "notification", n.ID)
	}

	return created, nil
}

// CountUnread returns the number of unread notifications for a recipient.
func (r *Repo) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Select("COUNT(*)").
		From(table).
		Where(sq.Eq{"user_id": userID, "is_read": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count unread: %w", err)
	}

	var count int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count unread: %w", err)
	}

	return int(count), nil
}

// MarkRead marks all unread notifications for a recipient on one entry as
// read and returns the number of rows flipped. Calling it again is a no-op.
func (r *Repo) MarkRead(ctx context.Context, entryID, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Update(table).
		Set("is_read", true).
		Where(sq.Eq{"entry_id": entryID, "user_id": userID, "is_read": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build mark read: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("mark read: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// CountUnreadByEntryIDs returns per-entry unread counts for a recipient.
// Entries with no unread notifications are absent from the map.
func (r *Repo) CountUnreadByEntryIDs(ctx context.Context, userID uuid.UUID, entryIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	counts := map[uuid.UUID]int{}
	if len(entryIDs) == 0 {
		return counts, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Select("entry_id", "COUNT(*)").
		From(table).
		Where(sq.Eq{"user_id": userID, "is_read": false, "entry_id": entryIDs}).
		GroupBy("entry_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count unread by entry: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("count unread by entry: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entryID uuid.UUID
		var cnt int64
		if err := rows.Scan(&entryID, &cnt); err != nil {
			return nil, fmt.Errorf("scan unread count: %w", err)
		}
		counts[entryID] = int(cnt)
	}

	return counts, rows.Err()
}

func scanNotification(row pgx.Row) (*domain.Notification, error) {
	var n domain.Notification
	var typ string

	err := row.Scan(&n.ID, &n.UserID, &n.ActorID, &n.EntryID, &n.ActivityID, &typ, &n.IsRead, &n.CreatedAt)
	if err != nil {
		return nil, err
	}

	n.Type = domain.ActivityType(typ)
	return &n, nil
}
