// Package activity implements the EntryActivity repository using PostgreSQL.
package activity

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

const table = "entry_activities"

const columns = "id, entry_id, actor_id, type, content, created_at"

// Repo provides activity persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new activity repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new activity and returns the persisted row.
// Returns domain.ErrNotFound (via the FK) if the entry does not exist.
func (r *Repo) Create(ctx context.Context, a *domain.EntryActivity) (*domain.EntryActivity, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Insert(table).
		Columns("id", "entry_id", "actor_id", "type", "content", "created_at").
		Values(a.ID, a.EntryID, a.ActorID, string(a.Type), a.Content, a.CreatedAt).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create activity: %w", err)
	}

	created, err := scanActivity(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "activity", a.ID)
	}

	return created, nil
}

// ListByEntryID returns all activities for an entry in creation order.
func (r *Repo) ListByEntryID(ctx context.Context, entryID uuid.UUID) ([]domain.EntryActivity, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Select(columns).
		From(table).
		Where(sq.Eq{"entry_id": entryID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list activities: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	activities := []domain.EntryActivity{}
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		activities = append(activities, *a)
	}

	return activities, rows.Err()
}

// CountByEntryIDs returns per-entry activity counts grouped by type.
// Entries with no activity are absent from the map.
func (r *Repo) CountByEntryIDs(ctx context.Context, entryIDs []uuid.UUID) (map[uuid.UUID]domain.ActivitySummary, error) {
	summaries := map[uuid.UUID]domain.ActivitySummary{}
	if len(entryIDs) == 0 {
		return summaries, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Select("entry_id", "type", "COUNT(*)").
		From(table).
		Where(sq.Eq{"entry_id": entryIDs}).
		GroupBy("entry_id", "type").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count activities: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("count activities: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entryID uuid.UUID
		var typ string
		var cnt int64
		if err := rows.Scan(&entryID, &typ, &cnt); err != nil {
			return nil, fmt.Errorf("scan activity count: %w", err)
		}

		s := summaries[entryID]
		s.Add(domain.ActivityType(typ), int(cnt))
		summaries[entryID] = s
	}

	return summaries, rows.Err()
}

func scanActivity(row pgx.Row) (*domain.EntryActivity, error) {
	var a domain.EntryActivity
	var typ string

	err := row.Scan(&a.ID, &a.EntryID, &a.ActorID, &typ, &a.Content, &a.CreatedAt)
	if err != nil {
		return nil, err
	}

	a.Type = domain.ActivityType(typ)
	return &a, nil
}
