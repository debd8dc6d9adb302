// Package entry implements the Entry repository using PostgreSQL.
// Entries are the count events the rest of the system hangs off.
package entry

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/pairlog/pairlog-backend/internal/adapter/postgres"
	"github.com/pairlog/pairlog-backend/internal/domain"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const table = "entries"

const columns = "id, user_id, date, week_start, count, note, tags, image_url, edited_at, created_at"

// Repo provides entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new entry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an entry by primary key.
// Returns domain.ErrNotFound if the entry does not exist. Ownership is NOT
// checked here: the service needs the stored owner to distinguish
// ErrForbidden from ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Select(columns).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get entry: %w", err)
	}

	e, err := scanEntry(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "entry", id)
	}

	return e, nil
}

// Find returns entries matching the filter, ordered by date DESC.
func (r *Repo) Find(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := builder.
		Select(columns).
		From(table).
		OrderBy("date DESC")

	if filter.WeekStart != nil {
		query = query.Where(sq.Eq{"week_start": *filter.WeekStart})
	}
	if filter.Day != nil {
		start, end := domain.DayBounds(*filter.Day)
		query = query.Where(sq.GtOrEq{"date": start}).Where(sq.Lt{"date": end})
	}
	if filter.UserID != nil {
		query = query.Where(sq.Eq{"user_id": *filter.UserID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find entries: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("find entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, *e)
	}

	return entries, rows.Err()
}

// WeekTotals returns the per-user sum of counts and the number of entries
// for the given week. Users without entries in the week are absent from
// the map.
func (r *Repo) WeekTotals(ctx context.Context, weekStart time.Time) (map[uuid.UUID]int, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Select("user_id", "SUM(count)", "COUNT(*)").
		From(table).
		Where(sq.Eq{"week_start": weekStart}).
		GroupBy("user_id").
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build week totals: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("week totals: %w", err)
	}
	defer rows.Close()

	totals := map[uuid.UUID]int{}
	entryCount := 0
	for rows.Next() {
		var userID uuid.UUID
		var sum, cnt int64
		if err := rows.Scan(&userID, &sum, &cnt); err != nil {
			return nil, 0, fmt.Errorf("scan week total: %w", err)
		}
		totals[userID] = int(sum)
		entryCount += int(cnt)
	}

	return totals, entryCount, rows.Err()
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new entry and returns the persisted row.
func (r *Repo) Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Insert(table).
		Columns("id", "user_id", "date", "week_start", "count", "note", "tags", "image_url", "edited_at", "created_at").
		Values(e.ID, e.UserID, e.Date, e.WeekStart, e.Count,
			e.Note, domain.EncodeTags(e.Tags), e.ImageURL, e.EditedAt, e.CreatedAt).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create entry: %w", err)
	}

	created, err := scanEntry(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "entry", e.ID)
	}

	return created, nil
}

// Update persists the full merged state of an entry. The service owns the
// tri-state merge; the repository writes whatever it is handed.
func (r *Repo) Update(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Update(table).
		Set("date", e.Date).
		Set("week_start", e.WeekStart).
		Set("count", e.Count).
		Set("note", e.Note).
		Set("tags", domain.EncodeTags(e.Tags)).
		Set("image_url", e.ImageURL).
		Set("edited_at", e.EditedAt).
		Where(sq.Eq{"id": e.ID}).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update entry: %w", err)
	}

	updated, err := scanEntry(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "entry", e.ID)
	}

	return updated, nil
}

// Delete removes an entry row. Activities and notifications referencing it
// go with it via ON DELETE CASCADE.
// Returns domain.ErrNotFound if the entry does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete entry: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "entry", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("entry %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanEntry(row pgx.Row) (*domain.Entry, error) {
	var e domain.Entry
	var tags *string

	err := row.Scan(&e.ID, &e.UserID, &e.Date, &e.WeekStart, &e.Count,
		&e.Note, &tags, &e.ImageURL, &e.EditedAt, &e.CreatedAt)
	if err != nil {
		return nil, err
	}

	e.Tags = domain.DecodeTags(tags)
	return &e, nil
}
