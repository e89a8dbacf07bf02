package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/SolarInitiative/Cloud-Solar-Backend/app/observability/metrics"
	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/types"
)

// Table maps the rows of one table with a BIGSERIAL key onto T. Errors are passed through
// MapError, so callers see types.ErrNotFound and types.ErrConflict.
type Table[T any] struct {
	Name    string
	Key     string
	Columns string
	Scan    func(row pgx.Row) (*T, error)
	// Touch lists columns set to now() on every update, e.g. updated_at.
	Touch []string
}

func (t Table[T]) op(name string) string { return t.Name + "." + name }

func (t Table[T]) Get(ctx context.Context, db DB, id int64) (*T, error) {
	start := time.Now()
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", t.Columns, t.Name, t.Key)
	v, err := t.Scan(db.QueryRow(ctx, query, id))
	err = MapError(err)
	metrics.ObserveQuery(ctx, t.op("get"), start, IgnoreNotFound(err))
	if err != nil {
		return nil, err
	}
	return v, nil
}

// List returns one page ordered by key.
func (t Table[T]) List(ctx context.Context, db DB, f *Filter, page types.Pagination) ([]T, error) {
	page = page.Normalize()
	where, args := f.Where()
	n := len(args)
	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s OFFSET $%d LIMIT $%d",
		t.Columns, t.Name, where, t.Key, n+1, n+2)
	args = append(args, page.Skip, page.Limit)

	start := time.Now()
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		metrics.ObserveQuery(ctx, t.op("list"), start, err)
		return nil, fmt.Errorf("query %s: %w", t.Name, err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		v, err := t.Scan(rows)
		if err != nil {
			metrics.ObserveQuery(ctx, t.op("list"), start, err)
			return nil, fmt.Errorf("scan %s: %w", t.Name, err)
		}
		out = append(out, *v)
	}
	err = rows.Err()
	metrics.ObserveQuery(ctx, t.op("list"), start, err)
	if err != nil {
		return nil, fmt.Errorf("iterate %s: %w", t.Name, err)
	}
	return out, nil
}

func (t Table[T]) Insert(ctx context.Context, db DB, set *UpdateSet) (*T, error) {
	query, args := set.BuildInsert(t.Name, t.Columns)
	start := time.Now()
	v, err := t.Scan(db.QueryRow(ctx, query, args...))
	err = MapError(err)
	metrics.ObserveQuery(ctx, t.op("insert"), start, err)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Update applies set to the row and returns it. An empty set returns the stored row unchanged.
func (t Table[T]) Update(ctx context.Context, db DB, id int64, set *UpdateSet) (*T, error) {
	if set.Len() == 0 {
		return t.Get(ctx, db, id)
	}
	for _, col := range t.Touch {
		set.SetRaw(col, "now()")
	}
	query, args, err := set.Build(t.Name, t.Key, id, t.Columns)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	v, err := t.Scan(db.QueryRow(ctx, query, args...))
	err = MapError(err)
	metrics.ObserveQuery(ctx, t.op("update"), start, IgnoreNotFound(err))
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (t Table[T]) Delete(ctx context.Context, db DB, id int64) error {
	start := time.Now()
	tag, err := db.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE %s = $1", t.Name, t.Key), id)
	err = MapError(err)
	metrics.ObserveQuery(ctx, t.op("delete"), start, err)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return types.ErrNotFound
	}
	return nil
}
