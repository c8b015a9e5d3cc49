package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// mapping describes how one entity type binds to its table. Each specialized
// store supplies one; the generic repo does the rest.
type mapping[T any] struct {
	table    string
	cols     string // select column list, matching scan
	scan     func(rowScanner) (*T, error)
	insert   func(*T) (string, []any)
	update   func(*T) (string, []any)
	id       func(*T) uuid.UUID
	validate func(*T) error
}

// repo implements the staged CRUD operations shared by all three stores.
// Reads go straight to the unit of work's connection and see committed state
// only; mutations are queued on the owning DataService until Commit.
type repo[T any] struct {
	ds *DataService
	m  mapping[T]
}

func (r *repo[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	if r.ds.closed {
		return nil, ErrClosed
	}
	row := r.ds.conn.QueryRowContext(ctx,
		"SELECT "+r.m.cols+" FROM "+r.m.table+" WHERE id = ?", id)
	e, err := r.m.scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *repo[T]) GetAll(ctx context.Context) ([]T, error) {
	if r.ds.closed {
		return nil, ErrClosed
	}
	rows, err := r.ds.conn.QueryContext(ctx, "SELECT "+r.m.cols+" FROM "+r.m.table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		e, err := r.m.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

// Add stages an insert. The entity must pass validation and must not already
// be staged in the current batch.
func (r *repo[T]) Add(e *T) error {
	if err := r.m.validate(e); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEntity, err)
	}
	id := r.m.id(e)
	if r.ds.isStaged(r.m.table, id) {
		return fmt.Errorf("%w: %s %s", ErrAlreadyStaged, r.m.table, id)
	}
	query, args := r.m.insert(e)
	return r.ds.stage(r.m.table, id, query, args)
}

// Update stages a full-record replace keyed by the entity's id. Whether a
// row existed only shows up in the commit's affected-row count.
func (r *repo[T]) Update(e *T) error {
	if err := r.m.validate(e); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEntity, err)
	}
	query, args := r.m.update(e)
	return r.ds.stage(r.m.table, r.m.id(e), query, args)
}

// Delete stages a delete by id. Idempotent: an absent id is still success.
func (r *repo[T]) Delete(id uuid.UUID) error {
	return r.ds.stage(r.m.table, id,
		"DELETE FROM "+r.m.table+" WHERE id = ?", []any{id})
}
