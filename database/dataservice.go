package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

type stagedOp struct {
	query string
	args  []any
}

// DataService is the unit of work: it pins one connection from the pool for
// its lifetime, hands out the three store handles sharing that connection,
// and accumulates staged mutations until Commit. One DataService per
// request; sequential use only.
//
// There is no optimistic concurrency token on any entity, so two units of
// work updating the same row resolve last-commit-wins.
type DataService struct {
	conn   *sql.Conn
	ops    []stagedOp
	staged map[string]struct{}
	closed bool

	users      *UserRepository
	activities *ActivityRepository
	sessions   *SessionRepository
}

// NewDataService pins a connection for a new unit of work. Callers must
// Close it when the request scope ends.
func (db *DB) NewDataService(ctx context.Context) (UnitOfWork, error) {
	conn, err := db.DB.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}

	ds := &DataService{
		conn:   conn,
		staged: make(map[string]struct{}),
	}
	ds.users = newUserRepository(ds)
	ds.activities = newActivityRepository(ds)
	ds.sessions = newSessionRepository(ds)
	return ds, nil
}

func (ds *DataService) Users() UserStore { return ds.users }

func (ds *DataService) Activities() ActivityStore { return ds.activities }

func (ds *DataService) Sessions() SessionStore { return ds.sessions }

func (ds *DataService) stage(table string, id uuid.UUID, query string, args []any) error {
	if ds.closed {
		return ErrClosed
	}
	ds.ops = append(ds.ops, stagedOp{query: query, args: args})
	ds.staged[table+"/"+id.String()] = struct{}{}
	return nil
}

func (ds *DataService) isStaged(table string, id uuid.UUID) bool {
	_, ok := ds.staged[table+"/"+id.String()]
	return ok
}

func (ds *DataService) discard() {
	ds.ops = nil
	clear(ds.staged)
}

// Commit applies every operation staged since creation or the previous
// commit inside a single transaction and returns the total rows affected.
// Any failure (constraint violation, dangling foreign key, lost connection)
// rolls the whole batch back and discards it; partial application is never
// observable. The DataService stays usable for the next batch.
func (ds *DataService) Commit(ctx context.Context) (int, error) {
	if ds.closed {
		return 0, ErrClosed
	}
	if len(ds.ops) == 0 {
		return 0, nil
	}

	tx, err := ds.conn.BeginTx(ctx, nil)
	if err != nil {
		ds.discard()
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	var affected int64
	for _, op := range ds.ops {
		res, err := tx.ExecContext(ctx, op.query, op.args...)
		if err != nil {
			tx.Rollback()
			ds.discard()
			return 0, fmt.Errorf("commit failed: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil {
			affected += n
		}
	}

	if err := tx.Commit(); err != nil {
		ds.discard()
		return 0, fmt.Errorf("commit failed: %w", err)
	}

	ds.discard()
	return int(affected), nil
}

// Close releases the pinned connection back to the pool. Staged but
// uncommitted changes are dropped. Safe to call more than once.
func (ds *DataService) Close() error {
	if ds.closed {
		return nil
	}
	ds.closed = true
	ds.discard()
	return ds.conn.Close()
}
