package database

import (
	"context"
	"errors"
	"time"

	"helix/models"

	"github.com/google/uuid"
)

var (
	// ErrClosed is returned by every operation on a DataService after Close.
	ErrClosed = errors.New("data service is closed")

	// ErrAlreadyStaged is returned by Add when an entity with the same id
	// has already been staged in the current batch.
	ErrAlreadyStaged = errors.New("entity already staged in this batch")

	// ErrInvalidEntity wraps the entity's own validation error when Add or
	// Update rejects it before staging.
	ErrInvalidEntity = errors.New("invalid entity")
)

// UserStore provides staged CRUD plus user-specific queries.
// Lookup misses resolve to a nil entity, never an error.
type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	Add(u *models.User) error
	Update(u *models.User) error
	Delete(id uuid.UUID) error

	GetByGoogleID(ctx context.Context, googleID string) (*models.User, error)
	// ExistsByEmail is an advisory duplicate check: subject to a race between
	// check and insert under concurrent callers.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// ActivityStore provides staged CRUD plus activity-specific queries.
type ActivityStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Activity, error)
	GetAll(ctx context.Context) ([]models.Activity, error)
	Add(a *models.Activity) error
	Update(a *models.Activity) error
	Delete(id uuid.UUID) error

	// ExistsByName is advisory, exactly like UserStore.ExistsByEmail.
	ExistsByName(ctx context.Context, name string) (bool, error)
	// Predefined returns the curated global activity catalog.
	Predefined(ctx context.Context) ([]models.Activity, error)
}

// SessionStore provides staged CRUD plus session-specific queries.
type SessionStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Session, error)
	GetAll(ctx context.Context) ([]models.Session, error)
	Add(s *models.Session) error
	Update(s *models.Session) error
	Delete(id uuid.UUID) error

	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Session, error)
	// GetByActivityID eager-loads each session's Activity reference.
	GetByActivityID(ctx context.Context, activityID uuid.UUID) ([]models.Session, error)
	// GetByDateRange returns the user's sessions with start <= date <= end,
	// ascending by date, ties broken by id.
	GetByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.Session, error)
}

// UnitOfWork aggregates the three stores behind one storage connection.
// Mutations staged through the stores apply together on Commit or not at
// all. A UnitOfWork is scoped to a single request and is not safe for
// concurrent use.
type UnitOfWork interface {
	Users() UserStore
	Activities() ActivityStore
	Sessions() SessionStore

	// Commit flushes every staged operation as one transaction and returns
	// the number of rows affected. On error the whole batch is discarded and
	// the unit of work remains usable for a fresh batch.
	Commit(ctx context.Context) (int, error)

	// Close releases the underlying connection. Idempotent. Staged but
	// uncommitted changes are dropped, never applied.
	Close() error
}

// Factory opens a new UnitOfWork, one per request.
type Factory func(ctx context.Context) (UnitOfWork, error)
