package services

import (
	"context"
	"time"

	"helix/database"
	"helix/models"

	"github.com/google/uuid"
)

// SessionService handles business logic for practice sessions
type SessionService struct {
	data database.Factory
}

// NewSessionService creates a new session service
func NewSessionService(data database.Factory) *SessionService {
	return &SessionService{data: data}
}

// List retrieves all sessions
func (ss *SessionService) List(ctx context.Context) ([]models.Session, error) {
	ds, err := ss.data(ctx)
	if err != nil {
		return nil, err
	}
	defer ds.Close()

	return ds.Sessions().GetAll(ctx)
}

// ListByUser retrieves one user's sessions
func (ss *SessionService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Session, error) {
	ds, err := ss.data(ctx)
	if err != nil {
		return nil, err
	}
	defer ds.Close()

	return ds.Sessions().GetByUserID(ctx, userID)
}

// ListByActivity retrieves the sessions logged against one activity,
// with the activity reference populated on each result
func (ss *SessionService) ListByActivity(ctx context.Context, activityID uuid.UUID) ([]models.Session, error) {
	ds, err := ss.data(ctx)
	if err != nil {
		return nil, err
	}
	defer ds.Close()

	return ds.Sessions().GetByActivityID(ctx, activityID)
}

// ListByDateRange retrieves one user's sessions between start and end,
// inclusive on both bounds, ascending by date
func (ss *SessionService) ListByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.Session, error) {
	if start.After(end) {
		return nil, ErrInvalidDateRange
	}

	ds, err := ss.data(ctx)
	if err != nil {
		return nil, err
	}
	defer ds.Close()

	return ds.Sessions().GetByDateRange(ctx, userID, start, end)
}

// Get retrieves a session by id
func (ss *SessionService) Get(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	ds, err := ss.data(ctx)
	if err != nil {
		return nil, err
	}
	defer ds.Close()

	return ds.Sessions().GetByID(ctx, id)
}

// Create logs a new session. The owning user and target activity are
// checked up front so the caller gets an attributable error instead of a
// foreign-key failure at commit time.
func (ss *SessionService) Create(ctx context.Context, userID, activityID uuid.UUID, durationMinutes int, date time.Time, rating, notes string) (*models.Session, error) {
	ds, err := ss.data(ctx)
	if err != nil {
		return nil, err
	}
	defer ds.Close()

	user, err := ds.Users().GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	activity, err := ds.Activities().GetByID(ctx, activityID)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, ErrActivityNotFound
	}

	session := &models.Session{
		ID:              uuid.New(),
		UserID:          userID,
		ActivityID:      activityID,
		DurationMinutes: durationMinutes,
		Date:            date,
		Rating:          rating,
		Notes:           notes,
	}

	if err := ds.Sessions().Add(session); err != nil {
		return nil, err
	}
	if _, err := ds.Commit(ctx); err != nil {
		return nil, err
	}

	return session, nil
}

// Update replaces a session's duration, date, rating and notes
func (ss *SessionService) Update(ctx context.Context, id uuid.UUID, durationMinutes int, date time.Time, rating, notes string) (*models.Session, error) {
	ds, err := ss.data(ctx)
	if err != nil {
		return nil, err
	}
	defer ds.Close()

	session, err := ds.Sessions().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrPracticeNotFound
	}

	session.DurationMinutes = durationMinutes
	session.Date = date
	session.Rating = rating
	session.Notes = notes

	if err := ds.Sessions().Update(session); err != nil {
		return nil, err
	}
	if _, err := ds.Commit(ctx); err != nil {
		return nil, err
	}

	return session, nil
}

// Delete removes a session. Deleting an unknown id is a no-op.
func (ss *SessionService) Delete(ctx context.Context, id uuid.UUID) error {
	ds, err := ss.data(ctx)
	if err != nil {
		return err
	}
	defer ds.Close()

	if err := ds.Sessions().Delete(id); err != nil {
		return err
	}
	_, err = ds.Commit(ctx)
	return err
}
