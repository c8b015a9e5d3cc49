package database

import (
	"context"
	"time"

	"helix/models"

	"github.com/google/uuid"
)

const sessionCols = "id, user_id, activity_id, duration_minutes, date, rating, notes"

type SessionRepository struct {
	repo[models.Session]
}

func newSessionRepository(ds *DataService) *SessionRepository {
	return &SessionRepository{repo[models.Session]{
		ds: ds,
		m: mapping[models.Session]{
			table: "sessions",
			cols:  sessionCols,
			scan:  scanSession,
			insert: func(s *models.Session) (string, []any) {
				return `INSERT INTO sessions (id, user_id, activity_id, duration_minutes, date, rating, notes)
					VALUES (?, ?, ?, ?, ?, ?, ?)`,
					[]any{s.ID, s.UserID, s.ActivityID, s.DurationMinutes, s.Date, s.Rating, s.Notes}
			},
			update: func(s *models.Session) (string, []any) {
				return `UPDATE sessions SET user_id = ?, activity_id = ?, duration_minutes = ?, date = ?, rating = ?, notes = ?
					WHERE id = ?`,
					[]any{s.UserID, s.ActivityID, s.DurationMinutes, s.Date, s.Rating, s.Notes, s.ID}
			},
			id:       func(s *models.Session) uuid.UUID { return s.ID },
			validate: func(s *models.Session) error { return s.Validate() },
		},
	}}
}

func scanSession(s rowScanner) (*models.Session, error) {
	var sess models.Session
	if err := s.Scan(&sess.ID, &sess.UserID, &sess.ActivityID,
		&sess.DurationMinutes, &sess.Date, &sess.Rating, &sess.Notes); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (r *SessionRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Session, error) {
	if r.ds.closed {
		return nil, ErrClosed
	}
	rows, err := r.ds.conn.QueryContext(ctx,
		"SELECT "+sessionCols+" FROM sessions WHERE user_id = ?", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]models.Session, 0)
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *sess)
	}
	return sessions, rows.Err()
}

// GetByActivityID returns the sessions logged against one activity with the
// Activity reference eager-loaded, so callers need no follow-up lookup.
func (r *SessionRepository) GetByActivityID(ctx context.Context, activityID uuid.UUID) ([]models.Session, error) {
	if r.ds.closed {
		return nil, ErrClosed
	}
	rows, err := r.ds.conn.QueryContext(ctx, `
		SELECT s.id, s.user_id, s.activity_id, s.duration_minutes, s.date, s.rating, s.notes,
		       a.id, a.name, a.color, a.goal, a.predefined, a.created_at
		FROM sessions s
		JOIN activities a ON a.id = s.activity_id
		WHERE s.activity_id = ?
	`, activityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]models.Session, 0)
	for rows.Next() {
		var sess models.Session
		var act models.Activity
		err := rows.Scan(&sess.ID, &sess.UserID, &sess.ActivityID,
			&sess.DurationMinutes, &sess.Date, &sess.Rating, &sess.Notes,
			&act.ID, &act.Name, &act.Color, &act.Goal, &act.Predefined, &act.CreatedAt)
		if err != nil {
			return nil, err
		}
		sess.Activity = &act
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// GetByDateRange returns one user's sessions with start <= date <= end,
// both bounds inclusive, ascending by date with id as the tiebreak.
func (r *SessionRepository) GetByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.Session, error) {
	if r.ds.closed {
		return nil, ErrClosed
	}
	rows, err := r.ds.conn.QueryContext(ctx,
		"SELECT "+sessionCols+` FROM sessions
		WHERE user_id = ? AND date >= ? AND date <= ?
		ORDER BY date ASC, id ASC`,
		userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]models.Session, 0)
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *sess)
	}
	return sessions, rows.Err()
}
