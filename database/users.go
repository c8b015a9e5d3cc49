package database

import (
	"context"
	"database/sql"
	"errors"

	"helix/models"

	"github.com/google/uuid"
)

const userCols = "id, google_id, email, name, picture, created_at"

type UserRepository struct {
	repo[models.User]
}

func newUserRepository(ds *DataService) *UserRepository {
	return &UserRepository{repo[models.User]{
		ds: ds,
		m: mapping[models.User]{
			table: "users",
			cols:  userCols,
			scan:  scanUser,
			insert: func(u *models.User) (string, []any) {
				return `INSERT INTO users (id, google_id, email, name, picture, created_at)
					VALUES (?, ?, ?, ?, ?, ?)`,
					[]any{u.ID, u.GoogleID, u.Email, u.Name, u.Picture, u.CreatedAt}
			},
			update: func(u *models.User) (string, []any) {
				return `UPDATE users SET google_id = ?, email = ?, name = ?, picture = ?, created_at = ?
					WHERE id = ?`,
					[]any{u.GoogleID, u.Email, u.Name, u.Picture, u.CreatedAt, u.ID}
			},
			id:       func(u *models.User) uuid.UUID { return u.ID },
			validate: func(u *models.User) error { return u.Validate() },
		},
	}}
}

func scanUser(s rowScanner) (*models.User, error) {
	var u models.User
	if err := s.Scan(&u.ID, &u.GoogleID, &u.Email, &u.Name, &u.Picture, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByGoogleID looks a user up by external identity. Returns nil on miss.
func (r *UserRepository) GetByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	if r.ds.closed {
		return nil, ErrClosed
	}
	row := r.ds.conn.QueryRowContext(ctx,
		"SELECT "+userCols+" FROM users WHERE google_id = ?", googleID)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// ExistsByEmail reports whether a committed user has exactly this email.
// Advisory only: a concurrent insert between check and commit wins the race.
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if r.ds.closed {
		return false, ErrClosed
	}
	var n int
	err := r.ds.conn.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM users WHERE email = ?", email).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
