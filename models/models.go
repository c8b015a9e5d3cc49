package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// MoodRatings is the set of mood symbols the frontend offers for a session.
// The store accepts any non-empty rating; membership is only checked at the
// HTTP edge.
var MoodRatings = []string{"😞", "😐", "😊", "🤩"}

// DefaultActivityColor is used when a caller creates an activity without a color tag.
const DefaultActivityColor = "#4CAF50"

var (
	ErrMissingID       = errors.New("entity id is not set")
	ErrMissingGoogleID = errors.New("google id is required")
	ErrMissingEmail    = errors.New("email is required")
	ErrMissingName     = errors.New("name is required")
	ErrMissingColor    = errors.New("color is required")
	ErrMissingUserID   = errors.New("user id is required")
	ErrMissingActivity = errors.New("activity id is required")
	ErrMissingDate     = errors.New("date is required")
	ErrMissingRating   = errors.New("rating is required")
	ErrNonPositiveTime = errors.New("duration must be a positive number of minutes")
)

type User struct {
	ID        uuid.UUID `json:"id"`
	GoogleID  string    `json:"google_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Picture   string    `json:"picture,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) Validate() error {
	switch {
	case u.ID == uuid.Nil:
		return ErrMissingID
	case u.GoogleID == "":
		return ErrMissingGoogleID
	case u.Email == "":
		return ErrMissingEmail
	}
	return nil
}

type Activity struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Color      string    `json:"color"`
	Goal       string    `json:"goal,omitempty"`
	Predefined bool      `json:"predefined"`
	CreatedAt  time.Time `json:"created_at"`
}

func (a *Activity) Validate() error {
	switch {
	case a.ID == uuid.Nil:
		return ErrMissingID
	case a.Name == "":
		return ErrMissingName
	case a.Color == "":
		return ErrMissingColor
	}
	return nil
}

// Session is one logged practice session. Activity is an eager-loaded
// reference: it is nil unless the query that produced the session populated
// it, and it is never written back to storage.
type Session struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	ActivityID      uuid.UUID `json:"activity_id"`
	DurationMinutes int       `json:"duration_minutes"`
	Date            time.Time `json:"date"`
	Rating          string    `json:"rating"`
	Notes           string    `json:"notes,omitempty"`

	Activity *Activity `json:"activity,omitempty"`
}

func (s *Session) Validate() error {
	switch {
	case s.ID == uuid.Nil:
		return ErrMissingID
	case s.UserID == uuid.Nil:
		return ErrMissingUserID
	case s.ActivityID == uuid.Nil:
		return ErrMissingActivity
	case s.DurationMinutes <= 0:
		return ErrNonPositiveTime
	case s.Date.IsZero():
		return ErrMissingDate
	case s.Rating == "":
		return ErrMissingRating
	}
	return nil
}
