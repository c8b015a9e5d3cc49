package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSessionValidate(t *testing.T) {
	valid := func() Session {
		return Session{
			ID:              uuid.New(),
			UserID:          uuid.New(),
			ActivityID:      uuid.New(),
			DurationMinutes: 30,
			Date:            time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC),
			Rating:          "😊",
		}
	}

	tests := []struct {
		name   string
		mutate func(*Session)
		want   error
	}{
		{"valid", func(s *Session) {}, nil},
		{"missing id", func(s *Session) { s.ID = uuid.Nil }, ErrMissingID},
		{"missing user", func(s *Session) { s.UserID = uuid.Nil }, ErrMissingUserID},
		{"missing activity", func(s *Session) { s.ActivityID = uuid.Nil }, ErrMissingActivity},
		{"zero duration", func(s *Session) { s.DurationMinutes = 0 }, ErrNonPositiveTime},
		{"negative duration", func(s *Session) { s.DurationMinutes = -5 }, ErrNonPositiveTime},
		{"zero date", func(s *Session) { s.Date = time.Time{} }, ErrMissingDate},
		{"empty rating", func(s *Session) { s.Rating = "" }, ErrMissingRating},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(&s)
			assert.ErrorIs(t, s.Validate(), tt.want)
		})
	}
}

func TestUserValidate(t *testing.T) {
	u := User{ID: uuid.New(), GoogleID: "g", Email: "u@example.com"}
	assert.NoError(t, u.Validate())

	u.Email = ""
	assert.ErrorIs(t, u.Validate(), ErrMissingEmail)

	u.GoogleID = ""
	assert.ErrorIs(t, u.Validate(), ErrMissingGoogleID)

	u.ID = uuid.Nil
	assert.ErrorIs(t, u.Validate(), ErrMissingID)
}

func TestActivityValidate(t *testing.T) {
	a := Activity{ID: uuid.New(), Name: "Guitar", Color: "#FF5733"}
	assert.NoError(t, a.Validate())

	a.Color = ""
	assert.ErrorIs(t, a.Validate(), ErrMissingColor)

	a.Name = ""
	assert.ErrorIs(t, a.Validate(), ErrMissingName)
}
