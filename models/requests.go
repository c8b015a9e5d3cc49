package models

import "time"

type LoginRequest struct {
	Code    string `json:"code"`
	IDToken string `json:"id_token"`
}

type CreateUserRequest struct {
	GoogleID string `json:"google_id" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"max=100"`
	Picture  string `json:"picture" validate:"omitempty,url"`
}

type UpdateUserRequest struct {
	Name    string `json:"name" validate:"max=100"`
	Picture string `json:"picture" validate:"omitempty,url"`
}

type CreateActivityRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100,activityname"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
	Goal  string `json:"goal" validate:"max=500"`
}

type UpdateActivityRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100,activityname"`
	Color string `json:"color" validate:"required,hexcolor"`
	Goal  string `json:"goal" validate:"max=500"`
}

type CreateSessionRequest struct {
	UserID          string    `json:"user_id" validate:"required,uuid"`
	ActivityID      string    `json:"activity_id" validate:"required,uuid"`
	DurationMinutes int       `json:"duration_minutes" validate:"required,gt=0"`
	Date            time.Time `json:"date" validate:"required"`
	Rating          string    `json:"rating" validate:"required,mood"`
	Notes           string    `json:"notes" validate:"max=2000"`
}

type UpdateSessionRequest struct {
	DurationMinutes int       `json:"duration_minutes" validate:"required,gt=0"`
	Date            time.Time `json:"date" validate:"required"`
	Rating          string    `json:"rating" validate:"required,mood"`
	Notes           string    `json:"notes" validate:"max=2000"`
}
