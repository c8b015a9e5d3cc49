package services

import "errors"

// Common service-level errors
var (
	// Auth errors
	ErrInvalidAuthCode = errors.New("invalid authorization code")
	ErrInvalidToken    = errors.New("invalid token")
	ErrInvalidUserInfo = errors.New("invalid user information")
	ErrSessionNotFound = errors.New("session not found")

	// User errors
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("a user with this email already exists")

	// Activity errors
	ErrActivityNotFound  = errors.New("activity not found")
	ErrActivityNameTaken = errors.New("an activity with this name already exists")

	// Session errors
	ErrPracticeNotFound = errors.New("session not found")
	ErrInvalidDateRange = errors.New("start date must not be after end date")
)
