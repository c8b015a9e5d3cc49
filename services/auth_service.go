package services

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"helix/config"
	"helix/database"
	"helix/models"
	"helix/session"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// AuthService handles authentication business logic
type AuthService struct {
	data         database.Factory
	sessionStore *session.Store
}

// NewAuthService creates a new auth service
func NewAuthService(data database.Factory, sessionStore *session.Store) *AuthService {
	return &AuthService{data: data, sessionStore: sessionStore}
}

// UserInfo represents user information from Google
type UserInfo struct {
	GoogleID string
	Email    string
	Name     string
	Picture  string
}

// LoginWithCode handles login via OAuth authorization code
func (as *AuthService) LoginWithCode(ctx context.Context, code string) (*session.Session, error) {
	oauthConfig := &oauth2.Config{
		ClientID:     config.AppConfig.GoogleClientID,
		ClientSecret: config.AppConfig.GoogleClientSecret,
		RedirectURL:  config.AppConfig.GoogleRedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	token, err := oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, ErrInvalidAuthCode
	}

	userInfo, err := as.getUserInfo(token.AccessToken)
	if err != nil {
		return nil, err
	}

	user, err := as.createOrUpdateUser(ctx, userInfo)
	if err != nil {
		return nil, err
	}

	return as.sessionStore.Create(user.ID, user.Email, user.Name, user.Picture)
}

// LoginWithIDToken handles login via Google One Tap ID token
func (as *AuthService) LoginWithIDToken(ctx context.Context, idToken string) (*session.Session, error) {
	payload, err := idtoken.Validate(ctx, idToken, config.AppConfig.GoogleClientID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)
	googleID := payload.Subject

	if googleID == "" || email == "" {
		return nil, ErrInvalidUserInfo
	}

	userInfo := &UserInfo{
		GoogleID: googleID,
		Email:    email,
		Name:     name,
		Picture:  picture,
	}

	user, err := as.createOrUpdateUser(ctx, userInfo)
	if err != nil {
		return nil, err
	}

	return as.sessionStore.Create(user.ID, user.Email, user.Name, user.Picture)
}

// Logout discards a login session
func (as *AuthService) Logout(sessionID string) error {
	return as.sessionStore.Delete(sessionID)
}

// GetSessionInfo returns current session information
func (as *AuthService) GetSessionInfo(sessionID string) (*session.Session, error) {
	sess, err := as.sessionStore.Get(sessionID)
	if err != nil || sess == nil {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// createOrUpdateUser upserts the Google identity through one unit of work
func (as *AuthService) createOrUpdateUser(ctx context.Context, info *UserInfo) (*models.User, error) {
	ds, err := as.data(ctx)
	if err != nil {
		return nil, err
	}
	defer ds.Close()

	user, err := ds.Users().GetByGoogleID(ctx, info.GoogleID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		user = &models.User{
			ID:        uuid.New(),
			GoogleID:  info.GoogleID,
			Email:     info.Email,
			Name:      info.Name,
			Picture:   info.Picture,
			CreatedAt: time.Now().UTC(),
		}
		if err := ds.Users().Add(user); err != nil {
			return nil, err
		}
	} else {
		user.Email = info.Email
		user.Name = info.Name
		user.Picture = info.Picture
		if err := ds.Users().Update(user); err != nil {
			return nil, err
		}
	}

	if _, err := ds.Commit(ctx); err != nil {
		return nil, err
	}
	return user, nil
}

// getUserInfo fetches user information from Google
func (as *AuthService) getUserInfo(accessToken string) (*UserInfo, error) {
	req, err := http.NewRequest("GET", "https://www.googleapis.com/oauth2/v3/userinfo", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, ErrInvalidToken
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrInvalidToken
	}

	var payload struct {
		Sub     string `json:"sub"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, ErrInvalidUserInfo
	}
	if payload.Sub == "" || payload.Email == "" {
		return nil, ErrInvalidUserInfo
	}

	return &UserInfo{
		GoogleID: payload.Sub,
		Email:    payload.Email,
		Name:     payload.Name,
		Picture:  payload.Picture,
	}, nil
}
