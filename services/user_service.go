package services

import (
	"context"
	"strings"
	"time"

	"helix/database"
	"helix/models"

	"github.com/google/uuid"
)

// UserService handles business logic for users
type UserService struct {
	data database.Factory
}

// NewUserService creates a new user service
func NewUserService(data database.Factory) *UserService {
	return &UserService{data: data}
}

// List retrieves all users
func (us *UserService) List(ctx context.Context) ([]models.User, error) {
	ds, err := us.data(ctx)
	if err != nil {
		return nil, err
	}
	defer ds.Close()

	return ds.Users().GetAll(ctx)
}

// Get retrieves a user by id
func (us *UserService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	ds, err := us.data(ctx)
	if err != nil {
		return nil, err
	}
	defer ds.Close()

	return ds.Users().GetByID(ctx, id)
}

// GetByGoogleID retrieves a user by external identity
func (us *UserService) GetByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	ds, err := us.data(ctx)
	if err != nil {
		return nil, err
	}
	defer ds.Close()

	return ds.Users().GetByGoogleID(ctx, googleID)
}

// Create creates a new user. Duplicate emails are pre-empted with an
// advisory existence check before the insert is staged.
func (us *UserService) Create(ctx context.Context, googleID, email, name, picture string) (*models.User, error) {
	email = strings.TrimSpace(email)

	ds, err := us.data(ctx)
	if err != nil {
		return nil, err
	}
	defer ds.Close()

	exists, err := ds.Users().ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	user := &models.User{
		ID:        uuid.New(),
		GoogleID:  googleID,
		Email:     email,
		Name:      name,
		Picture:   picture,
		CreatedAt: time.Now().UTC(),
	}

	if err := ds.Users().Add(user); err != nil {
		return nil, err
	}
	if _, err := ds.Commit(ctx); err != nil {
		return nil, err
	}

	return user, nil
}

// Update updates a user's profile. Empty fields keep their current value.
func (us *UserService) Update(ctx context.Context, id uuid.UUID, name, picture string) (*models.User, error) {
	ds, err := us.data(ctx)
	if err != nil {
		return nil, err
	}
	defer ds.Close()

	user, err := ds.Users().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if name != "" {
		user.Name = name
	}
	if picture != "" {
		user.Picture = picture
	}

	if err := ds.Users().Update(user); err != nil {
		return nil, err
	}
	if _, err := ds.Commit(ctx); err != nil {
		return nil, err
	}

	return user, nil
}

// Delete removes a user. Deleting an unknown id is a no-op.
func (us *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	ds, err := us.data(ctx)
	if err != nil {
		return err
	}
	defer ds.Close()

	if err := ds.Users().Delete(id); err != nil {
		return err
	}
	_, err = ds.Commit(ctx)
	return err
}
