package services

import (
	"context"
	"strings"
	"time"

	"helix/database"
	"helix/models"

	"github.com/google/uuid"
)

// ActivityService handles business logic for activities
type ActivityService struct {
	data database.Factory
}

// NewActivityService creates a new activity service
func NewActivityService(data database.Factory) *ActivityService {
	return &ActivityService{data: data}
}

// List retrieves all activities
func (as *ActivityService) List(ctx context.Context) ([]models.Activity, error) {
	ds, err := as.data(ctx)
	if err != nil {
		return nil, err
	}
	defer ds.Close()

	return ds.Activities().GetAll(ctx)
}

// Get retrieves an activity by id
func (as *ActivityService) Get(ctx context.Context, id uuid.UUID) (*models.Activity, error) {
	ds, err := as.data(ctx)
	if err != nil {
		return nil, err
	}
	defer ds.Close()

	return ds.Activities().GetByID(ctx, id)
}

// Predefined retrieves the global activity catalog
func (as *ActivityService) Predefined(ctx context.Context) ([]models.Activity, error) {
	ds, err := as.data(ctx)
	if err != nil {
		return nil, err
	}
	defer ds.Close()

	return ds.Activities().Predefined(ctx)
}

// Create creates a new activity. Duplicate names are pre-empted with an
// advisory existence check before the insert is staged.
func (as *ActivityService) Create(ctx context.Context, name, color, goal string) (*models.Activity, error) {
	name = strings.TrimSpace(name)
	if color == "" {
		color = models.DefaultActivityColor
	}

	ds, err := as.data(ctx)
	if err != nil {
		return nil, err
	}
	defer ds.Close()

	exists, err := ds.Activities().ExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrActivityNameTaken
	}

	activity := &models.Activity{
		ID:        uuid.New(),
		Name:      name,
		Color:     color,
		Goal:      goal,
		CreatedAt: time.Now().UTC(),
	}

	if err := ds.Activities().Add(activity); err != nil {
		return nil, err
	}
	if _, err := ds.Commit(ctx); err != nil {
		return nil, err
	}

	return activity, nil
}

// Update replaces an activity's name, color and goal
func (as *ActivityService) Update(ctx context.Context, id uuid.UUID, name, color, goal string) (*models.Activity, error) {
	name = strings.TrimSpace(name)
	if color == "" {
		color = models.DefaultActivityColor
	}

	ds, err := as.data(ctx)
	if err != nil {
		return nil, err
	}
	defer ds.Close()

	activity, err := ds.Activities().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, ErrActivityNotFound
	}

	activity.Name = name
	activity.Color = color
	activity.Goal = goal

	if err := ds.Activities().Update(activity); err != nil {
		return nil, err
	}
	if _, err := ds.Commit(ctx); err != nil {
		return nil, err
	}

	return activity, nil
}

// Delete removes an activity by id
func (as *ActivityService) Delete(ctx context.Context, id uuid.UUID) error {
	ds, err := as.data(ctx)
	if err != nil {
		return err
	}
	defer ds.Close()

	activity, err := ds.Activities().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if activity == nil {
		return ErrActivityNotFound
	}

	if err := ds.Activities().Delete(id); err != nil {
		return err
	}
	_, err = ds.Commit(ctx)
	return err
}
