package database

import (
	"context"

	"helix/models"

	"github.com/google/uuid"
)

const activityCols = "id, name, color, goal, predefined, created_at"

type ActivityRepository struct {
	repo[models.Activity]
}

func newActivityRepository(ds *DataService) *ActivityRepository {
	return &ActivityRepository{repo[models.Activity]{
		ds: ds,
		m: mapping[models.Activity]{
			table: "activities",
			cols:  activityCols,
			scan:  scanActivity,
			insert: func(a *models.Activity) (string, []any) {
				return `INSERT INTO activities (id, name, color, goal, predefined, created_at)
					VALUES (?, ?, ?, ?, ?, ?)`,
					[]any{a.ID, a.Name, a.Color, a.Goal, a.Predefined, a.CreatedAt}
			},
			update: func(a *models.Activity) (string, []any) {
				return `UPDATE activities SET name = ?, color = ?, goal = ?, predefined = ?, created_at = ?
					WHERE id = ?`,
					[]any{a.Name, a.Color, a.Goal, a.Predefined, a.CreatedAt, a.ID}
			},
			id:       func(a *models.Activity) uuid.UUID { return a.ID },
			validate: func(a *models.Activity) error { return a.Validate() },
		},
	}}
}

func scanActivity(s rowScanner) (*models.Activity, error) {
	var a models.Activity
	if err := s.Scan(&a.ID, &a.Name, &a.Color, &a.Goal, &a.Predefined, &a.CreatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

// ExistsByName reports whether a committed activity has exactly this name.
// Advisory only; the schema does not enforce name uniqueness.
func (r *ActivityRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	if r.ds.closed {
		return false, ErrClosed
	}
	var n int
	err := r.ds.conn.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM activities WHERE name = ?", name).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Predefined returns the seeded global catalog, the activities every user
// sees before creating their own.
func (r *ActivityRepository) Predefined(ctx context.Context) ([]models.Activity, error) {
	if r.ds.closed {
		return nil, ErrClosed
	}
	rows, err := r.ds.conn.QueryContext(ctx,
		"SELECT "+activityCols+" FROM activities WHERE predefined = 1 ORDER BY name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := make([]models.Activity, 0)
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, *a)
	}
	return activities, rows.Err()
}
