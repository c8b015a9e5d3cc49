package database

import (
	"context"
	"testing"
	"time"

	"helix/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedUserAndActivity commits a user and an activity so sessions have
// valid rows to reference.
func seedUserAndActivity(t *testing.T, ds UnitOfWork) (*models.User, *models.Activity) {
	t.Helper()

	user := testUser("practice@example.com")
	activity := testActivity("Guitar")
	require.NoError(t, ds.Users().Add(user))
	require.NoError(t, ds.Activities().Add(activity))
	_, err := ds.Commit(context.Background())
	require.NoError(t, err)
	return user, activity
}

func testSession(user *models.User, activity *models.Activity, date time.Time) *models.Session {
	return &models.Session{
		ID:              uuid.New(),
		UserID:          user.ID,
		ActivityID:      activity.ID,
		DurationMinutes: 45,
		Date:            date,
		Rating:          "😊",
	}
}

func TestGetByUserID(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	ds := openUnit(t, db)

	user, activity := seedUserAndActivity(t, ds)

	other := testUser("other@example.com")
	require.NoError(t, ds.Users().Add(other))

	mine := testSession(user, activity, time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC))
	mine.Notes = "warmup scales"
	theirs := testSession(other, activity, time.Date(2024, 3, 2, 18, 0, 0, 0, time.UTC))
	require.NoError(t, ds.Sessions().Add(mine))
	require.NoError(t, ds.Sessions().Add(theirs))
	_, err := ds.Commit(ctx)
	require.NoError(t, err)

	got, err := ds.Sessions().GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, mine.ID, got[0].ID)
	assert.Equal(t, 45, got[0].DurationMinutes)
	assert.Equal(t, "warmup scales", got[0].Notes)
}

func TestGetByUserIDEmptyUser(t *testing.T) {
	db := setupTestDB(t)
	ds := openUnit(t, db)

	got, err := ds.Sessions().GetByUserID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetByDateRange(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	ds := openUnit(t, db)

	user, activity := seedUserAndActivity(t, ds)

	// Inserted out of order: results must come back date-ascending.
	late := testSession(user, activity, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	early := testSession(user, activity, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	outside := testSession(user, activity, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, ds.Sessions().Add(late))
	require.NoError(t, ds.Sessions().Add(early))
	require.NoError(t, ds.Sessions().Add(outside))
	_, err := ds.Commit(ctx)
	require.NoError(t, err)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	got, err := ds.Sessions().GetByDateRange(ctx, user.ID, start, end)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, early.ID, got[0].ID)
	assert.Equal(t, late.ID, got[1].ID)
}

func TestGetByDateRangeBoundsAreInclusive(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	ds := openUnit(t, db)

	user, activity := seedUserAndActivity(t, ds)

	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)

	onStart := testSession(user, activity, start)
	onEnd := testSession(user, activity, end)
	require.NoError(t, ds.Sessions().Add(onStart))
	require.NoError(t, ds.Sessions().Add(onEnd))
	_, err := ds.Commit(ctx)
	require.NoError(t, err)

	got, err := ds.Sessions().GetByDateRange(ctx, user.ID, start, end)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestGetByActivityIDEagerLoadsActivity(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	ds := openUnit(t, db)

	user, activity := seedUserAndActivity(t, ds)

	sess := testSession(user, activity, time.Date(2024, 4, 15, 19, 30, 0, 0, time.UTC))
	require.NoError(t, ds.Sessions().Add(sess))
	_, err := ds.Commit(ctx)
	require.NoError(t, err)

	got, err := ds.Sessions().GetByActivityID(ctx, activity.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].Activity)
	assert.Equal(t, activity.ID, got[0].Activity.ID)
	assert.Equal(t, activity.Name, got[0].Activity.Name)
	assert.Equal(t, activity.Color, got[0].Activity.Color)
}

func TestSessionRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	ds := openUnit(t, db)

	user, activity := seedUserAndActivity(t, ds)

	date := time.Date(2024, 6, 1, 7, 15, 0, 0, time.UTC)
	sess := testSession(user, activity, date)
	sess.Notes = "morning run felt great"
	sess.Rating = "🤩"
	require.NoError(t, ds.Sessions().Add(sess))
	_, err := ds.Commit(ctx)
	require.NoError(t, err)

	got, err := ds.Sessions().GetByID(ctx, sess.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, sess.UserID, got.UserID)
	assert.Equal(t, sess.ActivityID, got.ActivityID)
	assert.True(t, got.Date.Equal(date), "date round trip: got %v", got.Date)
	assert.Equal(t, "🤩", got.Rating)
	assert.Equal(t, "morning run felt great", got.Notes)
}
