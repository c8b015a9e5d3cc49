package services

import (
	"context"
	"testing"

	"helix/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActivityServiceCreate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		color     string
		exists    bool
		wantErr   error
		wantName  string
		wantColor string
	}{
		{
			name:      "creates with explicit color",
			input:     "Guitar",
			color:     "#FF5733",
			wantName:  "Guitar",
			wantColor: "#FF5733",
		},
		{
			name:      "trims name and defaults color",
			input:     "  Running  ",
			color:     "",
			wantName:  "Running",
			wantColor: models.DefaultActivityColor,
		},
		{
			name:     "rejects taken name",
			input:    "Guitar",
			color:    "#FF5733",
			exists:   true,
			wantErr:  ErrActivityNameTaken,
			wantName: "Guitar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uow, factory := newMockData()
			uow.ActivityStore.On("ExistsByName", mock.Anything, tt.wantName).Return(tt.exists, nil)
			if !tt.exists {
				uow.ActivityStore.On("Add", mock.AnythingOfType("*models.Activity")).Return(nil)
				uow.On("Commit", mock.Anything).Return(1, nil)
			}

			svc := NewActivityService(factory)
			got, err := svc.Create(context.Background(), tt.input, tt.color, "")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantName, got.Name)
			assert.Equal(t, tt.wantColor, got.Color)
			assert.NotEqual(t, uuid.Nil, got.ID)
			uow.ActivityStore.AssertExpectations(t)
			uow.AssertExpectations(t)
		})
	}
}

func TestActivityServiceUpdate(t *testing.T) {
	t.Run("updates existing activity", func(t *testing.T) {
		uow, factory := newMockData()
		existing := &models.Activity{ID: uuid.New(), Name: "Chess", Color: "#000000"}
		uow.ActivityStore.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
		uow.ActivityStore.On("Update", existing).Return(nil)
		uow.On("Commit", mock.Anything).Return(1, nil)

		svc := NewActivityService(factory)
		got, err := svc.Update(context.Background(), existing.ID, "Speed Chess", "#FFFFFF", "1500 rating")

		require.NoError(t, err)
		assert.Equal(t, "Speed Chess", got.Name)
		assert.Equal(t, "#FFFFFF", got.Color)
		assert.Equal(t, "1500 rating", got.Goal)
		uow.ActivityStore.AssertExpectations(t)
	})

	t.Run("unknown id", func(t *testing.T) {
		uow, factory := newMockData()
		id := uuid.New()
		uow.ActivityStore.On("GetByID", mock.Anything, id).Return(nil, nil)

		svc := NewActivityService(factory)
		_, err := svc.Update(context.Background(), id, "Anything", "", "")

		assert.ErrorIs(t, err, ErrActivityNotFound)
	})
}

func TestActivityServiceDelete(t *testing.T) {
	t.Run("deletes existing activity", func(t *testing.T) {
		uow, factory := newMockData()
		existing := &models.Activity{ID: uuid.New(), Name: "Chess", Color: "#000000"}
		uow.ActivityStore.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
		uow.ActivityStore.On("Delete", existing.ID).Return(nil)
		uow.On("Commit", mock.Anything).Return(1, nil)

		svc := NewActivityService(factory)
		require.NoError(t, svc.Delete(context.Background(), existing.ID))
		uow.ActivityStore.AssertExpectations(t)
	})

	t.Run("unknown id", func(t *testing.T) {
		uow, factory := newMockData()
		id := uuid.New()
		uow.ActivityStore.On("GetByID", mock.Anything, id).Return(nil, nil)

		svc := NewActivityService(factory)
		err := svc.Delete(context.Background(), id)

		assert.ErrorIs(t, err, ErrActivityNotFound)
		uow.ActivityStore.AssertNotCalled(t, "Delete", mock.Anything)
	})
}

func TestActivityServicePredefined(t *testing.T) {
	uow, factory := newMockData()
	catalog := []models.Activity{
		{ID: uuid.New(), Name: "Coding", Color: "#4CAF50", Predefined: true},
		{ID: uuid.New(), Name: "Guitar Practice", Color: "#FF5733", Predefined: true},
	}
	uow.ActivityStore.On("Predefined", mock.Anything).Return(catalog, nil)

	svc := NewActivityService(factory)
	got, err := svc.Predefined(context.Background())

	require.NoError(t, err)
	assert.Equal(t, catalog, got)
}
