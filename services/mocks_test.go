package services

import (
	"context"
	"time"

	"helix/database"
	"helix/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockUserStore struct {
	mock.Mock
}

var _ database.UserStore = (*MockUserStore)(nil)

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) GetAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserStore) Add(u *models.User) error {
	return m.Called(u).Error(0)
}

func (m *MockUserStore) Update(u *models.User) error {
	return m.Called(u).Error(0)
}

func (m *MockUserStore) Delete(id uuid.UUID) error {
	return m.Called(id).Error(0)
}

func (m *MockUserStore) GetByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	args := m.Called(ctx, googleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type MockActivityStore struct {
	mock.Mock
}

var _ database.ActivityStore = (*MockActivityStore)(nil)

func (m *MockActivityStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Activity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Activity), args.Error(1)
}

func (m *MockActivityStore) GetAll(ctx context.Context) ([]models.Activity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Activity), args.Error(1)
}

func (m *MockActivityStore) Add(a *models.Activity) error {
	return m.Called(a).Error(0)
}

func (m *MockActivityStore) Update(a *models.Activity) error {
	return m.Called(a).Error(0)
}

func (m *MockActivityStore) Delete(id uuid.UUID) error {
	return m.Called(id).Error(0)
}

func (m *MockActivityStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockActivityStore) Predefined(ctx context.Context) ([]models.Activity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Activity), args.Error(1)
}

type MockSessionStore struct {
	mock.Mock
}

var _ database.SessionStore = (*MockSessionStore)(nil)

func (m *MockSessionStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionStore) GetAll(ctx context.Context) ([]models.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Session), args.Error(1)
}

func (m *MockSessionStore) Add(s *models.Session) error {
	return m.Called(s).Error(0)
}

func (m *MockSessionStore) Update(s *models.Session) error {
	return m.Called(s).Error(0)
}

func (m *MockSessionStore) Delete(id uuid.UUID) error {
	return m.Called(id).Error(0)
}

func (m *MockSessionStore) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Session, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Session), args.Error(1)
}

func (m *MockSessionStore) GetByActivityID(ctx context.Context, activityID uuid.UUID) ([]models.Session, error) {
	args := m.Called(ctx, activityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Session), args.Error(1)
}

func (m *MockSessionStore) GetByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.Session, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Session), args.Error(1)
}

// MockUnitOfWork bundles the three store mocks behind the UnitOfWork
// interface. Commit and Close default to success unless a test overrides
// them with On expectations.
type MockUnitOfWork struct {
	mock.Mock
	UserStore     MockUserStore
	ActivityStore MockActivityStore
	SessionStore  MockSessionStore
}

var _ database.UnitOfWork = (*MockUnitOfWork)(nil)

func (m *MockUnitOfWork) Users() database.UserStore { return &m.UserStore }

func (m *MockUnitOfWork) Activities() database.ActivityStore { return &m.ActivityStore }

func (m *MockUnitOfWork) Sessions() database.SessionStore { return &m.SessionStore }

func (m *MockUnitOfWork) Commit(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockUnitOfWork) Close() error {
	return m.Called().Error(0)
}

// newMockData returns a fresh mock unit of work and a Factory that hands
// it out, with Close pre-wired since every service defers it.
func newMockData() (*MockUnitOfWork, database.Factory) {
	uow := &MockUnitOfWork{}
	uow.On("Close").Return(nil)
	factory := func(ctx context.Context) (database.UnitOfWork, error) {
		return uow, nil
	}
	return uow, factory
}
