package schedule

import (
	"context"

	"github.com/stretchr/testify/mock"

	domain "github.com/shiftwise/staff-scheduler/internal/domain/schedule"
	"github.com/shiftwise/staff-scheduler/internal/models"
)

type mockRepo struct {
	mock.Mock
}

// InTx runs the body against the same mock so expectations cover the
// transactional calls; the returned error stands in for a rollback.
func (m *mockRepo) InTx(ctx context.Context, fn func(domain.Repository) error) error {
	m.Called(ctx)
	return fn(m)
}

func (m *mockRepo) GetStoreByID(ctx context.Context, id uint) (*models.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Store), args.Error(1)
}

func (m *mockRepo) GetOpeningHour(ctx context.Context, storeID uint, day domain.Weekday) (*models.OpeningHour, error) {
	args := m.Called(ctx, storeID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OpeningHour), args.Error(1)
}

func (m *mockRepo) ListOpeningHours(ctx context.Context, storeID uint) ([]models.OpeningHour, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OpeningHour), args.Error(1)
}

func (m *mockRepo) GetStaffByID(ctx context.Context, id uint) (*models.Staff, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Staff), args.Error(1)
}

func (m *mockRepo) UpdateStaff(ctx context.Context, staff *models.Staff) error {
	return m.Called(ctx, staff).Error(0)
}

func (m *mockRepo) GetScheduleForDay(ctx context.Context, userID uint, day domain.Weekday) (*models.Schedule, error) {
	args := m.Called(ctx, userID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Schedule), args.Error(1)
}

func (m *mockRepo) GetScheduleForStaff(ctx context.Context, scheduleID, userID uint) (*models.Schedule, error) {
	args := m.Called(ctx, scheduleID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Schedule), args.Error(1)
}

func (m *mockRepo) SaveSchedule(ctx context.Context, s *models.Schedule) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockRepo) ListSchedules(ctx context.Context, userID uint) ([]models.Schedule, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Schedule), args.Error(1)
}

func (m *mockRepo) ListBookings(ctx context.Context, userID uint) ([]models.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

var _ domain.Repository = (*mockRepo)(nil)
