package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	domain "github.com/shiftwise/staff-scheduler/internal/domain/schedule"
	"github.com/shiftwise/staff-scheduler/internal/httperr"
	"github.com/shiftwise/staff-scheduler/internal/models"
)

func staffWithStore(id uint) *models.Staff {
	return &models.Staff{
		ID:      id,
		StoreID: 3,
		Store: models.Store{
			ID:      3,
			Name:    "Central",
			Address: "12 Main St",
		},
	}
}

func TestListSchedules_MarksInvalidEntries(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetStaffByID", mock.Anything, uint(7)).Return(staffWithStore(7), nil)
	repo.On("ListSchedules", mock.Anything, uint(7)).Return([]models.Schedule{
		{ID: 1, UserID: 7, Day: int(domain.Monday), StartTime: "09:00:00", EndTime: "17:00:00", IsValid: true},
		{ID: 2, UserID: 7, Day: int(domain.Tuesday), StartTime: "09:00:00", EndTime: "17:00:00", IsValid: false},
	}, nil)

	uc := NewListSchedules(repo)
	out, err := uc.Execute(context.Background(), 7)

	assert.NoError(t, err)
	assert.Len(t, out, 2)

	assert.Empty(t, out[0].Error)
	assert.Equal(t, InvalidScheduleWarning, out[1].Error)

	assert.Equal(t, "Central", out[0].StoreName)
	assert.Equal(t, "12 Main St", out[0].StoreAddress)
}

func TestListSchedules_EmptyIsNotFound(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetStaffByID", mock.Anything, uint(7)).Return(staffWithStore(7), nil)
	repo.On("ListSchedules", mock.Anything, uint(7)).Return([]models.Schedule{}, nil)

	uc := NewListSchedules(repo)
	_, err := uc.Execute(context.Background(), 7)

	assert.True(t, httperr.IsBusiness(err, httperr.CodeScheduleNotFound))
}

func TestListBookings(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetStaffByID", mock.Anything, uint(7)).Return(staffWithStore(7), nil)
	repo.On("ListBookings", mock.Anything, uint(7)).Return([]models.Booking{
		{ID: 11, UserID: 7, Day: "2026-09-01", Time: "10:00:00", Status: "confirmed"},
	}, nil)

	uc := NewListBookings(repo)
	out, err := uc.Execute(context.Background(), 7)

	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, "confirmed", out[0].Status)
	assert.Equal(t, "Central", out[0].StoreName)
}

func TestListBookings_EmptyIsNotFound(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetStaffByID", mock.Anything, uint(7)).Return(staffWithStore(7), nil)
	repo.On("ListBookings", mock.Anything, uint(7)).Return([]models.Booking{}, nil)

	uc := NewListBookings(repo)
	_, err := uc.Execute(context.Background(), 7)

	assert.True(t, httperr.IsBusiness(err, httperr.CodeBookingNotFound))
}

func TestInvalidateSchedule(t *testing.T) {
	s := &models.Schedule{ID: 42, UserID: 7, Day: int(domain.Monday), IsValid: true}

	repo := new(mockRepo)
	repo.On("GetScheduleForStaff", mock.Anything, uint(42), uint(7)).Return(s, nil)
	repo.On("SaveSchedule", mock.Anything, s).Return(nil)

	uc := NewInvalidateSchedule(repo, nil)
	out, err := uc.Execute(context.Background(), 7, 3, 42)

	assert.NoError(t, err)
	assert.False(t, out.IsValid)
}

func TestInvalidateSchedule_ForeignRow(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetScheduleForStaff", mock.Anything, uint(42), uint(8)).
		Return(nil, assert.AnError)

	uc := NewInvalidateSchedule(repo, nil)
	_, err := uc.Execute(context.Background(), 8, 3, 42)

	assert.True(t, httperr.IsBusiness(err, httperr.CodeScheduleNotFound))
	repo.AssertNotCalled(t, "SaveSchedule", mock.Anything, mock.Anything)
}
