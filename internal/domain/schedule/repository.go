package schedule

import (
	"context"

	"github.com/shiftwise/staff-scheduler/internal/models"
)

type Repository interface {
	// InTx runs fn against a repository bound to one database
	// transaction; any error rolls the whole transaction back.
	InTx(
		ctx context.Context,
		fn func(Repository) error,
	) error

	// -------- Store --------
	GetStoreByID(
		ctx context.Context,
		id uint,
	) (*models.Store, error)

	// -------- Opening hours --------
	GetOpeningHour(
		ctx context.Context,
		storeID uint,
		day Weekday,
	) (*models.OpeningHour, error)

	ListOpeningHours(
		ctx context.Context,
		storeID uint,
	) ([]models.OpeningHour, error)

	// -------- Staff --------
	GetStaffByID(
		ctx context.Context,
		id uint,
	) (*models.Staff, error)

	UpdateStaff(
		ctx context.Context,
		staff *models.Staff,
	) error

	// -------- Schedule --------

	// GetScheduleForDay returns (nil, nil) when no row exists for the
	// (staff, day) pair; that is the insert path, not an error.
	GetScheduleForDay(
		ctx context.Context,
		userID uint,
		day Weekday,
	) (*models.Schedule, error)

	GetScheduleForStaff(
		ctx context.Context,
		scheduleID uint,
		userID uint,
	) (*models.Schedule, error)

	SaveSchedule(
		ctx context.Context,
		s *models.Schedule,
	) error

	ListSchedules(
		ctx context.Context,
		userID uint,
	) ([]models.Schedule, error)

	// -------- Booking --------
	ListBookings(
		ctx context.Context,
		userID uint,
	) ([]models.Booking, error)
}
