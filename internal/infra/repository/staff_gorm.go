package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/shiftwise/staff-scheduler/internal/domain/schedule"
	"github.com/shiftwise/staff-scheduler/internal/models"
)

type StaffGormRepository struct {
	db *gorm.DB
}

func NewStaffGormRepository(db *gorm.DB) *StaffGormRepository {
	return &StaffGormRepository{db: db}
}

// --------------------------------------------------
// Transaction scoping
// --------------------------------------------------

func (r *StaffGormRepository) InTx(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&StaffGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Store
// --------------------------------------------------

func (r *StaffGormRepository) GetStoreByID(
	ctx context.Context,
	id uint,
) (*models.Store, error) {

	var store models.Store
	if err := r.db.WithContext(ctx).First(&store, id).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

// --------------------------------------------------
// Opening hours
// --------------------------------------------------

func (r *StaffGormRepository) GetOpeningHour(
	ctx context.Context,
	storeID uint,
	day domain.Weekday,
) (*models.OpeningHour, error) {

	var oh models.OpeningHour
	if err := r.db.WithContext(ctx).
		Where("store_id = ? AND day = ?", storeID, int(day)).
		First(&oh).Error; err != nil {
		return nil, err
	}
	return &oh, nil
}

func (r *StaffGormRepository) ListOpeningHours(
	ctx context.Context,
	storeID uint,
) ([]models.OpeningHour, error) {

	var hours []models.OpeningHour
	if err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("day ASC").
		Find(&hours).Error; err != nil {
		return nil, err
	}
	return hours, nil
}

// --------------------------------------------------
// Staff
// --------------------------------------------------

func (r *StaffGormRepository) GetStaffByID(
	ctx context.Context,
	id uint,
) (*models.Staff, error) {

	var staff models.Staff
	if err := r.db.WithContext(ctx).
		Preload("Store").
		First(&staff, id).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *StaffGormRepository) UpdateStaff(
	ctx context.Context,
	staff *models.Staff,
) error {
	return r.db.WithContext(ctx).Omit("Store").Save(staff).Error
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

func (r *StaffGormRepository) GetScheduleForDay(
	ctx context.Context,
	userID uint,
	day domain.Weekday,
) (*models.Schedule, error) {

	var s models.Schedule
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND day = ?", userID, int(day)).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StaffGormRepository) GetScheduleForStaff(
	ctx context.Context,
	scheduleID uint,
	userID uint,
) (*models.Schedule, error) {

	var s models.Schedule
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", scheduleID, userID).
		First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StaffGormRepository) SaveSchedule(
	ctx context.Context,
	s *models.Schedule,
) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *StaffGormRepository) ListSchedules(
	ctx context.Context,
	userID uint,
) ([]models.Schedule, error) {

	var schedules []models.Schedule
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *StaffGormRepository) ListBookings(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("day ASC, time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*StaffGormRepository)(nil)
