package schedule

import (
	"context"

	"github.com/shiftwise/staff-scheduler/internal/audit"
	domain "github.com/shiftwise/staff-scheduler/internal/domain/schedule"
	"github.com/shiftwise/staff-scheduler/internal/httperr"
	"github.com/shiftwise/staff-scheduler/internal/models"
)

// InvalidateSchedule flips a schedule's advisory is_valid flag off. It is
// the only writer of is_valid=false; submission always resets it to true.
type InvalidateSchedule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewInvalidateSchedule(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *InvalidateSchedule {
	return &InvalidateSchedule{
		repo:  repo,
		audit: audit,
	}
}

func (uc *InvalidateSchedule) Execute(
	ctx context.Context,
	staffID uint,
	storeID uint,
	scheduleID uint,
) (*models.Schedule, error) {

	s, err := uc.repo.GetScheduleForStaff(ctx, scheduleID, staffID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeScheduleNotFound)
	}

	if !s.IsValid {
		return s, nil
	}

	s.IsValid = false
	if err := uc.repo.SaveSchedule(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		StoreID:  storeID,
		UserID:   &staffID,
		Action:   "schedule_invalidated",
		Entity:   "schedule",
		EntityID: &s.ID,
	})

	return s, nil
}
