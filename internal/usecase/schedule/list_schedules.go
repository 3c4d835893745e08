package schedule

import (
	"context"

	domain "github.com/shiftwise/staff-scheduler/internal/domain/schedule"
	"github.com/shiftwise/staff-scheduler/internal/dto"
	"github.com/shiftwise/staff-scheduler/internal/httperr"
)

// InvalidScheduleWarning is the advisory marker attached to entries whose
// is_valid flag was switched off outside the submission flow.
const InvalidScheduleWarning = "schedule needs review, please resubmit"

type ListSchedules struct {
	repo domain.Repository
}

func NewListSchedules(repo domain.Repository) *ListSchedules {
	return &ListSchedules{repo: repo}
}

func (uc *ListSchedules) Execute(
	ctx context.Context,
	staffID uint,
) ([]dto.ScheduleListDTO, error) {

	staff, err := uc.repo.GetStaffByID(ctx, staffID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeStaffNotFound)
	}

	schedules, err := uc.repo.ListSchedules(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if len(schedules) == 0 {
		return nil, httperr.ErrBusiness(httperr.CodeScheduleNotFound)
	}

	out := make([]dto.ScheduleListDTO, 0, len(schedules))
	for _, s := range schedules {
		item := dto.ScheduleListDTO{
			ID:           s.ID,
			UserID:       s.UserID,
			StoreName:    staff.Store.Name,
			StoreAddress: staff.Store.Address,
			Day:          s.Day,
			StartTime:    s.StartTime,
			EndTime:      s.EndTime,
			IsValid:      s.IsValid,
			CreatedAt:    s.CreatedAt,
		}
		if !s.IsValid {
			item.Error = InvalidScheduleWarning
		}
		out = append(out, item)
	}

	return out, nil
}
