package schedule

import (
	"context"

	"github.com/shiftwise/staff-scheduler/internal/audit"
	domain "github.com/shiftwise/staff-scheduler/internal/domain/schedule"
	"github.com/shiftwise/staff-scheduler/internal/httperr"
	"github.com/shiftwise/staff-scheduler/internal/models"
	"github.com/shiftwise/staff-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type Entry struct {
	Day       domain.Weekday
	StartTime string
	EndTime   string
}

// ======================================================
// USE CASE
// ======================================================

// SubmitSchedule validates a staff member's weekly schedule batch against
// the store's opening hours and upserts it. The batch is all-or-nothing:
// one bad entry rolls back every row already written in the same call.
type SubmitSchedule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSubmitSchedule(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SubmitSchedule {
	return &SubmitSchedule{
		repo:  repo,
		audit: audit,
	}
}

func (uc *SubmitSchedule) Execute(
	ctx context.Context,
	staffID uint,
	storeID uint,
	entries []Entry,
) ([]models.Schedule, error) {

	store, err := uc.repo.GetStoreByID(ctx, storeID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeStoreNotFound)
	}

	now := timezone.NowIn(store.Timezone)

	var saved []models.Schedule

	err = uc.repo.InTx(ctx, func(r domain.Repository) error {
		for _, e := range entries {

			oh, err := r.GetOpeningHour(ctx, storeID, e.Day)
			if err != nil {
				return httperr.ErrBusiness(httperr.CodeOpeningHoursNotFound)
			}

			if err := domain.CheckWindow(oh, e.StartTime, e.EndTime); err != nil {
				return err
			}

			existing, err := r.GetScheduleForDay(ctx, staffID, e.Day)
			if err != nil {
				return err
			}

			if existing != nil {
				existing.StartTime = e.StartTime
				existing.EndTime = e.EndTime
				existing.IsValid = true
				existing.UpdatedAt = now

				if err := r.SaveSchedule(ctx, existing); err != nil {
					return err
				}
				saved = append(saved, *existing)
				continue
			}

			s := models.Schedule{
				UserID:    staffID,
				Day:       int(e.Day),
				StartTime: e.StartTime,
				EndTime:   e.EndTime,
				IsValid:   true,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := r.SaveSchedule(ctx, &s); err != nil {
				return err
			}
			saved = append(saved, s)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		StoreID: storeID,
		UserID:  &staffID,
		Action:  "schedule_submitted",
		Entity:  "schedule",
		Metadata: map[string]any{
			"entries": len(entries),
		},
	})

	return saved, nil
}
