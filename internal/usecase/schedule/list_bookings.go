package schedule

import (
	"context"

	domain "github.com/shiftwise/staff-scheduler/internal/domain/schedule"
	"github.com/shiftwise/staff-scheduler/internal/dto"
	"github.com/shiftwise/staff-scheduler/internal/httperr"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

func (uc *ListBookings) Execute(
	ctx context.Context,
	staffID uint,
) ([]dto.BookingListDTO, error) {

	staff, err := uc.repo.GetStaffByID(ctx, staffID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeStaffNotFound)
	}

	bookings, err := uc.repo.ListBookings(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, httperr.ErrBusiness(httperr.CodeBookingNotFound)
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:           b.ID,
			Day:          b.Day,
			Time:         b.Time,
			Status:       b.Status,
			StoreName:    staff.Store.Name,
			StoreAddress: staff.Store.Address,
		})
	}

	return out, nil
}
