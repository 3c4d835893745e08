package staff

import (
	"context"
	"time"

	domain "github.com/shiftwise/staff-scheduler/internal/domain/schedule"
	"github.com/shiftwise/staff-scheduler/internal/httperr"
)

type ProfileDTO struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	StoreID   uint      `json:"store_id"`
	CreatedAt time.Time `json:"created_at"`
}

type GetProfile struct {
	repo domain.Repository
}

func NewGetProfile(repo domain.Repository) *GetProfile {
	return &GetProfile{repo: repo}
}

func (uc *GetProfile) Execute(
	ctx context.Context,
	staffID uint,
) (*ProfileDTO, error) {

	st, err := uc.repo.GetStaffByID(ctx, staffID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeStaffNotFound)
	}

	return &ProfileDTO{
		ID:        st.ID,
		Email:     st.Email,
		Name:      st.Name,
		Image:     st.Image,
		Address:   st.Address,
		Phone:     st.Phone,
		StoreID:   st.StoreID,
		CreatedAt: st.CreatedAt,
	}, nil
}
