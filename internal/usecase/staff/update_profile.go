package staff

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/shiftwise/staff-scheduler/internal/audit"
	domain "github.com/shiftwise/staff-scheduler/internal/domain/schedule"
	"github.com/shiftwise/staff-scheduler/internal/httperr"
	"github.com/shiftwise/staff-scheduler/internal/timezone"
	"github.com/shiftwise/staff-scheduler/internal/validators"
)

// ImageStore persists profile images; Remove is best-effort disposal of a
// replaced image.
type ImageStore interface {
	Store(ctx context.Context, data []byte, contentType string) (string, error)
	Remove(ctx context.Context, key string) error
}

// ======================================================
// INPUT
// ======================================================

type UpdateProfileInput struct {
	Name    string
	Email   string
	Phone   string
	Address string

	CurrentPassword string
	NewPassword     string

	Image            []byte
	ImageContentType string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateProfile struct {
	repo   domain.Repository
	images ImageStore
	audit  *audit.Dispatcher
}

func NewUpdateProfile(
	repo domain.Repository,
	images ImageStore,
	audit *audit.Dispatcher,
) *UpdateProfile {
	return &UpdateProfile{
		repo:   repo,
		images: images,
		audit:  audit,
	}
}

func (uc *UpdateProfile) Execute(
	ctx context.Context,
	staffID uint,
	in UpdateProfileInput,
) (*ProfileDTO, error) {

	st, err := uc.repo.GetStaffByID(ctx, staffID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeStaffNotFound)
	}

	// Current password gates every mutation.
	if err := bcrypt.CompareHashAndPassword(
		[]byte(st.PasswordHash),
		[]byte(in.CurrentPassword),
	); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeAuthenticationFailed)
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email != st.Email && !validators.IsEmailDomainValid(email) {
		return nil, httperr.ErrBusiness("invalid_email_domain")
	}

	st.Name = in.Name
	st.Email = email
	st.Phone = in.Phone
	st.Address = in.Address

	// The plaintext never survives past this hash.
	if in.NewPassword != "" {
		hashed, err := bcrypt.GenerateFromPassword(
			[]byte(in.NewPassword),
			bcrypt.DefaultCost,
		)
		if err != nil {
			return nil, err
		}
		st.PasswordHash = string(hashed)
	}

	oldImage := ""
	if len(in.Image) > 0 {
		if uc.images == nil {
			return nil, httperr.ErrBusiness("image_storage_unavailable")
		}
		key, err := uc.images.Store(ctx, in.Image, in.ImageContentType)
		if err != nil {
			return nil, err
		}
		oldImage = st.Image
		st.Image = key
	}

	st.UpdatedAt = timezone.NowIn(st.Store.Timezone)

	err = uc.repo.InTx(ctx, func(r domain.Repository) error {
		return r.UpdateStaff(ctx, st)
	})
	if err != nil {
		return nil, err
	}

	// Old image disposal only after the row committed.
	if oldImage != "" {
		_ = uc.images.Remove(ctx, oldImage)
	}

	uc.audit.Dispatch(audit.Event{
		StoreID:  st.StoreID,
		UserID:   &staffID,
		Action:   "profile_updated",
		Entity:   "staff",
		EntityID: &st.ID,
	})

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
