package staff

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	domain "github.com/shiftwise/staff-scheduler/internal/domain/schedule"
	"github.com/shiftwise/staff-scheduler/internal/httperr"
	"github.com/shiftwise/staff-scheduler/internal/models"
)

// stubRepo covers only the methods the profile usecases touch; anything
// else panics through the embedded nil interface.
type stubRepo struct {
	domain.Repository

	staff   *models.Staff
	getErr  error
	updated []*models.Staff
}

func (s *stubRepo) GetStaffByID(context.Context, uint) (*models.Staff, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.staff, nil
}

func (s *stubRepo) UpdateStaff(_ context.Context, st *models.Staff) error {
	s.updated = append(s.updated, st)
	return nil
}

func (s *stubRepo) InTx(_ context.Context, fn func(domain.Repository) error) error {
	return fn(s)
}

type stubImages struct {
	stored  int
	removed []string
}

func (s *stubImages) Store(context.Context, []byte, string) (string, error) {
	s.stored++
	return "staff/new-image.webp", nil
}

func (s *stubImages) Remove(_ context.Context, key string) error {
	s.removed = append(s.removed, key)
	return nil
}

func testStaff(t *testing.T, password string) *models.Staff {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &models.Staff{
		ID:           7,
		StoreID:      3,
		Name:         "Aki",
		Email:        "aki@example.com",
		PasswordHash: string(hash),
		Store:        models.Store{ID: 3, Timezone: "UTC"},
	}
}

func TestUpdateProfile_WrongCurrentPassword(t *testing.T) {
	st := testStaff(t, "correct-horse")
	originalHash := st.PasswordHash
	repo := &stubRepo{staff: st}

	uc := NewUpdateProfile(repo, nil, nil)
	_, err := uc.Execute(context.Background(), 7, UpdateProfileInput{
		Name:            "Aki",
		Email:           "aki@example.com",
		CurrentPassword: "battery-staple",
		NewPassword:     "new-password",
	})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeAuthenticationFailed))
	assert.Empty(t, repo.updated, "no mutation on auth failure")
	assert.Equal(t, originalHash, st.PasswordHash)
}

func TestUpdateProfile_RotatesPassword(t *testing.T) {
	st := testStaff(t, "correct-horse")
	repo := &stubRepo{staff: st}

	uc := NewUpdateProfile(repo, nil, nil)
	out, err := uc.Execute(context.Background(), 7, UpdateProfileInput{
		Name:            "Aki Tanaka",
		Email:           "aki@example.com",
		Phone:           "090-1234",
		CurrentPassword: "correct-horse",
		NewPassword:     "fresh-secret",
	})

	require.NoError(t, err)
	require.Len(t, repo.updated, 1)

	assert.Equal(t, "Aki Tanaka", out.Name)
	assert.Equal(t, "090-1234", out.Phone)

	// Stored credential matches the new password and is not plaintext.
	assert.NotEqual(t, "fresh-secret", st.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(st.PasswordHash), []byte("fresh-secret")))
}

func TestUpdateProfile_KeepsPasswordWhenNotRotated(t *testing.T) {
	st := testStaff(t, "correct-horse")
	originalHash := st.PasswordHash
	repo := &stubRepo{staff: st}

	uc := NewUpdateProfile(repo, nil, nil)
	_, err := uc.Execute(context.Background(), 7, UpdateProfileInput{
		Name:            "Aki",
		Email:           "aki@example.com",
		CurrentPassword: "correct-horse",
	})

	require.NoError(t, err)
	assert.Equal(t, originalHash, st.PasswordHash)
}

func TestUpdateProfile_ReplacesImage(t *testing.T) {
	st := testStaff(t, "correct-horse")
	st.Image = "staff/old-image.webp"
	repo := &stubRepo{staff: st}
	images := &stubImages{}

	uc := NewUpdateProfile(repo, images, nil)
	out, err := uc.Execute(context.Background(), 7, UpdateProfileInput{
		Name:             "Aki",
		Email:            "aki@example.com",
		CurrentPassword:  "correct-horse",
		Image:            []byte{0x1},
		ImageContentType: "image/png",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, images.stored)
	assert.Equal(t, []string{"staff/old-image.webp"}, images.removed)
	assert.Equal(t, "staff/new-image.webp", out.Image)
}

func TestGetProfile(t *testing.T) {
	st := testStaff(t, "pw")
	repo := &stubRepo{staff: st}

	uc := NewGetProfile(repo)
	out, err := uc.Execute(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, uint(7), out.ID)
	assert.Equal(t, "aki@example.com", out.Email)
	assert.Equal(t, uint(3), out.StoreID)
}

func TestGetProfile_NotFound(t *testing.T) {
	repo := &stubRepo{getErr: assert.AnError}

	uc := NewGetProfile(repo)
	_, err := uc.Execute(context.Background(), 7)

	assert.True(t, httperr.IsBusiness(err, httperr.CodeStaffNotFound))
}
