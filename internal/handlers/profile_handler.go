package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shiftwise/staff-scheduler/internal/httperr"
	"github.com/shiftwise/staff-scheduler/internal/httpresp"
	ucStaff "github.com/shiftwise/staff-scheduler/internal/usecase/staff"
)

const maxImageBytes = 5 << 20

type ProfileHandler struct {
	getProfile    *ucStaff.GetProfile
	updateProfile *ucStaff.UpdateProfile
}

func NewProfileHandler(
	getProfile *ucStaff.GetProfile,
	updateProfile *ucStaff.UpdateProfile,
) *ProfileHandler {
	return &ProfileHandler{
		getProfile:    getProfile,
		updateProfile: updateProfile,
	}
}

type UpdateProfileRequest struct {
	Name            string `form:"name" binding:"required"`
	Email           string `form:"email" binding:"required,email"`
	Phone           string `form:"phone"`
	Address         string `form:"address"`
	CurrentPassword string `form:"current_password" binding:"required"`
	NewPassword     string `form:"new_password" binding:"omitempty,min=6"`
}

func (h *ProfileHandler) Show(c *gin.Context) {
	userID, _, ok := identityFromContext(c)
	if !ok {
		return
	}

	profile, err := h.getProfile.Execute(c.Request.Context(), userID)
	if httperr.Respond(c, err, profileMessages) {
		return
	}

	httpresp.OK(c, "profile retrieved", profile)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	userID, _, ok := identityFromContext(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	in := ucStaff.UpdateProfileInput{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Address:         req.Address,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}

	if file, err := c.FormFile("image"); err == nil {
		if file.Size > maxImageBytes {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image_too_large"})
			return
		}
		f, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable_image"})
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable_image"})
			return
		}
		in.Image = data
		in.ImageContentType = file.Header.Get("Content-Type")
	}

	profile, err := h.updateProfile.Execute(c.Request.Context(), userID, in)
	if httperr.Respond(c, err, profileMessages) {
		return
	}

	httpresp.OK(c, "profile updated", profile)
}

var profileMessages = map[string]string{
	httperr.CodeAuthenticationFailed: "current password does not match",
	httperr.CodeStaffNotFound:        "staff member not found",
	"invalid_email_domain":           "the email domain does not look valid",
	"image_storage_unavailable":      "image uploads are not configured",
}
