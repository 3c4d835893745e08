package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/shiftwise/staff-scheduler/internal/httperr"
	"github.com/shiftwise/staff-scheduler/internal/httpresp"
	ucSchedule "github.com/shiftwise/staff-scheduler/internal/usecase/schedule"
)

type BookingHandler struct {
	list *ucSchedule.ListBookings
}

func NewBookingHandler(list *ucSchedule.ListBookings) *BookingHandler {
	return &BookingHandler{list: list}
}

func (h *BookingHandler) List(c *gin.Context) {
	userID, _, ok := identityFromContext(c)
	if !ok {
		return
	}

	bookings, err := h.list.Execute(c.Request.Context(), userID)
	if httperr.Respond(c, err, bookingMessages) {
		return
	}

	httpresp.List(c, "bookings retrieved", bookings)
}

var bookingMessages = map[string]string{
	httperr.CodeBookingNotFound: "no bookings found",
	httperr.CodeStaffNotFound:   "staff member not found",
}
