package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/shiftwise/staff-scheduler/internal/domain/schedule"
	"github.com/shiftwise/staff-scheduler/internal/httperr"
	"github.com/shiftwise/staff-scheduler/internal/httpresp"
	ucSchedule "github.com/shiftwise/staff-scheduler/internal/usecase/schedule"
)

type ScheduleHandler struct {
	submit     *ucSchedule.SubmitSchedule
	list       *ucSchedule.ListSchedules
	invalidate *ucSchedule.InvalidateSchedule
}

func NewScheduleHandler(
	submit *ucSchedule.SubmitSchedule,
	list *ucSchedule.ListSchedules,
	invalidate *ucSchedule.InvalidateSchedule,
) *ScheduleHandler {
	return &ScheduleHandler{
		submit:     submit,
		list:       list,
		invalidate: invalidate,
	}
}

type ScheduleEntryRequest struct {
	Day       int    `json:"day" binding:"gte=0,lte=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type CreateScheduleRequest struct {
	Schedules []ScheduleEntryRequest `json:"schedules" binding:"required,min=1,dive"`
}

func (h *ScheduleHandler) Create(c *gin.Context) {
	userID, storeID, ok := identityFromContext(c)
	if !ok {
		return
	}

	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	entries := make([]ucSchedule.Entry, 0, len(req.Schedules))
	for _, s := range req.Schedules {
		entries = append(entries, ucSchedule.Entry{
			Day:       domain.Weekday(s.Day),
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		})
	}

	saved, err := h.submit.Execute(c.Request.Context(), userID, storeID, entries)
	if httperr.Respond(c, err, scheduleMessages) {
		return
	}

	httpresp.Created(c, "schedule registered", saved)
}

func (h *ScheduleHandler) List(c *gin.Context) {
	userID, _, ok := identityFromContext(c)
	if !ok {
		return
	}

	schedules, err := h.list.Execute(c.Request.Context(), userID)
	if httperr.Respond(c, err, scheduleMessages) {
		return
	}

	httpresp.List(c, "schedules retrieved", schedules)
}

func (h *ScheduleHandler) Invalidate(c *gin.Context) {
	userID, storeID, ok := identityFromContext(c)
	if !ok {
		return
	}

	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_schedule_id"})
		return
	}

	s, err := h.invalidate.Execute(c.Request.Context(), userID, storeID, uint(id64))
	if httperr.Respond(c, err, scheduleMessages) {
		return
	}

	httpresp.OK(c, "schedule invalidated", s)
}

var scheduleMessages = map[string]string{
	httperr.CodeOpeningHoursNotFound: "no opening hours configured for that day",
	httperr.CodeOutsideOpeningHours:  "schedule falls outside the store's opening hours",
	httperr.CodeInvalidTimeFormat:    "times must use the HH:MM:SS format",
	httperr.CodeInvalidTimeRange:     "end time must come after start time",
	httperr.CodeStoreNotFound:        "store not found",
	httperr.CodeScheduleNotFound:     "no schedule registered yet",
}
