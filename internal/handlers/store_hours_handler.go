package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/shiftwise/staff-scheduler/internal/httperr"
	"github.com/shiftwise/staff-scheduler/internal/httpresp"
	ucSchedule "github.com/shiftwise/staff-scheduler/internal/usecase/schedule"
)

type StoreHoursHandler struct {
	getHours *ucSchedule.GetStoreHours
}

func NewStoreHoursHandler(getHours *ucSchedule.GetStoreHours) *StoreHoursHandler {
	return &StoreHoursHandler{getHours: getHours}
}

func (h *StoreHoursHandler) Show(c *gin.Context) {
	_, storeID, ok := identityFromContext(c)
	if !ok {
		return
	}

	hours, err := h.getHours.Execute(c.Request.Context(), storeID)
	if httperr.Respond(c, err, storeHoursMessages) {
		return
	}

	httpresp.OK(c, "opening hours retrieved", hours)
}

var storeHoursMessages = map[string]string{
	httperr.CodeStoreNotFound:        "store not found",
	httperr.CodeOpeningHoursNotFound: "no opening hours configured",
}
