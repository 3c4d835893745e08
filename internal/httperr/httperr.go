package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// statusByCode maps business reason codes to HTTP statuses. Opening-hours
// violations answer 404 so the offending entry's constraint reads as a
// missing/unsatisfiable resource, matching the rest of the API surface.
var statusByCode = map[string]int{
	CodeOpeningHoursNotFound: http.StatusNotFound,
	CodeOutsideOpeningHours:  http.StatusNotFound,
	CodeInvalidTimeFormat:    http.StatusBadRequest,
	CodeInvalidTimeRange:     http.StatusBadRequest,
	CodeAuthenticationFailed: http.StatusBadRequest,
	CodeStoreNotFound:        http.StatusNotFound,
	CodeScheduleNotFound:     http.StatusNotFound,
	CodeBookingNotFound:      http.StatusNotFound,
	CodeStaffNotFound:        http.StatusNotFound,
}

// Respond writes a business error with its mapped status, or a 500 for
// anything unexpected. Returns true when err was non-nil.
func Respond(c *gin.Context, err error, messages map[string]string) bool {
	if err == nil {
		return false
	}

	code := BusinessCode(err)
	if code == "" {
		Internal(c, "internal_error", err.Error())
		return true
	}

	msg := messages[code]
	if msg == "" {
		msg = code
	}

	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusBadRequest
	}
	Write(c, status, code, msg)
	return true
}
