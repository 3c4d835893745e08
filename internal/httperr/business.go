package httperr

import "errors"

// Reason codes surfaced to clients.
const (
	CodeOpeningHoursNotFound = "opening_hours_not_found"
	CodeOutsideOpeningHours  = "outside_opening_hours"
	CodeInvalidTimeFormat    = "invalid_time_format"
	CodeInvalidTimeRange     = "invalid_time_range"
	CodeAuthenticationFailed = "authentication_failed"
	CodeStoreNotFound        = "store_not_found"
	CodeScheduleNotFound     = "schedule_not_found"
	CodeBookingNotFound      = "booking_not_found"
	CodeStaffNotFound        = "staff_not_found"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the reason code, or "" for non-business errors.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
