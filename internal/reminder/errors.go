package reminder

import "errors"

var (
	ErrUserIDRequired      = errors.New("user id is required")
	ErrInvalidMealType     = errors.New("invalid meal type")
	ErrInvalidTime         = errors.New("invalid reminder time")
	ErrInvalidDayOfWeek    = errors.New("day_of_week must be between 0 (Monday) and 6 (Sunday)")
	ErrCalendarUnavailable = errors.New("calendar unavailable")
)
