package calendar

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDate is returned when a year, month and day do not name a
	// real date in the requested calendar. Dates are never clamped.
	ErrInvalidDate = errors.New("invalid date")

	// ErrOutOfRange is returned when an absolute day falls outside the
	// supported range of a calendar.
	ErrOutOfRange = errors.New("date out of supported range")
)

// DateError describes a rejected date. It matches ErrInvalidDate with errors.Is.
type DateError struct {
	Calendar string // "gregorian" or "hebrew"
	Year     int
	Month    int
	Day      int
	Reason   string
}

func (e *DateError) Error() string {
	return fmt.Sprintf("invalid %s date %04d-%02d-%02d: %s", e.Calendar, e.Year, e.Month, e.Day, e.Reason)
}

// Is reports whether target is ErrInvalidDate.
func (e *DateError) Is(target error) bool {
	return target == ErrInvalidDate
}
