// Package calendar provides Gregorian and Hebrew calendar calculations and
// the classification of Hebrew dates into observances.
package calendar

import (
	"fmt"
	"time"
)

// AbsoluteDay counts days from a fixed epoch: day 1 is January 1 of year 1
// in the proleptic Gregorian calendar. Days before the epoch are zero or
// negative, which the Hebrew calendar relies on for its early years.
type AbsoluteDay int

// Weekday returns the day of the week of the absolute day. Day 1 was a Monday.
func (a AbsoluteDay) Weekday() time.Weekday {
	wd := int(a) % 7
	if wd < 0 {
		wd += 7
	}
	return time.Weekday(wd)
}

// GregorianDate is a date in the proleptic Gregorian calendar.
type GregorianDate struct {
	Year  int
	Month int // 1-12
	Day   int // 1-31
}

// IsGregorianLeapYear reports whether February has 29 days in the given year.
func IsGregorianLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInGregorianMonth returns the last day of the month in the given year.
func DaysInGregorianMonth(year, month int) int {
	switch month {
	case 2:
		if IsGregorianLeapYear(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

// NewGregorianDate validates and returns a Gregorian date.
func NewGregorianDate(year, month, day int) (GregorianDate, error) {
	g := GregorianDate{Year: year, Month: month, Day: day}
	if err := g.Validate(); err != nil {
		return GregorianDate{}, err
	}
	return g, nil
}

// GregorianDateOf returns the calendar date of t in t's own location.
func GregorianDateOf(t time.Time) GregorianDate {
	y, m, d := t.Date()
	return GregorianDate{Year: y, Month: int(m), Day: d}
}

// Validate returns a *DateError if the date does not exist.
func (g GregorianDate) Validate() error {
	reject := func(reason string) error {
		return &DateError{Calendar: "gregorian", Year: g.Year, Month: g.Month, Day: g.Day, Reason: reason}
	}
	switch {
	case g.Year < 1:
		return reject("year must be 1 or later")
	case g.Month < 1 || g.Month > 12:
		return reject("month must be between 1 and 12")
	case g.Day < 1:
		return reject("day must be 1 or later")
	case g.Day > DaysInGregorianMonth(g.Year, g.Month):
		return reject(fmt.Sprintf("month has %d days", DaysInGregorianMonth(g.Year, g.Month)))
	}
	return nil
}

// ToAbsoluteDay validates the date and converts it to an AbsoluteDay.
func ToAbsoluteDay(year, month, day int) (AbsoluteDay, error) {
	g, err := NewGregorianDate(year, month, day)
	if err != nil {
		return 0, err
	}
	return g.AbsoluteDay(), nil
}

// AbsoluteDay returns the absolute day of g. The date is assumed valid.
func (g GregorianDate) AbsoluteDay() AbsoluteDay {
	days := g.Day
	for m := 1; m < g.Month; m++ {
		days += DaysInGregorianMonth(g.Year, m)
	}
	return AbsoluteDay(days + daysBeforeYear(g.Year))
}

// daysBeforeYear counts the days in all full years before year.
func daysBeforeYear(year int) int {
	y := year - 1
	return 365*y + y/4 - y/100 + y/400
}

// FromAbsoluteDay converts an absolute day back to a Gregorian date.
// Days before January 1 of year 1 return ErrOutOfRange.
func FromAbsoluteDay(a AbsoluteDay) (GregorianDate, error) {
	if a < 1 {
		return GregorianDate{}, fmt.Errorf("absolute day %d: %w", a, ErrOutOfRange)
	}
	abs := int(a)

	// A year never has more than 366 days, so this estimate is never late.
	year := abs / 366
	if year < 1 {
		year = 1
	}
	for abs > daysBeforeYear(year+1) {
		year++
	}
	for year > 1 && abs <= daysBeforeYear(year) {
		year--
	}

	month := 1
	for abs > int(GregorianDate{Year: year, Month: month, Day: DaysInGregorianMonth(year, month)}.AbsoluteDay()) {
		month++
	}
	day := abs - int(GregorianDate{Year: year, Month: month, Day: 1}.AbsoluteDay()) + 1

	return GregorianDate{Year: year, Month: month, Day: day}, nil
}

// DayOfYear returns the ordinal day within the year, starting at 1.
func (g GregorianDate) DayOfYear() int {
	return int(g.AbsoluteDay()) - daysBeforeYear(g.Year)
}

// Weekday returns the day of the week of the date.
func (g GregorianDate) Weekday() time.Weekday {
	return g.AbsoluteDay().Weekday()
}

// Time returns midnight of the date in loc. A nil loc means UTC.
func (g GregorianDate) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(g.Year, time.Month(g.Month), g.Day, 0, 0, 0, 0, loc)
}

// AddDays returns the date n days after g.
func (g GregorianDate) AddDays(n int) (GregorianDate, error) {
	return FromAbsoluteDay(g.AbsoluteDay() + AbsoluteDay(n))
}

// Before reports whether g is earlier than other.
func (g GregorianDate) Before(other GregorianDate) bool {
	return g.AbsoluteDay() < other.AbsoluteDay()
}

func (g GregorianDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", g.Year, g.Month, g.Day)
}

// ParseDateString parses a date in YYYY-MM-DD format.
func ParseDateString(s string) (GregorianDate, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return GregorianDate{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return GregorianDateOf(t), nil
}
