package calendar

import (
	"fmt"
	"time"
)

// Weekday numbers the days of the week the way calendar adapters supply
// them to the observance classifier: Sunday is 1 and Saturday (Shabbat) is 7.
type Weekday int

const (
	Sunday Weekday = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// WeekdayOf converts a time.Weekday to the 1-based numbering.
func WeekdayOf(wd time.Weekday) Weekday {
	return Weekday(wd) + 1
}

// Valid reports whether w is between Sunday and Saturday.
func (w Weekday) Valid() bool {
	return w >= Sunday && w <= Saturday
}

// Std converts w to a time.Weekday. w must be valid.
func (w Weekday) Std() time.Weekday {
	return time.Weekday(w - 1)
}

func (w Weekday) String() string {
	if !w.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return w.Std().String()
}

// Ordinal returns the ordinal form of a number (1st, 2nd, 3rd, 4th, etc.)
func Ordinal(n int) string {
	if n%100 >= 11 && n%100 <= 13 {
		return fmt.Sprintf("%dth", n)
	}
	switch n % 10 {
	case 1:
		return fmt.Sprintf("%dst", n)
	case 2:
		return fmt.Sprintf("%dnd", n)
	case 3:
		return fmt.Sprintf("%drd", n)
	}
	return fmt.Sprintf("%dth", n)
}
