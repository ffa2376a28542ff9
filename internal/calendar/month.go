package calendar

import "fmt"

// HebrewMonth identifies a month of the Hebrew calendar. The integer values
// follow the traditional Nisan-first declaration order; use MonthOrdinal for
// the position of a month within a year, which begins at Tishrei.
type HebrewMonth int

const (
	Nisan HebrewMonth = iota + 1
	Iyyar
	Sivan
	Tamuz
	Av
	Elul
	Tishrei
	Cheshvan
	Kislev
	Tevet
	Shvat
	Adar
	AdarII
)

var monthNames = [...]string{
	Nisan:    "Nisan",
	Iyyar:    "Iyyar",
	Sivan:    "Sivan",
	Tamuz:    "Tamuz",
	Av:       "Av",
	Elul:     "Elul",
	Tishrei:  "Tishrei",
	Cheshvan: "Cheshvan",
	Kislev:   "Kislev",
	Tevet:    "Tevet",
	Shvat:    "Sh'vat",
	Adar:     "Adar",
	AdarII:   "Adar II",
}

// Valid reports whether m is one of the thirteen months.
func (m HebrewMonth) Valid() bool {
	return m >= Nisan && m <= AdarII
}

func (m HebrewMonth) String() string {
	if !m.Valid() {
		return fmt.Sprintf("HebrewMonth(%d)", int(m))
	}
	return monthNames[m]
}

// Name returns the month name as used in the given year: Adar is called
// Adar I in a leap year.
func (m HebrewMonth) Name(year int) string {
	if m == Adar && IsLeapYear(year) {
		return "Adar I"
	}
	return m.String()
}

// Add advances m by n months in declaration order, wrapping after Adar II.
// It does not consult a year, so Adar + 1 is Adar II even in a common year.
func (m HebrewMonth) Add(n int) HebrewMonth {
	idx := (int(m) - 1 + n) % 13
	if idx < 0 {
		idx += 13
	}
	return HebrewMonth(idx + 1)
}

// ParseHebrewMonth accepts a month number (1-13) or an English month name.
func ParseHebrewMonth(s string) (HebrewMonth, error) {
	for m := Nisan; m <= AdarII; m++ {
		if s == monthNames[m] || s == fmt.Sprint(int(m)) {
			return m, nil
		}
	}
	switch s {
	case "Iyar":
		return Iyyar, nil
	case "Shvat", "Shevat":
		return Shvat, nil
	case "Adar I", "AdarI":
		return Adar, nil
	case "AdarII", "Adar 2":
		return AdarII, nil
	case "Heshvan", "Marcheshvan":
		return Cheshvan, nil
	}
	return 0, fmt.Errorf("unknown hebrew month %q", s)
}

// MonthOrdinal returns the position of month within the given year, with
// Tishrei as 1. In a leap year Adar II is 7 and Nisan 8; otherwise Nisan is 7.
func MonthOrdinal(year int, month HebrewMonth) int {
	if IsLeapYear(year) {
		return (int(month)+6)%13 + 1
	}
	return (int(month)+5)%12 + 1
}

// LastMonthOfYear returns Adar II in a leap year and Adar otherwise.
func LastMonthOfYear(year int) HebrewMonth {
	if IsLeapYear(year) {
		return AdarII
	}
	return Adar
}
