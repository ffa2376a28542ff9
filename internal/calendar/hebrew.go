package calendar

import (
	"fmt"
	"time"
)

// YearType classifies a Hebrew year by the lengths of Cheshvan and Kislev.
type YearType int

const (
	// Chaserim is a short year: Cheshvan and Kislev both have 29 days.
	Chaserim YearType = iota + 1
	// Kesidran is a regular year: Cheshvan has 29 days and Kislev 30.
	Kesidran
	// Shelaimim is a long year: Cheshvan and Kislev both have 30 days.
	Shelaimim
)

func (t YearType) String() string {
	switch t {
	case Chaserim:
		return "chaserim"
	case Kesidran:
		return "kesidran"
	case Shelaimim:
		return "shelaimim"
	default:
		return "unknown"
	}
}

// ChalakimSinceMoladTohu returns the chalakim elapsed from the start of the
// Sunday before the epoch molad to the molad of the given month.
func ChalakimSinceMoladTohu(year int, month HebrewMonth) int64 {
	months := monthsBeforeYear(year) + int64(MonthOrdinal(year, month)-1)
	return ChalakimMoladTohu + ChalakimPerMonth*months
}

// Postponement records which of the Rosh Hashana postponement rules
// (dechiyot) applied to a year.
type Postponement struct {
	MoladDay   int // day of the Tishrei molad, counted from the epoch Sunday
	MoladParts int // chalakim since the start of the molad day

	MoladZaken bool
	Gatrad     bool
	Betutakfot bool
	LoAduRosh  bool
}

// Days returns how many days Rosh Hashana moves past the molad day.
func (p Postponement) Days() int {
	n := 0
	if p.MoladZaken || p.Gatrad || p.Betutakfot {
		n++
	}
	if p.LoAduRosh {
		n++
	}
	return n
}

// Postponements evaluates the dechiyot for Tishrei of the given year.
func Postponements(year int) Postponement {
	chalakim := ChalakimSinceMoladTohu(year, Tishrei)
	day := int(chalakim / ChalakimPerDay)
	parts := int(chalakim % ChalakimPerDay)

	p := Postponement{MoladDay: day, MoladParts: parts}

	// The new moon appears too late in the day.
	p.MoladZaken = parts >= moladZakenThreshold
	// Common year, molad on Tuesday at or after 9h 204p.
	p.Gatrad = !IsLeapYear(year) && mod(day, 7) == 2 && parts >= gatradThreshold
	// Year after a leap year, molad on Monday at or after 15h 589p.
	p.Betutakfot = IsLeapYear(year-1) && mod(day, 7) == 1 && parts >= betutakfotThreshold

	roshHashana := day
	if p.MoladZaken || p.Gatrad || p.Betutakfot {
		roshHashana++
	}

	// Rosh Hashana never falls on Sunday, Wednesday or Friday.
	switch mod(roshHashana, 7) {
	case 0, 3, 5:
		p.LoAduRosh = true
	}
	return p
}

// ElapsedDays returns the number of days from the epoch Sunday to Rosh
// Hashana of the given year, after all postponements.
func ElapsedDays(year int) int {
	p := Postponements(year)
	return p.MoladDay + p.Days()
}

// RoshHashana returns the absolute day of Tishrei 1 of the year.
func RoshHashanaDay(year int) AbsoluteDay {
	return AbsoluteDay(ElapsedDays(year) + HebrewEpoch + 1)
}

// DaysInHebrewYear returns 353-355 for a common year and 383-385 for a leap year.
func DaysInHebrewYear(year int) int {
	return ElapsedDays(year+1) - ElapsedDays(year)
}

// IsCheshvanLong reports whether Cheshvan has 30 days in the year.
func IsCheshvanLong(year int) bool {
	return DaysInHebrewYear(year)%10 == 5
}

// IsKislevShort reports whether Kislev has 29 days in the year.
func IsKislevShort(year int) bool {
	return DaysInHebrewYear(year)%10 == 3
}

// YearTypeOf returns the Cheshvan/Kislev classification of the year.
func YearTypeOf(year int) YearType {
	switch DaysInHebrewYear(year) % 10 {
	case 3:
		return Chaserim
	case 5:
		return Shelaimim
	default:
		return Kesidran
	}
}

// DaysInHebrewMonth returns the length of month in year. Adar II in a
// common year has no days.
func DaysInHebrewMonth(year int, month HebrewMonth) int {
	switch month {
	case Iyyar, Tamuz, Elul, Tevet, AdarII:
		if month == AdarII && !IsLeapYear(year) {
			return 0
		}
		return 29
	case Cheshvan:
		if IsCheshvanLong(year) {
			return 30
		}
		return 29
	case Kislev:
		if IsKislevShort(year) {
			return 29
		}
		return 30
	case Adar:
		if IsLeapYear(year) {
			return 30
		}
		return 29
	case Nisan, Sivan, Av, Tishrei, Shvat:
		return 30
	default:
		return 0
	}
}

// HebrewDate is a date in the Hebrew calendar.
type HebrewDate struct {
	Year  int
	Month HebrewMonth
	Day   int
}

// NewHebrewDate validates and returns a Hebrew date. Out-of-range months and
// days are rejected, never clamped.
func NewHebrewDate(year int, month HebrewMonth, day int) (HebrewDate, error) {
	h := HebrewDate{Year: year, Month: month, Day: day}
	if err := h.Validate(); err != nil {
		return HebrewDate{}, err
	}
	return h, nil
}

// Validate returns a *DateError if the date does not exist, or an error
// wrapping ErrOutOfRange if the year is after MaxHebrewYear.
func (h HebrewDate) Validate() error {
	reject := func(reason string) error {
		return &DateError{Calendar: "hebrew", Year: h.Year, Month: int(h.Month), Day: h.Day, Reason: reason}
	}
	switch {
	case h.Year < 1:
		return reject("year must be 1 or later")
	case h.Year > MaxHebrewYear:
		return fmt.Errorf("hebrew year %d is after %d: %w", h.Year, MaxHebrewYear, ErrOutOfRange)
	case !h.Month.Valid():
		return reject("month must be between 1 and 13")
	case h.Month == AdarII && !IsLeapYear(h.Year):
		return reject("Adar II exists only in leap years")
	case h.Day < 1 || h.Day > 30:
		return reject("day must be between 1 and 30")
	case h.Day > DaysInHebrewMonth(h.Year, h.Month):
		return reject(fmt.Sprintf("%s has %d days", h.Month.Name(h.Year), DaysInHebrewMonth(h.Year, h.Month)))
	}
	return nil
}

// IsLeapYear reports whether the date's year is a leap year.
func (h HebrewDate) IsLeapYear() bool {
	return IsLeapYear(h.Year)
}

// daysSinceStartOfYear counts days from Rosh Hashana (day 1) to the date.
func daysSinceStartOfYear(year int, month HebrewMonth, day int) int {
	elapsed := day
	if month < Tishrei {
		for m := Tishrei; m <= LastMonthOfYear(year); m++ {
			elapsed += DaysInHebrewMonth(year, m)
		}
		for m := Nisan; m < month; m++ {
			elapsed += DaysInHebrewMonth(year, m)
		}
	} else {
		for m := Tishrei; m < month; m++ {
			elapsed += DaysInHebrewMonth(year, m)
		}
	}
	return elapsed
}

// AbsoluteDay returns the absolute day of h. The date is assumed valid.
func (h HebrewDate) AbsoluteDay() AbsoluteDay {
	return hebrewToAbsolute(h.Year, h.Month, h.Day)
}

func hebrewToAbsolute(year int, month HebrewMonth, day int) AbsoluteDay {
	return AbsoluteDay(daysSinceStartOfYear(year, month, day) + ElapsedDays(year) + HebrewEpoch)
}

// HebrewDateFromAbsolute converts an absolute day to a Hebrew date. Days
// before Tishrei 1 of year 1 or after the end of MaxHebrewYear return
// ErrOutOfRange.
func HebrewDateFromAbsolute(a AbsoluteDay) (HebrewDate, error) {
	if a < hebrewToAbsolute(1, Tishrei, 1) {
		return HebrewDate{}, fmt.Errorf("absolute day %d precedes the hebrew calendar: %w", a, ErrOutOfRange)
	}
	if a >= hebrewToAbsolute(MaxHebrewYear+1, Tishrei, 1) {
		return HebrewDate{}, fmt.Errorf("absolute day %d is after hebrew year %d: %w", a, MaxHebrewYear, ErrOutOfRange)
	}

	// Estimate from below, then search forward for the year.
	year := (int(a) - HebrewEpoch) / 366
	if year < 1 {
		year = 1
	}
	for a >= hebrewToAbsolute(year+1, Tishrei, 1) {
		year++
	}
	for year > 1 && a < hebrewToAbsolute(year, Tishrei, 1) {
		year--
	}

	// Search forward for the month from either Tishrei or Nisan.
	month := Tishrei
	if a >= hebrewToAbsolute(year, Nisan, 1) {
		month = Nisan
	}
	for a > hebrewToAbsolute(year, month, DaysInHebrewMonth(year, month)) {
		month++
	}

	day := int(a-hebrewToAbsolute(year, month, 1)) + 1
	return HebrewDate{Year: year, Month: month, Day: day}, nil
}

// HebrewDateOf converts a Gregorian date to the Hebrew calendar. The Hebrew
// date returned is the one that begins at the preceding nightfall.
func HebrewDateOf(g GregorianDate) (HebrewDate, error) {
	if err := g.Validate(); err != nil {
		return HebrewDate{}, err
	}
	return HebrewDateFromAbsolute(g.AbsoluteDay())
}

// Gregorian converts h to the Gregorian calendar.
func (h HebrewDate) Gregorian() (GregorianDate, error) {
	if err := h.Validate(); err != nil {
		return GregorianDate{}, err
	}
	return FromAbsoluteDay(h.AbsoluteDay())
}

// Weekday returns the day of the week of the date.
func (h HebrewDate) Weekday() time.Weekday {
	return h.AbsoluteDay().Weekday()
}

// AddDays returns the Hebrew date n days after h.
func (h HebrewDate) AddDays(n int) (HebrewDate, error) {
	return HebrewDateFromAbsolute(h.AbsoluteDay() + AbsoluteDay(n))
}

func (h HebrewDate) String() string {
	return fmt.Sprintf("%d %s %d", h.Day, h.Month.Name(h.Year), h.Year)
}
