package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoObservance is returned by NextObservance when no matching day exists
// within the search window.
var ErrNoObservance = errors.New("no matching observance")

// searchWindow bounds NextObservance. Three Hebrew years always contain a
// leap year, so every observance occurs within it.
const searchWindow = 3 * 385

// Day is a calendar day resolved in both calendars and classified.
type Day struct {
	Gregorian  GregorianDate
	Hebrew     HebrewDate
	Weekday    Weekday
	Observance Observance
	RoshHodesh bool
	HanukaDay  int // 1-8 during Hanuka, 0 otherwise
}

// DateResolver resolves dates to Hebrew dates and observances under a fixed
// set of policy flags.
type DateResolver struct {
	opts Options
}

// NewDateResolver creates a resolver. The options apply to every call.
func NewDateResolver(opts Options) *DateResolver {
	return &DateResolver{opts: opts}
}

// Options returns the policy flags of the resolver.
func (dr *DateResolver) Options() Options {
	return dr.opts
}

// ResolveDate resolves the calendar day of t in t's location.
func (dr *DateResolver) ResolveDate(t time.Time) (*Day, error) {
	return dr.ResolveGregorian(GregorianDateOf(t))
}

// ResolveGregorian resolves a Gregorian date.
func (dr *DateResolver) ResolveGregorian(g GregorianDate) (*Day, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return dr.resolveAbsolute(g.AbsoluteDay())
}

// ResolveHebrew resolves a Hebrew date.
func (dr *DateResolver) ResolveHebrew(h HebrewDate) (*Day, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	return dr.resolveAbsolute(h.AbsoluteDay())
}

func (dr *DateResolver) resolveAbsolute(a AbsoluteDay) (*Day, error) {
	g, err := FromAbsoluteDay(a)
	if err != nil {
		return nil, err
	}
	h, err := HebrewDateFromAbsolute(a)
	if err != nil {
		return nil, err
	}
	wd := WeekdayOf(a.Weekday())
	hanukaDay, _ := DayOfHanuka(h)

	return &Day{
		Gregorian:  g,
		Hebrew:     h,
		Weekday:    wd,
		Observance: Classify(h, wd, dr.opts),
		RoshHodesh: IsRoshHodesh(h),
		HanukaDay:  hanukaDay,
	}, nil
}

// ObservancesInYear returns every observed day of the Hebrew year in order,
// from Rosh Hashana to Erev Rosh Hashana.
func (dr *DateResolver) ObservancesInYear(year int) ([]Day, error) {
	if year < 1 || year > MaxHebrewYear {
		return nil, fmt.Errorf("hebrew year %d: %w", year, ErrOutOfRange)
	}

	var days []Day
	end := RoshHashanaDay(year + 1)
	for a := RoshHashanaDay(year); a < end; a++ {
		d, err := dr.resolveAbsolute(a)
		if err != nil {
			return nil, fmt.Errorf("resolve hebrew year %d: %w", year, err)
		}
		if d.Observance != NotObserved {
			days = append(days, *d)
		}
	}
	return days, nil
}

// NextObservance returns the first day strictly after from whose observance
// satisfies match.
func (dr *DateResolver) NextObservance(from GregorianDate, match func(Observance) bool) (*Day, error) {
	if err := from.Validate(); err != nil {
		return nil, err
	}
	start := from.AbsoluteDay()
	for a := start + 1; a <= start+searchWindow; a++ {
		d, err := dr.resolveAbsolute(a)
		if err != nil {
			return nil, err
		}
		if d.Observance != NotObserved && match(d.Observance) {
			return d, nil
		}
	}
	return nil, ErrNoObservance
}

// Is returns a match function for NextObservance that selects o.
func Is(o Observance) func(Observance) bool {
	return func(got Observance) bool { return got == o }
}
