package astro

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/zapponejosh/zmanim/internal/calendar"
	"github.com/zapponejosh/zmanim/internal/geo"
)

var (
	// ErrNoSunrise is returned when the sun does not rise to the requested
	// zenith on the date (polar night, or a twilight that never ends).
	ErrNoSunrise = errors.New("sun does not rise on this date")
	// ErrNoSunset is returned when the sun does not set to the requested
	// zenith on the date (midnight sun).
	ErrNoSunset = errors.New("sun does not set on this date")
	// ErrUnknownCalculator is returned by NewCalculator.
	ErrUnknownCalculator = errors.New("unknown calculator")
)

// Calculator computes the UTC time of the sun crossing a zenith on a date.
// Times are hours after 00:00 UTC in [0, 24). Implementations are
// stateless and safe for concurrent use.
type Calculator interface {
	// Name is the registry name of the algorithm.
	Name() string
	// UTCSunrise returns the morning crossing of zenith. With
	// adjustForElevation the point's elevation lowers the horizon.
	UTCSunrise(date calendar.GregorianDate, p geo.Point, zenith float64, adjustForElevation bool) (float64, error)
	// UTCSunset returns the evening crossing of zenith.
	UTCSunset(date calendar.GregorianDate, p geo.Point, zenith float64, adjustForElevation bool) (float64, error)
}

// Calculator names accepted by NewCalculator.
const (
	NOAAName  = "noaa"
	USNOName  = "usno"
	MeeusName = "meeus"
)

var calculators = map[string]func() Calculator{
	NOAAName:  func() Calculator { return NOAA{Adjuster: DefaultAdjuster()} },
	USNOName:  func() Calculator { return USNO{Adjuster: DefaultAdjuster()} },
	MeeusName: func() Calculator { return Meeus{Adjuster: DefaultAdjuster()} },
}

// NewCalculator returns the named algorithm with default zenith adjustments.
func NewCalculator(name string) (Calculator, error) {
	newCalc, ok := calculators[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownCalculator, name, CalculatorNames())
	}
	return newCalc(), nil
}

// CalculatorNames returns the registered names in sorted order.
func CalculatorNames() []string {
	names := make([]string, 0, len(calculators))
	for name := range calculators {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// SunTimes is the sunrise and sunset of one civil day at a location.
type SunTimes struct {
	Date     calendar.GregorianDate
	Location geo.Location
	Sunrise  time.Time
	Sunset   time.Time
}

// DayLength returns the time from sunrise to sunset.
func (s SunTimes) DayLength() time.Duration {
	return s.Sunset.Sub(s.Sunrise)
}

// ComputeSunTimes returns elevation-adjusted sunrise and sunset at the
// location, reported in the location's time zone.
func ComputeSunTimes(calc Calculator, date calendar.GregorianDate, loc geo.Location) (SunTimes, error) {
	if err := date.Validate(); err != nil {
		return SunTimes{}, err
	}

	rise, err := calc.UTCSunrise(date, loc.Point, GeometricZenith, true)
	if err != nil {
		return SunTimes{}, fmt.Errorf("%s sunrise on %s: %w", calc.Name(), date, err)
	}
	set, err := calc.UTCSunset(date, loc.Point, GeometricZenith, true)
	if err != nil {
		return SunTimes{}, fmt.Errorf("%s sunset on %s: %w", calc.Name(), date, err)
	}

	tz := loc.TimeZone
	if tz == nil {
		tz = time.UTC
	}
	return SunTimes{
		Date:     date,
		Location: loc,
		Sunrise:  TimeOn(date, loc.Point.Longitude, rise, true).In(tz),
		Sunset:   TimeOn(date, loc.Point.Longitude, set, false).In(tz),
	}, nil
}

// TimeOn converts UTC hours computed for date into an instant. The hours are
// taken modulo a day, so the result is moved to the UTC day that places a
// sunrise in the 12 hours before local mean noon and a sunset in the 12
// hours after it.
func TimeOn(date calendar.GregorianDate, longitude, utcHours float64, rising bool) time.Time {
	midnight := date.Time(time.UTC)
	t := midnight.Add(time.Duration(utcHours * float64(time.Hour))).Round(time.Second)
	noon := midnight.Add(time.Duration((12 - longitude/15) * float64(time.Hour)))

	lo, hi := -12*time.Hour, time.Duration(0)
	if !rising {
		lo, hi = 0, 12*time.Hour
	}
	for t.Sub(noon) < lo {
		t = t.Add(24 * time.Hour)
	}
	for t.Sub(noon) > hi {
		t = t.Add(-24 * time.Hour)
	}
	return t
}

// elevationFor returns the elevation to adjust the horizon for.
func elevationFor(p geo.Point, adjust bool) float64 {
	if adjust {
		return p.Elevation
	}
	return 0
}

// utcHours normalizes a time of day in hours into [0, 24).
func utcHours(h float64) float64 {
	h = math.Mod(h, 24)
	if h < 0 {
		h += 24
	}
	return h
}

func noEvent(rising bool) error {
	if rising {
		return ErrNoSunrise
	}
	return ErrNoSunset
}
