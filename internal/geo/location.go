// Package geo holds observer locations and solves geodesic distance and
// bearing problems on the WGS-84 ellipsoid.
package geo

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidLocation is wrapped by every validation failure in this package.
var ErrInvalidLocation = errors.New("invalid location")

// Point is a position on the earth in degrees, with elevation in meters
// above sea level. Longitude is positive east of Greenwich.
type Point struct {
	Latitude  float64
	Longitude float64
	Elevation float64
}

// Validate checks the coordinate ranges.
func (p Point) Validate() error {
	var errs []error

	if math.IsNaN(p.Latitude) || p.Latitude < -90 || p.Latitude > 90 {
		errs = append(errs, fmt.Errorf("latitude must be between -90 and 90, got %v", p.Latitude))
	}
	if math.IsNaN(p.Longitude) || p.Longitude < -180 || p.Longitude > 180 {
		errs = append(errs, fmt.Errorf("longitude must be between -180 and 180, got %v", p.Longitude))
	}
	if math.IsNaN(p.Elevation) || p.Elevation < 0 {
		errs = append(errs, fmt.Errorf("elevation must not be negative, got %v", p.Elevation))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidLocation, errors.Join(errs...))
	}
	return nil
}

func (p Point) String() string {
	return fmt.Sprintf("%.6f, %.6f (%gm)", p.Latitude, p.Longitude, p.Elevation)
}

// Location is a named observer position with the time zone used to report
// local times.
type Location struct {
	Name     string
	Point    Point
	TimeZone *time.Location
}

// NewLocation validates the coordinates and resolves the IANA time zone name.
func NewLocation(name string, latitude, longitude, elevation float64, timeZone string) (Location, error) {
	p := Point{Latitude: latitude, Longitude: longitude, Elevation: elevation}
	if err := p.Validate(); err != nil {
		return Location{}, fmt.Errorf("location %q: %w", name, err)
	}

	tz, err := time.LoadLocation(timeZone)
	if err != nil {
		return Location{}, fmt.Errorf("location %q: %w: time zone %q: %w", name, ErrInvalidLocation, timeZone, err)
	}

	return Location{Name: name, Point: p, TimeZone: tz}, nil
}

// Greenwich returns the Royal Observatory at Greenwich on GMT, the default
// observer.
func Greenwich() Location {
	return Location{
		Name:     "Greenwich, England",
		Point:    Point{Latitude: 51.4772, Longitude: 0},
		TimeZone: time.UTC,
	}
}

// LocalMeanTimeOffset returns how far local mean time at the location
// (4 minutes per degree of longitude) is ahead of the zone's standard time
// at the given instant.
func (l Location) LocalMeanTimeOffset(at time.Time) time.Duration {
	tz := l.TimeZone
	if tz == nil {
		tz = time.UTC
	}
	_, offset := at.In(tz).Zone()

	lmt := time.Duration(l.Point.Longitude * 4 * float64(time.Minute))
	return lmt - time.Duration(offset)*time.Second
}

func (l Location) String() string {
	tz := "UTC"
	if l.TimeZone != nil {
		tz = l.TimeZone.String()
	}
	return fmt.Sprintf("%s [%s] %s", l.Name, l.Point, tz)
}
