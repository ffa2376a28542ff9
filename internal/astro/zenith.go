// Package astro computes the solar zenith used for sunrise and sunset and
// provides interchangeable algorithms for the UTC time of those events.
package astro

import "math"

// Zenith angles in degrees.
const (
	// GeometricZenith is the sun's center on the true horizon of a point
	// observer without atmosphere.
	GeometricZenith = 90.0
	// CivilZenith is civil twilight, the sun 6° below the horizon.
	CivilZenith = 96.0
	// NauticalZenith is nautical twilight, the sun 12° below the horizon.
	NauticalZenith = 102.0
	// AstronomicalZenith is astronomical twilight, the sun 18° below the horizon.
	AstronomicalZenith = 108.0
)

// Defaults used by DefaultAdjuster.
const (
	DefaultRefraction  = 34.0 / 60 // degrees
	DefaultSolarRadius = 16.0 / 60 // degrees
	DefaultEarthRadius = 6356900.0 // meters
)

// Adjuster converts a geometric zenith into the zenith at which the upper
// limb of the sun touches the visible horizon.
type Adjuster struct {
	Refraction  float64 // average atmospheric refraction at the horizon, degrees
	SolarRadius float64 // apparent solar radius, degrees
	EarthRadius float64 // meters
}

// DefaultAdjuster returns an Adjuster with 34' refraction, a 16' solar radius
// and an earth radius of 6356.9 km.
func DefaultAdjuster() Adjuster {
	return Adjuster{
		Refraction:  DefaultRefraction,
		SolarRadius: DefaultSolarRadius,
		EarthRadius: DefaultEarthRadius,
	}
}

// ElevationAdjustment returns the dip of the horizon in degrees for an
// observer elevation meters above sea level.
func (a Adjuster) ElevationAdjustment(elevation float64) float64 {
	return math.Acos(a.EarthRadius/(a.EarthRadius+elevation)) * 180 / math.Pi
}

// AdjustedZenith adds solar radius, refraction and horizon dip to zenith
// when it is exactly GeometricZenith. Twilight zeniths are defined by the
// amount of light below the horizon and are returned unchanged.
func (a Adjuster) AdjustedZenith(zenith, elevation float64) float64 {
	if zenith != GeometricZenith {
		return zenith
	}
	return zenith + a.SolarRadius + a.Refraction + a.ElevationAdjustment(elevation)
}

// ElevationAdjustment uses DefaultAdjuster.
func ElevationAdjustment(elevation float64) float64 {
	return DefaultAdjuster().ElevationAdjustment(elevation)
}

// AdjustedZenith uses DefaultAdjuster.
func AdjustedZenith(zenith, elevation float64) float64 {
	return DefaultAdjuster().AdjustedZenith(zenith, elevation)
}
