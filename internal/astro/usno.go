package astro

import (
	"math"

	"github.com/zapponejosh/zmanim/internal/calendar"
	"github.com/zapponejosh/zmanim/internal/geo"
)

// USNO implements the sunrise algorithm of the Almanac for Computers
// (Nautical Almanac Office, US Naval Observatory, 1990). It is simpler
// than NOAA and good to about a minute at mid latitudes.
type USNO struct {
	Adjuster
}

func (USNO) Name() string { return USNOName }

func (c USNO) UTCSunrise(date calendar.GregorianDate, p geo.Point, zenith float64, adjustForElevation bool) (float64, error) {
	return c.timeAtZenith(date, p, zenith, adjustForElevation, true)
}

func (c USNO) UTCSunset(date calendar.GregorianDate, p geo.Point, zenith float64, adjustForElevation bool) (float64, error) {
	return c.timeAtZenith(date, p, zenith, adjustForElevation, false)
}

func (c USNO) timeAtZenith(date calendar.GregorianDate, p geo.Point, zenith float64, adjust, rising bool) (float64, error) {
	z := c.AdjustedZenith(zenith, elevationFor(p, adjust))
	lngHour := p.Longitude / 15

	// Approximate time of the event in days.
	local := 18.0
	if rising {
		local = 6
	}
	t := float64(date.DayOfYear()) + (local-lngHour)/24

	meanAnomaly := 0.9856*t - 3.289
	trueLong := normalizeDegrees(meanAnomaly +
		1.916*sinDeg(meanAnomaly) + 0.020*sinDeg(2*meanAnomaly) + 282.634)

	// Right ascension in hours, in the same quadrant as the true longitude.
	ra := normalizeDegrees(math.Atan(0.91764*tanDeg(trueLong)) / deg2rad)
	ra += math.Floor(trueLong/90)*90 - math.Floor(ra/90)*90
	ra /= 15

	sinDec := 0.39782 * sinDeg(trueLong)
	cosDec := math.Cos(math.Asin(sinDec))

	cosH := (cosDeg(z) - sinDec*sinDeg(p.Latitude)) / (cosDec * cosDeg(p.Latitude))
	if cosH < -1 || cosH > 1 {
		return 0, noEvent(rising)
	}

	h := math.Acos(cosH) / deg2rad
	if rising {
		h = 360 - h
	}
	h /= 15

	localMeanTime := h + ra - 0.06571*t - 6.622
	return utcHours(localMeanTime - lngHour), nil
}

func sinDeg(d float64) float64 { return math.Sin(d * deg2rad) }
func cosDeg(d float64) float64 { return math.Cos(d * deg2rad) }
func tanDeg(d float64) float64 { return math.Tan(d * deg2rad) }

// normalizeDegrees maps an angle into [0, 360).
func normalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}
