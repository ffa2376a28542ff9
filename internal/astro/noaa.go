package astro

import (
	"math"

	"github.com/zapponejosh/zmanim/internal/calendar"
	"github.com/zapponejosh/zmanim/internal/geo"
)

// NOAA implements the algorithm of the NOAA Solar Calculator
// (https://gml.noaa.gov/grad/solcalc/). Most of the equations operate on
// the Julian century, the number of centuries since J2000.0.
type NOAA struct {
	Adjuster
}

func (NOAA) Name() string { return NOAAName }

func (c NOAA) UTCSunrise(date calendar.GregorianDate, p geo.Point, zenith float64, adjustForElevation bool) (float64, error) {
	return c.timeAtZenith(date, p, zenith, adjustForElevation, true)
}

func (c NOAA) UTCSunset(date calendar.GregorianDate, p geo.Point, zenith float64, adjustForElevation bool) (float64, error) {
	return c.timeAtZenith(date, p, zenith, adjustForElevation, false)
}

// timeAtZenith finds the crossing in two passes: the first uses the sun's
// position at solar noon, the second its position at the first estimate.
func (c NOAA) timeAtZenith(date calendar.GregorianDate, p geo.Point, zenith float64, adjust, rising bool) (float64, error) {
	z := c.AdjustedZenith(zenith, elevationFor(p, adjust))
	// The NOAA equations take longitude positive to the west.
	lng := -p.Longitude
	jd := julianDay(date)

	minutes := func(t float64) float64 {
		angle := hourAngle(z, sunDeclination(t), p.Latitude)
		if !rising {
			angle = -angle
		}
		return 720 + 4*(lng-angle) - equationOfTime(t)
	}

	noon := solarNoonUTC(jd, lng)
	utc := minutes(julianCentury(jd + noon/1440))
	utc = minutes(julianCentury(jd + utc/1440))

	if math.IsNaN(utc) {
		return 0, noEvent(rising)
	}
	return utcHours(utc / 60), nil
}

const deg2rad = math.Pi / 180

// julianDay returns the Julian day at 0h UT of the date.
func julianDay(date calendar.GregorianDate) float64 {
	year, month := date.Year, date.Month
	if month <= 2 {
		year--
		month += 12
	}
	a := math.Floor(float64(year / 100))
	b := 2 - a + math.Floor(a/4)
	return math.Floor(365.25*float64(year+4716)) +
		math.Floor(30.6001*float64(month+1)) +
		float64(date.Day) + b - 1524.5
}

func julianCentury(jd float64) float64 { return (jd - 2451545) / 36525 }

func meanObliquityOfEcliptic(t float64) float64 {
	seconds := 21.448 - t*(46.8150+t*(0.00059-t*0.001813))
	return 23 + (26+seconds/60)/60
}

func obliquityCorrection(t float64) float64 {
	omega := 125.04 - 1934.136*t
	return meanObliquityOfEcliptic(t) + 0.00256*math.Cos(deg2rad*omega)
}

func sunGeometricMeanAnomaly(t float64) float64 {
	return 357.52911 + t*(35999.05029-0.0001537*t)
}

func sunEquationOfCenter(t float64) float64 {
	m := deg2rad * sunGeometricMeanAnomaly(t)
	return math.Sin(m)*(1.914602-t*(0.004817+0.000014*t)) +
		math.Sin(2*m)*(0.019993-0.000101*t) +
		math.Sin(3*m)*0.000289
}

func sunGeometricMeanLongitude(t float64) float64 {
	return math.Mod(280.46646+t*(36000.76983+0.0003032*t), 360)
}

func sunApparentLongitude(t float64) float64 {
	omega := 125.04 - 1934.136*t
	trueLong := sunGeometricMeanLongitude(t) + sunEquationOfCenter(t)
	return trueLong - 0.00569 - 0.00478*math.Sin(deg2rad*omega)
}

func earthOrbitEccentricity(t float64) float64 {
	return 0.016708634 - t*(0.000042037+0.0000001267*t)
}

// equationOfTime returns true solar time minus mean solar time in minutes.
func equationOfTime(t float64) float64 {
	epsilon := deg2rad * obliquityCorrection(t)
	l0 := deg2rad * sunGeometricMeanLongitude(t)
	e := earthOrbitEccentricity(t)
	m := deg2rad * sunGeometricMeanAnomaly(t)

	y := math.Tan(epsilon / 2)
	y *= y
	sinM := math.Sin(m)

	eqTime := y*math.Sin(2*l0) -
		2*e*sinM +
		4*e*y*sinM*math.Cos(2*l0) -
		0.5*y*y*math.Sin(4*l0) -
		1.25*e*e*math.Sin(2*m)

	return eqTime / deg2rad * 4
}

// solarNoonUTC returns solar noon in minutes after 0h UT.
func solarNoonUTC(jd, lng float64) float64 {
	eqTime := equationOfTime(julianCentury(jd + lng/360))
	noon := 720 + lng*4 - eqTime

	eqTime = equationOfTime(julianCentury(jd - 0.5 + noon/1440))
	return 720 + lng*4 - eqTime
}

// sunDeclination returns the declination of the sun in degrees.
func sunDeclination(t float64) float64 {
	e := deg2rad * obliquityCorrection(t)
	lambda := deg2rad * sunApparentLongitude(t)
	return math.Asin(math.Sin(e)*math.Sin(lambda)) / deg2rad
}

// hourAngle returns the hour angle in degrees at which the sun reaches
// zenith, or NaN when it never does.
func hourAngle(zenith, decl, lat float64) float64 {
	zenith *= deg2rad
	decl *= deg2rad
	lat *= deg2rad
	return math.Acos(math.Cos(zenith)/(math.Cos(lat)*math.Cos(decl))-
		math.Tan(lat)*math.Tan(decl)) / deg2rad
}
