package astro

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/unit"

	"github.com/zapponejosh/zmanim/internal/calendar"
	"github.com/zapponejosh/zmanim/internal/geo"
)

// meeusIterations bounds the refinement of the event time.
const meeusIterations = 10

// Meeus implements the rising and setting method of Jean Meeus,
// Astronomical Algorithms, chapter 15, with apparent solar coordinates
// from the VSOP87 theory. The difference between dynamical and universal
// time is ignored; it moves the sun by well under a second of time.
type Meeus struct {
	Adjuster
}

func (Meeus) Name() string { return MeeusName }

func (c Meeus) UTCSunrise(date calendar.GregorianDate, p geo.Point, zenith float64, adjustForElevation bool) (float64, error) {
	return c.timeAtZenith(date, p, zenith, adjustForElevation, true)
}

func (c Meeus) UTCSunset(date calendar.GregorianDate, p geo.Point, zenith float64, adjustForElevation bool) (float64, error) {
	return c.timeAtZenith(date, p, zenith, adjustForElevation, false)
}

func (c Meeus) timeAtZenith(date calendar.GregorianDate, p geo.Point, zenith float64, adjust, rising bool) (float64, error) {
	h0 := unit.AngleFromDeg(90 - c.AdjustedZenith(zenith, elevationFor(p, adjust)))
	φ := unit.AngleFromDeg(p.Latitude)
	// Meeus measures longitude positive to the west.
	west := -p.Longitude

	jd0 := julian.TimeToJD(date.Time(time.UTC))
	θ0 := sidereal.Apparent0UT(jd0).Angle().Deg()

	α, δ := solar.ApparentEquatorial(jd0 + 0.5)
	cosH0 := (h0.Sin() - φ.Sin()*δ.Sin()) / (φ.Cos() * δ.Cos())
	if cosH0 < -1 || cosH0 > 1 {
		return 0, noEvent(rising)
	}
	H0 := math.Acos(cosH0) / deg2rad

	transit := (α.Rad()/deg2rad + west - θ0) / 360
	m := transit + H0/360
	if rising {
		m = transit - H0/360
	}
	m -= math.Floor(m)

	for range meeusIterations {
		θ := θ0 + 360.985647*m
		α, δ := solar.ApparentEquatorial(jd0 + m)

		// Local hour angle in (-180, 180].
		H := normalizeDegrees(θ-west-α.Rad()/deg2rad+180) - 180
		sinH, cosH := math.Sincos(H * deg2rad)

		h := math.Asin(φ.Sin()*δ.Sin() + φ.Cos()*δ.Cos()*cosH)
		Δm := (h - h0.Rad()) / (2 * math.Pi * δ.Cos() * φ.Cos() * sinH)
		if math.IsNaN(Δm) || math.IsInf(Δm, 0) {
			return 0, noEvent(rising)
		}
		m += Δm
		if math.Abs(Δm) < 1e-8 {
			break
		}
	}

	return utcHours(m * 24), nil
}
