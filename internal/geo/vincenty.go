package geo

import (
	"errors"
	"math"
)

// WGS-84 ellipsoid.
const (
	semiMajorAxis = 6378137.0
	semiMinorAxis = 6356752.3142
	flattening    = 1 / 298.257223563
)

const (
	vincentyIterations = 20
	vincentyTolerance  = 1e-12
)

// ErrNoConvergence is returned when the Vincenty iteration does not settle,
// which happens for nearly antipodal points. Callers can fall back to the
// rhumb-line functions.
var ErrNoConvergence = errors.New("vincenty formula failed to converge")

// Geodesic is the solution of the inverse geodesic problem between two
// points. Bearings are in degrees in (-180, 180], clockwise from north.
type Geodesic struct {
	Distance       float64 // meters
	InitialBearing float64
	FinalBearing   float64
}

// VincentyInverse solves the inverse geodesic problem with Vincenty's
// formula. Coincident points yield a zero Geodesic.
//
// T. Vincenty, "Direct and Inverse Solutions of Geodesics on the Ellipsoid
// with application of nested equations", Survey Review XXIII, 1975.
func VincentyInverse(from, to Point) (Geodesic, error) {
	const (
		a = semiMajorAxis
		b = semiMinorAxis
		f = flattening
	)

	L := toRadians(to.Longitude - from.Longitude)
	U1 := math.Atan((1 - f) * math.Tan(toRadians(from.Latitude)))
	U2 := math.Atan((1 - f) * math.Tan(toRadians(to.Latitude)))
	sinU1, cosU1 := math.Sincos(U1)
	sinU2, cosU2 := math.Sincos(U2)

	var (
		sinLambda, cosLambda float64
		sinSigma, cosSigma   float64
		sigma, cosSqAlpha    float64
		cos2SigmaM           float64
	)

	lambda := L
	lambdaPrev := 2 * math.Pi
	for i := 0; ; i++ {
		if math.Abs(lambda-lambdaPrev) <= vincentyTolerance {
			break
		}
		if i == vincentyIterations {
			return Geodesic{}, ErrNoConvergence
		}

		sinLambda, cosLambda = math.Sincos(lambda)
		x := cosU2 * sinLambda
		y := cosU1*sinU2 - sinU1*cosU2*cosLambda
		sinSigma = math.Sqrt(x*x + y*y)
		if sinSigma == 0 {
			return Geodesic{}, nil
		}
		cosSigma = sinU1*sinU2 + cosU1*cosU2*cosLambda
		sigma = math.Atan2(sinSigma, cosSigma)
		sinAlpha := cosU1 * cosU2 * sinLambda / sinSigma
		cosSqAlpha = 1 - sinAlpha*sinAlpha

		// Equatorial line.
		cos2SigmaM = 0
		if cosSqAlpha != 0 {
			cos2SigmaM = cosSigma - 2*sinU1*sinU2/cosSqAlpha
		}

		C := f / 16 * cosSqAlpha * (4 + f*(4-3*cosSqAlpha))
		lambdaPrev = lambda
		lambda = L + (1-C)*f*sinAlpha*
			(sigma+C*sinSigma*(cos2SigmaM+C*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))
	}

	uSq := cosSqAlpha * (a*a - b*b) / (b * b)
	A := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	B := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
	deltaSigma := B * sinSigma * (cos2SigmaM + B/4*(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
		B/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))

	return Geodesic{
		Distance:       b * A * (sigma - deltaSigma),
		InitialBearing: toDegrees(math.Atan2(cosU2*sinLambda, cosU1*sinU2-sinU1*cosU2*cosLambda)),
		FinalBearing:   toDegrees(math.Atan2(cosU1*sinLambda, -sinU1*cosU2+cosU1*sinU2*cosLambda)),
	}, nil
}

// Distance returns the geodesic distance in meters.
func Distance(from, to Point) (float64, error) {
	g, err := VincentyInverse(from, to)
	return g.Distance, err
}

// InitialBearing returns the geodesic bearing at from, in degrees.
func InitialBearing(from, to Point) (float64, error) {
	g, err := VincentyInverse(from, to)
	return g.InitialBearing, err
}

// FinalBearing returns the geodesic bearing on arrival at to, in degrees.
func FinalBearing(from, to Point) (float64, error) {
	g, err := VincentyInverse(from, to)
	return g.FinalBearing, err
}

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }
func toDegrees(rad float64) float64 { return rad * 180 / math.Pi }
