package geo

import "math"

// meanEarthRadius is used by the spherical rhumb-line approximations.
const meanEarthRadius = 6371000.0 // meters

// mercatorDelta is the difference in Mercator-projected latitude.
func mercatorDelta(from, to Point) float64 {
	return math.Log(math.Tan(toRadians(to.Latitude)/2+math.Pi/4) /
		math.Tan(toRadians(from.Latitude)/2+math.Pi/4))
}

// RhumbLineBearing returns the constant bearing in degrees that leads from
// one point to the other, crossing the antimeridian when that is shorter.
func RhumbLineBearing(from, to Point) float64 {
	dLon := toRadians(to.Longitude - from.Longitude)
	if math.Abs(dLon) > math.Pi {
		if dLon > 0 {
			dLon = -(2*math.Pi - dLon)
		} else {
			dLon = 2*math.Pi + dLon
		}
	}
	return toDegrees(math.Atan2(dLon, mercatorDelta(from, to)))
}

// RhumbLineDistance returns the length in meters of the rhumb line between
// the points on a spherical earth.
func RhumbLineDistance(from, to Point) float64 {
	dLat := toRadians(to.Latitude - from.Latitude)
	dLon := math.Abs(toRadians(to.Longitude - from.Longitude))
	if dLon > math.Pi {
		dLon = 2*math.Pi - dLon
	}

	// East-west lines have no Mercator stretch to divide by.
	q := math.Cos(toRadians(from.Latitude))
	if math.Abs(dLat) > 1e-10 {
		q = dLat / mercatorDelta(from, to)
	}

	return math.Sqrt(dLat*dLat+q*q*dLon*dLon) * meanEarthRadius
}
