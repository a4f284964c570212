package geo

import (
	"math"

	"github.com/golang/geo/s2"
)

// EarthRadiusKM is the mean earth radius used for every great-circle distance.
const EarthRadiusKM = 6371.0

func degToRad(d float64) float64 {
	return d * math.Pi / 180.0
}

func radToDeg(r float64) float64 {
	return 180.0 * r / math.Pi
}

// CalculateHaversineDistance great-circle distance in km between two lat/lon pairs (degrees).
//
// https://www.movable-type.co.uk/scripts/latlong.html
func CalculateHaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := degToRad(lat1)
	phi2 := degToRad(lat2)
	deltaPhi := degToRad(lat2 - lat1)
	deltaLambda := degToRad(lon2 - lon1)

	a := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	// rounding pushes a past 1 for antipodal points
	a = math.Min(1, math.Max(0, a))
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKM * c
}

/*
BearingTo. initial true bearing (degrees, -180..180) of the great circle from p1 to p2.
https://www.movable-type.co.uk/scripts/latlong.html
*/
func BearingTo(p1Lat, p1Lon, p2Lat, p2Lon float64) float64 {
	dLon := degToRad(p2Lon - p1Lon)

	lat1 := degToRad(p1Lat)
	lat2 := degToRad(p2Lat)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) -
		math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	return radToDeg(math.Atan2(y, x))
}

// NormalizeBearing maps a bearing into [0, 360).
func NormalizeBearing(brng float64) float64 {
	brng = math.Mod(brng, 360)
	if brng < 0 {
		brng += 360
	}
	return brng
}

// DistanceToSegment km from point p to the great-circle segment a-b.
func DistanceToSegment(pLat, pLon, aLat, aLon, bLat, bLon float64) float64 {
	p := s2.PointFromLatLng(s2.LatLngFromDegrees(pLat, pLon))
	a := s2.PointFromLatLng(s2.LatLngFromDegrees(aLat, aLon))
	b := s2.PointFromLatLng(s2.LatLngFromDegrees(bLat, bLon))
	if a == b {
		return p.Distance(a).Radians() * EarthRadiusKM
	}
	return s2.DistanceFromSegment(p, a, b).Radians() * EarthRadiusKM
}
