package geo_test

import (
	"fms/cdu/pkg/geo"
	"math"
	"testing"

	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/assert"
)

func TestHaversine(t *testing.T) {
	t.Run("one degree of longitude on the equator", func(t *testing.T) {
		assert.InDelta(t, 111.19, geo.CalculateHaversineDistance(0, 0, 0, 1), 0.5)
	})

	t.Run("self distance", func(t *testing.T) {
		assert.Equal(t, 0.0, geo.CalculateHaversineDistance(-7.55, 110.78, -7.55, 110.78))
	})

	t.Run("symmetric", func(t *testing.T) {
		pairs := [][4]float64{
			{0, 0, 30, 30},
			{-6.12, 106.65, 1.35, 103.99},
			{51.47, -0.45, 40.64, -73.78},
			{-33.94, 151.17, 35.55, 139.78},
		}
		for _, p := range pairs {
			ab := geo.CalculateHaversineDistance(p[0], p[1], p[2], p[3])
			ba := geo.CalculateHaversineDistance(p[2], p[3], p[0], p[1])
			assert.InDelta(t, ab, ba, 1e-9)
		}
	})

	t.Run("antipodal points", func(t *testing.T) {
		halfCircumference := math.Pi * geo.EarthRadiusKM
		pairs := [][4]float64{
			{-88.5, -179.5, 88.5, 0.5},
			{0, 0, 0, 180},
			{45, -90, -45, 90},
			{-30.5, 12.5, 30.5, -167.5},
		}
		for _, p := range pairs {
			d := geo.CalculateHaversineDistance(p[0], p[1], p[2], p[3])
			assert.False(t, math.IsNaN(d), "%v", p)
			assert.InDelta(t, halfCircumference, d, 0.01, "%v", p)
			assert.InDelta(t, d, geo.CalculateHaversineDistance(p[2], p[3], p[0], p[1]), 1e-9)
		}
	})

	t.Run("agrees with s2 angle", func(t *testing.T) {
		a := s2.LatLngFromDegrees(51.47, -0.45)
		b := s2.LatLngFromDegrees(40.64, -73.78)
		expected := a.Distance(b).Radians() * geo.EarthRadiusKM
		assert.InDelta(t, expected, geo.CalculateHaversineDistance(51.47, -0.45, 40.64, -73.78), 1e-6)
	})
}

func TestBearing(t *testing.T) {
	assert.InDelta(t, 90.0, geo.BearingTo(0, 0, 0, 1), 1e-9)
	assert.InDelta(t, 0.0, geo.BearingTo(0, 0, 1, 0), 1e-9)
	assert.InDelta(t, 270.0, geo.NormalizeBearing(geo.BearingTo(0, 1, 0, 0)), 1e-9)
	assert.InDelta(t, 10.0, geo.NormalizeBearing(370), 1e-9)
}

func TestDistanceToSegment(t *testing.T) {
	t.Run("point on the segment", func(t *testing.T) {
		assert.InDelta(t, 0.0, geo.DistanceToSegment(0, 5, 0, 0, 0, 10), 1e-6)
	})

	t.Run("point one degree north of an equator segment", func(t *testing.T) {
		assert.InDelta(t, 111.19, geo.DistanceToSegment(1, 5, 0, 0, 0, 10), 0.5)
	})

	t.Run("degenerate segment", func(t *testing.T) {
		d := geo.DistanceToSegment(0, 1, 0, 0, 0, 0)
		assert.InDelta(t, geo.CalculateHaversineDistance(0, 1, 0, 0), d, 1e-6)
	})
}
