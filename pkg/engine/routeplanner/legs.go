package routeplanner

import (
	"fms/cdu/pkg/datastructure"
	"fms/cdu/pkg/geo"
)

// Legs LEGS page rows for consecutive path points.
func (rp *RoutePlanner) Legs(path []datastructure.GeoPoint) []datastructure.Leg {
	legs := []datastructure.Leg{}
	cumulative := 0.0
	for i := 0; i+1 < len(path); i++ {
		from, to := path[i], path[i+1]
		d := GreatCircleDistance(from, to)
		cumulative += d
		legs = append(legs, datastructure.Leg{
			From:         from,
			To:           to,
			DistanceKm:   d,
			Bearing:      geo.NormalizeBearing(geo.BearingTo(from.Lat, from.Lon, to.Lat, to.Lon)),
			CumulativeKm: cumulative,
		})
	}
	return legs
}

func TotalDistance(path []datastructure.GeoPoint) float64 {
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		total += GreatCircleDistance(path[i], path[i+1])
	}
	return total
}

// CrossTrack distance (km) of each intermediate path point from the direct
// departure-destination great circle segment.
func CrossTrack(path []datastructure.GeoPoint) []float64 {
	if len(path) < 3 {
		return []float64{}
	}
	start, end := path[0], path[len(path)-1]
	xtk := make([]float64, 0, len(path)-2)
	for _, p := range path[1 : len(path)-1] {
		xtk = append(xtk, geo.DistanceToSegment(p.Lat, p.Lon, start.Lat, start.Lon, end.Lat, end.Lon))
	}
	return xtk
}
