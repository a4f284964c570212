package datastructure

import (
	"github.com/twpayne/go-polyline"
)

// Leg is one line of the CDU LEGS page.
type Leg struct {
	From         GeoPoint `json:"from"`
	To           GeoPoint `json:"to"`
	DistanceKm   float64  `json:"distance_km"`
	Bearing      float64  `json:"bearing"`
	CumulativeKm float64  `json:"cumulative_km"`
}

// RenderPath encodes the path as a google polyline, lat/lon order.
func RenderPath(path []GeoPoint) string {
	coords := make([][]float64, 0, len(path))
	for _, p := range path {
		coords = append(coords, []float64{p.Lat, p.Lon})
	}
	return string(polyline.EncodeCoords(coords))
}
