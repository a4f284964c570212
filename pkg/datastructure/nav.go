package datastructure

// Waypoint is a named navigational fix from the catalog (airport, navaid, ...).
type Waypoint struct {
	ICAOCode string  `json:"icao_code" msgpack:"c"`
	Lat      float64 `json:"latitude" msgpack:"la"`
	Lon      float64 `json:"longitude" msgpack:"lo"`
	Name     string  `json:"name,omitempty" msgpack:"n,omitempty"`
}

func (w Waypoint) GeoPoint() GeoPoint {
	return GeoPoint{
		Lat:   w.Lat,
		Lon:   w.Lon,
		Label: w.ICAOCode,
	}
}

// GeoPoint is the unit of computation for route planning. It is copied by
// value from a Waypoint or supplied directly as a departure/destination.
type GeoPoint struct {
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Label string  `json:"label"`
}

func NewGeoPoint(lat, lon float64, label string) GeoPoint {
	return GeoPoint{
		Lat:   lat,
		Lon:   lon,
		Label: label,
	}
}

// SameCoordinate reports whether p sits exactly on lat/lon, no tolerance.
func (p GeoPoint) SameCoordinate(lat, lon float64) bool {
	return p.Lat == lat && p.Lon == lon
}
