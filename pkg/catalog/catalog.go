package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"fms/cdu/pkg/datastructure"

	"github.com/dhconnelly/rtreego"
	"github.com/go-playground/validator/v10"
)

var (
	// ErrLoad source missing, unreadable or holding an invalid record.
	ErrLoad = errors.New("waypoint catalog load error")
	// ErrNotFound no waypoint with the requested identifier.
	ErrNotFound = errors.New("waypoint not found")
)

// record is one entry of the airport_data.json catalog source. Coordinates are
// pointers so a missing field can be told apart from 0.
type record struct {
	ICAOCode  string   `json:"icao_code" validate:"required"`
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	Name      string   `json:"name"`
}

// Catalog immutable set of waypoints, in source order. Safe for concurrent reads.
type Catalog struct {
	waypoints []datastructure.Waypoint
	rt        *rtreego.Rtree
}

// New builds a catalog from records that are already validated (kv store, osm import).
func New(waypoints []datastructure.Waypoint) *Catalog {
	wps := make([]datastructure.Waypoint, len(waypoints))
	copy(wps, waypoints)

	c := &Catalog{waypoints: wps}
	c.rt = buildRtree(wps)
	return c
}

func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	defer f.Close()
	return Load(f)
}

// Load parses a JSON array of {icao_code, latitude, longitude[, name]} records.
func Load(r io.Reader) (*Catalog, error) {
	var records []record
	dec := json.NewDecoder(r)
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	if records == nil {
		return nil, fmt.Errorf("%w: expected a json array of records", ErrLoad)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after the records array", ErrLoad)
	}

	validate := validator.New()
	waypoints := make([]datastructure.Waypoint, 0, len(records))
	for i, rec := range records {
		if err := validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrLoad, i, err)
		}
		waypoints = append(waypoints, datastructure.Waypoint{
			ICAOCode: rec.ICAOCode,
			Lat:      *rec.Latitude,
			Lon:      *rec.Longitude,
			Name:     rec.Name,
		})
	}

	return New(waypoints), nil
}

// FindByCode case-sensitive exact match. With duplicate codes the first one in
// catalog order wins.
func (c *Catalog) FindByCode(code string) (datastructure.Waypoint, error) {
	for _, wp := range c.waypoints {
		if wp.ICAOCode == code {
			return wp, nil
		}
	}
	return datastructure.Waypoint{}, fmt.Errorf("%w: %q", ErrNotFound, code)
}

// Waypoints returns a copy, catalog order.
func (c *Catalog) Waypoints() []datastructure.Waypoint {
	wps := make([]datastructure.Waypoint, len(c.waypoints))
	copy(wps, c.waypoints)
	return wps
}

func (c *Catalog) Len() int {
	return len(c.waypoints)
}

// Duplicates codes that appear more than once, in order of first appearance.
func (c *Catalog) Duplicates() []string {
	seen := make(map[string]int, len(c.waypoints))
	dups := []string{}
	for _, wp := range c.waypoints {
		seen[wp.ICAOCode]++
		if seen[wp.ICAOCode] == 2 {
			dups = append(dups, wp.ICAOCode)
		}
	}
	return dups
}
