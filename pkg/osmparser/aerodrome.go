package osmparser

import (
	"context"
	"fmt"
	"io"

	"fms/cdu/pkg/datastructure"
	"fms/cdu/pkg/util"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
)

// ParseAerodromes scans an osm pbf extract for aerodrome nodes carrying an
// icao tag. Aerodromes mapped only as ways/areas are not picked up.
func ParseAerodromes(ctx context.Context, r io.Reader) ([]datastructure.Waypoint, error) {
	scanner := osmpbf.New(ctx, r, 3)
	defer scanner.Close()
	scanner.SkipWays = true
	scanner.SkipRelations = true

	wps := []datastructure.Waypoint{}
	for scanner.Scan() {
		node, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}
		if wp, ok := AerodromeFromNode(node); ok {
			wps = append(wps, wp)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan osm pbf: %w", err)
	}
	return wps, nil
}

// AerodromeFromNode turns an aeroway=aerodrome node with an icao tag into a waypoint.
func AerodromeFromNode(n *osm.Node) (datastructure.Waypoint, bool) {
	if n.Tags.Find("aeroway") != "aerodrome" {
		return datastructure.Waypoint{}, false
	}
	icao := util.NormalizeCode(n.Tags.Find("icao"))
	if icao == "" {
		return datastructure.Waypoint{}, false
	}
	return datastructure.Waypoint{
		ICAOCode: icao,
		Lat:      n.Lat,
		Lon:      n.Lon,
		Name:     n.Tags.Find("name"),
	}, true
}
