package catalog

import (
	"sort"

	"fms/cdu/pkg/datastructure"
	"fms/cdu/pkg/geo"

	"github.com/dhconnelly/rtreego"
)

var tol = 0.0001

// candidateFactor r-tree neighbours are ranked in flat lat/lon degrees, so we
// over-fetch and re-rank by great-circle distance.
const candidateFactor = 4

type waypointRect struct {
	Location rtreego.Point
	seq      int
}

func (w *waypointRect) Bounds() rtreego.Rect {
	return w.Location.ToRect(tol)
}

func buildRtree(wps []datastructure.Waypoint) *rtreego.Rtree {
	rt := rtreego.NewTree(2, 25, 50) // 2 dimension, 25 min entries dan 50 max entries
	for i, wp := range wps {
		rt.Insert(&waypointRect{
			Location: rtreego.Point{wp.Lat, wp.Lon},
			seq:      i,
		})
	}
	return rt
}

type rankedWaypoint struct {
	wp   datastructure.Waypoint
	seq  int
	dist float64
}

// Nearest k waypoints closest (great-circle) to lat/lon. Used by the DIR INTC page.
func (c *Catalog) Nearest(lat, lon float64, k int) []datastructure.Waypoint {
	if k <= 0 || len(c.waypoints) == 0 {
		return []datastructure.Waypoint{}
	}

	fetch := k * candidateFactor
	if fetch > len(c.waypoints) {
		fetch = len(c.waypoints)
	}

	ranked := make([]rankedWaypoint, 0, fetch)
	for _, obj := range c.rt.NearestNeighbors(fetch, rtreego.Point{lat, lon}) {
		wr, ok := obj.(*waypointRect)
		if !ok || wr == nil {
			continue
		}
		wp := c.waypoints[wr.seq]
		ranked = append(ranked, rankedWaypoint{
			wp:   wp,
			seq:  wr.seq,
			dist: geo.CalculateHaversineDistance(lat, lon, wp.Lat, wp.Lon),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].dist == ranked[j].dist {
			return ranked[i].seq < ranked[j].seq
		}
		return ranked[i].dist < ranked[j].dist
	})

	if len(ranked) > k {
		ranked = ranked[:k]
	}
	res := make([]datastructure.Waypoint, 0, len(ranked))
	for _, r := range ranked {
		res = append(res, r.wp)
	}
	return res
}
