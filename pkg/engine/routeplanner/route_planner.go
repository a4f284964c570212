package routeplanner

import (
	"errors"
	"math"

	"fms/cdu/pkg/datastructure"
	"fms/cdu/pkg/geo"
	"fms/cdu/pkg/util"
)

// ErrNoPathFound the destination was never reached from the departure.
var ErrNoPathFound = errors.New("no path found")

type WaypointSource interface {
	Waypoints() []datastructure.Waypoint
}

type RoutePlanner struct{}

func NewRoutePlanner() *RoutePlanner {
	return &RoutePlanner{}
}

// GreatCircleDistance haversine distance in km, earth radius 6371 km.
func GreatCircleDistance(a, b datastructure.GeoPoint) float64 {
	return geo.CalculateHaversineDistance(a.Lat, a.Lon, b.Lat, b.Lon)
}

/*
FilterCandidates. waypoints lying inside the lat/lon box spanned by start and end
(inclusive), minus any waypoint sitting exactly on the start or end coordinate.
This is an axis-aligned box, not a corridor around the great circle, and it
does not handle routes across the antimeridian.
*/
func (rp *RoutePlanner) FilterCandidates(wps WaypointSource, start, end datastructure.GeoPoint) []datastructure.Waypoint {
	minLat, maxLat := math.Min(start.Lat, end.Lat), math.Max(start.Lat, end.Lat)
	minLon, maxLon := math.Min(start.Lon, end.Lon), math.Max(start.Lon, end.Lon)

	selected := []datastructure.Waypoint{}
	for _, wp := range wps.Waypoints() {
		if start.SameCoordinate(wp.Lat, wp.Lon) || end.SameCoordinate(wp.Lat, wp.Lon) {
			continue
		}
		if minLat <= wp.Lat && wp.Lat <= maxLat &&
			minLon <= wp.Lon && wp.Lon <= maxLon {
			selected = append(selected, wp)
		}
	}
	return selected
}

/*
ComputeShortestPath. dijkstra over the complete graph [start] + candidates + [end].

Every time a node is settled it becomes the predecessor of all still unsettled
neighbours, not only the ones whose tentative distance improved. The path read
back from the destination therefore sequences every node settled before it,
in order of increasing great-circle distance from the departure: the FMS
strings the corridor waypoints nearer than the destination into the route.
Edges of zero length are skipped, so coincident points never link.

Equal tentative distances settle the lowest node index first.

time complexity: O(N^2) for the distance matrix, O(N^2 logN) for the search.
*/
func (rp *RoutePlanner) ComputeShortestPath(start datastructure.GeoPoint, candidates []datastructure.GeoPoint,
	end datastructure.GeoPoint) ([]datastructure.GeoPoint, error) {
	g := NewDistanceGraph(start, candidates, end)
	prev := rp.dijkstra(g)

	source, target := g.Source(), g.Target()
	if prev[target] == -1 {
		return nil, ErrNoPathFound
	}

	pathIdx := []int{}
	for curr := target; curr != -1; curr = prev[curr] {
		pathIdx = append(pathIdx, curr)
		if len(pathIdx) > g.NumNodes() {
			return nil, ErrNoPathFound
		}
	}
	util.ReverseG(pathIdx)
	if pathIdx[0] != source {
		return nil, ErrNoPathFound
	}

	path := make([]datastructure.GeoPoint, 0, len(pathIdx))
	for _, idx := range pathIdx {
		path = append(path, g.Node(idx))
	}
	return path, nil
}

// dijkstra returns the predecessor of every node, -1 when it has none.
func (rp *RoutePlanner) dijkstra(g *DistanceGraph) []int {
	n := g.NumNodes()
	dist := make([]float64, n)
	prev := make([]int, n)
	visited := make([]bool, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = -1
	}

	source, target := g.Source(), g.Target()
	dist[source] = 0
	pq := NewMinHeap()
	pq.Insert(PriorityQueueNode{Rank: 0, Item: source})

	for pq.Size() > 0 {
		currItem, _ := pq.ExtractMin()
		curr := currItem.Item
		visited[curr] = true
		if curr == target {
			break
		}

		for next := 0; next < n; next++ {
			w := g.Weight(curr, next)
			if visited[next] || !(w > 0) {
				continue
			}

			newDist := dist[curr] + w
			if newDist < dist[next] {
				dist[next] = newDist
				if pq.Contains(next) {
					// newDist < dist[next] so the rank only decreases
					if err := pq.DecreaseKey(PriorityQueueNode{Rank: newDist, Item: next}); err != nil {
						pq.Insert(PriorityQueueNode{Rank: newDist, Item: next})
					}
				} else {
					pq.Insert(PriorityQueueNode{Rank: newDist, Item: next})
				}
			}
			prev[next] = curr
		}
	}
	return prev
}

// Plan filters the catalog to the start/end box and computes the route through it.
func (rp *RoutePlanner) Plan(wps WaypointSource, start, end datastructure.GeoPoint) ([]datastructure.GeoPoint, error) {
	candidates := rp.FilterCandidates(wps, start, end)

	candidatePoints := make([]datastructure.GeoPoint, 0, len(candidates))
	for _, wp := range candidates {
		candidatePoints = append(candidatePoints, wp.GeoPoint())
	}
	return rp.ComputeShortestPath(start, candidatePoints, end)
}
