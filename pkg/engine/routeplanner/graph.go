package routeplanner

import (
	"fms/cdu/pkg/datastructure"
)

// DistanceGraph complete weighted graph over nodes. Index 0 is the departure,
// the last index the destination. Weights are great-circle km, symmetric,
// zero on the diagonal.
type DistanceGraph struct {
	nodes   []datastructure.GeoPoint
	weights [][]float64
}

func NewDistanceGraph(start datastructure.GeoPoint, candidates []datastructure.GeoPoint, end datastructure.GeoPoint) *DistanceGraph {
	nodes := make([]datastructure.GeoPoint, 0, len(candidates)+2)
	nodes = append(nodes, start)
	nodes = append(nodes, candidates...)
	nodes = append(nodes, end)

	n := len(nodes)
	weights := make([][]float64, n)
	for i := range weights {
		weights[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := GreatCircleDistance(nodes[i], nodes[j])
			weights[i][j] = d
			weights[j][i] = d
		}
	}

	return &DistanceGraph{nodes: nodes, weights: weights}
}

func (g *DistanceGraph) NumNodes() int {
	return len(g.nodes)
}

func (g *DistanceGraph) Node(idx int) datastructure.GeoPoint {
	return g.nodes[idx]
}

func (g *DistanceGraph) Weight(from, to int) float64 {
	return g.weights[from][to]
}

func (g *DistanceGraph) Source() int {
	return 0
}

func (g *DistanceGraph) Target() int {
	return len(g.nodes) - 1
}
