package concurrent

import "fms/cdu/pkg/datastructure"

// SaveBucketJobItem waypoints sharing one h3 cell, stored under KeyStr.
type SaveBucketJobItem struct {
	KeyStr    string
	Waypoints []datastructure.Waypoint
}

type JobI interface {
	SaveBucketJobItem
}

type JobFunc[T JobI, G any] func(job T) G
