package routeplanner_test

import (
	"testing"

	"fms/cdu/pkg/engine/routeplanner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinHeap(t *testing.T) {
	t.Run("extract in rank order", func(t *testing.T) {
		pq := routeplanner.NewMinHeap()
		for i, rank := range []float64{5, 3, 8, 1, 9, 2} {
			pq.Insert(routeplanner.PriorityQueueNode{Rank: rank, Item: i})
		}

		got := []float64{}
		for pq.Size() > 0 {
			n, err := pq.ExtractMin()
			require.NoError(t, err)
			got = append(got, n.Rank)
		}
		assert.Equal(t, []float64{1, 2, 3, 5, 8, 9}, got)

		_, err := pq.ExtractMin()
		assert.Error(t, err)
	})

	t.Run("equal ranks pop lowest index first", func(t *testing.T) {
		pq := routeplanner.NewMinHeap()
		for _, item := range []int{4, 2, 7, 1} {
			pq.Insert(routeplanner.PriorityQueueNode{Rank: 10, Item: item})
		}
		got := []int{}
		for pq.Size() > 0 {
			n, _ := pq.ExtractMin()
			got = append(got, n.Item)
		}
		assert.Equal(t, []int{1, 2, 4, 7}, got)
	})

	t.Run("decrease key", func(t *testing.T) {
		pq := routeplanner.NewMinHeap()
		pq.Insert(routeplanner.PriorityQueueNode{Rank: 10, Item: 1})
		pq.Insert(routeplanner.PriorityQueueNode{Rank: 20, Item: 2})
		assert.True(t, pq.Contains(2))

		require.NoError(t, pq.DecreaseKey(routeplanner.PriorityQueueNode{Rank: 5, Item: 2}))
		assert.Error(t, pq.DecreaseKey(routeplanner.PriorityQueueNode{Rank: 50, Item: 1}))

		min, err := pq.ExtractMin()
		require.NoError(t, err)
		assert.Equal(t, 2, min.Item)
		assert.Equal(t, 5.0, min.Rank)
		assert.False(t, pq.Contains(2))
		assert.Error(t, pq.DecreaseKey(routeplanner.PriorityQueueNode{Rank: 1, Item: 2}))
	})
}
