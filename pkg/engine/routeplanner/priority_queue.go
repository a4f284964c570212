package routeplanner

import (
	"errors"
)

type PriorityQueueNode struct {
	Rank float64
	Item int
}

// MinHeap binary heap priorityqueue keyed by node index. Equal ranks pop the
// lowest node index first.
type MinHeap struct {
	heap []PriorityQueueNode
	pos  map[int]int
}

func NewMinHeap() *MinHeap {
	return &MinHeap{
		heap: make([]PriorityQueueNode, 0),
		pos:  make(map[int]int),
	}
}

func (h *MinHeap) parent(index int) int {
	return (index - 1) / 2
}

func (h *MinHeap) leftChild(index int) int {
	return 2*index + 1
}

func (h *MinHeap) rightChild(index int) int {
	return 2*index + 2
}

func (h *MinHeap) less(i, j int) bool {
	if h.heap[i].Rank == h.heap[j].Rank {
		return h.heap[i].Item < h.heap[j].Item
	}
	return h.heap[i].Rank < h.heap[j].Rank
}

func (h *MinHeap) swap(i, j int) {
	h.heap[i], h.heap[j] = h.heap[j], h.heap[i]
	h.pos[h.heap[i].Item] = i
	h.pos[h.heap[j].Item] = j
}

// heapifyUp swap with parent while parent is larger. O(logN).
func (h *MinHeap) heapifyUp(index int) {
	for index != 0 && h.less(index, h.parent(index)) {
		h.swap(index, h.parent(index))
		index = h.parent(index)
	}
}

// heapifyDown swap with the smaller child while a child is smaller. O(logN).
func (h *MinHeap) heapifyDown(index int) {
	for {
		smallest := index
		left := h.leftChild(index)
		right := h.rightChild(index)

		if left < len(h.heap) && h.less(left, smallest) {
			smallest = left
		}
		if right < len(h.heap) && h.less(right, smallest) {
			smallest = right
		}
		if smallest == index {
			return
		}
		h.swap(index, smallest)
		index = smallest
	}
}

func (h *MinHeap) isEmpty() bool {
	return len(h.heap) == 0
}

func (h *MinHeap) Size() int {
	return len(h.heap)
}

// Contains whether item is currently queued.
func (h *MinHeap) Contains(item int) bool {
	idx, ok := h.pos[item]
	return ok && idx >= 0
}

func (h *MinHeap) Insert(key PriorityQueueNode) {
	h.heap = append(h.heap, key)
	index := h.Size() - 1
	h.pos[key.Item] = index
	h.heapifyUp(index)
}

// ExtractMin pop the minimum. O(logN).
func (h *MinHeap) ExtractMin() (PriorityQueueNode, error) {
	if h.isEmpty() {
		return PriorityQueueNode{}, errors.New("heap is empty")
	}
	root := h.heap[0]
	last := h.Size() - 1
	h.swap(0, last)
	h.heap = h.heap[:last]
	h.pos[root.Item] = -1
	h.heapifyDown(0)
	return root, nil
}

// DecreaseKey update Rank of a queued item. O(logN).
func (h *MinHeap) DecreaseKey(item PriorityQueueNode) error {
	idx, ok := h.pos[item.Item]
	if !ok || idx < 0 || idx >= h.Size() || item.Rank > h.heap[idx].Rank {
		return errors.New("invalid index or new value")
	}
	h.heap[idx] = item
	h.heapifyUp(idx)
	return nil
}
