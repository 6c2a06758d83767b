// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package triangulate

// hull is a circular doubly linked list of vertex indices stored in parallel
// slices. Nodes are addressed by their slot; removed slots are not reused.
// Capacity is fixed when the hull is created: contour + holes + 2 per hole.
type hull struct {
	value []int // global vertex index per node
	next  []int
	prev  []int
	head  int
	n     int // live nodes
}

func newHull(capacity int) *hull {
	return &hull{
		value: make([]int, 0, capacity),
		next:  make([]int, 0, capacity),
		prev:  make([]int, 0, capacity),
		head:  -1,
	}
}

// pushBack appends v before the head and returns its node.
func (h *hull) pushBack(v int) int {
	if h.head < 0 {
		node := h.alloc(v)
		h.next[node] = node
		h.prev[node] = node
		h.head = node
		h.n = 1
		return node
	}
	return h.insertAfter(h.prev[h.head], v)
}

// insertAfter links a new node holding v after node and returns it.
func (h *hull) insertAfter(node, v int) int {
	nn := h.alloc(v)
	after := h.next[node]
	h.next[node] = nn
	h.prev[nn] = node
	h.next[nn] = after
	h.prev[after] = nn
	h.n++
	return nn
}

func (h *hull) alloc(v int) int {
	node := len(h.value)
	h.value = append(h.value, v)
	h.next = append(h.next, -1)
	h.prev = append(h.prev, -1)
	return node
}

// remove unlinks node. The head moves forward if it was removed.
func (h *hull) remove(node int) {
	p, nx := h.prev[node], h.next[node]
	h.next[p] = nx
	h.prev[nx] = p
	if h.head == node {
		h.head = nx
	}
	h.n--
	if h.n == 0 {
		h.head = -1
	}
}
