// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package triangulate

// clip ear-clips the hull into dst, three indices per triangle, and returns
// the number of triangles written. It stops early, reporting stalled, when
// a full pass over the hull finds no ear.
func (t *tri) clip(dst []uint32) (emitted int, stalled bool) {
	h := t.hull
	node := h.head
	misses := 0
	for h.n > 2 {
		if misses >= h.n {
			return emitted, true
		}
		p, nx := h.prev[node], h.next[node]
		if !t.isEar(p, node, nx) {
			node = nx
			misses++
			continue
		}

		o := 3 * emitted
		dst[o] = uint32(h.value[nx])
		dst[o+1] = uint32(h.value[node])
		dst[o+2] = uint32(h.value[p])
		emitted++

		h.remove(node)
		node = nx
		misses = 0
	}
	return emitted, false
}

// isEar reports whether curr can be cut off as triangle (prev, curr, next).
// Near-collinear corners count as convex so that zero-area slivers left by
// bridges can be removed.
func (t *tri) isEar(prev, curr, next int) bool {
	a, b, c := t.point(prev), t.point(curr), t.point(next)
	if orient(a, b, c) < -epsilon {
		return false
	}

	h := t.hull
	for node := h.next[next]; node != prev; node = h.next[node] {
		v := t.point(node)
		if samePoint(v, a) || samePoint(v, b) || samePoint(v, c) {
			continue
		}
		// Only a reflex vertex can reach into a convex corner.
		if t.reflex(node) && inTriangle(a, b, c, v) {
			return false
		}
	}
	return true
}

func (t *tri) reflex(node int) bool {
	h := t.hull
	return orient(t.point(h.prev[node]), t.point(node), t.point(h.next[node])) <= epsilon
}
