// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package triangulate

import (
	"math"
	"sort"

	"github.com/gogpu/wallbreak/polygon"
)

// bridge pairs a hole with the hull vertex it will be spliced in at.
type bridge struct {
	hole  []polygon.Vertex
	entry int     // position of the rightmost vertex M within hole
	maxX  float64 // M's x coordinate
}

// bridgeHoles splices every hole of the polygon into the hull, rightmost
// hole first, so later bridges never cross earlier ones.
func (t *tri) bridgeHoles() {
	holes := t.set.HoleCount(t.polygon)
	if holes == 0 {
		return
	}

	bridges := make([]bridge, holes)
	for hi := range holes {
		ring := t.set.Hole(t.polygon, hi)
		b := bridge{hole: ring, maxX: math.Inf(-1)}
		for i, v := range ring {
			if v.Point.X > b.maxX {
				b.maxX = v.Point.X
				b.entry = i
			}
		}
		bridges[hi] = b
	}
	sort.SliceStable(bridges, func(i, j int) bool { return bridges[i].maxX > bridges[j].maxX })

	for _, b := range bridges {
		m := b.hole[b.entry].Point
		t.splice(t.findBridge(m), b.hole, b.entry)
	}
}

// findBridge returns the hull node a hole entry vertex m can see.
//
// A ray from m toward +x picks the nearest upward hull edge. If the hit is
// one of the edge's endpoints that endpoint is used. Otherwise the endpoint
// P with the greater x is the candidate, unless a reflex vertex lies in
// triangle (m, hit, P): then the one closest in angle to the ray wins,
// ties going to the nearest. The triangle test includes its boundary, so a
// reflex vertex on segment m-P, which would block the bridge to P, is
// chosen instead.
func (t *tri) findBridge(m polygon.Point) int {
	h := t.hull

	bestDist := math.Inf(1)
	var hit polygon.Point
	ea, eb := -1, -1
	node := h.head
	for range h.n {
		nx := h.next[node]
		a, b := t.point(node), t.point(nx)
		if a.Y < b.Y && a.Y <= m.Y && m.Y <= b.Y {
			x := a.X + (m.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if x >= m.X && x-m.X < bestDist {
				bestDist = x - m.X
				hit = polygon.Pt(x, m.Y)
				ea, eb = node, nx
			}
		}
		node = nx
	}
	if ea < 0 {
		return t.nearest(m)
	}
	if samePoint(hit, t.point(ea)) {
		return t.visibleTwin(ea, m)
	}
	if samePoint(hit, t.point(eb)) {
		return t.visibleTwin(eb, m)
	}

	candidate := ea
	if t.point(eb).X > t.point(ea).X {
		candidate = eb
	}
	p := t.point(candidate)

	bestAngle := math.Inf(1)
	bestDist = math.Inf(1)
	node = h.head
	for range h.n {
		if node != candidate {
			r := t.point(node)
			if t.reflex(node) && inTriangle(m, hit, p, r) {
				angle := math.Abs(math.Atan2(r.Y-m.Y, r.X-m.X))
				dist := m.Distance(r)
				if angle < bestAngle-epsilon ||
					(math.Abs(angle-bestAngle) <= epsilon && dist < bestDist) {
					bestAngle, bestDist = angle, dist
					candidate = node
				}
			}
		}
		node = h.next[node]
	}
	return t.visibleTwin(candidate, m)
}

// visibleTwin resolves duplicated hull vertices left behind by earlier
// bridges: among the nodes at the same position as node it returns the one
// whose interior wedge contains m.
func (t *tri) visibleTwin(node int, m polygon.Point) int {
	h := t.hull
	at := t.point(node)
	n := node
	for range h.n {
		if samePoint(t.point(n), at) &&
			locallyInside(t.point(h.prev[n]), t.point(n), t.point(h.next[n]), m) {
			return n
		}
		n = h.next[n]
	}
	return node
}

// nearest is the fallback for holes no hull edge faces, which only happens
// for holes outside their contour.
func (t *tri) nearest(m polygon.Point) int {
	h := t.hull
	best, bestDist := h.head, math.Inf(1)
	node := h.head
	for range h.n {
		if d := m.Distance(t.point(node)); d < bestDist {
			best, bestDist = node, d
		}
		node = h.next[node]
	}
	return best
}

// splice inserts the hole's cycle after node b, starting and ending at the
// entry vertex M: B, M, M+1, ..., M-1, M', B'.
func (t *tri) splice(b int, hole []polygon.Vertex, entry int) {
	h := t.hull
	k := len(hole)
	node := b
	for j := range k + 1 {
		node = h.insertAfter(node, hole[(entry+j)%k].Index)
	}
	h.insertAfter(node, h.value[b])
}
