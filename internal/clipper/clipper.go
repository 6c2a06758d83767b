// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package clipper subtracts impact shapes from a wall silhouette.
//
// Coordinates are snapped to a fixed-point grid (see Scale) before the
// boolean difference runs and again on the way out, which keeps repeated
// runs deterministic and lets every orientation, nesting and cleanup test
// on the result be exact integer arithmetic.
//
// The output is filtered against the wall frame: a polygon survives only if
// one of its contour vertices lies on one of the frame's four edges. Pieces
// that lost contact with the frame are dropped, so destruction perforates a
// wall but never breaks off floating chunks.
package clipper

import (
	"sort"

	polyclip "github.com/ctessum/polyclip-go"

	"github.com/gogpu/wallbreak/polygon"
)

// RetainEpsilon is the distance within which a contour vertex counts as
// touching a frame edge. It is far below one grid step.
const RetainEpsilon = 1e-6

// Stats describes one clipping pass.
type Stats struct {
	// Clips is the number of clip shapes applied.
	Clips int

	// Contours is the number of rings the boolean operation produced.
	Contours int

	// Dropped is the number of polygons removed by the frame filter.
	Dropped int
}

// Difference writes subjects minus the union of clips into dst, which is
// cleared first. Subjects may carry holes; clip polygons are treated as
// simple rings and their holes, if any, are ignored. Outer contours in dst
// are counter-clockwise and holes clockwise.
func Difference(dst, subjects, clips *polygon.Set, frame polygon.Rect) Stats {
	dst.Clear()

	result := toPolyclip(subjects)
	var stats Stats
	for ci := range clips.Len() {
		if len(result) == 0 {
			break
		}
		ring := snapRing(clips.Contour(ci))
		if len(ring) < 3 {
			continue
		}
		stats.Clips++
		result = result.Construct(polyclip.DIFFERENCE, polyclip.Polygon{ring})
	}

	rings := fromPolyclip(result)
	stats.Contours = len(rings)
	for _, poly := range nest(rings) {
		contour := toPoints(poly.contour)
		if !touchesFrame(contour, frame) {
			stats.Dropped++
			continue
		}
		holes := make([][]polygon.Point, len(poly.holes))
		for i, h := range poly.holes {
			holes[i] = toPoints(h)
		}
		// Rings are simplified to at least 3 points, Add cannot fail.
		_, _ = dst.Add(contour, holes...)
	}
	return stats
}

func touchesFrame(contour []polygon.Point, frame polygon.Rect) bool {
	for _, p := range contour {
		if frame.OnEdge(p, RetainEpsilon) {
			return true
		}
	}
	return false
}

// toPolyclip flattens every contour and hole of a Set into one polyclip
// polygon in grid units. Under even-odd filling, holes nested in their
// contour subtract as expected.
func toPolyclip(s *polygon.Set) polyclip.Polygon {
	out := make(polyclip.Polygon, 0, s.Len()+s.TotalHoles())
	for pi := range s.Len() {
		if c := snapRing(s.Contour(pi)); len(c) >= 3 {
			out = append(out, c)
		}
		for hi := range s.HoleCount(pi) {
			if h := snapRing(s.Hole(pi, hi)); len(h) >= 3 {
				out = append(out, h)
			}
		}
	}
	return out
}

func snapRing(vs []polygon.Vertex) polyclip.Contour {
	ring := make([]fixedPoint, len(vs))
	for i, v := range vs {
		ring[i] = toFixed(v.Point)
	}
	ring = simplify(ring)
	c := make(polyclip.Contour, len(ring))
	for i, p := range ring {
		c[i] = polyclip.Point{X: float64(p.X), Y: float64(p.Y)}
	}
	return c
}

func fromPolyclip(p polyclip.Polygon) [][]fixedPoint {
	rings := make([][]fixedPoint, 0, len(p))
	for _, c := range p {
		ring := make([]fixedPoint, len(c))
		for i, pt := range c {
			// Intersection points fall between grid steps; snap them back.
			ring[i] = toFixed(polygon.Point{X: pt.X / Scale, Y: pt.Y / Scale})
		}
		ring = simplify(ring)
		if len(ring) < 3 || doubleArea(ring) == 0 {
			continue
		}
		rings = append(rings, ring)
	}
	return rings
}

func toPoints(ring []fixedPoint) []polygon.Point {
	pts := make([]polygon.Point, len(ring))
	for i, p := range ring {
		pts[i] = p.toFloat()
	}
	return pts
}

// nested is an outer ring with its immediately nested holes.
type nested struct {
	contour []fixedPoint
	holes   [][]fixedPoint
}

// nest rebuilds the outer/hole hierarchy of a flat ring list. A ring's depth
// is the number of rings containing it; even depths are outer contours and
// odd depths are holes of their smallest container. Orientation is
// normalized: contours counter-clockwise, holes clockwise.
func nest(rings [][]fixedPoint) []nested {
	n := len(rings)
	areas := make([]int64, n)
	for i, r := range rings {
		areas[i] = abs64(doubleArea(r))
	}

	// Smallest first: a ring's parent is the first larger ring containing it.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return areas[order[a]] < areas[order[b]] })

	parent := make([]int, n)
	depth := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}
	for oi, i := range order {
		for _, j := range order[oi+1:] {
			if contains(rings[j], rings[i]) {
				if parent[i] == -1 {
					parent[i] = j
				}
				depth[i]++
			}
		}
	}

	outIndex := make(map[int]int, n)
	var out []nested
	for i, r := range rings {
		if depth[i]%2 != 0 {
			continue
		}
		if doubleArea(r) < 0 {
			reverse(r)
		}
		outIndex[i] = len(out)
		out = append(out, nested{contour: r})
	}
	for i, r := range rings {
		if depth[i]%2 == 0 {
			continue
		}
		oi, ok := outIndex[parent[i]]
		if !ok {
			continue
		}
		if doubleArea(r) > 0 {
			reverse(r)
		}
		out[oi].holes = append(out[oi].holes, r)
	}
	return out
}

// contains reports whether inner lies inside outer. Rings produced by a
// boolean operation never cross, so the first vertex of inner that is not
// on outer's boundary decides.
func contains(outer, inner []fixedPoint) bool {
	for _, p := range inner {
		switch pointInRing(p, outer) {
		case 1:
			return true
		case -1:
			return false
		}
	}
	return false
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
