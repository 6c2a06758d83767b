// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package polygon

import "math"

// SignedArea returns the shoelace area of a closed ring.
// Counter-clockwise rings (Y up) are positive, clockwise rings negative.
func SignedArea(ring []Point) float64 {
	n := len(ring)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := range n {
		a, b := ring[i], ring[(i+1)%n]
		sum += a.X*b.Y - a.Y*b.X
	}
	return sum / 2
}

func vertexRingArea(ring []Vertex) float64 {
	n := len(ring)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := range n {
		a, b := ring[i].Point, ring[(i+1)%n].Point
		sum += a.X*b.Y - a.Y*b.X
	}
	return sum / 2
}

// PolygonArea returns the area of one polygon.
//
// The contour contributes its own signed shoelace area. Every hole then
// subtracts the magnitude of its shoelace area from the contour's side of
// zero, whatever the hole's winding, so a hole never adds area.
func (s *Set) PolygonArea(polygonIndex int) float64 {
	area := vertexRingArea(s.Contour(polygonIndex))
	sign := 1.0
	if area < 0 {
		sign = -1
	}
	for hi := range s.HoleCount(polygonIndex) {
		area -= sign * math.Abs(vertexRingArea(s.Hole(polygonIndex, hi)))
	}
	return area
}

// Area returns the summed area of every polygon in the Set.
func (s *Set) Area() float64 {
	var area float64
	for pi := range s.Len() {
		area += s.PolygonArea(pi)
	}
	return area
}
