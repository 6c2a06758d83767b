// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package polygon

import "math"

// Rect is an axis-aligned rectangle given by its minimum and maximum corners.
// A wall's frame is a Rect: its four edges are the only place a surviving
// piece of wall may be attached.
type Rect struct {
	Min, Max Point
}

// R creates a Rect from two corners in any order.
func R(x0, y0, x1, y1 float64) Rect {
	return Rect{
		Min: Point{X: math.Min(x0, x1), Y: math.Min(y0, y1)},
		Max: Point{X: math.Max(x0, x1), Y: math.Max(y0, y1)},
	}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// IsEmpty returns true if the rectangle has zero area.
func (r Rect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Contains returns true if the point is inside the rectangle or on its border.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// OnEdge reports whether p lies within eps of the line through any of the
// rectangle's four edges.
func (r Rect) OnEdge(p Point, eps float64) bool {
	return math.Abs(p.X-r.Min.X) <= eps ||
		math.Abs(p.X-r.Max.X) <= eps ||
		math.Abs(p.Y-r.Min.Y) <= eps ||
		math.Abs(p.Y-r.Max.Y) <= eps
}

// Contour returns the rectangle as a counter-clockwise contour starting at Min.
func (r Rect) Contour() []Point {
	return []Point{
		{X: r.Min.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Max.Y},
		{X: r.Min.X, Y: r.Max.Y},
	}
}
