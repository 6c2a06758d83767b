// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package triangulate

import (
	"math"

	"github.com/gogpu/wallbreak/polygon"
)

// epsilon is the tolerance on orientation tests. Clipped coordinates sit on
// a 1/1000 grid, so any real turn is many orders of magnitude above it.
const epsilon = 1e-12

// orient returns (b-a) x (c-a): positive for a counter-clockwise turn.
func orient(a, b, c polygon.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func samePoint(a, b polygon.Point) bool {
	return math.Abs(a.X-b.X) <= epsilon && math.Abs(a.Y-b.Y) <= epsilon
}

// inTriangle reports whether p lies inside or on the boundary of triangle
// (a, b, c), in either winding. A degenerate triangle contains the points
// of the segment it collapses to.
func inTriangle(a, b, c, p polygon.Point) bool {
	area := orient(a, b, c)
	if math.Abs(area) <= epsilon {
		if p.X < min(a.X, b.X, c.X) || p.X > max(a.X, b.X, c.X) ||
			p.Y < min(a.Y, b.Y, c.Y) || p.Y > max(a.Y, b.Y, c.Y) {
			return false
		}
		return math.Abs(orient(a, b, p)) <= epsilon && math.Abs(orient(b, c, p)) <= epsilon
	}
	if area < 0 {
		b, c = c, b
	}
	return orient(a, b, p) >= -epsilon &&
		orient(b, c, p) >= -epsilon &&
		orient(c, a, p) >= -epsilon
}

// locallyInside reports whether p lies in the interior wedge at b, where a
// and c are b's neighbours on a counter-clockwise ring.
func locallyInside(a, b, c, p polygon.Point) bool {
	if orient(a, b, c) >= 0 {
		return orient(a, b, p) >= 0 && orient(b, c, p) >= 0
	}
	return orient(a, b, p) >= 0 || orient(b, c, p) >= 0
}
