// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package clipper

import (
	"math"

	"github.com/gogpu/wallbreak/polygon"
)

// Scale is the fixed-point factor applied to wall coordinates before the
// boolean operation: one unit of wall space is Scale grid steps.
const Scale = 1000

// fixedPoint is a wall coordinate snapped to the 1/Scale grid.
type fixedPoint struct {
	X, Y int64
}

func toFixed(p polygon.Point) fixedPoint {
	return fixedPoint{
		X: int64(math.Round(p.X * Scale)),
		Y: int64(math.Round(p.Y * Scale)),
	}
}

func (p fixedPoint) toFloat() polygon.Point {
	return polygon.Point{
		X: float64(p.X) / Scale,
		Y: float64(p.Y) / Scale,
	}
}

// cross returns (b-a) x (c-a), exact in integer arithmetic.
func cross(a, b, c fixedPoint) int64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// doubleArea returns twice the signed area of a ring.
func doubleArea(ring []fixedPoint) int64 {
	var sum int64
	n := len(ring)
	for i := range n {
		a, b := ring[i], ring[(i+1)%n]
		sum += a.X*b.Y - a.Y*b.X
	}
	return sum
}

// simplify drops consecutive duplicates and exactly collinear vertices,
// wrapping around the ring, until no more can be removed.
func simplify(ring []fixedPoint) []fixedPoint {
	for {
		n := len(ring)
		if n < 3 {
			return ring
		}
		out := ring[:0:0]
		for i := range n {
			prev := ring[(i+n-1)%n]
			curr := ring[i]
			next := ring[(i+1)%n]
			if curr == prev {
				continue
			}
			if cross(prev, curr, next) == 0 {
				continue
			}
			out = append(out, curr)
		}
		if len(out) == n {
			return out
		}
		ring = out
	}
}

func reverse(ring []fixedPoint) {
	for i, j := 0, len(ring)-1; i < j; i, j = i+1, j-1 {
		ring[i], ring[j] = ring[j], ring[i]
	}
}

// pointInRing classifies p against a ring: 1 inside, -1 outside, 0 on the
// boundary. Exact for grid coordinates.
func pointInRing(p fixedPoint, ring []fixedPoint) int {
	inside := false
	n := len(ring)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := ring[j], ring[i]
		if onSegment(p, a, b) {
			return 0
		}
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		// p.X < a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y), cross-multiplied.
		lhs := (p.X - a.X) * (b.Y - a.Y)
		rhs := (p.Y - a.Y) * (b.X - a.X)
		if b.Y > a.Y {
			if lhs < rhs {
				inside = !inside
			}
		} else if lhs > rhs {
			inside = !inside
		}
	}
	if inside {
		return 1
	}
	return -1
}

func onSegment(p, a, b fixedPoint) bool {
	if cross(a, b, p) != 0 {
		return false
	}
	return p.X >= min(a.X, b.X) && p.X <= max(a.X, b.X) &&
		p.Y >= min(a.Y, b.Y) && p.Y <= max(a.Y, b.Y)
}
