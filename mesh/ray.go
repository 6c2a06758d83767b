// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mesh

import "github.com/go-gl/mathgl/mgl32"

// Ray is a half-line from Origin along Direction. Direction need not be
// unit length; distances along the ray are then in units of its length.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At returns the point at parameter t.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectBounds returns the entry and exit parameters of r through b.
func (r Ray) IntersectBounds(b Bounds) (tmin, tmax float32, ok bool) {
	tmin, tmax = 0, mgl32.MaxValue
	for i := range 3 {
		o, d := r.Origin[i], r.Direction[i]
		if mgl32.Abs(d) < 1e-12 {
			if o < b.Min[i] || o > b.Max[i] {
				return 0, 0, false
			}
			continue
		}
		t0, t1 := (b.Min[i]-o)/d, (b.Max[i]-o)/d
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tmin, tmax = max(tmin, t0), min(tmax, t1)
		if tmin > tmax {
			return 0, 0, false
		}
	}
	return tmin, tmax, true
}
