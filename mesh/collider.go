// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mesh

import "github.com/go-gl/mathgl/mgl32"

// rayEpsilon rejects rays parallel to a triangle and hits at the origin.
const rayEpsilon = 1e-7

// Collider is a non-convex collision shape: the triangle soup of a Mesh.
//
// It shares the mesh's buffers, which are never modified after publishing.
type Collider struct {
	positions []mgl32.Vec3
	indices   []uint32
	bounds    Bounds
}

// Hit describes where a ray met a Collider.
type Hit struct {
	// Distance is the ray parameter of the hit.
	Distance float32

	// Point is the hit position.
	Point mgl32.Vec3

	// Normal is the unit face normal, facing the ray origin.
	Normal mgl32.Vec3

	// Triangle is the index of the triangle hit.
	Triangle int
}

// NewCollider builds a collision shape from m.
func NewCollider(m *Mesh) *Collider {
	return &Collider{
		positions: m.Positions,
		indices:   m.Indices,
		bounds:    m.Bounds,
	}
}

// Bounds returns the collider's bounding box.
func (c *Collider) Bounds() Bounds {
	return c.bounds
}

// TriangleCount returns the number of triangles.
func (c *Collider) TriangleCount() int {
	return len(c.indices) / 3
}

// Raycast returns the nearest hit with a distance in (0, maxDistance].
// Triangles are hit from either side.
func (c *Collider) Raycast(r Ray, maxDistance float32) (Hit, bool) {
	if len(c.indices) < 3 {
		return Hit{}, false
	}
	if _, _, ok := r.IntersectBounds(c.bounds); !ok {
		return Hit{}, false
	}

	best := Hit{Distance: maxDistance, Triangle: -1}
	for i := range c.TriangleCount() {
		a := c.positions[c.indices[3*i]]
		b := c.positions[c.indices[3*i+1]]
		cc := c.positions[c.indices[3*i+2]]
		if t, ok := intersectTriangle(r, a, b, cc); ok && t <= best.Distance {
			best.Distance = t
			best.Triangle = i
		}
	}
	if best.Triangle < 0 {
		return Hit{}, false
	}

	a := c.positions[c.indices[3*best.Triangle]]
	b := c.positions[c.indices[3*best.Triangle+1]]
	cc := c.positions[c.indices[3*best.Triangle+2]]
	n := normalize(b.Sub(a).Cross(cc.Sub(a)))
	if n.Dot(r.Direction) > 0 {
		n = n.Mul(-1)
	}
	best.Point = r.At(best.Distance)
	best.Normal = n
	return best, true
}

// intersectTriangle is the Möller-Trumbore test without back-face culling.
func intersectTriangle(r Ray, a, b, c mgl32.Vec3) (float32, bool) {
	e1, e2 := b.Sub(a), c.Sub(a)
	p := r.Direction.Cross(e2)
	det := e1.Dot(p)
	if mgl32.Abs(det) < rayEpsilon {
		return 0, false
	}
	inv := 1 / det
	s := r.Origin.Sub(a)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}
	q := s.Cross(e1)
	v := r.Direction.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t := e2.Dot(q) * inv
	if t <= rayEpsilon {
		return 0, false
	}
	return t, true
}
