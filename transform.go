// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wallbreak

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/wallbreak/mesh"
)

// Ray is a world-space half-line, as cast by a weapon.
type Ray = mesh.Ray

// Transform places a wall in the world: a rotation followed by a
// translation. Scale is not supported; wall dimensions carry the size.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// Identity returns the transform that leaves local space unchanged.
func Identity() Transform {
	return Transform{Rotation: mgl32.QuatIdent()}
}

// Forward returns the wall normal in world space, the local +Z axis.
func (t Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 0, 1})
}

// ToWorld maps a local point to world space.
func (t Transform) ToWorld(p mgl32.Vec3) mgl32.Vec3 {
	return t.Rotation.Rotate(p).Add(t.Position)
}

// ToLocal maps a world point to local space.
func (t Transform) ToLocal(p mgl32.Vec3) mgl32.Vec3 {
	return t.Rotation.Inverse().Rotate(p.Sub(t.Position))
}

// DirectionToWorld rotates a local direction into world space.
func (t Transform) DirectionToWorld(d mgl32.Vec3) mgl32.Vec3 {
	return t.Rotation.Rotate(d)
}

// DirectionToLocal rotates a world direction into local space.
func (t Transform) DirectionToLocal(d mgl32.Vec3) mgl32.Vec3 {
	return t.Rotation.Inverse().Rotate(d)
}

// RayToLocal maps a world ray into local space. Distances along the ray
// are preserved.
func (t Transform) RayToLocal(r Ray) Ray {
	return Ray{Origin: t.ToLocal(r.Origin), Direction: t.DirectionToLocal(r.Direction)}
}

// parallelEpsilon is the smallest |direction . normal| for which a ray is
// considered to cross the wall plane.
const parallelEpsilon = 1e-6

// PlaneHit intersects r with the wall's mid plane (local z = 0) and
// returns the local hit point. Rays parallel to the plane and planes behind
// the ray origin give ok = false.
func (t Transform) PlaneHit(r Ray) (local mgl32.Vec3, ok bool) {
	lr := t.RayToLocal(r)
	d := lr.Direction.Z()
	if mgl32.Abs(d) < parallelEpsilon {
		return mgl32.Vec3{}, false
	}
	dist := -lr.Origin.Z() / d
	if dist < 0 {
		return mgl32.Vec3{}, false
	}
	return lr.At(dist), true
}
