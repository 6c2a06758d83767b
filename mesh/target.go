// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mesh

// Target receives the mesh of every completed wall update.
//
// The host renderer implements Target; the wall calls UpdateMesh from the
// goroutine that ticks it. The Mesh must be treated as read-only.
type Target interface {
	UpdateMesh(m *Mesh)
}

// CollisionTarget receives the collision shape of every completed update.
type CollisionTarget interface {
	UpdateCollider(c *Collider)
}

// TargetFunc adapts a function to Target.
type TargetFunc func(m *Mesh)

// UpdateMesh calls f(m).
func (f TargetFunc) UpdateMesh(m *Mesh) { f(m) }

// CollisionTargetFunc adapts a function to CollisionTarget.
type CollisionTargetFunc func(c *Collider)

// UpdateCollider calls f(c).
func (f CollisionTargetFunc) UpdateCollider(c *Collider) { f(c) }

// NullTarget discards every update.
// Useful for headless walls and testing.
type NullTarget struct{}

// UpdateMesh does nothing.
func (NullTarget) UpdateMesh(*Mesh) {}

// UpdateCollider does nothing.
func (NullTarget) UpdateCollider(*Collider) {}

// Ensure NullTarget implements both target interfaces.
var (
	_ Target          = NullTarget{}
	_ CollisionTarget = NullTarget{}
)
