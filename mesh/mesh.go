// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package mesh holds the renderable and collidable output of a wall.
//
// A Mesh is built once from an extruded vertex and index buffer and is not
// modified after it has been published; render and collision targets may
// keep references to it. Coordinates are wall-local: X right, Y up, the
// slab spanning the wall's thickness along Z.
package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min, Max mgl32.Vec3
}

// Center returns the box center.
func (b Bounds) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the box extent on each axis.
func (b Bounds) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// Contains reports whether p lies inside or on the box.
func (b Bounds) Contains(p mgl32.Vec3) bool {
	for i := range 3 {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// Mesh is an indexed triangle list with per-vertex attributes.
type Mesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	Tangents  []mgl32.Vec4 // xyz tangent, w handedness
	UVs       []mgl32.Vec2
	Indices   []uint32
	Bounds    Bounds
}

// New copies positions and indices into a new Mesh and computes UVs,
// normals, tangents and bounds.
func New(positions []mgl32.Vec3, indices []uint32) *Mesh {
	m := &Mesh{
		Positions: append([]mgl32.Vec3(nil), positions...),
		Indices:   append([]uint32(nil), indices...),
	}
	m.Recalculate()
	return m
}

// Recalculate recomputes every derived attribute from Positions and Indices.
func (m *Mesh) Recalculate() {
	m.RecalculateUVs()
	m.RecalculateNormals()
	m.RecalculateTangents()
	m.RecalculateBounds()
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty reports whether the mesh has no triangles.
func (m *Mesh) IsEmpty() bool {
	return len(m.Indices) < 3
}

// Triangle returns the corners of triangle i.
func (m *Mesh) Triangle(i int) (a, b, c mgl32.Vec3) {
	return m.Positions[m.Indices[3*i]], m.Positions[m.Indices[3*i+1]], m.Positions[m.Indices[3*i+2]]
}

// RecalculateUVs projects positions onto the wall plane: u = x, v = y.
func (m *Mesh) RecalculateUVs() {
	m.UVs = resize(m.UVs, len(m.Positions))
	for i, p := range m.Positions {
		m.UVs[i] = mgl32.Vec2{p.X(), p.Y()}
	}
}

// RecalculateNormals sets every vertex normal to the area-weighted sum of
// the face normals around it. Vertices touched only by zero-area
// triangles get a zero normal.
func (m *Mesh) RecalculateNormals() {
	m.Normals = resize(m.Normals, len(m.Positions))
	clear(m.Normals)
	for i := range m.TriangleCount() {
		ia, ib, ic := m.Indices[3*i], m.Indices[3*i+1], m.Indices[3*i+2]
		a, b, c := m.Positions[ia], m.Positions[ib], m.Positions[ic]
		// The cross product's length is twice the area.
		n := b.Sub(a).Cross(c.Sub(a))
		m.Normals[ia] = m.Normals[ia].Add(n)
		m.Normals[ib] = m.Normals[ib].Add(n)
		m.Normals[ic] = m.Normals[ic].Add(n)
	}
	for i, n := range m.Normals {
		m.Normals[i] = normalize(n)
	}
}

// RecalculateTangents computes per-vertex tangents from the UV gradients.
// Normals and UVs must be current. Where the UVs carry no gradient (side
// faces under a planar projection) the tangent is any unit vector
// perpendicular to the normal.
func (m *Mesh) RecalculateTangents() {
	n := len(m.Positions)
	tan1 := make([]mgl32.Vec3, n)
	tan2 := make([]mgl32.Vec3, n)

	for i := range m.TriangleCount() {
		ia, ib, ic := m.Indices[3*i], m.Indices[3*i+1], m.Indices[3*i+2]
		e1 := m.Positions[ib].Sub(m.Positions[ia])
		e2 := m.Positions[ic].Sub(m.Positions[ia])
		d1 := m.UVs[ib].Sub(m.UVs[ia])
		d2 := m.UVs[ic].Sub(m.UVs[ia])

		det := d1.X()*d2.Y() - d2.X()*d1.Y()
		if mgl32.Abs(det) < 1e-12 {
			continue
		}
		r := 1 / det
		sdir := e1.Mul(d2.Y()).Sub(e2.Mul(d1.Y())).Mul(r)
		tdir := e2.Mul(d1.X()).Sub(e1.Mul(d2.X())).Mul(r)
		for _, v := range [3]uint32{ia, ib, ic} {
			tan1[v] = tan1[v].Add(sdir)
			tan2[v] = tan2[v].Add(tdir)
		}
	}

	m.Tangents = resize(m.Tangents, n)
	for i := range n {
		nrm := m.Normals[i]
		// Gram-Schmidt against the normal.
		t := normalize(tan1[i].Sub(nrm.Mul(nrm.Dot(tan1[i]))))
		if t == (mgl32.Vec3{}) {
			t = perpendicular(nrm)
		}
		w := float32(1)
		if nrm.Cross(t).Dot(tan2[i]) < 0 {
			w = -1
		}
		m.Tangents[i] = t.Vec4(w)
	}
}

// RecalculateBounds sets Bounds to the box around every position. An empty
// mesh gets the zero box.
func (m *Mesh) RecalculateBounds() {
	if len(m.Positions) == 0 {
		m.Bounds = Bounds{}
		return
	}
	lo, hi := m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		for k := range 3 {
			lo[k] = min(lo[k], p[k])
			hi[k] = max(hi[k], p[k])
		}
	}
	m.Bounds = Bounds{Min: lo, Max: hi}
}

func normalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < 1e-20 {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}

// perpendicular returns a unit vector perpendicular to n, or +X for a zero n.
func perpendicular(n mgl32.Vec3) mgl32.Vec3 {
	axis := mgl32.Vec3{0, 1, 0}
	if mgl32.Abs(n.Y()) > 0.9 {
		axis = mgl32.Vec3{1, 0, 0}
	}
	if t := normalize(axis.Cross(n)); t != (mgl32.Vec3{}) {
		return t
	}
	return mgl32.Vec3{1, 0, 0}
}

func resize[T any](s []T, n int) []T {
	if cap(s) < n {
		return make([]T, n)
	}
	return s[:n]
}
