// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package extrude sweeps a triangulated polygon set into a closed slab.
//
// The output vertex buffer holds four blocks of V vertices, V being the
// set's vertex count:
//
//	block 0: front faces, v - E/2
//	block 1: back faces,  v + E/2
//	block 2: side faces,  v - E/2
//	block 3: side faces,  v + E/2
//
// Side faces get their own copies so per-vertex normals of the sides do not
// blend with the front and back. The index buffer holds the 2D triangles in
// block 0, the same triangles re-wound in block 1, then one quad per
// contour and hole edge between blocks 2 and 3.
package extrude

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/wallbreak/polygon"
)

// VertexCount returns the number of extruded vertices: 4 per 2D vertex.
func VertexCount(set *polygon.Set) int {
	return 4 * set.VertexCount()
}

// EdgeCount returns the number of boundary edges over every contour and hole.
func EdgeCount(set *polygon.Set) int {
	n := 0
	for pi := range set.Len() {
		n += set.ContourLen(pi)
		for hi := range set.HoleCount(pi) {
			n += set.HoleLen(pi, hi)
		}
	}
	return n
}

// IndexCount returns the extruded index count for a set whose 2D
// triangulation used triIndices indices: front and back copies plus two
// triangles per boundary edge.
func IndexCount(set *polygon.Set, triIndices int) int {
	return 2*triIndices + 6*EdgeCount(set)
}

// Extrude fills vertices and indices for set swept along dir.
//
// indices[:triIndices] must already hold the 2D triangles, which index the
// set's vertices directly and so land in block 0 unchanged. vertices must
// hold VertexCount and indices IndexCount entries; Extrude panics otherwise.
func Extrude(set *polygon.Set, dir mgl32.Vec3, vertices []mgl32.Vec3, indices []uint32, triIndices int) {
	v := set.VertexCount()
	if len(vertices) < 4*v {
		panic(fmt.Sprintf("extrude: vertex buffer holds %d, need %d", len(vertices), 4*v))
	}
	if need := IndexCount(set, triIndices); len(indices) < need {
		panic(fmt.Sprintf("extrude: index buffer holds %d, need %d", len(indices), need))
	}

	half := dir.Mul(0.5)
	for i, vtx := range set.Vertices() {
		p := mgl32.Vec3{float32(vtx.Point.X), float32(vtx.Point.Y), 0}
		front, back := p.Sub(half), p.Add(half)
		vertices[i] = front
		vertices[v+i] = back
		vertices[2*v+i] = front
		vertices[3*v+i] = back
	}

	o1 := uint32(v)
	back := indices[triIndices : 2*triIndices]
	for i := 0; i+2 < triIndices; i += 3 {
		back[i] = indices[i+2] + o1
		back[i+1] = indices[i+1] + o1
		back[i+2] = indices[i] + o1
	}

	side := indices[2*triIndices:]
	k := 0
	for pi := range set.Len() {
		k = quads(side, k, set.Contour(pi), v)
		for hi := range set.HoleCount(pi) {
			k = quads(side, k, set.Hole(pi, hi), v)
		}
	}
}

// quads writes two triangles for every edge of ring starting at side[k]
// and returns the next free slot.
func quads(side []uint32, k int, ring []polygon.Vertex, v int) int {
	o2, o3 := uint32(2*v), uint32(3*v)
	n := len(ring)
	for i, vtx := range ring {
		ci := uint32(vtx.Index)
		next := uint32(ring[(i+1)%n].Index)
		side[k] = ci + o2
		side[k+1] = next + o2
		side[k+2] = ci + o3
		side[k+3] = next + o2
		side[k+4] = next + o3
		side[k+5] = ci + o3
		k += 6
	}
	return k
}
