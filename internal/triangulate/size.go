// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package triangulate

import "github.com/gogpu/wallbreak/polygon"

// TriangleCount returns the number of triangles a polygon with V vertices
// (contour plus holes) and H holes decomposes into: V - 2 + 2H.
//
// Every hole is bridged into the contour by duplicating two vertices, which
// turns the polygon into a simple ring of V + 2H vertices.
func TriangleCount(set *polygon.Set, polygonIndex int) int {
	return set.PolygonVertexCount(polygonIndex) - 2 + 2*set.HoleCount(polygonIndex)
}

// IndexCount returns the exact length of the triangle index buffer for the
// whole Set: three indices per triangle, summed over every polygon.
func IndexCount(set *polygon.Set) int {
	n := 0
	for pi := range set.Len() {
		n += 3 * TriangleCount(set, pi)
	}
	return n
}

// Offsets returns, for every polygon, the first index slot it writes in the
// shared triangle index buffer. The result has Len()+1 entries; polygon pi
// owns [offsets[pi], offsets[pi+1]) and the last entry equals IndexCount.
func Offsets(set *polygon.Set) []int {
	offsets := make([]int, set.Len()+1)
	for pi := range set.Len() {
		offsets[pi+1] = offsets[pi] + 3*TriangleCount(set, pi)
	}
	return offsets
}
