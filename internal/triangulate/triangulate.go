// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package triangulate turns a clipped polygon set into a triangle index
// buffer.
//
// Sizing and filling are separate steps. IndexCount gives the exact buffer
// length before anything is triangulated, the caller allocates, and
// Triangulate fills the buffer assuming that length. Each polygon writes only
// the region given by Offsets, so polygons are triangulated in parallel
// without synchronization.
//
// Per polygon, holes are first bridged into the contour, producing one
// simple ring, which is then ear-clipped. Contours are expected
// counter-clockwise and holes clockwise. Triangles are emitted as
// (next, curr, prev), clockwise in wall space.
//
// Ear clipping may stall on degenerate input. The triangles found so far
// are kept, the rest of the polygon's region is filled with zero-area
// triangles, and the stall is reported in Result.
package triangulate

import (
	"fmt"

	"github.com/gogpu/wallbreak/internal/parallel"
	"github.com/gogpu/wallbreak/polygon"
)

// Result describes one Triangulate call.
type Result struct {
	// Triangles is the number of triangles emitted per polygon. It is below
	// TriangleCount only for stalled polygons.
	Triangles []int

	// Stalled is the number of polygons whose ear clipping stalled.
	Stalled int
}

// tri is the per-polygon working state.
type tri struct {
	set     *polygon.Set
	polygon int
	hull    *hull
}

func newTri(set *polygon.Set, polygonIndex int) *tri {
	capacity := set.PolygonVertexCount(polygonIndex) + 2*set.HoleCount(polygonIndex)
	h := newHull(capacity)
	for _, v := range set.Contour(polygonIndex) {
		h.pushBack(v.Index)
	}
	return &tri{set: set, polygon: polygonIndex, hull: h}
}

func (t *tri) point(node int) polygon.Point {
	return t.set.Point(t.hull.value[node])
}

// TriangulatePolygon triangulates one polygon into dst, which must hold at
// least 3*TriangleCount indices. Only that prefix is written. Slots a
// stalled polygon could not fill get the polygon's first vertex index.
func TriangulatePolygon(set *polygon.Set, polygonIndex int, dst []uint32) (emitted int, stalled bool) {
	dst = dst[:3*TriangleCount(set, polygonIndex)]

	t := newTri(set, polygonIndex)
	t.bridgeHoles()
	emitted, stalled = t.clip(dst)

	pad := uint32(set.StartIndex(polygonIndex))
	for i := 3 * emitted; i < len(dst); i++ {
		dst[i] = pad
	}
	return emitted, stalled
}

// Triangulate triangulates every polygon of set into dst, fanning polygons
// out over pool. A nil pool triangulates on the calling goroutine.
//
// dst must hold at least IndexCount(set) indices; Triangulate panics
// otherwise and never grows the buffer.
func Triangulate(pool *parallel.WorkerPool, set *polygon.Set, dst []uint32) Result {
	offsets := Offsets(set)
	n := set.Len()
	if need := offsets[n]; len(dst) < need {
		panic(fmt.Sprintf("triangulate: index buffer holds %d, need %d", len(dst), need))
	}

	res := Result{Triangles: make([]int, n)}
	stalled := make([]bool, n)
	pool.For(n, func(pi int) {
		lo, hi := offsets[pi], offsets[pi+1]
		res.Triangles[pi], stalled[pi] = TriangulatePolygon(set, pi, dst[lo:hi:hi])
	})
	for _, s := range stalled {
		if s {
			res.Stalled++
		}
	}
	return res
}
