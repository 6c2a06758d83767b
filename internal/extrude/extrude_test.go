// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package extrude

import (
	"math"
	"slices"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/wallbreak/internal/triangulate"
	"github.com/gogpu/wallbreak/polygon"
)

var thickness = mgl32.Vec3{0, 0, 0.5}

func build(t *testing.T, s *polygon.Set) ([]mgl32.Vec3, []uint32, int) {
	t.Helper()
	tri := triangulate.IndexCount(s)
	indices := make([]uint32, IndexCount(s, tri))
	res := triangulate.Triangulate(nil, s, indices[:tri])
	if res.Stalled != 0 {
		t.Fatalf("triangulation stalled")
	}
	vertices := make([]mgl32.Vec3, VertexCount(s))
	Extrude(s, thickness, vertices, indices, tri)
	return vertices, indices, tri
}

func normal(vs []mgl32.Vec3, a, b, c uint32) mgl32.Vec3 {
	return vs[b].Sub(vs[a]).Cross(vs[c].Sub(vs[a]))
}

func TestExtrude_ConvexCounts(t *testing.T) {
	s := polygon.NewSet(0)
	if _, err := s.Add(polygon.R(-1, 0, 1, 2).Contour()); err != nil {
		t.Fatal(err)
	}
	vertices, indices, tri := build(t, s)

	if len(vertices) != 16 {
		t.Errorf("vertices = %d, want 4V = 16", len(vertices))
	}
	// T = 6 indices, E = 4 edges.
	if tri != 6 || len(indices) != 2*6+6*4 {
		t.Errorf("indices = %d (tri %d), want 2T+6E = 36", len(indices), tri)
	}
}

func TestExtrude_HoleCounts(t *testing.T) {
	s := polygon.NewSet(0)
	hole := polygon.R(-0.25, 0.75, 0.25, 1.25).Contour()
	slices.Reverse(hole)
	if _, err := s.Add(polygon.R(-1, 0, 1, 2).Contour(), hole); err != nil {
		t.Fatal(err)
	}
	if got := EdgeCount(s); got != 8 {
		t.Errorf("EdgeCount() = %d, want 8", got)
	}
	vertices, indices, tri := build(t, s)
	if len(vertices) != 32 {
		t.Errorf("vertices = %d, want 32", len(vertices))
	}
	if tri != 24 || len(indices) != 2*24+6*8 {
		t.Errorf("indices = %d (tri %d), want 96", len(indices), tri)
	}
}

func TestExtrude_Blocks(t *testing.T) {
	s := polygon.NewSet(0)
	if _, err := s.Add(polygon.R(-1, 0, 1, 2).Contour()); err != nil {
		t.Fatal(err)
	}
	vertices, indices, tri := build(t, s)
	v := uint32(s.VertexCount())

	for i := range s.VertexCount() {
		p := s.Point(i)
		want := mgl32.Vec3{float32(p.X), float32(p.Y), -0.25}
		if vertices[i] != want || vertices[2*int(v)+i] != want {
			t.Errorf("front vertex %d = %v, want %v", i, vertices[i], want)
		}
		want[2] = 0.25
		if vertices[int(v)+i] != want || vertices[3*int(v)+i] != want {
			t.Errorf("back vertex %d = %v, want %v", i, vertices[int(v)+i], want)
		}
	}

	for i, idx := range indices {
		var lo, hi uint32
		switch {
		case i < tri:
			lo, hi = 0, v
		case i < 2*tri:
			lo, hi = v, 2*v
		default:
			lo, hi = 2*v, 4*v
		}
		if idx < lo || idx >= hi {
			t.Errorf("indices[%d] = %d, want within [%d, %d)", i, idx, lo, hi)
		}
	}
}

func TestExtrude_FacesPointOutward(t *testing.T) {
	s := polygon.NewSet(0)
	hole := polygon.R(-0.25, 0.75, 0.25, 1.25).Contour()
	slices.Reverse(hole)
	if _, err := s.Add(polygon.R(-1, 0, 1, 2).Contour(), hole); err != nil {
		t.Fatal(err)
	}
	vertices, indices, tri := build(t, s)

	for i := 0; i < tri; i += 3 {
		if n := normal(vertices, indices[i], indices[i+1], indices[i+2]); n.Z() >= 0 {
			t.Errorf("front triangle %d normal = %v, want -Z", i/3, n)
		}
		j := tri + i
		if n := normal(vertices, indices[j], indices[j+1], indices[j+2]); n.Z() <= 0 {
			t.Errorf("back triangle %d normal = %v, want +Z", i/3, n)
		}
	}

	// Side quads: the normal points away from the solid, so stepping from
	// the edge midpoint along it leaves the polygon.
	for k := 2 * tri; k < len(indices); k += 3 {
		a, b, c := vertices[indices[k]], vertices[indices[k+1]], vertices[indices[k+2]]
		n := normal(vertices, indices[k], indices[k+1], indices[k+2])
		if n.Len() == 0 {
			t.Fatalf("side triangle %d is degenerate", (k-2*tri)/3)
		}
		n = n.Normalize()
		mid := a.Add(b).Add(c).Mul(1.0 / 3)
		probe := polygon.Pt(float64(mid.X()+0.01*n.X()), float64(mid.Y()+0.01*n.Y()))
		if math.Abs(float64(n.Z())) > 1e-6 {
			t.Errorf("side triangle %d normal = %v, want horizontal", (k-2*tri)/3, n)
		}
		inHole := probe.X > -0.25 && probe.X < 0.25 && probe.Y > 0.75 && probe.Y < 1.25
		inWall := probe.X > -1 && probe.X < 1 && probe.Y > 0 && probe.Y < 2
		if inWall && !inHole {
			t.Errorf("side triangle %d normal %v points into the solid", (k-2*tri)/3, n)
		}
	}
}

func TestExtrude_PanicsOnShortBuffers(t *testing.T) {
	s := polygon.NewSet(0)
	if _, err := s.Add(polygon.R(0, 0, 1, 1).Contour()); err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Error("Extrude with a short vertex buffer did not panic")
		}
	}()
	Extrude(s, thickness, make([]mgl32.Vec3, 4), make([]uint32, IndexCount(s, 6)), 6)
}
