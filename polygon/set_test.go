// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package polygon

import (
	"errors"
	"math"
	"testing"
)

func square(x0, y0, x1, y1 float64) []Point {
	return []Point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

func reversed(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

// =============================================================================
// Construction Tests
// =============================================================================

func TestSet_ZeroValue(t *testing.T) {
	var s Set
	if s.Len() != 0 || s.VertexCount() != 0 {
		t.Errorf("zero Set: Len() = %d, VertexCount() = %d, want 0, 0", s.Len(), s.VertexCount())
	}
	if s.Area() != 0 {
		t.Errorf("zero Set: Area() = %v, want 0", s.Area())
	}
	if got := s.Bounds(); got != (Rect{}) {
		t.Errorf("zero Set: Bounds() = %v, want zero Rect", got)
	}
}

func TestSet_AddPolygon(t *testing.T) {
	s := NewSet(16)
	pi, err := s.Add(square(0, 0, 2, 2))
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if pi != 0 {
		t.Errorf("Add() index = %d, want 0", pi)
	}
	if s.ContourLen(0) != 4 || s.HoleCount(0) != 0 || s.PolygonVertexCount(0) != 4 {
		t.Errorf("metadata = (%d, %d, %d), want (4, 0, 4)",
			s.ContourLen(0), s.HoleCount(0), s.PolygonVertexCount(0))
	}

	pi, err = s.Add(square(3, 0, 4, 1), reversed(square(3.25, 0.25, 3.75, 0.75)))
	if err != nil {
		t.Fatalf("Add() with hole error = %v", err)
	}
	if pi != 1 {
		t.Errorf("second Add() index = %d, want 1", pi)
	}
	if s.StartIndex(1) != 4 {
		t.Errorf("StartIndex(1) = %d, want 4", s.StartIndex(1))
	}
	if s.HoleCount(1) != 1 || s.PolygonVertexCount(1) != 8 {
		t.Errorf("polygon 1: holes = %d, vertices = %d, want 1, 8", s.HoleCount(1), s.PolygonVertexCount(1))
	}
	if s.HoleStart(1, 0) != 8 || s.HoleLen(1, 0) != 4 {
		t.Errorf("hole range = [%d, +%d), want [8, +4)", s.HoleStart(1, 0), s.HoleLen(1, 0))
	}
}

func TestSet_IndicesAreInsertionOrder(t *testing.T) {
	s := NewSet(0)
	_, _ = s.Add(square(0, 0, 4, 4))
	_, _ = s.Add(square(5, 0, 9, 4))
	if err := s.AddHole(0, reversed(square(1, 1, 2, 2))); err != nil {
		t.Fatalf("AddHole() error = %v", err)
	}

	for i, v := range s.Vertices() {
		if v.Index != i {
			t.Errorf("vertex %d has Index %d", i, v.Index)
		}
	}

	// A hole added later lands after every earlier vertex.
	if s.HoleStart(0, 0) != 8 {
		t.Errorf("HoleStart(0, 0) = %d, want 8", s.HoleStart(0, 0))
	}
	hole := s.Hole(0, 0)
	if hole[0].Index != 8 || hole[0].Point != Pt(2, 2) {
		t.Errorf("Hole(0, 0)[0] = %+v, want index 8 at (2, 2)", hole[0])
	}
	if s.PolygonVertexCount(0) != 8 {
		t.Errorf("PolygonVertexCount(0) = %d, want 8", s.PolygonVertexCount(0))
	}
}

func TestSet_HolesAreDisjoint(t *testing.T) {
	s := NewSet(0)
	_, _ = s.Add(square(0, 0, 10, 10),
		reversed(square(1, 1, 2, 2)),
		reversed(square(3, 3, 4, 4)),
		reversed(square(5, 5, 6, 6)),
	)

	used := make(map[int]bool)
	mark := func(vs []Vertex) {
		for _, v := range vs {
			if used[v.Index] {
				t.Errorf("vertex %d appears in two rings", v.Index)
			}
			used[v.Index] = true
		}
	}
	mark(s.Contour(0))
	for hi := range s.HoleCount(0) {
		mark(s.Hole(0, hi))
	}
	if len(used) != s.VertexCount() {
		t.Errorf("rings cover %d vertices, want %d", len(used), s.VertexCount())
	}
}

func TestSet_AddErrors(t *testing.T) {
	s := NewSet(0)

	if _, err := s.Add([]Point{{0, 0}, {1, 0}}); !errors.Is(err, ErrContourTooShort) {
		t.Errorf("Add(2 points) error = %v, want ErrContourTooShort", err)
	}
	if _, err := s.Add(square(0, 0, 1, 1), []Point{{0, 0}}); !errors.Is(err, ErrContourTooShort) {
		t.Errorf("Add(short hole) error = %v, want ErrContourTooShort", err)
	}
	if s.Len() != 0 || s.VertexCount() != 0 {
		t.Errorf("failed Add left %d polygons / %d vertices", s.Len(), s.VertexCount())
	}

	if err := s.AddHole(0, square(0, 0, 1, 1)); !errors.Is(err, ErrPolygonIndex) {
		t.Errorf("AddHole(missing polygon) error = %v, want ErrPolygonIndex", err)
	}
	_, _ = s.Add(square(0, 0, 1, 1))
	if err := s.AddHole(0, []Point{{0, 0}, {1, 1}}); !errors.Is(err, ErrContourTooShort) {
		t.Errorf("AddHole(short) error = %v, want ErrContourTooShort", err)
	}
}

func TestSet_Clear(t *testing.T) {
	s := NewSet(0)
	_, _ = s.Add(square(0, 0, 2, 2), reversed(square(0.5, 0.5, 1.5, 1.5)))
	s.Clear()

	if s.Len() != 0 || s.VertexCount() != 0 || s.TotalHoles() != 0 {
		t.Errorf("after Clear: Len=%d VertexCount=%d TotalHoles=%d", s.Len(), s.VertexCount(), s.TotalHoles())
	}

	pi, _ := s.Add(square(0, 0, 1, 1))
	if pi != 0 || s.StartIndex(0) != 0 {
		t.Errorf("Add after Clear: index = %d, start = %d, want 0, 0", pi, s.StartIndex(0))
	}
}

func TestSet_CloneIsIndependent(t *testing.T) {
	s := NewSet(0)
	_, _ = s.Add(square(0, 0, 2, 2))
	c := s.Clone()

	_ = s.AddHole(0, reversed(square(0.5, 0.5, 1, 1)))
	if c.HoleCount(0) != 0 || c.VertexCount() != 4 {
		t.Errorf("clone changed with original: holes = %d, vertices = %d", c.HoleCount(0), c.VertexCount())
	}
}

// =============================================================================
// Area Tests
// =============================================================================

func TestSignedArea(t *testing.T) {
	tests := []struct {
		name string
		ring []Point
		want float64
	}{
		{"ccw square", square(0, 0, 2, 2), 4},
		{"cw square", reversed(square(0, 0, 2, 2)), -4},
		{"triangle", []Point{{0, 0}, {4, 0}, {0, 3}}, 6},
		{"degenerate", []Point{{0, 0}, {1, 1}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SignedArea(tt.ring); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("SignedArea() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSet_AreaSubtractsHolesRegardlessOfWinding(t *testing.T) {
	for _, hole := range [][]Point{
		reversed(square(1, 1, 2, 2)), // opposite winding
		square(1, 1, 2, 2),           // same winding
	} {
		s := NewSet(0)
		_, _ = s.Add(square(0, 0, 4, 4), hole)
		if got := s.Area(); math.Abs(got-15) > 1e-12 {
			t.Errorf("Area() = %v, want 15", got)
		}
	}
}

func TestSet_AreaSumsPolygons(t *testing.T) {
	s := NewSet(0)
	_, _ = s.Add(square(0, 0, 2, 2))
	_, _ = s.Add(square(3, 0, 4, 1))
	if got := s.Area(); math.Abs(got-5) > 1e-12 {
		t.Errorf("Area() = %v, want 5", got)
	}
	if got := s.PolygonArea(1); math.Abs(got-1) > 1e-12 {
		t.Errorf("PolygonArea(1) = %v, want 1", got)
	}
}

// =============================================================================
// Rect Tests
// =============================================================================

func TestRect_OnEdge(t *testing.T) {
	r := R(1, 2, -1, 0)
	if r.Min != Pt(-1, 0) || r.Max != Pt(1, 2) {
		t.Fatalf("R() = %v, want normalized corners", r)
	}

	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(-1, 1), true},
		{Pt(1, 1), true},
		{Pt(0, 0), true},
		{Pt(0, 2), true},
		{Pt(0, 1), false},
		{Pt(0.5, 1.5), false},
	}
	for _, tt := range tests {
		if got := r.OnEdge(tt.p, 1e-9); got != tt.want {
			t.Errorf("OnEdge(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRect_ContourIsCounterClockwise(t *testing.T) {
	r := R(-1, 0, 1, 2)
	if a := SignedArea(r.Contour()); a <= 0 {
		t.Errorf("SignedArea(Contour()) = %v, want > 0", a)
	}
	if r.Width() != 2 || r.Height() != 2 || r.IsEmpty() {
		t.Errorf("Width/Height/IsEmpty = %v/%v/%v", r.Width(), r.Height(), r.IsEmpty())
	}
}

func TestSet_Bounds(t *testing.T) {
	s := NewSet(0)
	_, _ = s.Add(square(-1, 0, 1, 2))
	_, _ = s.Add(square(3, -2, 4, 1))
	want := R(-1, -2, 4, 2)
	if got := s.Bounds(); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}
