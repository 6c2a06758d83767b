// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package polygon stores sets of polygons with holes in flat, indexed storage.
//
// All vertices of a Set live in one contiguous slice. Every vertex carries a
// globally unique index equal to its insertion order, so triangle index
// buffers produced from a Set address the Set's vertex slice directly.
// Per-polygon metadata (contour start, contour length, hole count, total
// vertex count) is kept in parallel slices, and a separate hole table maps
// every hole to its owning polygon, start index and length.
//
// # Concurrency
//
// Construction is single-writer. Once a Set is no longer mutated it is safe
// for any number of concurrent readers without synchronization. Slices
// returned by the view methods alias the Set's storage and are valid only
// until the next call to Add, AddHole or Clear.
package polygon

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrContourTooShort is returned when a contour or hole has fewer than 3 points.
	ErrContourTooShort = errors.New("polygon: contour needs at least 3 points")

	// ErrPolygonIndex is returned when a hole targets a polygon that does not exist.
	ErrPolygonIndex = errors.New("polygon: polygon index out of range")
)

// Vertex is one entry of a Set's flat vertex storage.
type Vertex struct {
	// Index is the vertex's position in the owning Set's vertex slice.
	Index int

	// Point is the vertex position.
	Point Point
}

// holeEntry locates one hole in the flat vertex storage.
type holeEntry struct {
	polygon int
	start   int
	length  int
}

// Set is an ordered sequence of polygons with holes.
//
// The zero value is an empty Set ready for use.
type Set struct {
	vertices []Vertex

	starts       []int // contour start index per polygon
	contourLens  []int // contour length per polygon
	holeCounts   []int // hole count per polygon
	vertexCounts []int // contour + holes vertex count per polygon

	holes     []holeEntry
	polyHoles [][]int // per polygon, indices into holes in insertion order
}

// NewSet creates an empty Set with room for the given number of vertices.
func NewSet(vertexCapacity int) *Set {
	if vertexCapacity < 0 {
		vertexCapacity = 0
	}
	return &Set{vertices: make([]Vertex, 0, vertexCapacity)}
}

// Add appends a polygon built from contour and optional holes and returns
// its polygon index. Nothing is appended if any ring has fewer than 3 points.
func (s *Set) Add(contour []Point, holes ...[]Point) (int, error) {
	if len(contour) < 3 {
		return -1, fmt.Errorf("%w: contour has %d", ErrContourTooShort, len(contour))
	}
	for i, h := range holes {
		if len(h) < 3 {
			return -1, fmt.Errorf("%w: hole %d has %d", ErrContourTooShort, i, len(h))
		}
	}

	pi := len(s.starts)
	s.starts = append(s.starts, len(s.vertices))
	s.contourLens = append(s.contourLens, len(contour))
	s.holeCounts = append(s.holeCounts, 0)
	s.vertexCounts = append(s.vertexCounts, len(contour))
	s.polyHoles = append(s.polyHoles, nil)
	s.appendPoints(contour)

	for _, h := range holes {
		s.appendHole(pi, h)
	}
	return pi, nil
}

// AddHole appends a hole to an existing polygon. The hole's vertices are
// stored after every vertex added so far, so hole ranges never overlap the
// contour range or each other.
func (s *Set) AddHole(polygonIndex int, hole []Point) error {
	if polygonIndex < 0 || polygonIndex >= len(s.starts) {
		return fmt.Errorf("%w: %d of %d", ErrPolygonIndex, polygonIndex, len(s.starts))
	}
	if len(hole) < 3 {
		return fmt.Errorf("%w: hole has %d", ErrContourTooShort, len(hole))
	}
	s.appendHole(polygonIndex, hole)
	return nil
}

func (s *Set) appendHole(pi int, hole []Point) {
	s.polyHoles[pi] = append(s.polyHoles[pi], len(s.holes))
	s.holes = append(s.holes, holeEntry{
		polygon: pi,
		start:   len(s.vertices),
		length:  len(hole),
	})
	s.holeCounts[pi]++
	s.vertexCounts[pi] += len(hole)
	s.appendPoints(hole)
}

func (s *Set) appendPoints(pts []Point) {
	index := len(s.vertices)
	for _, p := range pts {
		s.vertices = append(s.vertices, Vertex{Index: index, Point: p})
		index++
	}
}

// Len returns the number of polygons.
func (s *Set) Len() int {
	return len(s.starts)
}

// VertexCount returns the number of vertices across all polygons and holes.
func (s *Set) VertexCount() int {
	return len(s.vertices)
}

// TotalHoles returns the number of holes across all polygons.
func (s *Set) TotalHoles() int {
	return len(s.holes)
}

// Point returns the position of the vertex with global index i.
func (s *Set) Point(i int) Point {
	return s.vertices[i].Point
}

// Vertices returns a read-only view of the whole vertex storage.
func (s *Set) Vertices() []Vertex {
	return s.vertices
}

// Contour returns a read-only view of a polygon's contour.
func (s *Set) Contour(polygonIndex int) []Vertex {
	start := s.starts[polygonIndex]
	return s.vertices[start : start+s.contourLens[polygonIndex]]
}

// ContourLen returns the number of contour vertices of a polygon.
func (s *Set) ContourLen(polygonIndex int) int {
	return s.contourLens[polygonIndex]
}

// StartIndex returns the global index of a polygon's first contour vertex.
func (s *Set) StartIndex(polygonIndex int) int {
	return s.starts[polygonIndex]
}

// HoleCount returns the number of holes of a polygon.
func (s *Set) HoleCount(polygonIndex int) int {
	return s.holeCounts[polygonIndex]
}

// PolygonVertexCount returns the contour plus hole vertex count of a polygon.
func (s *Set) PolygonVertexCount(polygonIndex int) int {
	return s.vertexCounts[polygonIndex]
}

// Hole returns a read-only view of the holeIndex-th hole of a polygon.
func (s *Set) Hole(polygonIndex, holeIndex int) []Vertex {
	h := s.holes[s.polyHoles[polygonIndex][holeIndex]]
	return s.vertices[h.start : h.start+h.length]
}

// HoleStart returns the global index of a hole's first vertex.
func (s *Set) HoleStart(polygonIndex, holeIndex int) int {
	return s.holes[s.polyHoles[polygonIndex][holeIndex]].start
}

// HoleLen returns the number of vertices of a hole.
func (s *Set) HoleLen(polygonIndex, holeIndex int) int {
	return s.holes[s.polyHoles[polygonIndex][holeIndex]].length
}

// Clear removes all polygons, keeping allocated storage for reuse.
func (s *Set) Clear() {
	s.vertices = s.vertices[:0]
	s.starts = s.starts[:0]
	s.contourLens = s.contourLens[:0]
	s.holeCounts = s.holeCounts[:0]
	s.vertexCounts = s.vertexCounts[:0]
	s.holes = s.holes[:0]
	s.polyHoles = s.polyHoles[:0]
}

// Clone returns a deep copy of the Set.
func (s *Set) Clone() *Set {
	c := &Set{
		vertices:     append([]Vertex(nil), s.vertices...),
		starts:       append([]int(nil), s.starts...),
		contourLens:  append([]int(nil), s.contourLens...),
		holeCounts:   append([]int(nil), s.holeCounts...),
		vertexCounts: append([]int(nil), s.vertexCounts...),
		holes:        append([]holeEntry(nil), s.holes...),
		polyHoles:    make([][]int, len(s.polyHoles)),
	}
	for i, ph := range s.polyHoles {
		c.polyHoles[i] = append([]int(nil), ph...)
	}
	return c
}

// Bounds returns the bounding rectangle of every vertex in the Set.
// An empty Set returns the zero Rect.
func (s *Set) Bounds() Rect {
	if len(s.vertices) == 0 {
		return Rect{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range s.vertices {
		minX = math.Min(minX, v.Point.X)
		minY = math.Min(minY, v.Point.Y)
		maxX = math.Max(maxX, v.Point.X)
		maxY = math.Max(maxY, v.Point.Y)
	}
	return Rect{Min: Pt(minX, minY), Max: Pt(maxX, maxY)}
}

// Points copies a view into a fresh point slice.
func Points(vs []Vertex) []Point {
	pts := make([]Point, len(vs))
	for i, v := range vs {
		pts[i] = v.Point
	}
	return pts
}
