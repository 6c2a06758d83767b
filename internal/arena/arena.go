// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package arena

import (
	"sync"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/wallbreak/polygon"
)

// Arena bundles the pools a pipeline run draws from: triangle indices,
// extruded vertices and polygon sets (clip batches and clipped results).
//
// One Arena is usually shared by every wall using the same worker pool.
type Arena struct {
	Indices  *Pool[uint32]
	Vertices *Pool[mgl32.Vec3]

	setMu          sync.Mutex
	sets           []*polygon.Set
	maxSets        int
	setOutstanding atomic.Int64
}

// New creates an Arena retaining at most maxPerBucket buffers per size
// class and as many polygon sets.
func New(maxPerBucket int) *Arena {
	return &Arena{
		Indices:  NewPool[uint32](maxPerBucket),
		Vertices: NewPool[mgl32.Vec3](maxPerBucket),
		maxSets:  maxPerBucket,
	}
}

// GetSet returns an empty polygon set.
func (a *Arena) GetSet() *polygon.Set {
	a.setOutstanding.Add(1)

	a.setMu.Lock()
	defer a.setMu.Unlock()
	if n := len(a.sets); n > 0 {
		s := a.sets[n-1]
		a.sets = a.sets[:n-1]
		return s
	}
	return polygon.NewSet(64)
}

// PutSet returns a set obtained from GetSet. The set is cleared.
func (a *Arena) PutSet(s *polygon.Set) {
	if s == nil {
		return
	}
	a.setOutstanding.Add(-1)
	s.Clear()

	a.setMu.Lock()
	defer a.setMu.Unlock()
	if a.maxSets > 0 && len(a.sets) >= a.maxSets {
		return
	}
	a.sets = append(a.sets, s)
}

// Outstanding returns the number of buffers and sets not yet returned.
func (a *Arena) Outstanding() int {
	return a.Indices.Outstanding() + a.Vertices.Outstanding() + int(a.setOutstanding.Load())
}
