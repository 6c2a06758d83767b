// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package pipeline runs the clip, size, triangulate and extrude stages for
// one wall update.
//
// A Run is started by Schedule and executes on its own goroutine; only the
// triangulation stage fans out over the shared worker pool. Each stage's
// output is complete before the next stage reads it. The owner polls
// completion with Poll (once per tick) or blocks with Wait, then reads the
// outputs and calls Release exactly once. Release is the single point where
// the run's buffers go back to the arena, whatever way the run ended.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/wallbreak/internal/arena"
	"github.com/gogpu/wallbreak/internal/clipper"
	"github.com/gogpu/wallbreak/internal/extrude"
	"github.com/gogpu/wallbreak/internal/parallel"
	"github.com/gogpu/wallbreak/internal/triangulate"
	"github.com/gogpu/wallbreak/polygon"
)

// State is the lifecycle stage of a Run.
type State int32

const (
	// StateScheduled means the run was created and its goroutine has not
	// started the first stage yet.
	StateScheduled State = iota

	// StateRunning means a stage is executing.
	StateRunning

	// StateDone means every stage finished (or one panicked) and the
	// outputs can be read.
	StateDone

	// StateReleased means the run's buffers went back to the arena.
	StateReleased
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateScheduled:
		return "scheduled"
	case StateRunning:
		return "running"
	case StateDone:
		return "done"
	case StateReleased:
		return "released"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Config is shared by every run of a wall.
type Config struct {
	// Pool fans triangulation out across polygons. Nil triangulates on the
	// run's goroutine.
	Pool *parallel.WorkerPool

	// Arena supplies and takes back the run's buffers. Required.
	Arena *arena.Arena

	// Frame is the wall's boundary rectangle for the retention filter.
	Frame polygon.Rect

	// Extrusion is the wall thickness vector.
	Extrusion mgl32.Vec3

	// Logger receives per-run diagnostics. Nil discards them.
	Logger *slog.Logger
}

// Stats describes a finished run.
type Stats struct {
	Clips           int // clip shapes applied
	Dropped         int // polygons removed for losing contact with the frame
	Polygons        int // polygons in the clipped result
	Holes           int // holes in the clipped result
	Vertices        int // extruded vertices
	TriangleIndices int // 2D triangle indices
	Indices         int // extruded indices
	Stalled         int // polygons whose ear clipping stalled

	Clip        time.Duration
	Triangulate time.Duration
	Extrude     time.Duration
	Total       time.Duration
}

// Run is one in-flight or finished pipeline execution.
type Run struct {
	cfg      Config
	subjects *polygon.Set // borrowed, read-only until done

	clips    *polygon.Set
	result   *polygon.Set
	vertices []mgl32.Vec3
	indices  []uint32

	stats Stats
	err   error

	state    atomic.Int32
	released atomic.Bool
	done     chan struct{}
}

// Schedule starts a run computing subjects minus clips and returns without
// waiting. subjects must not be mutated until the run is done. Clips with
// fewer than 3 points are skipped.
func Schedule(cfg Config, subjects *polygon.Set, clips [][]polygon.Point) *Run {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	r := &Run{
		cfg:      cfg,
		subjects: subjects,
		clips:    cfg.Arena.GetSet(),
		result:   cfg.Arena.GetSet(),
		done:     make(chan struct{}),
	}
	for _, c := range clips {
		// Short clips carry no area.
		_, _ = r.clips.Add(c)
	}
	r.state.Store(int32(StateScheduled))
	go r.execute()
	return r
}

func (r *Run) execute() {
	defer close(r.done)
	defer func() {
		if p := recover(); p != nil {
			r.err = fmt.Errorf("pipeline: stage panicked: %v", p)
			r.cfg.Logger.Error("wallbreak: pipeline run failed", "err", r.err)
		}
		r.state.Store(int32(StateDone))
	}()
	r.state.Store(int32(StateRunning))

	start := time.Now()
	cs := clipper.Difference(r.result, r.subjects, r.clips, r.cfg.Frame)
	r.stats.Clips = cs.Clips
	r.stats.Dropped = cs.Dropped
	r.stats.Polygons = r.result.Len()
	r.stats.Holes = r.result.TotalHoles()
	r.stats.Clip = time.Since(start)

	// Sizes are final before anything is written.
	tri := triangulate.IndexCount(r.result)
	r.stats.TriangleIndices = tri
	r.stats.Indices = extrude.IndexCount(r.result, tri)
	r.stats.Vertices = extrude.VertexCount(r.result)
	r.indices = r.cfg.Arena.Indices.Get(r.stats.Indices)
	r.vertices = r.cfg.Arena.Vertices.Get(r.stats.Vertices)

	t := time.Now()
	res := triangulate.Triangulate(r.cfg.Pool, r.result, r.indices[:tri])
	r.stats.Stalled = res.Stalled
	r.stats.Triangulate = time.Since(t)
	if res.Stalled > 0 {
		r.cfg.Logger.Warn("wallbreak: ear clipping stalled",
			"polygons", res.Stalled, "of", r.stats.Polygons)
	}

	t = time.Now()
	extrude.Extrude(r.result, r.cfg.Extrusion, r.vertices, r.indices, tri)
	r.stats.Extrude = time.Since(t)
	r.stats.Total = time.Since(start)

	r.cfg.Logger.Debug("wallbreak: pipeline run done",
		"clips", r.stats.Clips,
		"polygons", r.stats.Polygons,
		"holes", r.stats.Holes,
		"vertices", r.stats.Vertices,
		"indices", r.stats.Indices,
		"dropped", r.stats.Dropped,
		"elapsed", r.stats.Total)
}

// State returns the run's lifecycle stage.
func (r *Run) State() State {
	return State(r.state.Load())
}

// Done returns a channel closed when the run has finished.
func (r *Run) Done() <-chan struct{} {
	return r.done
}

// Poll reports whether the run has finished, without blocking.
func (r *Run) Poll() bool {
	select {
	case <-r.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the run finishes or ctx is done.
func (r *Run) Wait(ctx context.Context) error {
	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Err returns the failure of a finished run, or nil.
func (r *Run) Err() error {
	<-r.done
	return r.err
}

// Stats returns the run's statistics. It blocks until the run is done.
func (r *Run) Stats() Stats {
	<-r.done
	return r.stats
}

// Vertices returns the extruded vertex buffer. It blocks until the run is
// done and is valid until Release.
func (r *Run) Vertices() []mgl32.Vec3 {
	<-r.done
	return r.vertices
}

// Indices returns the extruded index buffer. It blocks until the run is
// done and is valid until Release.
func (r *Run) Indices() []uint32 {
	<-r.done
	return r.indices
}

// TakeResult hands the clipped polygon set to the caller, who then owns it
// and must return it with Arena.PutSet. Release no longer touches it.
// It returns nil if the run failed or the result was already taken.
func (r *Run) TakeResult() *polygon.Set {
	<-r.done
	if r.err != nil || r.released.Load() {
		return nil
	}
	s := r.result
	r.result = nil
	return s
}

// Release waits for the run to finish and returns its buffers to the arena.
// Only the first call does anything; it reports whether this call released.
func (r *Run) Release() bool {
	<-r.done
	if !r.released.CompareAndSwap(false, true) {
		return false
	}
	a := r.cfg.Arena
	a.PutSet(r.clips)
	a.PutSet(r.result)
	a.Indices.Put(r.indices)
	a.Vertices.Put(r.vertices)
	r.clips, r.result, r.indices, r.vertices = nil, nil, nil, nil
	r.state.Store(int32(StateReleased))
	return true
}
