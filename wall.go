// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wallbreak

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/wallbreak/internal/pipeline"
	"github.com/gogpu/wallbreak/mesh"
	"github.com/gogpu/wallbreak/polygon"
)

// State is a wall's update stage.
type State int32

const (
	// StateIdle means no update is in flight.
	StateIdle State = iota

	// StateScheduled means an update was submitted and has not started.
	StateScheduled

	// StateRunning means an update is executing.
	StateRunning

	// StateCompleting means a finished update is being published.
	StateCompleting
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateScheduled:
		return "scheduled"
	case StateRunning:
		return "running"
	case StateCompleting:
		return "completing"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Stats describes the last completed update.
type Stats = pipeline.Stats

// Wall is one destructible wall.
type Wall struct {
	mu sync.Mutex

	opts      options
	size      mgl32.Vec3
	frame     polygon.Rect
	pool      *Pool
	ownsPool  bool
	subjects  *polygon.Set
	pending   [][]polygon.Point
	run       *pipeline.Run
	runClips  int
	mesh      *mesh.Mesh
	collider  *mesh.Collider
	stats     Stats
	completed uint64
	closed    bool

	state    atomic.Int32
	inflight atomic.Pointer[pipeline.Run]
}

// NewWall creates a wall of size (width, height, thickness) and schedules
// the update that builds its intact mesh. The mesh is published by the
// first Tick after that update completes.
func NewWall(size mgl32.Vec3, opts ...Option) (*Wall, error) {
	if !(size.X() > 0 && size.Y() > 0 && size.Z() > 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidSize, size)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := &Wall{
		opts: o,
		size: size,
		pool: o.pool,
	}
	if w.pool == nil {
		w.pool = NewPool(o.workers)
		w.ownsPool = true
	}

	hx, hy := float64(size.X())/2, float64(size.Y())
	w.frame = polygon.R(-hx, 0, hx, hy)
	w.subjects = w.pool.arena.GetSet()
	// The frame contour always has 4 points.
	_, _ = w.subjects.Add(w.frame.Contour())

	w.mu.Lock()
	w.schedule()
	w.mu.Unlock()

	Logger().Info("wallbreak: wall created", "size", size, "workers", w.pool.Workers())
	return w, nil
}

// Size returns the wall dimensions.
func (w *Wall) Size() mgl32.Vec3 {
	return w.size
}

// Frame returns the wall's boundary rectangle in local 2D coordinates.
func (w *Wall) Frame() polygon.Rect {
	return w.frame
}

// Transform returns the wall's placement.
func (w *Wall) Transform() Transform {
	return w.opts.transform
}

// State returns the wall's update stage.
func (w *Wall) State() State {
	s := State(w.state.Load())
	if s == StateScheduled {
		if r := w.inflight.Load(); r != nil && r.State() != pipeline.StateScheduled {
			return StateRunning
		}
	}
	return s
}

// AddImpact converts a weapon hit into a clip shape and queues it. The ray
// is intersected with the wall's mid plane; the impact is a regular polygon
// of radius intensity with floor(intensity * segmentsPerUnit) corners and a
// random start phase. It reports false, and queues nothing, if the ray
// misses the plane, the polygon would have fewer than 3 corners, or the
// wall is closed.
func (w *Wall) AddImpact(ray Ray, intensity float32) bool {
	hit, ok := w.opts.transform.PlaneHit(ray)
	if !ok {
		Logger().Warn("wallbreak: impact discarded, ray misses wall plane")
		return false
	}
	n := ImpactSegments(intensity, w.opts.segmentsPerUnit)
	if n < 3 {
		Logger().Warn("wallbreak: impact discarded, too few segments",
			"intensity", intensity, "segments", n)
		return false
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return false
	}
	center := polygon.Pt(float64(hit.X()), float64(hit.Y()))
	w.pending = append(w.pending, ImpactShape(center, float64(intensity), n, startPhase(w.opts.rand)))
	return true
}

// AddClip queues an arbitrary clip polygon in wall-local coordinates. The
// contour is copied. It reports false for contours with fewer than 3
// points and on a closed wall.
func (w *Wall) AddClip(contour []polygon.Point) bool {
	if len(contour) < 3 {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return false
	}
	w.pending = append(w.pending, slices.Clone(contour))
	return true
}

// Pending returns the number of queued clips, including those of the
// update in flight.
func (w *Wall) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.pending)
}

// Tick advances the wall's update. It publishes the result of a finished
// update, then schedules a new one if clips are queued and none is in
// flight. Tick never waits for an update.
func (w *Wall) Tick() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.tick()
}

func (w *Wall) tick() {
	if w.closed {
		return
	}
	if w.run != nil {
		if !w.run.Poll() {
			return
		}
		w.complete()
	}
	if len(w.pending) > 0 {
		w.schedule()
	}
}

// schedule submits an update for every queued clip. w.mu must be held.
func (w *Wall) schedule() {
	cfg := pipeline.Config{
		Pool:      w.pool.workers,
		Arena:     w.pool.arena,
		Frame:     w.frame,
		Extrusion: mgl32.Vec3{0, 0, w.size.Z()},
		Logger:    Logger(),
	}
	// Schedule copies the clips; later appends to pending do not reach it.
	w.run = pipeline.Schedule(cfg, w.subjects, w.pending)
	w.runClips = len(w.pending)
	w.inflight.Store(w.run)
	w.state.Store(int32(StateScheduled))
}

// complete publishes the finished update and releases it. w.mu must be held.
func (w *Wall) complete() {
	w.state.Store(int32(StateCompleting))
	r := w.run

	if err := r.Err(); err != nil {
		Logger().Error("wallbreak: update discarded", "err", err, "clips", w.runClips)
	} else {
		m := mesh.New(r.Vertices(), r.Indices())
		c := mesh.NewCollider(m)
		w.mesh, w.collider = m, c

		if res := r.TakeResult(); res != nil {
			w.pool.arena.PutSet(w.subjects)
			w.subjects = res
		}
		w.stats = r.Stats()
		w.completed++

		w.opts.render.UpdateMesh(m)
		w.opts.collision.UpdateCollider(c)
	}

	// Clips queued while the update ran stay for the next one.
	w.pending = slices.Delete(w.pending, 0, w.runClips)
	w.runClips = 0
	r.Release()
	w.run = nil
	w.inflight.Store(nil)
	w.state.Store(int32(StateIdle))
}

// Flush ticks the wall until every queued clip has been applied and
// published, blocking between ticks. It returns ctx's error if ctx ends
// first and ErrClosed on a closed wall.
func (w *Wall) Flush(ctx context.Context) error {
	for {
		w.mu.Lock()
		if w.closed {
			w.mu.Unlock()
			return ErrClosed
		}
		w.tick()
		r := w.run
		w.mu.Unlock()

		if r == nil {
			return nil
		}
		if err := r.Wait(ctx); err != nil {
			return err
		}
	}
}

// Subjects returns a copy of the wall's current 2D shape.
func (w *Wall) Subjects() *polygon.Set {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.subjects == nil {
		return polygon.NewSet(0)
	}
	return w.subjects.Clone()
}

// Mesh returns the last published mesh, or nil before the first update
// completes. The mesh must not be modified.
func (w *Wall) Mesh() *mesh.Mesh {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.mesh
}

// Collider returns the last published collision shape, or nil.
func (w *Wall) Collider() *mesh.Collider {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.collider
}

// Stats returns the statistics of the last completed update.
func (w *Wall) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

// Completed returns the number of updates published so far.
func (w *Wall) Completed() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.completed
}

// Raycast intersects a world ray with the published collision shape and
// returns the hit in world space. Rays through holes miss.
func (w *Wall) Raycast(ray Ray, maxDistance float32) (mesh.Hit, bool) {
	c := w.Collider()
	if c == nil {
		return mesh.Hit{}, false
	}
	t := w.opts.transform
	hit, ok := c.Raycast(t.RayToLocal(ray), maxDistance)
	if !ok {
		return mesh.Hit{}, false
	}
	hit.Point = t.ToWorld(hit.Point)
	hit.Normal = t.DirectionToWorld(hit.Normal)
	return hit, true
}

// Close waits for an update in flight, releases every buffer the wall
// holds and, if the wall owns its Pool, stops the workers. Queued clips
// are discarded. Close is safe to call multiple times.
func (w *Wall) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true

	if w.run != nil {
		w.run.Release()
		w.run = nil
		w.inflight.Store(nil)
	}
	w.pool.arena.PutSet(w.subjects)
	w.subjects = nil
	w.pending = nil
	w.state.Store(int32(StateIdle))

	if w.ownsPool {
		w.pool.Close()
	}
	Logger().Info("wallbreak: wall closed", "updates", w.completed)
	return nil
}
