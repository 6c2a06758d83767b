// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wallbreak

import (
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/wallbreak/mesh"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.transform != Identity() {
		t.Errorf("transform = %v, want Identity", o.transform)
	}
	if o.segmentsPerUnit != DefaultSegmentsPerUnit {
		t.Errorf("segmentsPerUnit = %v, want %v", o.segmentsPerUnit, DefaultSegmentsPerUnit)
	}
	if o.render == nil || o.collision == nil {
		t.Error("default targets must not be nil")
	}
	if o.pool != nil || o.rand != nil {
		t.Error("default pool and rand should be nil")
	}
}

func TestOptions(t *testing.T) {
	pool := NewPool(1)
	defer pool.Close()
	r := rand.New(rand.NewPCG(3, 4))
	xf := Transform{Position: mgl32.Vec3{1, 2, 3}, Rotation: mgl32.QuatIdent()}
	target := mesh.TargetFunc(func(*mesh.Mesh) {})

	o := defaultOptions()
	for _, opt := range []Option{
		WithTransform(xf),
		WithPool(pool),
		WithWorkers(3),
		WithRenderTarget(target),
		WithCollisionTarget(nil),
		WithRand(r),
		WithSegmentsPerUnit(20),
	} {
		opt(&o)
	}

	if o.transform != xf || o.pool != pool || o.workers != 3 || o.rand != r {
		t.Errorf("options not applied: %+v", o)
	}
	if o.render == nil {
		t.Error("render target not set")
	}
	if _, ok := o.collision.(mesh.NullTarget); !ok {
		t.Error("WithCollisionTarget(nil) should keep the null target")
	}
	if o.segmentsPerUnit != 20 {
		t.Errorf("segmentsPerUnit = %v, want 20", o.segmentsPerUnit)
	}

	WithSegmentsPerUnit(-1)(&o)
	if o.segmentsPerUnit != 20 {
		t.Errorf("WithSegmentsPerUnit(-1) changed the value to %v", o.segmentsPerUnit)
	}
}

func TestWithSegmentsPerUnitChangesImpacts(t *testing.T) {
	w := newTestWall(t, WithSegmentsPerUnit(10))
	// 0.2 * 10 = 2 corners: discarded.
	if w.AddImpact(shootAt(0, 1), 0.2) {
		t.Error("AddImpact() = true, want false for 2 corners")
	}
	if !w.AddImpact(shootAt(0, 1), 0.5) {
		t.Error("AddImpact() = false, want true for 5 corners")
	}
}

func TestWithPoolIsNotClosed(t *testing.T) {
	pool := NewPool(1)
	defer pool.Close()
	w, err := NewWall(wallSize, WithPool(pool))
	if err != nil {
		t.Fatal(err)
	}
	_ = w.Close()
	if !pool.workers.IsRunning() {
		t.Error("closing a wall stopped a shared pool")
	}
	if pool.Workers() != 1 {
		t.Errorf("Workers() = %d, want 1", pool.Workers())
	}
}
