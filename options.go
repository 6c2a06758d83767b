// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wallbreak

import (
	"math/rand/v2"

	"github.com/gogpu/wallbreak/mesh"
)

// DefaultSegmentsPerUnit is the impact polygon resolution: an impact of
// intensity i is a polygon with floor(i * 50) corners.
const DefaultSegmentsPerUnit = 50

// Option configures a Wall during creation.
//
// Example:
//
//	pool := wallbreak.NewPool(0)
//	defer pool.Close()
//
//	w, err := wallbreak.NewWall(size,
//	    wallbreak.WithPool(pool),
//	    wallbreak.WithTransform(xf),
//	    wallbreak.WithRenderTarget(renderer),
//	)
type Option func(*options)

// options holds optional configuration for Wall creation.
type options struct {
	transform       Transform
	pool            *Pool
	workers         int
	render          mesh.Target
	collision       mesh.CollisionTarget
	rand            *rand.Rand
	segmentsPerUnit float32
}

// defaultOptions returns the default wall options.
func defaultOptions() options {
	return options{
		transform:       Identity(),
		render:          mesh.NullTarget{},
		collision:       mesh.NullTarget{},
		segmentsPerUnit: DefaultSegmentsPerUnit,
	}
}

// WithTransform places the wall in the world. The default is Identity.
func WithTransform(t Transform) Option {
	return func(o *options) {
		o.transform = t
	}
}

// WithPool runs the wall's updates on a shared Pool. The wall does not
// close it.
func WithPool(p *Pool) Option {
	return func(o *options) {
		o.pool = p
	}
}

// WithWorkers sets the worker count of the wall's private Pool. It is
// ignored when WithPool is given. The default is GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithRenderTarget sets the receiver of every new mesh. Targets are
// called from Tick with the wall locked and must not call back into it.
func WithRenderTarget(t mesh.Target) Option {
	return func(o *options) {
		if t != nil {
			o.render = t
		}
	}
}

// WithCollisionTarget sets the receiver of every new collision shape.
func WithCollisionTarget(t mesh.CollisionTarget) Option {
	return func(o *options) {
		if t != nil {
			o.collision = t
		}
	}
}

// WithRand sets the source of impact start phases, for reproducible
// destruction. The default uses the math/rand/v2 global source. Walls may
// share one generator; draws from it are serialized.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rand = r
	}
}

// WithSegmentsPerUnit sets how many polygon corners an impact gets per unit
// of intensity. Values <= 0 keep DefaultSegmentsPerUnit.
func WithSegmentsPerUnit(n float32) Option {
	return func(o *options) {
		if n > 0 {
			o.segmentsPerUnit = n
		}
	}
}
