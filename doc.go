// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package wallbreak computes destructible wall meshes at runtime.
//
// # Overview
//
// A Wall is a rectangular slab. Every impact subtracts a regular polygon
// from the wall's 2D silhouette; the resulting shape, possibly split into
// several pieces and perforated by holes, is triangulated and extruded
// back into a slab mesh for rendering and collision.
//
// # Quick Start
//
//	w, err := wallbreak.NewWall(mgl32.Vec3{4, 3, 0.2},
//	    wallbreak.WithRenderTarget(renderer),
//	)
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//
//	// Each frame:
//	w.AddImpact(ray, 0.2) // from the weapon
//	w.Tick()              // publishes a new mesh when a run completes
//
// # Update Pipeline
//
// A wall runs at most one update at a time. Tick moves it through
//
//	Idle -> Scheduled -> Running -> Completing -> Idle
//
// Impacts arriving while an update is running are queued for the next one.
// The update runs off the calling goroutine: clipping, buffer sizing,
// triangulation (in parallel across pieces) and extrusion. Tick only polls
// for completion; it never blocks on the update.
//
// Pieces that lose contact with the wall's outer frame are dropped, so
// impacts perforate a wall but never break chunks off it.
//
// # Coordinate System
//
// Wall-local space has X to the right, Y up and Z through the wall. The
// wall stands on the local X axis, centered on the origin: a wall of size
// (sx, sy, sz) spans [-sx/2, sx/2] x [0, sy] x [-sz/2, sz/2]. The
// Transform maps local space to world space.
//
// # Concurrency
//
// Wall methods are safe for concurrent use. Walls sharing a Pool run their
// updates in parallel with no other shared state.
package wallbreak
