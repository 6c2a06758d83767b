// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wallbreak

import (
	"math"
	"math/rand/v2"
	"sync"

	"github.com/gogpu/wallbreak/polygon"
)

// randMu serializes draws from generators passed to WithRand, which several
// walls may share.
var randMu sync.Mutex

// ImpactShape returns the clip polygon of an impact: a regular n-gon of the
// given radius around center, its first corner at angle phase,
// counter-clockwise.
func ImpactShape(center polygon.Point, radius float64, n int, phase float64) []polygon.Point {
	if n < 3 {
		return nil
	}
	pts := make([]polygon.Point, n)
	step := 2 * math.Pi / float64(n)
	for i := range pts {
		pts[i] = center.OnCircle(phase+step*float64(i), radius)
	}
	return pts
}

// ImpactSegments returns the corner count of an impact polygon:
// floor(intensity * segmentsPerUnit).
func ImpactSegments(intensity, segmentsPerUnit float32) int {
	return int(math.Floor(float64(intensity) * float64(segmentsPerUnit)))
}

// startPhase returns a uniform impact start phase in [0, pi), drawn from r
// or, if r is nil, from the global source.
func startPhase(r *rand.Rand) float64 {
	if r == nil {
		return rand.Float64() * math.Pi
	}
	randMu.Lock()
	defer randMu.Unlock()
	return r.Float64() * math.Pi
}
