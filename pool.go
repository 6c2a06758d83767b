// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wallbreak

import (
	"github.com/gogpu/wallbreak/internal/arena"
	"github.com/gogpu/wallbreak/internal/parallel"
)

// defaultArenaBuckets is how many buffers per size class a Pool retains.
const defaultArenaBuckets = 8

// Pool holds the workers and buffer arena walls run their updates on.
// Share one Pool between walls with WithPool; a wall created without one
// owns a private Pool and closes it in Close.
type Pool struct {
	workers *parallel.WorkerPool
	arena   *arena.Arena
}

// NewPool starts a Pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	return &Pool{
		workers: parallel.NewWorkerPool(workers),
		arena:   arena.New(defaultArenaBuckets),
	}
}

// Workers returns the number of workers.
func (p *Pool) Workers() int {
	return p.workers.Workers()
}

// Outstanding returns the number of update buffers currently borrowed by
// walls, including each open wall's current shape.
func (p *Pool) Outstanding() int {
	return p.arena.Outstanding()
}

// Close stops the workers. Walls using the Pool must be closed first.
func (p *Pool) Close() {
	p.workers.Close()
}
