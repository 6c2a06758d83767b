// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package parallel provides the fork-join worker pool used for per-polygon
// triangulation. Walls share one pool; each wall's pipeline fans its
// polygons out with For and joins before the next stage starts.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a fixed set of goroutines executing fork-join batches.
//
// Every worker owns a queue and steals from the others when its own queue
// is empty, so a batch with a few expensive polygons (many holes) does not
// leave the rest of the workers idle.
//
// Thread safety: WorkerPool is safe for concurrent use. For must not be
// called from inside a task running on the same pool.
type WorkerPool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool

	// submit is held for reading while For enqueues and for writing while
	// Close stops the pool, so no task is queued after the workers drained.
	submit sync.RWMutex
}

// taskPanic carries the first panic raised by a task of a For batch.
type taskPanic struct {
	value any
}

// NewWorkerPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)
	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()
	own := p.queues[id]

	for {
		select {
		case <-p.done:
			p.drain(own)
			return
		case task := <-own:
			task()
			continue
		default:
		}

		if task := p.steal(id); task != nil {
			task()
			continue
		}

		select {
		case <-p.done:
			p.drain(own)
			return
		case task := <-own:
			task()
		}
	}
}

// drain runs whatever is still queued so no batch waits forever on Close.
func (p *WorkerPool) drain(queue chan func()) {
	for {
		select {
		case task := <-queue:
			task()
		default:
			return
		}
	}
}

func (p *WorkerPool) steal(id int) func() {
	for i := 1; i < p.workers; i++ {
		select {
		case task := <-p.queues[(id+i)%p.workers]:
			return task
		default:
		}
	}
	return nil
}

// For calls fn(i) for every i in [0, n) and returns when all calls have
// finished. Calls run in no particular order. A nil or closed pool, or a
// single-item batch, runs inline on the calling goroutine.
//
// If a call panics, the remaining calls still run and For re-panics with
// the first panic value on the calling goroutine once the batch is done.
func (p *WorkerPool) For(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if p == nil || n == 1 {
		inline(n, fn)
		return
	}

	p.submit.RLock()
	if !p.running.Load() {
		p.submit.RUnlock()
		inline(n, fn)
		return
	}

	var (
		join     sync.WaitGroup
		panicked atomic.Pointer[taskPanic]
	)
	join.Add(n)
	for i := range n {
		p.queues[i%p.workers] <- func() {
			defer join.Done()
			defer func() {
				if v := recover(); v != nil {
					panicked.CompareAndSwap(nil, &taskPanic{value: v})
				}
			}()
			fn(i)
		}
	}
	p.submit.RUnlock()
	join.Wait()

	if tp := panicked.Load(); tp != nil {
		panic(tp.value)
	}
}

func inline(n int, fn func(i int)) {
	for i := range n {
		fn(i)
	}
}

// Close stops accepting batches, finishes queued work and stops the workers.
// Batches submitted concurrently either finish on the workers or run
// inline. Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	p.submit.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.submit.Unlock()
		return
	}
	close(p.done)
	p.submit.Unlock()
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
