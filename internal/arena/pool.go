// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package arena provides the pooled buffers a pipeline run borrows.
//
// Every buffer handed out by Get is counted as outstanding until it comes
// back through Put. A run returns all of its buffers at a single release
// point, so Outstanding dropping back to zero is how tests prove no exit
// path leaks.
package arena

import (
	"math/bits"
	"sync"
	"sync/atomic"
)

// Pool is a thread-safe pool of slices grouped by power-of-two capacity.
//
// Thread safety: All methods are safe for concurrent use.
type Pool[T any] struct {
	mu          sync.Mutex
	buckets     map[int][][]T // capacity class -> free slices
	maxSize     int           // max slices per bucket
	outstanding atomic.Int64
}

// NewPool creates a pool retaining at most maxPerBucket slices per size
// class. A maxPerBucket of 0 means unlimited.
func NewPool[T any](maxPerBucket int) *Pool[T] {
	return &Pool[T]{
		buckets: make(map[int][][]T),
		maxSize: maxPerBucket,
	}
}

// class returns the smallest power of two >= n.
func class(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// Get returns a zeroed slice of length n. Its capacity is n rounded up to a
// power of two.
func (p *Pool[T]) Get(n int) []T {
	p.outstanding.Add(1)
	c := class(n)

	p.mu.Lock()
	bucket := p.buckets[c]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[c] = bucket[:len(bucket)-1]
		p.mu.Unlock()

		buf = buf[:n]
		clear(buf)
		return buf
	}
	p.mu.Unlock()

	return make([]T, n, c)
}

// Put returns a slice obtained from Get. Slices whose capacity is not a
// size class, or whose bucket is full, are left to the garbage collector.
// A nil slice is ignored.
func (p *Pool[T]) Put(buf []T) {
	if buf == nil {
		return
	}
	p.outstanding.Add(-1)

	c := cap(buf)
	if c != class(c) {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[c]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[c] = append(bucket, buf[:0])
}

// Outstanding returns the number of slices handed out and not yet returned.
func (p *Pool[T]) Outstanding() int {
	return int(p.outstanding.Load())
}

// Retained returns the number of slices held for reuse.
func (p *Pool[T]) Retained() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, b := range p.buckets {
		n += len(b)
	}
	return n
}
