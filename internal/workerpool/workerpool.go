// Copyright 2025 The go-itersort Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs index ranges on a fixed set of long-lived
// goroutines. The verify harness uses it to check batches of generated
// vectors side by side; each vector is still sorted by a single goroutine.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelFor(len(vectors), func(start, end int) {
//	    for _, v := range vectors[start:end] {
//	        check(v)
//	    }
//	})
package workerpool

import (
	"runtime"
	"sync"
)

// Pool is a set of worker goroutines started once and reused by every
// ParallelFor call until Close.
type Pool struct {
	numWorkers int
	workC      chan task

	// mu is held for reading while a ParallelFor call queues its chunks and
	// for writing while Close closes workC.
	mu     sync.RWMutex
	closed bool
}

type task struct {
	fn   func()
	done *sync.WaitGroup
}

// New starts a pool with numWorkers goroutines. If numWorkers <= 0, it uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan task, numWorkers),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.workC {
		t.fn()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers after queued work finishes. It is safe to call
// more than once and concurrently with ParallelFor: a call that has already
// queued its chunks runs them on the pool, later calls run on the caller's
// goroutine.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.workC)
}

// ParallelFor splits [0, n) into at most NumWorkers contiguous chunks and
// calls fn(start, end) for each chunk on the pool. It blocks until every
// chunk has returned.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 {
		fn(0, n)
		return
	}

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		p.workC <- task{
			fn:   func() { fn(start, end) },
			done: &wg,
		}
	}
	p.mu.RUnlock()
	wg.Wait()
}
