// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package groebner

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/consensys/go-groebner/pkg/poly"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// Engine computes Gröbner bases using a fixed-size pool of workers, which share
// a queue of critical pairs and an append-only basis.  An engine runs one
// computation at a time, and is released by Terminate.
type Engine[C any] struct {
	workers uint
	// Serialises computations
	running sync.Mutex
	// Protects the fields below
	mux        sync.Mutex
	terminated bool
	current    *run[C]
	done       chan struct{}
	// Workers currently alive
	alive atomic.Int64
	wg    sync.WaitGroup
}

// NewParallel constructs a new engine with a given number of workers.  A
// worker count of zero uses one worker per available processor.
func NewParallel[C any](workers uint) *Engine[C] {
	return &Engine[C]{workers: Parallel(workers).workers, done: make(chan struct{})}
}

// Alive returns the number of worker goroutines currently running.
func (e *Engine[C]) Alive() int {
	return int(e.alive.Load())
}

// Done returns a channel which is closed once Terminate has been called.
func (e *Engine[C]) Done() <-chan struct{} {
	return e.done
}

// Terminate stops all workers, causing any running computation to fail with
// ErrCancelled, and waits for them to exit.  Subsequent computations fail
// immediately.  Terminate can be called any number of times, but not from a
// hook of a computation running on this engine.
func (e *Engine[C]) Terminate() {
	e.mux.Lock()
	//
	if !e.terminated {
		e.terminated = true
		//
		if e.current != nil {
			e.current.cancel(ErrTerminated)
		}
		//
		close(e.done)
	}
	//
	e.mux.Unlock()
	e.wg.Wait()
}

// GB computes the reduced Gröbner basis of the given generators.  The side,
// hooks and stats of the mode are used, but its worker count is ignored.  The
// result is identical to that of the sequential engine.
func (e *Engine[C]) GB(ctx context.Context, generators []poly.Polynomial[C], mode Mode) ([]poly.Polynomial[C],
	error) {
	//
	if len(generators) == 0 {
		return nil, nil
	} else if err := validate(generators, mode); err != nil {
		return nil, err
	}
	//
	e.running.Lock()
	defer e.running.Unlock()
	//
	r, err := e.start(ctx, generators, mode)
	if err != nil {
		return nil, err
	}
	//
	defer e.stop(r)
	// Wait for workers to finish
	r.wg.Wait()
	//
	r.mux.Lock()
	finished, errs := r.finished, r.errs
	r.mux.Unlock()
	//
	if errs != nil {
		return nil, fmt.Errorf("%w: %w", ErrCancelled, errs)
	} else if !finished || r.ctx.Err() != nil {
		// Cancellation wins, even if the last job completed meanwhile.
		return nil, cancelled(r.ctx)
	}
	//
	log.Debugf("parallel GB finished: %s", r.state.stats)
	//
	return r.state.result()
}

// run holds the state shared by workers during a single computation.
type run[C any] struct {
	ctx    context.Context
	cancel context.CancelCauseFunc
	mode   Mode
	// Protects state, active, finished and errs
	mux   sync.Mutex
	cond  *sync.Cond
	state *state[C]
	// Workers currently processing a job
	active uint
	// Set once no more jobs can arise
	finished bool
	// Worker failures
	errs error
	// Releases the context callback
	release func() bool
	wg      sync.WaitGroup
}

func (e *Engine[C]) start(ctx context.Context, generators []poly.Polynomial[C], mode Mode) (*run[C], error) {
	var rctx, cancel = context.WithCancelCause(ctx)
	//
	r := &run[C]{ctx: rctx, cancel: cancel, mode: mode, state: newState(generators[0].Ring(), mode)}
	r.cond = sync.NewCond(&r.mux)
	// Wake up blocked workers on cancellation.
	r.release = context.AfterFunc(rctx, func() {
		r.mux.Lock()
		r.cond.Broadcast()
		r.mux.Unlock()
	})
	//
	if !e.register(r) {
		return nil, fmt.Errorf("%w: %w", ErrCancelled, ErrTerminated)
	}
	// Initial basis is constructed before any workers start.
	initial, err := r.state.prepare(rctx, generators)
	if err != nil {
		err = cancelled(rctx)
		e.stop(r)
		//
		return nil, err
	}
	//
	for _, g := range initial {
		mode.hooks.elementAdded(r.state.add(g))
	}
	//
	r.finished = r.state.unit
	//
	log.Debugf("%s GB of %d generators in %s using %d workers", r.state.side, len(initial), r.state.ring, e.workers)
	// Workers must not be added once Terminate is waiting for them.
	e.mux.Lock()
	defer e.mux.Unlock()
	//
	if e.terminated {
		e.current = nil
		r.release()
		r.cancel(ErrTerminated)
		//
		return nil, fmt.Errorf("%w: %w", ErrCancelled, ErrTerminated)
	}
	//
	for i := range e.workers {
		r.wg.Add(1)
		e.wg.Add(1)
		e.alive.Add(1)
		//
		go e.worker(r, i)
	}
	//
	return r, nil
}

// register makes a run current, so that Terminate can cancel it.
func (e *Engine[C]) register(r *run[C]) bool {
	e.mux.Lock()
	defer e.mux.Unlock()
	//
	if e.terminated {
		r.release()
		r.cancel(ErrTerminated)
		//
		return false
	}
	//
	e.current = r
	//
	return true
}

func (e *Engine[C]) stop(r *run[C]) {
	e.mux.Lock()
	e.current = nil
	e.mux.Unlock()
	//
	r.release()
	r.cancel(nil)
}

func (e *Engine[C]) worker(r *run[C], id uint) {
	defer e.wg.Done()
	defer r.wg.Done()
	defer e.alive.Add(-1)
	// A failing worker aborts the whole computation.
	defer func() {
		if err := recover(); err != nil {
			r.fail(fmt.Errorf("worker %d failed: %v", id, err))
		}
	}()
	//
	for {
		j, basis, ok := r.take()
		if !ok {
			return
		}
		//
		start := time.Now()
		h, err := r.state.compute(r.ctx, j, basis)
		//
		r.complete(j, h, err, id, time.Since(start))
	}
}

// take waits for the next job, returning false once the computation is
// finished or cancelled.  The job comes with a snapshot of the basis, which
// includes all elements it refers to.
func (r *run[C]) take() (job, []poly.Polynomial[C], bool) {
	r.mux.Lock()
	defer r.mux.Unlock()
	//
	for {
		if r.finished || r.ctx.Err() != nil {
			return job{}, nil, false
		} else if j, ok := r.state.next(); ok {
			var n = len(r.state.basis)
			//
			r.active++
			//
			return j, r.state.basis[:n:n], true
		} else if r.active == 0 {
			// Nothing queued and nothing in flight which could queue more.
			r.finished = true
			r.cond.Broadcast()
			//
			return job{}, nil, false
		}
		//
		r.cond.Wait()
	}
}

// complete records the outcome of a job.  Appending the new element and
// creating its pairs happens atomically, before the job's own pair is marked
// done.
func (r *run[C]) complete(j job, h poly.Polynomial[C], err error, worker uint, duration time.Duration) {
	var (
		added *ElementEvent
		event PairEvent
	)
	//
	func() {
		r.mux.Lock()
		defer r.mux.Unlock()
		//
		r.active--
		//
		if err == nil {
			event = r.state.event(j, h.IsZero(), worker, duration)
			//
			if !h.IsZero() {
				e := r.state.add(h)
				added = &e
				// A unit generates everything, so stop early.
				r.finished = r.finished || r.state.unit
			}
		}
		//
		r.state.finish(j)
		r.cond.Broadcast()
	}()
	// Reduction only fails on cancellation, which workers notice in take().
	if err != nil {
		return
	}
	//
	if added != nil {
		log.Debugf("worker %d: pair %s added element %d", worker, event.Pair, added.Index)
		r.mode.hooks.elementAdded(*added)
	}
	//
	r.mode.hooks.pairProcessed(event)
}

func (r *run[C]) fail(err error) {
	r.mux.Lock()
	defer r.mux.Unlock()
	//
	r.errs = multierr.Append(r.errs, err)
	r.cancel(r.errs)
	r.cond.Broadcast()
}
