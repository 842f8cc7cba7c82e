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
	"fmt"
	"sync/atomic"
	"time"
)

// PairEvent is reported after a critical pair (or, for two-sided bases, a
// right multiple of a basis element) has been reduced.
type PairEvent struct {
	Pair Pair
	// Worker which processed the pair (always zero for the sequential engine).
	Worker uint
	// Zero indicates the pair reduced to zero.
	Zero bool
	// Duration of the S-polynomial construction and reduction.
	Duration time.Duration
}

// ElementEvent is reported after an element is appended to the basis.
type ElementEvent struct {
	// Index of the new element in the (append-only) basis.
	Index uint
	// Element which was added.
	Element fmt.Stringer
}

// Hooks provide callbacks for instrumentation.  Either may be nil.  For the
// parallel engine, callbacks are invoked concurrently from worker goroutines
// and must not call Terminate on the engine running them.
type Hooks struct {
	PairProcessed func(PairEvent)
	ElementAdded  func(ElementEvent)
}

func (h *Hooks) pairProcessed(event PairEvent) {
	if h.PairProcessed != nil {
		h.PairProcessed(event)
	}
}

func (h *Hooks) elementAdded(event ElementEvent) {
	if h.ElementAdded != nil {
		h.ElementAdded(event)
	}
}

// Stats accumulates counters over one or more computations.  Counters are
// updated atomically, hence a single Stats can be shared between engines.
type Stats struct {
	// Pairs (and right multiples) reduced.
	PairsProcessed atomic.Uint64
	// Pairs skipped because their leading monomials were coprime.
	CoprimeSkipped atomic.Uint64
	// Pairs skipped by the chain criterion.
	ChainSkipped atomic.Uint64
	// Reductions which gave zero.
	ZeroReductions atomic.Uint64
	// Elements appended to the basis (including initial generators).
	ElementsAdded atomic.Uint64
}

func (s *Stats) String() string {
	return fmt.Sprintf("processed %d pairs (%d zero), skipped %d coprime and %d chain, added %d elements",
		s.PairsProcessed.Load(), s.ZeroReductions.Load(), s.CoprimeSkipped.Load(), s.ChainSkipped.Load(),
		s.ElementsAdded.Load())
}
