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
	"time"

	"github.com/consensys/go-groebner/pkg/poly"
)

// job is a unit of work: either a critical pair, or (for two-sided ideals) the
// right multiple of a basis element by a variable.
type job struct {
	pair Pair
	// When set, this is a right multiple rather than a pair.
	extension bool
	index     uint
	variable  uint
}

// state holds a basis under construction, along with its pending work.  The
// sequential engine owns its state outright, whilst the parallel engine guards
// it with a lock.
type state[C any] struct {
	ring    *poly.Ring[C]
	side    Side
	redSide poly.Side
	// Right multiples by variables are needed for two-sided ideals of
	// noncommutative rings.
	closeRight bool
	basis      []poly.Polynomial[C]
	pairs      *PairList
	extensions []job
	// Set when a unit was added to the basis (over a field).
	unit  bool
	stats *Stats
}

func newState[C any](ring *poly.Ring[C], mode Mode) *state[C] {
	var (
		side  = mode.side
		stats = mode.statistics()
		pairs = NewPairList(ring, stats)
	)
	// All sides coincide for commutative rings
	if ring.IsCommutative() {
		side = Left
	}
	//
	pairs.criteria = !mode.noCriteria
	//
	return &state[C]{
		ring:       ring,
		side:       side,
		redSide:    side.Reduction(),
		closeRight: side == TwoSided,
		pairs:      pairs,
		stats:      stats,
	}
}

// prepare drops zero generators, and reduces each generator against those
// accepted before it.
func (s *state[C]) prepare(ctx context.Context, generators []poly.Polynomial[C]) ([]poly.Polynomial[C], error) {
	var accepted []poly.Polynomial[C]
	//
	for _, g := range generators {
		if g.IsZero() {
			continue
		}
		//
		h, err := normalForm(ctx, g, accepted, s.redSide)
		if err != nil {
			return nil, err
		} else if !h.IsZero() {
			accepted = append(accepted, h.Normalize())
		}
	}
	//
	return accepted, nil
}

// add appends a nonzero element to the basis, and registers the work it
// creates.
func (s *state[C]) add(h poly.Polynomial[C]) ElementEvent {
	var index = uint(len(s.basis))
	//
	h = h.Normalize()
	s.basis = append(s.basis, h)
	s.pairs.Put(h.LeadingMonomial())
	s.stats.ElementsAdded.Add(1)
	//
	if s.closeRight {
		for v := range s.ring.NumVars() {
			s.extensions = append(s.extensions, job{extension: true, index: index, variable: v})
		}
	}
	//
	if h.IsConstant() && s.ring.Domain().IsField() {
		s.unit = true
	}
	//
	return ElementEvent{index, h}
}

// next selects the next job, preferring right multiples over pairs.
func (s *state[C]) next() (job, bool) {
	if len(s.extensions) > 0 {
		j := s.extensions[0]
		s.extensions = s.extensions[1:]
		//
		return j, true
	}
	//
	pair, ok := s.pairs.Next()
	//
	return job{pair: pair}, ok
}

func (s *state[C]) hasNext() bool {
	return len(s.extensions) > 0 || s.pairs.HasNext()
}

// compute constructs the polynomial for a job, and reduces it modulo a basis.
// The basis may be a prefix of the current basis, provided it includes the
// elements the job refers to.
func (s *state[C]) compute(ctx context.Context, j job, basis []poly.Polynomial[C]) (poly.Polynomial[C], error) {
	var p poly.Polynomial[C]
	//
	if j.extension {
		x := poly.UnitMonomial(s.ring.NumVars(), j.variable)
		p = basis[j.index].MulTerm(s.ring.Domain().One(), x, poly.Right)
	} else {
		p = SPolynomial(basis[j.pair.I], basis[j.pair.J], s.redSide)
	}
	//
	return normalForm(ctx, p, basis, s.redSide)
}

// finish marks a job as complete.  For pairs, this must only be called once
// any resulting element has been added.
func (s *state[C]) finish(j job) {
	if !j.extension {
		s.pairs.Done(j.pair)
	}
}

func (s *state[C]) event(j job, zero bool, worker uint, duration time.Duration) PairEvent {
	var pair = j.pair
	//
	if j.extension {
		pair = Pair{I: j.index, J: j.index}
	}
	//
	s.stats.PairsProcessed.Add(1)
	//
	if zero {
		s.stats.ZeroReductions.Add(1)
	}
	//
	return PairEvent{pair, worker, zero, duration}
}

// result returns the reduced basis.
func (s *state[C]) result() ([]poly.Polynomial[C], error) {
	if s.unit {
		return []poly.Polynomial[C]{s.ring.One()}, nil
	}
	//
	return reduce(context.Background(), s.basis, s.redSide)
}

func cancelled(ctx context.Context) error {
	return fmt.Errorf("%w: %w", ErrCancelled, context.Cause(ctx))
}
