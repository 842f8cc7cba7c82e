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
	"errors"
	"math/big"
	"sync/atomic"
	"testing"

	"github.com/consensys/go-groebner/pkg/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallel_AgreesWithSequential(t *testing.T) {
	for _, tc := range []struct {
		order poly.Order
		vars  []string
		gens  string
	}{
		{poly.Lex, []string{"x", "y"}, "x*y - 1, x^2 + y"},
		{poly.GradedRevLex, []string{"x", "y", "z"}, "x^2 + y*z - 2, y^2 + x*z - 3, z^2 + x*y - 5"},
		{poly.Lex, []string{"a", "b", "c"}, "a + b + c, a*b + b*c + c*a, a*b*c - 1"},
		{poly.GradedRevLex, []string{"x", "y", "z", "w"}, twistedCubic},
	} {
		t.Run(tc.gens, func(t *testing.T) {
			var (
				ring     = qqRing(tc.order, tc.vars...)
				expected = toStrings(t, computeGB(t, ring, tc.gens, Sequential()))
			)
			//
			for _, workers := range []uint{1, 2, 4, 0} {
				for range 3 {
					gb := computeGB(t, ring, tc.gens, Parallel(workers))
					assert.Equal(t, expected, toStrings(t, gb), "workers=%d", workers)
				}
			}
		})
	}
}

func TestParallel_Integers(t *testing.T) {
	const gens = "2x^2 + 3y*z - 2, 5y^2 + x*z - 3, z^2 + 7x*y - 5"
	//
	var (
		ring     = zzRing(poly.GradedRevLex, "x", "y", "z")
		expected = toStrings(t, computeGB(t, ring, gens, Sequential()))
	)
	//
	for _, workers := range []uint{2, 4} {
		assert.Equal(t, expected, toStrings(t, computeGB(t, ring, gens, Parallel(workers))), "workers=%d", workers)
	}
}

func TestParallel_EngineReuse(t *testing.T) {
	var (
		ring   = qqRing(poly.Lex, "x", "y")
		engine = NewParallel[*big.Rat](3)
	)
	//
	defer engine.Terminate()
	//
	for range 5 {
		gb, err := engine.GB(context.Background(), parseAll(t, ring, "x*y - 1, x^2 + y"), Sequential())
		require.NoError(t, err)
		assert.Equal(t, []string{"y^3 + 1", "x + y^2"}, toStrings(t, gb))
	}
	// Workers only live whilst a computation runs.
	assert.Equal(t, 0, engine.Alive())
}

func TestParallel_Hooks(t *testing.T) {
	var (
		ring         = qqRing(poly.GradedRevLex, "x", "y", "z", "w")
		stats        Stats
		pairs, added atomic.Uint64
		workers      [4]atomic.Bool
	)
	//
	hooks := Hooks{
		PairProcessed: func(e PairEvent) {
			pairs.Add(1)
			workers[e.Worker].Store(true)
		},
		ElementAdded: func(ElementEvent) { added.Add(1) },
	}
	//
	computeGB(t, ring, twistedCubic, Parallel(4).WithHooks(hooks).WithStats(&stats))
	assert.Equal(t, stats.PairsProcessed.Load(), pairs.Load())
	assert.Equal(t, stats.ElementsAdded.Load(), added.Load())
	assert.Positive(t, pairs.Load())
}

func TestParallel_Terminate(t *testing.T) {
	var (
		ring   = qqRing(poly.Lex, trinksVars...)
		engine = NewParallel[*big.Rat](4)
	)
	// Terminate from the outside, whilst workers are busy.
	hooks := Hooks{
		PairProcessed: func(PairEvent) {
			go engine.Terminate()
			<-engine.Done()
		},
	}
	//
	_, err := engine.GB(context.Background(), parseAll(t, ring, trinks), Sequential().WithHooks(hooks))
	assert.ErrorIs(t, err, ErrCancelled)
	assert.ErrorIs(t, err, ErrTerminated)
	// Idempotent
	engine.Terminate()
	engine.Terminate()
	assert.Equal(t, 0, engine.Alive())
	// Engine is unusable afterwards
	_, err = engine.GB(context.Background(), parseAll(t, ring, trinks), Sequential())
	assert.ErrorIs(t, err, ErrCancelled)
	assert.ErrorIs(t, err, ErrTerminated)
}

func TestParallel_TerminateIdle(t *testing.T) {
	engine := NewParallel[*big.Rat](2)
	//
	engine.Terminate()
	//
	select {
	case <-engine.Done():
	default:
		t.Fatal("done channel not closed")
	}
	//
	assert.Equal(t, 0, engine.Alive())
}

func TestParallel_WorkerFailure(t *testing.T) {
	var (
		ring = qqRing(poly.Lex, "x", "y")
		boom = errors.New("boom")
	)
	//
	hooks := Hooks{PairProcessed: func(PairEvent) { panic(boom) }}
	//
	_, err := GB(context.Background(), parseAll(t, ring, "x*y - 1, x^2 + y"), Parallel(2).WithHooks(hooks))
	assert.ErrorIs(t, err, ErrCancelled)
	assert.ErrorContains(t, err, "boom")
}

func TestParallel_Cancelled(t *testing.T) {
	var (
		ring        = qqRing(poly.Lex, trinksVars...)
		engine      = NewParallel[*big.Rat](4)
		ctx, cancel = context.WithCancel(context.Background())
		once        atomic.Bool
	)
	//
	defer engine.Terminate()
	// Cancel from a worker, part way through.
	hooks := Hooks{
		PairProcessed: func(PairEvent) {
			if once.CompareAndSwap(false, true) {
				cancel()
			}
		},
	}
	//
	_, err := engine.GB(ctx, parseAll(t, ring, trinks), Sequential().WithHooks(hooks))
	assert.ErrorIs(t, err, ErrCancelled)
	assert.ErrorIs(t, err, context.Canceled)
	// A cancelled computation leaves the engine usable.
	gb, err := engine.GB(context.Background(), parseAll(t, ring, "B - 1, S"), Sequential())
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "B - 1"}, toStrings(t, gb))
}
