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
	"testing"

	"github.com/consensys/go-groebner/pkg/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairList_Ordering(t *testing.T) {
	var (
		stats Stats
		pairs = NewPairList(qqRing(poly.GradedLex, "x", "y"), &stats)
	)
	//
	assert.Equal(t, uint(0), pairs.Put(poly.NewMonomial(2, 0)))
	assert.Equal(t, uint(1), pairs.Put(poly.NewMonomial(1, 1)))
	assert.Equal(t, uint(2), pairs.Put(poly.NewMonomial(0, 2)))
	assert.Equal(t, uint(3), pairs.Len())
	// x^2 and y^2 are coprime
	assert.Equal(t, uint64(1), stats.CoprimeSkipped.Load())
	// Smallest lcm first: x*y^2 < x^2*y
	pair, ok := pairs.Next()
	require.True(t, ok)
	assert.Equal(t, Pair{1, 2, poly.NewMonomial(1, 2)}, pair)
	//
	pair, ok = pairs.Next()
	require.True(t, ok)
	assert.Equal(t, Pair{0, 1, poly.NewMonomial(2, 1)}, pair)
	//
	assert.False(t, pairs.HasNext())
	_, ok = pairs.Next()
	assert.False(t, ok)
}

func TestPairList_Chain(t *testing.T) {
	var (
		stats Stats
		pairs = NewPairList(qqRing(poly.Lex, "x", "y"), &stats)
	)
	//
	pairs.Put(poly.NewMonomial(1, 0))
	pairs.Put(poly.NewMonomial(0, 1))
	pairs.Put(poly.NewMonomial(1, 1))
	// Equal lcms are ordered by (J, I)
	first, ok := pairs.Next()
	require.True(t, ok)
	assert.Equal(t, Pair{0, 2, poly.NewMonomial(1, 1)}, first)
	pairs.Done(first)
	// Now x divides x*y, and neither (0,1) nor (0,2) is pending.
	_, ok = pairs.Next()
	assert.False(t, ok)
	assert.Equal(t, uint64(1), stats.ChainSkipped.Load())
}

func TestPairList_PendingBlocksChain(t *testing.T) {
	var pairs = NewPairList(qqRing(poly.Lex, "x", "y"), nil)
	//
	pairs.Put(poly.NewMonomial(1, 0))
	pairs.Put(poly.NewMonomial(0, 1))
	pairs.Put(poly.NewMonomial(1, 1))
	//
	first, ok := pairs.Next()
	require.True(t, ok)
	assert.Equal(t, uint(2), first.J)
	// (0,2) not yet done, so (1,2) must be selected.
	second, ok := pairs.Next()
	require.True(t, ok)
	assert.Equal(t, Pair{1, 2, poly.NewMonomial(1, 1)}, second)
}

func TestPairList_Noncommutative(t *testing.T) {
	var pairs = NewPairList(weylAlgebra(t), nil)
	// Coprime criterion does not hold in solvable rings
	pairs.Put(poly.NewMonomial(1, 0))
	pairs.Put(poly.NewMonomial(0, 1))
	//
	pair, ok := pairs.Next()
	require.True(t, ok)
	assert.Equal(t, Pair{0, 1, poly.NewMonomial(1, 1)}, pair)
}
