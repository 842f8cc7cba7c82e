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
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSide(t *testing.T) {
	for _, side := range []Side{Left, Right, TwoSided} {
		parsed, err := ParseSide(side.String())
		require.NoError(t, err)
		assert.Equal(t, side, parsed)
	}
	//
	_, err := ParseSide("middle")
	assert.ErrorIs(t, err, ErrSide)
	assert.Equal(t, "unknown", Side(9).String())
}

func TestMode(t *testing.T) {
	assert.Equal(t, uint(0), Sequential().Workers())
	assert.Equal(t, uint(runtime.GOMAXPROCS(0)), Parallel(0).Workers())
	assert.Equal(t, uint(5), Parallel(5).Workers())
	assert.Equal(t, Right, Parallel(5).WithSide(Right).Side())
	assert.Equal(t, TwoSided, TwoSidedGB().Side())
	// Modes are values
	m := Sequential()
	_ = m.WithSide(Right)
	assert.Equal(t, Left, m.Side())
}

func TestStats_String(t *testing.T) {
	var stats Stats
	//
	stats.PairsProcessed.Add(3)
	stats.ZeroReductions.Add(2)
	stats.ElementsAdded.Add(4)
	//
	assert.Equal(t, "processed 3 pairs (2 zero), skipped 0 coprime and 0 chain, added 4 elements", stats.String())
}
