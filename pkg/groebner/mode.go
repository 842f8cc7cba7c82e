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

import "runtime"

// Mode determines how a Gröbner basis is computed: which engine is used, for
// which side, and with which instrumentation.  Modes are values, and the With
// methods return modified copies.
type Mode struct {
	workers uint
	side    Side
	hooks   Hooks
	stats   *Stats
	// disables Buchberger's criteria (used for validating them)
	noCriteria bool
}

// Sequential computes a left Gröbner basis on the calling goroutine.
func Sequential() Mode {
	return Mode{}
}

// Parallel computes a left Gröbner basis using a pool of workers.  A worker
// count of zero uses one worker per available processor.
func Parallel(workers uint) Mode {
	if workers == 0 {
		workers = uint(runtime.GOMAXPROCS(0))
	}
	//
	return Mode{workers: workers}
}

// LeftGB computes a left Gröbner basis sequentially.
func LeftGB() Mode {
	return Sequential().WithSide(Left)
}

// RightGB computes a right Gröbner basis sequentially.
func RightGB() Mode {
	return Sequential().WithSide(Right)
}

// TwoSidedGB computes a Gröbner basis of a two-sided ideal sequentially.
func TwoSidedGB() Mode {
	return Sequential().WithSide(TwoSided)
}

// WithSide returns this mode for a given side.
func (m Mode) WithSide(side Side) Mode {
	m.side = side
	return m
}

// WithHooks returns this mode with the given instrumentation hooks.
func (m Mode) WithHooks(hooks Hooks) Mode {
	m.hooks = hooks
	return m
}

// WithStats returns this mode accumulating counters into the given stats.
func (m Mode) WithStats(stats *Stats) Mode {
	m.stats = stats
	return m
}

// Workers returns the number of workers, where zero means sequential.
func (m Mode) Workers() uint {
	return m.workers
}

// Side returns the side of this mode.
func (m Mode) Side() Side {
	return m.side
}

func (m Mode) withoutCriteria() Mode {
	m.noCriteria = true
	return m
}

// statistics returns the stats to update, which may be a throwaway.
func (m Mode) statistics() *Stats {
	if m.stats == nil {
		return &Stats{}
	}
	//
	return m.stats
}
