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
package util

import (
	"fmt"
	"sync"
	"time"

	"github.com/montanaflynn/stats"
)

// Timings collects durations from concurrent sources, for instance the time
// taken to reduce each critical pair.
type Timings struct {
	mux     sync.Mutex
	samples []float64
}

// Add records a single duration.
func (t *Timings) Add(d time.Duration) {
	t.mux.Lock()
	defer t.mux.Unlock()
	//
	t.samples = append(t.samples, float64(d.Microseconds()))
}

// Len returns the number of durations recorded.
func (t *Timings) Len() uint {
	t.mux.Lock()
	defer t.mux.Unlock()
	//
	return uint(len(t.samples))
}

// TimingSummary summarises a set of durations, all given in microseconds.
type TimingSummary struct {
	Count  uint
	Total  float64
	Mean   float64
	Median float64
	StdDev float64
	Max    float64
}

// Summary computes summary statistics of the durations recorded so far.  An
// error is returned if nothing was recorded.
func (t *Timings) Summary() (TimingSummary, error) {
	var (
		summary TimingSummary
		err     error
	)
	//
	t.mux.Lock()
	samples := stats.Float64Data(t.samples)
	t.mux.Unlock()
	//
	summary.Count = uint(samples.Len())
	//
	if summary.Total, err = samples.Sum(); err != nil {
		return summary, err
	} else if summary.Mean, err = samples.Mean(); err != nil {
		return summary, err
	} else if summary.Median, err = samples.Median(); err != nil {
		return summary, err
	} else if summary.StdDev, err = samples.StandardDeviation(); err != nil {
		return summary, err
	} else if summary.Max, err = samples.Max(); err != nil {
		return summary, err
	}
	//
	return summary, nil
}

func (s TimingSummary) String() string {
	return fmt.Sprintf("%d samples, total %0.0fus, mean %0.1fus, median %0.1fus, stddev %0.1fus, max %0.0fus",
		s.Count, s.Total, s.Mean, s.Median, s.StdDev, s.Max)
}
