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
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfStats records a snapshot of elapsed time and memory usage, such that the
// cost of some computation can be reported afterwards.
type PerfStats struct {
	// Time when snapshot was taken
	start time.Time
	// Total bytes allocated at snapshot
	alloc uint64
	// Number of completed GC cycles at snapshot
	gcs uint32
}

// NewPerfStats takes a snapshot of the current time and memory usage.
func NewPerfStats() *PerfStats {
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	return &PerfStats{time.Now(), m.TotalAlloc, m.NumGC}
}

// Elapsed returns the time since the snapshot was taken.
func (p *PerfStats) Elapsed() time.Duration {
	return time.Since(p.start)
}

// Log reports (at debug level) the time taken, memory allocated and GC cycles
// since the snapshot was taken.
func (p *PerfStats) Log(prefix string) {
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	alloc := float64(m.TotalAlloc-p.alloc) / (1024 * 1024)
	gcs := m.NumGC - p.gcs
	//
	log.Debugf("%s took %0.3fs using %0.1f Mb (%d GC events) [%d Mb live]", prefix, p.Elapsed().Seconds(), alloc, gcs,
		m.Alloc/1024/1024)
}
