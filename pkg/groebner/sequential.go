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
	"time"

	"github.com/consensys/go-groebner/pkg/poly"
	log "github.com/sirupsen/logrus"
)

// sequentialGB runs Buchberger's algorithm on the calling goroutine.  Each
// iteration selects a job (pending), reduces it (reducing), and appends any
// nonzero result (updating), until no jobs remain (done).
func sequentialGB[C any](ctx context.Context, generators []poly.Polynomial[C], mode Mode) ([]poly.Polynomial[C],
	error) {
	//
	var st = newState(generators[0].Ring(), mode)
	//
	initial, err := st.prepare(ctx, generators)
	if err != nil {
		return nil, cancelled(ctx)
	}
	//
	for _, g := range initial {
		mode.hooks.elementAdded(st.add(g))
	}
	//
	log.Debugf("%s GB of %d generators in %s", st.side, len(initial), st.ring)
	//
	for !st.unit && st.hasNext() {
		if ctx.Err() != nil {
			return nil, cancelled(ctx)
		}
		//
		j, ok := st.next()
		if !ok {
			break
		}
		//
		start := time.Now()
		//
		h, err := st.compute(ctx, j, st.basis)
		if err != nil {
			return nil, cancelled(ctx)
		}
		//
		event := st.event(j, h.IsZero(), 0, time.Since(start))
		//
		if !h.IsZero() {
			added := st.add(h)
			log.Debugf("pair %s added element %d (basis size %d)", event.Pair, added.Index, len(st.basis))
			mode.hooks.elementAdded(added)
		}
		//
		st.finish(j)
		mode.hooks.pairProcessed(event)
	}
	//
	if ctx.Err() != nil {
		return nil, cancelled(ctx)
	}
	//
	log.Debugf("GB finished: %s", st.stats)
	//
	return st.result()
}
