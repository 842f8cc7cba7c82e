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

	"github.com/consensys/go-groebner/pkg/poly"
)

// GB computes the reduced Gröbner basis of the ideal generated by the given
// polynomials.  The mode determines the engine (sequential or parallel) and
// the side (left, right or two-sided) of the ideal.  Generators must all
// belong to compatible rings, otherwise poly.ErrRingMismatch is returned before
// any work is done.  The result is normalised (monic over a field, primitive
// with positive leading coefficient otherwise) and sorted by increasing leading
// monomial, hence it does not depend on the engine, the number of workers or
// the order of generators.  If the context is cancelled, ErrCancelled is
// returned and no partial basis is produced.
func GB[C any](ctx context.Context, generators []poly.Polynomial[C], mode Mode) ([]poly.Polynomial[C], error) {
	if len(generators) == 0 {
		return nil, nil
	} else if err := validate(generators, mode); err != nil {
		return nil, err
	} else if mode.workers == 0 {
		return sequentialGB(ctx, generators, mode)
	}
	//
	engine := NewParallel[C](mode.workers)
	defer engine.Terminate()
	//
	return engine.GB(ctx, generators, mode)
}

func validate[C any](generators []poly.Polynomial[C], mode Mode) error {
	if err := mode.side.check(); err != nil {
		return err
	}
	//
	return generators[0].Ring().CheckRing(generators...)
}
