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
	"errors"
	"fmt"

	"github.com/consensys/go-groebner/pkg/poly"
)

// ErrCancelled signals that a computation was cancelled before completion,
// either because its context was cancelled, the engine was terminated or a
// worker failed.  The underlying cause is wrapped alongside.
var ErrCancelled = errors.New("computation cancelled")

// ErrTerminated is the cause attached to ErrCancelled when an engine was
// explicitly terminated.
var ErrTerminated = errors.New("engine terminated")

// ErrSide signals an unknown side.
var ErrSide = errors.New("unsupported side")

// Side determines which kind of ideal a basis is computed for.  In commutative
// rings all sides coincide.
type Side uint8

const (
	// Left ideals, closed under multiplication on the left.
	Left Side = iota
	// Right ideals, closed under multiplication on the right.
	Right
	// TwoSided ideals, closed under multiplication on both sides.  These are
	// represented by left Gröbner bases.
	TwoSided
)

// ParseSide parses the name of a side.
func ParseSide(name string) (Side, error) {
	switch name {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "twosided":
		return TwoSided, nil
	}
	//
	return 0, fmt.Errorf("%w: \"%s\"", ErrSide, name)
}

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	case TwoSided:
		return "twosided"
	}
	//
	return "unknown"
}

// Reduction returns the side on which polynomials are multiplied during
// reduction.
func (s Side) Reduction() poly.Side {
	if s == Right {
		return poly.Right
	}
	//
	return poly.Left
}

func (s Side) check() error {
	if s > TwoSided {
		return fmt.Errorf("%w: %d", ErrSide, s)
	}
	//
	return nil
}
