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
package coeff

import (
	"errors"
)

// ErrDomain signals an operation which has no exact result in the coefficient
// domain, such as dividing 3 by 2 over the integers or dividing by zero.
var ErrDomain = errors.New("coefficient domain error")

// Domain provides exact arithmetic over coefficients of some type C.  Values of
// type C are never mutated by a domain, hence they can be freely shared between
// polynomials (and goroutines).  As with SmallField, elements are plain values
// and the arithmetic lives on the domain itself.
type Domain[C any] interface {
	// Name returns a short name identifying this domain (e.g. "ZZ").
	Name() string
	// Zero returns the additive identity.
	Zero() C
	// One returns the multiplicative identity.
	One() C
	// FromInt64 embeds a machine integer into this domain.
	FromInt64(int64) C
	// Parse a literal into an element of this domain.
	Parse(string) (C, error)
	// Add returns x + y
	Add(x, y C) C
	// Sub returns x - y
	Sub(x, y C) C
	// Neg returns -x
	Neg(x C) C
	// Mul returns x * y
	Mul(x, y C) C
	// Div returns the exact quotient x / y, or an ErrDomain error when no such
	// quotient exists in this domain (including when y is zero).
	Div(x, y C) (C, error)
	// Gcd returns a greatest common divisor of x and y.  For fields this is
	// one unless both arguments are zero.
	Gcd(x, y C) C
	// Unit returns the unit u such that x/u is in normal form.  For fields this
	// is x itself (so that x/u is one), for the integers it is the sign of x.
	// The unit of zero is one.
	Unit(x C) C
	// IsZero checks whether x is zero.
	IsZero(x C) bool
	// IsOne checks whether x is one.
	IsOne(x C) bool
	// Equal checks whether x and y are the same element.
	Equal(x, y C) bool
	// IsField indicates whether every nonzero element is invertible.
	IsField() bool
	// String returns a textual representation of x, which is accepted by
	// Parse.
	String(x C) string
}

// Content returns the gcd of a sequence of coefficients.  The content of an
// empty sequence is zero.
func Content[C any](domain Domain[C], items ...C) C {
	var content = domain.Zero()
	//
	for _, item := range items {
		content = domain.Gcd(content, item)
		// Short circuit
		if domain.IsOne(content) {
			break
		}
	}
	//
	return content
}

// Pow computes x^n by repeated squaring.
func Pow[C any](domain Domain[C], x C, n uint64) C {
	var res = domain.One()
	//
	for n > 0 {
		if n&1 == 1 {
			res = domain.Mul(res, x)
		}
		//
		x = domain.Mul(x, x)
		n >>= 1
	}
	//
	return res
}

// MustDiv returns x / y and panics when the division is not exact.  This is
// used where exactness is an invariant of the caller (e.g. when dividing by a
// known content).
func MustDiv[C any](domain Domain[C], x, y C) C {
	res, err := domain.Div(x, y)
	if err != nil {
		panic(err)
	}
	//
	return res
}
