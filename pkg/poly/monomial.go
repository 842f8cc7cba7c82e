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
package poly

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrExponentOverflow signals a product whose exponents do not fit in 32 bits.
var ErrExponentOverflow = errors.New("exponent overflow")

// Monomial is a fixed-length vector of exponents, one per ring variable.  Index
// 0 corresponds to the first (and greatest) variable of the ring.  In a
// solvable ring a monomial denotes the ordered product x_0^a_0 ... x_n^a_n.
// Monomials are never modified after construction.
type Monomial []uint32

// NewMonomial constructs a monomial from a given set of exponents.
func NewMonomial(exponents ...uint32) Monomial {
	return Monomial(exponents)
}

// UnitMonomial returns the monomial of n variables which has all exponents
// zero, except for the ith which is one.
func UnitMonomial(n uint, i uint) Monomial {
	m := make(Monomial, n)
	m[i] = 1
	//
	return m
}

// Degree returns the total degree of this monomial.
func (m Monomial) Degree() uint64 {
	var degree uint64
	//
	for _, e := range m {
		degree += uint64(e)
	}
	//
	return degree
}

// IsOne checks whether all exponents are zero.
func (m Monomial) IsOne() bool {
	for _, e := range m {
		if e != 0 {
			return false
		}
	}
	//
	return true
}

// Equal checks whether two monomials have identical exponents.
func (m Monomial) Equal(other Monomial) bool {
	if len(m) != len(other) {
		return false
	}
	//
	for i, e := range m {
		if other[i] != e {
			return false
		}
	}
	//
	return true
}

// Mul returns the component-wise sum of exponents.  This panics with an error
// wrapping ErrExponentOverflow if some exponent exceeds math.MaxUint32.
func (m Monomial) Mul(other Monomial) Monomial {
	res := make(Monomial, len(m))
	//
	for i, e := range m {
		if e > math.MaxUint32-other[i] {
			panic(fmt.Errorf("%w: x_%d^%d * x_%d^%d", ErrExponentOverflow, i, e, i, other[i]))
		}
		//
		res[i] = e + other[i]
	}
	//
	return res
}

// CanMul checks whether Mul can be applied without overflowing any exponent.
func (m Monomial) CanMul(other Monomial) bool {
	for i, e := range m {
		if e > math.MaxUint32-other[i] {
			return false
		}
	}
	//
	return true
}

// Divides checks whether this monomial divides another and, if so, returns the
// quotient other / m.
func (m Monomial) Divides(other Monomial) (Monomial, bool) {
	for i, e := range m {
		if e > other[i] {
			return nil, false
		}
	}
	//
	quotient := make(Monomial, len(m))
	//
	for i, e := range m {
		quotient[i] = other[i] - e
	}
	//
	return quotient, true
}

// DividesBy checks divisibility without constructing the quotient.
func (m Monomial) DividesBy(other Monomial) bool {
	for i, e := range other {
		if e > m[i] {
			return false
		}
	}
	//
	return true
}

// Lcm returns the component-wise maximum of exponents.
func (m Monomial) Lcm(other Monomial) Monomial {
	res := make(Monomial, len(m))
	//
	for i, e := range m {
		res[i] = max(e, other[i])
	}
	//
	return res
}

// Coprime checks whether two monomials share no variable, in which case their
// lcm is their product.
func (m Monomial) Coprime(other Monomial) bool {
	for i, e := range m {
		if e != 0 && other[i] != 0 {
			return false
		}
	}
	//
	return true
}

// first returns the index of the first variable with nonzero exponent, or -1.
func (m Monomial) first() int {
	for i, e := range m {
		if e != 0 {
			return i
		}
	}
	//
	return -1
}

// last returns the index of the last variable with nonzero exponent, or -1.
func (m Monomial) last() int {
	for i := len(m) - 1; i >= 0; i-- {
		if m[i] != 0 {
			return i
		}
	}
	//
	return -1
}

// with returns a copy of this monomial with the ith exponent adjusted by delta.
func (m Monomial) with(i int, delta int32) Monomial {
	res := make(Monomial, len(m))
	copy(res, m)
	res[i] = uint32(int32(res[i]) + delta)
	//
	return res
}

// key returns a compact string usable as a map key.
func (m Monomial) key() string {
	var builder strings.Builder
	//
	for _, e := range m {
		builder.WriteByte(byte(e))
		builder.WriteByte(byte(e >> 8))
		builder.WriteByte(byte(e >> 16))
		builder.WriteByte(byte(e >> 24))
	}
	//
	return builder.String()
}

// Format writes this monomial using the given variable names, for example
// "x^2*y".  The monomial one is written as "1".
func (m Monomial) Format(names []string) string {
	var (
		builder strings.Builder
		first   = true
	)
	//
	for i, e := range m {
		if e == 0 {
			continue
		} else if !first {
			builder.WriteString("*")
		}
		//
		builder.WriteString(names[i])
		//
		if e > 1 {
			builder.WriteString("^")
			builder.WriteString(uitoa(e))
		}
		//
		first = false
	}
	//
	if first {
		return "1"
	}
	//
	return builder.String()
}
