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
	"fmt"
	"math/big"
	"strconv"
)

// Element of a small prime order field, represented in Montgomery form to speed
// up multiplications.
type Element [1]uint32 // defined as an array to prevent mistaken use of arithmetic operators, or naive assignments.

// SmallField is a field of prime order less than 2³¹.  The missing bit gives
// the slack needed to add two elements without overflowing.
type SmallField struct {
	modulus           uint32
	negModulusInvModR uint32
	one               Element
}

// NewSmallField constructs a field of the given prime order.
func NewSmallField(modulus uint32) (SmallField, error) {
	var m = big.NewInt(int64(modulus))
	//
	if modulus >= 1<<31 {
		return SmallField{}, fmt.Errorf("%w: modulus %d too large", ErrDomain, modulus)
	} else if !m.ProbablyPrime(20) {
		return SmallField{}, fmt.Errorf("%w: modulus %d is not prime", ErrDomain, modulus)
	}
	//
	m.ModInverse(m, big.NewInt(1<<32))
	f := SmallField{modulus: modulus, negModulusInvModR: uint32(1<<32 - m.Uint64())}
	f.one = f.NewElement(1)
	//
	return f, nil
}

// Modulus returns the order of this field.
func (f SmallField) Modulus() uint32 {
	return f.modulus
}

// NewElement returns the element of the field corresponding to the natural
// number x.
func (f SmallField) NewElement(x uint32) Element {
	return Element{uint32(uint64(x) << 32 % uint64(f.modulus))}
}

// ToUint32 returns the numerical (non-Montgomery) value of x.
func (f SmallField) ToUint32(x Element) uint32 {
	return f.montgomeryReduce(uint64(x[0]))[0]
}

// Name implementation for the Domain interface.
func (f SmallField) Name() string {
	return fmt.Sprintf("GF %d", f.modulus)
}

// Zero implementation for the Domain interface.  Zero is the same in Montgomery
// form.
func (f SmallField) Zero() Element {
	return Element{0}
}

// One implementation for the Domain interface.
func (f SmallField) One() Element {
	return f.one
}

// FromInt64 implementation for the Domain interface.
func (f SmallField) FromInt64(val int64) Element {
	var r = val % int64(f.modulus)
	//
	if r < 0 {
		r += int64(f.modulus)
	}
	//
	return f.NewElement(uint32(r))
}

// Parse implementation for the Domain interface.
func (f SmallField) Parse(text string) (Element, error) {
	var val, ok = new(big.Int).SetString(text, 10)
	//
	if !ok {
		return Element{}, fmt.Errorf("%w: invalid integer \"%s\"", ErrDomain, text)
	}
	//
	val.Mod(val, big.NewInt(int64(f.modulus)))
	//
	return f.NewElement(uint32(val.Uint64())), nil
}

// Add implementation for the Domain interface.
func (f SmallField) Add(x, y Element) Element {
	res := Element{x[0] + y[0]}
	if res[0] >= f.modulus {
		res[0] -= f.modulus
	}
	//
	return res
}

// Sub implementation for the Domain interface.
func (f SmallField) Sub(x, y Element) Element {
	const negMask uint32 = 1 << 31
	//
	res := Element{x[0] - y[0]}
	if res[0]&negMask != 0 {
		res[0] += f.modulus
	}
	//
	return res
}

// Neg implementation for the Domain interface.
func (f SmallField) Neg(x Element) Element {
	return f.Sub(Element{0}, x)
}

// Mul implementation for the Domain interface.
func (f SmallField) Mul(x, y Element) Element {
	return f.montgomeryReduce(uint64(x[0]) * uint64(y[0]))
}

// Div implementation for the Domain interface.
func (f SmallField) Div(x, y Element) (Element, error) {
	if y[0] == 0 {
		return Element{}, fmt.Errorf("%w: division by zero", ErrDomain)
	}
	//
	return f.Mul(x, f.inverse(y)), nil
}

// Gcd implementation for the Domain interface.
func (f SmallField) Gcd(x, y Element) Element {
	if x[0] == 0 && y[0] == 0 {
		return Element{0}
	}
	//
	return f.one
}

// Unit implementation for the Domain interface.
func (f SmallField) Unit(x Element) Element {
	if x[0] == 0 {
		return f.one
	}
	//
	return x
}

// IsZero implementation for the Domain interface.
func (f SmallField) IsZero(x Element) bool {
	return x[0] == 0
}

// IsOne implementation for the Domain interface.
func (f SmallField) IsOne(x Element) bool {
	return x == f.one
}

// Equal implementation for the Domain interface.  Montgomery form is unique,
// so comparing representations suffices.
func (f SmallField) Equal(x, y Element) bool {
	return x == y
}

// IsField implementation for the Domain interface.
func (f SmallField) IsField() bool {
	return true
}

// String implementation for the Domain interface.
func (f SmallField) String(x Element) string {
	return strconv.FormatUint(uint64(f.ToUint32(x)), 10)
}

// montgomeryReduce x -> x.R⁻¹ (mod m)
func (f SmallField) montgomeryReduce(x uint64) Element {
	// textbook Montgomery reduction
	const R = 1 << 32
	m := (x * uint64(f.negModulusInvModR)) % R // m = x * (-modulus⁻¹) (mod R)

	res := Element{uint32((x + m*uint64(f.modulus)) / R)}

	if res[0] >= f.modulus {
		res[0] -= f.modulus
	}

	return res
}

// inverse by Fermat's little theorem, x⁻¹ = x^(p-2).
func (f SmallField) inverse(x Element) Element {
	var (
		res = f.one
		n   = f.modulus - 2
	)
	//
	for n > 0 {
		if n&1 == 1 {
			res = f.Mul(res, x)
		}
		//
		x = f.Mul(x, x)
		n >>= 1
	}
	//
	return res
}
