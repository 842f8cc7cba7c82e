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
)

// Modular represents the integers modulo some prime p of arbitrary size.
// Elements are always held in the range [0,p).
type Modular struct {
	modulus *big.Int
}

// NewModular constructs the field of integers modulo p, or returns an error if
// p is not a prime.
func NewModular(p *big.Int) (*Modular, error) {
	if p.Cmp(big.NewInt(2)) < 0 || !p.ProbablyPrime(20) {
		return nil, fmt.Errorf("%w: modulus %s is not prime", ErrDomain, p.String())
	}
	//
	return &Modular{new(big.Int).Set(p)}, nil
}

// Modulus returns the modulus of this field.
func (p *Modular) Modulus() *big.Int {
	return p.modulus
}

// Name implementation for the Domain interface.
func (p *Modular) Name() string {
	return fmt.Sprintf("Mod %s", p.modulus.String())
}

// Zero implementation for the Domain interface.
func (p *Modular) Zero() *big.Int {
	return bigZero
}

// One implementation for the Domain interface.
func (p *Modular) One() *big.Int {
	return bigOne
}

// FromInt64 implementation for the Domain interface.
func (p *Modular) FromInt64(val int64) *big.Int {
	return p.reduce(big.NewInt(val))
}

// Parse implementation for the Domain interface.  Negative literals are
// accepted and reduced.
func (p *Modular) Parse(text string) (*big.Int, error) {
	val, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return nil, fmt.Errorf("%w: invalid integer \"%s\"", ErrDomain, text)
	}
	//
	return p.reduce(val), nil
}

// Add implementation for the Domain interface.
func (p *Modular) Add(x, y *big.Int) *big.Int {
	return p.reduce(new(big.Int).Add(x, y))
}

// Sub implementation for the Domain interface.
func (p *Modular) Sub(x, y *big.Int) *big.Int {
	return p.reduce(new(big.Int).Sub(x, y))
}

// Neg implementation for the Domain interface.
func (p *Modular) Neg(x *big.Int) *big.Int {
	return p.reduce(new(big.Int).Neg(x))
}

// Mul implementation for the Domain interface.
func (p *Modular) Mul(x, y *big.Int) *big.Int {
	return p.reduce(new(big.Int).Mul(x, y))
}

// Div implementation for the Domain interface.
func (p *Modular) Div(x, y *big.Int) (*big.Int, error) {
	if y.Sign() == 0 {
		return nil, fmt.Errorf("%w: division by zero", ErrDomain)
	}
	//
	inv := new(big.Int).ModInverse(y, p.modulus)
	//
	return p.Mul(x, inv), nil
}

// Gcd implementation for the Domain interface.
func (p *Modular) Gcd(x, y *big.Int) *big.Int {
	if x.Sign() == 0 && y.Sign() == 0 {
		return bigZero
	}
	//
	return bigOne
}

// Unit implementation for the Domain interface.
func (p *Modular) Unit(x *big.Int) *big.Int {
	if x.Sign() == 0 {
		return bigOne
	}
	//
	return x
}

// IsZero implementation for the Domain interface.
func (p *Modular) IsZero(x *big.Int) bool {
	return x.Sign() == 0
}

// IsOne implementation for the Domain interface.
func (p *Modular) IsOne(x *big.Int) bool {
	return x.Cmp(bigOne) == 0
}

// Equal implementation for the Domain interface.
func (p *Modular) Equal(x, y *big.Int) bool {
	return x.Cmp(y) == 0
}

// IsField implementation for the Domain interface.
func (p *Modular) IsField() bool {
	return true
}

// String implementation for the Domain interface.
func (p *Modular) String(x *big.Int) string {
	return x.String()
}

func (p *Modular) reduce(x *big.Int) *big.Int {
	// Euclidean modulus, hence always non-negative.
	return x.Mod(x, p.modulus)
}
