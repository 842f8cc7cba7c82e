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

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

// Integers returns the domain of unbounded integers.  This is not a field,
// hence Gröbner bases over it are computed by pseudo-reduction.
func Integers() Domain[*big.Int] {
	return integers{}
}

type integers struct{}

func (integers) Name() string {
	return "ZZ"
}

func (integers) Zero() *big.Int {
	return bigZero
}

func (integers) One() *big.Int {
	return bigOne
}

func (integers) FromInt64(val int64) *big.Int {
	return big.NewInt(val)
}

func (integers) Parse(text string) (*big.Int, error) {
	val, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return nil, fmt.Errorf("%w: invalid integer \"%s\"", ErrDomain, text)
	}
	//
	return val, nil
}

func (integers) Add(x, y *big.Int) *big.Int {
	return new(big.Int).Add(x, y)
}

func (integers) Sub(x, y *big.Int) *big.Int {
	return new(big.Int).Sub(x, y)
}

func (integers) Neg(x *big.Int) *big.Int {
	return new(big.Int).Neg(x)
}

func (integers) Mul(x, y *big.Int) *big.Int {
	return new(big.Int).Mul(x, y)
}

func (integers) Div(x, y *big.Int) (*big.Int, error) {
	var q, r big.Int
	//
	if y.Sign() == 0 {
		return nil, fmt.Errorf("%w: division by zero", ErrDomain)
	}
	//
	q.QuoRem(x, y, &r)
	//
	if r.Sign() != 0 {
		return nil, fmt.Errorf("%w: %s is not divisible by %s", ErrDomain, x.String(), y.String())
	}
	//
	return &q, nil
}

func (integers) Gcd(x, y *big.Int) *big.Int {
	// GCD is non-negative regardless of the signs of x and y.
	return new(big.Int).GCD(nil, nil, x, y)
}

func (integers) Unit(x *big.Int) *big.Int {
	if x.Sign() < 0 {
		return big.NewInt(-1)
	}
	//
	return bigOne
}

func (integers) IsZero(x *big.Int) bool {
	return x.Sign() == 0
}

func (integers) IsOne(x *big.Int) bool {
	return x.Cmp(bigOne) == 0
}

func (integers) Equal(x, y *big.Int) bool {
	return x.Cmp(y) == 0
}

func (integers) IsField() bool {
	return false
}

func (integers) String(x *big.Int) string {
	return x.String()
}
