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
	ratZero = new(big.Rat)
	ratOne  = big.NewRat(1, 1)
)

// Rationals returns the field of rational numbers.  Elements are always held in
// lowest terms, which big.Rat guarantees.
func Rationals() Domain[*big.Rat] {
	return rationals{}
}

type rationals struct{}

func (rationals) Name() string {
	return "QQ"
}

func (rationals) Zero() *big.Rat {
	return ratZero
}

func (rationals) One() *big.Rat {
	return ratOne
}

func (rationals) FromInt64(val int64) *big.Rat {
	return new(big.Rat).SetInt64(val)
}

func (rationals) Parse(text string) (*big.Rat, error) {
	val, ok := new(big.Rat).SetString(text)
	if !ok {
		return nil, fmt.Errorf("%w: invalid rational \"%s\"", ErrDomain, text)
	}
	//
	return val, nil
}

func (rationals) Add(x, y *big.Rat) *big.Rat {
	return new(big.Rat).Add(x, y)
}

func (rationals) Sub(x, y *big.Rat) *big.Rat {
	return new(big.Rat).Sub(x, y)
}

func (rationals) Neg(x *big.Rat) *big.Rat {
	return new(big.Rat).Neg(x)
}

func (rationals) Mul(x, y *big.Rat) *big.Rat {
	return new(big.Rat).Mul(x, y)
}

func (rationals) Div(x, y *big.Rat) (*big.Rat, error) {
	if y.Sign() == 0 {
		return nil, fmt.Errorf("%w: division by zero", ErrDomain)
	}
	//
	return new(big.Rat).Quo(x, y), nil
}

func (rationals) Gcd(x, y *big.Rat) *big.Rat {
	if x.Sign() == 0 && y.Sign() == 0 {
		return ratZero
	}
	//
	return ratOne
}

func (rationals) Unit(x *big.Rat) *big.Rat {
	if x.Sign() == 0 {
		return ratOne
	}
	//
	return x
}

func (rationals) IsZero(x *big.Rat) bool {
	return x.Sign() == 0
}

func (rationals) IsOne(x *big.Rat) bool {
	return x.Cmp(ratOne) == 0
}

func (rationals) Equal(x, y *big.Rat) bool {
	return x.Cmp(y) == 0
}

func (rationals) IsField() bool {
	return true
}

func (rationals) String(x *big.Rat) string {
	return x.RatString()
}
