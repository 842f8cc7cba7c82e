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

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// BLS12377 returns the scalar field of the BLS12-377 curve.  Elements are
// gnark-crypto field elements held by value.
func BLS12377() Domain[fr.Element] {
	return bls12_377{}
}

type bls12_377 struct{}

func (bls12_377) Name() string {
	return "BLS12-377"
}

func (bls12_377) Zero() fr.Element {
	return fr.Element{}
}

func (bls12_377) One() fr.Element {
	return fr.One()
}

func (bls12_377) FromInt64(val int64) fr.Element {
	var elem fr.Element
	//
	elem.SetInt64(val)
	//
	return elem
}

func (bls12_377) Parse(text string) (fr.Element, error) {
	var (
		elem fr.Element
		val  big.Int
	)
	//
	if _, ok := val.SetString(text, 10); !ok {
		return elem, fmt.Errorf("%w: invalid integer \"%s\"", ErrDomain, text)
	}
	// SetBigInt reduces modulo r, including negative values.
	elem.SetBigInt(&val)
	//
	return elem, nil
}

func (bls12_377) Add(x, y fr.Element) fr.Element {
	var res fr.Element
	//
	res.Add(&x, &y)
	//
	return res
}

func (bls12_377) Sub(x, y fr.Element) fr.Element {
	var res fr.Element
	//
	res.Sub(&x, &y)
	//
	return res
}

func (bls12_377) Neg(x fr.Element) fr.Element {
	var res fr.Element
	//
	res.Neg(&x)
	//
	return res
}

func (bls12_377) Mul(x, y fr.Element) fr.Element {
	var res fr.Element
	//
	res.Mul(&x, &y)
	//
	return res
}

func (bls12_377) Div(x, y fr.Element) (fr.Element, error) {
	var res fr.Element
	//
	if y.IsZero() {
		return res, fmt.Errorf("%w: division by zero", ErrDomain)
	}
	//
	res.Inverse(&y)
	res.Mul(&x, &res)
	//
	return res, nil
}

func (bls12_377) Gcd(x, y fr.Element) fr.Element {
	if x.IsZero() && y.IsZero() {
		return fr.Element{}
	}
	//
	return fr.One()
}

func (bls12_377) Unit(x fr.Element) fr.Element {
	if x.IsZero() {
		return fr.One()
	}
	//
	return x
}

func (bls12_377) IsZero(x fr.Element) bool {
	return x.IsZero()
}

func (bls12_377) IsOne(x fr.Element) bool {
	return x.IsOne()
}

func (bls12_377) Equal(x, y fr.Element) bool {
	return x.Equal(&y)
}

func (bls12_377) IsField() bool {
	return true
}

func (bls12_377) String(x fr.Element) string {
	var val big.Int
	//
	x.BigInt(&val)
	// Render elements close to the modulus as small negative numbers, which
	// keeps printed polynomials readable.
	if val.Cmp(halfModulus) > 0 {
		val.Sub(&val, fr.Modulus())
	}
	//
	return val.String()
}

var halfModulus = new(big.Int).Rsh(fr.Modulus(), 1)
