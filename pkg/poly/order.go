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
	"fmt"
	"strconv"
)

// Order determines how monomials are compared.  All supported orders are
// admissible: they are total, compatible with multiplication and well-founded,
// which Buchberger's algorithm requires for termination.
type Order uint8

const (
	// Lex is the pure lexicographic order, where x_0 > x_1 > ... > x_n.
	Lex Order = iota
	// GradedLex compares total degree first, breaking ties lexicographically.
	GradedLex
	// GradedRevLex compares total degree first, breaking ties by the last
	// differing exponent where the smaller exponent gives the larger monomial.
	GradedRevLex
)

// ParseOrder parses the name of a term order.  Both the single letter form used
// in ring descriptions (L, G, R) and longer names are accepted.
func ParseOrder(name string) (Order, error) {
	switch name {
	case "L", "lex":
		return Lex, nil
	case "G", "grlex":
		return GradedLex, nil
	case "R", "grevlex":
		return GradedRevLex, nil
	}
	//
	return 0, fmt.Errorf("unknown term order \"%s\"", name)
}

// Compare returns a negative number if a < b, zero if they are equal and a
// positive number if a > b.
func (o Order) Compare(a, b Monomial) int {
	switch o {
	case Lex:
		return compareLex(a, b)
	case GradedLex:
		if c := compareDegree(a, b); c != 0 {
			return c
		}
		//
		return compareLex(a, b)
	case GradedRevLex:
		if c := compareDegree(a, b); c != 0 {
			return c
		}
		//
		return compareRevLex(a, b)
	default:
		panic(fmt.Sprintf("unknown term order %d", o))
	}
}

func (o Order) String() string {
	switch o {
	case Lex:
		return "L"
	case GradedLex:
		return "G"
	case GradedRevLex:
		return "R"
	default:
		return strconv.Itoa(int(o))
	}
}

func compareDegree(a, b Monomial) int {
	var da, db = a.Degree(), b.Degree()
	//
	switch {
	case da < db:
		return -1
	case da > db:
		return 1
	default:
		return 0
	}
}

func compareLex(a, b Monomial) int {
	for i, e := range a {
		if e != b[i] {
			return cmpExponent(e, b[i])
		}
	}
	//
	return 0
}

func compareRevLex(a, b Monomial) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			// Smaller exponent in the last variable means larger monomial.
			return cmpExponent(b[i], a[i])
		}
	}
	//
	return 0
}

func cmpExponent(x, y uint32) int {
	if x < y {
		return -1
	}
	//
	return 1
}

func uitoa(e uint32) string {
	return strconv.FormatUint(uint64(e), 10)
}
