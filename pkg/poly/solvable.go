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
	"slices"

	"github.com/consensys/go-groebner/pkg/coeff"
)

// ErrRelation signals a malformed commutator relation of a solvable ring.
var ErrRelation = errors.New("invalid relation")

// Relation states that x_Upper * x_Lower = Terms, where Upper > Lower.  The
// leading monomial of the right-hand side must be x_Lower*x_Upper, so that the
// relation only perturbs lower order terms.
type Relation[C any] struct {
	Upper uint
	Lower uint
	Terms []Term[C]
}

// NewSolvableRing constructs a solvable polynomial ring.  Pairs of variables
// without a relation commute.
func NewSolvableRing[C any](names []string, domain coeff.Domain[C], order Order,
	relations ...Relation[C]) (*Ring[C], error) {
	//
	ring := NewRing(names, domain, order)
	n := ring.NumVars()
	table := make(map[uint]Polynomial[C])
	//
	for _, rel := range relations {
		if rel.Upper >= n || rel.Lower >= n {
			return nil, fmt.Errorf("%w: variable index out of bounds", ErrRelation)
		} else if rel.Upper <= rel.Lower {
			return nil, fmt.Errorf("%w: %s * %s must have the lesser variable on the right", ErrRelation,
				names[rel.Upper], names[rel.Lower])
		}
		//
		key := relationKey(n, rel.Upper, rel.Lower)
		if _, ok := table[key]; ok {
			return nil, fmt.Errorf("%w: duplicate relation for %s * %s", ErrRelation,
				names[rel.Upper], names[rel.Lower])
		}
		// Build right-hand side using commutative ring, since we only need its
		// terms in order.
		rhs, err := ring.FromTerms(rel.Terms...)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRelation, err)
		}
		//
		expected := UnitMonomial(n, rel.Lower).Mul(UnitMonomial(n, rel.Upper))
		if rhs.IsZero() || !rhs.LeadingMonomial().Equal(expected) {
			return nil, fmt.Errorf("%w: leading monomial of %s * %s must be %s", ErrRelation,
				names[rel.Upper], names[rel.Lower], expected.Format(names))
		}
		//
		table[key] = rhs
	}
	// Relations refer to the ring itself
	for key, rhs := range table {
		table[key] = Polynomial[C]{ring, rhs.terms}
	}
	//
	if len(table) > 0 {
		ring.relations = table
	}
	//
	return ring, nil
}

// Relations returns the relations of this ring, ordered by variable indices.
func (r *Ring[C]) Relations() []Relation[C] {
	var (
		n         = r.NumVars()
		relations []Relation[C]
	)
	//
	for key, rhs := range r.relations {
		relations = append(relations, Relation[C]{key / n, key % n, rhs.terms})
	}
	//
	slices.SortFunc(relations, func(a, b Relation[C]) int {
		if a.Upper != b.Upper {
			return int(a.Upper) - int(b.Upper)
		}
		//
		return int(a.Lower) - int(b.Lower)
	})
	//
	return relations
}

func relationKey(n uint, upper uint, lower uint) uint {
	return upper*n + lower
}

// product computes the product x^a * x^b.  In a commutative ring (or whenever
// the variables of a all precede those of b) this is simply x^(a+b).
// Otherwise, writing a = a'*x_j and b = x_i*b' with j > i, the product is
// a' * (x_j*x_i) * b' where x_j*x_i is rewritten by the relation table.
func (r *Ring[C]) product(a, b Monomial) Polynomial[C] {
	j, i := a.last(), b.first()
	//
	if r.IsCommutative() || j < 0 || i < 0 || j <= i {
		return Polynomial[C]{r, []Term[C]{{r.domain.One(), a.Mul(b)}}}
	}
	//
	key := a.key() + b.key()
	if res, ok := r.products.Load(key); ok {
		return res.(Polynomial[C])
	}
	//
	var middle Polynomial[C]
	//
	if rel, ok := r.relations[relationKey(r.NumVars(), uint(j), uint(i))]; ok {
		middle = rel
	} else {
		middle = r.monomial(r.domain.One(), UnitMonomial(r.NumVars(), uint(i)).Mul(UnitMonomial(r.NumVars(), uint(j))))
	}
	//
	res := middle.mulMonomial(a.with(j, -1), true).mulMonomial(b.with(i, -1), false)
	r.products.Store(key, res)
	//
	return res
}
