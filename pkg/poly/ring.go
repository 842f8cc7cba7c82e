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
	"strings"
	"sync"

	"github.com/consensys/go-groebner/pkg/coeff"
)

// ErrRingMismatch signals an attempt to combine polynomials (or monomials) from
// incompatible rings.
var ErrRingMismatch = errors.New("ring mismatch")

// RingKind distinguishes ordinary polynomial rings from solvable ones, where
// multiplication of variables is governed by a table of relations.
type RingKind uint8

const (
	// Commutative rings where all variables commute.
	Commutative RingKind = iota
	// Solvable rings where some pairs of variables do not commute.
	Solvable
)

func (k RingKind) String() string {
	if k == Commutative {
		return "commutative"
	}
	//
	return "solvable"
}

// Ring provides the shared context for a set of polynomials: variable names,
// coefficient domain and term order.  A ring is read-only once constructed and
// may be used from multiple goroutines.
type Ring[C any] struct {
	names  []string
	domain coeff.Domain[C]
	order  Order
	// Relations of a solvable ring, indexed by relationKey(upper, lower).
	relations map[uint]Polynomial[C]
	// Memoised products of monomials in a solvable ring.
	products sync.Map
}

// NewRing constructs a commutative polynomial ring over the given variables.
// Variables listed first are greater.
func NewRing[C any](names []string, domain coeff.Domain[C], order Order) *Ring[C] {
	return &Ring[C]{names: slices.Clone(names), domain: domain, order: order}
}

// NumVars returns the number of variables in this ring.
func (r *Ring[C]) NumVars() uint {
	return uint(len(r.names))
}

// Names returns the variable names of this ring.
func (r *Ring[C]) Names() []string {
	return r.names
}

// VarIndex returns the index of a given variable, or false if no such variable
// exists.
func (r *Ring[C]) VarIndex(name string) (uint, bool) {
	i := slices.Index(r.names, name)
	//
	return uint(i), i >= 0
}

// Domain returns the coefficient domain of this ring.
func (r *Ring[C]) Domain() coeff.Domain[C] {
	return r.domain
}

// Order returns the term order of this ring.
func (r *Ring[C]) Order() Order {
	return r.order
}

// Kind returns the kind of this ring.  A solvable ring without any relations is
// reported as commutative.
func (r *Ring[C]) Kind() RingKind {
	if len(r.relations) == 0 {
		return Commutative
	}
	//
	return Solvable
}

// IsCommutative is a convenience for Kind() == Commutative.
func (r *Ring[C]) IsCommutative() bool {
	return len(r.relations) == 0
}

// Zero returns the zero polynomial of this ring.
func (r *Ring[C]) Zero() Polynomial[C] {
	return Polynomial[C]{r, nil}
}

// One returns the constant polynomial one.
func (r *Ring[C]) One() Polynomial[C] {
	return r.Const(r.domain.One())
}

// Const returns a constant polynomial.
func (r *Ring[C]) Const(c C) Polynomial[C] {
	if r.domain.IsZero(c) {
		return r.Zero()
	}
	//
	return Polynomial[C]{r, []Term[C]{{c, make(Monomial, len(r.names))}}}
}

// Var returns the polynomial consisting of the ith variable.
func (r *Ring[C]) Var(i uint) Polynomial[C] {
	return Polynomial[C]{r, []Term[C]{{r.domain.One(), UnitMonomial(r.NumVars(), i)}}}
}

// Monomial returns the polynomial c*x^m, or an error if m does not have one
// exponent per variable.
func (r *Ring[C]) Monomial(c C, m Monomial) (Polynomial[C], error) {
	if err := r.checkMonomial(m); err != nil {
		return r.Zero(), err
	}
	//
	return r.monomial(c, m), nil
}

func (r *Ring[C]) monomial(c C, m Monomial) Polynomial[C] {
	if r.domain.IsZero(c) {
		return r.Zero()
	}
	//
	return Polynomial[C]{r, []Term[C]{{c, m}}}
}

func (r *Ring[C]) checkMonomial(m Monomial) error {
	if len(m) != len(r.names) {
		return fmt.Errorf("%w: monomial with %d exponents in ring with %d variables",
			ErrRingMismatch, len(m), len(r.names))
	}
	//
	return nil
}

// FromTerms constructs a polynomial from terms given in any order.  Terms with
// the same monomial are combined, and zero terms are dropped.  An error is
// returned if some monomial does not have one exponent per variable.
func (r *Ring[C]) FromTerms(terms ...Term[C]) (Polynomial[C], error) {
	var sorted = slices.Clone(terms)
	//
	for _, t := range terms {
		if err := r.checkMonomial(t.Exp); err != nil {
			return r.Zero(), err
		}
	}
	// Sort into descending order
	slices.SortStableFunc(sorted, func(a, b Term[C]) int {
		return r.order.Compare(b.Exp, a.Exp)
	})
	// Combine duplicates
	var result []Term[C]
	//
	for _, t := range sorted {
		n := len(result)
		if n > 0 && result[n-1].Exp.Equal(t.Exp) {
			result[n-1].Coeff = r.domain.Add(result[n-1].Coeff, t.Coeff)
		} else {
			result = append(result, t)
		}
	}
	// Drop zeros
	result = slices.DeleteFunc(result, func(t Term[C]) bool {
		return r.domain.IsZero(t.Coeff)
	})
	//
	return Polynomial[C]{r, result}, nil
}

// Compatible checks whether polynomials of this ring can be combined with those
// of another.  Distinct commutative rings are compatible when they agree on
// variables, domain and order.  Solvable rings are only compatible with
// themselves.
func (r *Ring[C]) Compatible(other *Ring[C]) bool {
	switch {
	case r == other:
		return true
	case r == nil || other == nil:
		return false
	case !r.IsCommutative() || !other.IsCommutative():
		return false
	}
	//
	return slices.Equal(r.names, other.names) && r.order == other.order &&
		r.domain.Name() == other.domain.Name()
}

// CheckRing checks that all the given polynomials belong to a ring compatible
// with this one.
func (r *Ring[C]) CheckRing(polys ...Polynomial[C]) error {
	for i, p := range polys {
		if !r.Compatible(p.ring) {
			return fmt.Errorf("%w: polynomial %d belongs to %s, expected %s", ErrRingMismatch, i, p.ring, r)
		}
	}
	//
	return nil
}

func (r *Ring[C]) mustMatch(other *Ring[C]) {
	if !r.Compatible(other) {
		panic(fmt.Errorf("%w: %s and %s", ErrRingMismatch, r, other))
	}
}

// String returns a description of this ring in the same notation accepted by
// ParseRingSpec, e.g. "QQ(x,y) L".
func (r *Ring[C]) String() string {
	if r == nil {
		return "<nil>"
	}
	//
	var builder strings.Builder
	//
	builder.WriteString(fmt.Sprintf("%s(%s) %s", r.domain.Name(), strings.Join(r.names, ","), r.order))
	//
	if !r.IsCommutative() {
		builder.WriteString(" RelationTable(")
		//
		for i, rel := range r.Relations() {
			if i != 0 {
				builder.WriteString(", ")
			}
			//
			rhs := Polynomial[C]{r, rel.Terms}
			builder.WriteString(fmt.Sprintf("(%s), (%s), (%s)", r.names[rel.Upper], r.names[rel.Lower], rhs))
		}
		//
		builder.WriteString(")")
	}
	//
	return builder.String()
}
