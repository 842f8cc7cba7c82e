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
package groebner

import (
	"container/heap"
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/go-groebner/pkg/poly"
)

// Pair identifies two basis elements by their (stable) indices, where I < J,
// along with the lcm of their leading monomials.
type Pair struct {
	I, J uint
	Lcm  poly.Monomial
}

func (p Pair) String() string {
	return fmt.Sprintf("(%d,%d)", p.I, p.J)
}

// PairList manages the critical pairs of a growing basis.  Pairs are selected
// using the normal strategy: smallest lcm first, with ties broken by (J, I).
// A pair remains pending from the moment it is created until Done is called
// for it, which must happen only after its reduced S-polynomial (if nonzero)
// has been added.  Buchberger's chain criterion relies on this to decide
// whether some pair is redundant.
//
// A PairList is not safe for concurrent use.
type PairList struct {
	order poly.Order
	// Coprime criterion only holds in commutative rings.
	commutative bool
	criteria    bool
	// Leading monomials of basis elements
	leading []poly.Monomial
	queue   pairQueue
	// pending[j] has bit i set when pair (i,j) is pending.
	pending []*bitset.BitSet
	stats   *Stats
}

// NewPairList constructs an empty pair list for a given ring.
func NewPairList[C any](ring *poly.Ring[C], stats *Stats) *PairList {
	if stats == nil {
		stats = &Stats{}
	}
	//
	return &PairList{
		order:       ring.Order(),
		commutative: ring.IsCommutative(),
		criteria:    true,
		queue:       pairQueue{order: ring.Order()},
		stats:       stats,
	}
}

// Put registers the leading monomial of a new basis element, creating pairs
// between it and all existing elements.  The index of the new element is
// returned.
func (p *PairList) Put(lm poly.Monomial) uint {
	var (
		j       = uint(len(p.leading))
		pending = bitset.New(j)
	)
	//
	for i, lmi := range p.leading {
		if p.criteria && p.commutative && lmi.Coprime(lm) {
			p.stats.CoprimeSkipped.Add(1)
			continue
		}
		//
		heap.Push(&p.queue, Pair{uint(i), j, lmi.Lcm(lm)})
		pending.Set(uint(i))
	}
	//
	p.leading = append(p.leading, lm)
	p.pending = append(p.pending, pending)
	//
	return j
}

// HasNext checks whether any pairs remain to be selected.
func (p *PairList) HasNext() bool {
	return p.queue.Len() > 0
}

// Len returns the number of elements registered.
func (p *PairList) Len() uint {
	return uint(len(p.leading))
}

// Next selects the next pair to process, discarding any pairs which the chain
// criterion shows to be redundant along the way.
func (p *PairList) Next() (Pair, bool) {
	for p.queue.Len() > 0 {
		pair := heap.Pop(&p.queue).(Pair)
		//
		if p.criteria && p.chain(pair) {
			p.stats.ChainSkipped.Add(1)
			p.Done(pair)
			//
			continue
		}
		//
		return pair, true
	}
	//
	return Pair{}, false
}

// Done marks a pair as no longer pending.
func (p *PairList) Done(pair Pair) {
	p.pending[pair.J].Clear(pair.I)
}

// chain checks whether there is some k, distinct from i and j, whose leading
// monomial divides lcm(i,j) and such that neither (i,k) nor (j,k) is pending.
// If so, the S-polynomial of (i,j) reduces to zero given those of (i,k) and
// (j,k).
func (p *PairList) chain(pair Pair) bool {
	for k, lmk := range p.leading {
		var kk = uint(k)
		//
		if kk == pair.I || kk == pair.J || !pair.Lcm.DividesBy(lmk) {
			continue
		} else if !p.isPending(pair.I, kk) && !p.isPending(pair.J, kk) {
			return true
		}
	}
	//
	return false
}

func (p *PairList) isPending(i, j uint) bool {
	if i > j {
		i, j = j, i
	}
	//
	return p.pending[j].Test(i)
}

// pairQueue is a heap of pairs, following the container/heap protocol.
type pairQueue struct {
	order poly.Order
	pairs []Pair
}

func (q *pairQueue) Len() int { return len(q.pairs) }

func (q *pairQueue) Less(a, b int) bool {
	var x, y = q.pairs[a], q.pairs[b]
	//
	if c := q.order.Compare(x.Lcm, y.Lcm); c != 0 {
		return c < 0
	} else if x.J != y.J {
		return x.J < y.J
	}
	//
	return x.I < y.I
}

func (q *pairQueue) Swap(a, b int) { q.pairs[a], q.pairs[b] = q.pairs[b], q.pairs[a] }

func (q *pairQueue) Push(x any) { q.pairs = append(q.pairs, x.(Pair)) }

func (q *pairQueue) Pop() any {
	n := len(q.pairs)
	item := q.pairs[n-1]
	q.pairs = q.pairs[:n-1]
	//
	return item
}
