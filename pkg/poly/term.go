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

// Term is a single coefficient / monomial pair.  Terms stored in a polynomial
// never have a zero coefficient.
type Term[C any] struct {
	Coeff C
	Exp   Monomial
}

// NewTerm constructs a term from a coefficient and exponents.
func NewTerm[C any](c C, exponents ...uint32) Term[C] {
	return Term[C]{c, NewMonomial(exponents...)}
}
