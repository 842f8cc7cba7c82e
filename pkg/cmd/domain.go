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
package cmd

import (
	"fmt"
	"math"
	"math/big"
	"os"

	"github.com/consensys/go-groebner/pkg/coeff"
	"github.com/consensys/go-groebner/pkg/poly"
	"github.com/spf13/cobra"
)

// DomainAgnosticCmd represents a command to be executed for polynomials over a
// given coefficient domain.
type DomainAgnosticCmd struct {
	Domain   string
	Function func(*cobra.Command, []string, poly.RingSpec)
}

// domainAgnostic constructs the table of instances of a generic command, one
// for each supported coefficient domain.  Integers modulo arbitrary primes
// share the representation of the integers.
func domainAgnostic(
	integers func(*cobra.Command, []string, poly.RingSpec),
	rationals func(*cobra.Command, []string, poly.RingSpec),
	smallField func(*cobra.Command, []string, poly.RingSpec),
	bls12377 func(*cobra.Command, []string, poly.RingSpec),
) []DomainAgnosticCmd {
	return []DomainAgnosticCmd{
		{"ZZ", integers},
		{"QQ", rationals},
		{"Mod", integers},
		{"GF", smallField},
		{"BLS12-377", bls12377},
	}
}

// Run a domain agnostic top-level command, by dispatching on the coefficient
// domain of the ring given by --ring.
func runDomainAgnosticCmd(cmd *cobra.Command, args []string, cmds []DomainAgnosticCmd) {
	var spec = getRingSpec(cmd)
	// Find command to dispatch
	for _, c := range cmds {
		if c.Domain == spec.Domain {
			// Match
			c.Function(cmd, args, spec)
			// Done
			return
		}
	}
	//
	fmt.Printf("domain %s unsupported for command '%s'\n", spec.Domain, cmd.Name())
	os.Exit(2)
}

// getRingSpec parses the ring description given by --ring, applying any
// override given by --order.
func getRingSpec(cmd *cobra.Command) poly.RingSpec {
	spec, err := poly.ParseRingSpec(GetString(cmd, "ring"))
	if err != nil {
		exitWithError(err)
	}
	//
	if name := GetString(cmd, "order"); name != "" {
		if spec.Order, err = poly.ParseOrder(name); err != nil {
			exitWithError(err)
		}
	}
	//
	return spec
}

// getRing constructs the ring described by a given spec, whose coefficients
// must be represented by C.
func getRing[C any](spec poly.RingSpec) *poly.Ring[C] {
	anyDomain, err := newDomain(spec)
	if err != nil {
		exitWithError(err)
	}
	// Should be impossible, given the dispatch table.
	domain, ok := anyDomain.(coeff.Domain[C])
	if !ok {
		panic(fmt.Sprintf("domain %s has unexpected representation", spec.Domain))
	}
	//
	ring, err := poly.NewRingFromSpec(spec, domain)
	if err != nil {
		exitWithError(err)
	}
	//
	return ring
}

// newDomain constructs the coefficient domain named by a ring spec.
func newDomain(spec poly.RingSpec) (any, error) {
	switch spec.Domain {
	case "ZZ":
		return coeff.Integers(), nil
	case "QQ":
		return coeff.Rationals(), nil
	case "Mod":
		return newModular(spec.Modulus)
	case "GF":
		if !spec.Modulus.IsUint64() || spec.Modulus.Uint64() > math.MaxUint32 {
			return nil, fmt.Errorf("%w: modulus %s too large for GF (use Mod)", coeff.ErrDomain, spec.Modulus)
		}
		//
		return newSmallField(uint32(spec.Modulus.Uint64()))
	case "BLS12-377":
		return coeff.BLS12377(), nil
	}
	//
	return nil, fmt.Errorf("%w: unknown domain %s", coeff.ErrDomain, spec.Domain)
}

func newModular(modulus *big.Int) (coeff.Domain[*big.Int], error) {
	return coeff.NewModular(modulus)
}

func newSmallField(modulus uint32) (coeff.Domain[coeff.Element], error) {
	return coeff.NewSmallField(modulus)
}

