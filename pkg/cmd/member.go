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
	"math/big"
	"os"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-groebner/pkg/coeff"
	"github.com/consensys/go-groebner/pkg/groebner"
	"github.com/consensys/go-groebner/pkg/poly"
	"github.com/consensys/go-groebner/pkg/util/source"
	"github.com/spf13/cobra"
)

var memberCmd = &cobra.Command{
	Use:   "member [flags] polynomial",
	Short: "check whether a polynomial belongs to an ideal.",
	Long: `Check whether a polynomial belongs to the ideal generated by a given list of
	 polynomials, by reducing it modulo a Gröbner basis of the ideal.  Exits with status 1
	 when the polynomial is not a member.`,
	Run: func(cmd *cobra.Command, args []string) {
		runDomainAgnosticCmd(cmd, args, memberCmds)
	},
}

// Available instances
var memberCmds = domainAgnostic(runMemberCmd[*big.Int], runMemberCmd[*big.Rat], runMemberCmd[coeff.Element],
	runMemberCmd[fr.Element])

func runMemberCmd[C any](cmd *cobra.Command, args []string, spec poly.RingSpec) {
	var (
		ring  = getRing[C](spec)
		p     = parsePolynomial(ring, readInput(cmd, args))
		ideal = parsePolynomials(ring, source.NewSourceString(GetString(cmd, "ideal")))
		mode  = getMode(cmd)
	)
	//
	gb := computeGB(ideal, mode)
	//
	member, err := groebner.SidedMember(p, gb, mode.Side())
	if err != nil {
		exitWithError(err)
	}
	//
	fmt.Println(member)
	//
	if !member {
		os.Exit(1)
	}
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(memberCmd)
	memberCmd.Flags().StringP("ideal", "i", "", "generators of the ideal, e.g. \"(x*y - 1, x^2 + y)\"")
	memberCmd.Flags().UintP("workers", "w", 0, "use parallel engine with given number of workers (0 for one per CPU)")
	memberCmd.MarkFlagRequired("ideal")
}
