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

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-groebner/pkg/coeff"
	"github.com/consensys/go-groebner/pkg/groebner"
	"github.com/consensys/go-groebner/pkg/poly"
	"github.com/consensys/go-groebner/pkg/util/source"
	"github.com/spf13/cobra"
)

var nfCmd = &cobra.Command{
	Use:   "nf [flags] polynomial",
	Short: "compute the normal form of a polynomial.",
	Long: `Reduce a polynomial modulo a given basis until no term is divisible by the leading
	 monomial of any basis element.  Unless --gb is given, the basis is used as is.`,
	Run: func(cmd *cobra.Command, args []string) {
		runDomainAgnosticCmd(cmd, args, nfCmds)
	},
}

// Available instances
var nfCmds = domainAgnostic(runNfCmd[*big.Int], runNfCmd[*big.Rat], runNfCmd[coeff.Element], runNfCmd[fr.Element])

func runNfCmd[C any](cmd *cobra.Command, args []string, spec poly.RingSpec) {
	var (
		ring  = getRing[C](spec)
		p     = parsePolynomial(ring, readInput(cmd, args))
		basis = parsePolynomials(ring, source.NewSourceString(GetString(cmd, "basis")))
		side  = getSide(cmd)
	)
	//
	if GetFlag(cmd, "gb") {
		basis = computeGB(basis, groebner.Sequential().WithSide(side))
	}
	//
	nf, err := groebner.SidedNormalForm(p, basis, side.Reduction())
	if err != nil {
		exitWithError(err)
	}
	//
	fmt.Println(nf.String())
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(nfCmd)
	nfCmd.Flags().StringP("basis", "b", "", "basis to reduce against, e.g. \"(x - 1, y^2)\"")
	nfCmd.Flags().Bool("gb", false, "compute the Gröbner basis of the basis first")
	nfCmd.MarkFlagRequired("basis")
}
