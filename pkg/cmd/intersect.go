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
	"context"
	"fmt"
	"math/big"
	"os"
	"os/signal"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-groebner/pkg/coeff"
	"github.com/consensys/go-groebner/pkg/groebner"
	"github.com/consensys/go-groebner/pkg/poly"
	"github.com/spf13/cobra"
)

var intersectCmd = &cobra.Command{
	Use:   "intersect [flags] polynomials",
	Short: "intersect an ideal with a subring.",
	Long: `Compute the reduced Gröbner basis of the intersection of an ideal with the
	 subring over its trailing variables.  For example, intersecting "(x*y - 1, x^2 + y)"
	 in QQ(x,y) with QQ(y) eliminates x.  Only commutative rings are supported.`,
	Run: func(cmd *cobra.Command, args []string) {
		runDomainAgnosticCmd(cmd, args, intersectCmds)
	},
}

// Available instances
var intersectCmds = domainAgnostic(runIntersectCmd[*big.Int], runIntersectCmd[*big.Rat],
	runIntersectCmd[coeff.Element], runIntersectCmd[fr.Element])

func runIntersectCmd[C any](cmd *cobra.Command, args []string, spec poly.RingSpec) {
	var (
		ring    = getRing[C](spec)
		gens    = parsePolynomials(ring, readInput(cmd, args))
		subspec poly.RingSpec
		err     error
	)
	//
	if subspec, err = poly.ParseRingSpec(GetString(cmd, "subring")); err != nil {
		exitWithError(err)
	} else if subspec.Domain != spec.Domain {
		exitWithError(fmt.Errorf("%w: subring over %s in ring over %s", poly.ErrRingMismatch, subspec.Domain,
			spec.Domain))
	}
	//
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	//
	res, err := groebner.Intersect(ctx, gens, getRing[C](subspec))
	if err != nil {
		exitWithError(err)
	}
	//
	writePolynomials(os.Stdout, res, terminalWidth())
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(intersectCmd)
	intersectCmd.Flags().String("subring", "", "subring over trailing variables, e.g. \"QQ(y)\"")
	intersectCmd.MarkFlagRequired("subring")
}
