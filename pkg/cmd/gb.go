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
	"github.com/consensys/go-groebner/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var gbCmd = &cobra.Command{
	Use:   "gb [flags] polynomials",
	Short: "compute the reduced Gröbner basis of an ideal.",
	Long: `Compute the reduced Gröbner basis of the ideal generated by a given list of
	 polynomials, such as "(x*y - 1, x^2 + y)".  The basis is printed in the same notation.`,
	Run: func(cmd *cobra.Command, args []string) {
		runDomainAgnosticCmd(cmd, args, gbCmds)
	},
}

// Available instances
var gbCmds = domainAgnostic(runGbCmd[*big.Int], runGbCmd[*big.Rat], runGbCmd[coeff.Element], runGbCmd[fr.Element])

func runGbCmd[C any](cmd *cobra.Command, args []string, spec poly.RingSpec) {
	var (
		ring    = getRing[C](spec)
		gens    = parsePolynomials(ring, readInput(cmd, args))
		timings util.Timings
		stats   groebner.Stats
		mode    = getMode(cmd).WithStats(&stats)
	)
	//
	if GetFlag(cmd, "stats") {
		mode = mode.WithHooks(groebner.Hooks{
			PairProcessed: func(e groebner.PairEvent) { timings.Add(e.Duration) },
		})
	}
	//
	gb := computeGB(gens, mode)
	//
	writePolynomials(os.Stdout, gb, terminalWidth())
	//
	if GetFlag(cmd, "stats") {
		fmt.Println(stats.String())
		//
		if summary, err := timings.Summary(); err == nil {
			fmt.Printf("reductions: %s\n", summary)
		}
	}
	//
	if GetFlag(cmd, "fingerprint") {
		fmt.Printf("fingerprint: %s\n", fingerprint(gb))
	}
}

// getMode determines the mode of computation from --workers and --side.
func getMode(cmd *cobra.Command) groebner.Mode {
	var mode = groebner.Sequential()
	//
	if cmd.Flags().Changed("workers") {
		mode = groebner.Parallel(GetUint(cmd, "workers"))
	}
	//
	return mode.WithSide(getSide(cmd))
}

// computeGB computes a reduced Gröbner basis, where an interrupt cancels the
// computation.
func computeGB[C any](gens []poly.Polynomial[C], mode groebner.Mode) []poly.Polynomial[C] {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	//
	perf := util.NewPerfStats()
	gb, err := groebner.GB(ctx, gens, mode)
	//
	perf.Log(fmt.Sprintf("%s GB using %d workers", mode.Side(), mode.Workers()))
	//
	if err != nil {
		exitWithError(err)
	}
	//
	log.Debugf("basis of %d elements from %d generators", len(gb), len(gens))
	//
	return gb
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(gbCmd)
	gbCmd.Flags().UintP("workers", "w", 0, "use parallel engine with given number of workers (0 for one per CPU)")
	gbCmd.Flags().Bool("stats", false, "report statistics of the computation")
	gbCmd.Flags().Bool("fingerprint", false, "report a fingerprint (blake3 hash) of the basis")
}
