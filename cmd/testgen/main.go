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
package main

import (
	"fmt"
	"math/big"
	"math/rand/v2"
	"os"
	"path"
	"strings"

	"github.com/consensys/go-groebner/pkg/cmd"
	"github.com/consensys/go-groebner/pkg/coeff"
	"github.com/consensys/go-groebner/pkg/poly"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Uint("size", 3, "Size of generated system (e.g. number of variables)")
	rootCmd.Flags().Uint64("seed", 1, "Seed for random systems")
	rootCmd.Flags().Uint("degree", 2, "Maximum degree of random systems")
	rootCmd.Flags().String("dir", "testdata", "Output directory")
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "testgen model",
	Short: "Test generation utility for go-groebner.",
	Run: func(c *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(c.UsageString())
			os.Exit(1)
		}
		//
		var cfg TestGenConfig
		// Lookup model
		cfg.model = findModel(args[0])
		cfg.size = cmd.GetUint(c, "size")
		cfg.degree = cmd.GetUint(c, "degree")
		cfg.rng = rand.New(rand.NewPCG(getUint64(c, "seed"), 0))
		// Generate & write out
		ring, polys := cfg.model.Generator(cfg)
		writeTestSystem(path.Join(cmd.GetString(c, "dir"), cfg.filename()), ring, polys)
	},
}

// TestGenConfig encapsulates configuration related to test generation.
type TestGenConfig struct {
	model  Model
	size   uint
	degree uint
	rng    *rand.Rand
}

func (cfg *TestGenConfig) filename() string {
	return fmt.Sprintf("%s_%d.auto.polys", cfg.model.Name, cfg.size)
}

// GeneratorFn constructs a system of polynomials (along with their ring).
type GeneratorFn = func(TestGenConfig) (*poly.Ring[*big.Rat], []poly.Polynomial[*big.Rat])

// Model represents a family of polynomial systems.
type Model struct {
	// Name of the model in question
	Name string
	// Constructs an instance of the model
	Generator GeneratorFn
}

var models []Model = []Model{
	{"katsura", katsuraModel},
	{"cyclic", cyclicModel},
	{"random", randomModel},
}

func findModel(name string) Model {
	for _, m := range models {
		if m.Name == name {
			return m
		}
	}
	//
	panic(fmt.Sprintf("unknown model \"%s\"", name))
}

// Write a system as its ring description, followed by the list of generators.
func writeTestSystem(filename string, ring *poly.Ring[*big.Rat], polys []poly.Polynomial[*big.Rat]) {
	var sb strings.Builder
	//
	sb.WriteString(ring.String())
	sb.WriteString("\n(\n")
	//
	for i, p := range polys {
		sb.WriteString("  ")
		sb.WriteString(p.String())
		//
		if i+1 != len(polys) {
			sb.WriteString(",")
		}
		//
		sb.WriteString("\n")
	}
	//
	sb.WriteString(")\n")
	// Write the file
	if err := os.WriteFile(filename, []byte(sb.String()), 0644); err != nil {
		panic(err)
	}
	// Log what happened
	log.Infof("Wrote %s (%d polynomials)\n", filename, len(polys))
}

// ============================================================================
// Models
// ============================================================================

// Katsura system in variables u0..un, where u_l = u_-l and u_l = 0 for l > n.
func katsuraModel(cfg TestGenConfig) (*poly.Ring[*big.Rat], []poly.Polynomial[*big.Rat]) {
	var (
		n     = int(cfg.size)
		ring  = newRing("u", cfg.size+1)
		polys []poly.Polynomial[*big.Rat]
	)
	//
	u := func(l int) poly.Polynomial[*big.Rat] {
		if l < 0 {
			l = -l
		}
		//
		if l > n {
			return ring.Zero()
		}
		//
		return ring.Var(uint(l))
	}
	//
	for m := 0; m < n; m++ {
		sum := ring.Zero()
		//
		for l := -n; l <= n; l++ {
			sum = sum.Add(u(l).Mul(u(m - l)))
		}
		//
		polys = append(polys, sum.Sub(u(m)))
	}
	//
	linear := u(0).Sub(ring.One())
	//
	for l := 1; l <= n; l++ {
		linear = linear.Add(u(l).Scale(big.NewRat(2, 1)))
	}
	//
	return ring, append(polys, linear)
}

// Cyclic n-roots system in variables x0..x(n-1).
func cyclicModel(cfg TestGenConfig) (*poly.Ring[*big.Rat], []poly.Polynomial[*big.Rat]) {
	var (
		n     = cfg.size
		ring  = newRing("x", n)
		polys []poly.Polynomial[*big.Rat]
	)
	//
	for d := uint(1); d < n; d++ {
		sum := ring.Zero()
		//
		for i := range n {
			term := ring.One()
			//
			for j := range d {
				term = term.Mul(ring.Var((i + j) % n))
			}
			//
			sum = sum.Add(term)
		}
		//
		polys = append(polys, sum)
	}
	//
	product := ring.One()
	//
	for i := range n {
		product = product.Mul(ring.Var(i))
	}
	//
	return ring, append(polys, product.Sub(ring.One()))
}

// Random dense system of n polynomials in n variables, with small integer
// coefficients.
func randomModel(cfg TestGenConfig) (*poly.Ring[*big.Rat], []poly.Polynomial[*big.Rat]) {
	var (
		n     = cfg.size
		ring  = newRing("x", n)
		qq    = ring.Domain()
		polys []poly.Polynomial[*big.Rat]
	)
	//
	for range n {
		var terms []poly.Term[*big.Rat]
		//
		for range 2 * n {
			exps := make(poly.Monomial, n)
			// Distribute degree randomly across variables
			for range cfg.rng.UintN(cfg.degree + 1) {
				exps[cfg.rng.UintN(n)]++
			}
			//
			c := qq.FromInt64(cfg.rng.Int64N(19) - 9)
			terms = append(terms, poly.Term[*big.Rat]{Coeff: c, Exp: exps})
		}
		//
		p, err := ring.FromTerms(terms...)
		if err != nil {
			panic(err)
		}
		//
		polys = append(polys, p)
	}
	//
	return ring, polys
}

// ============================================================================
// Helpers
// ============================================================================

func newRing(prefix string, n uint) *poly.Ring[*big.Rat] {
	names := make([]string, n)
	//
	for i := range n {
		names[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	//
	return poly.NewRing(names, coeff.Rationals(), poly.GradedRevLex)
}

func getUint64(c *cobra.Command, flag string) uint64 {
	r, err := c.Flags().GetUint64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}
