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
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/consensys/go-groebner/pkg/groebner"
	"github.com/consensys/go-groebner/pkg/poly"
	"github.com/consensys/go-groebner/pkg/util/source"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetUint gets an expected unsigned integer, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// getSide reads the side of ideal being worked with.
func getSide(cmd *cobra.Command) groebner.Side {
	side, err := groebner.ParseSide(GetString(cmd, "side"))
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return side
}

// readInput returns the source of the main input polynomials, which is either
// given on the command-line or read from the file given by --file.
func readInput(cmd *cobra.Command, args []string) *source.File {
	var filename = GetString(cmd, "file")
	//
	switch {
	case filename != "" && len(args) != 0:
		fmt.Println("input must be given either as an argument or a file, but not both")
		os.Exit(2)
	case filename != "":
		srcfile, err := source.ReadFile(filename)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		return srcfile
	case len(args) != 1:
		fmt.Println("expected exactly one input argument")
		os.Exit(2)
	}
	//
	return source.NewSourceString(args[0])
}

// parsePolynomials parses a list of polynomials, reporting any syntax errors
// and exiting if there are any.
func parsePolynomials[C any](ring *poly.Ring[C], srcfile *source.File) []poly.Polynomial[C] {
	polys, err := ring.ParsePolynomialFile(srcfile)
	if err != nil {
		exitWithError(err)
	}
	//
	return polys
}

// parsePolynomial parses exactly one polynomial, reporting any syntax errors
// and exiting if there are any.
func parsePolynomial[C any](ring *poly.Ring[C], srcfile *source.File) poly.Polynomial[C] {
	polys := parsePolynomials(ring, srcfile)
	//
	if len(polys) != 1 {
		fmt.Printf("expected one polynomial, found %d\n", len(polys))
		os.Exit(2)
	}
	//
	return polys[0]
}

// exitWithError reports an error, highlighting the location of syntax errors,
// and exits.
func exitWithError(err error) {
	var perr *poly.ParseError
	//
	if errors.As(err, &perr) {
		for _, e := range perr.Errors {
			printSyntaxError(&e)
		}
	} else {
		fmt.Println(err)
	}
	//
	os.Exit(3)
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(err *source.SyntaxError) {
	var (
		span     = err.Span()
		line     = err.FirstEnclosingLine()
		filename = err.SourceFile().Filename()
	)
	//
	if filename == "" {
		filename = "<input>"
	}
	// Print error + line number
	fmt.Printf("%s:%d: %s\n", filename, line.Number(), err.Message())
	// Print line
	fmt.Println(line.String())
	// Print indent (todo: account for tabs)
	fmt.Print(strings.Repeat(" ", max(0, span.Start()-line.Start())))
	// Print highlight
	fmt.Println(strings.Repeat("^", max(1, span.Length())))
}
