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
	"io"
	"os"
	"strings"

	"github.com/zeebo/blake3"
	"golang.org/x/term"
)

// Indentation of polynomials within a printed list.
const indent = "  "

// terminalWidth returns the width of stdout, or zero when stdout is not a
// terminal (in which case output is not wrapped).
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	//
	if !term.IsTerminal(fd) {
		return 0
	}
	//
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	//
	return width
}

// writePolynomials writes a list of polynomials in the bracketed notation
// accepted by the parser, one per line.
func writePolynomials[T fmt.Stringer](out io.Writer, polys []T, width int) {
	fmt.Fprintln(out, "(")
	//
	for i, p := range polys {
		lines := wrap(p.String(), width-len(indent), indent)
		//
		for j, line := range lines {
			fmt.Fprint(out, indent, line)
			//
			if j+1 == len(lines) && i+1 != len(polys) {
				fmt.Fprint(out, ",")
			}
			//
			fmt.Fprintln(out)
		}
	}
	//
	fmt.Fprintln(out, ")")
}

// wrap breaks the rendering of a polynomial into lines of at most width
// characters (where possible), breaking only between terms.  Continuation
// lines are indented.  A non-positive width disables wrapping.
func wrap(text string, width int, prefix string) []string {
	var (
		fields = strings.Split(text, " ")
		lines  []string
		line   = fields[0]
	)
	// Remaining fields alternate between an operator and a term.
	for i := 1; i+1 < len(fields); i += 2 {
		chunk := fields[i] + " " + fields[i+1]
		//
		if width > 0 && len(line)+1+len(chunk) > width {
			lines = append(lines, line)
			line = prefix + chunk
		} else {
			line = line + " " + chunk
		}
	}
	//
	return append(lines, line)
}

// fingerprint returns a hash identifying a list of polynomials.  Since reduced
// bases are canonical, equal ideals have equal fingerprints.
func fingerprint[T fmt.Stringer](polys []T) string {
	var hasher = blake3.New()
	//
	for _, p := range polys {
		// Hash writes never fail
		_, _ = hasher.Write([]byte(p.String()))
		_, _ = hasher.Write([]byte{'\n'})
	}
	//
	return fmt.Sprintf("%x", hasher.Sum(nil))
}
