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
package source

import (
	"fmt"
	"os"
)

// ReadFile reads a single source file from disk.
func ReadFile(filename string) (*File, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	//
	return NewSourceFile(filename, bytes), nil
}

// File represents a piece of source text, such as a polynomial given on the
// command line or a file of generators read from disk.  Contents are held as
// runes so that spans index characters rather than bytes.
type File struct {
	filename string
	contents []rune
}

// NewSourceFile constructs a new source file from a given byte array.
func NewSourceFile(filename string, bytes []byte) *File {
	return &File{filename, []rune(string(bytes))}
}

// NewSourceString constructs an anonymous source file from a string.
func NewSourceString(text string) *File {
	return &File{"", []rune(text)}
}

// Filename returns the filename associated with this source file, which is
// empty for text not read from disk.
func (s *File) Filename() string {
	return s.filename
}

// Contents returns the contents of this source file.
func (s *File) Contents() []rune {
	return s.contents
}

// Text returns the text covered by a given span of this file.
func (s *File) Text(span Span) string {
	end := min(span.end, len(s.contents))
	//
	return string(s.contents[span.start:end])
}

// SyntaxError constructs a syntax error over a given span of this file.
func (s *File) SyntaxError(span Span, msg string) *SyntaxError {
	return &SyntaxError{s, span, msg}
}

// SyntaxErrorf constructs a syntax error with a formatted message.
func (s *File) SyntaxErrorf(span Span, format string, args ...any) *SyntaxError {
	return &SyntaxError{s, span, fmt.Sprintf(format, args...)}
}

// FindFirstEnclosingLine determines the first line in this source file which
// encloses the start of a span.  If the span starts beyond the end of the
// file, then the last line is returned.
func (s *File) FindFirstEnclosingLine(span Span) Line {
	var (
		num   = 1
		start = 0
	)
	//
	for i := 0; i < len(s.contents); i++ {
		if i == span.start {
			break
		} else if s.contents[i] == '\n' {
			num++
			start = i + 1
		}
	}
	//
	end := start
	for end < len(s.contents) && s.contents[end] != '\n' {
		end++
	}
	//
	return Line{s.contents, Span{start, end}, num}
}

// Line identifies a single line within a source file.
type Line struct {
	text   []rune
	span   Span
	number int
}

// String returns the text of this line (without its terminator).
func (p *Line) String() string {
	return string(p.text[p.span.start:p.span.end])
}

// Number gets the line number, counting from 1.
func (p *Line) Number() int {
	return p.number
}

// Start returns the index of the first character of this line.
func (p *Line) Start() int {
	return p.span.start
}

// Length returns the number of characters in this line.
func (p *Line) Length() int {
	return p.span.Length()
}

// SyntaxError is a structured error which retains the span of the original
// text where it arose.
type SyntaxError struct {
	srcfile *File
	span    Span
	msg     string
}

// SourceFile returns the source file this error was reported against.
func (p *SyntaxError) SourceFile() *File {
	return p.srcfile
}

// Span returns the span of text on which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the message to be reported.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d:%s", p.span.start, p.span.end, p.msg)
}

// FirstEnclosingLine determines the first line of the source file to which
// this error is associated.
func (p *SyntaxError) FirstEnclosingLine() Line {
	return p.srcfile.FindFirstEnclosingLine(p.span)
}
