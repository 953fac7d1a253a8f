// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package textdiff provides functions to efficiently compare text line by line.
package textdiff

import (
	"fmt"
	"strings"

	"znkr.io/seqmatch"
	"znkr.io/seqmatch/internal/byteview"
	"znkr.io/seqmatch/internal/config"
)

// Opcodes compares the lines in x and y and returns the operations necessary to transform x into y.
// The opcodes index into the lines as returned by [Lines].
//
// Lines include their newline character, a last line without a newline is different from the same
// line with a newline.
//
// The following option is supported: [seqmatch.Junk] with a func(string) bool that is called with
// the lines of y, e.g. [BlankLine].
func Opcodes[T string | []byte](x, y T, opts ...seqmatch.Option) ([]seqmatch.Opcode, error) {
	m, err := newMatcher(x, y, opts, config.Junk)
	if err != nil {
		return nil, err
	}
	return m.Opcodes(), nil
}

// GroupedOpcodes compares the lines in x and y and returns the operations necessary to transform x
// into y grouped into clusters of changes with surrounding context, see
// [seqmatch.Matcher.GroupedOpcodes].
//
// If x and y are identical, the output has length zero.
//
// The following options are supported: [seqmatch.Junk], [seqmatch.Context]
func GroupedOpcodes[T string | []byte](x, y T, opts ...seqmatch.Option) ([][]seqmatch.Opcode, error) {
	m, err := newMatcher(x, y, opts, config.Junk|config.Context)
	if err != nil {
		return nil, err
	}
	return m.GroupedOpcodes(), nil
}

// Lines splits in into lines the same way [Opcodes] does. The lines share memory with in.
func Lines[T string | []byte](in T) []T {
	views := byteview.SplitLines(byteview.From(in))
	lines := make([]T, len(views))
	for i, v := range views {
		lines[i] = byteview.To[T](v)
	}
	return lines
}

// BlankLine reports if line consists only of whitespace. It can be used as a junk predicate.
func BlankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}

func newMatcher[T string | []byte](x, y T, opts []seqmatch.Option, allowed config.Flag) (*seqmatch.Matcher[byteview.ByteView], error) {
	cfg := config.FromOptions(opts, allowed)

	// Lines are compared as byte views, translate the options to work on them.
	mopts := []seqmatch.Option{seqmatch.Context(cfg.Context)}
	if cfg.Junk != nil {
		isJunk, ok := cfg.Junk.(func(string) bool)
		if !ok || isJunk == nil {
			return nil, fmt.Errorf("%w: junk predicate of type %T, want a non-nil func(string) bool", seqmatch.ErrInvalidArgument, cfg.Junk)
		}
		mopts = append(mopts, seqmatch.Junk(func(line byteview.ByteView) bool {
			return isJunk(line.String())
		}))
	}

	xlines := byteview.SplitLines(byteview.From(x))
	ylines := byteview.SplitLines(byteview.From(y))
	return seqmatch.New(xlines, ylines, mopts...)
}
