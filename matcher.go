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

package seqmatch

import (
	"fmt"
	"reflect"
	"slices"
	"unsafe"

	"znkr.io/seqmatch/internal/config"
	"znkr.io/seqmatch/internal/impl"
	"znkr.io/seqmatch/internal/index"
)

// Matcher compares two sequences a and b.
//
// Results are computed on demand and cached until one of the sequences is replaced. The index
// over b is only rebuilt if b is replaced. To compare many sequences against the same b, use
// [Matcher.SetFirst].
//
// A Matcher is not safe for concurrent use.
type Matcher[T comparable] struct {
	a, b   []T
	isJunk func(T) bool
	cfg    config.Config
	idx    *index.Index[T]

	blocks []Match // nil if not computed yet
	codes  []Opcode
	coded  bool // codes is valid
}

// New creates a matcher for a and b. A nil slice is an empty sequence.
//
// The following options are supported: [Junk], [Context]
//
// New returns an error wrapping [ErrInvalidArgument] if the junk predicate is nil or doesn't
// accept elements of type T.
func New[T comparable](a, b []T, opts ...Option) (*Matcher[T], error) {
	cfg := config.FromOptions(opts, config.Junk|config.Context)

	var isJunk func(T) bool
	if cfg.Junk != nil {
		fn, ok := cfg.Junk.(func(T) bool)
		switch {
		case !ok:
			return nil, fmt.Errorf("%w: junk predicate of type %T for elements of type %v", ErrInvalidArgument, cfg.Junk, reflect.TypeFor[T]())
		case fn == nil:
			return nil, fmt.Errorf("%w: nil junk predicate", ErrInvalidArgument)
		}
		isJunk = fn
	}

	return &Matcher[T]{
		a:      a,
		b:      b,
		isJunk: isJunk,
		cfg:    cfg,
		idx:    index.Build(b, isJunk),
	}, nil
}

// SetSeqs replaces both sequences, see [Matcher.SetFirst] and [Matcher.SetSecond].
func (m *Matcher[T]) SetSeqs(a, b []T) {
	m.SetFirst(a)
	m.SetSecond(b)
}

// SetFirst replaces a. Setting the same slice again (same backing array and length) keeps all
// cached results, the slice must not have been modified in place in that case.
func (m *Matcher[T]) SetFirst(a []T) {
	if same(a, m.a) {
		return
	}
	m.a = a
	m.invalidate()
}

// SetSecond replaces b and rebuilds the index over b. Setting the same slice again (same backing
// array and length) keeps all cached results, the slice must not have been modified in place in
// that case.
func (m *Matcher[T]) SetSecond(b []T) {
	if same(b, m.b) {
		return
	}
	m.b = b
	m.idx = index.Build(b, m.isJunk)
	m.invalidate()
}

func (m *Matcher[T]) invalidate() {
	m.blocks = nil
	m.codes, m.coded = nil, false
}

func same[T any](x, y []T) bool {
	return len(x) == len(y) && unsafe.SliceData(x) == unsafe.SliceData(y)
}

// FindLongestMatch finds the longest matching block in a[alo:ahi] and b[blo:bhi].
//
// If there are multiple blocks of maximal size, it returns the one that starts earliest in a and,
// of all those, the one that starts earliest in b. If there's no match, it returns
// Match{alo, blo, 0}.
//
// Junk elements never start a match, but a match is extended by the junk elements adjacent to it.
//
// FindLongestMatch returns an error wrapping [ErrIndexOutOfRange] if the bounds are inverted or
// outside of a and b. It doesn't use or change cached results.
func (m *Matcher[T]) FindLongestMatch(alo, ahi, blo, bhi int) (Match, error) {
	if alo < 0 || alo > ahi || ahi > len(m.a) || blo < 0 || blo > bhi || bhi > len(m.b) {
		return Match{}, fmt.Errorf("%w: a[%d:%d] b[%d:%d] with len(a) = %d, len(b) = %d", ErrIndexOutOfRange, alo, ahi, blo, bhi, len(m.a), len(m.b))
	}
	return Match(impl.FindLongestMatch(m.a, m.b, m.idx, alo, ahi, blo, bhi)), nil
}

// MatchingBlocks returns all non-overlapping matching blocks of a and b, ordered by position.
//
// Adjacent blocks are merged, that is, for two consecutive blocks x and y, either x.I+x.Size < y.I
// or x.J+x.Size < y.J. The last block is always Match{len(a), len(b), 0}, it's the only block with
// Size == 0.
func (m *Matcher[T]) MatchingBlocks() []Match {
	return slices.Clone(m.matchingBlocks())
}

func (m *Matcher[T]) matchingBlocks() []Match {
	if m.blocks == nil {
		blocks := impl.MatchingBlocks(m.a, m.b, m.idx)
		m.blocks = make([]Match, len(blocks))
		for i, b := range blocks {
			m.blocks[i] = Match(b)
		}
	}
	return m.blocks
}

// Opcodes returns the operations necessary to transform a into b.
//
// The opcodes are ordered and cover a and b without gaps: The first opcode starts at 0 in a and b,
// every following opcode starts where the previous one ended and the last one ends at len(a) and
// len(b). If a and b are both empty, the result is empty.
func (m *Matcher[T]) Opcodes() []Opcode {
	return slices.Clone(m.opcodes())
}

func (m *Matcher[T]) opcodes() []Opcode {
	if !m.coded {
		m.codes, m.coded = opcodes(m.matchingBlocks()), true
	}
	return m.codes
}

// GroupedOpcodes returns the opcodes grouped into clusters of changes. Each group starts and ends
// with up to n equal elements of context, where n is set using [Context]. Context passed to
// GroupedOpcodes takes precedence over context passed to [New].
//
// If a and b are identical, the output has length zero.
//
// The following option is supported: [Context]
func (m *Matcher[T]) GroupedOpcodes(opts ...Option) [][]Opcode {
	cfg := config.Apply(m.cfg, opts, config.Context)
	return slices.Collect(groups(m.opcodes(), cfg.Context))
}

// Ratio returns a measure of the similarity of a and b in the range [0, 1]. It's 2*M/T where T is
// the total number of elements in a and b and M is the number of matching elements. If both are
// empty, the ratio is 1.
func (m *Matcher[T]) Ratio() float64 {
	var matches int
	for _, b := range m.matchingBlocks() {
		matches += b.Size
	}
	if total := len(m.a) + len(m.b); total > 0 {
		return 2 * float64(matches) / float64(total)
	}
	return 1
}
