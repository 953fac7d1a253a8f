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

package impl

import (
	"cmp"
	"slices"

	"znkr.io/seqmatch/internal/index"
)

type window struct {
	alo, ahi, blo, bhi int
}

// MatchingBlocks returns all matching blocks of a and b, ordered by their position in a and b.
//
// Adjacent blocks are merged and the last block is always the sentinel Block{len(a), len(b), 0}.
// idx must be the index of b.
func MatchingBlocks[T comparable](a, b []T, idx *index.Index[T]) []Block {
	var blocks []Block

	// Divide and conquer using an explicit stack: Find the longest match in a window, then repeat
	// for the windows left and right of it. The order in which windows are processed doesn't matter
	// because the blocks are sorted afterwards.
	stack := []window{{0, len(a), 0, len(b)}}
	for len(stack) > 0 {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		m := FindLongestMatch(a, b, idx, w.alo, w.ahi, w.blo, w.bhi)
		if m.Size == 0 {
			continue
		}
		blocks = append(blocks, m)
		if w.alo < m.I && w.blo < m.J {
			stack = append(stack, window{w.alo, m.I, w.blo, m.J})
		}
		if m.I+m.Size < w.ahi && m.J+m.Size < w.bhi {
			stack = append(stack, window{m.I + m.Size, w.ahi, m.J + m.Size, w.bhi})
		}
	}

	slices.SortFunc(blocks, func(x, y Block) int {
		if c := cmp.Compare(x.I, y.I); c != 0 {
			return c
		}
		return cmp.Compare(x.J, y.J)
	})

	// Merge adjacent blocks in place.
	out := blocks[:0]
	for _, m := range blocks {
		if n := len(out); n > 0 && out[n-1].I+out[n-1].Size == m.I && out[n-1].J+out[n-1].Size == m.J {
			out[n-1].Size += m.Size
			continue
		}
		out = append(out, m)
	}
	return append(out, Block{len(a), len(b), 0})
}
