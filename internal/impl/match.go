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

// Package impl contains the matching algorithm: finding the longest common run in a window of
// both inputs and assembling all such runs into matching blocks.
//
// The algorithm is the one used by Python's difflib.SequenceMatcher (minus the automatic junk
// heuristic). It doesn't find a minimal diff, but it tends to find diffs that "look right" to
// people, because it anchors the diff around the longest contiguous matches first.
package impl

import "znkr.io/seqmatch/internal/index"

// Block describes a run of matching elements a[I:I+Size] == b[J:J+Size].
type Block struct {
	I, J, Size int
}

// FindLongestMatch finds the longest matching block in a[alo:ahi] and b[blo:bhi].
//
// If there are multiple blocks of maximal size, it returns the one that starts earliest in a and,
// of all those, the one that starts earliest in b. If there's no match, the result is
// Block{alo, blo, 0}.
//
// The bounds are not validated, idx must be the index of b.
func FindLongestMatch[T comparable](a, b []T, idx *index.Index[T], alo, ahi, blo, bhi int) Block {
	besti, bestj, bestsize := alo, blo, 0

	// j2len[j] is the length of the match ending in a[i-1] and b[j].
	j2len := make(map[int]int)
	next := make(map[int]int)
	for i := alo; i < ahi; i++ {
		for _, j := range idx.Positions(a[i]) {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			next[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len, next = next, j2len
		clear(next)
	}

	// Junk elements never seed a match, but they are allowed to extend it. First extend with
	// everything that's not junk and then with everything that's junk.
	if bestsize == 0 {
		return Block{alo, blo, 0}
	}
	for besti > alo && bestj > blo && !idx.IsJunk(b[bestj-1]) && a[besti-1] == b[bestj-1] {
		besti, bestj, bestsize = besti-1, bestj-1, bestsize+1
	}
	for besti+bestsize < ahi && bestj+bestsize < bhi && !idx.IsJunk(b[bestj+bestsize]) && a[besti+bestsize] == b[bestj+bestsize] {
		bestsize++
	}
	for besti > alo && bestj > blo && idx.IsJunk(b[bestj-1]) && a[besti-1] == b[bestj-1] {
		besti, bestj, bestsize = besti-1, bestj-1, bestsize+1
	}
	for besti+bestsize < ahi && bestj+bestsize < bhi && idx.IsJunk(b[bestj+bestsize]) && a[besti+bestsize] == b[bestj+bestsize] {
		bestsize++
	}

	return Block{besti, bestj, bestsize}
}
