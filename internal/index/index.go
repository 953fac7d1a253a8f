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

// Package index provides the element index over the second sequence of a matcher.
package index

// Index maps every element of a sequence to the ascending positions it occurs at.
//
// Elements classified as junk are tracked separately and don't appear in the position lists,
// they can never seed a match.
type Index[T comparable] struct {
	pos  map[T][]int
	junk map[T]struct{}
}

// Build creates the index for b with a single scan. If isJunk is nil, no element is junk.
func Build[T comparable](b []T, isJunk func(T) bool) *Index[T] {
	idx := &Index[T]{
		pos: make(map[T][]int, len(b)),
	}
	for j, e := range b {
		idx.pos[e] = append(idx.pos[e], j)
	}

	if isJunk == nil {
		return idx
	}
	for e := range idx.pos {
		if isJunk(e) {
			if idx.junk == nil {
				idx.junk = make(map[T]struct{})
			}
			idx.junk[e] = struct{}{}
		}
	}
	for e := range idx.junk {
		delete(idx.pos, e)
	}
	return idx
}

// Positions returns the ascending positions of v. The result must not be modified.
func (idx *Index[T]) Positions(v T) []int { return idx.pos[v] }

// IsJunk reports if v is classified as junk.
func (idx *Index[T]) IsJunk(v T) bool {
	_, ok := idx.junk[v]
	return ok
}
