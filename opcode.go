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
	"iter"
	"slices"
)

// Match describes a run of matching elements: a[I:I+Size] == b[J:J+Size].
type Match struct {
	I, J int // Start position in a and b.
	Size int // Length of the run.
}

// Tag describes the kind of an [Opcode].
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Tag
type Tag int

const (
	Equal   Tag = iota // a[I1:I2] == b[J1:J2]
	Replace            // a[I1:I2] should be replaced by b[J1:J2]
	Delete             // a[I1:I2] should be deleted, J1 == J2
	Insert             // b[J1:J2] should be inserted at a[I1:I1], I1 == I2
)

// Opcode describes how to turn a[I1:I2] into b[J1:J2].
type Opcode struct {
	Tag    Tag
	I1, I2 int // Start and end position in a.
	J1, J2 int // Start and end position in b.
}

func (op Opcode) String() string {
	return fmt.Sprintf("%v a[%d:%d] b[%d:%d]", op.Tag, op.I1, op.I2, op.J1, op.J2)
}

// opcodes fills the gaps between consecutive blocks with edits. blocks must end with the
// sentinel block.
func opcodes(blocks []Match) []Opcode {
	var out []Opcode
	i, j := 0, 0
	for _, m := range blocks {
		switch {
		case i < m.I && j < m.J:
			out = append(out, Opcode{Replace, i, m.I, j, m.J})
		case i < m.I:
			out = append(out, Opcode{Delete, i, m.I, j, j})
		case j < m.J:
			out = append(out, Opcode{Insert, i, i, j, m.J})
		}
		i, j = m.I+m.Size, m.J+m.Size
		if m.Size > 0 {
			out = append(out, Opcode{Equal, m.I, i, m.J, j})
		}
	}
	return out
}

// groups clusters codes into groups of changes with up to n equal elements of context before and
// after each group. Equal runs longer than 2n split groups.
func groups(codes []Opcode, n int) iter.Seq[[]Opcode] {
	return func(yield func([]Opcode) bool) {
		if len(codes) == 0 {
			return
		}
		codes := slices.Clone(codes)

		// Trim leading and trailing context.
		if c := &codes[0]; c.Tag == Equal {
			c.I1, c.J1 = max(c.I1, c.I2-n), max(c.J1, c.J2-n)
		}
		if c := &codes[len(codes)-1]; c.Tag == Equal {
			c.I2, c.J2 = min(c.I2, c.I1+n), min(c.J2, c.J1+n)
		}

		var group []Opcode
		for _, c := range codes {
			// End the current group if there's enough context, the remaining context starts
			// the next group.
			if c.Tag == Equal && c.I2-c.I1 > 2*n {
				group = append(group, Opcode{Equal, c.I1, min(c.I2, c.I1+n), c.J1, min(c.J2, c.J1+n)})
				if !yield(group) {
					return
				}
				group = nil
				c.I1, c.J1 = max(c.I1, c.I2-n), max(c.J1, c.J2-n)
			}
			group = append(group, c)
		}
		if len(group) > 0 && !(len(group) == 1 && group[0].Tag == Equal) {
			yield(group)
		}
	}
}
