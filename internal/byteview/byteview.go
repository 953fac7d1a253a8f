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

// Package byteview provides a mechanism to handle strings and []byte as immutable byte views.
//
// A ByteView is comparable, which makes it usable as an element for a matcher without copying
// []byte inputs to strings.
package byteview

import (
	"strings"
	"unsafe"
)

type ByteView struct {
	data string
}

func From[T string | []byte](in T) ByteView {
	switch in := any(in).(type) {
	case string:
		return ByteView{in}
	case []byte:
		return ByteView{unsafe.String(unsafe.SliceData(in), len(in))}
	}
	panic("never reached")
}

// To converts v back to the type it was created from. For []byte, the result shares memory with
// the input to [From].
func To[T string | []byte](v ByteView) T {
	switch any((*T)(nil)).(type) {
	case *string:
		return T(v.data)
	case *[]byte:
		return T(unsafe.Slice(unsafe.StringData(v.data), len(v.data)))
	}
	panic("never reached")
}

func (v ByteView) String() string { return v.data }

// SplitLines splits the input after every '\n'. The last line is missing the newline character if
// the input doesn't end in one. An empty input has no lines.
func SplitLines(v ByteView) []ByteView {
	s := v.data
	n := strings.Count(s, "\n")
	if len(s) > 0 && s[len(s)-1] != '\n' {
		n++
	}
	lines := make([]ByteView, 0, n)
	for len(s) > 0 {
		m := strings.IndexByte(s, '\n') + 1
		if m == 0 {
			m = len(s)
		}
		lines = append(lines, ByteView{s[:m]})
		s = s[m:]
	}
	return lines
}
