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

// Package seqmatch provides functions to compare two slices by finding the longest runs of
// elements they have in common.
//
// The main type is [Matcher], which holds two sequences a and b and computes the [Match]es they
// share and the [Opcode]s necessary to transform a into b. The algorithm is the one used by
// Python's difflib.SequenceMatcher: Find the longest contiguous matching run, then recursively do
// the same to the left and to the right of it. This doesn't yield a minimal diff, but it tends to
// yield diffs that look right to people.
//
// Elements of the second sequence can be classified as junk using [Junk]. Junk elements never start
// a match, but a match is extended across junk elements adjacent to it. There is no automatic
// junk detection.
//
// Performance: Finding the longest match in a window is linear in the number of pairs of equal
// elements in that window. The worst case is quadratic (e.g. if all elements are the same) and the
// worst case for all matches is cubic. Callers working with untrusted input should limit its size.
//
// Note: For a line-by-line comparison of text, please see [znkr.io/seqmatch/textdiff].
//
// [znkr.io/seqmatch/textdiff]: https://pkg.go.dev/znkr.io/seqmatch/textdiff
package seqmatch
