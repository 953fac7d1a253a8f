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

import "errors"

var (
	// ErrInvalidArgument is returned when a [Matcher] is constructed with invalid arguments.
	ErrInvalidArgument = errors.New("seqmatch: invalid argument")

	// ErrIndexOutOfRange is returned when the bounds passed to [Matcher.FindLongestMatch] are
	// inverted or outside of the sequences.
	ErrIndexOutOfRange = errors.New("seqmatch: index out of range")
)
