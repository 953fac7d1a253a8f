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

import "znkr.io/seqmatch/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// Context sets the number of equal elements to include before and after every group of changes
// returned by [Matcher.GroupedOpcodes]. The default is 3.
func Context(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Context = max(0, n)
		return config.Context
	}
}

// Junk classifies elements of the second sequence as junk. Junk elements never start a match, but
// matches are extended to include junk elements that are adjacent to them.
//
// The element type T must be the element type of the [Matcher] the option is used with. By
// default, no element is junk. A nil isJunk is an invalid argument.
func Junk[T comparable](isJunk func(T) bool) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Junk = isJunk
		return config.Junk
	}
}
