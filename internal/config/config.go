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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// seqmatch.Option.
package config

// Config collects all configurable parameters for the matcher and the functions built on top of
// it.
type Config struct {
	// Context is the number of equal elements to include before and after each group returned by
	// grouped opcodes.
	Context int

	// Junk is the junk predicate for elements of the second sequence. It's stored untyped
	// because options are not generic, it must be a func(T) bool for the element type T of the
	// matcher it's applied to. A nil value means that no element is junk.
	Junk any
}

// Default is the default configuration.
var Default = Config{
	Context: 3,
	Junk:    nil,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	Context Flag = 1 << iota
	Junk
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	return Apply(Default, opts, allowed)
}

// Apply applies a set of options on top of an existing configuration.
func Apply(cfg Config, opts []Option, allowed Flag) Config {
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Context:
		return "seqmatch.Context"
	case Junk:
		return "seqmatch.Junk"
	default:
		panic("never reached")
	}
}
