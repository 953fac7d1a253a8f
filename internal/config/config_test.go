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

package config_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/seqmatch"
	"znkr.io/seqmatch/internal/config"
)

func TestFromOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []config.Option
		want config.Config
	}{
		{
			name: "default",
			opts: nil,
			want: config.Default,
		},
		{
			name: "context",
			opts: []config.Option{
				seqmatch.Context(5),
			},
			want: config.Config{
				Context: 5,
			},
		},
		{
			name: "negative-context",
			opts: []config.Option{
				seqmatch.Context(-1),
			},
			want: config.Config{
				Context: 0,
			},
		},
		{
			name: "context-override",
			opts: []config.Option{
				seqmatch.Context(5),
				seqmatch.Context(1),
			},
			want: config.Config{
				Context: 1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.FromOptions(tt.opts, config.Context|config.Junk)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FromOptions(...) result are different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestFromOptionsJunk(t *testing.T) {
	isJunk := func(s string) bool { return s == " " }
	got := config.FromOptions([]config.Option{seqmatch.Junk(isJunk)}, config.Junk)
	if got.Context != config.Default.Context {
		t.Errorf("FromOptions(Junk(...)).Context = %v, want %v", got.Context, config.Default.Context)
	}
	fn, ok := got.Junk.(func(string) bool)
	if !ok {
		t.Fatalf("FromOptions(Junk(...)).Junk has type %T, want func(string) bool", got.Junk)
	}
	if diff := cmp.Diff([]bool{true, false}, []bool{fn(" "), fn("x")}); diff != "" {
		t.Errorf("junk predicate results are different [-want,+got]:\n%s", diff)
	}
}

func TestFromOptionsNotAllowed(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("FromOptions(...) did not panic")
		}
		if got, want := r, "Option seqmatch.Context not allowed here"; got != want {
			t.Errorf("FromOptions(...) panicked with %q, want %q", got, want)
		}
	}()
	config.FromOptions([]config.Option{seqmatch.Context(1)}, config.Junk)
}
