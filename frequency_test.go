// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package prefixcode

import (
	"maps"
	"slices"
	"testing"
)

func TestCount(t *testing.T) {
	got := Count([]Symbol{"ab", "cd", "ab"})
	want := FrequencyTable{"ab": 2, "cd": 1}
	if !maps.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got.Total() != 3 {
		t.Errorf("total: got %d, want 3", got.Total())
	}
	if got := Count(nil); len(got) != 0 {
		t.Errorf("empty: got %v", got)
	}
}

func TestCountBytes(t *testing.T) {
	got := CountBytes("b\xffa\xffb\xff")
	want := FrequencyTable{"a": 1, "b": 2, "\xff": 3}
	if !maps.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if syms, want := got.Symbols(), []Symbol{"a", "b", "\xff"}; !slices.Equal(syms, want) {
		t.Errorf("symbols: got %q, want %q", syms, want)
	}
}

func TestCounter(t *testing.T) {
	var c Counter
	c.Write([]byte("hello, "))
	c.Write([]byte("world"))
	if c.Len() != 12 {
		t.Errorf("len: got %d, want 12", c.Len())
	}
	got := c.Table()
	if got["l"] != 3 || got["o"] != 2 || got[" "] != 1 {
		t.Errorf("got %v", got)
	}
	if got.Total() != c.Len() {
		t.Errorf("total %d != len %d", got.Total(), c.Len())
	}
}
