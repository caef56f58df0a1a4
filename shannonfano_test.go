// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package prefixcode

import (
	"maps"
	"math/rand/v2"
	"strconv"
	"testing"
)

func TestPartition(t *testing.T) {
	for _, test := range []struct {
		name   string
		blocks []Block
		want   CodeTable
	}{
		{
			"empty",
			nil,
			CodeTable{},
		},
		{
			"single",
			[]Block{{"ab", 1}},
			CodeTable{"ab": "0"},
		},
		{
			"skewed",
			// Given out of order; Partition sorts.
			[]Block{{"C", 0.2}, {"A", 0.4}, {"D", 0.1}, {"B", 0.3}},
			CodeTable{"A": "0", "B": "10", "C": "110", "D": "111"},
		},
		{
			"uniform",
			[]Block{{"w", 0.25}, {"x", 0.25}, {"y", 0.25}, {"z", 0.25}},
			CodeTable{"w": "00", "x": "01", "y": "10", "z": "11"},
		},
		{
			// Split by mass, not count: one heavy block against three light ones.
			"heavy",
			[]Block{{"h", 0.7}, {"i", 0.15}, {"j", 0.1}, {"k", 0.05}},
			CodeTable{"h": "0", "i": "10", "j": "110", "k": "111"},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got := Partition(test.blocks)
			if !maps.Equal(got, test.want) {
				t.Errorf("got %v, want %v", got, test.want)
			}
		})
	}
}

func TestPartitionDoesNotModifyInput(t *testing.T) {
	blocks := []Block{{"b", 0.25}, {"a", 0.75}}
	Partition(blocks)
	if blocks[0].Symbol != "b" {
		t.Errorf("input reordered: %v", blocks)
	}
}

func TestPartitionRandom(t *testing.T) {
	for range 200 {
		n := 1 + rand.IntN(80)
		ft := make(FrequencyTable, n)
		for i := range n {
			ft["blk"+strconv.Itoa(i)] = 1 + rand.IntN(50)
		}
		code := Partition(Blocks(ft))
		if len(code) != n {
			t.Fatalf("got %d codes for %d blocks", len(code), n)
		}
		if err := code.Validate(); err != nil {
			t.Fatalf("%v: %v", ft, err)
		}
		if got, want := Partition(Blocks(ft)).EncodedLen(ft), code.EncodedLen(ft); got != want {
			t.Fatalf("rebuild: total length %d, want %d", got, want)
		}
	}
}
