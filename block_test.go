// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package prefixcode

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func TestBlockLength(t *testing.T) {
	for _, test := range []struct {
		text string
		want int
	}{
		{"", 1},
		{"aaaa", 1}, // entropy 0
		{"aabb", 2},
		{"abc", 3},
		{"abcd", 4},
		{"aaab", 1}, // 2^0.811 = 1.75
		{"abcdefgh", 8},
	} {
		if got := BlockLength(test.text); got != test.want {
			t.Errorf("%q: got %d, want %d", test.text, got, test.want)
		}
	}
}

func TestEntropy(t *testing.T) {
	for _, test := range []struct {
		text string
		want float64
	}{
		{"", 0},
		{"zzz", 0},
		{"ab", 1},
		{"abcd", 2},
		{"aaab", 0.8112781244591328},
	} {
		if got := Entropy(test.text); math.Abs(got-test.want) > 1e-12 {
			t.Errorf("%q: got %g, want %g", test.text, got, test.want)
		}
	}
}

func TestSplitBlocks(t *testing.T) {
	for _, test := range []struct {
		text string
		n    int
		want []Symbol
	}{
		{"", 3, []Symbol{}},
		{"abcdef", 2, []Symbol{"ab", "cd", "ef"}},
		{"abcde", 2, []Symbol{"ab", "cd", "e "}},
		{"a", 4, []Symbol{"a   "}},
		{"abc", 1, []Symbol{"a", "b", "c"}},
	} {
		got, err := SplitBlocks(test.text, test.n)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(got, test.want) {
			t.Errorf("%q/%d: got %q, want %q", test.text, test.n, got, test.want)
		}
		if want := (len(test.text) + test.n - 1) / test.n; len(got) != want {
			t.Errorf("%q/%d: got %d blocks, want %d", test.text, test.n, len(got), want)
		}
	}
}

func TestSplitBlocksBadLength(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := SplitBlocks("abc", n); !errors.Is(err, ErrBlockLength) {
			t.Errorf("%d: got %v, want ErrBlockLength", n, err)
		}
	}
}

func TestBlocks(t *testing.T) {
	got := Blocks(Count([]Symbol{"xy", "ab", "xy", "cd", "xy", "ab"}))
	want := []Block{{"xy", 0.5}, {"ab", 2.0 / 6}, {"cd", 1.0 / 6}}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	var sum float64
	for _, b := range got {
		sum += b.Probability
	}
	if math.Abs(sum-1) > 1e-12 {
		t.Errorf("probabilities sum to %g", sum)
	}
	if got := Blocks(FrequencyTable{}); len(got) != 0 {
		t.Errorf("empty: got %v", got)
	}
}
