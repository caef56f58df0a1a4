// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package prefixcode

import (
	"cmp"
	"math"
	"slices"
	"strings"
)

// Entropy returns the per-byte Shannon entropy of text in bits.
func Entropy(text string) float64 {
	return CountBytes(text).Entropy()
}

// BlockLength returns the Shannon-Fano block length for text: floor(2^H),
// where H is the per-byte entropy of text. The result is never less than 1;
// in particular it is 1 for empty text and for text with a single distinct byte.
func BlockLength(text string) int {
	// For "abc", 2^H evaluates to 2.9999999999999996; the bias keeps
	// such values from flooring to the integer below.
	n := int(math.Floor(math.Pow(2, Entropy(text)) + 1e-9))
	return max(n, 1)
}

// SplitBlocks splits text into consecutive blocks of n bytes.
// If the last block is short, it is padded on the right with spaces.
// The result has ceil(len(text)/n) blocks.
func SplitBlocks(text string, n int) ([]Symbol, error) {
	if n <= 0 {
		return nil, ErrBlockLength
	}
	blocks := make([]Symbol, 0, (len(text)+n-1)/n)
	for i := 0; i < len(text); i += n {
		b := text[i:min(i+n, len(text))]
		if len(b) < n {
			b += strings.Repeat(" ", n-len(b))
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

// A Block is a symbol paired with its empirical probability.
type Block struct {
	Symbol      Symbol
	Probability float64
}

// Blocks returns one Block per symbol of ft, with probability count/total,
// sorted for partitioning: by descending probability, then by symbol.
func Blocks(ft FrequencyTable) []Block {
	total := ft.Total()
	if total == 0 {
		return nil
	}
	blocks := make([]Block, 0, len(ft))
	for _, s := range ft.Symbols() {
		blocks = append(blocks, Block{s, float64(ft[s]) / float64(total)})
	}
	sortBlocks(blocks)
	return blocks
}

func sortBlocks(blocks []Block) {
	slices.SortStableFunc(blocks, func(a, b Block) int {
		if c := cmp.Compare(b.Probability, a.Probability); c != 0 {
			return c
		}
		return strings.Compare(a.Symbol, b.Symbol)
	})
}
