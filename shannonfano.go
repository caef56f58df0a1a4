// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package prefixcode

import (
	"math"
	"slices"
)

// Partition builds a Shannon-Fano code for blocks, whose symbols must be distinct.
//
// The blocks are sorted by descending probability (ties by symbol) and then split
// recursively: each range is cut at the index where the cumulative probability of
// the first part comes closest to half the probability of the range, the first
// part extends its code with '0' and the second with '1'. A range of one block
// takes the code built so far.
//
// The parts are balanced by probability mass, not by count. When two cut points
// are equally close, the earlier one is used.
//
// An empty blocks yields an empty table. A single block gets the code "0".
func Partition(blocks []Block) CodeTable {
	codes := make(CodeTable, len(blocks))
	switch len(blocks) {
	case 0:
		return codes
	case 1:
		codes[blocks[0].Symbol] = "0"
		return codes
	}
	sorted := slices.Clone(blocks)
	sortBlocks(sorted)
	partition(sorted, nil, codes)
	log.Debugf("shannon-fano: %d blocks", len(sorted))
	return codes
}

func partition(blocks []Block, prefix []byte, codes CodeTable) {
	if len(blocks) == 1 {
		codes[blocks[0].Symbol] = string(prefix)
		return
	}
	i := splitIndex(blocks)
	partition(blocks[:i], append(prefix, '0'), codes)
	partition(blocks[i:], append(prefix, '1'), codes)
}

// splitIndex returns the i in [1, len(blocks)-1] that minimizes
// |total/2 - (p[0] + ... + p[i-1])|.
func splitIndex(blocks []Block) int {
	var total float64
	for _, b := range blocks {
		total += b.Probability
	}
	half := total / 2
	best, bestDiff := 1, math.Inf(1)
	var cum float64
	for i := 1; i < len(blocks); i++ {
		cum += blocks[i-1].Probability
		if d := math.Abs(half - cum); d < bestDiff {
			best, bestDiff = i, d
		}
	}
	return best
}
