// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package prefixcode

import (
	"io"
	"maps"
	"math"
	"slices"
)

// A FrequencyTable maps each distinct symbol to the number of times it occurs.
type FrequencyTable map[Symbol]int

// Count returns the frequency table of syms.
func Count(syms []Symbol) FrequencyTable {
	ft := make(FrequencyTable)
	for _, s := range syms {
		ft[s]++
	}
	return ft
}

// CountBytes returns the frequency table of the bytes of text,
// each byte being a one-byte Symbol.
func CountBytes(text string) FrequencyTable {
	var c Counter
	io.WriteString(&c, text)
	return c.Table()
}

// Symbols returns the symbols of ft in lexicographic order.
// All construction that depends on iteration order goes through Symbols.
func (ft FrequencyTable) Symbols() []Symbol {
	return slices.Sorted(maps.Keys(ft))
}

// Total returns the sum of the counts in ft.
func (ft FrequencyTable) Total() int {
	n := 0
	for _, c := range ft {
		n += c
	}
	return n
}

// Entropy returns the Shannon entropy of the distribution described by ft,
// in bits per symbol. An empty table has entropy 0.
func (ft FrequencyTable) Entropy() float64 {
	total := ft.Total()
	if total == 0 {
		return 0
	}
	var h float64
	for _, s := range ft.Symbols() {
		if c := ft[s]; c > 0 {
			p := float64(c) / float64(total)
			h -= p * math.Log2(p)
		}
	}
	return h
}

// A Counter accumulates byte frequencies from everything written to it.
// The zero value is ready to use.
type Counter struct {
	freqs [256]int
	n     int
}

func (c *Counter) Write(data []byte) (int, error) {
	for _, b := range data {
		c.freqs[b]++
	}
	c.n += len(data)
	return len(data), nil
}

// Len returns the number of bytes written so far.
func (c *Counter) Len() int { return c.n }

// Table returns the frequencies of the bytes written so far.
func (c *Counter) Table() FrequencyTable {
	ft := make(FrequencyTable)
	for b, n := range c.freqs {
		if n > 0 {
			ft[Symbol([]byte{byte(b)})] = n
		}
	}
	return ft
}
