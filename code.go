// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package prefixcode

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

// A CodeTable maps symbols to codes. A valid CodeTable is prefix-free:
// no code is a prefix of another, so encoded text decodes unambiguously.
type CodeTable map[Symbol]string

// Validate reports whether c is a usable prefix-free code.
// Every code must be a non-empty string of '0' and '1',
// and no code may be a prefix of another.
func (c CodeTable) Validate() error {
	for _, s := range slices.Sorted(maps.Keys(c)) {
		if code := c[s]; code == "" {
			return fmt.Errorf("%w for symbol %q", ErrEmptyCode, s)
		} else if !isBits(code) {
			return fmt.Errorf("%w in code %q for symbol %q", ErrInvalidBit, code, s)
		}
	}
	return checkPrefixFree(slices.Collect(maps.Values(c)))
}

// checkPrefixFree checks codes, which must all be non-empty.
// After sorting, a code that is a prefix of any other code
// is a prefix of its immediate successor.
func checkPrefixFree(codes []string) error {
	slices.Sort(codes)
	for i := 1; i < len(codes); i++ {
		if codes[i] == codes[i-1] {
			return fmt.Errorf("%w %q", ErrDuplicateCode, codes[i])
		}
		if strings.HasPrefix(codes[i], codes[i-1]) {
			return fmt.Errorf("%w: %q, %q", ErrNotPrefixFree, codes[i-1], codes[i])
		}
	}
	return nil
}

// Encode returns the concatenated codes of syms.
func (c CodeTable) Encode(syms []Symbol) (string, error) {
	var sb strings.Builder
	if err := c.EncodeTo(&sb, syms); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// EncodeTo writes the concatenated codes of syms to w.
// It stops at the first symbol that is not in c.
func (c CodeTable) EncodeTo(w io.Writer, syms []Symbol) error {
	bw := newBitWriter(w)
	for i, s := range syms {
		code, ok := c[s]
		if !ok {
			bw.Close()
			return fmt.Errorf("%w: %q at position %d", ErrUnknownSymbol, s, i)
		}
		bw.writeCode(code)
	}
	return bw.Close()
}

// EncodedLen returns the number of bits needed to encode
// every symbol of ft as many times as it occurs.
// Symbols missing from c are ignored.
func (c CodeTable) EncodedLen(ft FrequencyTable) int {
	n := 0
	for s, f := range ft {
		n += f * len(c[s])
	}
	return n
}

// Reverse returns the table mapping each code of c back to its symbol.
func (c CodeTable) Reverse() (ReverseCodeTable, error) {
	rt := make(ReverseCodeTable, len(c))
	for _, s := range slices.Sorted(maps.Keys(c)) {
		code := c[s]
		if _, dup := rt[code]; dup {
			return nil, fmt.Errorf("%w %q", ErrDuplicateCode, code)
		}
		rt[code] = s
	}
	return rt, nil
}

// A ReverseCodeTable maps codes to symbols.
// It is what a persisted code table loads into, and it is all that
// decoding needs when no Huffman tree is at hand.
type ReverseCodeTable map[string]Symbol

// Validate reports whether rt holds a usable prefix-free code.
func (rt ReverseCodeTable) Validate() error {
	codes := slices.Collect(maps.Keys(rt))
	for _, code := range codes {
		if code == "" {
			return ErrEmptyCode
		}
		if !isBits(code) {
			return fmt.Errorf("%w in code %q", ErrInvalidBit, code)
		}
	}
	return checkPrefixFree(codes)
}

// Table returns the forward table of rt.
func (rt ReverseCodeTable) Table() CodeTable {
	c := make(CodeTable, len(rt))
	for code, s := range rt {
		c[s] = code
	}
	return c
}

func (rt ReverseCodeTable) maxLen() int {
	n := 0
	for code := range rt {
		n = max(n, len(code))
	}
	return n
}

// Decode decodes bits by prefix matching: bits are accumulated one at a time,
// and whenever the accumulated string is a code of rt, its symbol is emitted
// and accumulation starts over. Since rt is prefix-free, the first match is
// the only possible one.
//
// It returns a *DecodeError wrapping ErrIncomplete if bits ends with
// unmatched bits, ErrCorrupt as soon as the accumulated bits are longer
// than any code, and ErrInvalidBit for a character other than '0' or '1'.
// The text decoded up to the error is returned along with it.
func (rt ReverseCodeTable) Decode(bits string) (string, error) {
	var sb strings.Builder
	err := rt.DecodeTo(&sb, strings.NewReader(bits))
	return sb.String(), err
}

// DecodeTo is like [ReverseCodeTable.Decode], but reads bits from r
// and writes the decoded symbols to w.
func (rt ReverseCodeTable) DecodeTo(w io.Writer, r io.Reader) error {
	limit := rt.maxLen()
	br := newBitReader(r)
	out := bufio.NewWriter(w)
	var acc []byte
	for {
		b, err := br.readBit()
		if err == io.EOF {
			break
		}
		if err != nil {
			out.Flush()
			return br.decodeError(err, acc)
		}
		acc = append(acc, '0'+b)
		if s, ok := rt[string(acc)]; ok {
			out.WriteString(s)
			acc = acc[:0]
		} else if len(acc) >= limit {
			out.Flush()
			return br.decodeError(ErrCorrupt, acc)
		}
	}
	if err := out.Flush(); err != nil {
		return err
	}
	if len(acc) > 0 {
		return br.decodeError(ErrIncomplete, acc)
	}
	return nil
}
