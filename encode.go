// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package prefixcode

import (
	"fmt"
	"strings"
)

// A Method selects how a code is constructed.
type Method int

const (
	Huffman     Method = iota // Huffman code over single bytes
	ShannonFano               // Shannon-Fano code over entropy-sized blocks
)

func (m Method) String() string {
	switch m {
	case Huffman:
		return "huffman"
	case ShannonFano:
		return "shannon-fano"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod returns the Method named s, as returned by [Method.String].
// The short forms "huff" and "sf" are also accepted.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(s) {
	case "huffman", "huff":
		return Huffman, nil
	case "shannon-fano", "sf":
		return ShannonFano, nil
	}
	return 0, fmt.Errorf("prefixcode: unknown method %q", s)
}

// Config holds options for [Encode].
type Config struct {
	// BlockLen is the Shannon-Fano block length.
	// 0 means use the entropy-derived length of [BlockLength].
	BlockLen int
}

// An Option configures [Encode].
type Option func(*Config)

// WithBlockLength fixes the Shannon-Fano block length instead of deriving
// it from the entropy of the text. It has no effect on Huffman coding.
func WithBlockLength(n int) Option {
	return func(c *Config) {
		c.BlockLen = n
	}
}

// An Encoding is the result of encoding a text.
type Encoding struct {
	Method   Method
	BlockLen int // length of each symbol; always 1 for Huffman
	Table    CodeTable
	Bits     string
	// Tree is the Huffman tree the table was derived from.
	// It is nil for Shannon-Fano, and for Huffman when the text was empty.
	Tree *Tree
}

// Encode builds a code for text with method m and encodes text with it.
//
// Empty text is not an error: it produces an empty table and no bits.
// Shannon-Fano pads the last block with spaces, so decoding its bits gives
// text padded to a multiple of the block length.
func Encode(text string, m Method, opts ...Option) (*Encoding, error) {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	switch m {
	case Huffman:
		return encodeHuffman(text)
	case ShannonFano:
		n := cfg.BlockLen
		if n == 0 {
			n = BlockLength(text)
		}
		return encodeShannonFano(text, n)
	default:
		return nil, fmt.Errorf("prefixcode: unknown method %v", m)
	}
}

func encodeHuffman(text string) (*Encoding, error) {
	e := &Encoding{Method: Huffman, BlockLen: 1, Table: CodeTable{}}
	if text == "" {
		return e, nil
	}
	tree, err := BuildTree(CountBytes(text))
	if err != nil {
		return nil, err
	}
	e.Tree = tree
	e.Table = tree.Code()
	syms := make([]Symbol, len(text))
	for i := range len(text) {
		syms[i] = text[i : i+1]
	}
	e.Bits, err = e.Table.Encode(syms)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func encodeShannonFano(text string, n int) (*Encoding, error) {
	blocks, err := SplitBlocks(text, n)
	if err != nil {
		return nil, err
	}
	log.Debugf("shannon-fano: block length %d, %d blocks", n, len(blocks))
	e := &Encoding{Method: ShannonFano, BlockLen: n}
	e.Table = Partition(Blocks(Count(blocks)))
	e.Bits, err = e.Table.Encode(blocks)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Decode decodes e.Bits. It uses the Huffman tree when there is one,
// and prefix matching against the reverse of e.Table otherwise.
func (e *Encoding) Decode() (string, error) {
	if e.Tree != nil {
		return e.Tree.Decode(e.Bits)
	}
	rt, err := e.Table.Reverse()
	if err != nil {
		return "", err
	}
	return rt.Decode(e.Bits)
}
