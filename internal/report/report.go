// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

// Package report measures how well each coding method does on a text.
//
// Besides the two methods of package prefixcode and the entropy bound,
// a report includes the size of the text under huff0, a production Huffman
// coder whose output is packed and carries its own table, and under zstd.
// Those figures are points of reference, not like-for-like comparisons.
package report

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jba/prefixcode"
	"github.com/klauspost/compress/huff0"
	"github.com/klauspost/compress/zstd"
)

// A Report describes the coding of one text.
type Report struct {
	Len      int     // bytes of text
	Distinct int     // distinct bytes
	Entropy  float64 // bits per byte
	BlockLen int     // Shannon-Fano block length

	Huffman     Method
	ShannonFano Method

	// PackedBits is the size in bits of the text compressed with huff0,
	// table included. If huff0 declined the text, PackedBits is -1 and
	// PackedNote says why.
	PackedBits int
	PackedNote string

	// ZstdBits is the size in bits of a zstd frame holding the text.
	ZstdBits int
}

// Method summarizes one coding method.
type Method struct {
	Symbols int // distinct symbols in the code table
	MaxLen  int // longest code
	Bits    int // length of the encoded text
}

// BitsPerByte returns the encoded length divided by n.
func (m Method) BitsPerByte(n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(m.Bits) / float64(n)
}

// Build encodes text with both methods and reports the results.
func Build(text string) (*Report, error) {
	r := &Report{
		Len:      len(text),
		Distinct: len(prefixcode.CountBytes(text)),
		Entropy:  prefixcode.Entropy(text),
	}
	h, err := prefixcode.Encode(text, prefixcode.Huffman)
	if err != nil {
		return nil, err
	}
	r.Huffman = summarize(h)
	sf, err := prefixcode.Encode(text, prefixcode.ShannonFano)
	if err != nil {
		return nil, err
	}
	r.ShannonFano = summarize(sf)
	r.BlockLen = sf.BlockLen
	r.PackedBits, r.PackedNote = packedSize([]byte(text))
	if r.ZstdBits, err = zstdSize([]byte(text)); err != nil {
		return nil, err
	}
	return r, nil
}

func summarize(e *prefixcode.Encoding) Method {
	m := Method{Symbols: len(e.Table), Bits: len(e.Bits)}
	for _, code := range e.Table {
		m.MaxLen = max(m.MaxLen, len(code))
	}
	return m
}

// packedSize compresses data with huff0 in blocks of at most
// huff0.BlockSizeMax bytes and returns the total size in bits.
func packedSize(data []byte) (int, string) {
	if len(data) == 0 {
		return -1, "empty input"
	}
	var s huff0.Scratch
	s.Reuse = huff0.ReusePolicyNone
	n := 0
	for len(data) > 0 {
		chunk := data[:min(len(data), huff0.BlockSizeMax)]
		data = data[len(chunk):]
		out, _, err := huff0.Compress1X(chunk, &s)
		switch {
		case errors.Is(err, huff0.ErrIncompressible):
			return -1, "incompressible"
		case errors.Is(err, huff0.ErrUseRLE):
			return -1, "single symbol (run-length)"
		case err != nil:
			return -1, err.Error()
		}
		n += len(out) * 8
	}
	return n, ""
}

func zstdSize(data []byte) (int, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1))
	if err != nil {
		return 0, err
	}
	defer enc.Close()
	return len(enc.EncodeAll(data, nil)) * 8, nil
}

// WriteTo writes r to w as a table.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	tw := tabwriter.NewWriter(cw, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "text\t%d bytes, %d distinct\n", r.Len, r.Distinct)
	fmt.Fprintf(tw, "entropy\t%.4f bits/byte\t%.0f bits\n", r.Entropy, r.Entropy*float64(r.Len))
	fmt.Fprintf(tw, "huffman\t%.4f bits/byte\t%d bits\t%d codes, longest %d\n",
		r.Huffman.BitsPerByte(r.Len), r.Huffman.Bits, r.Huffman.Symbols, r.Huffman.MaxLen)
	fmt.Fprintf(tw, "shannon-fano\t%.4f bits/byte\t%d bits\t%d blocks of %d, longest %d\n",
		r.ShannonFano.BitsPerByte(r.Len), r.ShannonFano.Bits, r.ShannonFano.Symbols, r.BlockLen, r.ShannonFano.MaxLen)
	if r.PackedBits >= 0 {
		fmt.Fprintf(tw, "huff0\t%.4f bits/byte\t%d bits\n", float64(r.PackedBits)/float64(r.Len), r.PackedBits)
	} else {
		fmt.Fprintf(tw, "huff0\t%s\n", r.PackedNote)
	}
	if r.Len > 0 {
		fmt.Fprintf(tw, "zstd\t%.4f bits/byte\t%d bits\n", float64(r.ZstdBits)/float64(r.Len), r.ZstdBits)
	} else {
		fmt.Fprintf(tw, "zstd\t\t%d bits\n", r.ZstdBits)
	}
	err := tw.Flush()
	return cw.n, err
}

type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
