// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package prefixcode

import (
	"bufio"
	"io"
)

// Bits are rendered as the characters '0' and '1', one per bit.

// A bitWriter writes codes to its contained [io.Writer].
// Output is buffered; write errors are stored and reported by
// [bitWriter.Close].
type bitWriter struct {
	err error
	w   *bufio.Writer
}

func newBitWriter(w io.Writer) *bitWriter {
	return &bitWriter{w: bufio.NewWriter(w)}
}

// writeCode writes the bits of code, which must consist of '0' and '1' only.
func (w *bitWriter) writeCode(code string) {
	if w.err != nil {
		return
	}
	_, w.err = w.w.WriteString(code)
}

func (w *bitWriter) Close() error {
	if w.err == nil {
		w.err = w.w.Flush()
	}
	return w.err
}

// A bitReader reads bits from its contained [io.Reader].
type bitReader struct {
	err error
	r   io.ByteReader
	off int64 // number of bits read
}

func newBitReader(r io.Reader) *bitReader {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &bitReader{r: br}
}

// readBit returns the next bit as 0 or 1.
// At the end of the input it returns io.EOF.
// Any character other than '0' or '1' is ErrInvalidBit.
func (r *bitReader) readBit() (byte, error) {
	if r.err != nil {
		return 0, r.err
	}
	c, err := r.r.ReadByte()
	if err != nil {
		r.err = err
		return 0, err
	}
	switch c {
	case '0', '1':
		r.off++
		return c - '0', nil
	default:
		r.err = ErrInvalidBit
		return 0, r.err
	}
}

// decodeError reports err at the current offset, with the bits
// read since the last complete symbol.
func (r *bitReader) decodeError(err error, pending []byte) *DecodeError {
	return &DecodeError{Offset: r.off, Pending: string(pending), Err: err}
}

// isBits reports whether s is a non-empty string of '0' and '1' characters.
func isBits(s string) bool {
	if s == "" {
		return false
	}
	for i := range len(s) {
		if s[i] != '0' && s[i] != '1' {
			return false
		}
	}
	return true
}
