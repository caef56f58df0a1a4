// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

// Package prefixcode builds and reverses variable-length prefix codes for text
// using two methods: Huffman coding over single bytes, and Shannon-Fano coding
// over fixed-length blocks whose length is derived from the entropy of the text.
//
// Codes are rendered as strings of '0' and '1' characters. Nothing is packed
// into bytes, and there is no container format: a code table and an encoded
// bit string are separate artifacts (see [WriteTable] and [ReadTable]).
package prefixcode

import (
	"errors"
	"fmt"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("prefixcode")

// A Symbol is the unit being coded. For Huffman coding it is a single byte;
// for Shannon-Fano coding it is a block of bytes produced by [SplitBlocks].
type Symbol = string

var (
	// ErrNoData is returned when an operation that needs at least one symbol gets none.
	ErrNoData = errors.New("prefixcode: no data")
	// ErrIncomplete means the encoded input ended in the middle of a code.
	ErrIncomplete = errors.New("prefixcode: incomplete decode")
	// ErrCorrupt means the encoded input contains a bit sequence that no code can match.
	ErrCorrupt = errors.New("prefixcode: corrupt encoded data")
	// ErrInvalidBit means the encoded input contains a character other than '0' or '1'.
	ErrInvalidBit = errors.New("prefixcode: invalid bit character")

	ErrUnknownSymbol   = errors.New("prefixcode: symbol not in code table")
	ErrEmptyCode       = errors.New("prefixcode: empty code")
	ErrDuplicateCode   = errors.New("prefixcode: duplicate code")
	ErrNotPrefixFree   = errors.New("prefixcode: code is a prefix of another code")
	ErrUnrepresentable = errors.New("prefixcode: symbol cannot be written to a table file")
	ErrBlockLength     = errors.New("prefixcode: block length must be positive")
	ErrMalformedLine   = errors.New("prefixcode: malformed table line")
)

// A DecodeError describes where decoding stopped.
type DecodeError struct {
	Offset  int64  // number of bits consumed when the error was detected
	Pending string // bits read since the last complete symbol
	Err     error
}

func (e *DecodeError) Error() string {
	if e.Pending == "" {
		return fmt.Sprintf("%v at bit %d", e.Err, e.Offset)
	}
	return fmt.Sprintf("%v at bit %d (pending %q)", e.Err, e.Offset, e.Pending)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// A FormatError reports a bad line in a table file.
type FormatError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *FormatError) Unwrap() error { return e.Err }
