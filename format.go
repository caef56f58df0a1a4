// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package prefixcode

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

// Table files hold one entry per line, as the symbol, a colon and a space,
// and the code:
//
//	a: 10
//	b: 0
//	c: 11
//
// Lines are written in symbol order.

const tableSep = ": "

// WriteTable writes c to w in table file format.
// Symbols containing '\n' cannot be represented and cause ErrUnrepresentable.
// A '\r' is fine: every line ends in a code, so it is never taken for part
// of a CRLF terminator.
func WriteTable(w io.Writer, c CodeTable) error {
	bw := bufio.NewWriter(w)
	for _, s := range slices.Sorted(maps.Keys(c)) {
		if strings.Contains(s, "\n") {
			return fmt.Errorf("%w: %q", ErrUnrepresentable, s)
		}
		bw.WriteString(s)
		bw.WriteString(tableSep)
		bw.WriteString(c[s])
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// ReadTable reads a table file from r and returns its reverse table.
//
// Each line is split at the first ": ". If what follows is not a code,
// the line is split at the last ": " instead, which recovers symbols that
// themselves contain ": ". Empty lines are skipped. A line that cannot be
// split, or a code that appears twice, is a *FormatError.
// The table read must be prefix-free.
func ReadTable(r io.Reader) (ReverseCodeTable, error) {
	rt := make(ReverseCodeTable)
	br := bufio.NewReader(r)
	for lineno := 1; ; lineno++ {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if line == "" && err == io.EOF {
			break
		}
		text := strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if text != "" {
			sym, code, ok := splitEntry(text)
			if !ok {
				return nil, &FormatError{Line: lineno, Text: text, Err: ErrMalformedLine}
			}
			if _, dup := rt[code]; dup {
				return nil, &FormatError{Line: lineno, Text: text, Err: ErrDuplicateCode}
			}
			rt[code] = sym
		}
		if err == io.EOF {
			break
		}
	}
	if err := rt.Validate(); err != nil {
		return nil, err
	}
	log.Debugf("read table: %d entries", len(rt))
	return rt, nil
}

func splitEntry(line string) (sym Symbol, code string, ok bool) {
	i := strings.Index(line, tableSep)
	if i < 0 {
		return "", "", false
	}
	if code := line[i+len(tableSep):]; isBits(code) {
		return line[:i], code, true
	}
	j := strings.LastIndex(line, tableSep)
	if code := line[j+len(tableSep):]; j != i && isBits(code) {
		return line[:j], code, true
	}
	return "", "", false
}

// ReadBits reads an encoded bit string from r: the first run of
// non-whitespace characters. The characters are not checked here;
// decoding reports anything other than '0' and '1'.
// If r holds nothing but whitespace, ReadBits returns ErrNoData.
func ReadBits(r io.Reader) (string, error) {
	br := bufio.NewReader(r)
	var sb strings.Builder
	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if isSpace(c) {
			if sb.Len() > 0 {
				break
			}
			continue
		}
		sb.WriteByte(c)
	}
	if sb.Len() == 0 {
		return "", ErrNoData
	}
	return sb.String(), nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// ReadText reads all of r and joins its lines, dropping line terminators.
// The result never contains '\n', so every byte of it can appear
// as a symbol in a table file.
func ReadText(r io.Reader) (string, error) {
	br := bufio.NewReader(r)
	var sb strings.Builder
	for {
		line, err := br.ReadString('\n')
		sb.WriteString(strings.TrimRight(line, "\r\n"))
		if errors.Is(err, io.EOF) {
			return sb.String(), nil
		}
		if err != nil {
			return "", err
		}
	}
}
