// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jba/prefixcode"
	"github.com/jba/prefixcode/internal/menu"
	"github.com/jba/prefixcode/internal/report"
	"github.com/jba/prefixcode/internal/tablecache"
)

func encodeCmd(m prefixcode.Method, name string, args []string) error {
	fs := newFlagSet(name)
	in := fs.String("in", "", "")
	tableFile := fs.String("table", "", "")
	bitsFile := fs.String("bits", "", "")
	var block *int
	if m == prefixcode.ShannonFano {
		block = fs.Int("block", 0, "")
	}
	if err := parseFlags(fs, args, "in", "table", "bits"); err != nil {
		return err
	}

	var opts []prefixcode.Option
	if block != nil && *block != 0 {
		if *block < 0 {
			return usageErrorf("%s: -block must be positive", name)
		}
		opts = append(opts, prefixcode.WithBlockLength(*block))
	}

	text, err := readTextFile(*in)
	if err != nil {
		return err
	}
	if text == "" {
		log.Warningf("%s is empty; writing an empty table", *in)
	}
	e, err := prefixcode.Encode(text, m, opts...)
	if err != nil {
		return err
	}
	if err := writeFile(*tableFile, func(w io.Writer) error {
		return prefixcode.WriteTable(w, e.Table)
	}); err != nil {
		return err
	}
	if err := writeFile(*bitsFile, func(w io.Writer) error {
		_, err := io.WriteString(w, e.Bits+"\n")
		return err
	}); err != nil {
		return err
	}
	if m == prefixcode.ShannonFano {
		log.Infof("block length %d", e.BlockLen)
	}
	log.Noticef("%v: wrote %d codes to %s and %d bits to %s", m, len(e.Table), *tableFile, len(e.Bits), *bitsFile)
	return nil
}

func decodeCmd(name string, args []string, stdout io.Writer) error {
	fs := newFlagSet(name)
	tableFile := fs.String("table", "", "")
	bitsFile := fs.String("bits", "", "")
	out := fs.String("out", "", "")
	if err := parseFlags(fs, args, "table", "bits"); err != nil {
		return err
	}
	cache, err := tablecache.New(1)
	if err != nil {
		return err
	}
	text, err := decodeFiles(cache, *tableFile, *bitsFile)
	if err != nil {
		return err
	}
	if *out == "" {
		_, err := io.WriteString(stdout, text+"\n")
		return err
	}
	if err := writeFile(*out, func(w io.Writer) error {
		_, err := io.WriteString(w, text)
		return err
	}); err != nil {
		return err
	}
	log.Noticef("wrote %d bytes to %s", len(text), *out)
	return nil
}

// decodeFiles decodes the bits file with the table file.
func decodeFiles(cache *tablecache.Cache, tableFile, bitsFile string) (string, error) {
	rt, err := cache.LoadFile(tableFile)
	if err != nil {
		return "", err
	}
	f, err := os.Open(bitsFile)
	if err != nil {
		return "", err
	}
	defer f.Close()
	bits, err := prefixcode.ReadBits(f)
	if errors.Is(err, prefixcode.ErrNoData) && len(rt) == 0 {
		// Encoding empty text writes an empty table and no bits.
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", bitsFile, err)
	}
	text, err := rt.Decode(bits)
	if err != nil {
		return "", fmt.Errorf("%s: %w", bitsFile, err)
	}
	log.Debugf("decoded %d bits from %s into %d bytes", len(bits), bitsFile, len(text))
	return text, nil
}

func statsCmd(args []string, stdout io.Writer) error {
	fs := newFlagSet("stats")
	in := fs.String("in", "", "")
	if err := parseFlags(fs, args, "in"); err != nil {
		return err
	}
	text, err := readTextFile(*in)
	if err != nil {
		return err
	}
	r, err := report.Build(text)
	if err != nil {
		return err
	}
	_, err = r.WriteTo(stdout)
	return err
}

func batchCmd(args []string) error {
	fs := newFlagSet("batch")
	manifest := fs.String("manifest", "", "")
	size := fs.Int("cache", tablecache.DefaultSize, "")
	if err := parseFlags(fs, args, "manifest"); err != nil {
		return err
	}
	cache, err := tablecache.New(*size)
	if err != nil {
		return err
	}
	f, err := os.Open(*manifest)
	if err != nil {
		return err
	}
	defer f.Close()

	jobs := 0
	scan := bufio.NewScanner(f)
	for lineno := 1; scan.Scan(); lineno++ {
		line := strings.TrimSpace(scan.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return fmt.Errorf("%s:%d: want table, bits and output files, got %q", *manifest, lineno, line)
		}
		text, err := decodeFiles(cache, fields[0], fields[1])
		if err != nil {
			return fmt.Errorf("%s:%d: %w", *manifest, lineno, err)
		}
		if err := writeFile(fields[2], func(w io.Writer) error {
			_, err := io.WriteString(w, text)
			return err
		}); err != nil {
			return err
		}
		jobs++
	}
	if err := scan.Err(); err != nil {
		return err
	}
	hits, misses := cache.Stats()
	log.Noticef("decoded %d files; %d tables parsed, %d reused", jobs, misses, hits)
	return nil
}

// modes are the commands the menu offers, in menu order.
var modes = []struct {
	cmd, title string
}{
	{"sf-encode", "Encode with Shannon-Fano"},
	{"sf-decode", "Decode with Shannon-Fano"},
	{"huff-encode", "Encode with Huffman"},
	{"huff-decode", "Decode with Huffman"},
}

// selectMode is replaced in tests.
var selectMode = menu.Select

func menuCmd(args []string, stdout io.Writer) error {
	titles := make([]string, len(modes))
	for i, m := range modes {
		titles[i] = m.title
	}
	i, err := selectMode(progName, titles)
	if err != nil {
		return err
	}
	log.Infof("running %s", modes[i].cmd)
	return dispatch(modes[i].cmd, args, stdout)
}

// parseFlags parses args into fs and checks that the named flags were given.
func parseFlags(fs *flag.FlagSet, args []string, required ...string) error {
	if err := fs.Parse(args); err != nil {
		return usageErrorf("%s: %v", fs.Name(), err)
	}
	if fs.NArg() > 0 {
		return usageErrorf("%s: unexpected argument %q", fs.Name(), fs.Arg(0))
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	for _, name := range required {
		if !set[name] {
			return usageErrorf("%s: missing -%s", fs.Name(), name)
		}
	}
	return nil
}

func readTextFile(name string) (string, error) {
	f, err := os.Open(name)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return prefixcode.ReadText(f)
}

// writeFile creates name and calls write to fill it.
func writeFile(name string, write func(io.Writer) error) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	w := bufio.NewWriter(f)
	if err := write(w); err != nil {
		return err
	}
	return w.Flush()
}
