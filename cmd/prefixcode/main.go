// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

// Command prefixcode builds Huffman and Shannon-Fano codes for text files
// and decodes bit strings with previously written code tables.
//
// Usage:
//
//	prefixcode [-d] command [flags]
//
// The commands are:
//
//	sf-encode    -in text -table file -bits file [-block n]
//	sf-decode    -table file -bits file [-out file]
//	huff-encode  -in text -table file -bits file
//	huff-decode  -table file -bits file [-out file]
//	stats        -in text
//	batch        -manifest file
//	menu         [flags]
//
// A code table file has one "symbol: code" line per symbol. A bits file holds
// the encoded text as a single run of '0' and '1' characters.
//
// The batch manifest has one decoding job per line: a table file, a bits file
// and an output file, separated by spaces. Blank lines and lines starting with
// '#' are ignored.
//
// The menu command picks one of the four encode/decode commands interactively
// and runs it with the flags that follow.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jba/prefixcode"
	"github.com/op/go-logging"
)

const progName = "prefixcode"

var log = logging.MustGetLogger(progName)

var leveledLogBackend logging.LeveledBackend

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{color:bold}%{level:6s}%{color:reset} %{module:-22s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

// A usageError is reported with a pointer to the usage message.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usageErrorf(format string, args ...any) error {
	return &usageError{fmt.Sprintf(format, args...)}
}

const usageMessage = `usage: prefixcode [-d] command [flags]

commands:
  sf-encode    -in text -table file -bits file [-block n]
  sf-decode    -table file -bits file [-out file]
  huff-encode  -in text -table file -bits file
  huff-decode  -table file -bits file [-out file]
  stats        -in text
  batch        -manifest file
  menu         [flags for the chosen command]
`

func main() {
	startLogging()
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}
	if ue, ok := err.(*usageError); ok {
		fmt.Fprintf(os.Stderr, "%s: %s\n\n%s", progName, ue.msg, usageMessage)
		os.Exit(2)
	}
	log.Errorf("%s", describe(err))
	os.Exit(1)
}

func run(args []string, stdout io.Writer) error {
	fs := newFlagSet(progName)
	var debugLogging bool
	fs.BoolVar(&debugLogging, "debug", false, "")
	fs.BoolVar(&debugLogging, "d", false, "")
	if err := fs.Parse(args); err == flag.ErrHelp {
		io.WriteString(stdout, usageMessage)
		return nil
	} else if err != nil {
		return usageErrorf("%v", err)
	}
	if debugLogging && leveledLogBackend != nil {
		leveledLogBackend.SetLevel(logging.DEBUG, "")
	}
	if fs.NArg() == 0 {
		return usageErrorf("missing command")
	}
	return dispatch(fs.Arg(0), fs.Args()[1:], stdout)
}

func dispatch(name string, args []string, stdout io.Writer) error {
	switch name {
	case "sf-encode":
		return encodeCmd(prefixcode.ShannonFano, name, args)
	case "huff-encode":
		return encodeCmd(prefixcode.Huffman, name, args)
	case "sf-decode", "huff-decode":
		return decodeCmd(name, args, stdout)
	case "stats":
		return statsCmd(args, stdout)
	case "batch":
		return batchCmd(args)
	case "menu":
		return menuCmd(args, stdout)
	default:
		return usageErrorf("unknown command %q", name)
	}
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)
	return fs
}

// describe separates missing input from damaged input in error messages.
func describe(err error) string {
	switch {
	case errors.Is(err, prefixcode.ErrNoData):
		return "no input: " + err.Error()
	case errors.Is(err, prefixcode.ErrIncomplete),
		errors.Is(err, prefixcode.ErrCorrupt),
		errors.Is(err, prefixcode.ErrInvalidBit):
		return "corrupt encoded data: " + err.Error()
	default:
		return err.Error()
	}
}
