// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package menu

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
)

var modes = []string{"encode sf", "decode sf", "encode huffman", "decode huffman"}

type key struct {
	k tcell.Key
	r rune
}

func TestRun(t *testing.T) {
	for _, test := range []struct {
		name    string
		keys    []key
		want    int
		wantErr error
	}{
		{"enter", []key{{tcell.KeyEnter, 0}}, 0, nil},
		{"down", []key{{tcell.KeyDown, 0}, {tcell.KeyDown, 0}, {tcell.KeyEnter, 0}}, 2, nil},
		{"clamp", []key{{tcell.KeyUp, 0}, {tcell.KeyRune, 'j'}, {tcell.KeyEnter, 0}}, 1, nil},
		{"past end", []key{{tcell.KeyDown, 0}, {tcell.KeyDown, 0}, {tcell.KeyDown, 0}, {tcell.KeyDown, 0}, {tcell.KeyEnter, 0}}, 3, nil},
		{"digit", []key{{tcell.KeyRune, '4'}}, 3, nil},
		{"digit out of range", []key{{tcell.KeyRune, '9'}, {tcell.KeyRune, '2'}}, 1, nil},
		{"escape", []key{{tcell.KeyEscape, 0}}, -1, ErrCanceled},
		{"quit", []key{{tcell.KeyDown, 0}, {tcell.KeyRune, 'q'}}, -1, ErrCanceled},
	} {
		t.Run(test.name, func(t *testing.T) {
			s := tcell.NewSimulationScreen("")
			if err := s.Init(); err != nil {
				t.Fatal(err)
			}
			defer s.Fini()
			s.SetSize(40, 10)
			for _, k := range test.keys {
				s.InjectKey(k.k, k.r, tcell.ModNone)
			}
			got, err := Run(s, "mode", modes)
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("got error %v, want %v", err, test.wantErr)
			}
			if got != test.want {
				t.Errorf("got %d, want %d", got, test.want)
			}
		})
	}
}

func TestRunDraws(t *testing.T) {
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	defer s.Fini()
	s.SetSize(40, 10)
	s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	if _, err := Run(s, "mode", modes); err != nil {
		t.Fatal(err)
	}
	cells, width, _ := s.GetContents()
	var row []rune
	for x := range width {
		if c := cells[2*width+x]; len(c.Runes) > 0 {
			row = append(row, c.Runes[0])
		} else {
			row = append(row, ' ')
		}
	}
	if got, want := string(row[:13]), "  1 - encode "; got != want {
		t.Errorf("row 2: got %q, want %q", got, want)
	}
}

func TestRunNoItems(t *testing.T) {
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	defer s.Fini()
	if _, err := Run(s, "mode", nil); err == nil {
		t.Error("got nil error")
	}
}
