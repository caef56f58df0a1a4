// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

// Package menu asks the user to pick one item from a short list on the terminal.
package menu

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// ErrCanceled is returned when the user leaves the menu without choosing.
var ErrCanceled = errors.New("menu: canceled")

// Select shows items on the terminal and returns the index of the one chosen.
func Select(title string, items []string) (int, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return -1, err
	}
	if err := s.Init(); err != nil {
		return -1, err
	}
	defer s.Fini()
	return Run(s, title, items)
}

// Run is like Select, but uses s, which must already be initialized.
//
// Up and down (or k and j) move the highlight and Enter chooses it.
// A digit chooses the item with that number directly.
// Escape, Ctrl-C and q cancel.
func Run(s tcell.Screen, title string, items []string) (int, error) {
	if len(items) == 0 {
		return -1, errors.New("menu: no items")
	}
	cur := 0
	for {
		draw(s, title, items, cur)
		switch ev := s.PollEvent().(type) {
		case nil:
			// The screen was finalized.
			return -1, ErrCanceled
		case *tcell.EventResize:
			s.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyUp:
				cur = max(cur-1, 0)
			case tcell.KeyDown:
				cur = min(cur+1, len(items)-1)
			case tcell.KeyEnter:
				return cur, nil
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return -1, ErrCanceled
			case tcell.KeyRune:
				switch r := ev.Rune(); {
				case r == 'q':
					return -1, ErrCanceled
				case r == 'k':
					cur = max(cur-1, 0)
				case r == 'j':
					cur = min(cur+1, len(items)-1)
				case r >= '1' && r <= '9' && int(r-'1') < len(items):
					return int(r - '1'), nil
				}
			}
		}
	}
}

func draw(s tcell.Screen, title string, items []string, cur int) {
	s.Clear()
	plain := tcell.StyleDefault
	putString(s, 0, 0, title, plain.Bold(true))
	for i, item := range items {
		style := plain
		if i == cur {
			style = style.Reverse(true)
		}
		putString(s, 2, i+2, string(rune('1'+i))+" - "+item, style)
	}
	putString(s, 0, len(items)+3, "arrows move, enter selects, q quits", plain.Dim(true))
	s.Show()
}

func putString(s tcell.Screen, x, y int, str string, style tcell.Style) {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
