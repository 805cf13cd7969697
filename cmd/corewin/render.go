//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package main

import (
	"log"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/nsf/termbox-go"
	"golang.org/x/term"

	"github.com/corewin/corewin/pkg/coord"
	"github.com/corewin/corewin/pkg/inserter"
)

// statusStyle decides how the status line's reverse/bold attributes
// render as termbox cell attributes; corewin never hands lipgloss's own
// ANSI-escaped output to termbox, since termbox owns the cell grid
// directly (spec.md §1 keeps any styling pipeline out of the core, so
// this is cosmetic to the demo renderer only).
var statusStyle = lipgloss.NewStyle().Reverse(true).Bold(true)

// renderer owns the termbox terminal handle.
type renderer struct{}

// newRenderer probes the controlling terminal's size with x/term (the
// way gott never bothers to, since termbox.Size() alone is sufficient
// once initialized) before handing control to termbox.Init, and logs
// it; render itself sizes the window from termbox.Size().
func newRenderer() (*renderer, error) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		log.Printf("terminal probe: %dx%d", w, h)
	}
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetOutputMode(termbox.Output256)
	return &renderer{}, nil
}

// Close tears down the terminal.
func (r *renderer) Close() {
	termbox.Close()
}

// render paints one session's window to the full terminal, status line
// on the bottom row, grounded on screen.Render/RenderInfoBar's
// clear-resize-render-cursor-flush sequence.
func (r *renderer) render(s *session) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	cols, rows := termbox.Size()
	if rows < 2 {
		rows = 2
	}
	editRows := rows - 1
	dims := coord.Display{Line: editRows, Column: cols}
	if dims != s.win.Dimensions() {
		s.win.Resize(dims)
	}

	db := s.win.Display()
	for _, atom := range db.Atoms {
		for row, cells := range atom.Lines {
			col := atom.StartColumn(row)
			for _, cell := range cells {
				attr := termbox.ColorDefault
				if cell.Style.Class == "selection" {
					attr |= termbox.AttrReverse
				}
				termbox.SetCell(col, atom.Coord.Line+row, cell.Rune, attr, termbox.ColorDefault)
				col++
			}
		}
	}

	r.renderStatus(s, rows-1, cols)

	cursor := s.win.CursorDisplayPosition()
	termbox.SetCursor(cursor.Column, cursor.Line)
	termbox.Flush()
}

func (r *renderer) renderStatus(s *session, row, cols int) {
	text := statusFor(s)
	attr := termbox.ColorDefault | termbox.ColorDefault
	if statusStyle.GetReverse() {
		attr = termbox.AttrReverse
	}
	runes := []rune(text)
	for x := 0; x < cols; x++ {
		ch := rune(' ')
		if x < len(runes) {
			ch = runes[x]
		}
		termbox.SetCell(x, row, ch, attr, termbox.ColorDefault)
	}
}

// runEventLoop is corewin's main loop, grounded on gott.go's
// `for c.IsRunning() { s.Render(...); c.ProcessEvent(...) }` shape,
// generalized from one buffer/commander pair to a list of sessions with
// a tab-cycling key.
func runEventLoop(r *renderer, sessions []*session) {
	active := 0
	var ins *inserter.IncrementalInserter

	for {
		r.render(sessions[active])
		ev := termbox.PollEvent()
		if ev.Type != termbox.EventKey {
			continue
		}
		s := sessions[active]

		if ins != nil {
			switch ev.Key {
			case termbox.KeyEsc:
				ins.Close()
				ins = nil
			case termbox.KeyBackspace, termbox.KeyBackspace2:
				ins.Erase()
			case termbox.KeyEnter:
				ins.Insert("\n")
			default:
				if ev.Ch != 0 {
					ins.Insert(string(ev.Ch))
				}
			}
			continue
		}

		switch ev.Key {
		case termbox.KeyCtrlQ:
			return
		case termbox.KeyTab:
			active = (active + 1) % len(sessions)
		case termbox.KeyArrowLeft:
			s.win.MoveCursor(coord.Buffer{Column: -1}, false)
		case termbox.KeyArrowRight:
			s.win.MoveCursor(coord.Buffer{Column: 1}, false)
		case termbox.KeyArrowUp:
			s.win.MoveCursor(coord.Buffer{Line: -1}, false)
		case termbox.KeyArrowDown:
			s.win.MoveCursor(coord.Buffer{Line: 1}, false)
		case termbox.KeyCtrlZ:
			if s.win.Undo() {
				log.Printf("session %s undo -> %s", s.id, s.win.Buffer().LastUndoGroupID())
			}
		case termbox.KeyCtrlY:
			if s.win.Redo() {
				log.Printf("session %s redo -> %s", s.id, s.win.Buffer().LastUndoGroupID())
			}
		default:
			switch ev.Ch {
			case 'i':
				ins = inserter.New(s.win, inserter.Insert)
			case 'a':
				ins = inserter.New(s.win, inserter.Append)
			case 'c':
				ins = inserter.New(s.win, inserter.Change)
			case 'o':
				ins = inserter.New(s.win, inserter.OpenLineBelow)
			case 'O':
				ins = inserter.New(s.win, inserter.OpenLineAbove)
			}
		}
	}
}
