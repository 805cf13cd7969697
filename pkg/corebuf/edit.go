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

package corebuf

import "strings"

// Insert splices s into the buffer starting at it. Marks strictly after
// it shift to stay attached to the text that follows; it itself (and any
// other mark tied at exactly it's position) is left where it is, so it
// ends up referencing the *start* of the newly inserted text rather than
// its end. This is the rule that makes scenario S1 of spec.md §8 hold
// (a caret at an empty buffer's begin stays at (0,0) after a bulk
// insert) — see IncrementalInserter.Insert in pkg/inserter for why
// interactive typing additionally repositions its own cursor instead of
// relying on this rule alone.
func (b *Buffer) Insert(it *Mark, s string) {
	if s == "" {
		return
	}
	if !b.readOnly {
		b.modified = true
	}
	line, col := it.line, it.col
	pieces := strings.Split(s, "\n")
	row := b.rows[line]
	tail := append([]rune{}, row.Text[col:]...)
	row.Text = append(append([]rune{}, row.Text[:col]...), []rune(pieces[0])...)

	if len(pieces) == 1 {
		inserted := len([]rune(pieces[0]))
		row.Text = append(row.Text, tail...)
		b.shiftWithinRow(line, col, inserted)
		return
	}

	newRows := make([]*Row, 0, len(pieces)-1)
	for i := 1; i < len(pieces)-1; i++ {
		newRows = append(newRows, newRow(pieces[i]))
	}
	lastText := append([]rune(pieces[len(pieces)-1]), tail...)
	newRows = append(newRows, &Row{Text: lastText})

	after := append([]*Row{}, b.rows[line+1:]...)
	b.rows = append(b.rows[:line+1:line+1], newRows...)
	b.rows = append(b.rows, after...)

	lineDelta := len(pieces) - 1
	lastLineLen := len([]rune(pieces[len(pieces)-1]))
	b.shiftAcrossInsertSplit(line, col, lineDelta, lastLineLen)
}

// shiftWithinRow moves every mark on `line` whose column is strictly
// after `col` forward by `delta` columns; it does not touch marks on
// other lines.
func (b *Buffer) shiftWithinRow(line, col, delta int) {
	if delta == 0 {
		return
	}
	for m := range b.marks {
		if m.line == line && m.col > col {
			m.col += delta
		}
	}
}

// shiftAcrossInsertSplit fixes up marks after an insert that introduced
// `lineDelta` new rows at `line`/`col`. Marks strictly after the split
// point move down by lineDelta rows; marks on `line` after `col` move to
// the newly created last row, with their column measured from its start.
func (b *Buffer) shiftAcrossInsertSplit(line, col, lineDelta, lastLineLen int) {
	for m := range b.marks {
		switch {
		case m.line < line, m.line == line && m.col <= col:
			// unaffected
		case m.line == line && m.col > col:
			// the tail after the split point relocated to the new
			// last row, after the inserted text on that row.
			tailOffset := m.col - col
			m.line += lineDelta
			m.col = lastLineLen + tailOffset
		default:
			m.line += lineDelta
		}
	}
}

// Erase removes [begin, end) and returns the removed text. Marks
// strictly inside the removed range collapse to begin; marks at or
// after end shift back by the size of the removed span.
func (b *Buffer) Erase(begin, end *Mark) string {
	if begin.Compare(end) > 0 {
		begin, end = end, begin
	}
	if *begin == *end {
		return ""
	}
	removed := b.Slice(begin, end)
	if !b.readOnly {
		b.modified = true
	}

	bl, bc := begin.line, begin.col
	el, ec := end.line, end.col

	if bl == el {
		row := b.rows[bl]
		row.Text = append(append([]rune{}, row.Text[:bc]...), row.Text[ec:]...)
	} else {
		head := b.rows[bl].Text[:bc]
		tail := b.rows[el].Text[ec:]
		b.rows[bl].Text = append(append([]rune{}, head...), tail...)
		after := append([]*Row{}, b.rows[el+1:]...)
		b.rows = append(b.rows[:bl+1:bl+1], after...)
	}

	lineDelta := el - bl
	for m := range b.marks {
		switch {
		case m.line < bl, m.line == bl && m.col <= bc:
			// unaffected
		case m.line > el, m.line == el && m.col >= ec:
			if m.line == el {
				m.col = bc + (m.col - ec)
			}
			m.line -= lineDelta
		default:
			// strictly inside the erased range
			m.line, m.col = bl, bc
		}
	}
	return removed
}
