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
package editor

import (
	"fmt"
	"strings"

	"github.com/timburks/jot/types"
)

// Terminator ends every decoded line except the last.
const Terminator = '\n'

// A Buffer holds the lines of a document and the cursor that edits them.
// It always contains at least one row, and the cursor always addresses a
// row and a character offset within [0, row length].
type Buffer struct {
	rows   []*Row
	cursor types.Point
}

// NewBuffer returns an empty document: one empty row with the cursor at (0,0).
func NewBuffer() *Buffer {
	return &Buffer{rows: []*Row{NewRow("")}}
}

// NewBufferFromLines builds a buffer from decoded lines, removing one trailing
// terminator from each. The cursor is placed at the end of the last line.
func NewBufferFromLines(lines []string) *Buffer {
	if len(lines) == 0 {
		return NewBuffer()
	}
	b := &Buffer{rows: make([]*Row, 0, len(lines))}
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(strings.TrimSuffix(line, string(Terminator))))
	}
	last := len(b.rows) - 1
	b.cursor = types.Point{Row: last, Col: b.rows[last].Length()}
	return b
}

func (b *Buffer) Cursor() types.Point {
	return b.cursor
}

func (b *Buffer) LineCount() int {
	return len(b.rows)
}

func (b *Buffer) Line(i int) string {
	if i < 0 || i >= len(b.rows) {
		return ""
	}
	return b.rows[i].String()
}

func (b *Buffer) LineLength(i int) int {
	if i < 0 || i >= len(b.rows) {
		return 0
	}
	return b.rows[i].Length()
}

// Lines returns the content of every row without terminators.
func (b *Buffer) Lines() []string {
	lines := make([]string, len(b.rows))
	for i, row := range b.rows {
		lines[i] = row.String()
	}
	return lines
}

// TerminatedLines returns the rows in the form Decode produces: every line
// but the last carries a terminator.
func (b *Buffer) TerminatedLines() []string {
	lines := b.Lines()
	for i := 0; i < len(lines)-1; i++ {
		lines[i] += string(Terminator)
	}
	return lines
}

// InsertChar inserts c at the cursor and moves the cursor past it.
func (b *Buffer) InsertChar(c rune) {
	switch c {
	case Terminator:
		b.SplitLine()
		return
	case '\r':
		return
	}
	b.rows[b.cursor.Row].InsertChar(b.cursor.Col, c)
	b.cursor.Col++
}

// DeleteBackward removes the character before the cursor. At the start of a
// line it joins the line onto the previous one.
func (b *Buffer) DeleteBackward() {
	switch {
	case b.cursor.Col > 0:
		b.rows[b.cursor.Row].DeleteChar(b.cursor.Col - 1)
		b.cursor.Col--
	case b.cursor.Row > 0:
		previous := b.rows[b.cursor.Row-1]
		col := previous.Length()
		previous.Join(b.rows[b.cursor.Row])
		b.rows = append(b.rows[0:b.cursor.Row], b.rows[b.cursor.Row+1:]...)
		b.cursor.Row--
		b.cursor.Col = col
	}
}

// SplitLine moves the text after the cursor to a new row below the current
// one and puts the cursor at its start.
func (b *Buffer) SplitLine() {
	newRow := b.rows[b.cursor.Row].Split(b.cursor.Col)
	i := b.cursor.Row + 1
	b.rows = append(b.rows, nil)
	copy(b.rows[i+1:], b.rows[i:])
	b.rows[i] = newRow
	b.cursor.Row = i
	b.cursor.Col = 0
}

// MoveCursor moves the cursor one step. Horizontal moves never wrap to
// another line; vertical moves keep the column inside the destination line.
func (b *Buffer) MoveCursor(direction types.Direction) error {
	switch direction {
	case types.MoveUp:
		if b.cursor.Row > 0 {
			b.cursor.Row--
		}
	case types.MoveDown:
		if b.cursor.Row < len(b.rows)-1 {
			b.cursor.Row++
		}
	case types.MoveLeft:
		if b.cursor.Col > 0 {
			b.cursor.Col--
		}
	case types.MoveRight:
		b.cursor.Col++
	default:
		return fmt.Errorf("%w: %v", types.ErrInvalidCommand, direction)
	}
	// don't go past the end of the current line
	if length := b.rows[b.cursor.Row].Length(); b.cursor.Col > length {
		b.cursor.Col = length
	}
	return nil
}

// CheckInvariants reports the first way in which the buffer is inconsistent.
func (b *Buffer) CheckInvariants() error {
	if len(b.rows) == 0 {
		return fmt.Errorf("buffer has no rows")
	}
	if b.cursor.Row < 0 || b.cursor.Row >= len(b.rows) {
		return fmt.Errorf("cursor row %d outside [0, %d]", b.cursor.Row, len(b.rows)-1)
	}
	if length := b.rows[b.cursor.Row].Length(); b.cursor.Col < 0 || b.cursor.Col > length {
		return fmt.Errorf("cursor column %d outside [0, %d]", b.cursor.Col, length)
	}
	return nil
}
