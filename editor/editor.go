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
	"errors"
	"log"
	"os"

	"github.com/timburks/jot/textfile"
	"github.com/timburks/jot/types"
)

// The Editor is one editing session. It owns a single Buffer and the
// display state needed to show it.
type Editor struct {
	Buffer   *Buffer    // document being edited
	FileName string     // where the document is saved
	Offset   types.Size // display offset
	size     types.Size // size of editing area
}

func NewEditor() *Editor {
	return &Editor{Buffer: NewBuffer()}
}

// ReadFile replaces the buffer with the contents of path. On failure the
// current buffer is left untouched.
func (e *Editor) ReadFile(path string) error {
	lines, err := textfile.ReadFile(path)
	if err != nil {
		return err
	}
	e.Buffer = NewBufferFromLines(lines)
	e.FileName = path
	e.Offset = types.Size{}
	return nil
}

// OpenFile reads path for a new session. A missing file starts an empty
// document that saves to path. Any other failure leaves the session
// unnamed so that saving cannot overwrite a file that was never loaded.
func (e *Editor) OpenFile(path string) error {
	err := e.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		e.FileName = path
	}
	return err
}

// WriteFile saves the buffer to path. An empty path saves to FileName.
func (e *Editor) WriteFile(path string) error {
	if path == "" {
		path = e.FileName
	}
	if path == "" {
		return &textfile.WriteError{Err: errors.New("no file name")}
	}
	if err := textfile.WriteFile(path, e.Buffer.TerminatedLines()); err != nil {
		return err
	}
	e.FileName = path
	return nil
}

// These editor primitives are the only way the input layer changes the buffer.

func (e *Editor) InsertChar(c rune) {
	e.Buffer.InsertChar(c)
}

func (e *Editor) DeleteBackward() {
	e.Buffer.DeleteBackward()
}

func (e *Editor) SplitLine() {
	e.Buffer.SplitLine()
}

// MoveCursor logs and returns invalid directions; the buffer is unchanged.
func (e *Editor) MoveCursor(direction types.Direction) error {
	err := e.Buffer.MoveCursor(direction)
	if err != nil {
		log.Printf("move cursor: %v", err)
	}
	return err
}

// Scroll adjusts the display offset so the cursor is visible. Columns are
// measured in terminal cells, so wide characters scroll sooner.
func (e *Editor) Scroll() {
	cursor := e.Buffer.Cursor()
	if cursor.Row < e.Offset.Rows {
		e.Offset.Rows = cursor.Row
	}
	if e.size.Rows > 0 && cursor.Row-e.Offset.Rows >= e.size.Rows {
		e.Offset.Rows = cursor.Row - e.size.Rows + 1
	}
	if cursor.Col < e.Offset.Cols {
		e.Offset.Cols = cursor.Col
	}
	if e.size.Cols > 0 {
		text := e.Buffer.rows[cursor.Row].Text
		for e.Offset.Cols < cursor.Col && cellWidth(text[e.Offset.Cols:cursor.Col]) >= e.size.Cols {
			e.Offset.Cols++
		}
	}
	if e.Offset.Rows < 0 {
		e.Offset.Rows = 0
	}
	if e.Offset.Cols < 0 {
		e.Offset.Cols = 0
	}
}

func (e *Editor) SetSize(s types.Size) {
	e.size = s
}

func (e *Editor) GetCursor() types.Point {
	return e.Buffer.Cursor()
}

func (e *Editor) GetOffset() types.Size {
	return e.Offset
}

func (e *Editor) GetFileName() string {
	return e.FileName
}

func (e *Editor) GetLineCount() int {
	return e.Buffer.LineCount()
}

func (e *Editor) GetLine(row int) string {
	return e.Buffer.Line(row)
}
