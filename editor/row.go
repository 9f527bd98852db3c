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

// A Row is one line of text. Text holds characters, so every column used
// below is a character index.
type Row struct {
	Text []rune
}

func NewRow(text string) *Row {
	return &Row{Text: []rune(text)}
}

func (r *Row) String() string {
	return string(r.Text)
}

func (r *Row) Length() int {
	return len(r.Text)
}

// InsertChar inserts c before the character at col. col must be in [0, Length()].
func (r *Row) InsertChar(col int, c rune) {
	line := make([]rune, 0, len(r.Text)+1)
	line = append(line, r.Text[0:col]...)
	line = append(line, c)
	line = append(line, r.Text[col:]...)
	r.Text = line
}

// delete character at col and return the deleted character
func (r *Row) DeleteChar(col int) rune {
	c := r.Text[col]
	line := make([]rune, 0, len(r.Text)-1)
	line = append(line, r.Text[0:col]...)
	line = append(line, r.Text[col+1:]...)
	r.Text = line
	return c
}

// splits row at col, return a new row containing the remaining text.
func (r *Row) Split(col int) *Row {
	after := make([]rune, len(r.Text)-col)
	copy(after, r.Text[col:])
	r.Text = r.Text[0:col:col]
	return &Row{Text: after}
}

// joins rows by appending the passed-in row to the current row
func (r *Row) Join(other *Row) {
	line := make([]rune, 0, len(r.Text)+len(other.Text))
	line = append(line, r.Text...)
	line = append(line, other.Text...)
	r.Text = line
}
