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
package screen

import (
	"fmt"
	"log"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
	"github.com/rivo/uniseg"

	"github.com/timburks/jot/editor"
	"github.com/timburks/jot/types"
)

// The Screen draws the state of an Editor.
type Screen struct {
	size types.Size // screen size
}

func NewScreen() *Screen {
	// Open the terminal.
	err := termbox.Init()
	if err != nil {
		log.Output(1, err.Error())
		return nil
	}
	termbox.SetOutputMode(termbox.Output256)
	return &Screen{}
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Render(e types.Editor, c types.Commander) {
	termbox.Clear(termbox.ColorWhite, termbox.ColorBlack)
	s.size.Cols, s.size.Rows = termbox.Size()

	editSize := s.size
	editSize.Rows -= 2
	e.SetSize(editSize)

	e.Scroll()
	s.RenderInfoBar(e, c)
	s.RenderMessageBar(e, c)
	offset := e.GetOffset()
	for i := 0; i < editSize.Rows; i++ {
		row := i + offset.Rows
		if row < e.GetLineCount() {
			s.renderLine(i, skipCharacters(e.GetLine(row), offset.Cols), editSize.Cols)
		} else {
			termbox.SetCell(0, i, '~', termbox.ColorBlue, termbox.ColorBlack)
		}
	}
	cursor := e.GetCursor()
	line := skipCharacters(e.GetLine(cursor.Row), offset.Cols)
	termbox.SetCursor(editor.CellColumn(line, cursor.Col-offset.Cols), cursor.Row-offset.Rows)
	termbox.Flush()
}

// renderLine draws text one grapheme cluster at a time. A termbox cell holds
// a single rune, so only the first rune of a cluster is drawn; the cluster's
// width still decides where the next one starts.
func (s *Screen) renderLine(y int, text string, width int) {
	x := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		runes := g.Runes()
		w := runewidth.StringWidth(g.Str())
		if w == 0 {
			w = 1
		}
		if x+w > width {
			return
		}
		termbox.SetCell(x, y, runes[0], termbox.ColorWhite, termbox.ColorBlack)
		x += w
	}
}

func skipCharacters(line string, n int) string {
	r := []rune(line)
	if n >= len(r) {
		return ""
	}
	return string(r[n:])
}

func (s *Screen) RenderInfoBar(e types.Editor, c types.Commander) {
	cursor := e.GetCursor()
	finalText := fmt.Sprintf(" %d:%d %d lines ", cursor.Row+1, cursor.Col+1, e.GetLineCount())
	name := e.GetFileName()
	if name == "" {
		name = "[new]"
	}
	text := " jot - " + name + " "
	for runewidth.StringWidth(text) < s.size.Cols-len(finalText) {
		text += " "
	}
	text += finalText
	s.renderBar(s.size.Rows-2, text, termbox.ColorBlack, termbox.ColorWhite)
}

func (s *Screen) RenderMessageBar(e types.Editor, c types.Commander) {
	var line string
	switch c.GetMode() {
	case types.ModeLisp:
		line = c.GetLispText()
	default:
		line = c.GetMessage()
	}
	s.renderBar(s.size.Rows-1, line, termbox.ColorWhite, termbox.ColorBlack)
}

func (s *Screen) renderBar(y int, text string, fg, bg termbox.Attribute) {
	x := 0
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if x+w > s.size.Cols {
			return
		}
		termbox.SetCell(x, y, ch, fg, bg)
		x += w
	}
}

func (s *Screen) GetNextEvent() *types.Event {
	event := termbox.PollEvent()
	switch event.Type {
	case termbox.EventKey:
		return &types.Event{Type: types.EventKey, Key: key(event.Key), Ch: event.Ch}
	case termbox.EventResize:
		termbox.Flush()
		return &types.Event{Type: types.EventResize}
	default:
		return &types.Event{Type: types.EventOther}
	}
}

func key(k termbox.Key) types.Key {
	switch k {
	case termbox.KeyArrowDown:
		return types.KeyArrowDown
	case termbox.KeyArrowLeft:
		return types.KeyArrowLeft
	case termbox.KeyArrowRight:
		return types.KeyArrowRight
	case termbox.KeyArrowUp:
		return types.KeyArrowUp
	case termbox.KeyBackspace:
		return types.KeyBackspace
	case termbox.KeyBackspace2:
		return types.KeyBackspace2
	case termbox.KeyCtrlQ:
		return types.KeyCtrlQ
	case termbox.KeyCtrlS:
		return types.KeyCtrlS
	case termbox.KeyCtrlX:
		return types.KeyCtrlX
	case termbox.KeyEnter:
		return types.KeyEnter
	case termbox.KeyEsc:
		return types.KeyEsc
	case termbox.KeySpace:
		return types.KeySpace
	case termbox.KeyTab:
		return types.KeyTab
	default:
		return types.KeyUnsupported
	}
}
