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
package commander

import (
	"fmt"
	"log"

	"github.com/timburks/jot/types"
)

// The Commander converts user input into commands for the Editor.
type Commander struct {
	editor   types.Editor
	mode     types.Mode // editor mode
	lispText string     // lisp command as it is being typed
	message  string     // status message
}

// NewCommander returns a commander for e and binds the lisp primitives to it.
func NewCommander(e types.Editor) *Commander {
	c := &Commander{editor: e, mode: types.ModeEdit}
	c.bindLisp()
	return c
}

func (c *Commander) GetMode() types.Mode {
	return c.mode
}

func (c *Commander) IsRunning() bool {
	return c.mode != types.ModeQuit
}

func (c *Commander) ProcessEvent(event *types.Event) error {
	switch event.Type {
	case types.EventKey:
		return c.ProcessKey(event)
	default:
		return nil
	}
}

func (c *Commander) ProcessKey(event *types.Event) error {
	switch c.mode {
	case types.ModeEdit:
		return c.ProcessKeyEditMode(event)
	case types.ModeLisp:
		return c.ProcessKeyLispMode(event)
	}
	return nil
}

func (c *Commander) ProcessKeyEditMode(event *types.Event) error {
	e := c.editor

	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case types.KeyCtrlQ:
			c.mode = types.ModeQuit
		case types.KeyCtrlS:
			c.Save("")
		case types.KeyCtrlX:
			c.mode = types.ModeLisp
			c.lispText = "("
		case types.KeyBackspace, types.KeyBackspace2:
			e.DeleteBackward()
		case types.KeyEnter:
			e.SplitLine()
		case types.KeySpace:
			e.InsertChar(' ')
		case types.KeyTab:
			e.InsertChar(' ')
			for e.GetCursor().Col%8 != 0 {
				e.InsertChar(' ')
			}
		case types.KeyArrowUp:
			return c.move(types.MoveUp)
		case types.KeyArrowDown:
			return c.move(types.MoveDown)
		case types.KeyArrowLeft:
			return c.move(types.MoveLeft)
		case types.KeyArrowRight:
			return c.move(types.MoveRight)
		}
		return nil
	}
	if ch != 0 {
		e.InsertChar(ch)
	}
	return nil
}

func (c *Commander) ProcessKeyLispMode(event *types.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case types.KeyEsc:
			c.mode = types.ModeEdit
		case types.KeyEnter:
			c.mode = types.ModeEdit
			c.message = c.ParseEval(c.lispText)
		case types.KeyBackspace, types.KeyBackspace2:
			if r := []rune(c.lispText); len(r) > 0 {
				c.lispText = string(r[0 : len(r)-1])
			}
		case types.KeySpace:
			c.lispText += " "
		}
		return nil
	}
	if ch != 0 {
		c.lispText += string(ch)
	}
	return nil
}

func (c *Commander) move(direction types.Direction) error {
	err := c.editor.MoveCursor(direction)
	if err != nil {
		c.message = err.Error()
	}
	return err
}

// Save writes the buffer and reports the outcome on the message bar.
func (c *Commander) Save(path string) error {
	err := c.editor.WriteFile(path)
	if err != nil {
		log.Output(1, err.Error())
		c.message = err.Error()
		return err
	}
	c.message = fmt.Sprintf("saved %s", c.editor.GetFileName())
	return nil
}

func (c *Commander) GetLispText() string {
	return c.lispText
}

func (c *Commander) GetMessage() string {
	return c.message
}

func (c *Commander) SetMessage(message string) {
	c.message = message
}
