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
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/steelseries/golisp"

	"github.com/timburks/jot/types"
)

// bindLisp makes the editing primitives available to lisp expressions.
// golisp keeps a single global environment, so the primitives drive the
// most recently created commander.
func (c *Commander) bindLisp() {
	golisp.MakePrimitiveFunction("insert-char", "1", c.lispInsertChar)
	golisp.MakePrimitiveFunction("insert-text", "1", c.lispInsertText)
	golisp.MakePrimitiveFunction("backspace", "0", c.lispBackspace)
	golisp.MakePrimitiveFunction("newline", "0", c.lispNewline)
	golisp.MakePrimitiveFunction("move", "1", c.lispMove)
	golisp.MakePrimitiveFunction("up", "0", c.lispMoveTo(types.MoveUp))
	golisp.MakePrimitiveFunction("down", "0", c.lispMoveTo(types.MoveDown))
	golisp.MakePrimitiveFunction("left", "0", c.lispMoveTo(types.MoveLeft))
	golisp.MakePrimitiveFunction("right", "0", c.lispMoveTo(types.MoveRight))
	golisp.MakePrimitiveFunction("cursor", "0", c.lispCursor)
	golisp.MakePrimitiveFunction("line", "1", c.lispLine)
	golisp.MakePrimitiveFunction("line-count", "0", c.lispLineCount)
	golisp.MakePrimitiveFunction("save", "0", c.lispSave)
	golisp.MakePrimitiveFunction("save-as", "1", c.lispSaveAs)
	golisp.MakePrimitiveFunction("quit", "0", c.lispQuit)
}

// ParseEval evaluates a lisp expression and returns its printed value or error.
func (c *Commander) ParseEval(command string) string {
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		log.Printf("lisp: %s: %v", command, err)
		return err.Error()
	}
	return golisp.String(value)
}

// ParseEvalFile evaluates every expression of the lisp script stored at path.
func (c *Commander) ParseEvalFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	_, err = golisp.ParseAndEval("(begin " + string(b) + "\n)")
	return err
}

func stringArgument(args *golisp.Data) (string, error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return "", errors.New("a string argument is required")
	}
	return golisp.StringValue(val), nil
}

func (c *Commander) lispInsertChar(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	s, err := stringArgument(args)
	if err != nil {
		return nil, err
	}
	r := []rune(s)
	if len(r) != 1 {
		return nil, fmt.Errorf("insert-char requires a single character, got %q", s)
	}
	c.editor.InsertChar(r[0])
	return c.lispCursor(nil, env)
}

func (c *Commander) lispInsertText(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	s, err := stringArgument(args)
	if err != nil {
		return nil, err
	}
	for _, r := range s {
		c.editor.InsertChar(r)
	}
	return c.lispCursor(nil, env)
}

func (c *Commander) lispBackspace(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c.editor.DeleteBackward()
	return c.lispCursor(nil, env)
}

func (c *Commander) lispNewline(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c.editor.SplitLine()
	return c.lispCursor(nil, env)
}

// lispMove accepts a direction name as a string or a quoted symbol, as in
// (move "up") or (move 'up). Unknown names are reported and leave the
// cursor where it is.
func (c *Commander) lispMove(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	val := golisp.Car(args)
	var name string
	if golisp.StringP(val) {
		name = golisp.StringValue(val)
	} else {
		name = golisp.String(val)
	}
	direction, err := types.ParseDirection(name)
	if err != nil {
		log.Printf("move cursor: %v", err)
		c.message = err.Error()
		return golisp.LispFalse, nil
	}
	if err = c.move(direction); err != nil {
		return golisp.LispFalse, nil
	}
	return c.lispCursor(nil, env)
}

func (c *Commander) lispMoveTo(direction types.Direction) func(*golisp.Data, *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		if err := c.move(direction); err != nil {
			return golisp.LispFalse, nil
		}
		return c.lispCursor(nil, env)
	}
}

// cursor is returned as (column row)
func (c *Commander) lispCursor(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	cursor := c.editor.GetCursor()
	return golisp.InternalMakeList(
		golisp.IntegerWithValue(int64(cursor.Col)),
		golisp.IntegerWithValue(int64(cursor.Row))), nil
}

func (c *Commander) lispLine(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	val := golisp.Car(args)
	if !golisp.IntegerP(val) {
		return nil, errors.New("line requires an integer argument")
	}
	row := int(golisp.IntegerValue(val))
	if row < 0 || row >= c.editor.GetLineCount() {
		return nil, fmt.Errorf("line %d out of range", row)
	}
	return golisp.StringWithValue(c.editor.GetLine(row)), nil
}

func (c *Commander) lispLineCount(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.IntegerWithValue(int64(c.editor.GetLineCount())), nil
}

func (c *Commander) lispSave(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if err := c.Save(""); err != nil {
		return nil, err
	}
	return golisp.LispTrue, nil
}

func (c *Commander) lispSaveAs(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	path, err := stringArgument(args)
	if err != nil {
		return nil, err
	}
	if err = c.Save(path); err != nil {
		return nil, err
	}
	return golisp.LispTrue, nil
}

func (c *Commander) lispQuit(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c.mode = types.ModeQuit
	return golisp.LispTrue, nil
}
