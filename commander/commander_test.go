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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/timburks/jot/editor"
	"github.com/timburks/jot/types"
)

func setup() (*editor.Editor, *Commander) {
	e := editor.NewEditor()
	return e, NewCommander(e)
}

func typeText(c *Commander, text string) {
	for _, ch := range text {
		switch ch {
		case ' ':
			c.ProcessEvent(&types.Event{Type: types.EventKey, Key: types.KeySpace})
		case '\n':
			c.ProcessEvent(&types.Event{Type: types.EventKey, Key: types.KeyEnter})
		default:
			c.ProcessEvent(&types.Event{Type: types.EventKey, Ch: ch})
		}
	}
}

func press(c *Commander, key types.Key) error {
	return c.ProcessEvent(&types.Event{Type: types.EventKey, Key: key})
}

func TestTyping(t *testing.T) {
	e, c := setup()
	typeText(c, "ab\nc")
	press(c, types.KeyBackspace2)
	press(c, types.KeyBackspace)
	if lines := e.Buffer.Lines(); len(lines) != 1 || lines[0] != "ab" {
		t.Errorf("Unexpected lines: %q", lines)
	}
	if cursor := e.GetCursor(); cursor != (types.Point{Row: 0, Col: 2}) {
		t.Errorf("Unexpected cursor: %+v", cursor)
	}
}

func TestArrowKeys(t *testing.T) {
	e, c := setup()
	typeText(c, "hello\nhi")
	press(c, types.KeyArrowUp)
	press(c, types.KeyArrowRight)
	press(c, types.KeyArrowRight)
	if cursor := e.GetCursor(); cursor != (types.Point{Row: 0, Col: 4}) {
		t.Errorf("Unexpected cursor: %+v", cursor)
	}
	press(c, types.KeyArrowDown)
	press(c, types.KeyArrowLeft)
	if cursor := e.GetCursor(); cursor != (types.Point{Row: 1, Col: 1}) {
		t.Errorf("Unexpected cursor: %+v", cursor)
	}
}

func TestTab(t *testing.T) {
	e, c := setup()
	typeText(c, "ab")
	press(c, types.KeyTab)
	if line := e.GetLine(0); line != "ab      " {
		t.Errorf("Unexpected line: '%s'", line)
	}
}

func TestSaveAndQuit(t *testing.T) {
	e, c := setup()
	e.FileName = filepath.Join(t.TempDir(), "out.txt")
	typeText(c, "one\ntwo")
	press(c, types.KeyCtrlS)
	b, err := os.ReadFile(e.FileName)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(b) != "one\r\ntwo" {
		t.Errorf("Unexpected file contents: %q", b)
	}
	if !strings.HasPrefix(c.GetMessage(), "saved") {
		t.Errorf("Unexpected message: '%s'", c.GetMessage())
	}
	press(c, types.KeyCtrlQ)
	if c.IsRunning() {
		t.Errorf("Commander still running after quit")
	}
}

func TestSaveFailureIsReported(t *testing.T) {
	e, c := setup()
	e.FileName = filepath.Join(t.TempDir(), "missing", "out.txt")
	typeText(c, "keep me")
	press(c, types.KeyCtrlS)
	if !strings.Contains(c.GetMessage(), "write") {
		t.Errorf("Unexpected message: '%s'", c.GetMessage())
	}
	if line := e.GetLine(0); line != "keep me" {
		t.Errorf("Buffer changed after failed save: '%s'", line)
	}
	if !c.IsRunning() {
		t.Errorf("Commander stopped after failed save")
	}
}

func TestSaveAfterUnreadableFileKeepsIt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin1.txt")
	original := []byte("caf\xe9\r\nna\xefve\r\n")
	if err := os.WriteFile(path, original, 0644); err != nil {
		t.Fatal(err)
	}
	e, c := setup()
	if err := e.OpenFile(path); err == nil {
		t.Fatalf("Expected a read error for %s", path)
	}
	if e.GetFileName() != "" {
		t.Errorf("Unreadable file bound to the session: %s", e.GetFileName())
	}
	typeText(c, "x")
	press(c, types.KeyCtrlS)
	if !strings.Contains(c.GetMessage(), "no file name") {
		t.Errorf("Unexpected message: '%s'", c.GetMessage())
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(b) != string(original) {
		t.Errorf("File changed after save: %q", b)
	}
}

func TestSaveAfterMissingFileCreatesIt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")
	e, c := setup()
	if err := e.OpenFile(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Unexpected error: %v", err)
	}
	typeText(c, "new")
	press(c, types.KeyCtrlS)
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(b) != "new" {
		t.Errorf("Unexpected file contents: %q", b)
	}
}

func TestLispMode(t *testing.T) {
	e, c := setup()
	press(c, types.KeyCtrlX)
	if c.GetMode() != types.ModeLisp {
		t.Fatalf("Unexpected mode: %v", c.GetMode())
	}
	typeText(c, `insert-text "héllo")`)
	press(c, types.KeyEnter)
	if c.GetMode() != types.ModeEdit {
		t.Errorf("Unexpected mode: %v", c.GetMode())
	}
	if line := e.GetLine(0); line != "héllo" {
		t.Errorf("Unexpected line: '%s'", line)
	}
}

func TestLispEditing(t *testing.T) {
	e, c := setup()
	c.ParseEval(`(insert-text "ab")`)
	c.ParseEval(`(newline)`)
	c.ParseEval(`(insert-char "字")`)
	c.ParseEval(`(backspace)`)
	c.ParseEval(`(backspace)`)
	if lines := e.Buffer.Lines(); len(lines) != 1 || lines[0] != "ab" {
		t.Errorf("Unexpected lines: %q", lines)
	}
	c.ParseEval(`(left)`)
	c.ParseEval(`(move "left")`)
	if cursor := e.GetCursor(); cursor != (types.Point{Row: 0, Col: 0}) {
		t.Errorf("Unexpected cursor: %+v", cursor)
	}
	c.ParseEval(`(move 'right)`)
	if cursor := e.GetCursor(); cursor != (types.Point{Row: 0, Col: 1}) {
		t.Errorf("Unexpected cursor after quoted move: %+v", cursor)
	}
	if count := c.ParseEval(`(line-count)`); count != "1" {
		t.Errorf("Unexpected line count: '%s'", count)
	}
}

func TestLispInvalidDirection(t *testing.T) {
	e, c := setup()
	c.ParseEval(`(insert-text "ab")`)
	c.ParseEval(`(move "sideways")`)
	if cursor := e.GetCursor(); cursor != (types.Point{Row: 0, Col: 2}) {
		t.Errorf("Unexpected cursor: %+v", cursor)
	}
	if !strings.Contains(c.GetMessage(), types.ErrInvalidCommand.Error()) {
		t.Errorf("Unexpected message: '%s'", c.GetMessage())
	}
	if !c.IsRunning() {
		t.Errorf("Commander stopped after invalid command")
	}
}

func TestParseEvalFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")
	script := filepath.Join(dir, "script.lsp")
	program := `(insert-text "one") (newline) (insert-text "two") (save-as "` + out + `")`
	if err := os.WriteFile(script, []byte(program), 0644); err != nil {
		t.Fatal(err)
	}
	e, c := setup()
	if err := c.ParseEvalFile(script); err != nil {
		t.Fatalf("Script failed: %v", err)
	}
	if e.GetFileName() != out {
		t.Errorf("Unexpected file name: %s", e.GetFileName())
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(b) != "one\r\ntwo" {
		t.Errorf("Unexpected file contents: %q", b)
	}
	if err = c.ParseEvalFile(filepath.Join(dir, "missing.lsp")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Unexpected error: %v", err)
	}
}
