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
package types

import (
	"errors"
	"fmt"
)

// ErrInvalidCommand is reported when the input layer asks for something the
// editor does not understand. It never changes the buffer.
var ErrInvalidCommand = errors.New("invalid command")

// Editor modes
type Mode int

const (
	ModeEdit Mode = 0
	ModeLisp Mode = 1
	ModeQuit Mode = 9999
)

func (m Mode) String() string {
	switch m {
	case ModeEdit:
		return "edit"
	case ModeLisp:
		return "lisp"
	case ModeQuit:
		return "quit"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Move directions
type Direction int

const (
	MoveUp    Direction = 0
	MoveDown  Direction = 1
	MoveRight Direction = 2
	MoveLeft  Direction = 3
)

func (d Direction) String() string {
	switch d {
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveRight:
		return "right"
	case MoveLeft:
		return "left"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection converts a direction name ("up", "down", "left", "right").
func ParseDirection(name string) (Direction, error) {
	switch name {
	case "up":
		return MoveUp, nil
	case "down":
		return MoveDown, nil
	case "right":
		return MoveRight, nil
	case "left":
		return MoveLeft, nil
	}
	return 0, fmt.Errorf("%w: unknown direction %q", ErrInvalidCommand, name)
}

// Point is a cursor position. Col counts characters, not bytes.
type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// Editor is the view of an editing session used by the input and render layers.
type Editor interface {
	GetCursor() Point
	GetOffset() Size
	SetSize(size Size)
	Scroll()
	GetFileName() string
	GetLineCount() int
	GetLine(row int) string

	InsertChar(c rune)
	DeleteBackward()
	SplitLine()
	MoveCursor(direction Direction) error

	ReadFile(path string) error
	WriteFile(path string) error
}

type Commander interface {
	GetMode() Mode
	GetLispText() string
	GetMessage() string
}
