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
	"github.com/mattn/go-runewidth"
)

// CellColumn returns the terminal column of the character at col in line.
func CellColumn(line string, col int) int {
	text := []rune(line)
	if col > len(text) {
		col = len(text)
	}
	if col < 0 {
		col = 0
	}
	return cellWidth(text[0:col])
}

func cellWidth(text []rune) int {
	x := 0
	for _, r := range text {
		x += runewidth.RuneWidth(r)
	}
	return x
}
