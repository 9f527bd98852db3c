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

// Package editor implements the text model of jot.
// A Buffer holds the lines of a document and a cursor; it changes only
// through InsertChar, DeleteBackward, SplitLine and MoveCursor, and each of
// them leaves the cursor inside the buffer. An Editor is one session
// around a Buffer: it loads and saves it and tracks what part is on screen.
package editor
