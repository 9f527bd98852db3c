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
package textfile

import (
	"errors"
)

var (
	// ErrInvalidEncoding is wrapped by a ReadError when the content is not text.
	ErrInvalidEncoding = errors.New("content is not valid UTF-8")
	// ErrEmbeddedTerminator is wrapped by a WriteError when a line contains a
	// terminator anywhere but at its end.
	ErrEmbeddedTerminator = errors.New("line contains an embedded terminator")
)

// A ReadError records a failure to load a file.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	if e.Path == "" {
		return "read: " + e.Err.Error()
	}
	return "read " + e.Path + ": " + e.Err.Error()
}

func (e *ReadError) Unwrap() error { return e.Err }

// A WriteError records a failure to save a file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	if e.Path == "" {
		return "write: " + e.Err.Error()
	}
	return "write " + e.Path + ": " + e.Err.Error()
}

func (e *WriteError) Unwrap() error { return e.Err }
