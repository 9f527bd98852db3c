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
	"os"
)

// ReadFile loads and decodes the file at path.
func ReadFile(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	lines, err := Decode(b)
	if err != nil {
		var readErr *ReadError
		if errors.As(err, &readErr) {
			readErr.Path = path
		}
		return nil, err
	}
	return lines, nil
}

// WriteFile encodes lines and replaces the file at path with them.
func WriteFile(path string, lines []string) error {
	b, err := Encode(lines)
	if err != nil {
		var writeErr *WriteError
		if errors.As(err, &writeErr) {
			writeErr.Path = path
		}
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if _, err = f.Write(b); err != nil {
		f.Close()
		return &WriteError{Path: path, Err: err}
	}
	if err = f.Close(); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
