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
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/dimchansky/utfbom"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

const (
	// LineBreak separates lines on disk.
	LineBreak = "\r\n"
	// Terminator ends every in-memory line except the last.
	Terminator = "\n"
)

// Decode splits file content into lines. A bare "\n" is accepted as a line
// break along with "\r\n".
func Decode(raw []byte) ([]string, error) {
	text, err := decodeText(raw)
	if err != nil {
		return nil, &ReadError{Err: err}
	}
	text = strings.ReplaceAll(text, LineBreak, Terminator)
	segments := strings.Split(text, Terminator)
	lines := make([]string, len(segments))
	last := len(segments) - 1
	for i, segment := range segments {
		if i < last {
			segment += Terminator
		}
		lines[i] = segment
	}
	return lines, nil
}

// decodeText returns raw as a UTF-8 string, skipping any byte-order mark and
// transcoding UTF-16 and UTF-32 content.
func decodeText(raw []byte) (string, error) {
	r, enc := utfbom.Skip(bytes.NewReader(raw))
	var decoder *encoding.Decoder
	switch enc {
	case utfbom.UTF16BigEndian:
		decoder = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	case utfbom.UTF16LittleEndian:
		decoder = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	case utfbom.UTF32BigEndian:
		decoder = utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM).NewDecoder()
	case utfbom.UTF32LittleEndian:
		decoder = utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM).NewDecoder()
	}
	var src io.Reader = r
	if decoder != nil {
		src = transform.NewReader(r, decoder)
	}
	b, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidEncoding
	}
	return string(b), nil
}

// Encode joins lines into file content, writing each terminator as a line break.
func Encode(lines []string) ([]byte, error) {
	var buf bytes.Buffer
	for i, line := range lines {
		content, terminated := strings.CutSuffix(line, Terminator)
		if strings.Contains(content, Terminator) {
			return nil, &WriteError{Err: fmt.Errorf("line %d: %w", i+1, ErrEmbeddedTerminator)}
		}
		buf.WriteString(content)
		if terminated {
			buf.WriteString(LineBreak)
		}
	}
	return buf.Bytes(), nil
}
