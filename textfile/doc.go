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

// Package textfile converts between the bytes of a text file and the lines
// held by an editor buffer.
//
// Files are stored with CRLF line breaks. In memory, every line except the
// last ends with a single '\n'. The last line never gets a synthetic
// terminator, so a file that ends with a line break decodes to a trailing
// empty line and Decode(Encode(lines)) always returns lines.
package textfile
