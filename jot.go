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
package main

import (
	"errors"
	"log"
	"os"

	"github.com/timburks/jot/commander"
	"github.com/timburks/jot/editor"
	"github.com/timburks/jot/screen"
	"github.com/timburks/jot/types"
)

func main() {
	os.Exit(run())
}

// run returns the process exit status once every deferred cleanup is done.
func run() int {

	var filename string
	var script string
	logname := os.Getenv("HOME") + "/.jotlog"

	for i := 1; i < len(os.Args); i++ {
		argi := os.Args[i]
		switch argi {
		case "--eval": // eval program
			i++
			if i < len(os.Args) {
				script = os.Args[i]
			} else {
				log.Output(1, "No file specified for --eval option")
				return 2
			}
		case "--log": // log file
			i++
			if i < len(os.Args) {
				logname = os.Args[i]
			} else {
				log.Output(1, "No file specified for --log option")
				return 2
			}
		default:
			filename = argi
		}
	}

	// Open a log file; the terminal belongs to the screen.
	f, err := os.OpenFile(logname, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		log.Output(1, err.Error())
		return 1
	}
	log.SetOutput(f)
	defer f.Close()

	// The editor holds the document being edited.
	e := editor.NewEditor()

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e)

	if filename != "" {
		err = e.OpenFile(filename)
		if err != nil {
			// start with an empty document; it saves to filename only if
			// that file does not exist yet
			log.Output(1, err.Error())
			if !errors.Is(err, os.ErrNotExist) {
				c.SetMessage(err.Error())
			}
		}
	}

	if script != "" {
		// Run a script and exit.
		if err = c.ParseEvalFile(script); err != nil {
			log.Output(1, err.Error())
			return 1
		}
		return 0
	}

	// Create a screen to manage display.
	s := screen.NewScreen()
	if s == nil {
		return 1
	}
	defer s.Close()

	// Run the main event loop.
	for c.IsRunning() {
		s.Render(e, c)
		err = c.ProcessEvent(s.GetNextEvent())
		if err != nil && !errors.Is(err, types.ErrInvalidCommand) {
			log.Output(1, err.Error())
		}
	}
	return 0
}
