/*
File    : monkeylite/internal/replsvc/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package replsvc implements the interactive Read-Eval-Print Loop: one
// environment persists across lines, so `let` bindings and function
// definitions from earlier input remain visible to later input.
package replsvc

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"monkeylite/environment"
	"monkeylite/eval"
	"monkeylite/internal/ui"
	"monkeylite/object"
)

// Repl is a configured interactive session: banner text plus the prompt
// readline displays before each line.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	Prompt  string
}

// New creates a Repl with the given banner and prompt configuration.
func New(banner, version, author, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, Prompt: prompt}
}

// PrintBanner writes the startup banner to w.
func (r *Repl) PrintBanner(w io.Writer) {
	ui.Banner(w, r.Line, r.Banner, "Version: "+r.Version+" | Author: "+r.Author)
	ui.Info(w, "Type your code and press enter. Type '.exit' to quit.")
}

// Start runs the main loop: read a line, evaluate it against a shared
// environment, print the result, repeat. A parse error or evaluation
// error is printed and the loop continues — unlike file execution, a
// single bad line never ends the session.
func (r *Repl) Start(w io.Writer) {
	r.PrintBanner(w)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	env := environment.New()

	for {
		line, err := rl.Readline()
		if err != nil {
			w.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			w.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.evalLine(w, line, env)
	}
}

func (r *Repl) evalLine(w io.Writer, line string, env *environment.Environment) {
	defer func() {
		if recovered := recover(); recovered != nil {
			ui.Error(w, fmt.Sprintf("[RUNTIME ERROR] %v", recovered))
		}
	}()

	result := eval.Run(line, env)
	if result == nil {
		return
	}
	if result.Type() == object.ERROR_OBJ {
		ui.Error(w, result.Inspect())
		return
	}
	ui.Result(w, result.Inspect())
}
