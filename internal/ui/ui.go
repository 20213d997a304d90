/*
File    : monkeylite/internal/ui/ui.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ui centralizes the colored terminal output shared by the REPL
// and the run command: results in yellow, errors in red, banners and
// separators in green/blue/cyan.
package ui

import (
	"io"

	"github.com/fatih/color"
)

var (
	Blue   = color.New(color.FgBlue)
	Yellow = color.New(color.FgYellow)
	Red    = color.New(color.FgRed)
	Green  = color.New(color.FgGreen)
	Cyan   = color.New(color.FgCyan)
)

// Result prints a successful evaluation result in yellow.
func Result(w io.Writer, s string) {
	Yellow.Fprintf(w, "%s\n", s)
}

// Error prints an error message in red.
func Error(w io.Writer, s string) {
	Red.Fprintf(w, "%s\n", s)
}

// Info prints an informational line in cyan.
func Info(w io.Writer, s string) {
	Cyan.Fprintf(w, "%s\n", s)
}

// Banner prints the startup banner: a top separator, the banner body in
// green, a bottom separator, the version/author line in yellow, and a
// closing separator.
func Banner(w io.Writer, line, body, meta string) {
	Blue.Fprintf(w, "%s\n", line)
	Green.Fprintf(w, "%s\n", body)
	Blue.Fprintf(w, "%s\n", line)
	Yellow.Fprintf(w, "%s\n", meta)
	Blue.Fprintf(w, "%s\n", line)
}
