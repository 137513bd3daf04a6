package ui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// OutputMode determines how results are formatted.
type OutputMode int

const (
	// OutputModeInteractive enables colored, styled output.
	OutputModeInteractive OutputMode = iota
	// OutputModePlain disables styling (for piped output).
	OutputModePlain
	// OutputModeJSON outputs raw JSON only.
	OutputModeJSON
)

// UI is a unified handle for terminal output with TTY detection.
type UI struct {
	Mode      OutputMode
	Writer    io.Writer
	ErrWriter io.Writer
	Styles    *Styles
}

// New creates a UI with automatic TTY detection.
func New(w, errW io.Writer, format string) *UI {
	mode := detectMode(w, format)
	return &UI{
		Mode:      mode,
		Writer:    w,
		ErrWriter: errW,
		Styles:    NewStyles(mode == OutputModeInteractive),
	}
}

func detectMode(w io.Writer, format string) OutputMode {
	if format == "json" {
		return OutputModeJSON
	}
	if f, ok := w.(*os.File); ok {
		if term.IsTerminal(int(f.Fd())) {
			return OutputModeInteractive
		}
	}
	return OutputModePlain
}

// IsJSON reports whether JSON output mode is enabled.
func (u *UI) IsJSON() bool {
	return u.Mode == OutputModeJSON
}
