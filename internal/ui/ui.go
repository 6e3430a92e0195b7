// Package ui handles terminal presentation: output mode detection, styles,
// progress display and the interactive explorer.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Format is the value of the --format flag.
type Format string

const (
	// FormatTerminal styles output when stdout is a terminal.
	FormatTerminal Format = "terminal"
	// FormatPlain never styles output or shows progress.
	FormatPlain Format = "plain"
	// FormatJSON writes machine readable JSON only.
	FormatJSON Format = "json"
)

// ParseFormat validates a --format value. An empty value is FormatTerminal.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatTerminal, nil
	case FormatTerminal, FormatPlain, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (want terminal, plain or json)", s)
}

// OutputMode is how output is rendered after format and terminal detection.
type OutputMode int

const (
	// OutputModeInteractive enables colors, spinners and the explorer
	OutputModeInteractive OutputMode = iota
	// OutputModePlain disables colors and progress
	OutputModePlain
	// OutputModeJSON outputs raw JSON only
	OutputModeJSON
)

// UI bundles the writers and styles commands print with.
type UI struct {
	Mode      OutputMode
	Format    Format
	Writer    io.Writer
	ErrWriter io.Writer
	Styles    *Styles
}

// New creates a UI for format. Terminal output is only styled when w is a
// TTY and NO_COLOR is unset.
func New(w, errW io.Writer, format Format) *UI {
	mode := detectMode(w, format, os.Getenv)
	return &UI{
		Mode:      mode,
		Format:    format,
		Writer:    w,
		ErrWriter: errW,
		Styles:    NewStyles(mode == OutputModeInteractive),
	}
}

func detectMode(w io.Writer, format Format, getenv func(string) string) OutputMode {
	switch format {
	case FormatJSON:
		return OutputModeJSON
	case FormatPlain:
		return OutputModePlain
	}
	if getenv("NO_COLOR") != "" {
		return OutputModePlain
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return OutputModeInteractive
	}
	return OutputModePlain
}

// IsInteractive reports whether output goes to a styled terminal.
func (ui *UI) IsInteractive() bool {
	return ui.Mode == OutputModeInteractive
}

// IsJSON reports whether JSON output was requested.
func (ui *UI) IsJSON() bool {
	return ui.Mode == OutputModeJSON
}

// Warn prints a styled warning to the error writer.
func (ui *UI) Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(ui.ErrWriter, ui.Styles.Warning.Render(ui.Styles.IconWarning+" "+msg))
}
