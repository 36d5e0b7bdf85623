// Package ui reports progress and notices to the person running the tool.
//
// Commands talk to a Notifier rather than printing directly, so the fetch
// command can be driven from tests with a Recorder and from the CLI with a
// pterm-backed terminal notifier.
package ui

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// Notifier receives user-facing messages
type Notifier interface {
	Info(msg string)
	Success(msg string)
	// Important is for non-fatal notices the user should act on
	Important(msg string)
	Error(msg string)
}

// ConfigureColor turns pterm colour output on or off for the process. Colour is
// off when noColor is set or w is not a terminal. Call it once at startup.
func ConfigureColor(w io.Writer, noColor bool) {
	if noColor || !IsTerminal(w) {
		pterm.DisableColor()
		return
	}
	pterm.EnableColor()
}

// TerminalNotifier prints messages with pterm prefix printers
type TerminalNotifier struct {
	info    *pterm.PrefixPrinter
	success *pterm.PrefixPrinter
	warning *pterm.PrefixPrinter
	err     *pterm.PrefixPrinter
}

// NewTerminalNotifier creates a notifier writing to w. Colour follows ConfigureColor.
func NewTerminalNotifier(w io.Writer) *TerminalNotifier {
	return &TerminalNotifier{
		info:    pterm.Info.WithWriter(w),
		success: pterm.Success.WithWriter(w),
		warning: pterm.Warning.WithWriter(w),
		err:     pterm.Error.WithWriter(w),
	}
}

func (n *TerminalNotifier) Info(msg string)      { n.info.Println(msg) }
func (n *TerminalNotifier) Success(msg string)   { n.success.Println(msg) }
func (n *TerminalNotifier) Important(msg string) { n.warning.Println(msg) }
func (n *TerminalNotifier) Error(msg string)     { n.err.Println(msg) }

// IsTerminal reports whether w is a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Discard is a Notifier that drops every message
var Discard Notifier = discard{}

type discard struct{}

func (discard) Info(string)      {}
func (discard) Success(string)   {}
func (discard) Important(string) {}
func (discard) Error(string)     {}
