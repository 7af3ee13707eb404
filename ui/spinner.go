package ui

import (
	"os"

	"github.com/charmbracelet/huh/spinner"
	"golang.org/x/term"
)

// SpinnerAction runs an action with a spinner, returning any error from the action
type SpinnerAction func() error

// RunWithSpinner runs an action with a spinner display.
// The spinner draws on stdout, so both stdout and the diagnostics writer
// must be terminals; otherwise the title is printed as a plain line.
func RunWithSpinner(title string, action SpinnerAction) error {
	if !IsTTY() || !term.IsTerminal(int(os.Stdout.Fd())) {
		Detail(title)
		return action()
	}

	var actionErr error
	spinErr := spinner.New().
		Title(title).
		Action(func() {
			actionErr = action()
		}).
		Run()

	if spinErr != nil {
		return spinErr
	}
	return actionErr
}
