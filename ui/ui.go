package ui

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (
	mu    sync.Mutex
	out   io.Writer = os.Stderr
	isTTY bool

	cyan   = lipgloss.Color("6")
	green  = lipgloss.Color("2")
	red    = lipgloss.Color("1")
	yellow = lipgloss.Color("3")
	dim    = lipgloss.Color("8")

	// Styles - exported for use in other packages
	Primary = lipgloss.NewStyle().Foreground(cyan)
	Success = lipgloss.NewStyle().Foreground(green)
	Error   = lipgloss.NewStyle().Foreground(red)
	Warning = lipgloss.NewStyle().Foreground(yellow)
	Dim     = lipgloss.NewStyle().Foreground(dim)
	Bold    = lipgloss.NewStyle().Bold(true)
)

func init() {
	isTTY = term.IsTerminal(int(os.Stderr.Fd()))
	if !isTTY {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// SetOutput redirects diagnostics. Listing output never goes through ui;
// it is written by the commands to their own stdout.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
	if f, ok := w.(*os.File); ok {
		isTTY = term.IsTerminal(int(f.Fd()))
	} else {
		isTTY = false
	}
	if !isTTY {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// IsTTY returns whether the diagnostics writer is a terminal
func IsTTY() bool {
	mu.Lock()
	defer mu.Unlock()
	return isTTY
}

func printf(format string, a ...any) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, format, a...)
}

// Detail prints indented secondary info with arrow
func Detail(msg string) {
	printf("  %s %s\n", Dim.Render("→"), msg)
}

// SuccessMsg prints a success message with checkmark
func SuccessMsg(msg string) {
	printf("%s %s\n", Success.Render("✓"), msg)
}

// ErrorMsg prints an error with formatting and optional hints
func ErrorMsg(title string, err error, hints ...string) {
	printf("%s %s\n", Error.Render("✗"), title)
	if err != nil {
		printf("  %s\n", Dim.Render(err.Error()))
	}
	for _, hint := range hints {
		printf("  %s %s\n", Dim.Render("Hint:"), hint)
	}
}

// WarnMsg prints a warning message
func WarnMsg(msg string) {
	printf("%s %s\n", Warning.Render("!"), msg)
}

// FormatDuration formats duration nicely (e.g., "234ms" or "1.2s")
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// FormatBytes formats bytes nicely (e.g., "890B", "1.2KB" or "3.4MB")
func FormatBytes(b int64) string {
	switch {
	case b < 1024:
		return fmt.Sprintf("%dB", b)
	case b < 1024*1024:
		return fmt.Sprintf("%.1fKB", float64(b)/1024)
	default:
		return fmt.Sprintf("%.1fMB", float64(b)/(1024*1024))
	}
}
