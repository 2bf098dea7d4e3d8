package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	primaryStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8C00"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00"))
	positiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00B050"))
	negativeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4040"))
	silentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	headerStyle   = lipgloss.NewStyle().Bold(true)
)

// colorEnabled gates all styling: plain text when piped or NO_COLOR is set.
var colorEnabled = os.Getenv("NO_COLOR") == "" &&
	(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))

func render(s lipgloss.Style, text string) string {
	if !colorEnabled {
		return text
	}
	return s.Render(text)
}

func Primary(text string) string  { return render(primaryStyle, text) }
func Error(text string) string    { return render(errorStyle, text) }
func Warning(text string) string  { return render(warningStyle, text) }
func Positive(text string) string { return render(positiveStyle, text) }
func Negative(text string) string { return render(negativeStyle, text) }
func Silent(text string) string   { return render(silentStyle, text) }
func Header(text string) string   { return render(headerStyle, text) }

// Signed styles a signed "HH:MM" balance green or red.
func Signed(text string) string {
	if len(text) > 0 && text[0] == '-' {
		return Negative(text)
	}
	return Positive(text)
}
