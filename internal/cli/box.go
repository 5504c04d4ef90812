package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const defaultBoxWidth = 72

var (
	defaultBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		Padding(1, 2)
)

// renderBoxedMessage is split from printBoxedMessage so that the output
// can be verified without a terminal
func renderBoxedMessage(width int, color AnsiColor, header, message string) string {
	if width <= 0 || width > defaultBoxWidth {
		width = defaultBoxWidth
	}
	header = lipgloss.NewStyle().Bold(true).Render(header)
	boxStyle :=
		defaultBoxStyle.
			BorderForeground(lipgloss.Color(color)).
			Align(lipgloss.Left).
			Width(width)
	return boxStyle.Render(fmt.Sprintf("%s\n\n%s", header, message))
}

func printBoxedMessage(color AnsiColor, header, message string) {
	width, _, _ := term.GetSize(int(os.Stdout.Fd()))
	fmt.Println(renderBoxedMessage(width, color, header, message))
}

func PrintBoxedErrorMessage(message string) {
	printBoxedMessage(AnsiRed, "🔴 ERROR", message)
}

func PrintBoxedInfoMessage(message string) {
	printBoxedMessage(AnsiBlue, "🔵 INFORMATION", message)
}

func PrintBoxedWarningMessage(message string) {
	printBoxedMessage(AnsiYellow, "🟡 WARNING", message)
}

func PrintBoxedSuccessMessage(message string) {
	printBoxedMessage(AnsiGreen, "✅ SUCCESS", message)
}
