package repl

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/kakkky/cnsole/version"
)

const banner = `                       _
  ___ _ __  ___  ___ | | ___
 / __| '_ \/ __|/ _ \| |/ _ \
| (__| | | \__ \ (_) | |  __/
 \___|_| |_|___/\___/|_|\___|`

var bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

// PrintBanner は起動時のバナーを表示する
func PrintBanner(w io.Writer) {
	style := lipgloss.NewRenderer(w).NewStyle().Inherit(bannerStyle)
	fmt.Fprintln(w, style.Render(banner))
	fmt.Fprintf(w, "%s\nType :help for the list of commands.\n\n", version.String())
}
