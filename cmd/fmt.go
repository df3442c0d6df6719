package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown on the terminal using the configured theme.
// Rendering failures fall back on the raw markdown.
func printMarkdown(md string) {
	theme := "dark"
	if st, err := openStore().Settings(); err == nil {
		theme = st.Theme
	}
	out, err := glamour.Render(md, theme)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
