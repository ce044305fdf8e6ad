package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/toba/shellkit/internal/config"
)

// printBanner renders a short startup banner through glamour
// (SPEC_FULL.md §3.4), grounded on the
// glamour.NewTermRenderer(glamour.WithAutoStyle(), ...) pattern in
// toba-jig/cmd/todo_show.go. Rendering failures are non-fatal: the shell
// starts either way.
func printBanner(cfg *config.Config) {
	if !cfg.ColorEnabled() {
		return
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(60),
	)
	if err != nil {
		return
	}
	out, err := renderer.Render("# shellkit\n\nType `exit` to quit.\n")
	if err != nil {
		return
	}
	fmt.Fprint(os.Stdout, out)
}
