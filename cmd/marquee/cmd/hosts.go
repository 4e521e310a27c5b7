package cmd

import (
	"fmt"

	"github.com/go-drift/marquee/cmd/marquee/internal/tui"
	"github.com/go-drift/marquee/cmd/marquee/internal/view"
	"github.com/go-drift/marquee/pkg/marquee"
)

func init() {
	RegisterCommand(&Command{
		Name:  "tui",
		Short: "Run the marquee in the terminal",
		Long: `Animate the lanes in the terminal. The terminal width picks the
breakpoint (one column counts as 8px), the mouse picks the hover zone,
and the arrow keys scroll the page so the marquee pauses off screen.
Press q or Esc to quit.`,
		Usage: "marquee tui",
		Run: func(args []string) error {
			return runHost(args, tui.Run)
		},
	})
	RegisterCommand(&Command{
		Name:  "view",
		Short: "Run the marquee in a window",
		Long: `Animate the lanes in a desktop window. Resize the window to cross
the breakpoint, move the cursor to the left or right third to steer,
and scroll with the mouse wheel to move the marquee off screen.
Press q or Esc to quit.`,
		Usage: "marquee view",
		Run: func(args []string) error {
			return runHost(args, view.Run)
		},
	})
}

func runHost(args []string, run func([]marquee.Item, marquee.Config) error) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	res, err := loadConfig()
	if err != nil {
		return err
	}
	return run(res.Items, res.Engine)
}
