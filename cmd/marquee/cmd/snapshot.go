package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-drift/marquee/cmd/marquee/internal/render"
)

func init() {
	RegisterCommand(&Command{
		Name:  "snapshot",
		Short: "Render one frame to a PNG file",
		Long: `Run the engine headless up to a point in time and render every lane
to a PNG image.

Flags:
  --width PX        Viewport and image width in pixels (default 1024)
  --at T            Time of the frame (default 0s)
  --hover ZONE@T    Move the pointer at T (may be repeated)
  --out FILE        Output file (default marquee.png)

Usage:
  marquee snapshot --at 20s --out frame.png
  marquee snapshot --width 480 --hover leading@5s --at 8s`,
		Usage: "marquee snapshot [flags]",
		Run:   runSnapshot,
	})
}

type snapshotOptions struct {
	width  float64
	at     time.Duration
	out    string
	events []event
}

func parseSnapshotArgs(args []string) (snapshotOptions, error) {
	opts := snapshotOptions{width: 1024, out: "marquee.png"}
	for i := 0; i < len(args); i++ {
		name, value, inline := strings.Cut(args[i], "=")
		if !inline {
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires a value", name)
			}
			i++
			value = args[i]
		}

		var err error
		switch name {
		case "--width":
			opts.width, err = strconv.ParseFloat(strings.TrimSuffix(value, "px"), 64)
			if err == nil && opts.width < 1 {
				err = fmt.Errorf("must be at least 1")
			}
		case "--at":
			opts.at, err = time.ParseDuration(value)
			if err == nil && opts.at < 0 {
				err = fmt.Errorf("must not be negative")
			}
		case "--hover":
			var ev event
			ev, err = parseHoverEvent(value)
			opts.events = append(opts.events, ev)
		case "--out":
			opts.out = value
		default:
			return opts, fmt.Errorf("unknown flag %q", name)
		}
		if err != nil {
			return opts, fmt.Errorf("invalid %s %q: %w", name, value, err)
		}
	}
	return opts, nil
}

func runSnapshot(args []string) error {
	opts, err := parseSnapshotArgs(args)
	if err != nil {
		return err
	}
	res, err := loadConfig()
	if err != nil {
		return err
	}

	s, err := newSession(res.Items, res.Engine, opts.width)
	if err != nil {
		return err
	}
	defer s.close()

	// One frame at zero, one at the requested time, with events in between.
	var due []event
	for _, e := range opts.events {
		if e.at <= opts.at {
			due = append(due, e)
		}
	}
	s.frame(0)
	for _, e := range sortEvents(due) {
		s.apply(e)
		s.frame(e.at)
	}
	s.frame(opts.at)

	img := render.Frame(s.m.Layout(), s.m.Offsets(), render.DefaultFrameOptions(int(opts.width)))
	f, err := os.Create(opts.out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", opts.out, err)
	}
	if err := render.WritePNG(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", opts.out, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%s, %d lanes at %s)\n", opts.out, s.m.Layout().Breakpoint, len(s.m.Layout().Lanes), opts.at)
	return nil
}
