package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-drift/marquee/cmd/marquee/internal/config"
	mtesting "github.com/go-drift/marquee/pkg/testing"
)

func init() {
	RegisterCommand(&Command{
		Name:  "simulate",
		Short: "Print lane offsets frame by frame",
		Long: `Run the engine headless against a manual clock and print the offset
of every lane at each frame. Control events are scripted with a time
offset from the first frame.

Flags:
  --width PX          Viewport width in pixels (default 1024)
  --frames N          Number of frames to run (default 10)
  --fps N             Frames per simulated second (default 1)
  --hover ZONE@T      Move the pointer to leading, trailing or neutral at T
  --resize PX@T       Change the viewport width at T
  --hide T            Scroll the marquee off screen at T
  --show T            Scroll it back at T
  --json              Print a JSON trace instead of a table

Event flags may be repeated.

Usage:
  marquee simulate --frames 20 --hover leading@5s --hover neutral@12s
  marquee simulate --resize 480@3s --json`,
		Usage: "marquee simulate [flags]",
		Run:   runSimulate,
	})
}

type simulateOptions struct {
	width  float64
	frames int
	fps    float64
	json   bool
	events []event
}

func defaultSimulateOptions() simulateOptions {
	return simulateOptions{width: 1024, frames: 10, fps: 1}
}

func parseSimulateArgs(args []string) (simulateOptions, error) {
	opts := defaultSimulateOptions()
	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, value, inline := strings.Cut(arg, "=")
		next := func() (string, error) {
			if inline {
				return value, nil
			}
			if i+1 >= len(args) {
				return "", fmt.Errorf("%s requires a value", name)
			}
			i++
			return args[i], nil
		}

		var (
			v   string
			err error
			ev  event
		)
		switch name {
		case "--json":
			opts.json = true
			continue
		case "--width", "--frames", "--fps", "--hover", "--resize", "--hide", "--show":
			if v, err = next(); err != nil {
				return opts, err
			}
		default:
			return opts, fmt.Errorf("unknown flag %q", arg)
		}

		switch name {
		case "--width":
			opts.width, err = strconv.ParseFloat(strings.TrimSuffix(v, "px"), 64)
			if err == nil && opts.width <= 0 {
				err = fmt.Errorf("must be positive")
			}
		case "--frames":
			opts.frames, err = strconv.Atoi(v)
			if err == nil && opts.frames <= 0 {
				err = fmt.Errorf("must be positive")
			}
		case "--fps":
			opts.fps, err = strconv.ParseFloat(v, 64)
			if err == nil && opts.fps <= 0 {
				err = fmt.Errorf("must be positive")
			}
		case "--hover":
			ev, err = parseHoverEvent(v)
			opts.events = append(opts.events, ev)
		case "--resize":
			ev, err = parseResizeEvent(v)
			opts.events = append(opts.events, ev)
		case "--hide":
			ev, err = parseTimeEvent(eventHide, v)
			opts.events = append(opts.events, ev)
		case "--show":
			ev, err = parseTimeEvent(eventShow, v)
			opts.events = append(opts.events, ev)
		}
		if err != nil {
			return opts, fmt.Errorf("invalid %s %q: %w", name, v, err)
		}
	}
	return opts, nil
}

func (o simulateOptions) interval() time.Duration {
	return time.Duration(float64(time.Second) / o.fps)
}

func runSimulate(args []string) error {
	opts, err := parseSimulateArgs(args)
	if err != nil {
		return err
	}
	res, err := loadConfig()
	if err != nil {
		return err
	}
	return simulate(os.Stdout, res, opts)
}

func simulate(w io.Writer, res *config.Resolved, opts simulateOptions) error {
	s, err := newSession(res.Items, res.Engine, opts.width)
	if err != nil {
		return err
	}
	defer s.close()

	if opts.json {
		trace := &mtesting.Trace{}
		s.run(opts.frames, opts.interval(), opts.events, func(int, []event) {
			trace.Frames = append(trace.Frames, mtesting.Frame{
				AtMillis: s.elapsed().Milliseconds(),
				Offsets:  s.m.Offsets(),
			})
		})
		data, err := trace.Marshal()
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	fmt.Fprintf(w, "%5s  %9s  %-7s  %-8s  %s\n", "frame", "time", "layout", "hover", "offsets")
	s.run(opts.frames, opts.interval(), opts.events, func(i int, applied []event) {
		st := s.m.State()
		var sb strings.Builder
		for _, o := range st.LaneOffsets() {
			fmt.Fprintf(&sb, "%8.3f", o)
		}
		if !st.Visible {
			sb.WriteString("  (paused)")
		}
		for _, e := range applied {
			fmt.Fprintf(&sb, "  <- %s", e)
		}
		fmt.Fprintf(w, "%5d  %8.3fs  %-7s  %-8s  %s\n",
			i, s.elapsed().Seconds(), st.Layout.Breakpoint, st.Hover, sb.String())
	})
	return nil
}
