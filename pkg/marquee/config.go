package marquee

import (
	"math"
	"time"

	"github.com/go-drift/marquee/pkg/errors"
)

// Default configuration values.
const (
	DefaultBaseCycle           = 62400 * time.Millisecond
	DefaultFastSpeed           = 2.1
	DefaultCompactBreakpointPx = 640
	DefaultVisibilityPrerollPx = 50
	DefaultVisibilityThreshold = 0.1
)

// Config holds the construction-time parameters of a marquee. It is not
// mutable once a Marquee has been created.
type Config struct {
	// BaseCycle is the duration of one full loop at speed 1.
	BaseCycle time.Duration
	// FastSpeed is the speed multiplier applied while a hover zone is active.
	FastSpeed float64
	// CompactBreakpointPx is the viewport width below which the compact
	// layout is used.
	CompactBreakpointPx float64
	// VisibilityPrerollPx grows the viewport on every side when testing
	// visibility, so the loop is already running when the marquee scrolls in.
	VisibilityPrerollPx float64
	// VisibilityThreshold is the minimum visible fraction of the marquee's
	// bounds for it to count as on screen.
	VisibilityThreshold float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		BaseCycle:           DefaultBaseCycle,
		FastSpeed:           DefaultFastSpeed,
		CompactBreakpointPx: DefaultCompactBreakpointPx,
		VisibilityPrerollPx: DefaultVisibilityPrerollPx,
		VisibilityThreshold: DefaultVisibilityThreshold,
	}
}

// FastCycle is the loop duration while a hover zone is active. It is always
// derived from BaseCycle and FastSpeed.
func (c Config) FastCycle() time.Duration {
	if c.FastSpeed <= 0 {
		return c.BaseCycle
	}
	return time.Duration(float64(c.BaseCycle) / c.FastSpeed)
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	const op = "marquee.Config.Validate"
	switch {
	case c.BaseCycle <= 0:
		return errors.New(op, errors.KindConfig, "base cycle must be positive, got %v", c.BaseCycle)
	case !finite(c.FastSpeed) || c.FastSpeed <= 0:
		return errors.New(op, errors.KindConfig, "fast speed must be positive, got %v", c.FastSpeed)
	case !finite(c.CompactBreakpointPx) || c.CompactBreakpointPx <= 0:
		return errors.New(op, errors.KindConfig, "compact breakpoint must be positive, got %v", c.CompactBreakpointPx)
	case !finite(c.VisibilityPrerollPx) || c.VisibilityPrerollPx < 0:
		return errors.New(op, errors.KindConfig, "visibility preroll must not be negative, got %v", c.VisibilityPrerollPx)
	case !finite(c.VisibilityThreshold) || c.VisibilityThreshold < 0 || c.VisibilityThreshold > 1:
		return errors.New(op, errors.KindConfig, "visibility threshold must be within [0, 1], got %v", c.VisibilityThreshold)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
