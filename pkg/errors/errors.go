// Package errors provides structured error reporting for the marquee engine.
//
// The engine itself has almost nothing to report: its numeric edge cases
// self-correct by wrapping. What remains are invalid configuration and
// programming defects such as a frame callback firing after teardown, which
// are routed through a replaceable [ErrorHandler].
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates invalid engine or file configuration.
	KindConfig
	// KindLifecycle indicates use of a component outside its mounted lifetime.
	KindLifecycle
	// KindRender indicates a failure in a rendering host.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindLifecycle:
		return "lifecycle"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// MarqueeError represents a structured error in the marquee engine.
type MarqueeError struct {
	// Op is the operation that failed (e.g., "marquee.Config.Validate").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *MarqueeError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *MarqueeError) Unwrap() error {
	return e.Err
}

// New builds a MarqueeError from a formatted message.
func New(op string, kind ErrorKind, format string, args ...any) *MarqueeError {
	return &MarqueeError{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "marquee.frame").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the engine.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *MarqueeError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
