package errors

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"
	"time"
)

func TestMarqueeErrorString(t *testing.T) {
	err := New("marquee.Config.Validate", KindConfig, "fast speed must be positive, got %v", -1.0)
	got := err.Error()
	want := "marquee.Config.Validate [config]: fast speed must be positive, got -1"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestMarqueeErrorUnwrap(t *testing.T) {
	inner := stderrors.New("boom")
	err := &MarqueeError{Op: "test.op", Kind: KindRender, Err: inner}
	if !stderrors.Is(err, inner) {
		t.Error("errors.Is should see the wrapped error")
	}
	var target *MarqueeError
	if !stderrors.As(err, &target) || target.Kind != KindRender {
		t.Error("errors.As should recover the MarqueeError")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindLifecycle, "lifecycle"},
		{KindRender, "render"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}

	err.Op = "marquee.frame"
	if got, want := err.Error(), "panic in marquee.frame: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *MarqueeError
	prev := SetHandler(&testHandler{onError: func(err *MarqueeError) { captured = err }})
	defer SetHandler(prev)

	Report(&MarqueeError{Op: "test.op", Kind: KindLifecycle, Err: stderrors.New("late frame")})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
	if captured.StackTrace == "" {
		t.Error("lifecycle errors should carry a stack trace")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	prev := SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer SetHandler(prev)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
}

func TestSetHandlerNil(t *testing.T) {
	prev := SetHandler(nil)
	defer SetHandler(prev)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}
	h.HandleError(New("marquee.frame", KindLifecycle, "frame after dispose"))
	h.HandlePanic(&PanicError{Op: "marquee.listener", Value: "bad"})

	out := buf.String()
	for _, want := range []string{
		"[marquee error] marquee.frame: frame after dispose",
		"[marquee panic] marquee.listener: bad",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

type testHandler struct {
	onError func(*MarqueeError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *MarqueeError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
