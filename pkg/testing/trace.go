package testing

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Frame is one painted frame: when it happened relative to Epoch and the
// offset of every lane.
type Frame struct {
	AtMillis int64     `json:"atMillis"`
	Offsets  []float64 `json:"offsets"`
}

// Trace is a sequence of painted frames.
type Trace struct {
	Frames []Frame `json:"frames"`
}

// traceTolerance absorbs float formatting differences in golden files.
const traceTolerance = 1e-6

// MatchesFile compares this trace against a golden file. On mismatch it
// reports a diff and instructions for updating. When MARQUEE_UPDATE_TRACES=1
// is set, the file is silently updated instead.
func (tr *Trace) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("MARQUEE_UPDATE_TRACES") == "1" {
		if err := tr.UpdateFile(path); err != nil {
			t.Fatalf("failed to update trace: %v", err)
		}
		return
	}

	expected, err := LoadTrace(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("trace file missing: %s\n\nTo create: MARQUEE_UPDATE_TRACES=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load trace: %v", err)
		return
	}

	if diff := tr.Diff(expected); diff != "" {
		t.Errorf("trace mismatch: %s (-expected +actual)\n%s\n\nTo update: MARQUEE_UPDATE_TRACES=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this trace to the given path, creating directories as
// needed.
func (tr *Trace) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := tr.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a readable difference between other and this trace, or the
// empty string when they agree within tolerance.
func (tr *Trace) Diff(other *Trace) string {
	return cmp.Diff(other, tr, cmpopts.EquateApprox(0, traceTolerance), cmpopts.EquateEmpty())
}

// Marshal encodes the trace as indented JSON.
func (tr *Trace) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(tr); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// LoadTrace reads a trace written by UpdateFile.
func LoadTrace(path string) (*Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tr Trace
	if err := json.Unmarshal(data, &tr); err != nil {
		return nil, err
	}
	return &tr, nil
}
