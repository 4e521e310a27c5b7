package testing

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"
)

type fakeT struct {
	name   string
	errors []string
	fatals []string
}

func (f *fakeT) Helper()      {}
func (f *fakeT) Name() string { return f.name }
func (f *fakeT) Errorf(format string, args ...any) {
	f.errors = append(f.errors, fmt.Sprintf(format, args...))
}
func (f *fakeT) Fatalf(format string, args ...any) {
	f.fatals = append(f.fatals, fmt.Sprintf(format, args...))
}

func TestTrace_RoundTripThroughFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traces", "lane.trace.json")
	tr := &Trace{Frames: []Frame{
		{AtMillis: 0, Offsets: []float64{0, 0}},
		{AtMillis: 15600, Offsets: []float64{12.5, 37.5}},
	}}
	if err := tr.UpdateFile(path); err != nil {
		t.Fatalf("UpdateFile: %v", err)
	}

	ft := &fakeT{name: "TestTrace"}
	tr.MatchesFile(ft, path)
	if len(ft.errors) != 0 || len(ft.fatals) != 0 {
		t.Errorf("identical trace should match, got errors=%v fatals=%v", ft.errors, ft.fatals)
	}
}

func TestTrace_DiffToleratesRounding(t *testing.T) {
	a := &Trace{Frames: []Frame{{AtMillis: 1, Offsets: []float64{16.666666666}}}}
	b := &Trace{Frames: []Frame{{AtMillis: 1, Offsets: []float64{16.6666666667}}}}
	if diff := a.Diff(b); diff != "" {
		t.Errorf("expected no diff, got:\n%s", diff)
	}

	c := &Trace{Frames: []Frame{{AtMillis: 1, Offsets: []float64{16.7}}}}
	if diff := a.Diff(c); diff == "" {
		t.Error("expected a diff for a 0.03 offset change")
	}
}

func TestTrace_MissingFile(t *testing.T) {
	ft := &fakeT{name: "TestMissing"}
	(&Trace{}).MatchesFile(ft, filepath.Join(t.TempDir(), "nope.json"))
	if len(ft.fatals) != 1 || !strings.Contains(ft.fatals[0], "MARQUEE_UPDATE_TRACES=1") {
		t.Errorf("expected missing-file fatal with update hint, got %v", ft.fatals)
	}
}
