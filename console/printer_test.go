package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/bintree/stats"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestProgressBar(t *testing.T) {
	for _, tc := range []struct {
		step, total, width int
		expected           string
	}{
		{1, 15, 20, "[=                   ]   6%"},
		{8, 15, 20, "[==========          ]  53%"},
		{15, 15, 20, "[====================] 100%"},
		{0, 4, 4, "[    ]   0%"},
		{3, 0, 4, "[    ]   0%"},
		{9, 4, 4, "[====] 100%"},
	} {
		if bar := ProgressBar(tc.step, tc.total, tc.width); bar != tc.expected {
			t.Errorf("ProgressBar(%d, %d, %d) = %q, expected %q",
				tc.step, tc.total, tc.width, bar, tc.expected)
		}
	}
}

func TestTraversalWrapping(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	defer func() { gtrace.CoreTracer = gtrace.NoOpTrace }()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	values := []int{10, 20, 25, 30, 35, 40, 45, 50, 55, 60, 65, 70, 75, 80, 85}
	var bf bytes.Buffer
	p := NewPrinter(&bf, &Config{LineWidth: 200})
	p.Traversal("In-Order", values)
	single := "In-Order Traversal: 10 -> 20 -> 25 -> 30 -> 35 -> 40 -> 45 -> 50 -> 55 -> 60 -> 65 -> 70 -> 75 -> 80 -> 85\n"
	if bf.String() != single {
		t.Errorf("unexpected traversal line %q", bf.String())
	}
	bf.Reset()
	p = NewPrinter(&bf, &Config{LineWidth: 40})
	p.Traversal("In-Order", values)
	t.Logf("\n%s", bf.String())
	lines := strings.Split(strings.TrimSuffix(bf.String(), "\n"), "\n")
	if len(lines) < 2 {
		t.Fatalf("expected traversal to be wrapped, is %q", bf.String())
	}
	for _, l := range lines {
		if len(l) > 40 {
			t.Errorf("line exceeds width: %q", l)
		}
	}
	for _, l := range lines[1:] {
		if !strings.HasPrefix(l, strings.Repeat(" ", 17)+"-> ") {
			t.Errorf("continuation line not indented: %q", l)
		}
	}
	joined := strings.Join(strings.Fields(bf.String()), " ")
	if joined != strings.Join(strings.Fields(single), " ") {
		t.Errorf("wrapped traversal lost values: %q", joined)
	}
}

func TestSearchAndMetric(t *testing.T) {
	var bf bytes.Buffer
	p := NewPrinter(&bf, nil)
	p.Search(25, true)
	p.Search(100, false)
	p.Metric("Total Node Count", 15)
	expected := "Search for value  25: FOUND\nSearch for value 100: NOT FOUND\nTotal Node Count: 15\n"
	if bf.String() != expected {
		t.Errorf("unexpected output %q", bf.String())
	}
}

func TestStatistics(t *testing.T) {
	var bf bytes.Buffer
	p := NewPrinter(&bf, nil)
	s, err := stats.Of([]int{10, 20, 30, 40})
	p.Statistics(s, err)
	out := bf.String()
	t.Logf("\n%s", out)
	for _, line := range []string{
		"Dataset Size:  4 elements",
		"Sum Total:     100",
		"Mean Value:    25.00",
		"Median Value:  25.00",
		"Minimum Value: 10",
		"Maximum Value: 40",
		"Value Range:   30",
	} {
		if !strings.Contains(out, line+"\n") {
			t.Errorf("statistics output is missing %q", line)
		}
	}
	bf.Reset()
	s, err = stats.Of(nil)
	p.Statistics(s, err)
	if bf.String() != "No data available for statistical analysis.\n" {
		t.Errorf("unexpected output for empty data: %q", bf.String())
	}
}

func TestDisplayWidth(t *testing.T) {
	for _, tc := range []struct {
		s     string
		width int
	}{
		{"", 0},
		{"10 -> 20", 8},
		{"Value Range:", 12},
		{"Phase 1: Tree Construction and Node Insertion", 45},
	} {
		if w := DisplayWidth(tc.s); w != tc.width {
			t.Errorf("DisplayWidth(%q) = %d, expected %d", tc.s, w, tc.width)
		}
	}
}

func TestPhaseUnderline(t *testing.T) {
	var bf bytes.Buffer
	p := NewPrinter(&bf, nil)
	p.Phase(1, "Tree Construction and Node Insertion")
	lines := strings.Split(strings.TrimPrefix(bf.String(), "\n"), "\n")
	if len(lines) < 2 {
		t.Fatalf("unexpected phase output %q", bf.String())
	}
	if len(lines[1]) != len(lines[0]) || strings.Trim(lines[1], "-") != "" {
		t.Errorf("underline %q does not match heading %q", lines[1], lines[0])
	}
}

type failingWriter struct{}

var errBrokenPipe = errors.New("broken pipe")

func (failingWriter) Write([]byte) (int, error) { return 0, errBrokenPipe }

func TestPrinterRemembersWriteError(t *testing.T) {
	p := NewPrinter(failingWriter{}, nil)
	p.Banner("Demo")
	p.Line("more")
	if !errors.Is(p.Err(), errBrokenPipe) {
		t.Errorf("expected broken pipe error, have %v", p.Err())
	}
}
