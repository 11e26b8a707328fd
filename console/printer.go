package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/bintree/stats"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// Printer writes a human readable transcript of tree operations to a writer.
//
// The first write error is remembered and suppresses all further output; it
// is available from Err.
type Printer struct {
	w      io.Writer
	config *Config
	colors palette
	err    error
}

type palette struct {
	heading *color.Color
	rule    *color.Color
	value   *color.Color
	found   *color.Color
	missing *color.Color
	bar     *color.Color
}

var setupGraphemes sync.Once

// NewPrinter creates a printer for w. If config is nil, sensible defaults for
// non-interactive output are used.
func NewPrinter(w io.Writer, config *Config) *Printer {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	p := &Printer{
		w:      w,
		config: config.normalized(),
		colors: makeDefaultPalette(),
	}
	if !p.config.Colors {
		for _, c := range []*color.Color{p.colors.heading, p.colors.rule, p.colors.value,
			p.colors.found, p.colors.missing, p.colors.bar} {
			c.DisableColor()
		}
	}
	return p
}

func makeDefaultPalette() palette {
	return palette{
		heading: color.New(color.FgCyan, color.Bold),
		rule:    color.New(color.FgBlue),
		value:   color.New(color.FgYellow),
		found:   color.New(color.FgGreen, color.Bold),
		missing: color.New(color.FgRed),
		bar:     color.New(color.FgGreen),
	}
}

// Err returns the first error encountered while writing, if any.
func (p *Printer) Err() error {
	return p.err
}

func (p *Printer) printf(c *color.Color, format string, args ...any) {
	if p.err != nil {
		return
	}
	if c == nil {
		_, p.err = fmt.Fprintf(p.w, format, args...)
	} else {
		_, p.err = c.Fprintf(p.w, format, args...)
	}
	if p.err != nil {
		T().Errorf("console: %s", p.err.Error())
	}
}

// Line outputs a plain line of text.
func (p *Printer) Line(format string, args ...any) {
	p.printf(nil, format+"\n", args...)
}

// Banner outputs lines of text framed by horizontal rules.
func (p *Printer) Banner(lines ...string) {
	rule := strings.Repeat("=", 40)
	p.printf(p.colors.rule, "%s\n", rule)
	for _, l := range lines {
		p.printf(p.colors.heading, "   %s\n", l)
	}
	p.printf(p.colors.rule, "%s\n", rule)
}

// Phase outputs an underlined heading for step n of a demonstration.
func (p *Printer) Phase(n int, title string) {
	heading := fmt.Sprintf("Phase %d: %s", n, title)
	p.printf(nil, "\n")
	p.printf(p.colors.heading, "%s\n", heading)
	p.printf(p.colors.rule, "%s\n", strings.Repeat("-", DisplayWidth(heading)))
}

// Insertion reports the insertion of value as step out of total steps.
func (p *Printer) Insertion(value int, step, total int) {
	p.printf(nil, "Inserting node with value: %3d ", value)
	p.printf(p.colors.bar, "%s\n", ProgressBar(step, total, p.config.BarWidth))
}

// Metric outputs a label and a value.
func (p *Printer) Metric(label string, value any) {
	p.printf(nil, "%s: ", label)
	p.printf(p.colors.value, "%v\n", value)
}

// Traversal outputs a sequence of values, separated by arrows. Lines longer
// than the configured line width are wrapped and indented to the start of the
// sequence.
func (p *Printer) Traversal(name string, values []int) {
	prefix := name + " Traversal: "
	for _, l := range wrapSequence(prefix, values, p.config.LineWidth) {
		p.printf(nil, "%s\n", l)
	}
}

// Search reports the outcome of a search for target.
func (p *Printer) Search(target int, found bool) {
	p.printf(nil, "Search for value %3d: ", target)
	if found {
		p.printf(p.colors.found, "FOUND\n")
	} else {
		p.printf(p.colors.missing, "NOT FOUND\n")
	}
}

// Statistics outputs a statistics summary. If err is stats.ErrNoData, a
// notice about missing data is printed instead.
func (p *Printer) Statistics(s stats.Summary, err error) {
	if errors.Is(err, stats.ErrNoData) {
		p.Line("No data available for statistical analysis.")
		return
	} else if err != nil {
		p.Line("Statistical analysis failed: %s", err.Error())
		return
	}
	rows := []struct {
		label string
		value string
	}{
		{"Dataset Size", fmt.Sprintf("%d elements", s.Count)},
		{"Sum Total", strconv.Itoa(s.Sum)},
		{"Mean Value", fmt.Sprintf("%.2f", s.Mean)},
		{"Median Value", fmt.Sprintf("%.2f", s.Median)},
		{"Minimum Value", strconv.Itoa(s.Min)},
		{"Maximum Value", strconv.Itoa(s.Max)},
		{"Value Range", strconv.Itoa(s.Range())},
	}
	width := 0
	for _, r := range rows {
		width = max(width, DisplayWidth(r.label))
	}
	for _, r := range rows {
		pad := strings.Repeat(" ", width-DisplayWidth(r.label))
		p.printf(nil, "%s:%s ", r.label, pad)
		p.printf(p.colors.value, "%s\n", r.value)
	}
}

// ProgressBar renders step out of total as a bar of width segments, followed
// by the percentage done.
func ProgressBar(step, total, width int) string {
	filled, percent := 0, 0
	width = max(width, 0)
	if total > 0 {
		step = min(max(step, 0), total)
		filled = step * width / total
		percent = step * 100 / total
	}
	return fmt.Sprintf("[%s%s] %3d%%",
		strings.Repeat("=", filled), strings.Repeat(" ", width-filled), percent)
}

// DisplayWidth returns the number of fixed-width positions s occupies on a
// terminal. ASCII text occupies one position per byte; everything else is
// measured by grapheme cluster.
func DisplayWidth(s string) int {
	if isASCII(s) {
		return len(s)
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return uax11.StringWidth(grapheme.StringFromString(s), uax11.LatinContext)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func wrapSequence(prefix string, values []int, linewidth int) []string {
	const sep = " -> "
	var lines []string
	var line strings.Builder
	line.WriteString(prefix)
	width := DisplayWidth(prefix)
	cont := strings.Repeat(" ", max(width-3, 0)) + "-> " // continuation lines
	for i, v := range values {
		token := strconv.Itoa(v)
		if i > 0 {
			if width+DisplayWidth(sep+token) > linewidth {
				lines = append(lines, line.String())
				line.Reset()
				line.WriteString(cont)
				width = DisplayWidth(cont)
			} else {
				line.WriteString(sep)
				width += DisplayWidth(sep)
			}
		}
		line.WriteString(token)
		width += DisplayWidth(token)
	}
	return append(lines, line.String())
}
