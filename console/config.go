package console

import (
	"os"

	"golang.org/x/term"
)

// DefaultLineWidth is used whenever output does not go to a terminal.
const DefaultLineWidth = 72

// DefaultBarWidth is the number of segments of a progress bar.
const DefaultBarWidth = 20

// Config holds presentation parameters for a Printer.
type Config struct {
	LineWidth int  // wrap long traversal listings at this width, in ‘en’s
	BarWidth  int  // segments of progress bars
	Colors    bool // use ANSI colors
}

// ConfigFromTerminal is a simple helper for creating a Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{
		LineWidth: DefaultLineWidth,
		BarWidth:  DefaultBarWidth,
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Colors = true
		if w, _, err := term.GetSize(fd); err == nil {
			if w > 30 {
				config.LineWidth = w - 2
			} else {
				config.LineWidth = 30
			}
		}
	}
	T().P("console", "config").Infof("setting line length to %d en", config.LineWidth)
	return config
}

func (config *Config) normalized() *Config {
	c := Config{LineWidth: DefaultLineWidth, BarWidth: DefaultBarWidth}
	if config != nil {
		c = *config
	}
	if c.LineWidth <= 0 {
		c.LineWidth = DefaultLineWidth
	}
	if c.BarWidth <= 0 {
		c.BarWidth = DefaultBarWidth
	}
	return &c
}
