package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

const (
	// ServerTag prefixes every access log line.
	ServerTag = "[SERVER]"
	// InfoTag prefixes banner and lifecycle notices.
	InfoTag = "[INFO]"

	ruleWidth = 50
)

// Console writes human-facing output: the start-up banner, lifecycle notices
// and the category tag of access log lines. Structured records go through zap.
type Console struct {
	out    io.Writer
	colors bool
	title  *color.Color
	rule   *color.Color
	label  *color.Color
	value  *color.Color
	tag    *color.Color
}

// NewConsole creates a console writing to out. With colors disabled plain text
// is written; otherwise colors follow terminal detection.
func NewConsole(out io.Writer, colors bool) *Console {
	c := &Console{
		out:    out,
		colors: colors,
		title:  color.New(color.Bold),
		rule:   color.New(color.FgHiBlue),
		label:  color.New(color.FgHiCyan),
		value:  color.New(color.FgHiYellow),
		tag:    color.New(color.FgHiGreen),
	}
	if !colors {
		for _, col := range []*color.Color{c.title, c.rule, c.label, c.value, c.tag} {
			col.DisableColor()
		}
	}
	return c
}

// Writer returns the underlying output.
func (c *Console) Writer() io.Writer {
	return c.out
}

// Colors reports whether colors were requested.
func (c *Console) Colors() bool {
	return c.colors
}

// Banner prints the start-up block.
func (c *Console) Banner(title, url, root string) {
	rule := c.rule.Sprint(strings.Repeat("=", ruleWidth))

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.title.Sprint(title))
	fmt.Fprintln(c.out, rule)
	c.Infof("Server started at %s", c.value.Sprint(url))
	c.Infof("Serving files from: %s", c.value.Sprint(root))
	c.Infof("Press Ctrl+C to stop the server")
	fmt.Fprintln(c.out, rule)
}

// Infof prints a single [INFO] line.
func (c *Console) Infof(format string, args ...any) {
	fmt.Fprintf(c.out, "%s %s\n", c.label.Sprint(InfoTag), fmt.Sprintf(format, args...))
}

// Stopped prints the shutdown notice.
func (c *Console) Stopped() {
	fmt.Fprintln(c.out)
	c.Infof("Server stopped by user")
}

// Tag renders the access log category tag.
func (c *Console) Tag() string {
	return c.tag.Sprint(ServerTag)
}
