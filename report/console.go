package report

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Console writes check reports to a fixed width text console.
type Console struct {
	w         io.Writer
	LineWidth int // wrap sequence listings at this many characters
	pass      *color.Color
	fail      *color.Color
	faint     *color.Color
}

// NewConsole creates a console report writing to w. If colored is false,
// no escape sequences are written.
func NewConsole(w io.Writer, colored bool) *Console {
	c := &Console{
		w:         w,
		LineWidth: 65,
		pass:      color.New(color.FgGreen, color.Bold),
		fail:      color.New(color.FgRed, color.Bold),
		faint:     color.New(color.Faint),
	}
	if !colored {
		c.pass.DisableColor()
		c.fail.DisableColor()
		c.faint.DisableColor()
	}
	return c
}

// ConsoleFromTerminal creates a console report for stdout. It checks whether
// stdout is a terminal, and if so it reads the terminal's width and enables
// colors.
func ConsoleFromTerminal() *Console {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return NewConsole(os.Stdout, false)
	}
	c := NewConsole(os.Stdout, true)
	if w, _, err := term.GetSize(fd); err == nil {
		if w > 65 {
			c.LineWidth = w - 10
		} else if w > 30 {
			c.LineWidth = w - 5
		} else if w > 10 {
			c.LineWidth = w
		} else {
			c.LineWidth = 10
		}
	}
	tracer().P("report", "console").Infof("setting line length to %d", c.LineWidth)
	return c
}

// Round prints a one-line summary of a round.
func (c *Console) Round(r Round) {
	if r.Passed() {
		c.pass.Fprint(c.w, "PASS")
	} else {
		c.fail.Fprint(c.w, "FAIL")
	}
	fmt.Fprintf(c.w, " seed=%d commands=%d length=%d", r.Seed, r.Commands, r.Length)
	if !r.Passed() {
		c.faint.Fprintf(c.w, "  %v", r.Err)
	}
	fmt.Fprintln(c.w)
}

// Summary prints all rounds followed by a total.
func (c *Console) Summary(rounds []Round) {
	for _, r := range rounds {
		c.Round(r)
	}
	failed := Failures(rounds)
	if failed == 0 {
		c.pass.Fprintf(c.w, "ok")
	} else {
		c.fail.Fprintf(c.w, "%d of %d rounds failed", failed, len(rounds))
	}
	fmt.Fprintf(c.w, " (%d rounds)\n", len(rounds))
}

// Sequence prints a labeled listing of values, wrapped at LineWidth.
// Positions listed in highlight are colored as failures.
func (c *Console) Sequence(label string, values []int64, highlight ...int) {
	marked := make(map[int]bool, len(highlight))
	for _, i := range highlight {
		marked[i] = true
	}
	col, _ := fmt.Fprintf(c.w, "%s:", label)
	for i, v := range values {
		s := strconv.FormatInt(v, 10)
		if col+1+len(s) > c.LineWidth && col > len(label)+1 {
			fmt.Fprintln(c.w)
			col, _ = fmt.Fprint(c.w, "  ")
		}
		fmt.Fprint(c.w, " ")
		if marked[i] {
			c.fail.Fprint(c.w, s)
		} else {
			fmt.Fprint(c.w, s)
		}
		col += 1 + len(s)
	}
	fmt.Fprintln(c.w)
}

// Line prints a plain line of text, dimmed.
func (c *Console) Line(format string, args ...interface{}) {
	c.faint.Fprintf(c.w, format, args...)
	fmt.Fprintln(c.w)
}
