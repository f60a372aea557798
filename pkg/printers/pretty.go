package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/timetable/pkg/app"
	"tableflip.dev/timetable/pkg/timeutil"
	"tableflip.dev/timetable/pkg/validate"
)

const (
	DefaultHeight      = 16
	DefaultColumnWidth = 18
	untitled           = "(untitled)"
)

type PrettyPrint struct {
	// Out defaults to color.Output.
	Out         io.Writer
	Height      int
	ColumnWidth int
	ShowID      bool
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) height() int {
	if pp.Height <= 0 {
		return DefaultHeight
	}
	return pp.Height
}

func (pp *PrettyPrint) columnWidth() int {
	if pp.ColumnWidth <= 0 {
		return DefaultColumnWidth
	}
	return pp.ColumnWidth
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int, noun string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d %s", count, noun)
	if count != 1 {
		_, _ = c.Fprint(pp.out(), "s")
	}
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) None() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

// Pages lists saved pages with their size.
func (pp *PrettyPrint) Pages(keys []string, summaries map[string]app.Summary) {
	if len(keys) == 0 {
		pp.None()
		return
	}
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Page"), bold.Sprint("Lectures"), bold.Sprint("Slots"), bold.Sprint("Weekly"))
	for _, k := range keys {
		sum, ok := summaries[k]
		if !ok {
			tbl.AddRow(k, "-", "-", "-")
			continue
		}
		tbl.AddRow(k, sum.Lectures, sum.Slots, Hours(sum.Minutes))
	}
	tbl.RightAlign(1)
	tbl.RightAlign(2)
	tbl.RightAlign(3)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Errors prints validation problems, one per row.
func (pp *PrettyPrint) Errors(errs []validate.Error) {
	red := color.New(color.FgRed)
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.Wrap = true
	tbl.MaxColWidth = 60
	tbl.AddRow(bold.Sprint("Path"), bold.Sprint("Problem"))
	for _, e := range errs {
		tbl.AddRow(red.Sprint(e.Path.String()), e.Message)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Hours renders minutes as "1h30m".
func Hours(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh%02dm", h, m)
}

func span(begin, end int) string {
	return timeutil.FormatTime(begin) + "-" + timeutil.FormatTime(end)
}

// pad fits s, which may carry escape sequences, into exactly width cells.
func pad(s string, width int) string {
	s = truncate.StringWithTail(s, uint(width), "…")
	if w := ansi.PrintableRuneWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

func titleOf(title string) string {
	if strings.TrimSpace(title) == "" {
		return untitled
	}
	return title
}
