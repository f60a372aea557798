package printers

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/timetable/pkg/layout"
	"tableflip.dev/timetable/pkg/lecture"
	"tableflip.dev/timetable/pkg/timeutil"
)

const axisWidth = len("> 00:00 ")

var (
	currentColor   = color.New(color.FgHiGreen, color.Bold)
	indicatorColor = color.New(color.FgHiRed, color.Bold)
	faintColor     = color.New(color.Faint)
)

// rowSpan maps a cell's fractional position onto [first, last) grid rows.
// Every cell takes at least one row.
func rowSpan(c layout.Cell, rows int) (int, int) {
	first := int(math.Floor(c.Top * float64(rows)))
	last := int(math.Ceil((c.Top + c.Height) * float64(rows)))
	if first >= rows {
		first = rows - 1
	}
	if last <= first {
		last = first + 1
	}
	return first, last
}

func indicatorRow(tt *layout.Timetable, rows int) int {
	if !tt.ShowIndicator {
		return -1
	}
	r := int(tt.Indicator * float64(rows))
	if r >= rows {
		r = rows - 1
	}
	return r
}

// Timetable prints the weekday grid: one column per visible weekday, rows
// spanning MinTime to MaxTime, slots drawn as blocks, current slots and the
// now marker highlighted.
func (pp *PrettyPrint) Timetable(tt *layout.Timetable) {
	_, _ = fmt.Fprint(pp.out(), pp.Grid(tt))
}

// Grid renders the weekday grid to a string.
func (pp *PrettyPrint) Grid(tt *layout.Timetable) string {
	var b strings.Builder
	width := pp.columnWidth()

	b.WriteString(strings.Repeat(" ", axisWidth))
	for _, col := range tt.Columns {
		head := pad(string(col.Weekday), width)
		if col.Today {
			head = color.New(color.Bold, color.Underline).Sprint(head)
		} else {
			head = color.New(color.Bold).Sprint(head)
		}
		b.WriteString(head + " ")
	}
	b.WriteString("\n")

	cells := 0
	for _, col := range tt.Columns {
		cells += len(col.Cells)
	}
	if cells == 0 {
		b.WriteString(faintColor.Sprint(strings.Repeat(" ", axisWidth) + "no lectures"))
		b.WriteString("\n")
		return b.String()
	}

	rows := pp.height()
	if tt.MaxTime == tt.MinTime {
		rows = 1
	}
	marker := indicatorRow(tt, rows)
	span := tt.MaxTime - tt.MinTime

	for r := 0; r < rows; r++ {
		if r == marker {
			b.WriteString(indicatorColor.Sprint(pad("> "+timeutil.FormatTime(tt.Now), axisWidth)))
		} else {
			b.WriteString(faintColor.Sprint(pad("  "+timeutil.FormatTime(tt.MinTime+r*span/rows), axisWidth)))
		}
		for _, col := range tt.Columns {
			b.WriteString(pp.gridCell(col, r, rows, width))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	b.WriteString(faintColor.Sprint(pad("  "+timeutil.FormatTime(tt.MaxTime), axisWidth)))
	b.WriteString("\n")
	return b.String()
}

// gridCell draws row r of col. Where cells overlap, the one that started
// most recently is drawn and its title counts the others hidden under it.
// Rows below the title and time list the lecture's link labels.
func (pp *PrettyPrint) gridCell(col layout.Column, r, rows, width int) string {
	var (
		top     *layout.Cell
		topRow  int
		overlap int
	)
	for i := range col.Cells {
		c := &col.Cells[i]
		first, last := rowSpan(*c, rows)
		if r < first || r >= last {
			continue
		}
		overlap++
		if top == nil || first >= topRow {
			top, topRow = c, first
		}
	}
	if top == nil {
		return strings.Repeat(" ", width)
	}

	var text string
	switch off := r - topRow; {
	case off == 0:
		text = titleOf(top.Lecture.Title)
		if overlap > 1 {
			text = fmt.Sprintf("%s +%d", text, overlap-1)
		}
	case off == 1:
		text = span(top.Begin, top.End)
	case off-2 < len(top.Lecture.Links):
		text = linkLabel(top.Lecture.Links[off-2])
	}
	s := pad("│"+text, width)
	if top.Current {
		return currentColor.Sprint(s)
	}
	return s
}

// Agenda prints the timetable as a table ordered by weekday then start time.
func (pp *PrettyPrint) Agenda(tt *layout.Timetable) {
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 50
	header := []interface{}{bold.Sprint("Day"), bold.Sprint("Time"), bold.Sprint("Lecture"), bold.Sprint("Links")}
	if pp.ShowID {
		header = append([]interface{}{bold.Sprint("ID")}, header...)
	}
	tbl.AddRow(header...)

	rows := 0
	for _, col := range tt.Columns {
		for _, c := range sortedCells(col.Cells) {
			rows++
			row := []interface{}{lecture.FullName(col.Weekday), span(c.Begin, c.End), titleOf(c.Lecture.Title), links(c.Lecture)}
			if pp.ShowID {
				row = append([]interface{}{faintColor.Sprint(c.Lecture.ID + "/" + c.Time.ID)}, row...)
			}
			if c.Current {
				for i := range row {
					row[i] = currentColor.Sprint(row[i])
				}
			}
			tbl.AddRow(row...)
		}
	}
	if rows == 0 {
		pp.None()
		return
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Upcoming prints occurrences with how soon each starts relative to now.
func (pp *PrettyPrint) Upcoming(occ []layout.Occurrence, now time.Time) {
	if len(occ) == 0 {
		pp.None()
		return
	}
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("When"), bold.Sprint("Time"), bold.Sprint("Lecture"), bold.Sprint("Starts"))
	for _, o := range occ {
		starts := "in " + timeutil.FormatWindow(o.Start.Sub(now))
		if o.InProgress(now) {
			starts = currentColor.Sprint("now")
		}
		tbl.AddRow(o.Start.Format("Mon Jan 2"), o.Span(), titleOf(o.Lecture.Title), starts)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

func sortedCells(cells []layout.Cell) []layout.Cell {
	out := append([]layout.Cell(nil), cells...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Begin < out[j].Begin })
	return out
}

func links(l *lecture.Lecture) string {
	parts := make([]string, 0, len(l.Links))
	for _, k := range l.Links {
		parts = append(parts, linkLabel(k))
	}
	return strings.Join(parts, ", ")
}

func linkLabel(k *lecture.Link) string {
	if k.Label == "" {
		return k.URL
	}
	return k.Label
}
