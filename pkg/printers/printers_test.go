package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/timetable/pkg/app"
	"tableflip.dev/timetable/pkg/layout"
	"tableflip.dev/timetable/pkg/lecture"
	"tableflip.dev/timetable/pkg/validate"
)

func withColor(t *testing.T, enabled bool) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = !enabled
	t.Cleanup(func() { color.NoColor = prev })
}

func algebra() *lecture.State {
	return &lecture.State{
		Version: lecture.CurrentVersion,
		Lectures: []*lecture.Lecture{{
			ID:    "l",
			Title: "Algebra",
			Times: []*lecture.TimeSlot{{ID: "t", Weekday: lecture.Monday, BeginTime: "10:00", EndTime: "11:00"}},
			Links: []*lecture.Link{{ID: "k", Label: "Zoom", URL: "https://zoom.us"}},
		}},
	}
}

// 2024-01-01 is a Monday.
func at(hour, minute int) time.Time {
	return time.Date(2024, time.January, 1, hour, minute, 0, 0, time.UTC)
}

func compute(t *testing.T, s *lecture.State, now time.Time) *layout.Timetable {
	t.Helper()
	tt, err := layout.Compute(s, now)
	if err != nil {
		t.Fatalf("Compute() = %v", err)
	}
	return tt
}

func TestGrid(t *testing.T) {
	withColor(t, false)
	pp := &PrettyPrint{Height: 4, ColumnWidth: 12}
	out := pp.Grid(compute(t, algebra(), at(10, 5)))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want header + 4 rows + footer:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "MON") {
		t.Fatalf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "> 10:05") || !strings.Contains(lines[1], "│Algebra") {
		t.Fatalf("first row = %q", lines[1])
	}
	if !strings.Contains(lines[2], "10:00-11:00") {
		t.Fatalf("second row = %q", lines[2])
	}
	if !strings.Contains(lines[5], "11:00") {
		t.Fatalf("footer = %q", lines[5])
	}
}

func TestGridHighlightsCurrent(t *testing.T) {
	withColor(t, true)
	pp := &PrettyPrint{Height: 4, ColumnWidth: 12}

	out := pp.Grid(compute(t, algebra(), at(10, 5)))
	highlighted := currentColor.Sprint(pad("│Algebra", 12))
	if !strings.Contains(out, highlighted) {
		t.Fatalf("current slot not highlighted:\n%q", out)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	for i, line := range lines[:len(lines)-1] {
		if w := ansi.PrintableRuneWidth(line); w != axisWidth+13 {
			t.Fatalf("line %d is %d cells wide, want %d: %q", i, w, axisWidth+13, line)
		}
	}

	out = pp.Grid(compute(t, algebra(), at(9, 0)))
	if strings.Contains(out, highlighted) {
		t.Fatalf("slot highlighted an hour before it starts")
	}
}

func TestGridEmpty(t *testing.T) {
	withColor(t, false)
	pp := &PrettyPrint{}
	out := pp.Grid(compute(t, &lecture.State{}, at(10, 0)))
	if !strings.Contains(out, "no lectures") || !strings.Contains(out, "SUN") || !strings.Contains(out, "SAT") {
		t.Fatalf("empty grid = %q", out)
	}
}

func TestGridZeroSpan(t *testing.T) {
	withColor(t, false)
	s := algebra()
	s.Lectures[0].Times[0].EndTime = "10:00"
	out := (&PrettyPrint{}).Grid(compute(t, s, at(10, 0)))
	if !strings.Contains(out, "│Algebra") {
		t.Fatalf("zero span grid = %q", out)
	}
}

func TestGridLinkRows(t *testing.T) {
	withColor(t, false)
	s := algebra()
	s.Lectures[0].Links = append(s.Lectures[0].Links, &lecture.Link{ID: "k2", URL: "https://notes.example"})
	out := (&PrettyPrint{Height: 6, ColumnWidth: 24}).Grid(compute(t, s, at(9, 0)))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if !strings.Contains(lines[3], "│Zoom") {
		t.Fatalf("third cell row = %q", lines[3])
	}
	if !strings.Contains(lines[4], "│https://notes.example") {
		t.Fatalf("fourth cell row = %q", lines[4])
	}
}

func TestGridOverlap(t *testing.T) {
	withColor(t, false)
	s := algebra()
	s.Lectures = append(s.Lectures, &lecture.Lecture{
		ID:    "g",
		Title: "Geometry",
		Times: []*lecture.TimeSlot{{ID: "t", Weekday: lecture.Monday, BeginTime: "10:30", EndTime: "11:00"}},
	})
	out := (&PrettyPrint{Height: 4, ColumnWidth: 16}).Grid(compute(t, s, at(9, 0)))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if !strings.Contains(lines[1], "│Algebra") {
		t.Fatalf("first row = %q", lines[1])
	}
	if !strings.Contains(lines[3], "│Geometry +1") {
		t.Fatalf("overlap row = %q", lines[3])
	}
}

func TestAgenda(t *testing.T) {
	withColor(t, false)
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf, ShowID: true}
	pp.Agenda(compute(t, lecture.Example(), at(8, 0)))

	out := buf.String()
	for _, want := range []string{"Monday", "Cloud Computing", "10:30-11:45", "Zoom"} {
		if !strings.Contains(out, want) {
			t.Fatalf("agenda missing %q:\n%s", want, out)
		}
	}
}

func TestUpcoming(t *testing.T) {
	withColor(t, false)
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	now := at(9, 30)
	occ, err := layout.Next(algebra(), now, 24*time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	pp.Upcoming(occ, now)
	if out := buf.String(); !strings.Contains(out, "in 30m") || !strings.Contains(out, "Algebra") {
		t.Fatalf("upcoming = %q", out)
	}
}

func TestErrors(t *testing.T) {
	withColor(t, false)
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Errors(validate.Page("a/b", algebra().Lectures))
	if out := buf.String(); !strings.Contains(out, "title") || !strings.Contains(out, "must not contain") {
		t.Fatalf("errors = %q", out)
	}
}

func TestPages(t *testing.T) {
	withColor(t, false)
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Pages([]string{"Demo", "Broken"}, map[string]app.Summary{"Demo": app.Summarize(algebra())})
	out := buf.String()
	if !strings.Contains(out, "Demo") || !strings.Contains(out, "1h") || !strings.Contains(out, "Broken") {
		t.Fatalf("pages = %q", out)
	}

	buf.Reset()
	pp.Pages(nil, nil)
	if !strings.Contains(buf.String(), "none") {
		t.Fatalf("empty pages = %q", buf.String())
	}
}

func TestHours(t *testing.T) {
	for in, want := range map[int]string{0: "0m", 45: "45m", 60: "1h", 150: "2h30m", 65: "1h05m"} {
		if got := Hours(in); got != want {
			t.Fatalf("Hours(%d) = %q, want %q", in, got, want)
		}
	}
}
