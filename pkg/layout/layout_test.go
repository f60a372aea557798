package layout

import (
	"errors"
	"testing"
	"time"

	"tableflip.dev/timetable/pkg/lecture"
	"tableflip.dev/timetable/pkg/timeutil"
)

// 2024-01-01 is a Monday.
func monday(hour, minute int) time.Time {
	return time.Date(2024, time.January, 1, hour, minute, 0, 0, time.UTC)
}

func timeSlot(id string, day lecture.Weekday, begin, end string) *lecture.TimeSlot {
	return &lecture.TimeSlot{ID: id, Weekday: day, BeginTime: begin, EndTime: end}
}

func page(times ...*lecture.TimeSlot) *lecture.State {
	return &lecture.State{
		Version:  lecture.CurrentVersion,
		Lectures: []*lecture.Lecture{{ID: "l", Title: "Algebra", Times: times}},
	}
}

func TestSingleSlot(t *testing.T) {
	s := page(timeSlot("t", lecture.Monday, "10:00", "11:00"))

	tt, err := Compute(s, monday(10, 5))
	if err != nil {
		t.Fatalf("Compute() = %v", err)
	}
	if len(tt.Columns) != 1 || tt.Columns[0].Weekday != lecture.Monday {
		t.Fatalf("columns = %+v, want [MON]", tt.Columns)
	}
	if tt.MinTime != 600 || tt.MaxTime != 660 {
		t.Fatalf("range = %d..%d, want 600..660", tt.MinTime, tt.MaxTime)
	}
	if !tt.Columns[0].Today {
		t.Fatalf("MON column not marked today")
	}
	cell := tt.Columns[0].Cells[0]
	if cell.Top != 0 || cell.Height != 1 {
		t.Fatalf("cell geometry = %v/%v, want 0/1", cell.Top, cell.Height)
	}
	if !cell.Current {
		t.Fatalf("slot not highlighted at 10:05")
	}
	if !tt.ShowIndicator {
		t.Fatalf("indicator hidden at 10:05")
	}
	if want := 5.0 / 60.0; tt.Indicator != want {
		t.Fatalf("Indicator = %v, want %v", tt.Indicator, want)
	}
}

func TestHighlightWindow(t *testing.T) {
	s := page(timeSlot("t", lecture.Monday, "10:00", "11:00"))
	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"before lead", monday(9, 44), false},
		{"lead start", monday(9, 45), true},
		{"during", monday(10, 30), true},
		{"last minute", monday(10, 59), true},
		{"at end", monday(11, 0), false},
		{"other day", monday(10, 30).AddDate(0, 0, 1), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tt, err := Compute(s, tc.at)
			if err != nil {
				t.Fatalf("Compute() = %v", err)
			}
			if got := tt.Columns[0].Cells[0].Current; got != tc.want {
				t.Fatalf("Current = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIndicatorOutsideRange(t *testing.T) {
	s := page(timeSlot("t", lecture.Monday, "10:00", "11:00"))
	tt, err := Compute(s, monday(9, 59))
	if err != nil {
		t.Fatalf("Compute() = %v", err)
	}
	if tt.ShowIndicator {
		t.Fatalf("indicator shown before the first slot")
	}
}

func TestEmptyState(t *testing.T) {
	for _, s := range []*lecture.State{nil, {}, {Lectures: []*lecture.Lecture{{ID: "l"}}}} {
		tt, err := Compute(s, monday(10, 0))
		if err != nil {
			t.Fatalf("Compute() = %v", err)
		}
		if len(tt.Columns) != 7 {
			t.Fatalf("got %d columns, want the full week", len(tt.Columns))
		}
		if tt.Columns[0].Weekday != lecture.Sunday || tt.Columns[6].Weekday != lecture.Saturday {
			t.Fatalf("week not SUN..SAT: %v..%v", tt.Columns[0].Weekday, tt.Columns[6].Weekday)
		}
		if tt.MinTime != 0 || tt.MaxTime != 0 || tt.ShowIndicator {
			t.Fatalf("empty range = %d..%d indicator=%v", tt.MinTime, tt.MaxTime, tt.ShowIndicator)
		}
	}
}

func TestVisibleRangeIsContiguous(t *testing.T) {
	s := page(
		timeSlot("a", lecture.Tuesday, "08:00", "09:00"),
		timeSlot("b", lecture.Friday, "13:00", "15:30"),
	)
	tt, err := Compute(s, monday(12, 0))
	if err != nil {
		t.Fatalf("Compute() = %v", err)
	}
	var got []lecture.Weekday
	for _, c := range tt.Columns {
		got = append(got, c.Weekday)
	}
	want := []lecture.Weekday{lecture.Tuesday, lecture.Wednesday, lecture.Thursday, lecture.Friday}
	if len(got) != len(want) {
		t.Fatalf("columns = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("columns = %v, want %v", got, want)
		}
	}
	if tt.MinTime != 480 || tt.MaxTime != 930 {
		t.Fatalf("range = %d..%d, want 480..930", tt.MinTime, tt.MaxTime)
	}
	if c, _ := tt.Column(lecture.Wednesday); len(c.Cells) != 0 {
		t.Fatalf("WED has %d cells, want none", len(c.Cells))
	}
	fri, _ := tt.Column(lecture.Friday)
	if cell := fri.Cells[0]; cell.Top != 300.0/450.0 || cell.End != 930 {
		t.Fatalf("FRI geometry = %v/%v", cell.Top, cell.Height)
	}
	if tt.ShowIndicator != true || tt.Indicator != 240.0/450.0 {
		t.Fatalf("indicator = %v/%v", tt.ShowIndicator, tt.Indicator)
	}
}

func TestZeroSpan(t *testing.T) {
	s := page(timeSlot("t", lecture.Monday, "10:00", "10:00"))
	tt, err := Compute(s, monday(10, 0))
	if err != nil {
		t.Fatalf("Compute() = %v", err)
	}
	cell := tt.Columns[0].Cells[0]
	if cell.Top != 0 || cell.Height != 0 || tt.Indicator != 0 {
		t.Fatalf("zero span produced %v/%v/%v", cell.Top, cell.Height, tt.Indicator)
	}
}

func TestHeightFromDuration(t *testing.T) {
	s := page(
		timeSlot("a", lecture.Monday, "08:00", "09:00"),
		timeSlot("b", lecture.Monday, "08:07", "08:08"),
		timeSlot("c", lecture.Monday, "12:00", "13:00"),
	)
	tt, err := Compute(s, monday(7, 0))
	if err != nil {
		t.Fatalf("Compute() = %v", err)
	}
	for _, c := range tt.Columns[0].Cells {
		if c.Time.ID != "b" {
			continue
		}
		if want := float64(1) / float64(300); c.Height != want {
			t.Fatalf("Height = %v, want %v", c.Height, want)
		}
		return
	}
	t.Fatal("cell b not laid out")
}

func TestMalformedTime(t *testing.T) {
	s := page(timeSlot("t", lecture.Monday, "ten", "11:00"))
	_, err := Compute(s, monday(10, 0))
	var malformed *timeutil.MalformedTimeError
	if !errors.As(err, &malformed) {
		t.Fatalf("Compute() = %v, want MalformedTimeError", err)
	}
	if malformed.Value != "ten" {
		t.Fatalf("Value = %q", malformed.Value)
	}
}

func TestCurrentCells(t *testing.T) {
	s := lecture.Example()
	tt, err := Compute(s, monday(10, 0))
	if err != nil {
		t.Fatalf("Compute() = %v", err)
	}
	for _, c := range tt.CurrentCells() {
		if c.Time.Weekday != lecture.Monday {
			t.Fatalf("current cell on %v", c.Time.Weekday)
		}
	}
}
