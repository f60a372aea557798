// Package layout turns a page into timetable geometry: which weekday columns
// are visible, where each time slot sits vertically, where the current-time
// marker goes and which slots are happening now.
package layout

import (
	"time"

	"tableflip.dev/timetable/pkg/lecture"
	"tableflip.dev/timetable/pkg/timeutil"
)

const (
	// HighlightLead is how many minutes before its start a slot is current.
	HighlightLead = 15
	// HighlightTrail is how many minutes before its end a slot stops being current.
	HighlightTrail = 1
)

// Timetable is the render geometry of a page at a given instant.
type Timetable struct {
	Columns []Column
	// MinTime and MaxTime bound the vertical axis in minutes since midnight.
	MinTime int
	MaxTime int
	// Now is the reference minute of the day.
	Now   int
	Today lecture.Weekday
	// Indicator is the vertical position of the current-time marker, valid
	// when ShowIndicator is set.
	Indicator     float64
	ShowIndicator bool
}

// Column is one visible weekday.
type Column struct {
	Weekday lecture.Weekday
	Today   bool
	Cells   []Cell
}

// Cell is a time slot placed in its column. Top and Height are fractions of
// the column height.
type Cell struct {
	Lecture *lecture.Lecture
	Time    *lecture.TimeSlot
	Begin   int
	End     int
	Top     float64
	Height  float64
	Current bool
}

type slot struct {
	lecture *lecture.Lecture
	time    *lecture.TimeSlot
	begin   int
	end     int
}

func flatten(s *lecture.State) ([]slot, error) {
	if s == nil {
		return nil, nil
	}
	var out []slot
	for _, l := range s.Lectures {
		for _, t := range l.Times {
			begin, err := timeutil.ParseTime(t.BeginTime)
			if err != nil {
				return nil, err
			}
			end, err := timeutil.ParseTime(t.EndTime)
			if err != nil {
				return nil, err
			}
			out = append(out, slot{lecture: l, time: t, begin: begin, end: end})
		}
	}
	return out, nil
}

// VisibleWeekdays returns the contiguous range of weekdays spanning every
// slot, or the whole week when there are none.
func VisibleWeekdays(s *lecture.State) []lecture.Weekday {
	week := lecture.Weekdays()
	lo, hi := len(week), -1
	if s != nil {
		for _, l := range s.Lectures {
			for _, t := range l.Times {
				i := t.Weekday.Index()
				if i < 0 {
					continue
				}
				lo = min(lo, i)
				hi = max(hi, i)
			}
		}
	}
	if hi < 0 {
		return week
	}
	return week[lo : hi+1]
}

// Current reports whether a slot running begin..end on day is highlighted at
// minute now of today: from HighlightLead minutes before the start until
// HighlightTrail minutes before the end, inclusive.
func Current(day, today lecture.Weekday, begin, end, now int) bool {
	return day == today && now >= begin-HighlightLead && now <= end-HighlightTrail
}

func fraction(v, lo, hi int) float64 {
	if hi == lo {
		return 0
	}
	return float64(v-lo) / float64(hi-lo)
}

// length is the share of [lo, hi] covered by [begin, end].
func length(begin, end, lo, hi int) float64 {
	if hi == lo {
		return 0
	}
	return float64(end-begin) / float64(hi-lo)
}

// Compute lays out s at the wall-clock instant now. A time that does not
// parse is returned as a *timeutil.MalformedTimeError.
func Compute(s *lecture.State, now time.Time) (*Timetable, error) {
	slots, err := flatten(s)
	if err != nil {
		return nil, err
	}

	tt := &Timetable{
		Now:   timeutil.MinuteOfDay(now),
		Today: lecture.FromTime(now),
	}

	if len(slots) > 0 {
		tt.MinTime, tt.MaxTime = slots[0].begin, slots[0].end
		for _, sl := range slots[1:] {
			tt.MinTime = min(tt.MinTime, sl.begin)
			tt.MaxTime = max(tt.MaxTime, sl.end)
		}
		if tt.Now >= tt.MinTime && tt.Now <= tt.MaxTime {
			tt.ShowIndicator = true
			tt.Indicator = fraction(tt.Now, tt.MinTime, tt.MaxTime)
		}
	}

	for _, day := range VisibleWeekdays(s) {
		col := Column{Weekday: day, Today: day == tt.Today}
		for _, sl := range slots {
			if sl.time.Weekday != day {
				continue
			}
			col.Cells = append(col.Cells, Cell{
				Lecture: sl.lecture,
				Time:    sl.time,
				Begin:   sl.begin,
				End:     sl.end,
				Top:     fraction(sl.begin, tt.MinTime, tt.MaxTime),
				Height:  length(sl.begin, sl.end, tt.MinTime, tt.MaxTime),
				Current: Current(day, tt.Today, sl.begin, sl.end, tt.Now),
			})
		}
		tt.Columns = append(tt.Columns, col)
	}
	return tt, nil
}

// Column returns the column for day, if visible.
func (tt *Timetable) Column(day lecture.Weekday) (Column, bool) {
	for _, c := range tt.Columns {
		if c.Weekday == day {
			return c, true
		}
	}
	return Column{}, false
}

// CurrentCells lists every highlighted cell.
func (tt *Timetable) CurrentCells() []Cell {
	var out []Cell
	for _, c := range tt.Columns {
		for _, cell := range c.Cells {
			if cell.Current {
				out = append(out, cell)
			}
		}
	}
	return out
}
