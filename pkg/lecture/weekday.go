package lecture

import (
	"fmt"
	"strings"
	"time"
)

// Weekday identifies the day a time slot recurs on.
type Weekday string

const (
	Sunday    Weekday = "SUN"
	Monday    Weekday = "MON"
	Tuesday   Weekday = "TUE"
	Wednesday Weekday = "WED"
	Thursday  Weekday = "THU"
	Friday    Weekday = "FRI"
	Saturday  Weekday = "SAT"
)

// Weekdays returns the canonical week ordering, starting on Sunday.
func Weekdays() []Weekday {
	return []Weekday{
		Sunday,
		Monday,
		Tuesday,
		Wednesday,
		Thursday,
		Friday,
		Saturday,
	}
}

// Index returns the position of w in Weekdays, or -1 for unknown values.
func (w Weekday) Index() int {
	for i, candidate := range Weekdays() {
		if candidate == w {
			return i
		}
	}
	return -1
}

// Valid reports whether w is one of the seven enumerated values.
func (w Weekday) Valid() bool {
	return w.Index() >= 0
}

func (w Weekday) String() string {
	return string(w)
}

// ParseWeekday accepts the three letter code or an English day name in any case.
func ParseWeekday(raw string) (Weekday, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	for _, w := range Weekdays() {
		if s == string(w) || s == strings.ToUpper(FullName(w)) {
			return w, nil
		}
	}
	return "", fmt.Errorf("lecture: unknown weekday %q", raw)
}

// FromTime maps t's local weekday onto the enumeration.
func FromTime(t time.Time) Weekday {
	return Weekdays()[int(t.Weekday())]
}

// FullName returns the English name, e.g. "Monday".
func FullName(w Weekday) string {
	i := w.Index()
	if i < 0 {
		return string(w)
	}
	return time.Weekday(i).String()
}
