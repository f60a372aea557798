// Package timeutil converts between wall-clock strings, minutes of the day and
// human friendly durations.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay is the number of minutes in a naive local day.
const MinutesPerDay = 24 * 60

// MalformedTimeError is returned when a clock string does not split into
// exactly two integer parts around a colon.
type MalformedTimeError struct {
	Value string
}

func (e *MalformedTimeError) Error() string {
	return fmt.Sprintf("timeutil: malformed time %q", e.Value)
}

// ParseTime converts "HH:MM" into minutes since midnight. Leading zeros are
// optional, so "9:5" parses the same as "09:05".
func ParseTime(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, &MalformedTimeError{Value: s}
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, &MalformedTimeError{Value: s}
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, &MalformedTimeError{Value: s}
	}
	return hours*60 + minutes, nil
}

// MustParseTime is ParseTime for constants and tests.
func MustParseTime(s string) int {
	m, err := ParseTime(s)
	if err != nil {
		panic(err)
	}
	return m
}

// FormatTime renders minutes since midnight as "HH:MM".
func FormatTime(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// MinuteOfDay returns the local wall-clock minute of t.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
