package timeutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseTime(t *testing.T) {
	tests := map[string]int{
		"09:05": 545,
		"9:5":   545,
		"00:00": 0,
		"23:59": 1439,
		"10:30": 630,
	}
	for in, want := range tests {
		got, err := ParseTime(in)
		if err != nil {
			t.Fatalf("ParseTime(%q): unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseTime(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestParseTimeMalformed(t *testing.T) {
	for _, in := range []string{"0905", "", "09:05:00", "ab:cd", "09:"} {
		_, err := ParseTime(in)
		var mte *MalformedTimeError
		if !errors.As(err, &mte) {
			t.Fatalf("ParseTime(%q): expected MalformedTimeError, got %v", in, err)
		}
		if mte.Value != in {
			t.Fatalf("expected value %q on error, got %q", in, mte.Value)
		}
	}
}

func TestFormatTime(t *testing.T) {
	if got := FormatTime(545); got != "09:05" {
		t.Fatalf("expected 09:05, got %s", got)
	}
	if got := FormatTime(0); got != "00:00" {
		t.Fatalf("expected 00:00, got %s", got)
	}
}

func TestMinuteOfDay(t *testing.T) {
	now := time.Date(2024, time.March, 4, 10, 5, 59, 0, time.UTC)
	if got := MinuteOfDay(now); got != 605 {
		t.Fatalf("expected 605, got %d", got)
	}
}
