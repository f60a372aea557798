package timeutil

import (
	"testing"
	"time"
)

func TestParseWindowDefault(t *testing.T) {
	dur, label, err := ParseWindow("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dur != 24*time.Hour {
		t.Fatalf("expected 24h, got %v", dur)
	}
	if label != "1d" {
		t.Fatalf("expected label 1d, got %s", label)
	}
}

func TestParseWindowComposite(t *testing.T) {
	dur, label, err := ParseWindow("2d6h30m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := (2*24+6)*time.Hour + 30*time.Minute
	if dur != want {
		t.Fatalf("expected %v, got %v", want, dur)
	}
	if label != "2d6h30m" {
		t.Fatalf("unexpected label: %s", label)
	}
}

func TestParseWindowCapsAtOneWeek(t *testing.T) {
	dur, label, err := ParseWindow("3w")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dur != 7*24*time.Hour || label != "7d" {
		t.Fatalf("expected 7d cap, got %v (%s)", dur, label)
	}
}

func TestParseWindowInvalid(t *testing.T) {
	if _, _, err := ParseWindow("noop"); err == nil {
		t.Fatalf("expected error for invalid window")
	}
	if _, _, err := ParseWindow("10s"); err == nil {
		t.Fatalf("expected error for unsupported unit")
	}
}

func TestFormatWindow(t *testing.T) {
	if got := FormatWindow(75 * time.Minute); got != "1h15m" {
		t.Fatalf("expected 1h15m, got %s", got)
	}
	if got := FormatWindow(30 * time.Second); got != "0m" {
		t.Fatalf("expected 0m, got %s", got)
	}
}
