package show

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/timetable/pkg/app"
	"tableflip.dev/timetable/pkg/lecture"
	"tableflip.dev/timetable/pkg/store"
)

// 2024-01-01 is a Monday.
func monday(hour, minute int) time.Time {
	return time.Date(2024, time.January, 1, hour, minute, 0, 0, time.Local)
}

func seeded(t *testing.T) *app.Service {
	t.Helper()
	mem := store.NewMemory()
	if err := mem.Save("Fall", lecture.Example()); err != nil {
		t.Fatalf("Save() = %v", err)
	}
	return &app.Service{Store: mem}
}

func TestShowAgenda(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	s := Show{App: seeded(t), Key: "Fall", At: monday(10, 45), Agenda: true, Out: &out}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("Do() = %v", err)
	}
	got := out.String()
	for _, want := range []string{"Fall (Mon 10:45)", "Cloud Computing", "Freshman Seminar I"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestShowGrid(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	s := Show{App: seeded(t), Key: "Fall", At: monday(10, 45), Height: 12, Out: &out}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("Do() = %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Cloud") || !strings.Contains(got, "10:30") {
		t.Fatalf("grid output:\n%s", got)
	}
}

func TestShowJSON(t *testing.T) {
	var out bytes.Buffer
	s := Show{App: seeded(t), Key: "Spring", JSON: true, Out: &out}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("Do() = %v", err)
	}
	if !strings.Contains(out.String(), `"saved":false`) {
		t.Fatalf("output = %s", out.String())
	}
}

func TestShowMalformedTime(t *testing.T) {
	mem := store.NewMemory()
	s := lecture.Example()
	s.Lectures[0].Times[0].BeginTime = "9:00"
	if err := mem.Save("Broken", s); err != nil {
		t.Fatal(err)
	}
	show := Show{App: &app.Service{Store: mem}, Key: "Broken", Out: &bytes.Buffer{}}
	if err := show.Do(context.Background()); err == nil {
		t.Fatal("expected a malformed time error")
	}
}
