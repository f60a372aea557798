package next

import (
	"bytes"
	"context"
	"encoding/json"
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
	return time.Date(2024, time.January, 1, hour, minute, 0, 0, time.UTC)
}

func seeded(t *testing.T) *app.Service {
	t.Helper()
	mem := store.NewMemory()
	if err := mem.Save("Fall", lecture.Example()); err != nil {
		t.Fatalf("Save() = %v", err)
	}
	return &app.Service{Store: mem}
}

func decode(t *testing.T, out *bytes.Buffer) []occurrence {
	t.Helper()
	var list []occurrence
	if err := json.Unmarshal(out.Bytes(), &list); err != nil {
		t.Fatalf("decode %q: %v", out.String(), err)
	}
	return list
}

func TestNextWithinWindow(t *testing.T) {
	var out bytes.Buffer
	n := Next{App: seeded(t), Key: "Fall", Now: monday(10, 0), Within: time.Hour, JSON: true, Out: &out}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("Do() = %v", err)
	}
	list := decode(t, &out)
	if len(list) != 1 || list[0].Title != "Cloud Computing" || list[0].Running {
		t.Fatalf("list = %+v", list)
	}
	if list[0].Start != "2024-01-01T10:30:00Z" {
		t.Fatalf("start = %s", list[0].Start)
	}
}

func TestNextIncludesRunning(t *testing.T) {
	var out bytes.Buffer
	n := Next{App: seeded(t), Key: "Fall", Now: monday(10, 45), Within: time.Hour, JSON: true, Out: &out}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("Do() = %v", err)
	}
	list := decode(t, &out)
	if len(list) == 0 || !list[0].Running || list[0].Title != "Cloud Computing" {
		t.Fatalf("list = %+v", list)
	}
}

func TestNextDefaultWindow(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	n := Next{App: seeded(t), Key: "Fall", Now: monday(17, 0), Out: &out}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("Do() = %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Fall - 2 lectures") {
		t.Fatalf("header missing:\n%s", got)
	}
	if !strings.Contains(got, "French (Beginner)") || !strings.Contains(got, "in 19h") {
		t.Fatalf("output:\n%s", got)
	}
}
