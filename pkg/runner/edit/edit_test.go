package edit

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/timetable/pkg/app"
	"tableflip.dev/timetable/pkg/lecture"
	"tableflip.dev/timetable/pkg/store"
)

func seeded(t *testing.T) (*app.Service, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	if err := mem.Save("Fall", lecture.Example()); err != nil {
		t.Fatalf("Save() = %v", err)
	}
	return &app.Service{Store: mem}, mem
}

func load(t *testing.T, mem *store.Memory, key string) *lecture.State {
	t.Helper()
	s, ok, err := mem.Load(key)
	if err != nil || !ok {
		t.Fatalf("Load(%q) = %v, %v", key, ok, err)
	}
	return s
}

func strPtr(s string) *string { return &s }

func TestAddLecturePrintsID(t *testing.T) {
	svc, mem := seeded(t)
	var out bytes.Buffer
	e := Edit{App: svc, Key: "Fall", Change: AddLecture("Statistics"), Out: &out}
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("Do() = %v", err)
	}
	id := strings.TrimSpace(out.String())
	s := load(t, mem, "Fall")
	l, ok := s.FindLecture(id)
	if !ok || l.Title != "Statistics" || len(l.Times) != 1 {
		t.Fatalf("lecture %q = %+v", id, l)
	}
}

func TestAddTimeAndLink(t *testing.T) {
	svc, mem := seeded(t)
	lectureID := lecture.Example().Lectures[1].ID

	var out bytes.Buffer
	e := Edit{App: svc, Key: "Fall", Out: &out, JSON: true,
		Change: AddTime(lectureID, app.SlotFields{Weekday: lecture.Friday, BeginTime: "08:00", EndTime: "09:00"})}
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("Do() = %v", err)
	}
	if !strings.Contains(out.String(), `"created":"`) {
		t.Fatalf("output = %s", out.String())
	}
	l, _ := load(t, mem, "Fall").FindLecture(lectureID)
	if len(l.Times) != 3 || l.Times[2].Weekday != lecture.Friday || l.Times[2].BeginTime != "08:00" {
		t.Fatalf("times = %+v", l.Times)
	}

	out.Reset()
	e = Edit{App: svc, Key: "Fall", Out: &out,
		Change: AddLink(lectureID, app.LinkFields{Label: strPtr("Syllabus"), URL: strPtr("https://example.com")})}
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("Do() = %v", err)
	}
	l, _ = load(t, mem, "Fall").FindLecture(lectureID)
	if len(l.Links) != 1 || l.Links[0].Label != "Syllabus" {
		t.Fatalf("links = %+v", l.Links)
	}
}

func TestRemoveLastTimeRefused(t *testing.T) {
	svc, mem := seeded(t)
	seminar := lecture.Example().Lectures[6]
	e := Edit{App: svc, Key: "Fall", Out: &bytes.Buffer{},
		Change: RemoveTime(seminar.ID, seminar.Times[0].ID)}
	if err := e.Do(context.Background()); !errors.Is(err, app.ErrLastTimeSlot) {
		t.Fatalf("Do() = %v, want ErrLastTimeSlot", err)
	}
	l, _ := load(t, mem, "Fall").FindLecture(seminar.ID)
	if len(l.Times) != 1 {
		t.Fatalf("times = %+v", l.Times)
	}
}

func TestInvalidEditPrintsProblems(t *testing.T) {
	color.NoColor = true
	svc, mem := seeded(t)
	first := lecture.Example().Lectures[0]
	var out bytes.Buffer
	e := Edit{App: svc, Key: "Fall", Out: &out, Change: SetLectureTitle(first.ID, "")}
	if err := e.Do(context.Background()); !errors.Is(err, ErrNotSaved) {
		t.Fatalf("Do() = %v, want ErrNotSaved", err)
	}
	if !strings.Contains(out.String(), "lecture title is required") {
		t.Fatalf("output:\n%s", out.String())
	}
	if l, _ := load(t, mem, "Fall").FindLecture(first.ID); l.Title != first.Title {
		t.Fatalf("title = %q after rejected edit", l.Title)
	}
}

func TestInvalidEditJSON(t *testing.T) {
	svc, _ := seeded(t)
	first := lecture.Example().Lectures[0]
	e := Edit{App: svc, Key: "Fall", JSON: true, Out: &bytes.Buffer{},
		Change: UpdateTime(first.ID, first.Times[0].ID, app.SlotFields{EndTime: "noon"})}
	var invalid *app.InvalidError
	if err := e.Do(context.Background()); !errors.As(err, &invalid) {
		t.Fatalf("Do() = %v, want *app.InvalidError", err)
	}
}

func TestUnknownAddress(t *testing.T) {
	svc, _ := seeded(t)
	e := Edit{App: svc, Key: "Fall", Out: &bytes.Buffer{}, Change: RemoveLink("missing", "x")}
	var nf *app.ErrNotFound
	if err := e.Do(context.Background()); !errors.As(err, &nf) {
		t.Fatalf("Do() = %v, want *app.ErrNotFound", err)
	}
}

func TestRenameAndDelete(t *testing.T) {
	svc, mem := seeded(t)
	var out bytes.Buffer
	r := Rename{App: svc, From: "Fall", To: "Autumn", Out: &out}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("Rename = %v", err)
	}
	if keys := mem.Keys(context.Background()); len(keys) != 1 || keys[0] != "Autumn" {
		t.Fatalf("keys = %v", keys)
	}

	r = Rename{App: svc, From: "Winter", To: "Summer", Out: &out}
	if err := r.Do(context.Background()); err == nil {
		t.Fatal("renaming a missing page should fail")
	}

	d := Delete{App: svc, Key: "Autumn", Out: &out}
	if err := d.Do(context.Background()); err != nil {
		t.Fatalf("Delete = %v", err)
	}
	if keys := mem.Keys(context.Background()); len(keys) != 0 {
		t.Fatalf("keys = %v", keys)
	}
	if !strings.Contains(out.String(), `deleted "Autumn"`) {
		t.Fatalf("output = %q", out.String())
	}
}
