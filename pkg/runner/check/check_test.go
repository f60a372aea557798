package check

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/timetable/pkg/app"
	"tableflip.dev/timetable/pkg/lecture"
	"tableflip.dev/timetable/pkg/store"
)

func TestCheckValid(t *testing.T) {
	color.NoColor = true
	mem := store.NewMemory()
	if err := mem.Save("Fall", lecture.Example()); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	c := Check{App: &app.Service{Store: mem}, Key: "Fall", Out: &out}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("Do() = %v", err)
	}
	if !strings.Contains(out.String(), "Fall - 0 problems") {
		t.Fatalf("output:\n%s", out.String())
	}
}

func TestCheckInvalid(t *testing.T) {
	color.NoColor = true
	mem := store.NewMemory()
	s := lecture.Example()
	s.Lectures[2].Times[1].EndTime = "3pm"
	s.Lectures[3].Links[0].URL = ""
	if err := mem.Save("Fall", s); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	c := Check{App: &app.Service{Store: mem}, Key: "Fall", Out: &out}
	if err := c.Do(context.Background()); !errors.Is(err, ErrInvalid) {
		t.Fatalf("Do() = %v, want ErrInvalid", err)
	}
	got := out.String()
	for _, want := range []string{"2 problems", "lectures[2].times[1].endTime", "lectures[3].links[0].url"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestCheckJSON(t *testing.T) {
	var out bytes.Buffer
	c := Check{App: &app.Service{Store: store.NewMemory()}, Key: "Fresh", JSON: true, Out: &out}
	if err := c.Do(context.Background()); !errors.Is(err, ErrInvalid) {
		t.Fatalf("Do() = %v, want ErrInvalid", err)
	}
	var got struct {
		Saved  bool `json:"saved"`
		Valid  bool `json:"valid"`
		Errors []struct {
			Path    string `json:"path"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode %q: %v", out.String(), err)
	}
	if got.Saved || got.Valid || len(got.Errors) != 1 || got.Errors[0].Path != "lectures[0].title" {
		t.Fatalf("result = %+v", got)
	}
}
