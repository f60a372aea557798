package validate

import (
	"encoding/json"
	"strings"
	"testing"

	"tableflip.dev/timetable/pkg/lecture"
)

func validLectures() []*lecture.Lecture {
	return []*lecture.Lecture{
		{
			ID:    "l1",
			Title: "Algebra",
			Times: []*lecture.TimeSlot{
				{ID: "t1", Weekday: lecture.Monday, BeginTime: "10:00", EndTime: "11:00"},
			},
			Links: []*lecture.Link{{ID: "k1", Label: "", URL: "https://example.com"}},
		},
	}
}

func paths(errs []Error) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Path.String())
	}
	return out
}

func hasPath(errs []Error, path string) bool {
	for _, e := range errs {
		if e.Path.String() == path {
			return true
		}
	}
	return false
}

func TestPageValid(t *testing.T) {
	if errs := Page("Spring", validLectures()); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestEmptyLectureTitleAndTimes(t *testing.T) {
	errs := Page("Algebra", []*lecture.Lecture{{ID: "1", Title: "", Times: []*lecture.TimeSlot{}}})
	if len(errs) < 2 {
		t.Fatalf("expected at least two errors, got %v", errs)
	}
	if !hasPath(errs, "lectures[0].title") {
		t.Fatalf("expected lecture title error, got %v", paths(errs))
	}
	if !hasPath(errs, "lectures[0].times") {
		t.Fatalf("expected times error, got %v", paths(errs))
	}
}

func TestNilTimesRequireOneEntry(t *testing.T) {
	errs := Page("Algebra", []*lecture.Lecture{{ID: "1", Title: "x"}})
	if len(errs) != 1 || errs[0].Path.String() != "lectures[0].times" {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if !strings.Contains(errs[0].Message, "time slot") {
		t.Fatalf("unexpected message %q", errs[0].Message)
	}
}

func TestPageTitleRules(t *testing.T) {
	for _, title := range []string{"", "a/b", `a\b`} {
		errs := Page(title, validLectures())
		if len(errs) != 1 || errs[0].Path.String() != "title" {
			t.Fatalf("title %q: unexpected errors %v", title, errs)
		}
	}
}

func TestTimeSlotRules(t *testing.T) {
	lectures := validLectures()
	lectures[0].Times = append(lectures[0].Times, &lecture.TimeSlot{
		ID:        "t2",
		Weekday:   lecture.Weekday("FUN"),
		BeginTime: "9:00",
		EndTime:   "1100",
	})

	errs := Page("Spring", lectures)
	want := []string{
		"lectures[0].times[1].weekday",
		"lectures[0].times[1].beginTime",
		"lectures[0].times[1].endTime",
	}
	if got := paths(errs); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if !strings.Contains(errs[2].Message, "HH:MM") {
		t.Fatalf("unexpected message %q", errs[2].Message)
	}
}

func TestBeginAfterEndIsAllowed(t *testing.T) {
	lectures := validLectures()
	lectures[0].Times[0].BeginTime = "12:00"
	lectures[0].Times[0].EndTime = "08:00"
	if errs := Page("Spring", lectures); len(errs) != 0 {
		t.Fatalf("expected no cross-field checks, got %v", errs)
	}
}

func TestLinkURLRequired(t *testing.T) {
	lectures := validLectures()
	lectures[0].Links = append(lectures[0].Links, &lecture.Link{ID: "k2", Label: "Slides"})

	errs := Page("Spring", lectures)
	if len(errs) != 1 || errs[0].Path.String() != "lectures[0].links[1].url" {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestNullEntriesRequired(t *testing.T) {
	lectures := validLectures()
	lectures[0].Times = append(lectures[0].Times, nil)
	lectures[0].Links = []*lecture.Link{nil}
	lectures = append(lectures, nil)

	errs := Page("Spring", lectures)
	want := map[string]string{
		"lectures[0].times[1]": "time slot is required",
		"lectures[0].links[0]": "link is required",
		"lectures[1]":          "lecture is required",
	}
	if len(errs) != len(want) {
		t.Fatalf("expected %d errors, got %v", len(want), paths(errs))
	}
	for _, e := range errs {
		if msg, ok := want[e.Path.String()]; !ok || e.Message != msg {
			t.Fatalf("unexpected error %s: %q", e.Path, e.Message)
		}
	}
}

func TestAllFailuresCollected(t *testing.T) {
	lectures := []*lecture.Lecture{
		{ID: "a", Title: "", Times: []*lecture.TimeSlot{{ID: "t", Weekday: lecture.Monday, BeginTime: "x", EndTime: "10:00"}}},
		{ID: "b", Title: "ok"},
		{ID: "c", Title: "ok", Times: []*lecture.TimeSlot{{ID: "t", Weekday: lecture.Friday, BeginTime: "10:00", EndTime: "11:00"}}, Links: []*lecture.Link{{ID: "k"}}},
	}
	errs := Page("bad/title", lectures)
	want := []string{
		"title",
		"lectures[0].title",
		"lectures[0].times[0].beginTime",
		"lectures[1].times",
		"lectures[2].links[0].url",
	}
	if got := paths(errs); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestErrorJSON(t *testing.T) {
	b, err := json.Marshal(Error{Path: Path{Field("lectures"), Index(2), Field("times"), Index(0), Field("endTime")}, Message: "m"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"path":"lectures[2].times[0].endTime","message":"m"}` {
		t.Fatalf("unexpected json %s", b)
	}
}

func TestParseNamespace(t *testing.T) {
	p := parseNamespace("lectures[12].times[0].endTime")
	if p.String() != "lectures[12].times[0].endTime" {
		t.Fatalf("unexpected round trip %s", p)
	}
	if len(p) != 5 || p[1].Index != 12 || p.Last() != "endTime" {
		t.Fatalf("unexpected segments %#v", p)
	}
}
