package commands

import (
	"reflect"
	"testing"
)

func TestCommandTree(t *testing.T) {
	root := New()
	for _, path := range [][]string{
		{"pages"}, {"show"}, {"next"}, {"ui"}, {"example"},
		{"lecture", "add"}, {"lecture", "title"}, {"lecture", "remove"},
		{"time", "add"}, {"time", "set"}, {"time", "remove"},
		{"link", "add"}, {"link", "set"}, {"link", "remove"},
		{"rename"}, {"delete"}, {"check"}, {"info"}, {"mcp"}, {"version"}, {"completion"},
	} {
		cmd, rest, err := root.Find(path)
		if err != nil || len(rest) != 0 {
			t.Fatalf("Find(%v) = %v, %v", path, rest, err)
		}
		if cmd.Name() != path[len(path)-1] {
			t.Fatalf("Find(%v) = %q", path, cmd.Name())
		}
	}
}

func TestEditCommandsRequireAddress(t *testing.T) {
	root := New()
	cmd, _, err := root.Find([]string{"time", "set"})
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"lecture", "id"} {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			t.Fatalf("flag --%s missing", name)
		}
		if _, ok := f.Annotations["cobra_annotation_bash_completion_one_required_flag"]; !ok {
			t.Fatalf("flag --%s is not required", name)
		}
	}
}

func TestFilterPrefix(t *testing.T) {
	got := filterPrefix([]string{"Fall", "fall 2024", "Spring"}, "fa")
	want := []string{"Fall", "fall 2024"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("filterPrefix() = %v, want %v", got, want)
	}
	if got := filterPrefix([]string{"Fall"}, ""); len(got) != 1 {
		t.Fatalf("empty prefix = %v", got)
	}
}
