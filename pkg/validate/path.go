package validate

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Segment is one step of a Path: a named field, or an index into a list
// when Field is empty.
type Segment struct {
	Field string
	Index int
}

// Field addresses a named field.
func Field(name string) Segment { return Segment{Field: name} }

// Index addresses a list element.
func Index(i int) Segment { return Segment{Index: i} }

// Path addresses a node of the page using the same field names as the
// persisted document, e.g. lectures[2].times[0].endTime.
type Path []Segment

func (p Path) String() string {
	var b strings.Builder
	for _, s := range p {
		if s.Field == "" {
			b.WriteString("[")
			b.WriteString(strconv.Itoa(s.Index))
			b.WriteString("]")
			continue
		}
		if b.Len() > 0 {
			b.WriteString(".")
		}
		b.WriteString(s.Field)
	}
	return b.String()
}

// MarshalJSON encodes the path in its dotted form.
func (p Path) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// Last returns the final named field of the path.
func (p Path) Last() string {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i].Field != "" {
			return p[i].Field
		}
	}
	return ""
}

// parseNamespace turns "lectures[2].times[0].endTime" into a Path.
func parseNamespace(ns string) Path {
	var p Path
	for _, part := range strings.Split(ns, ".") {
		name := part
		var indexes []int
		for {
			open := strings.LastIndex(name, "[")
			if open < 0 || !strings.HasSuffix(name, "]") {
				break
			}
			i, err := strconv.Atoi(name[open+1 : len(name)-1])
			if err != nil {
				break
			}
			indexes = append([]int{i}, indexes...)
			name = name[:open]
		}
		if name != "" {
			p = append(p, Field(name))
		}
		for _, i := range indexes {
			p = append(p, Index(i))
		}
	}
	return p
}
