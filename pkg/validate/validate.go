// Package validate checks a page before it is saved and reports every
// problem with the path of the offending node.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"tableflip.dev/timetable/pkg/lecture"
)

// Error is a single validation failure.
type Error struct {
	Path    Path   `json:"path"`
	Message string `json:"message"`
}

func (e Error) String() string {
	if len(e.Path) == 0 {
		return e.Message
	}
	return e.Path.String() + ": " + e.Message
}

var clockPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// page is the schema root; lecture fields carry their own tags.
type page struct {
	Title    string             `json:"title" validate:"required,excludesall=/\\"`
	Lectures []*lecture.Lecture `json:"lectures" validate:"dive,required"`
}

var schema = newSchema()

func newSchema() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return clockPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// Page validates a page title together with its lectures. It never fails;
// an empty result means the page may be saved.
func Page(title string, lectures []*lecture.Lecture) []Error {
	err := schema.Struct(page{Title: title, Lectures: lectures})
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []Error{{Message: err.Error()}}
	}

	out := make([]Error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		path := parseNamespace(trimRoot(fe.Namespace()))
		out = append(out, Error{
			Path:    path,
			Message: message(path, fe.Tag(), fe.Param()),
		})
	}
	return out
}

// State validates lectures of a state saved under title.
func State(title string, s *lecture.State) []Error {
	if s == nil {
		return Page(title, nil)
	}
	return Page(title, s.Lectures)
}

func trimRoot(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

var labels = map[string]string{
	"title":     "title",
	"times":     "time slot",
	"weekday":   "weekday",
	"beginTime": "begin time",
	"endTime":   "end time",
	"url":       "URL",
}

// elements labels a list entry by the list holding it.
var elements = map[string]string{
	"lectures": "lecture",
	"times":    "time slot",
	"links":    "link",
}

func message(path Path, tag, param string) string {
	field := path.Last()
	label, ok := labels[field]
	if !ok {
		label = field
	}
	if field == "title" && len(path) > 1 {
		label = "lecture title"
	}
	if len(path) > 0 && path[len(path)-1].Field == "" {
		if el, ok := elements[field]; ok {
			label = el
		}
	}

	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "min":
		return fmt.Sprintf("at least %s %s is required", param, label)
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", label, strings.Join(strings.Fields(param), ", "))
	case "clock":
		return fmt.Sprintf("%s must be formatted as HH:MM", label)
	case "excludesall":
		return fmt.Sprintf("%s must not contain any of %s", label, strings.Join(strings.Split(param, ""), " "))
	default:
		return fmt.Sprintf("%s is invalid (%s)", label, tag)
	}
}
