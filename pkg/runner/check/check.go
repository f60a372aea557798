package check

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/timetable/pkg/app"
	"tableflip.dev/timetable/pkg/printers"
	"tableflip.dev/timetable/pkg/validate"
)

// ErrInvalid is returned when the page has validation problems.
var ErrInvalid = errors.New("page is invalid")

// Check prints every problem that would block saving a page.
type Check struct {
	App  *app.Service
	Key  string
	JSON bool
	Out  io.Writer
}

func (n *Check) Do(ctx context.Context) error {
	if n.App == nil {
		return app.ErrNoStore
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	sess, err := n.App.Open(n.Key)
	if err != nil {
		return err
	}
	errs := sess.Validate()

	if n.JSON {
		if errs == nil {
			errs = []validate.Error{}
		}
		b, err := json.Marshal(struct {
			Key    string           `json:"key"`
			Saved  bool             `json:"saved"`
			Valid  bool             `json:"valid"`
			Errors []validate.Error `json:"errors"`
		}{sess.Key(), sess.Saved(), len(errs) == 0, errs})
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
	} else {
		pp := printers.PrettyPrint{Out: out}
		pp.TitleWithCount(sess.Title(), len(errs), "problem")
		if len(errs) == 0 {
			pp.None()
		} else {
			pp.Errors(errs)
		}
	}

	if len(errs) > 0 {
		return ErrInvalid
	}
	return nil
}
