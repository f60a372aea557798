package show

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/timetable/pkg/app"
	"tableflip.dev/timetable/pkg/lecture"
)

// Show renders a page as a weekday grid, or as an agenda table.
type Show struct {
	App    *app.Service
	Key    string
	At     time.Time
	Height int
	Agenda bool
	ShowID bool
	JSON   bool
	Out    io.Writer
}

func (n *Show) Do(ctx context.Context) error {
	if n.App == nil {
		return app.ErrNoStore
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	at := n.At
	if at.IsZero() {
		at = time.Now()
	}

	sess, err := n.App.Open(n.Key)
	if err != nil {
		return err
	}
	if n.JSON {
		b, err := json.Marshal(struct {
			Key   string         `json:"key"`
			Saved bool           `json:"saved"`
			State *lecture.State `json:"state"`
		}{sess.Key(), sess.Saved(), sess.State()})
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}

	tt, err := sess.Layout(at)
	if err != nil {
		return err
	}
	return Render(out, sess.Title(), tt, at, Options{Height: n.Height, Agenda: n.Agenda, ShowID: n.ShowID})
}
