package example

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/timetable/pkg/app"
	"tableflip.dev/timetable/pkg/layout"
	"tableflip.dev/timetable/pkg/lecture"
	"tableflip.dev/timetable/pkg/runner/show"
)

// Example renders the bundled sample week and optionally saves it.
type Example struct {
	App *app.Service
	// Save is the page key to save the example under; empty only renders.
	Save   string
	At     time.Time
	Height int
	Agenda bool
	Out    io.Writer
}

func (n *Example) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}
	at := n.At
	if at.IsZero() {
		at = time.Now()
	}

	state := lecture.Example()
	title := "Example"
	if n.Save != "" {
		if n.App == nil {
			return app.ErrNoStore
		}
		sess, err := n.App.Import(n.Save, state)
		if err != nil {
			return err
		}
		title = sess.Title()
		state = sess.State()
	}

	tt, err := layout.Compute(state, at)
	if err != nil {
		return err
	}
	if err := show.Render(out, title, tt, at, show.Options{Height: n.Height, Agenda: n.Agenda}); err != nil {
		return err
	}
	if n.Save != "" {
		_, _ = fmt.Fprintf(out, "saved %q\n", title)
	}
	return nil
}
