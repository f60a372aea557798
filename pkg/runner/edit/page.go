package edit

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/timetable/pkg/app"
)

// Rename re-saves the page From under the title To.
type Rename struct {
	App  *app.Service
	From string
	To   string
	JSON bool
	Out  io.Writer
}

func (n *Rename) Do(ctx context.Context) error {
	if n.App == nil {
		return app.ErrNoStore
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	sess, err := n.App.Open(n.From)
	if err != nil {
		return err
	}
	if !sess.Saved() {
		return fmt.Errorf("page %q not found", n.From)
	}
	sess.SetTitle(n.To)
	if err := save(sess, n.JSON, out); err != nil {
		return err
	}
	return report(out, n.JSON, sess.Key(), "")
}

// Delete removes the page saved under Key.
type Delete struct {
	App  *app.Service
	Key  string
	JSON bool
	Out  io.Writer
}

func (n *Delete) Do(ctx context.Context) error {
	if n.App == nil {
		return app.ErrNoStore
	}
	if n.Key == "" {
		return errors.New("no page given")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	if err := n.App.Delete(n.Key); err != nil {
		return err
	}
	if n.JSON {
		return report(out, true, n.Key, "")
	}
	_, _ = fmt.Fprintf(out, "deleted %q\n", n.Key)
	return nil
}
