package pages

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/timetable/pkg/app"
	"tableflip.dev/timetable/pkg/printers"
)

// Pages lists the saved pages with a summary of each.
type Pages struct {
	App  *app.Service
	JSON bool
	Out  io.Writer
}

type page struct {
	Key      string `json:"key"`
	Lectures int    `json:"lectures"`
	Slots    int    `json:"slots"`
	Minutes  int    `json:"weeklyMinutes"`
}

func (n *Pages) Do(ctx context.Context) error {
	if n.App == nil {
		return app.ErrNoStore
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	keys, err := n.App.Pages(ctx)
	if err != nil {
		return err
	}
	summaries := make(map[string]app.Summary, len(keys))
	for _, k := range keys {
		s, ok, err := n.App.Load(k)
		if err != nil {
			return fmt.Errorf("load %q: %w", k, err)
		}
		if ok {
			summaries[k] = app.Summarize(s)
		}
	}

	if n.JSON {
		list := make([]page, 0, len(keys))
		for _, k := range keys {
			sum := summaries[k]
			list = append(list, page{Key: k, Lectures: sum.Lectures, Slots: sum.Slots, Minutes: sum.Minutes})
		}
		b, err := json.Marshal(list)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}

	pp := printers.PrettyPrint{Out: out}
	pp.Pages(keys, summaries)
	return nil
}
