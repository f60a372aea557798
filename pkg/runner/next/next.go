package next

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/timetable/pkg/app"
	"tableflip.dev/timetable/pkg/layout"
	"tableflip.dev/timetable/pkg/printers"
)

// DefaultWithin is the look-ahead used when none is given.
const DefaultWithin = 24 * time.Hour

// Next lists lectures running now or starting within a window.
type Next struct {
	App    *app.Service
	Key    string
	Now    time.Time
	Within time.Duration
	JSON   bool
	Out    io.Writer
}

type occurrence struct {
	LectureID string `json:"lectureId"`
	TimeID    string `json:"timeId"`
	Title     string `json:"title"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Running   bool   `json:"running"`
}

func (n *Next) Do(ctx context.Context) error {
	if n.App == nil {
		return app.ErrNoStore
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}
	within := n.Within
	if within <= 0 {
		within = DefaultWithin
	}

	sess, err := n.App.Open(n.Key)
	if err != nil {
		return err
	}
	occ, err := layout.Next(sess.State(), now, within)
	if err != nil {
		return err
	}

	if n.JSON {
		list := make([]occurrence, 0, len(occ))
		for _, o := range occ {
			list = append(list, occurrence{
				LectureID: o.Lecture.ID,
				TimeID:    o.Time.ID,
				Title:     o.Lecture.Title,
				Start:     o.Start.Format(time.RFC3339),
				End:       o.End.Format(time.RFC3339),
				Running:   o.InProgress(now),
			})
		}
		b, err := json.Marshal(list)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}

	pp := printers.PrettyPrint{Out: out}
	pp.TitleWithCount(sess.Title(), len(occ), "lecture")
	pp.Upcoming(occ, now)
	return nil
}
