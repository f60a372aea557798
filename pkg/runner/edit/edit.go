// Package edit holds the runners that change a saved page: one addressed
// change per run, then validate and save.
package edit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/timetable/pkg/app"
	"tableflip.dev/timetable/pkg/printers"
)

// ErrNotSaved is returned after the validation problems of a rejected edit
// have been printed.
var ErrNotSaved = errors.New("page not saved")

// Change applies an edit to the session and returns the id of anything it
// created.
type Change func(*app.Session) (string, error)

// Edit opens Key, applies Change and saves.
type Edit struct {
	App    *app.Service
	Key    string
	Change Change
	JSON   bool
	Out    io.Writer
}

func (n *Edit) Do(ctx context.Context) error {
	if n.App == nil {
		return app.ErrNoStore
	}
	if n.Change == nil {
		return errors.New("edit: no change given")
	}
	sess, err := n.App.Open(n.Key)
	if err != nil {
		return err
	}
	created, err := n.Change(sess)
	if err != nil {
		return err
	}
	if err := save(sess, n.JSON, n.out()); err != nil {
		return err
	}
	return report(n.out(), n.JSON, sess.Key(), created)
}

func (n *Edit) out() io.Writer {
	if n.Out == nil {
		return color.Output
	}
	return n.Out
}

// save writes the session; validation problems are printed as a table unless
// JSON output was requested.
func save(sess *app.Session, asJSON bool, out io.Writer) error {
	err := sess.Save()
	var invalid *app.InvalidError
	if err == nil || asJSON || !errors.As(err, &invalid) {
		return err
	}
	pp := printers.PrettyPrint{Out: out}
	pp.TitleWithCount(sess.Title(), len(invalid.Errors), "problem")
	pp.Errors(invalid.Errors)
	return ErrNotSaved
}

func report(out io.Writer, asJSON bool, key, created string) error {
	if asJSON {
		b, err := json.Marshal(struct {
			Key     string `json:"key"`
			Created string `json:"created,omitempty"`
		}{key, created})
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}
	if created != "" {
		_, _ = fmt.Fprintln(out, created)
		return nil
	}
	_, _ = fmt.Fprintf(out, "saved %q\n", key)
	return nil
}

func AddLecture(title string) Change {
	return func(s *app.Session) (string, error) {
		l, err := s.AddLecture(title)
		if err != nil {
			return "", err
		}
		return l.ID, nil
	}
}

func SetLectureTitle(lectureID, title string) Change {
	return func(s *app.Session) (string, error) {
		return "", s.SetLectureTitle(lectureID, title)
	}
}

func RemoveLecture(lectureID string) Change {
	return func(s *app.Session) (string, error) {
		return "", s.RemoveLecture(lectureID)
	}
}

func AddTime(lectureID string, f app.SlotFields) Change {
	return func(s *app.Session) (string, error) {
		slot, err := s.AddTime(lectureID, f)
		if err != nil {
			return "", err
		}
		return slot.ID, nil
	}
}

func UpdateTime(lectureID, timeID string, f app.SlotFields) Change {
	return func(s *app.Session) (string, error) {
		return "", s.UpdateTime(lectureID, timeID, f)
	}
}

func RemoveTime(lectureID, timeID string) Change {
	return func(s *app.Session) (string, error) {
		return "", s.RemoveTime(lectureID, timeID)
	}
}

func AddLink(lectureID string, f app.LinkFields) Change {
	return func(s *app.Session) (string, error) {
		link, err := s.AddLink(lectureID, f)
		if err != nil {
			return "", err
		}
		return link.ID, nil
	}
}

func UpdateLink(lectureID, linkID string, f app.LinkFields) Change {
	return func(s *app.Session) (string, error) {
		return "", s.UpdateLink(lectureID, linkID, f)
	}
}

func RemoveLink(lectureID, linkID string) Change {
	return func(s *app.Session) (string, error) {
		return "", s.RemoveLink(lectureID, linkID)
	}
}
