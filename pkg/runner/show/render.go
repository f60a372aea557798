package show

import (
	"fmt"
	"io"
	"time"

	"tableflip.dev/timetable/pkg/layout"
	"tableflip.dev/timetable/pkg/printers"
)

// Options controls how a computed timetable is printed.
type Options struct {
	Height int
	Agenda bool
	ShowID bool
}

// Render prints the page title followed by the grid or agenda of tt.
func Render(out io.Writer, title string, tt *layout.Timetable, at time.Time, o Options) error {
	pp := printers.PrettyPrint{Out: out, Height: o.Height, ShowID: o.ShowID}
	pp.Title(fmt.Sprintf("%s (%s)", title, at.Format("Mon 15:04")))
	pp.NewLine()
	if o.Agenda {
		pp.Agenda(tt)
		return nil
	}
	pp.Timetable(tt)
	return nil
}
