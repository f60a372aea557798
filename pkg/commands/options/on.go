package options

import (
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutClock = "15:04"
	layoutDay   = "2006-01-02 15:04"
)

// AtOptions sets the reference time a page is rendered at.
type AtOptions struct {
	AtString string
}

func AddAtArgs(cmd *cobra.Command, o *AtOptions) {
	cmd.Flags().StringVar(&o.AtString, "at", "",
		`Render as of a time, example: --at="2024-01-01T10:30:00Z", --at="2024-01-01 10:30" or --at="10:30".`)
}

// GetAt parses --at relative to now. A bare clock time is taken on the
// current day. The zero time is returned when the flag is unset.
func (o *AtOptions) GetAt(now time.Time) (time.Time, error) {
	if o.AtString == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, o.AtString); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(layoutDay, o.AtString, now.Location()); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(layoutClock, o.AtString, now.Location())
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location()), nil
}
