package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/timetable/pkg/app"
	"tableflip.dev/timetable/pkg/lecture"
)

// LectureOptions addresses a lecture.
type LectureOptions struct {
	Lecture string
}

func AddLectureArgs(cmd *cobra.Command, o *LectureOptions) {
	cmd.Flags().StringVarP(&o.Lecture, "lecture", "l", "",
		"Specify the id of the lecture.")
	_ = cmd.MarkFlagRequired("lecture")
}

// SlotOptions are the fields of a time slot.
type SlotOptions struct {
	Weekday string
	Begin   string
	End     string
}

func AddSlotArgs(cmd *cobra.Command, o *SlotOptions) {
	cmd.Flags().StringVarP(&o.Weekday, "weekday", "w", "",
		`Specify the weekday, example: --weekday=MON or --weekday=monday.`)
	cmd.Flags().StringVarP(&o.Begin, "begin", "b", "",
		`Specify the begin time, example: --begin=09:00.`)
	cmd.Flags().StringVarP(&o.End, "end", "e", "",
		`Specify the end time, example: --end=10:15.`)
	_ = cmd.RegisterFlagCompletionFunc("weekday", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		days := make([]string, 0, 7)
		for _, d := range lecture.Weekdays() {
			days = append(days, string(d))
		}
		return days, cobra.ShellCompDirectiveNoFileComp
	})
}

func (o *SlotOptions) Fields() (app.SlotFields, error) {
	f := app.SlotFields{BeginTime: o.Begin, EndTime: o.End}
	if o.Weekday != "" {
		w, err := lecture.ParseWeekday(o.Weekday)
		if err != nil {
			return f, err
		}
		f.Weekday = w
	}
	return f, nil
}

// LinkOptions are the fields of a link. Only flags given on the command line
// are applied.
type LinkOptions struct {
	Label string
	URL   string

	cmd *cobra.Command
}

func AddLinkArgs(cmd *cobra.Command, o *LinkOptions) {
	o.cmd = cmd
	cmd.Flags().StringVar(&o.Label, "label", "",
		"Specify the link label.")
	cmd.Flags().StringVar(&o.URL, "url", "",
		"Specify the link URL.")
}

func (o *LinkOptions) Fields() app.LinkFields {
	var f app.LinkFields
	if o.changed("label") {
		f.Label = &o.Label
	}
	if o.changed("url") {
		f.URL = &o.URL
	}
	return f
}

func (o *LinkOptions) changed(name string) bool {
	if o.cmd == nil {
		return false
	}
	return o.cmd.Flags().Changed(name)
}
