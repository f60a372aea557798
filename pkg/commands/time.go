package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/timetable/pkg/commands/options"
	"tableflip.dev/timetable/pkg/runner/edit"
)

func addTime(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "time",
		Short: "Add, change or remove the time slots of a lecture.",
		Example: `
timetable time add --lecture <id> --weekday WED --begin 10:30 --end 11:45
timetable time set --lecture <id> --id <slot> --end 12:00
timetable time remove --lecture <id> --id <slot>
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTimeAdd(cmd)
	addTimeSet(cmd)
	addTimeRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addTimeAdd(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	po := &options.PageOptions{}
	lo := &options.LectureOptions{}
	so := &options.SlotOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Copy the last slot of a lecture, apply the given fields and print the new id.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := so.Fields()
			if err != nil {
				return oo.HandleError(err)
			}
			return runEdit(cmd, oo, po, edit.AddTime(lo.Lecture, f))
		},
	}

	options.AddPageArgs(cmd, po)
	registerPageFlagCompletion(cmd)
	options.AddLectureArgs(cmd, lo)
	options.AddSlotArgs(cmd, so)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addTimeSet(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	po := &options.PageOptions{}
	lo := &options.LectureOptions{}
	io := &options.IDOptions{}
	so := &options.SlotOptions{}

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the weekday, begin or end of a slot.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := so.Fields()
			if err != nil {
				return oo.HandleError(err)
			}
			return runEdit(cmd, oo, po, edit.UpdateTime(lo.Lecture, io.ID, f))
		},
	}

	options.AddPageArgs(cmd, po)
	registerPageFlagCompletion(cmd)
	options.AddLectureArgs(cmd, lo)
	options.AddIDArgs(cmd, io, "time slot")
	options.AddSlotArgs(cmd, so)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addTimeRemove(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	po := &options.PageOptions{}
	lo := &options.LectureOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a slot. A lecture keeps at least one.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, oo, po, edit.RemoveTime(lo.Lecture, io.ID))
		},
	}

	options.AddPageArgs(cmd, po)
	registerPageFlagCompletion(cmd)
	options.AddLectureArgs(cmd, lo)
	options.AddIDArgs(cmd, io, "time slot")
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
