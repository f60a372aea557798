package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/timetable/pkg/commands/options"
	"tableflip.dev/timetable/pkg/runner/edit"
)

func addLink(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Add, change or remove the links of a lecture.",
		Example: `
timetable link add --lecture <id> --label Zoom --url https://zoom.us/j/123
timetable link set --lecture <id> --id <link> --label Recording
timetable link remove --lecture <id> --id <link>
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addLinkAdd(cmd)
	addLinkSet(cmd)
	addLinkRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addLinkAdd(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	po := &options.PageOptions{}
	lo := &options.LectureOptions{}
	ko := &options.LinkOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a link to a lecture and print its id.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, oo, po, edit.AddLink(lo.Lecture, ko.Fields()))
		},
	}

	options.AddPageArgs(cmd, po)
	registerPageFlagCompletion(cmd)
	options.AddLectureArgs(cmd, lo)
	options.AddLinkArgs(cmd, ko)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addLinkSet(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	po := &options.PageOptions{}
	lo := &options.LectureOptions{}
	io := &options.IDOptions{}
	ko := &options.LinkOptions{}

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the label or URL of a link.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, oo, po, edit.UpdateLink(lo.Lecture, io.ID, ko.Fields()))
		},
	}

	options.AddPageArgs(cmd, po)
	registerPageFlagCompletion(cmd)
	options.AddLectureArgs(cmd, lo)
	options.AddIDArgs(cmd, io, "link")
	options.AddLinkArgs(cmd, ko)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addLinkRemove(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	po := &options.PageOptions{}
	lo := &options.LectureOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a link from a lecture.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, oo, po, edit.RemoveLink(lo.Lecture, io.ID))
		},
	}

	options.AddPageArgs(cmd, po)
	registerPageFlagCompletion(cmd)
	options.AddLectureArgs(cmd, lo)
	options.AddIDArgs(cmd, io, "link")
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
