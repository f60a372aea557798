package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/timetable/pkg/commands/options"
	"tableflip.dev/timetable/pkg/runner/edit"
)

// runEdit applies change to the page chosen by po and saves it.
func runEdit(cmd *cobra.Command, oo *options.OutputOptions, po *options.PageOptions, change edit.Change) error {
	cmd.SilenceUsage = true
	svc, cfg, err := loadService()
	if err != nil {
		return oo.HandleError(err)
	}
	e := edit.Edit{
		App:    svc,
		Key:    po.Resolve(nil, cfg.Page()),
		Change: change,
		JSON:   oo.JSON,
	}
	err = e.Do(cmd.Context())
	return oo.HandleError(err)
}

func addLecture(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "lecture",
		Short: "Add, retitle or remove lectures.",
		Example: `
timetable lecture add Linear Algebra
timetable lecture title --lecture <id> Linear Algebra II
timetable lecture remove --lecture <id>
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addLectureAdd(cmd)
	addLectureTitle(cmd)
	addLectureRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addLectureAdd(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	po := &options.PageOptions{}

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a lecture with one Monday 09:00-10:00 slot and print its id.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, oo, po, edit.AddLecture(strings.Join(args, " ")))
		},
	}

	options.AddPageArgs(cmd, po)
	registerPageFlagCompletion(cmd)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addLectureTitle(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	po := &options.PageOptions{}
	lo := &options.LectureOptions{}

	cmd := &cobra.Command{
		Use:   "title [title]",
		Short: "Replace the title of a lecture.",
		Args: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(strings.Join(args, " ")) == "" {
				return errors.New("a title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, oo, po, edit.SetLectureTitle(lo.Lecture, strings.Join(args, " ")))
		},
	}

	options.AddPageArgs(cmd, po)
	registerPageFlagCompletion(cmd)
	options.AddLectureArgs(cmd, lo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addLectureRemove(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	po := &options.PageOptions{}
	lo := &options.LectureOptions{}

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a lecture with its slots and links.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, oo, po, edit.RemoveLecture(lo.Lecture))
		},
	}

	options.AddPageArgs(cmd, po)
	registerPageFlagCompletion(cmd)
	options.AddLectureArgs(cmd, lo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
