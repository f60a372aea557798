package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/timetable/pkg/commands/options"
	"tableflip.dev/timetable/pkg/runner/edit"
)

func addRename(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	po := &options.PageOptions{}

	cmd := &cobra.Command{
		Use:   "rename [new title]",
		Short: "Save a page under a new title and remove the old one.",
		Example: `
timetable rename --page Fall Fall 2024
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, cfg, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			r := edit.Rename{
				App:  svc,
				From: po.Resolve(nil, cfg.Page()),
				To:   strings.Join(args, " "),
				JSON: oo.JSON,
			}
			err = r.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddPageArgs(cmd, po)
	registerPageFlagCompletion(cmd)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addDelete(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	po := &options.PageOptions{}

	cmd := &cobra.Command{
		Use:   "delete [page]",
		Short: "Remove a saved page.",
		Example: `
timetable delete Fall
`,
		ValidArgsFunction: pageCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			key := po.Resolve(args, "")
			if key == "" {
				return oo.HandleError(errors.New("name the page to delete"))
			}
			svc, _, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			d := edit.Delete{
				App:  svc,
				Key:  key,
				JSON: oo.JSON,
			}
			err = d.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddPageArgs(cmd, po)
	registerPageFlagCompletion(cmd)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
