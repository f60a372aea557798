package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/timetable/pkg/commands/options"
	"tableflip.dev/timetable/pkg/runner/check"
)

func addCheck(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	po := &options.PageOptions{}

	cmd := &cobra.Command{
		Use:   "check [page]",
		Short: "Print every problem that would block saving a page.",
		Long: `Validate a page the way saving does. Exits non-zero when the page has
problems, also with --json.`,
		Example: `
timetable check
timetable check Fall --json
`,
		ValidArgsFunction: pageCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, cfg, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			c := check.Check{
				App:  svc,
				Key:  po.Resolve(args, cfg.Page()),
				JSON: oo.JSON,
			}
			err = c.Do(cmd.Context())
			if errors.Is(err, check.ErrInvalid) {
				return err
			}
			return oo.HandleError(err)
		},
	}

	options.AddPageArgs(cmd, po)
	registerPageFlagCompletion(cmd)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
