package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/timetable/pkg/commands/options"
	"tableflip.dev/timetable/pkg/runner/next"
	"tableflip.dev/timetable/pkg/timeutil"
)

func addNext(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	po := &options.PageOptions{}
	ao := &options.AtOptions{}
	within := "1d"

	cmd := &cobra.Command{
		Use:   "next [page]",
		Short: "List lectures running now or starting soon.",
		Example: `
timetable next
timetable next Fall --within 3h
`,
		ValidArgsFunction: pageCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, cfg, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			window, _, err := timeutil.ParseWindow(within)
			if err != nil {
				return oo.HandleError(err)
			}
			at, err := ao.GetAt(time.Now())
			if err != nil {
				return oo.HandleError(err)
			}
			n := next.Next{
				App:    svc,
				Key:    po.Resolve(args, cfg.Page()),
				Now:    at,
				Within: window,
				JSON:   oo.JSON,
			}
			err = n.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddPageArgs(cmd, po)
	registerPageFlagCompletion(cmd)
	options.AddAtArgs(cmd, ao)
	options.AddOutputArg(cmd, oo)
	cmd.Flags().StringVar(&within, "within", within, `Look ahead window, example: --within=90m or --within=1d2h.`)

	topLevel.AddCommand(cmd)
}
