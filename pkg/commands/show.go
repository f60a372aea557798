package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/timetable/pkg/commands/options"
	"tableflip.dev/timetable/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	po := &options.PageOptions{}
	ao := &options.AtOptions{}
	io := &options.IDOptions{}
	var (
		height int
		agenda bool
	)

	cmd := &cobra.Command{
		Use:   "show [page]",
		Short: "Print a page as a weekday grid.",
		Example: `
timetable show
timetable show Fall --agenda
timetable show --at "2024-01-01 10:30" --height 24
`,
		ValidArgsFunction: pageCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, cfg, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			at, err := ao.GetAt(time.Now())
			if err != nil {
				return oo.HandleError(err)
			}
			s := show.Show{
				App:    svc,
				Key:    po.Resolve(args, cfg.Page()),
				At:     at,
				Height: height,
				Agenda: agenda,
				ShowID: io.ShowID,
				JSON:   oo.JSON,
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddPageArgs(cmd, po)
	registerPageFlagCompletion(cmd)
	options.AddAtArgs(cmd, ao)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	cmd.Flags().IntVar(&height, "height", 0, "Rows used for the grid.")
	cmd.Flags().BoolVarP(&agenda, "agenda", "a", false, "Print a table ordered by weekday instead of the grid.")

	topLevel.AddCommand(cmd)
}
