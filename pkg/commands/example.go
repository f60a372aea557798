package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/timetable/pkg/commands/options"
	"tableflip.dev/timetable/pkg/runner/example"
)

func addExample(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	ao := &options.AtOptions{}
	var (
		save   string
		agenda bool
		height int
	)

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print the sample week, optionally saving it as a page.",
		Example: `
timetable example
timetable example --save Demo
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			at, err := ao.GetAt(time.Now())
			if err != nil {
				return oo.HandleError(err)
			}
			e := example.Example{
				Save:   save,
				At:     at,
				Agenda: agenda,
				Height: height,
			}
			if save != "" {
				svc, _, err := loadService()
				if err != nil {
					return oo.HandleError(err)
				}
				e.App = svc
			}
			err = e.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddAtArgs(cmd, ao)
	options.AddOutputArg(cmd, oo)
	cmd.Flags().StringVar(&save, "save", "", "Save the example under this page.")
	cmd.Flags().BoolVarP(&agenda, "agenda", "a", false, "Print a table ordered by weekday instead of the grid.")
	cmd.Flags().IntVar(&height, "height", 0, "Rows used for the grid.")

	topLevel.AddCommand(cmd)
}
