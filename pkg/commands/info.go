package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/timetable/pkg/commands/options"
	"tableflip.dev/timetable/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the config and where pages are stored.",
		Example: `
timetable info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, cfg, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			s := info.Info{
				Config: cfg,
				App:    svc,
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
