package commands

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/timetable/pkg/commands/options"
	"tableflip.dev/timetable/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	po := &options.PageOptions{}

	cmd := &cobra.Command{
		Use:   "ui [page]",
		Short: "open the live timetable view",
		Long: `Open a full screen view of a page that moves the current-time marker every
minute and reloads when the page changes on disk.`,
		Example: `
timetable ui
timetable ui Fall
`,
		ValidArgsFunction: pageCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			fd := os.Stdout.Fd()
			if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
				return errors.New("ui needs a terminal, try `timetable show`")
			}
			svc, cfg, err := loadService()
			if err != nil {
				return err
			}
			i := ui.UI{Service: svc, Key: po.Resolve(args, cfg.Page())}
			return i.Do(cmd.Context())
		},
	}

	options.AddPageArgs(cmd, po)
	registerPageFlagCompletion(cmd)

	topLevel.AddCommand(cmd)
}
