package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "timetable",
		Short: base.Wrap80("A weekly lecture timetable on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addPages(topLevel)
	addShow(topLevel)
	addNext(topLevel)
	addUI(topLevel)
	addExample(topLevel)
	addLecture(topLevel)
	addTime(topLevel)
	addLink(topLevel)
	addRename(topLevel)
	addDelete(topLevel)
	addCheck(topLevel)
	addInfo(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
