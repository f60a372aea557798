package commands

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/timetable/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(timetable completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(timetable completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// pageCompletions lists saved page keys starting with toComplete.
func pageCompletions(toComplete string) []string {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil
	}
	s, err := store.Load(cfg)
	if err != nil {
		return nil
	}
	return filterPrefix(s.Keys(context.Background()), toComplete)
}

func filterPrefix(keys []string, prefix string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if strings.HasPrefix(strings.ToLower(k), strings.ToLower(prefix)) {
			out = append(out, k)
		}
	}
	return out
}

func pageCompletion(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return pageCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
}

func registerPageFlagCompletion(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("page", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return pageCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}
