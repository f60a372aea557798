package options

import (
	"strings"

	"github.com/spf13/cobra"
)

// PageOptions selects the page a command works on.
type PageOptions struct {
	Page string
}

func AddPageArgs(cmd *cobra.Command, o *PageOptions) {
	cmd.Flags().StringVarP(&o.Page, "page", "p", "",
		"Specify the page, defaults to the configured page.")
}

// Resolve picks the page from the first positional argument, then --page,
// then fallback.
func (o *PageOptions) Resolve(args []string, fallback string) string {
	if len(args) > 0 {
		if p := strings.TrimSpace(strings.Join(args, " ")); p != "" {
			return p
		}
	}
	if p := strings.TrimSpace(o.Page); p != "" {
		return p
	}
	return fallback
}
