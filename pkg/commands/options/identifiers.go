package options

import (
	"github.com/spf13/cobra"
)

// IDOptions
type IDOptions struct {
	ShowID bool
	ID     string
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the IDs of lectures and time slots.")
}

func AddIDArgs(cmd *cobra.Command, o *IDOptions, noun string) {
	cmd.Flags().StringVar(&o.ID, "id", "",
		"Specify the id of the "+noun+".")
	_ = cmd.MarkFlagRequired("id")
}
