package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/plannow/pkg/entry"
)

// AddOptions
type AddOptions struct {
	Text  string
	Task  bool
	Image string
}

func AddAddArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().StringVarP(&o.Text, "text", "t", "",
		Wrap80("Free text of the entry. Any #hashtags in it are indexed."))
	cmd.Flags().BoolVar(&o.Task, "task", false,
		"Create a task that can be checked off instead of a plain entry.")
	cmd.Flags().StringVar(&o.Image, "image", "",
		"Reference to an image to attach.")
}

func (o *AddOptions) Type() entry.Type {
	if o.Task {
		return entry.TypeTask
	}
	return entry.TypeEntry
}
