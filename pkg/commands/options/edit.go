package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/plannow/pkg/entry"
)

// EditOptions
type EditOptions struct {
	Title string
	Text  string
	Image string
	Index int
}

func AddEditArgs(cmd *cobra.Command, o *EditOptions) {
	cmd.Flags().StringVar(&o.Title, "title", "", "Replace the title.")
	cmd.Flags().StringVarP(&o.Text, "text", "t", "", "Replace the text, hashtags are recomputed.")
	cmd.Flags().StringVar(&o.Image, "image", "", "Replace the image reference, empty removes it.")
	cmd.Flags().IntVar(&o.Index, "index", -1,
		Wrap80("Address the entry by its index in the whole journal instead of by id. Indexes shift as entries are added and deleted."))
}

// Patch builds a patch from the flags the user actually set.
func (o *EditOptions) Patch(cmd *cobra.Command) entry.Patch {
	p := entry.Patch{}
	if cmd.Flags().Changed("title") {
		p.Title = entry.String(o.Title)
	}
	if cmd.Flags().Changed("text") {
		p.Text = entry.String(o.Text)
	}
	if cmd.Flags().Changed("image") {
		p.ImageURI = entry.String(o.Image)
	}
	return p
}
