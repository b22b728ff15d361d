package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/plannow/pkg/app"
	"tableflip.dev/plannow/pkg/commands/options"
	"tableflip.dev/plannow/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	ao := &options.AddOptions{}
	on := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add an entry or task to a day.",
		Long: options.Wrap80(`Add an entry to a day, today unless --on is set. The title is at most
30 characters; longer thoughts go in --text, where #hashtags are picked up.`),
		Example: `
plannow add Buy milk --task --text "for the #weekend"
plannow add "Dentist" --on 3/14
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			day, err := on.GetDay()
			if err != nil {
				return oo.HandleError(err)
			}
			e, err := loadEnv(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			defer func() { _ = e.Close() }()
			s := add.Add{
				Request: app.AddRequest{
					Date:     day,
					Title:    strings.Join(args, " "),
					Text:     ao.Text,
					Type:     ao.Type(),
					ImageURI: ao.Image,
				},
				ShowID:  io.ShowID,
				JSON:    oo.JSON,
				Out:     cmd.OutOrStdout(),
				Service: e.Service,
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddAddArgs(cmd, ao)
	options.AddOnArgs(cmd, on)
	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
