package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/plannow/pkg/runner/profile"
)

func addProfile(topLevel *cobra.Command) {
	var username, picture string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or change your username and profile picture.",
		Example: `
plannow profile
plannow profile --username scott
plannow profile --picture file:///home/scott/me.png
plannow profile --picture ""
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			defer func() { _ = e.Close() }()
			s := profile.Profile{
				JSON:    oo.JSON,
				Out:     cmd.OutOrStdout(),
				Service: e.Service,
			}
			if cmd.Flags().Changed("username") {
				s.Username = &username
			}
			if cmd.Flags().Changed("picture") {
				s.Picture = &picture
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Set the username shown on your profile.")
	cmd.Flags().StringVar(&picture, "picture", "", "Set the profile picture reference, empty to remove it.")
	topLevel.AddCommand(cmd)
}
