package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/plannow/pkg/commands/options"
	"tableflip.dev/plannow/pkg/runner/tags"
)

func addTags(topLevel *cobra.Command) {
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:     "tags",
		Aliases: []string{"hashtags"},
		Short:   "Count entries per hashtag.",
		Example: `
plannow tags
plannow tags --on today
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
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
			s := tags.Tags{
				Day:     day,
				JSON:    oo.JSON,
				Out:     cmd.OutOrStdout(),
				Service: e.Service,
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddOnArgs(cmd, on)
	topLevel.AddCommand(cmd)
}
