package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/plannow/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print where the journal is stored and a summary of it.",
		Example: `
plannow info
PLANNOW_BACKEND=redis PLANNOW_REDIS_URL=redis://localhost:6379/0 plannow info
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			defer func() { _ = e.Close() }()
			s := info.Info{
				Config:  e.Config,
				Service: e.Service,
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}
