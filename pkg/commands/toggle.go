package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/plannow/pkg/runner/toggle"
)

func addToggle(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "toggle <id>",
		Aliases: []string{"done", "check"},
		Short:   "Check a task off, or reopen a checked one.",
		Example: `
plannow get --show-id
plannow toggle 5a0d6c1e-2b1c-4f0e-9a43-3d0d5f9f8f11
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			defer func() { _ = e.Close() }()
			s := toggle.Toggle{
				ID:      args[0],
				JSON:    oo.JSON,
				Out:     cmd.OutOrStdout(),
				Service: e.Service,
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}
