package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/plannow/pkg/commands/options"
	"tableflip.dev/plannow/pkg/runner/report"
)

func addReport(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	var last string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize the entries and tasks of the last few days.",
		Example: `
plannow report
plannow report --last 2w
plannow report --last 3d --on yesterday
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			until, err := on.GetDay()
			if err != nil {
				return oo.HandleError(err)
			}
			e, err := loadEnv(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			defer func() { _ = e.Close() }()
			s := report.Report{
				Window:  last,
				Until:   until,
				JSON:    oo.JSON,
				Out:     cmd.OutOrStdout(),
				Service: e.Service,
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddOnArgs(cmd, on)
	cmd.Flags().StringVar(&last, "last", "1w", "How far back to report, in days or weeks: 3d, 2w.")
	topLevel.AddCommand(cmd)
}
