package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/plannow/pkg/commands/options"
	"tableflip.dev/plannow/pkg/runner/calendar"
)

func addCalendar(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	var months int

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Print a month calendar marking the days that have entries.",
		Example: `
plannow calendar
plannow calendar --on 2024-1-1 --months 3
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			day, err := on.GetDay()
			if err != nil {
				return oo.HandleError(err)
			}
			var month time.Time
			if !day.IsZero() {
				if month, err = day.Time(); err != nil {
					return oo.HandleError(err)
				}
			}
			e, err := loadEnv(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			defer func() { _ = e.Close() }()
			s := calendar.Calendar{
				Month:    month,
				Months:   months,
				Selected: day,
				Out:      cmd.OutOrStdout(),
				Service:  e.Service,
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddOnArgs(cmd, on)
	cmd.Flags().IntVarP(&months, "months", "m", 1, "Number of months to print.")
	topLevel.AddCommand(cmd)
}
