package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"tableflip.dev/plannow/pkg/commands/options"
	"tableflip.dev/plannow/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	io := &options.IDOptions{}
	var (
		tag   string
		all   bool
		open  bool
		watch bool
	)

	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"ls", "list"},
		Short:   "List the entries of a day, a hashtag or the whole journal.",
		Long: options.Wrap80(`List the entries of a day, today unless --on is set. Entries are numbered
by their position within the day, which is what "plannow delete" takes.`),
		Example: `
plannow get
plannow get --on yesterday --show-id
plannow get --tag groceries
plannow get --all --open
plannow get --watch
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
			s := get.Get{
				Day:     day,
				Tag:     tag,
				All:     all,
				Open:    open,
				ShowID:  io.ShowID,
				JSON:    oo.JSON,
				Watch:   watch,
				Out:     cmd.OutOrStdout(),
				Service: e.Service,
			}
			ctx := cmd.Context()
			if watch {
				var stop context.CancelFunc
				ctx, stop = signal.NotifyContext(ctx, os.Interrupt)
				defer stop()
			}
			return oo.HandleError(s.Do(ctx))
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddShowIDArgs(cmd, io)
	cmd.Flags().StringVar(&tag, "tag", "", "List entries carrying a hashtag, with or without the #.")
	cmd.Flags().BoolVar(&all, "all", false, "List every entry in the journal.")
	cmd.Flags().BoolVar(&open, "open", false, "Only list tasks that are not done.")
	_ = cmd.RegisterFlagCompletionFunc("tag", tagCompletions)
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep listing as the journal changes (diskv backend only).")
	topLevel.AddCommand(cmd)
}
