package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/plannow/pkg/commands/options"
	"tableflip.dev/plannow/pkg/runner/remove"
)

func addDelete(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "delete [position]",
		Aliases: []string{"rm"},
		Short:   "Delete an entry by its position within a day, or by id.",
		Long: options.Wrap80(`Delete an entry. Positions are the numbers "plannow get" prints for a day.
After deleting by position the remaining entries of that day move to the end of
the journal, which only matters for "plannow edit --index".`),
		Example: `
plannow delete 0
plannow delete 2 --on 2024-3-1
plannow delete --id 5a0d6c1e-2b1c-4f0e-9a43-3d0d5f9f8f11
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s := remove.Remove{
				ID:   io.ID,
				JSON: oo.JSON,
				Out:  cmd.OutOrStdout(),
			}
			switch {
			case io.ID != "" && len(args) > 0:
				return oo.HandleError(errors.New("give either a position or --id, not both"))
			case io.ID == "":
				if len(args) == 0 {
					return oo.HandleError(errors.New("a position or --id is required"))
				}
				pos, err := strconv.Atoi(args[0])
				if err != nil || pos < 0 {
					return oo.HandleError(fmt.Errorf("invalid position %q", args[0]))
				}
				day, err := on.GetDay()
				if err != nil {
					return oo.HandleError(err)
				}
				s.Day, s.Position = day, pos
			}
			e, err := loadEnv(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			defer func() { _ = e.Close() }()
			s.Service = e.Service
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
