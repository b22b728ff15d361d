package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/plannow/pkg/commands/options"
	"tableflip.dev/plannow/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	eo := &options.EditOptions{}

	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Change the title, text or image of an entry.",
		Example: `
plannow edit 5a0d6c1e-2b1c-4f0e-9a43-3d0d5f9f8f11 --text "now with #tags"
plannow edit --index 3 --title "Renamed"
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s := edit.Edit{
				Index: eo.Index,
				Patch: eo.Patch(cmd),
				JSON:  oo.JSON,
				Out:   cmd.OutOrStdout(),
			}
			if len(args) == 1 {
				s.ID = args[0]
			} else if eo.Index < 0 {
				return oo.HandleError(errors.New("an entry id or --index is required"))
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

	options.AddEditArgs(cmd, eo)
	topLevel.AddCommand(cmd)
}
