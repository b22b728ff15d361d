package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(plannow completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(plannow completion)
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return topLevel.GenBashCompletion(cmd.OutOrStdout())
		},
	}

	topLevel.AddCommand(cmd)
}

// tagCompletions offers the hashtags already in the journal.
func tagCompletions(cmd *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	e, err := loadEnv(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	defer func() { _ = e.Close() }()
	counts, err := e.Service.TagCounts(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var tags []string
	for _, tag := range counts.Tags() {
		if strings.HasPrefix(tag, toComplete) || strings.HasPrefix(strings.TrimPrefix(tag, "#"), toComplete) {
			tags = append(tags, tag)
		}
	}
	return tags, cobra.ShellCompDirectiveNoFileComp
}
