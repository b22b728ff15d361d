package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/plannow/pkg/commands/options"
	"tableflip.dev/plannow/pkg/logging"
)

var (
	oo       = &options.OutputOptions{}
	logLevel string
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "plannow",
		Short: options.Wrap80("A journal and to-do list on the command line. Entries live on days, tasks can be checked off, #hashtags tie them together."),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			oo.Out = cmd.OutOrStdout()
			level := logLevel
			if !cmd.Flags().Changed("log-level") {
				if cfg, err := loadConfig(); err == nil {
					level = cfg.LogLevel
				}
			}
			return logging.Setup(cmd.ErrOrStderr(), level)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddOutputArg(cmd, oo)
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", logging.DefaultLevel,
		"Log level: debug, info, warn or error.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addSignUp(topLevel)
	addSignIn(topLevel)
	addSignOut(topLevel)
	addWhoAmI(topLevel)
	addAccount(topLevel)
	addProfile(topLevel)

	addAdd(topLevel)
	addGet(topLevel)
	addToggle(topLevel)
	addEdit(topLevel)
	addDelete(topLevel)
	addTags(topLevel)
	addCalendar(topLevel)
	addReport(topLevel)
	addKey(topLevel)

	addInfo(topLevel)
	addMCP(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
	addUpgrade(topLevel)
}
