package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/plannow/pkg/commands/options"
	"tableflip.dev/plannow/pkg/runner/account"
	"tableflip.dev/plannow/pkg/runner/profile"
)

func addSignUp(topLevel *cobra.Command) {
	ao := &options.AccountOptions{}

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and sign in.",
		Example: `
plannow signup --email me@example.com
echo "s3cret!" | plannow signup -e me@example.com
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			defer func() { _ = e.Close() }()
			pw, err := ao.ResolvePassword(cmd.InOrStdin(), cmd.ErrOrStderr())
			if err != nil {
				return oo.HandleError(err)
			}
			s := account.SignUp{
				Email:    ao.Email,
				Password: pw,
				Out:      cmd.OutOrStdout(),
				Accounts: e.Service.Accounts,
				Sessions: e.Sessions,
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddEmailArgs(cmd, ao)
	options.AddPasswordArgs(cmd, ao)
	_ = cmd.MarkFlagRequired("email")
	topLevel.AddCommand(cmd)
}

func addSignIn(topLevel *cobra.Command) {
	ao := &options.AccountOptions{}

	cmd := &cobra.Command{
		Use:     "signin",
		Aliases: []string{"login"},
		Short:   "Sign in to an existing account.",
		Example: `
plannow signin --email me@example.com
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			defer func() { _ = e.Close() }()
			pw, err := ao.ResolvePassword(cmd.InOrStdin(), cmd.ErrOrStderr())
			if err != nil {
				return oo.HandleError(err)
			}
			s := account.SignIn{
				Email:    ao.Email,
				Password: pw,
				Out:      cmd.OutOrStdout(),
				Accounts: e.Service.Accounts,
				Sessions: e.Sessions,
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddEmailArgs(cmd, ao)
	options.AddPasswordArgs(cmd, ao)
	_ = cmd.MarkFlagRequired("email")
	topLevel.AddCommand(cmd)
}

func addSignOut(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "signout",
		Aliases: []string{"logout"},
		Short:   "Forget the signed-in session.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			defer func() { _ = e.Close() }()
			s := account.SignOut{Out: cmd.OutOrStdout(), Sessions: e.Sessions}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}

func addWhoAmI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			defer func() { _ = e.Close() }()
			s := profile.Profile{
				JSON:    oo.JSON,
				Out:     cmd.OutOrStdout(),
				Service: e.Service,
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}

func addAccount(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage the signed-in account.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pw := &options.AccountOptions{}
	var next string
	password := &cobra.Command{
		Use:   "password",
		Short: "Change the account password.",
		Example: `
plannow account password --password old-secret --new new-secret
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			defer func() { _ = e.Close() }()
			current, err := pw.ResolvePassword(cmd.InOrStdin(), cmd.ErrOrStderr())
			if err != nil {
				return oo.HandleError(err)
			}
			s := account.Password{
				Current: current,
				Next:    next,
				Out:     cmd.OutOrStdout(),
				Service: e.Service,
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}
	options.AddPasswordArgs(password, pw)
	password.Flags().StringVar(&next, "new", "", "The new password.")
	_ = password.MarkFlagRequired("new")

	del := &options.AccountOptions{}
	remove := &cobra.Command{
		Use:   "delete",
		Short: "Delete the account with all of its entries.",
		Long: options.Wrap80(`Delete the signed-in account after checking its password. Every entry and
profile value of the account is removed and the session is signed out. This can not be undone.`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			defer func() { _ = e.Close() }()
			pw, err := del.ResolvePassword(cmd.InOrStdin(), cmd.ErrOrStderr())
			if err != nil {
				return oo.HandleError(err)
			}
			s := account.Delete{
				Password: pw,
				Out:      cmd.OutOrStdout(),
				Service:  e.Service,
				Sessions: e.Sessions,
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}
	options.AddPasswordArgs(remove, del)

	cmd.AddCommand(password, remove)
	topLevel.AddCommand(cmd)
}
