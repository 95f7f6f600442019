package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/daypack/pkg/app"
	"tableflip.dev/daypack/pkg/commands/options"
	"tableflip.dev/daypack/pkg/runner/login"
)

func addLogin(topLevel *cobra.Command) {
	lo := &options.LoginOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and unlock your partition",
		Example: `
daypack login
daypack login --guest
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := app.Load(nil)
			if err != nil {
				return err
			}
			s := login.Login{
				Guest:   lo.Guest,
				Service: svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddLoginArgs(cmd, lo)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addLogout(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Sign out; your data survives for the next login",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := app.Load(nil)
			if err != nil {
				return err
			}
			s := login.Logout{Service: svc}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addWhoami(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the active session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := app.Load(nil)
			if err != nil {
				return err
			}
			s := login.Whoami{Service: svc}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
