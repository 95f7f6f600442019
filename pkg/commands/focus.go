package commands

import (
	"context"
	"errors"
	"strconv"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/daypack/pkg/app"
	"tableflip.dev/daypack/pkg/commands/options"
	"tableflip.dev/daypack/pkg/runner/focus"
	"tableflip.dev/daypack/pkg/timeutil"
)

func addFocus(topLevel *cobra.Command) {
	fo := &options.FocusOptions{}

	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Run a focus timer; finished minutes feed your stats",
		Example: `
daypack focus
daypack focus --duration 45m
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			d, _, err := timeutil.ParseSitting(fo.Duration)
			if err != nil {
				return err
			}
			svc, err := app.Load(nil)
			if err != nil {
				return err
			}
			s := focus.Run{
				Duration: d,
				Service:  svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddFocusArgs(cmd, fo)
	base.AddOutputArg(cmd, oo)

	addFocusLog(cmd)

	topLevel.AddCommand(cmd)
}

func addFocusLog(topLevel *cobra.Command) {
	var minutes uint64

	cmd := &cobra.Command{
		Use:   "log <minutes>",
		Short: "Record a finished sitting without running the timer",
		Example: `
daypack focus log 25
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires the sitting length in minutes")
			}
			var err error
			minutes, err = strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return errors.New("minutes must be a number")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := app.Load(nil)
			if err != nil {
				return err
			}
			s := focus.Log{
				Minutes: minutes,
				Service: svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
