package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/daypack/pkg/app"
	"tableflip.dev/daypack/pkg/commands/options"
	"tableflip.dev/daypack/pkg/runner/events"
)

func addEvent(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "event",
		Short: "Manage your calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addEventAdd(cmd, io)
	addEventList(cmd, io)
	addEventRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addEventAdd(topLevel *cobra.Command, io *options.IDOptions) {
	do := &options.DateOptions{}
	eo := &options.EventOptions{}
	var title string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a calendar event",
		Example: `
daypack event add dentist --on 2026-09-02 --at 14:30
daypack event add standup --on 2026-09-01 --desc "daily check-in"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires an event title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := app.Load(nil)
			if err != nil {
				return err
			}
			s := events.Add{
				Title:       title,
				Date:        do.Date,
				Time:        eo.Time,
				Description: eo.Description,
				ShowID:      io.ShowID,
				Service:     svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	options.AddEventArgs(cmd, eo)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addEventList(topLevel *cobra.Command, io *options.IDOptions) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List calendar events",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := app.Load(nil)
			if err != nil {
				return err
			}
			s := events.List{
				ShowID:  io.ShowID,
				Service: svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addEventRemove(topLevel *cobra.Command) {
	var id uint64

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Short:   "Remove a calendar event",
		Aliases: []string{"remove"},
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			var err error
			id, err = parseID(args)
			return err
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := app.Load(nil)
			if err != nil {
				return err
			}
			s := events.Remove{ID: id, Service: svc}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
