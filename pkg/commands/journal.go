package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/daypack/pkg/app"
	"tableflip.dev/daypack/pkg/commands/options"
	"tableflip.dev/daypack/pkg/runner/journals"
)

func addJournal(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Keep a daily journal, one entry per day",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addJournalWrite(cmd)
	addJournalShow(cmd)
	addJournalList(cmd)
	addJournalArchive(cmd)

	topLevel.AddCommand(cmd)
}

func addJournalWrite(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	var content string

	cmd := &cobra.Command{
		Use:   "write <content>",
		Short: "Write or replace the entry for a day",
		Example: `
daypack journal write shipped the release
daypack journal write caught up on email --on 2026-08-27
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires entry content")
			}
			content = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := app.Load(nil)
			if err != nil {
				return err
			}
			s := journals.Write{
				Date:    do.Date,
				Content: content,
				Service: svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addJournalShow(topLevel *cobra.Command) {
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the entry for a day",
		Example: `
daypack journal show
daypack journal show --on 2026-08-27
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := app.Load(nil)
			if err != nil {
				return err
			}
			s := journals.Show{
				Date:    do.Date,
				Service: svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addJournalList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every journal entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := app.Load(nil)
			if err != nil {
				return err
			}
			s := journals.List{Service: svc}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addJournalArchive(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Browse past months' entries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := app.Load(nil)
			if err != nil {
				return err
			}
			s := journals.Archive{Service: svc}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
