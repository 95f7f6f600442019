package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "daypack",
		Short: base.Wrap80("Tasks, calendar, journal and focus stats on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addLogin(topLevel)
	addLogout(topLevel)
	addWhoami(topLevel)
	addTask(topLevel)
	addEvent(topLevel)
	addSync(topLevel)
	addJournal(topLevel)
	addFocus(topLevel)
	addStats(topLevel)
	addVersion(topLevel)
}
