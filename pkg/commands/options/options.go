// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// DateOptions captures the date an entry or event applies to.
type DateOptions struct {
	Date string
}

// AddDateArgs wires the date flag on the provided command. An unset flag
// resolves to the current day at the runner.
func AddDateArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVar(&o.Date, "on", "",
		"Specify the date (YYYY-MM-DD); defaults to today.")
}

// IDOptions controls record id display.
type IDOptions struct {
	ShowID bool
}

// AddShowIDArgs registers the id display flag.
func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVar(&o.ShowID, "show-ids", false,
		"Show record ids.")
}

// EventOptions captures the optional calendar event fields.
type EventOptions struct {
	Time        string
	Description string
}

// AddEventArgs wires event detail flags on the provided command.
func AddEventArgs(cmd *cobra.Command, o *EventOptions) {
	cmd.Flags().StringVarP(&o.Time, "at", "a", "",
		"Specify the time of day (HH:MM).")
	cmd.Flags().StringVar(&o.Description, "desc", "",
		"Specify a description.")
}

// LoginOptions selects the login path.
type LoginOptions struct {
	Guest bool
}

// AddLoginArgs wires login flags on the provided command.
func AddLoginArgs(cmd *cobra.Command, o *LoginOptions) {
	cmd.Flags().BoolVar(&o.Guest, "guest", false,
		"Continue as a guest, without an identity provider.")
}

// FocusOptions captures the sitting length.
type FocusOptions struct {
	Duration string
}

// AddFocusArgs wires the duration flag on the provided command.
func AddFocusArgs(cmd *cobra.Command, o *FocusOptions) {
	cmd.Flags().StringVarP(&o.Duration, "duration", "d", "",
		"Length of the sitting (for example 25m or 1h).")
}
