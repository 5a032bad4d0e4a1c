package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/provkit/cmd/provkit/handlers"
)

// Dashboard returns the command for the full-screen provisioning dashboard.
//
// This command collects the selection like run does, then shows the playbook
// output in a scrollable full-screen view with a live status header. When
// stdout is not a terminal it falls back to plain line streaming.
//
// Flags:
//
//	--playbook, -p: Playbook file to run (default "playbook.yml")
//	--yes, -y: Skip the final confirmation prompt
func Dashboard() *cobra.Command {
	var (
		playbook string
		yes      bool
	)

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Provision with a full-screen live output dashboard",
		Long: `Provision with a full-screen live output dashboard.

Like run, this command shows the connection inputs and feature
checklist first. The playbook output is then rendered in a scrollable
full-screen view with the current play/task and elapsed time in the
header. Press q to leave the dashboard; quitting while the playbook is
still running aborts it.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Dashboard(cmd.Context(), playbook, yes)
		},
	}

	cmd.Flags().StringVarP(&playbook, "playbook", "p", "playbook.yml", "Playbook file to run")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the final confirmation prompt")

	return cmd
}
