package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/provkit/cmd/provkit/handlers"
)

// Run returns the command for the compact checkbox menu front-end.
//
// This command loads the cached configuration, shows connection inputs and a
// feature checklist, validates the selection, and launches ansible-playbook
// with the matching extra variables, streaming its output to the terminal.
//
// Flags:
//
//	--playbook, -p: Playbook file to run (default "playbook.yml")
//	--yes, -y: Skip the final confirmation prompt
func Run() *cobra.Command {
	var (
		playbook string
		yes      bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Select features from a checklist and provision the server",
		Long: `Select features from a checklist and provision the server.

This command shows a single-screen menu with the target connection
details and a checklist of installable features:

  - Fail2ban, Docker, LEMP stack, swap, cron jobs
  - Development tools, WordPress, Certbot
  - Security hardening groups (system, monitoring, network, advanced)

Previous answers are cached in ~/.ansible_provisioning_cache.json and
pre-fill the menu on the next run. After confirmation the selection is
translated into -e key=value extra variables and passed to
ansible-playbook, whose output is streamed to the terminal.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Run(cmd.Context(), playbook, yes)
		},
	}

	cmd.Flags().StringVarP(&playbook, "playbook", "p", "playbook.yml", "Playbook file to run")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the final confirmation prompt")

	return cmd
}
