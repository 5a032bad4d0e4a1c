package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/provkit/cmd/provkit/handlers"
)

// Check returns the command for verifying local prerequisites.
//
// This command checks that ansible-playbook and the SSH tooling are
// installed. With --probe it also opens a non-interactive SSH connection to
// the cached target to verify key-based access.
//
// Flags:
//
//	--probe: Also probe the SSH connection to the cached target
func Check() *cobra.Command {
	var probe bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify local prerequisites for provisioning",
		Long: `Verify local prerequisites for provisioning.

Checks that the required client tools are installed:

  - ansible-playbook
  - ssh
  - ssh-agent and ssh-add (for passphrase-protected keys)

With --probe the cached target is contacted over SSH in batch mode to
verify that key-based access works before a full playbook run.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Check(cmd.Context(), probe)
		},
	}

	cmd.Flags().BoolVar(&probe, "probe", false, "Also probe the SSH connection to the cached target")

	return cmd
}
