package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/provkit/cmd/provkit/handlers"
)

// Wizard returns the command for the guided provisioning wizard.
//
// This command walks through grouped questions covering the connection,
// optional user creation, core features, devtools sub-selection, security
// hardening groups and maintenance scheduling, then launches the playbook.
//
// Flags:
//
//	--playbook, -p: Playbook file to run (default "playbook.yml")
//	--profile: Load a previously saved profile as the starting point
//	--output, -o: Write the collected answers to a YAML profile and exit
//	--export-vars: Print the extra variables as JSON and exit
//	--yes, -y: Skip the final confirmation prompt
func Wizard() *cobra.Command {
	var (
		playbook   string
		profile    string
		outputPath string
		exportVars bool
		yes        bool
	)

	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Walk through a guided provisioning wizard",
		Long: `Walk through a guided provisioning wizard.

The wizard asks grouped questions step by step:

  - Connection (address, SSH user, key, optional password/passphrase)
  - Optional non-root user creation
  - Core features and the devtools sub-selection
  - Security hardening groups
  - Maintenance (periodic reboots and their schedule)

A dependency check runs before launch: WordPress without the LEMP stack
is a blocking error, Certbot without LEMP only prints a warning.

Use --export-vars to print the assembled extra variables as JSON
instead of running the playbook. Use --output to save the answers
(without secrets) to a reusable YAML profile.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Wizard(cmd.Context(), handlers.WizardOptions{
				Playbook:   playbook,
				Profile:    profile,
				OutputPath: outputPath,
				ExportVars: exportVars,
				Yes:        yes,
			})
		},
	}

	cmd.Flags().StringVarP(&playbook, "playbook", "p", "playbook.yml", "Playbook file to run")
	cmd.Flags().StringVar(&profile, "profile", "", "Load a saved profile as the starting point")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the answers to a YAML profile and exit")
	cmd.Flags().BoolVar(&exportVars, "export-vars", false, "Print the extra variables as JSON and exit")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the final confirmation prompt")

	return cmd
}
