package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/imamik/provkit/internal/ansible"
	"github.com/imamik/provkit/internal/config"
	"github.com/imamik/provkit/internal/config/wizard"
)

// WizardOptions carries the wizard command's flag values.
type WizardOptions struct {
	// Playbook is the playbook file to run.
	Playbook string

	// Profile optionally names a saved YAML profile to seed the wizard.
	Profile string

	// OutputPath, when set, writes the answers to a YAML profile and exits
	// without running the playbook.
	OutputPath string

	// ExportVars, when set, prints the extra variables as JSON and exits
	// without running the playbook.
	ExportVars bool

	// Yes skips the final confirmation prompt.
	Yes bool
}

// Factory function variables for wizard - can be replaced in tests.
var (
	// runGuided shows the guided multi-group wizard.
	runGuided = wizard.RunGuided

	// loadProfile reads a saved YAML profile.
	loadProfile = wizard.LoadProfile

	// writeProfile saves the answers to a YAML profile.
	writeProfile = wizard.WriteProfile

	// profileExists checks whether the output path is already taken.
	profileExists = wizard.FileExists

	// confirmOverwrite asks before replacing an existing profile.
	confirmOverwrite = wizard.ConfirmOverwrite
)

// Wizard runs the guided front-end. Depending on the flags it launches the
// playbook, exports the extra variables as JSON, or writes a reusable
// profile.
func Wizard(ctx context.Context, opts WizardOptions) error {
	seed, err := wizardSeed(opts.Profile)
	if err != nil {
		return err
	}

	if !opts.ExportVars {
		printWizardWelcome()
	}

	session := seed
	if err := runGuided(ctx, session); err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	if err := session.Validate(); err != nil {
		return err
	}

	if opts.ExportVars {
		// Stdout carries only the JSON object so the output can be passed
		// straight to ansible-playbook -e. Advisories go to stderr.
		printWarningsTo(os.Stderr, session)
		out, err := ansible.ExportJSON(ansible.Vars(session))
		if err != nil {
			return fmt.Errorf("failed to export variables: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}
	printWarnings(session)

	if opts.OutputPath != "" {
		return saveProfile(session, opts.OutputPath)
	}

	return provision(ctx, opts.Playbook, session, opts.Yes)
}

// wizardSeed returns the starting session: a saved profile when given, the
// cache otherwise.
func wizardSeed(profile string) (*config.Session, error) {
	if profile == "" {
		session := config.NewSession(loadCache())
		session.CreateUser = true
		return session, nil
	}
	p, err := loadProfile(profile)
	if err != nil {
		return nil, err
	}
	return p.Session(), nil
}

// saveProfile writes the session to a YAML profile, asking before overwriting
// an existing file.
func saveProfile(session *config.Session, outputPath string) error {
	if profileExists(outputPath) {
		ok, err := confirmOverwrite(outputPath)
		if err != nil {
			return fmt.Errorf("failed to prompt for confirmation: %w", err)
		}
		if !ok {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := writeProfile(session, outputPath); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}

	fmt.Println()
	fmt.Println("Profile saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()
	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Printf("  provkit wizard --profile %s\n", outputPath)
	fmt.Println()
	return nil
}

// printWizardWelcome prints the welcome message.
func printWizardWelcome() {
	fmt.Println()
	fmt.Println("provkit - Ansible server provisioning")
	fmt.Println("=====================================")
	fmt.Println()
	fmt.Println("This wizard collects the target connection and feature selection")
	fmt.Println("step by step. Previous answers are pre-filled where available.")
	fmt.Println("Passwords and passphrases are never written to disk.")
	fmt.Println()
}
