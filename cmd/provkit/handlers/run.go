package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/provkit/internal/config"
	"github.com/imamik/provkit/internal/config/wizard"
)

// Factory function variables for run - can be replaced in tests.
var (
	// runMenu shows the checkbox menu front-end.
	runMenu = wizard.RunMenu

	// runConfirm asks the final confirmation question.
	runConfirm = wizard.Confirm
)

// Run shows the checkbox menu, validates the selection and launches the
// playbook, streaming output to stdout.
func Run(ctx context.Context, playbook string, yes bool) error {
	seed := loadCache()

	session, err := runMenu(ctx, seed)
	if err != nil {
		return fmt.Errorf("menu canceled: %w", err)
	}

	return provision(ctx, playbook, session, yes)
}

// prepare is the shared front of every launch: validate, warn, summarize,
// confirm and cache. It reports whether the run should proceed.
func prepare(ctx context.Context, playbook string, session *config.Session, yes bool) (bool, error) {
	if err := session.Validate(); err != nil {
		return false, err
	}
	printWarnings(session)
	printSummary(session, playbook)

	if !yes {
		ok, err := runConfirm(ctx, "Start provisioning?")
		if err != nil {
			return false, fmt.Errorf("failed to prompt for confirmation: %w", err)
		}
		if !ok {
			fmt.Println("Aborted.")
			return false, nil
		}
	}

	// A failed cache write never blocks the run.
	_ = saveCache(&session.Config)
	return true, nil
}

// provision runs the plain streaming flow: prepare, then print each playbook
// output line to stdout.
func provision(ctx context.Context, playbook string, session *config.Session, yes bool) error {
	proceed, err := prepare(ctx, playbook, session, yes)
	if err != nil || !proceed {
		return err
	}

	code, err := launch(ctx, playbook, session, func(line string) {
		fmt.Println(line)
	})
	if err != nil {
		return err
	}

	printRunResult(code)
	if code != 0 {
		return fmt.Errorf("provisioning failed with exit code %d", code)
	}
	return nil
}
