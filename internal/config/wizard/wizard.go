// Package wizard implements the interactive front-ends that collect a
// provisioning session: the single-screen checkbox menu and the guided
// multi-group wizard.
package wizard

import (
	"context"

	"github.com/charmbracelet/huh"

	"github.com/imamik/provkit/internal/config"
	"github.com/imamik/provkit/internal/features"
)

// RunMenu runs the compact checkbox front-end: connection inputs plus a
// single multi-select over the full feature catalog. The seed (usually the
// cached config) pre-populates every field.
func RunMenu(ctx context.Context, seed *config.Config) (*config.Session, error) {
	session := config.NewSession(seed)
	selected := seed.SelectedFeatures()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Server IP address").
				Placeholder("203.0.113.10").
				Value(&session.TargetIP).
				Validate(validateTargetAddr),
			huh.NewInput().
				Title("SSH username").
				Value(&session.TargetUser).
				Validate(validateUser),
			huh.NewInput().
				Title("SSH private key path").
				Value(&session.SSHKeyPath).
				Validate(validateKeyPath),
		).Title("Connection"),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select features to install").
				Description("Space to toggle, enter to confirm").
				Options(FeatureOptions()...).
				Value(&selected),
		).Title("Features"),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, err
	}

	session.Features = selectionToMap(features.Keys(), selected)
	return session, nil
}

// RunGuided runs the step-by-step wizard with grouped questions and the
// extended options the compact menu omits (secrets, user creation, devtools
// sub-selection, reboot scheduling). The seed session (from the cache or a
// saved profile) pre-populates every answer and is updated in place.
func RunGuided(ctx context.Context, session *config.Session) error {
	if session.AddedUser == "" {
		session.AddedUser = "admin"
	}

	if err := runConnectionGroup(ctx, session); err != nil {
		return err
	}
	if err := runUserGroup(ctx, session); err != nil {
		return err
	}
	if err := runFeaturesGroup(ctx, session); err != nil {
		return err
	}
	if session.Features[features.DevTools] {
		if err := runDevToolsGroup(ctx, session); err != nil {
			return err
		}
	}
	if err := runSecurityGroup(ctx, session); err != nil {
		return err
	}
	return runMaintenanceGroup(ctx, session)
}

// Confirm asks a final yes/no question before launching the playbook.
func Confirm(ctx context.Context, title string) (bool, error) {
	proceed := true
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Value(&proceed),
		),
	).RunWithContext(ctx)
	return proceed, err
}

// selectionToMap converts a multi-select result back into the full boolean
// map over the given key set.
func selectionToMap(keys, selected []string) map[string]bool {
	m := make(map[string]bool, len(keys))
	for _, k := range keys {
		m[k] = false
	}
	for _, k := range selected {
		m[k] = true
	}
	return m
}
