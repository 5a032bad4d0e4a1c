package config

import "github.com/imamik/provkit/internal/features"

// Session wraps a Config with the per-run inputs that must not be persisted:
// secrets and one-shot provisioning options collected by the wizard.
type Session struct {
	Config

	// ConnectionPassword is an optional SSH password for the initial
	// connection. Never cached.
	ConnectionPassword string

	// SSHKeyPassphrase unlocks a passphrase-protected private key via a
	// throwaway ssh-agent. Never cached.
	SSHKeyPassphrase string

	// Hostname optionally sets the target's hostname.
	Hostname string

	// CreateUser controls whether a non-root system user is created.
	CreateUser bool

	// AddedUser is the name of the user to create.
	AddedUser string

	// UserPassword is the created user's password. Never cached.
	UserPassword string

	// PeriodicReboot enables scheduled reboots at Config.RebootHour.
	PeriodicReboot bool

	// DevTools holds the devtools sub-selection. Only consulted when the
	// devtools feature is enabled.
	DevTools map[string]bool
}

// NewSession builds a Session seeded from a cached (or default) Config.
func NewSession(cfg *Config) *Session {
	return &Session{
		Config:   *cfg,
		DevTools: features.DevToolDefaults(),
	}
}

// Validate checks required connection fields and feature dependencies.
// Any error is blocking.
func (s *Session) Validate() error {
	switch {
	case s.TargetIP == "":
		return ErrTargetIPRequired
	case s.TargetUser == "":
		return ErrTargetUserRequired
	case s.SSHKeyPath == "":
		return ErrSSHKeyPathRequired
	}
	return features.ValidateSelection(s.Features)
}

// Warnings returns non-blocking advisories for the current selection.
func (s *Session) Warnings() []string {
	return features.SelectionWarnings(s.Features)
}
