package wizard

import (
	"context"
	"net"
	"regexp"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/imamik/provkit/internal/config"
	"github.com/imamik/provkit/internal/features"
)

// userNameRegex validates system user names: lowercase, starts with a letter
// or underscore, up to 32 characters.
var userNameRegex = regexp.MustCompile(`^[a-z_][a-z0-9_-]{0,31}$`)

// runConnectionGroup prompts for the target address, credentials and an
// optional hostname.
func runConnectionGroup(ctx context.Context, session *config.Session) error {
	return huh.NewForm(
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
			huh.NewInput().
				Title("SSH password (optional)").
				Description("Only needed when key-based login is not yet set up").
				EchoMode(huh.EchoModePassword).
				Value(&session.ConnectionPassword),
			huh.NewInput().
				Title("Key passphrase (optional)").
				Description("Leave empty if the private key is not passphrase-protected").
				EchoMode(huh.EchoModePassword).
				Value(&session.SSHKeyPassphrase),
			huh.NewInput().
				Title("Hostname (optional)").
				Description("Set the server's hostname during provisioning").
				Value(&session.Hostname),
		).Title("Authentication"),
	).RunWithContext(ctx)
}

// runUserGroup prompts for optional non-root user creation.
func runUserGroup(ctx context.Context, session *config.Session) error {
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Create a non-root user?").
				Description("A sudo-enabled user for day-to-day administration").
				Value(&session.CreateUser),
		).Title("User"),
	).RunWithContext(ctx)

	if err != nil {
		return err
	}

	if !session.CreateUser {
		session.AddedUser = ""
		session.UserPassword = ""
		return nil
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(&session.AddedUser).
				Validate(validateUserName),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&session.UserPassword),
		).Title("New User"),
	).RunWithContext(ctx)
}

// runFeaturesGroup prompts for the core feature selection.
func runFeaturesGroup(ctx context.Context, session *config.Session) error {
	selected := selectedKeys(session.Features, coreKeys())

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Core features").
				Description("Space to toggle, enter to confirm").
				Options(CoreFeatureOptions()...).
				Value(&selected),
		).Title("Features"),
	).RunWithContext(ctx)

	if err != nil {
		return err
	}

	applySelection(session.Features, coreKeys(), selected)
	return nil
}

// runDevToolsGroup prompts for the devtools sub-selection.
func runDevToolsGroup(ctx context.Context, session *config.Session) error {
	selected := selectedKeys(session.DevTools, devToolKeys())

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Development tools").
				Description("Installed only because Development Tools is enabled").
				Options(DevToolOptions()...).
				Value(&selected),
		).Title("Dev Tools"),
	).RunWithContext(ctx)

	if err != nil {
		return err
	}

	applySelection(session.DevTools, devToolKeys(), selected)
	return nil
}

// runSecurityGroup prompts for the security cluster selection.
func runSecurityGroup(ctx context.Context, session *config.Session) error {
	selected := selectedKeys(session.Features, clusterKeys())

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Security hardening").
				Description("Each group enables a fixed set of related measures").
				Options(ClusterOptions()...).
				Value(&selected),
		).Title("Security"),
	).RunWithContext(ctx)

	if err != nil {
		return err
	}

	applySelection(session.Features, clusterKeys(), selected)
	return nil
}

// runMaintenanceGroup prompts for periodic reboot scheduling.
func runMaintenanceGroup(ctx context.Context, session *config.Session) error {
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Enable periodic reboots?").
				Description("Scheduled via cron on the target server").
				Value(&session.PeriodicReboot),
		).Title("Maintenance"),
	).RunWithContext(ctx)

	if err != nil {
		return err
	}

	if !session.PeriodicReboot {
		return nil
	}

	if session.RebootHour == "" {
		session.RebootHour = config.DefaultRebootHour
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Reboot schedule").
				Options(RebootHourOptions()...).
				Value(&session.RebootHour),
		).Title("Reboot Schedule"),
	).RunWithContext(ctx)
}

// validateTargetAddr validates the target address: a well-formed IP, or a
// hostname without whitespace.
func validateTargetAddr(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errAddressRequired
	}
	if strings.ContainsAny(s, " \t") {
		return errAddressInvalid
	}
	// Anything made of digits and dots must parse as an IP.
	if strings.Trim(s, "0123456789.") == "" && net.ParseIP(s) == nil {
		return errAddressInvalid
	}
	return nil
}

// validateUser validates the SSH username.
func validateUser(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errUserRequired
	}
	if strings.ContainsAny(s, " \t") {
		return errUserInvalid
	}
	return nil
}

// validateKeyPath validates the private key path.
func validateKeyPath(s string) error {
	if strings.TrimSpace(s) == "" {
		return errKeyPathRequired
	}
	return nil
}

// validateUserName validates the name of the user to create.
func validateUserName(s string) error {
	if s == "" {
		return errUserNameRequired
	}
	if !userNameRegex.MatchString(s) {
		return errUserNameInvalid
	}
	return nil
}

// selectedKeys returns the enabled keys from sel, in the order given by keys.
func selectedKeys(sel map[string]bool, keys []string) []string {
	var out []string
	for _, k := range keys {
		if sel[k] {
			out = append(out, k)
		}
	}
	return out
}

// applySelection writes a multi-select result back into sel, touching only
// the given key subset.
func applySelection(sel map[string]bool, keys, selected []string) {
	for _, k := range keys {
		sel[k] = false
	}
	for _, k := range selected {
		sel[k] = true
	}
}

func coreKeys() []string {
	var keys []string
	for _, f := range features.Catalog {
		if !f.Cluster {
			keys = append(keys, f.Key)
		}
	}
	return keys
}

func clusterKeys() []string {
	var keys []string
	for _, f := range features.Catalog {
		if f.Cluster {
			keys = append(keys, f.Key)
		}
	}
	return keys
}

func devToolKeys() []string {
	keys := make([]string, len(features.DevToolsCatalog))
	for i, t := range features.DevToolsCatalog {
		keys[i] = t.Key
	}
	return keys
}
