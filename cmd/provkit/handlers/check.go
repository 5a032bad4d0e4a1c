package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/imamik/provkit/internal/sshutil"
	"github.com/imamik/provkit/internal/util/prerequisites"
)

// Factory function variables for check - can be replaced in tests.
var (
	// checkTools verifies the required client tools. The ssh-agent tooling is
	// included only when the cached key needs a passphrase.
	checkTools = func(withAgent bool) *prerequisites.CheckResults {
		if withAgent {
			return prerequisites.CheckWithAgent()
		}
		return prerequisites.CheckDefault()
	}

	// keyExists reports whether the cached private key is present on disk.
	keyExists = sshutil.KeyExists

	// keyEncrypted reports whether the cached private key needs a passphrase.
	keyEncrypted = sshutil.KeyIsEncrypted

	// probeSSH opens a non-interactive SSH connection to the target.
	probeSSH = sshutil.Probe
)

// Check verifies that the local tooling is installed, inspects the cached SSH
// key, and optionally probes the SSH connection to the cached target.
func Check(ctx context.Context, probe bool) error {
	cfg := loadCache()
	encrypted := cachedKeyEncrypted(cfg.SSHKeyPath)

	results := checkTools(encrypted)

	fmt.Println(headingStyle.Render("Prerequisites"))
	for _, r := range results.Results {
		switch {
		case r.Found && r.Version != "":
			fmt.Printf("  %s %-16s %s\n", okStyle.Render("[OK]"), r.Tool.Name, offStyle.Render(r.Version))
		case r.Found:
			fmt.Printf("  %s %-16s %s\n", okStyle.Render("[OK]"), r.Tool.Name, offStyle.Render(r.Path))
		default:
			fmt.Printf("  %s %-16s missing (%s)\n", warnStyle.Render("[!!]"), r.Tool.Name, r.Tool.InstallURL)
		}
	}

	printKeyStatus(cfg.SSHKeyPath, encrypted)

	if err := results.Error(); err != nil {
		return err
	}

	if !probe {
		return nil
	}

	if cfg.TargetIP == "" {
		return errors.New("no cached target to probe; run 'provkit run' first")
	}

	fmt.Printf("\nProbing %s@%s...\n", cfg.TargetUser, cfg.TargetIP)
	if err := probeSSH(ctx, cfg.TargetUser, cfg.TargetIP, cfg.SSHKeyPath, nil); err != nil {
		return err
	}
	fmt.Println(okStyle.Render("SSH connection OK."))
	return nil
}

// cachedKeyEncrypted reports whether the cached key exists and needs a
// passphrase. Unreadable keys are treated as unencrypted; the probe will
// surface the real problem.
func cachedKeyEncrypted(keyPath string) bool {
	if keyPath == "" || !keyExists(keyPath) {
		return false
	}
	encrypted, err := keyEncrypted(keyPath)
	return err == nil && encrypted
}

// printKeyStatus prints the state of the cached private key.
func printKeyStatus(keyPath string, encrypted bool) {
	if keyPath == "" {
		return
	}

	fmt.Println()
	fmt.Println(headingStyle.Render("SSH key"))
	switch {
	case !keyExists(keyPath):
		fmt.Printf("  %s %s not found\n", warnStyle.Render("[!!]"), keyPath)
	case encrypted:
		fmt.Printf("  %s %s %s\n", okStyle.Render("[OK]"), keyPath, offStyle.Render("(passphrase protected)"))
	default:
		fmt.Printf("  %s %s\n", okStyle.Render("[OK]"), keyPath)
	}
}
