package sshutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Probe opens a non-interactive SSH connection to user@host with the given
// key and runs a trivial command. BatchMode guarantees no password prompt can
// hang the caller. extraEnv may carry SSH_AUTH_SOCK for agent-held keys.
func Probe(ctx context.Context, user, host, keyPath string, extraEnv []string) error {
	expanded := ExpandPath(keyPath)
	if _, err := os.Stat(expanded); err != nil {
		return fmt.Errorf("ssh key not found: %s", expanded)
	}

	// #nosec G204 - host, user and key path come from the operator's own configuration
	cmd := exec.CommandContext(ctx, "ssh",
		"-o", "BatchMode=yes",
		"-o", "ConnectTimeout=10",
		"-o", "StrictHostKeyChecking=no",
		"-i", expanded,
		fmt.Sprintf("%s@%s", user, host),
		"true",
	)
	cmd.Env = append(os.Environ(), extraEnv...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return fmt.Errorf("ssh connection to %s@%s failed: %s", user, host, detail)
		}
		return fmt.Errorf("ssh connection to %s@%s failed: %w", user, host, err)
	}
	return nil
}
