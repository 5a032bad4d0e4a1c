// Package sshutil handles the SSH plumbing around playbook runs: private key
// inspection, throwaway ssh-agent setup for passphrase-protected keys, and
// non-interactive connection probing.
package sshutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/ssh"
)

// ExpandPath expands a leading ~/ to the user's home directory.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}
	return path
}

// KeyExists reports whether the private key file exists after ~ expansion.
func KeyExists(path string) bool {
	_, err := os.Stat(ExpandPath(path))
	return err == nil
}

// KeyIsEncrypted reports whether the private key at path is protected by a
// passphrase. Returns an error when the file is missing or not a private key.
func KeyIsEncrypted(path string) (bool, error) {
	expanded := ExpandPath(path)
	data, err := os.ReadFile(expanded) // #nosec G304 - user-supplied key path by design
	if err != nil {
		return false, fmt.Errorf("reading key %s: %w", expanded, err)
	}

	_, err = ssh.ParseRawPrivateKey(data)
	if err == nil {
		return false, nil
	}

	var passErr *ssh.PassphraseMissingError
	if errors.As(err, &passErr) {
		return true, nil
	}
	return false, fmt.Errorf("parsing key %s: %w", expanded, err)
}
