package sshutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Agent is a throwaway ssh-agent started for a single run to hold a
// passphrase-protected key. Stop must be called when the run finishes.
type Agent struct {
	// Sock is the SSH_AUTH_SOCK value for child processes.
	Sock string

	pid string
}

// StartAgent launches an ssh-agent, adds the key to it, and returns the agent
// handle. When passphrase is non-empty the key is unlocked via a temporary
// askpass script so ssh-add never prompts on the terminal.
func StartAgent(ctx context.Context, keyPath, passphrase string) (*Agent, error) {
	out, err := exec.CommandContext(ctx, "ssh-agent", "-s").Output()
	if err != nil {
		return nil, fmt.Errorf("starting ssh-agent: %w", err)
	}

	agent, err := parseAgentOutput(string(out))
	if err != nil {
		return nil, err
	}

	if err := agent.addKey(ctx, ExpandPath(keyPath), passphrase); err != nil {
		agent.Stop()
		return nil, err
	}
	return agent, nil
}

// parseAgentOutput extracts SSH_AUTH_SOCK and SSH_AGENT_PID from the
// sh-compatible output of ssh-agent -s.
func parseAgentOutput(out string) (*Agent, error) {
	agent := &Agent{}
	for _, line := range strings.Split(out, "\n") {
		switch {
		case strings.Contains(line, "SSH_AUTH_SOCK="):
			agent.Sock = strings.TrimPrefix(firstField(line), "SSH_AUTH_SOCK=")
		case strings.Contains(line, "SSH_AGENT_PID="):
			agent.pid = strings.TrimPrefix(firstField(line), "SSH_AGENT_PID=")
		}
	}
	if agent.Sock == "" || agent.pid == "" {
		return nil, errors.New("ssh-agent did not report a socket and pid")
	}
	return agent, nil
}

func firstField(line string) string {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		return line[:i]
	}
	return line
}

// addKey runs ssh-add against this agent. For passphrase-protected keys a
// one-shot askpass script feeds the passphrase; the script is removed
// immediately after.
func (a *Agent) addKey(ctx context.Context, keyPath, passphrase string) error {
	cmd := exec.CommandContext(ctx, "ssh-add", keyPath) // #nosec G204 - key path supplied by the operator
	cmd.Env = append(os.Environ(), "SSH_AUTH_SOCK="+a.Sock)

	if passphrase != "" {
		askpass := filepath.Join(os.TempDir(), fmt.Sprintf("provkit_askpass_%s.sh", a.pid))
		script := fmt.Sprintf("#!/bin/sh\ncat << 'EOF'\n%s\nEOF\n", passphrase)
		if err := os.WriteFile(askpass, []byte(script), 0700); err != nil { // #nosec G306 - script must be executable
			return fmt.Errorf("writing askpass script: %w", err)
		}
		defer os.Remove(askpass)

		cmd.Env = append(cmd.Env,
			"SSH_ASKPASS="+askpass,
			"SSH_ASKPASS_REQUIRE=force",
			"DISPLAY=:0",
		)
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ssh-add failed (wrong passphrase?): %w", err)
	}
	return nil
}

// Env returns the environment entries child processes need to use this agent.
func (a *Agent) Env() []string {
	return []string{"SSH_AUTH_SOCK=" + a.Sock}
}

// Stop kills the agent process. Best effort.
func (a *Agent) Stop() {
	if a.pid == "" {
		return
	}
	_ = exec.Command("kill", a.pid).Run() // #nosec G204 - pid parsed from ssh-agent output
}
