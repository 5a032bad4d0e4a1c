package handlers

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"

	"github.com/imamik/provkit/internal/config"
	"github.com/imamik/provkit/internal/features"
	"github.com/imamik/provkit/internal/sshutil"
)

// captureOutput captures stdout during function execution.
func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

// saveAndRestoreCommonFactories saves and restores the shared factory functions.
func saveAndRestoreCommonFactories(t *testing.T) {
	origLoadCache := loadCache
	origSaveCache := saveCache
	origStartAgent := startAgent
	origRunPlaybook := runPlaybook

	t.Cleanup(func() {
		loadCache = origLoadCache
		saveCache = origSaveCache
		startAgent = origStartAgent
		runPlaybook = origRunPlaybook
	})

	loadCache = func() *config.Config { return config.Default() }
	saveCache = func(_ *config.Config) error { return nil }
	startAgent = func(_ context.Context, _, _ string) (*sshutil.Agent, error) {
		return &sshutil.Agent{Sock: "/tmp/fake.sock"}, nil
	}
	runPlaybook = func(_ context.Context, _ string, _ []string, _ []features.Var, _ func(string)) (int, error) {
		return 0, nil
	}
}

// validSession returns a session that passes validation.
func validSession() *config.Session {
	session := config.NewSession(config.Default())
	session.TargetIP = "192.0.2.10"
	session.TargetUser = "root"
	session.SSHKeyPath = "~/.ssh/id_rsa"
	return session
}
