package sshutil

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"
)

func writeTestKey(t *testing.T, passphrase string) string {
	t.Helper()

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	var block *pem.Block
	if passphrase == "" {
		block, err = ssh.MarshalPrivateKey(priv, "")
	} else {
		block, err = ssh.MarshalPrivateKeyWithPassphrase(priv, "", []byte(passphrase))
	}
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "id_ed25519")
	require.NoError(t, os.WriteFile(path, pem.EncodeToMemory(block), 0600))
	return path
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".ssh/id_rsa"), ExpandPath("~/.ssh/id_rsa"))
	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, "/etc/ssh/key", ExpandPath("/etc/ssh/key"))
	assert.Equal(t, "relative/key", ExpandPath("relative/key"))
}

func TestKeyExists(t *testing.T) {
	path := writeTestKey(t, "")
	assert.True(t, KeyExists(path))
	assert.False(t, KeyExists(filepath.Join(t.TempDir(), "nope")))
}

func TestKeyIsEncrypted(t *testing.T) {
	t.Run("plain key", func(t *testing.T) {
		encrypted, err := KeyIsEncrypted(writeTestKey(t, ""))
		require.NoError(t, err)
		assert.False(t, encrypted)
	})

	t.Run("passphrase-protected key", func(t *testing.T) {
		encrypted, err := KeyIsEncrypted(writeTestKey(t, "sekrit"))
		require.NoError(t, err)
		assert.True(t, encrypted)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := KeyIsEncrypted(filepath.Join(t.TempDir(), "nope"))
		assert.Error(t, err)
	})

	t.Run("not a key", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "junk")
		require.NoError(t, os.WriteFile(path, []byte("not a key"), 0600))
		_, err := KeyIsEncrypted(path)
		assert.Error(t, err)
	})
}

func TestParseAgentOutput(t *testing.T) {
	t.Run("standard output", func(t *testing.T) {
		out := strings.Join([]string{
			"SSH_AUTH_SOCK=/tmp/ssh-XXXX/agent.123; export SSH_AUTH_SOCK;",
			"SSH_AGENT_PID=456; export SSH_AGENT_PID;",
			"echo Agent pid 456;",
		}, "\n")

		agent, err := parseAgentOutput(out)
		require.NoError(t, err)
		assert.Equal(t, "/tmp/ssh-XXXX/agent.123", agent.Sock)
		assert.Equal(t, "456", agent.pid)
		assert.Equal(t, []string{"SSH_AUTH_SOCK=/tmp/ssh-XXXX/agent.123"}, agent.Env())
	})

	t.Run("garbage output", func(t *testing.T) {
		_, err := parseAgentOutput("nothing useful here")
		assert.Error(t, err)
	})
}

func TestProbeMissingKey(t *testing.T) {
	err := Probe(t.Context(), "root", "192.0.2.10", filepath.Join(t.TempDir(), "nope"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ssh key not found")
}
