package wizard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/provkit/internal/config"
	"github.com/imamik/provkit/internal/features"
)

func TestValidateTargetAddr(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"valid IPv4", "192.0.2.10", nil},
		{"valid hostname", "server.example.com", nil},
		{"empty", "", errAddressRequired},
		{"whitespace only", "   ", errAddressRequired},
		{"contains space", "192.0.2.10 extra", errAddressInvalid},
		{"malformed IPv4", "300.1.2.3", errAddressInvalid},
		{"trailing dot digits", "1.2.3.", errAddressInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTargetAddr(tt.input)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateUserName(t *testing.T) {
	assert.NoError(t, validateUserName("admin"))
	assert.NoError(t, validateUserName("_svc-account"))
	assert.ErrorIs(t, validateUserName(""), errUserNameRequired)
	assert.ErrorIs(t, validateUserName("Admin"), errUserNameInvalid)
	assert.ErrorIs(t, validateUserName("1user"), errUserNameInvalid)
	assert.ErrorIs(t, validateUserName("has space"), errUserNameInvalid)
}

func TestSelectionToMap(t *testing.T) {
	keys := []string{"a", "b", "c"}
	m := selectionToMap(keys, []string{"b"})

	assert.Equal(t, map[string]bool{"a": false, "b": true, "c": false}, m)
}

func TestApplySelection(t *testing.T) {
	sel := map[string]bool{"a": true, "b": false, "other": true}
	applySelection(sel, []string{"a", "b"}, []string{"b"})

	// Only the given subset is touched.
	assert.False(t, sel["a"])
	assert.True(t, sel["b"])
	assert.True(t, sel["other"])
}

func TestFeatureOptionsPartition(t *testing.T) {
	full := FeatureOptions()
	core := CoreFeatureOptions()
	clusters := ClusterOptions()

	assert.Len(t, full, len(features.Catalog))
	assert.Len(t, core, len(coreKeys()))
	assert.Len(t, clusters, len(clusterKeys()))
	assert.Equal(t, len(full), len(core)+len(clusters))
}

func TestRebootHourOptions(t *testing.T) {
	options := RebootHourOptions()
	require.Len(t, options, len(config.RebootHours))

	for i, opt := range options {
		assert.Equal(t, config.RebootHours[i], opt.Value)
	}
}

func testSession(t *testing.T) *config.Session {
	t.Helper()

	session := config.NewSession(config.Default())
	session.TargetIP = "192.0.2.10"
	session.TargetUser = "root"
	session.SSHKeyPath = "~/.ssh/id_ed25519"
	session.ConnectionPassword = "hunter2"
	session.SSHKeyPassphrase = "sekrit"
	session.Hostname = "web-01"
	session.CreateUser = true
	session.AddedUser = "admin"
	session.UserPassword = "adminpw"
	session.PeriodicReboot = true
	session.RebootHour = "*/6"
	session.Features[features.DevTools] = true
	session.DevTools["fish"] = true
	return session
}

func TestWriteProfileOmitsSecrets(t *testing.T) {
	session := testSession(t)
	path := filepath.Join(t.TempDir(), "profile.yml")

	require.NoError(t, WriteProfile(session, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.NotContains(t, content, "hunter2")
	assert.NotContains(t, content, "sekrit")
	assert.NotContains(t, content, "adminpw")
	assert.Contains(t, content, "target_ip: 192.0.2.10")
}

func TestProfileRoundTrip(t *testing.T) {
	session := testSession(t)
	path := filepath.Join(t.TempDir(), "profile.yml")

	require.NoError(t, WriteProfile(session, path))

	profile, err := LoadProfile(path)
	require.NoError(t, err)

	loaded := profile.Session()
	assert.Equal(t, session.TargetIP, loaded.TargetIP)
	assert.Equal(t, session.TargetUser, loaded.TargetUser)
	assert.Equal(t, session.SSHKeyPath, loaded.SSHKeyPath)
	assert.Equal(t, session.Hostname, loaded.Hostname)
	assert.True(t, loaded.CreateUser)
	assert.Equal(t, "admin", loaded.AddedUser)
	assert.Equal(t, session.Features, loaded.Features)
	assert.True(t, loaded.PeriodicReboot)
	assert.Equal(t, "*/6", loaded.RebootHour)
	assert.True(t, loaded.DevTools["fish"])

	// Secrets cannot survive a round trip.
	assert.Empty(t, loaded.ConnectionPassword)
	assert.Empty(t, loaded.SSHKeyPassphrase)
	assert.Empty(t, loaded.UserPassword)
}

func TestProfileSessionNormalizes(t *testing.T) {
	profile := &Profile{
		TargetIP: "192.0.2.10",
		Features: map[string]bool{
			"docker":      true,
			"unknown_key": true,
		},
		DevTools:   map[string]bool{"fzf": false, "not_a_tool": true},
		RebootHour: "bogus",
	}

	session := profile.Session()

	assert.NotContains(t, session.Features, "unknown_key")
	assert.True(t, session.Features[features.Docker])
	assert.Equal(t, "root", session.TargetUser)
	assert.Equal(t, config.DefaultRebootHour, session.RebootHour)
	assert.False(t, session.DevTools["fzf"])
	assert.NotContains(t, session.DevTools, "not_a_tool")
}

func TestLoadProfileErrors(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "junk.yml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0600))
	_, err = LoadProfile(path)
	assert.Error(t, err)
}

func TestFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	assert.False(t, FileExists(path))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))
	assert.True(t, FileExists(path))
}

func TestConfirmOverwrite(t *testing.T) {
	orig := confirmOverwrite
	defer func() { confirmOverwrite = orig }()

	confirmOverwrite = func(string) (bool, error) { return true, nil }
	ok, err := ConfirmOverwrite("any")
	require.NoError(t, err)
	assert.True(t, ok)
}
