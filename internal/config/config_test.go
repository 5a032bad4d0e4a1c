package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/provkit/internal/features"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Empty(t, cfg.TargetIP)
	assert.Equal(t, "root", cfg.TargetUser)
	assert.Equal(t, "~/.ssh/id_rsa", cfg.SSHKeyPath)
	assert.Equal(t, DefaultRebootHour, cfg.RebootHour)
	assert.Equal(t, features.Defaults(), cfg.Features)
}

func TestNormalize(t *testing.T) {
	t.Run("drops unknown feature keys", func(t *testing.T) {
		cfg := &Config{Features: map[string]bool{"bogus": true, features.Docker: true}}
		cfg.Normalize()

		assert.NotContains(t, cfg.Features, "bogus")
		assert.True(t, cfg.Features[features.Docker])
	})

	t.Run("fills missing catalog keys with defaults", func(t *testing.T) {
		cfg := &Config{Features: map[string]bool{features.LEMP: true}}
		cfg.Normalize()

		assert.True(t, cfg.Features[features.LEMP])
		assert.True(t, cfg.Features[features.Fail2ban]) // default
		assert.False(t, cfg.Features[features.WordPress])
		assert.Len(t, cfg.Features, len(features.Catalog))
	})

	t.Run("repairs empty connection fields", func(t *testing.T) {
		cfg := &Config{}
		cfg.Normalize()

		assert.Equal(t, "root", cfg.TargetUser)
		assert.Equal(t, "~/.ssh/id_rsa", cfg.SSHKeyPath)
	})

	t.Run("rejects invalid reboot hour", func(t *testing.T) {
		cfg := &Config{RebootHour: "99"}
		cfg.Normalize()
		assert.Equal(t, DefaultRebootHour, cfg.RebootHour)
	})

	t.Run("keeps valid interval reboot hour", func(t *testing.T) {
		cfg := &Config{RebootHour: "*/6"}
		cfg.Normalize()
		assert.Equal(t, "*/6", cfg.RebootHour)
	})
}

func TestSelectedFeatures(t *testing.T) {
	cfg := Default()
	cfg.Features = map[string]bool{features.Docker: true, features.LEMP: true}

	selected := cfg.SelectedFeatures()
	assert.Equal(t, []string{features.Docker, features.LEMP}, selected)
}

func TestCacheRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")

	want := &Config{
		TargetIP:   "192.0.2.10",
		TargetUser: "deploy",
		SSHKeyPath: "~/.ssh/id_ed25519",
		Features: map[string]bool{
			features.Fail2ban:  true,
			features.LEMP:      true,
			features.WordPress: true,
		},
		RebootHour: "*/12",
	}
	require.NoError(t, saveCacheTo(path, want))

	got, err := loadCacheFrom(path)
	require.NoError(t, err)

	assert.Equal(t, want.TargetIP, got.TargetIP)
	assert.Equal(t, want.TargetUser, got.TargetUser)
	assert.Equal(t, want.SSHKeyPath, got.SSHKeyPath)
	assert.Equal(t, want.RebootHour, got.RebootHour)
	assert.True(t, got.Features[features.LEMP])
	assert.True(t, got.Features[features.WordPress])
}

func TestCachePathOverride(t *testing.T) {
	t.Setenv("PROVKIT_CACHE", "/tmp/custom-cache.json")
	path, err := CachePath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom-cache.json", path)
}

func TestLoadCacheFallsBackOnErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		t.Setenv("PROVKIT_CACHE", filepath.Join(t.TempDir(), "missing.json"))
		cfg := LoadCache()
		assert.Equal(t, Default(), cfg)
	})

	t.Run("corrupt file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "corrupt.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))
		t.Setenv("PROVKIT_CACHE", path)

		cfg := LoadCache()
		assert.Equal(t, Default(), cfg)
	})
}

func TestSessionValidate(t *testing.T) {
	valid := func() *Session {
		s := NewSession(Default())
		s.TargetIP = "192.0.2.10"
		return s
	}

	t.Run("valid session passes", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("missing target ip", func(t *testing.T) {
		s := valid()
		s.TargetIP = ""
		assert.ErrorIs(t, s.Validate(), ErrTargetIPRequired)
	})

	t.Run("missing user", func(t *testing.T) {
		s := valid()
		s.TargetUser = ""
		assert.ErrorIs(t, s.Validate(), ErrTargetUserRequired)
	})

	t.Run("missing key path", func(t *testing.T) {
		s := valid()
		s.SSHKeyPath = ""
		assert.ErrorIs(t, s.Validate(), ErrSSHKeyPathRequired)
	})

	t.Run("wordpress without lemp blocks", func(t *testing.T) {
		s := valid()
		s.Features[features.WordPress] = true
		s.Features[features.LEMP] = false
		assert.ErrorIs(t, s.Validate(), features.ErrWordPressRequiresLEMP)
	})
}

func TestSessionWarnings(t *testing.T) {
	s := NewSession(Default())
	s.Features[features.Certbot] = true
	s.Features[features.LEMP] = false

	warnings := s.Warnings()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "LEMP")
}
