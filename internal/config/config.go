// Package config defines the provisioning configuration record, its cache
// persistence, and validation of connection fields.
package config

import (
	"github.com/imamik/provkit/internal/features"
)

// DefaultRebootHour is the default periodic reboot schedule (03:00).
const DefaultRebootHour = "3"

// RebootHours lists the accepted reboot schedule values: a fixed cron hour
// or an every-N-hours interval.
var RebootHours = []string{"1", "3", "5", "*/6", "*/12"}

// Config is the persisted provisioning record. It is cached between runs as a
// flat JSON file with a fixed key set and is overwritten wholesale on every
// save. Secrets never appear here; see Session.
type Config struct {
	// TargetIP is the address of the server to provision.
	TargetIP string `json:"target_ip"`

	// TargetUser is the SSH username used to reach the server.
	TargetUser string `json:"target_user"`

	// SSHKeyPath is the path to the SSH private key. A leading ~/ is
	// expanded at invocation time, not here.
	SSHKeyPath string `json:"ssh_key_path"`

	// Features maps feature keys to their enabled state. Keys outside the
	// catalog are dropped on load.
	Features map[string]bool `json:"features"`

	// RebootHour is the periodic reboot schedule parameter.
	RebootHour string `json:"reboot_hour"`
}

// Default returns a Config pre-populated with catalog defaults.
func Default() *Config {
	return &Config{
		TargetUser: "root",
		SSHKeyPath: "~/.ssh/id_rsa",
		Features:   features.Defaults(),
		RebootHour: DefaultRebootHour,
	}
}

// Normalize prunes unknown feature keys, fills in missing catalog keys with
// their defaults, and falls back to sane connection defaults. Called after
// loading a cache written by an older version.
func (c *Config) Normalize() {
	defaults := features.Defaults()
	if c.Features == nil {
		c.Features = defaults
	} else {
		for key := range c.Features {
			if _, ok := features.ByKey(key); !ok {
				delete(c.Features, key)
			}
		}
		for key, val := range defaults {
			if _, ok := c.Features[key]; !ok {
				c.Features[key] = val
			}
		}
	}

	if c.TargetUser == "" {
		c.TargetUser = "root"
	}
	if c.SSHKeyPath == "" {
		c.SSHKeyPath = "~/.ssh/id_rsa"
	}
	if !validRebootHour(c.RebootHour) {
		c.RebootHour = DefaultRebootHour
	}
}

// SelectedFeatures returns the keys of all enabled features in catalog order.
func (c *Config) SelectedFeatures() []string {
	var selected []string
	for _, f := range features.Catalog {
		if c.Features[f.Key] {
			selected = append(selected, f.Key)
		}
	}
	return selected
}

func validRebootHour(h string) bool {
	for _, v := range RebootHours {
		if h == v {
			return true
		}
	}
	return false
}
