package wizard

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/imamik/provkit/internal/config"
	"github.com/imamik/provkit/internal/features"
)

// Function variable for dependency injection in tests.
var confirmOverwrite = defaultConfirmOverwrite

// Profile is the YAML representation of a wizard session written with
// --output. Secrets are deliberately absent.
type Profile struct {
	TargetIP       string          `yaml:"target_ip"`
	TargetUser     string          `yaml:"target_user"`
	SSHKeyPath     string          `yaml:"ssh_key_path"`
	Hostname       string          `yaml:"hostname,omitempty"`
	CreateUser     bool            `yaml:"create_user"`
	AddedUser      string          `yaml:"added_user,omitempty"`
	Features       map[string]bool `yaml:"features"`
	DevTools       map[string]bool `yaml:"dev_tools,omitempty"`
	PeriodicReboot bool            `yaml:"periodic_reboot"`
	RebootHour     string          `yaml:"reboot_hour,omitempty"`
}

// NewProfile builds the persistable profile from a session, dropping all
// secret fields.
func NewProfile(session *config.Session) *Profile {
	p := &Profile{
		TargetIP:       session.TargetIP,
		TargetUser:     session.TargetUser,
		SSHKeyPath:     session.SSHKeyPath,
		Hostname:       session.Hostname,
		CreateUser:     session.CreateUser,
		AddedUser:      session.AddedUser,
		Features:       session.Features,
		PeriodicReboot: session.PeriodicReboot,
	}
	if session.Features[features.DevTools] {
		p.DevTools = session.DevTools
	}
	if session.PeriodicReboot {
		p.RebootHour = session.RebootHour
	}
	return p
}

// WriteProfile writes the session profile to a YAML file with a descriptive
// header.
func WriteProfile(session *config.Session, outputPath string) error {
	yamlBytes, err := yaml.Marshal(NewProfile(session))
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(generateHeader(outputPath))
	sb.WriteString("\n")
	sb.Write(yamlBytes)

	if err := os.WriteFile(outputPath, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// LoadProfile reads a profile previously written by WriteProfile.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path comes from the operator's --profile flag
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return &p, nil
}

// Session converts a loaded profile into a session seed. Unknown feature and
// devtool keys are dropped, missing ones get their defaults.
func (p *Profile) Session() *config.Session {
	cfg := &config.Config{
		TargetIP:   p.TargetIP,
		TargetUser: p.TargetUser,
		SSHKeyPath: p.SSHKeyPath,
		Features:   p.Features,
		RebootHour: p.RebootHour,
	}
	cfg.Normalize()

	session := config.NewSession(cfg)
	session.Hostname = p.Hostname
	session.CreateUser = p.CreateUser
	session.AddedUser = p.AddedUser
	session.PeriodicReboot = p.PeriodicReboot
	for key, val := range p.DevTools {
		if _, ok := session.DevTools[key]; ok {
			session.DevTools[key] = val
		}
	}
	return session
}

// generateHeader creates the YAML file header comment.
func generateHeader(outputPath string) string {
	return fmt.Sprintf(`# provkit provisioning profile
# Generated by: provkit wizard
# Generated at: %s
#
# Passwords and key passphrases are never written to this file; the wizard
# asks for them at run time.
#
# Usage:
#   provkit wizard --profile %s
`, time.Now().Format(time.RFC3339), outputPath)
}

// FileExists checks if a file exists at the given path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ConfirmOverwrite prompts the user to confirm overwriting an existing file.
func ConfirmOverwrite(path string) (bool, error) {
	return confirmOverwrite(path)
}

// defaultConfirmOverwrite is the default implementation that prompts via stdin.
func defaultConfirmOverwrite(path string) (bool, error) {
	fmt.Printf("\nFile already exists: %s\n", path)
	fmt.Print("Overwrite? (y/n): ")

	var response string
	if _, err := fmt.Scanln(&response); err != nil {
		return false, err
	}

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes", nil
}
