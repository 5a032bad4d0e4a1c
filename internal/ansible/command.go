// Package ansible assembles and runs ansible-playbook invocations from a
// provisioning session.
package ansible

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/imamik/provkit/internal/config"
	"github.com/imamik/provkit/internal/features"
)

const (
	// Program is the external configuration-management command.
	Program = "ansible-playbook"

	// DefaultPlaybook is the playbook file passed as the first argument.
	DefaultPlaybook = "playbook.yml"
)

// Vars assembles the full extra-variable list for a session: connection
// variables, core feature prompts, security cluster expansions, devtools
// sub-selections, and the wizard's one-shot options. The result is
// deterministic for a given session.
func Vars(s *config.Session) []features.Var {
	vars := []features.Var{
		{Key: "target_ip", Value: s.TargetIP},
		{Key: "target_user", Value: s.TargetUser},
	}
	if s.ConnectionPassword != "" {
		vars = append(vars, features.Var{Key: "connection_password", Value: s.ConnectionPassword})
	}
	vars = append(vars, features.Var{Key: "ssh_key_path", Value: s.SSHKeyPath})
	if s.Hostname != "" {
		vars = append(vars, features.Var{Key: "target_hostname", Value: s.Hostname})
	}
	if s.CreateUser {
		vars = append(vars,
			features.Var{Key: "prompt_create_user", Value: "yes"},
			features.Var{Key: "added_user", Value: s.AddedUser},
			features.Var{Key: "user_password", Value: s.UserPassword},
		)
	}

	vars = append(vars, features.ExtraVars(s.Features)...)

	if s.Features[features.DevTools] && s.DevTools != nil {
		vars = append(vars, features.DevToolVars(s.DevTools)...)
	}

	if s.PeriodicReboot {
		vars = append(vars,
			features.Var{Key: "prompt_enable_periodic_reboot", Value: "yes"},
			features.Var{Key: "prompt_reboot_hour", Value: s.RebootHour},
		)
	}

	return vars
}

// Args builds the argv tail for ansible-playbook: the playbook file followed
// by a -e key=value pair per variable.
func Args(playbook string, vars []features.Var) []string {
	args := make([]string, 0, 1+2*len(vars))
	args = append(args, playbook)
	for _, v := range vars {
		args = append(args, "-e", fmt.Sprintf("%s=%s", v.Key, v.Value))
	}
	return args
}

// ExportJSON renders the variables as a JSON object with keys in emission
// order, suitable for ansible-playbook -e "$(provkit wizard --export-vars)".
func ExportJSON(vars []features.Var) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, v := range vars {
		if i > 0 {
			buf.WriteString(", ")
		}
		key, err := json.Marshal(v.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(v.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
