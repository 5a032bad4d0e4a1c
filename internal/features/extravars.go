package features

// Var is a single key=value extra variable passed to ansible-playbook via -e.
type Var struct {
	Key   string
	Value string
}

// corePrompts maps core feature keys to their prompt_* variable names, in
// emission order. Every core prompt is always emitted as yes/no.
var corePrompts = []struct {
	feature string
	varName string
}{
	{Fail2ban, "prompt_enable_fail2ban"},
	{Docker, "prompt_install_docker"},
	{LEMP, "prompt_install_lemp"},
	{Swap, "prompt_enable_swap"},
	{Cron, "prompt_enable_cron_jobs"},
	{DevTools, "prompt_install_dev_tools"},
	{WordPress, "prompt_install_wordpress"},
	{Certbot, "prompt_install_certbot"},
}

// clusterOrder fixes the emission order of security clusters.
var clusterOrder = []string{
	SystemHardening,
	MonitoringDetection,
	NetworkSecurity,
	AdvancedProtection,
}

// clusterVars holds the fixed variable expansion for each security cluster.
// Some members ship disabled: suricata is resource intensive, 2FA and backups
// need manual post-install configuration, and USB restrictions can break
// attached devices.
var clusterVars = map[string][]Var{
	SystemHardening: {
		{Key: "enable_kernel_hardening", Value: "true"},
		{Key: "enable_apparmor", Value: "true"},
		{Key: "enable_secure_shm", Value: "true"},
		{Key: "enable_unattended_upgrades", Value: "true"},
	},
	MonitoringDetection: {
		{Key: "enable_lynis", Value: "true"},
		{Key: "enable_rkhunter", Value: "true"},
		{Key: "enable_aide", Value: "true"},
		{Key: "enable_auditd", Value: "true"},
		{Key: "enable_logwatch", Value: "true"},
	},
	NetworkSecurity: {
		{Key: "disable_ipv6", Value: "false"},
		{Key: "enable_suricata", Value: "false"},
	},
	AdvancedProtection: {
		{Key: "enable_ssh_2fa", Value: "false"},
		{Key: "enable_backups", Value: "false"},
		{Key: "enable_usb_restrictions", Value: "false"},
	},
}

// YesNo converts a boolean selection to the yes/no form the playbook's
// prompt variables expect.
func YesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// ExtraVars converts a feature selection into the corresponding extra
// variables. The result is a pure deterministic function of the selection:
// core prompts are always emitted in catalog order, followed by the fixed
// expansion of each selected security cluster.
func ExtraVars(selected map[string]bool) []Var {
	vars := make([]Var, 0, len(corePrompts)+8)
	for _, p := range corePrompts {
		vars = append(vars, Var{Key: p.varName, Value: YesNo(selected[p.feature])})
	}
	for _, cluster := range clusterOrder {
		if selected[cluster] {
			vars = append(vars, clusterVars[cluster]...)
		}
	}
	return vars
}

// DevToolVars converts a devtools sub-selection into prompt_install_<key>
// variables in catalog order. Callers should only emit these when the
// devtools feature itself is enabled.
func DevToolVars(enabled map[string]bool) []Var {
	vars := make([]Var, 0, len(DevToolsCatalog))
	for _, t := range DevToolsCatalog {
		vars = append(vars, Var{Key: "prompt_install_" + t.Key, Value: YesNo(enabled[t.Key])})
	}
	return vars
}
