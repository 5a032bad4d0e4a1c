// Package features defines the fixed catalog of provisioning features and the
// deterministic mapping from feature selections to ansible-playbook extra
// variables.
//
// A feature is a named boolean toggle controlling whether a corresponding
// playbook step runs. Core features map to a single prompt_* variable that is
// always emitted (yes/no). Security clusters expand to a fixed group of
// enable_* variables that are emitted only when the cluster is selected.
package features

// Core feature keys.
const (
	Fail2ban  = "fail2ban"
	Docker    = "docker"
	LEMP      = "lemp"
	Swap      = "swap"
	Cron      = "cron"
	DevTools  = "devtools"
	WordPress = "wordpress"
	Certbot   = "certbot"
)

// Security cluster keys.
const (
	SystemHardening     = "system_hardening"
	MonitoringDetection = "monitoring_detection"
	NetworkSecurity     = "network_security"
	AdvancedProtection  = "advanced_protection"
)

// Feature describes a single selectable feature.
type Feature struct {
	// Key is the stable identifier used in the cache file and selection maps.
	Key string

	// Label is the human-readable name shown in menus.
	Label string

	// Description is a short explanation shown next to the label.
	Description string

	// Default indicates whether the feature is pre-selected.
	Default bool

	// Cluster indicates a security cluster that expands to multiple
	// extra variables instead of a single prompt_* variable.
	Cluster bool
}

// Catalog lists all selectable features in display order.
var Catalog = []Feature{
	{Key: Fail2ban, Label: "Fail2ban", Description: "Intrusion prevention system", Default: true},
	{Key: Docker, Label: "Docker", Description: "Docker Engine and Docker Compose", Default: true},
	{Key: LEMP, Label: "LEMP Stack", Description: "Nginx, MySQL, PHP", Default: false},
	{Key: Swap, Label: "Swap Memory", Description: "Auto-sized swap configuration", Default: true},
	{Key: Cron, Label: "Cron Jobs", Description: "Automated maintenance cron jobs", Default: true},
	{Key: DevTools, Label: "Development Tools", Description: "Neovim, Node.js, CLI utilities", Default: false},
	{Key: WordPress, Label: "WordPress", Description: "WordPress CMS (requires LEMP)", Default: false},
	{Key: Certbot, Label: "Certbot", Description: "SSL/TLS certificates via Let's Encrypt", Default: false},
	{Key: SystemHardening, Label: "System Hardening", Description: "Kernel hardening, AppArmor, auto-updates", Default: true, Cluster: true},
	{Key: MonitoringDetection, Label: "Monitoring & Detection", Description: "Lynis, AIDE, rkhunter, auditd, Logwatch", Default: true, Cluster: true},
	{Key: NetworkSecurity, Label: "Network Security", Description: "IPv6 disable, network IDS (Suricata)", Default: false, Cluster: true},
	{Key: AdvancedProtection, Label: "Advanced Protection", Description: "2FA, backups, USB restrictions", Default: false, Cluster: true},
}

// ByKey returns the catalog entry for the given key.
func ByKey(key string) (Feature, bool) {
	for _, f := range Catalog {
		if f.Key == key {
			return f, true
		}
	}
	return Feature{}, false
}

// Keys returns all catalog keys in display order.
func Keys() []string {
	keys := make([]string, len(Catalog))
	for i, f := range Catalog {
		keys[i] = f.Key
	}
	return keys
}

// Defaults returns the default selection map.
func Defaults() map[string]bool {
	sel := make(map[string]bool, len(Catalog))
	for _, f := range Catalog {
		sel[f.Key] = f.Default
	}
	return sel
}

// SubTool describes a devtools sub-selection installed when the devtools
// feature is enabled.
type SubTool struct {
	Key     string
	Label   string
	Default bool
}

// DevToolsCatalog lists the devtools sub-selections in display order.
// Each maps to a prompt_install_<key> extra variable.
var DevToolsCatalog = []SubTool{
	{Key: "neovim", Label: "Neovim", Default: true},
	{Key: "micro", Label: "Micro editor", Default: true},
	{Key: "zsh", Label: "Zsh shell", Default: true},
	{Key: "fish", Label: "Fish shell", Default: false},
	{Key: "starship", Label: "Starship prompt", Default: true},
	{Key: "tmux", Label: "tmux", Default: true},
	{Key: "nodejs", Label: "Node.js LTS", Default: true},
	{Key: "claude_code", Label: "Claude Code", Default: true},
	{Key: "gemini", Label: "Gemini CLI", Default: false},
	{Key: "github_cli", Label: "GitHub CLI", Default: true},
	{Key: "btop", Label: "btop", Default: true},
	{Key: "htop", Label: "htop", Default: true},
	{Key: "ripgrep", Label: "ripgrep", Default: true},
	{Key: "fd", Label: "fd-find", Default: true},
	{Key: "fzf", Label: "fzf", Default: true},
	{Key: "bat", Label: "bat", Default: true},
	{Key: "eza", Label: "eza", Default: true},
	{Key: "zoxide", Label: "zoxide", Default: true},
	{Key: "direnv", Label: "direnv", Default: true},
	{Key: "ranger", Label: "ranger", Default: true},
	{Key: "duf", Label: "duf", Default: true},
	{Key: "ncdu", Label: "ncdu", Default: true},
	{Key: "lnav", Label: "lnav", Default: true},
	{Key: "tldr", Label: "tldr", Default: true},
	{Key: "lazygit", Label: "lazygit", Default: true},
	{Key: "uv", Label: "uv", Default: false},
	{Key: "jq", Label: "jq", Default: true},
	{Key: "gping", Label: "gping", Default: true},
	{Key: "nmap", Label: "nmap", Default: true},
	{Key: "autossh", Label: "autossh", Default: true},
}

// DevToolDefaults returns the default devtools sub-selection map.
func DevToolDefaults() map[string]bool {
	sel := make(map[string]bool, len(DevToolsCatalog))
	for _, t := range DevToolsCatalog {
		sel[t.Key] = t.Default
	}
	return sel
}
