package ansible

import (
	"regexp"
	"strings"
)

// ansiEscapes matches CSI color/cursor sequences that leak through despite
// ANSIBLE_NOCOLOR when plugins write escapes directly.
var ansiEscapes = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

// StripANSI removes ANSI escape sequences from a line.
func StripANSI(s string) string {
	return ansiEscapes.ReplaceAllString(s, "")
}

// timingOnly reports whether a line is one of Ansible's asterisk-rule timing
// separators with no task or play information of its own.
func timingOnly(s string) bool {
	return strings.Contains(s, "*******") &&
		!strings.Contains(s, "TASK") &&
		!strings.Contains(s, "PLAY")
}

// CleanLine strips escapes and reports whether the line carries information
// worth displaying. Blank and timing-only lines are dropped.
func CleanLine(s string) (string, bool) {
	clean := StripANSI(s)
	if strings.TrimSpace(clean) == "" || timingOnly(clean) {
		return "", false
	}
	return clean, true
}
