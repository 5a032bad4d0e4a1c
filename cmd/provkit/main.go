// Package main is the entry point for the provkit CLI.
//
// provkit is an interactive launcher for Ansible-based server provisioning.
// It collects the target connection details and a feature selection through
// a terminal menu, a guided wizard, or a live dashboard, then invokes
// ansible-playbook with the matching extra variables.
//
// Commands: run, wizard, dashboard, check, version, completion.
//
// For detailed usage information, run:
//
//	provkit --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/provkit/cmd/provkit/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
