// Package handlers implements the execution logic behind the CLI commands.
//
// Handlers orchestrate the interactive front-ends, validation, cache
// persistence and the playbook invocation. External effects go through
// factory function variables so tests can replace them.
package handlers

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/imamik/provkit/internal/ansible"
	"github.com/imamik/provkit/internal/config"
	"github.com/imamik/provkit/internal/features"
	"github.com/imamik/provkit/internal/sshutil"
)

// Factory function variables shared across handlers - can be replaced in tests.
var (
	// loadCache reads the cached configuration.
	loadCache = config.LoadCache

	// saveCache persists the configuration for the next run.
	saveCache = config.SaveCache

	// startAgent launches a throwaway ssh-agent holding the unlocked key.
	startAgent = sshutil.StartAgent

	// runPlaybook executes ansible-playbook and streams cleaned output lines
	// to sink.
	runPlaybook = func(ctx context.Context, playbook string, env []string, vars []features.Var, sink func(string)) (int, error) {
		runner := ansible.NewRunner(playbook)
		runner.Env = env
		return runner.Run(ctx, vars, sink)
	}
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#eab308"))
	offStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
)

// launch runs the playbook for the session. When the wizard collected a key
// passphrase, the key is first loaded into a throwaway ssh-agent whose socket
// is handed to the child process.
func launch(ctx context.Context, playbook string, session *config.Session, sink func(string)) (int, error) {
	var env []string
	if session.SSHKeyPassphrase != "" {
		agent, err := startAgent(ctx, session.SSHKeyPath, session.SSHKeyPassphrase)
		if err != nil {
			return -1, err
		}
		defer agent.Stop()
		env = agent.Env()
	}
	return runPlaybook(ctx, playbook, env, ansible.Vars(session), sink)
}

// printWarnings prints non-blocking selection advisories.
func printWarnings(session *config.Session) {
	printWarningsTo(os.Stdout, session)
}

func printWarningsTo(w io.Writer, session *config.Session) {
	for _, warning := range session.Warnings() {
		fmt.Fprintln(w, warnStyle.Render("Warning: "+warning))
	}
}

// printSummary prints the target and feature selection before the final
// confirmation.
func printSummary(session *config.Session, playbook string) {
	fmt.Println()
	fmt.Println(headingStyle.Render("Provisioning Summary"))
	fmt.Println("--------------------")
	fmt.Printf("  Target:   %s@%s\n", session.TargetUser, session.TargetIP)
	fmt.Printf("  Key:      %s\n", session.SSHKeyPath)
	if session.Hostname != "" {
		fmt.Printf("  Hostname: %s\n", session.Hostname)
	}
	if session.CreateUser {
		fmt.Printf("  New user: %s\n", session.AddedUser)
	}
	fmt.Printf("  Playbook: %s\n", playbook)
	fmt.Println()

	for _, f := range features.Catalog {
		if session.Features[f.Key] {
			fmt.Printf("  %s %s\n", okStyle.Render("[x]"), f.Label)
		} else {
			fmt.Printf("  %s %s\n", offStyle.Render("[ ]"), offStyle.Render(f.Label))
		}
	}
	if session.PeriodicReboot {
		fmt.Printf("\n  Periodic reboot: %s\n", session.RebootHour)
	}
	fmt.Println()
}

// printRunResult prints the final outcome line for a streamed run.
func printRunResult(code int) {
	fmt.Println()
	if code == 0 {
		fmt.Println(okStyle.Render("Provisioning complete."))
	} else {
		fmt.Println(warnStyle.Render(fmt.Sprintf("Provisioning failed (exit code %d).", code)))
	}
}
