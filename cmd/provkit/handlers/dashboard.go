package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/imamik/provkit/internal/ui/tui"
)

// teaProgram is the subset of *tea.Program the dashboard handler needs.
type teaProgram interface {
	Run() (tea.Model, error)
	Send(tea.Msg)
}

// Factory function variables for dashboard - can be replaced in tests.
var (
	// isTerminal reports whether stdout is attached to a terminal.
	isTerminal = func() bool {
		fd := os.Stdout.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}

	// newProgram builds the Bubble Tea program for the dashboard model.
	newProgram = func(m tea.Model) teaProgram {
		return tea.NewProgram(m, tea.WithAltScreen())
	}
)

// Dashboard shows the checkbox menu, then runs the playbook inside a
// full-screen live output view. Without a terminal it degrades to the plain
// streaming flow.
func Dashboard(ctx context.Context, playbook string, yes bool) error {
	seed := loadCache()

	session, err := runMenu(ctx, seed)
	if err != nil {
		return fmt.Errorf("menu canceled: %w", err)
	}

	if !isTerminal() {
		return provision(ctx, playbook, session, yes)
	}

	proceed, err := prepare(ctx, playbook, session, yes)
	if err != nil || !proceed {
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	target := fmt.Sprintf("%s@%s", session.TargetUser, session.TargetIP)
	program := newProgram(tui.New(target, playbook))

	go func() {
		code, err := launch(runCtx, playbook, session, func(line string) {
			program.Send(tui.LineMsg{Line: line})
		})
		program.Send(tui.DoneMsg{Code: code, Err: err})
	}()

	final, err := program.Run()
	cancel() // quitting the dashboard aborts a still-running playbook
	if err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}

	model, ok := final.(tui.Model)
	if !ok {
		return nil
	}
	if model.Err != nil && !errors.Is(model.Err, context.Canceled) {
		return model.Err
	}
	if model.Done && model.ExitCode != 0 {
		return fmt.Errorf("provisioning failed with exit code %d", model.ExitCode)
	}
	return nil
}
