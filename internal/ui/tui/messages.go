// Package tui provides a Bubble Tea dashboard for live provisioning runs.
package tui

// LineMsg carries one cleaned line of playbook output.
type LineMsg struct {
	Line string
}

// DoneMsg signals that the playbook process has exited.
type DoneMsg struct {
	Code int
	Err  error
}

// TickMsg is sent periodically to refresh the elapsed-time display.
type TickMsg struct{}
