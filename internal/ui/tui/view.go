package tui

import (
	"fmt"
	"strings"
	"time"
)

func renderView(m Model) string {
	var b strings.Builder

	renderHeader(&b, m)

	if m.ready {
		b.WriteString(outputStyle.Render(m.viewport.View()))
		b.WriteString("\n")
	}

	renderFooter(&b, m)

	return b.String()
}

func renderHeader(b *strings.Builder, m Model) {
	b.WriteString(titleStyle.Render(fmt.Sprintf("provkit: %s", m.Target)))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  (%s)", m.Playbook)))
	b.WriteString("\n")

	switch {
	case m.Done && m.ExitCode == 0 && m.Err == nil:
		b.WriteString(readyStyle.Render(checkMark + " Provisioning complete"))
	case m.Done:
		b.WriteString(failedStyle.Render(fmt.Sprintf("%s Provisioning failed (exit code %d)", crossMark, m.ExitCode)))
	case m.CurrentTask != "":
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(sectionStyle.Render(m.CurrentTask))
	default:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(dimStyle.Render("Starting ansible-playbook..."))
	}
	b.WriteString("\n")
}

func renderFooter(b *strings.Builder, m Model) {
	parts := []string{
		fmt.Sprintf("elapsed: %s", formatDuration(time.Since(m.StartTime))),
		fmt.Sprintf("plays: %d", m.PlayCount),
		fmt.Sprintf("tasks: %d", m.TaskCount),
	}
	switch {
	case m.Done && (m.ExitCode != 0 || m.Err != nil):
		parts = append(parts, warningStyle.Render(fmt.Sprintf("exit %d", m.ExitCode)))
	case m.Done:
		parts = append(parts, "finished")
	}
	parts = append(parts, "q: quit")
	b.WriteString(footerStyle.Render("  " + strings.Join(parts, "  |  ")))
	b.WriteString("\n")
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
}
