package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the Bubble Tea model for the provisioning dashboard. It shows the
// playbook output in a scrollable viewport with a live status header.
type Model struct {
	// Target is the user@host the playbook runs against.
	Target string

	// Playbook is the playbook file name shown in the header.
	Playbook string

	StartTime time.Time

	// Output tracking
	lines       []string
	CurrentTask string
	TaskCount   int
	PlayCount   int

	viewport viewport.Model
	spinner  spinner.Model

	// UI state
	Width  int
	Height int
	ready  bool

	// Result
	Done     bool
	ExitCode int
	Err      error
}

// New creates a dashboard model for a run against target.
func New(target, playbook string) Model {
	sp := spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(activeStyle),
	)
	return Model{
		Target:    target,
		Playbook:  playbook,
		StartTime: time.Now(),
		spinner:   sp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tickCmd())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.resizeViewport()

	case LineMsg:
		m.appendLine(msg.Line)

	case DoneMsg:
		m.Done = true
		m.ExitCode = msg.Code
		m.Err = msg.Err
		m.CurrentTask = ""

	case TickMsg:
		return m, tickCmd()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Everything else (arrows, pgup/pgdown, mouse wheel) scrolls the output.
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	return renderView(m)
}

func (m *Model) appendLine(line string) {
	m.lines = append(m.lines, line)

	switch {
	case strings.HasPrefix(line, "TASK ["):
		m.CurrentTask = taskName(line)
		m.TaskCount++
	case strings.HasPrefix(line, "PLAY ["):
		m.PlayCount++
	}

	if !m.ready {
		return
	}
	atBottom := m.viewport.AtBottom()
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	if atBottom {
		m.viewport.GotoBottom()
	}
}

func (m *Model) resizeViewport() {
	// Header is two lines, footer one, border and padding eat four more.
	height := m.Height - 7
	if height < 3 {
		height = 3
	}
	width := m.Width - 4
	if width < 20 {
		width = 20
	}

	if !m.ready {
		m.viewport = viewport.New(width, height)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = height
	}
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	m.viewport.GotoBottom()
}

// taskName extracts the name from an ansible "TASK [name] ***" header line.
func taskName(line string) string {
	start := strings.Index(line, "[")
	end := strings.LastIndex(line, "]")
	if start < 0 || end <= start {
		return ""
	}
	return line[start+1 : end]
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}
