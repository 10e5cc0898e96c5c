package src

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/opdeck/opdeck/src/ui"
)

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.relayout()
		// A size change often means a maximize or restore happened; refresh
		// the mirror.
		return m, m.refreshMaximizedCmd()

	case externalResizeMsg:
		return m, m.refreshMaximizedCmd()

	case maximizeStateMsg:
		// Stale resolutions from overlapping queries are dropped instead of
		// overwriting newer state.
		if msg.q.Seq <= m.maxSeqApplied {
			return m, nil
		}
		m.maxSeqApplied = msg.q.Seq
		if msg.q.OK {
			m.maximized = msg.q.Maximized
		}
		return m, nil

	case permissionOutcomeMsg:
		m.dialog = nil
		m.appendOutcome(msg)
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.dialog != nil && m.dialog.Open {
			return m.handleDialogKey(msg)
		}
		return m.handleChatKey(msg)
	}

	return m, m.updateChildren(msg)
}

func (m *model) relayout() {
	m.textarea.SetWidth(m.width - 2)
	m.viewport.Width = m.width - 2
	m.viewport.Height = m.height - m.textarea.Height() - 5
	if m.viewport.Height < 1 {
		m.viewport.Height = 1
	}
}

func (m *model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, m.updateChildren(msg)
	}

	switch {
	case zone.Get(ui.ZoneMinimize).InBounds(msg):
		m.chrome.Minimize()
		return m, nil

	case zone.Get(ui.ZoneMaximize).InBounds(msg):
		m.chrome.ToggleMaximize()
		return m, m.refreshMaximizedCmd()

	case zone.Get(ui.ZoneClose).InBounds(msg):
		m.chrome.Close()
		return m, nil

	case zone.Get(ui.ZoneMenu).InBounds(msg):
		m.menuOpen = !m.menuOpen
		return m, nil
	}

	if m.menuOpen {
		for _, item := range m.menuItems() {
			if zone.Get(ui.ZoneMenuItem(item.ID)).InBounds(msg) {
				m.menuOpen = false
				if cb := m.menuCallback(item.ID); cb != nil {
					return m, cb()
				}
				return m, nil
			}
		}
		// A click anywhere outside the dropdown closes it.
		if !zone.Get(ui.ZoneDropdown).InBounds(msg) {
			m.menuOpen = false
		}
		return m, nil
	}

	if d := m.dialog; d != nil && d.Open && d.Wizard() != nil {
		for i := 0; i < d.Wizard().Len(); i++ {
			if zone.Get(ui.ZoneDot(i)).InBounds(msg) {
				d.Jump(i)
				return m, nil
			}
		}
		for i := 0; i < len(d.Wizard().Current().Options)+1; i++ {
			if zone.Get(ui.ZoneOption(i)).InBounds(msg) {
				d.MoveCursor(i - d.Cursor())
				d.ToggleAtCursor()
				return m, nil
			}
		}
	}

	return m, m.updateChildren(msg)
}

func (m *model) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := m.dialog

	if d.Wizard() != nil && d.OtherFocused() {
		switch msg.String() {
		case "enter", "esc":
			d.BlurOther()
			return m, nil
		default:
			return m, d.UpdateOther(msg)
		}
	}

	switch msg.String() {

	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		return m, d.Deny()

	case "up", "k":
		d.MoveCursor(-1)
		return m, nil

	case "down", "j":
		d.MoveCursor(1)
		return m, nil

	case " ":
		d.ToggleAtCursor()
		return m, nil

	case "tab", "right":
		d.Next()
		return m, nil

	case "left":
		d.Back()
		return m, nil

	case "enter":
		if d.Wizard() == nil {
			cmd, _ := d.Allow()
			return m, cmd
		}
		if cmd, ok := d.Allow(); ok {
			return m, cmd
		}
		d.Next()
		return m, nil

	case "y", "a":
		if d.Wizard() == nil {
			cmd, _ := d.Allow()
			return m, cmd
		}
		return m, nil

	case "n":
		if d.Wizard() == nil {
			return m, d.Deny()
		}
		return m, nil

	case "c":
		if d.Wizard() == nil {
			if err := d.CopyInput(); err != nil {
				m.log.Error("clipboard write failed", "err", err)
			} else {
				m.notice = "Input copied to clipboard"
			}
		}
		return m, nil
	}

	// Digits jump directly to a wizard step.
	if d.Wizard() != nil {
		if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 {
			d.Jump(n - 1)
			return m, nil
		}
	}

	return m, nil
}

func (m *model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {

	case "ctrl+c":
		return m, tea.Quit

	case "ctrl+p":
		m.openPermission(samplePermissionRequest())
		return m, nil

	case "ctrl+u":
		m.openPermission(sampleQuestionRequest())
		return m, nil

	case "enter":
		raw := strings.TrimSpace(m.textarea.Value())
		if raw == "" {
			return m, nil
		}
		m.textarea.Reset()
		m.notice = ""
		m.output += m.styles.Accent.Render("You: ") + raw + "\n\n"
		m.renderOutput()
		return m, nil
	}

	return m, m.updateChildren(msg)
}

// openPermission raises the modal for a request. Resolution flows back as a
// permissionOutcomeMsg.
func (m *model) openPermission(req PermissionRequest) {
	m.notice = ""
	m.log.Info("permission requested", "id", req.ID, "tool", req.ToolName)
	m.dialog = OpenDialog(req, PermissionCallbacks{
		OnAllow: func(updated map[string]any) tea.Cmd {
			return func() tea.Msg {
				return permissionOutcomeMsg{id: req.ID, tool: req.ToolName, allowed: true, payload: updated}
			}
		},
		OnDeny: func() tea.Cmd {
			return func() tea.Msg {
				return permissionOutcomeMsg{id: req.ID, tool: req.ToolName, allowed: false}
			}
		},
	})
}

func (m *model) appendOutcome(msg permissionOutcomeMsg) {
	m.log.Info("permission resolved", "id", msg.id, "tool", msg.tool, "allowed", msg.allowed)
	if !msg.allowed {
		m.output += m.styles.Error.Render(fmt.Sprintf("Denied %s\n\n", msg.tool))
		m.renderOutput()
		return
	}
	m.output += m.styles.Success.Render(fmt.Sprintf("Allowed %s\n", msg.tool))
	if answers, ok := msg.payload["answers"].(map[string]string); ok {
		keys := make([]string, 0, len(answers))
		for k := range answers {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			m.output += m.styles.Subtle.Render(fmt.Sprintf("  %s: %s\n", k, answers[k]))
		}
	}
	m.output += "\n"
	m.renderOutput()
}

func (m *model) renderOutput() {
	m.viewport.SetContent(lipgloss.NewStyle().Width(m.viewport.Width).Render(m.output))
	m.viewport.GotoBottom()
}

func (m *model) updateChildren(msg tea.Msg) tea.Cmd {
	var taCmd, vpCmd tea.Cmd
	m.textarea, taCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)

	cmd := tea.Batch(taCmd, vpCmd)
	if m.isThinking {
		var spCmd tea.Cmd
		m.spinner, spCmd = m.spinner.Update(msg)
		cmd = tea.Batch(cmd, spCmd)
	}
	return cmd
}

// samplePermissionRequest is the demo-mode stand-in for a host-delivered tool
// request.
func samplePermissionRequest() PermissionRequest {
	return NewPermissionRequest(toolBash, map[string]any{
		"command": "rm -rf build/",
		"timeout": 30000,
	})
}

// sampleQuestionRequest is the demo-mode stand-in for an assistant question.
func sampleQuestionRequest() PermissionRequest {
	return NewPermissionRequest(ToolAskUserQuestion, map[string]any{
		"questions": []any{
			map[string]any{
				"question":    "Which database should the service use?",
				"header":      "Storage",
				"multiSelect": false,
				"options": []any{
					map[string]any{"label": "PostgreSQL", "description": "Relational, battle-tested"},
					map[string]any{"label": "SQLite", "description": "Embedded, zero ops"},
				},
			},
			map[string]any{
				"question":    "Which extras do you want scaffolded?",
				"header":      "Extras",
				"multiSelect": true,
				"options": []any{
					map[string]any{"label": "Dockerfile"},
					map[string]any{"label": "CI pipeline"},
					map[string]any{"label": "Makefile"},
				},
			},
		},
	})
}
