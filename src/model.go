package src

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/opdeck/opdeck/src/logging"
	"github.com/opdeck/opdeck/src/ui"
)

// maximizeStateMsg carries the resolution of one maximize-state query back
// into the update loop.
type maximizeStateMsg struct {
	q MaximizeQuery
}

// externalResizeMsg is sent when the window resizes outside our control, e.g.
// the user drags the corner or the window manager snaps it.
type externalResizeMsg struct{}

// ExternalResize builds the message a host sends into the program when the
// window API reports a resize.
func ExternalResize() tea.Msg { return externalResizeMsg{} }

// permissionOutcomeMsg reports how a permission request resolved, for the
// transcript.
type permissionOutcomeMsg struct {
	id      string
	tool    string
	allowed bool
	payload map[string]any
}

// HostCallbacks are the optional host integrations the dropdown can reach.
// Entries whose callback is nil are omitted from the menu entirely.
type HostCallbacks struct {
	OnSettings func() tea.Cmd
	OnAgents   func() tea.Cmd
	OnUsage    func() tea.Cmd
	OnClaude   func() tea.Cmd
	OnMCP      func() tea.Cmd
	OnInfo     func() tea.Cmd
}

type model struct {
	cfg       Config
	log       *logging.Logger
	platform  Platform
	chrome    *Chrome
	callbacks HostCallbacks

	modelInfo ModelInfo
	modeInfo  PermissionModeInfo

	dialog   *Dialog
	menuOpen bool

	// Mirror of the window's maximize state. Only queries with a newer
	// sequence number than the last applied one may update it.
	maximized     bool
	maxSeqApplied uint64

	isThinking bool
	thinking   string
	output     string
	notice     string

	textarea textarea.Model
	viewport viewport.Model
	spinner  spinner.Model
	width    int
	height   int

	styles ui.Styles
}

// NewModel assembles the shell. The chrome controller and callbacks come from
// the host; everything else derives from config.
func NewModel(cfg Config, log *logging.Logger, platform Platform, chrome *Chrome, cb HostCallbacks) *model {
	if log == nil {
		log = logging.NewNop()
	}

	mi, _ := LookupModel(cfg.Model)
	pi, _ := LookupPermissionMode(cfg.PermissionMode)

	st := ui.NewStyles()

	ta := textarea.New()
	ta.Placeholder = "Message the assistant..."
	ta.Focus()
	ta.SetHeight(3)

	vp := viewport.New(0, 0)
	vp.SetContent("Welcome to OpDeck.")

	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = st.Thinking

	return &model{
		cfg:       cfg,
		log:       log,
		platform:  platform,
		chrome:    chrome,
		callbacks: cb,
		modelInfo: mi,
		modeInfo:  pi,
		textarea:  ta,
		viewport:  vp,
		spinner:   sp,
		styles:    st,
	}
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(m.refreshMaximizedCmd(), textarea.Blink)
}

// refreshMaximizedCmd queries the window's maximize state off the update loop.
func (m *model) refreshMaximizedCmd() tea.Cmd {
	return func() tea.Msg {
		return maximizeStateMsg{q: m.chrome.QueryMaximized()}
	}
}

// menuItems builds the dropdown entries from the callbacks the host supplied.
func (m *model) menuItems() []ui.MenuItem {
	var items []ui.MenuItem
	if m.callbacks.OnSettings != nil {
		items = append(items, ui.MenuItem{ID: "settings", Label: "Settings"})
	}
	if m.callbacks.OnAgents != nil {
		items = append(items, ui.MenuItem{ID: "agents", Label: "Agents"})
	}
	if m.callbacks.OnUsage != nil {
		items = append(items, ui.MenuItem{ID: "usage", Label: "Usage"})
	}
	if m.callbacks.OnClaude != nil {
		items = append(items, ui.MenuItem{ID: "claude", Label: "Claude"})
	}
	if m.callbacks.OnMCP != nil {
		items = append(items, ui.MenuItem{ID: "mcp", Label: "MCP servers"})
	}
	if m.callbacks.OnInfo != nil {
		items = append(items, ui.MenuItem{ID: "info", Label: "About"})
	}
	return items
}

// menuCallback resolves a dropdown entry id to its host callback.
func (m *model) menuCallback(id string) func() tea.Cmd {
	switch id {
	case "settings":
		return m.callbacks.OnSettings
	case "agents":
		return m.callbacks.OnAgents
	case "usage":
		return m.callbacks.OnUsage
	case "claude":
		return m.callbacks.OnClaude
	case "mcp":
		return m.callbacks.OnMCP
	case "info":
		return m.callbacks.OnInfo
	}
	return nil
}

// buildState snapshots the model into the renderer's input.
func (m *model) buildState() ui.State {
	s := ui.State{
		Width:  m.width,
		Height: m.height,
		TitleBar: ui.TitleBar{
			Mac:       m.platform.Mac,
			Windows:   m.platform.Windows,
			Maximized: m.maximized,
			ModelName: m.modelInfo.Name,
			ModeName:  m.modeInfo.Name,
			MenuOpen:  m.menuOpen,
			MenuItems: m.menuItems(),
		},
		IsThinking:   m.isThinking,
		ThinkingText: m.thinking,
		Notice:       m.notice,
		TextArea:     m.textarea,
		Viewport:     m.viewport,
		Spinner:      m.spinner,
	}

	if m.dialog != nil && m.dialog.Open {
		s.Dialog = m.buildDialogView()
	}
	return s
}

func (m *model) buildDialogView() *ui.DialogView {
	d := m.dialog
	dv := &ui.DialogView{
		Icon:        ToolIcon(d.Req.ToolName),
		ToolName:    d.Req.ToolName,
		Description: ToolDescription(d.Req.ToolName),
		Input:       d.PrettyInput(),
	}

	w := d.Wizard()
	if w == nil {
		return dv
	}

	q := w.Current()
	rows := make([]ui.OptionRow, 0, len(q.Options)+1)
	for i, o := range q.Options {
		rows = append(rows, ui.OptionRow{
			Label:       o.Label,
			Description: o.Description,
			Selected:    w.Selected(w.Step(), o.Label),
			Highlighted: d.Cursor() == i,
		})
	}
	rows = append(rows, ui.OptionRow{
		Other:       true,
		Selected:    w.Selected(w.Step(), OtherLabel),
		Highlighted: d.Cursor() == len(q.Options),
	})

	dv.Wizard = &ui.WizardView{
		Header:       q.Header,
		Question:     q.Question,
		MultiSelect:  q.MultiSelect,
		Step:         w.Step(),
		Total:        w.Len(),
		Rows:         rows,
		OtherView:    d.OtherInput().View(),
		OtherFocused: d.OtherFocused(),
		CanNext:      w.CanNext(),
		CanSubmit:    w.CanSubmit(),
	}
	return dv
}
