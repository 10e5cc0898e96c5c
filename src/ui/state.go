package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
)

// Mouse zone ids. The model resolves clicks against these after the renderer
// marks them.
const (
	ZoneMinimize = "chrome.minimize"
	ZoneMaximize = "chrome.maximize"
	ZoneClose    = "chrome.close"
	ZoneMenu     = "chrome.menu"
	ZoneDropdown = "chrome.dropdown"
)

// ZoneMenuItem is the zone id for one dropdown entry.
func ZoneMenuItem(id string) string { return "menu." + id }

// ZoneDot is the zone id for one wizard step-indicator dot.
func ZoneDot(step int) string { return fmt.Sprintf("wizard.dot.%d", step) }

// ZoneOption is the zone id for one wizard option row on the current step.
func ZoneOption(row int) string { return fmt.Sprintf("wizard.option.%d", row) }

// MenuItem is one navigation dropdown entry. Entries whose host callback is
// absent are never put in this slice: omitted, not disabled.
type MenuItem struct {
	ID    string
	Label string
}

// TitleBar is the render snapshot of the window chrome row.
type TitleBar struct {
	Mac       bool
	Windows   bool
	Maximized bool
	ModelName string
	ModeName  string
	MenuOpen  bool
	MenuItems []MenuItem
}

// OptionRow is one selectable row of the current wizard step.
type OptionRow struct {
	Label       string
	Description string
	Selected    bool
	Highlighted bool
	Other       bool // the synthetic free-text row
}

// WizardView is the render snapshot of the question wizard.
type WizardView struct {
	Header       string
	Question     string
	MultiSelect  bool
	Step         int
	Total        int
	Rows         []OptionRow
	OtherView    string // rendered free-text input
	OtherFocused bool
	CanNext      bool
	CanSubmit    bool
}

// DialogView is the render snapshot of the permission dialog.
type DialogView struct {
	Icon        string
	ToolName    string
	Description string
	Input       string
	Wizard      *WizardView
}

// State contains all the data required to render the UI. This decouples the
// renderer from the application model.
type State struct {
	Width  int
	Height int

	TitleBar TitleBar
	Dialog   *DialogView

	IsThinking   bool
	ThinkingText string
	Notice       string

	// Bubble Tea models
	TextArea textarea.Model
	Viewport viewport.Model
	Spinner  spinner.Model
}
