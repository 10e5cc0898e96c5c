package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	m.Run()
}

func baseState() State {
	return State{
		Width:  100,
		Height: 30,
		TitleBar: TitleBar{
			ModelName: "Claude Sonnet 4.5",
			ModeName:  "Default",
			MenuItems: []MenuItem{{ID: "settings", Label: "Settings"}},
		},
		TextArea: textarea.New(),
		Viewport: viewport.New(80, 20),
		Spinner:  spinner.New(),
	}
}

func TestRenderTitleBarMac(t *testing.T) {
	s := baseState()
	s.TitleBar.Mac = true

	out := zone.Scan(Render(s, NewStyles()))
	assert.Contains(t, out, "OpDeck · Claude Sonnet 4.5 · Default")
	assert.Contains(t, out, "●")
	assert.NotContains(t, out, "✕")
}

func TestRenderTitleBarWindows(t *testing.T) {
	s := baseState()
	s.TitleBar.Windows = true

	out := zone.Scan(Render(s, NewStyles()))
	assert.Contains(t, out, "✕")
	assert.Contains(t, out, "─")
	assert.Contains(t, out, "⤢")
}

func TestRenderTitleBarMaximizedGlyph(t *testing.T) {
	s := baseState()
	s.TitleBar.Maximized = true

	out := zone.Scan(Render(s, NewStyles()))
	assert.Contains(t, out, "⤡")
	assert.NotContains(t, out, "⤢")
}

func TestRenderMenuButtonHiddenWithoutItems(t *testing.T) {
	s := baseState()
	s.TitleBar.MenuItems = nil

	out := zone.Scan(Render(s, NewStyles()))
	assert.NotContains(t, out, "☰")
}

func TestRenderDropdownWhenOpen(t *testing.T) {
	s := baseState()
	s.TitleBar.MenuOpen = true
	s.TitleBar.MenuItems = []MenuItem{
		{ID: "settings", Label: "Settings"},
		{ID: "usage", Label: "Usage"},
	}

	out := zone.Scan(Render(s, NewStyles()))
	assert.Contains(t, out, "Settings")
	assert.Contains(t, out, "Usage")
}

func TestRenderPlainDialog(t *testing.T) {
	s := baseState()
	s.Dialog = &DialogView{
		Icon:        "❯_",
		ToolName:    "Bash",
		Description: "Run a shell command",
		Input:       "{\n  \"command\": \"ls\"\n}",
	}

	out := zone.Scan(Render(s, NewStyles()))
	assert.Contains(t, out, "Bash")
	assert.Contains(t, out, "Run a shell command")
	assert.Contains(t, out, `"command"`)
	assert.Contains(t, out, "y: allow")
}

func TestRenderWizardSingleQuestionHidesStepIndicator(t *testing.T) {
	s := baseState()
	s.Dialog = &DialogView{
		Icon:     "?",
		ToolName: "AskUserQuestion",
		Wizard: &WizardView{
			Question: "Pick a color",
			Total:    1,
			Rows: []OptionRow{
				{Label: "Red", Highlighted: true},
				{Label: "Blue"},
				{Other: true},
			},
		},
	}

	out := zone.Scan(Render(s, NewStyles()))
	assert.Contains(t, out, "Pick a color")
	assert.Contains(t, out, "Red")
	assert.Contains(t, out, "Other...")
	assert.NotContains(t, out, "Step 1 of 1")
}

func TestRenderWizardMultiStepShowsCounterAndDots(t *testing.T) {
	s := baseState()
	s.Dialog = &DialogView{
		ToolName: "AskUserQuestion",
		Wizard: &WizardView{
			Question: "Which tools?",
			Header:   "Tooling",
			Step:     1,
			Total:    3,
			Rows:     []OptionRow{{Label: "Hammer"}},
		},
	}

	out := zone.Scan(Render(s, NewStyles()))
	assert.Contains(t, out, "Step 2 of 3")
	assert.Contains(t, out, "Tooling")
	assert.Contains(t, out, "○")
}

func TestRenderWizardCheckboxesForMultiSelect(t *testing.T) {
	s := baseState()
	s.Dialog = &DialogView{
		ToolName: "AskUserQuestion",
		Wizard: &WizardView{
			Question:    "Pick several",
			MultiSelect: true,
			Total:       1,
			Rows: []OptionRow{
				{Label: "A", Selected: true},
				{Label: "B"},
			},
		},
	}

	out := zone.Scan(Render(s, NewStyles()))
	assert.Contains(t, out, "[x] A")
	assert.Contains(t, out, "[ ] B")
}

func TestRenderWizardRadiosForSingleSelect(t *testing.T) {
	s := baseState()
	s.Dialog = &DialogView{
		ToolName: "AskUserQuestion",
		Wizard: &WizardView{
			Question: "Pick one",
			Total:    1,
			Rows: []OptionRow{
				{Label: "A", Selected: true},
				{Label: "B"},
			},
		},
	}

	out := zone.Scan(Render(s, NewStyles()))
	assert.Contains(t, out, "(•) A")
	assert.Contains(t, out, "( ) B")
}

func TestRenderFooterGatesSubmitHint(t *testing.T) {
	s := baseState()
	s.Dialog = &DialogView{
		ToolName: "AskUserQuestion",
		Wizard:   &WizardView{Question: "Q", Total: 1, Rows: []OptionRow{{Label: "A"}}},
	}

	out := zone.Scan(Render(s, NewStyles()))
	assert.NotContains(t, out, "enter: submit")

	s.Dialog.Wizard.CanSubmit = true
	out = zone.Scan(Render(s, NewStyles()))
	assert.Contains(t, out, "enter: submit")
}

func TestRenderThinkingLine(t *testing.T) {
	s := baseState()
	s.IsThinking = true
	s.ThinkingText = "Thinking..."

	out := zone.Scan(Render(s, NewStyles()))
	assert.Contains(t, out, "Thinking...")
}
