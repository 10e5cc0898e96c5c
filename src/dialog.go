package src

import (
	"encoding/json"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// PermissionRequest is one tool invocation awaiting user approval.
type PermissionRequest struct {
	ID       string
	ToolName string
	Input    map[string]any
}

// NewPermissionRequest tags a request with a fresh id.
func NewPermissionRequest(toolName string, input map[string]any) PermissionRequest {
	return PermissionRequest{
		ID:       uuid.NewString(),
		ToolName: toolName,
		Input:    input,
	}
}

// PermissionCallbacks are the only two ways out of the dialog. Both are
// supplied by the caller; the dialog holds no business logic beyond dispatch.
type PermissionCallbacks struct {
	// OnAllow may receive a modified payload; nil means "input as given".
	OnAllow func(updatedInput map[string]any) tea.Cmd
	OnDeny  func() tea.Cmd
}

// Dialog is the modal tool-approval prompt. For AskUserQuestion requests
// carrying a questions list it embeds a Wizard; all wizard state is created
// here and discarded when the dialog resolves.
type Dialog struct {
	Open bool
	Req  PermissionRequest

	cb  PermissionCallbacks
	wiz *Wizard

	cursor     int
	otherInput textinput.Model
	otherFocus bool
}

// OpenDialog builds the modal for a request. Malformed question payloads
// degrade to the plain approval view rather than erroring at the user.
func OpenDialog(req PermissionRequest, cb PermissionCallbacks) *Dialog {
	d := &Dialog{Open: true, Req: req, cb: cb}

	if req.ToolName == ToolAskUserQuestion {
		if qs := parseQuestions(req.Input); len(qs) > 0 {
			if w, err := NewWizard(qs); err == nil {
				d.wiz = w
			}
		}
	}

	ti := textinput.New()
	ti.Placeholder = "Type your own answer..."
	ti.CharLimit = 400
	d.otherInput = ti
	return d
}

// parseQuestions decodes the questions list out of an arbitrary structured
// payload via a JSON round trip.
func parseQuestions(input map[string]any) []Question {
	raw, ok := input["questions"]
	if !ok {
		return nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil
	}
	var qs []Question
	if err := json.Unmarshal(data, &qs); err != nil {
		return nil
	}
	return qs
}

// Wizard returns the embedded question wizard, nil for plain requests.
func (d *Dialog) Wizard() *Wizard { return d.wiz }

// Cursor returns the highlighted option row on the current step. Rows are
// the question's options followed by the synthetic "Other" row.
func (d *Dialog) Cursor() int { return d.cursor }

// OtherFocused reports whether keystrokes currently go to the free-text
// input.
func (d *Dialog) OtherFocused() bool { return d.otherFocus }

// OtherInput exposes the free-text input model for rendering.
func (d *Dialog) OtherInput() textinput.Model { return d.otherInput }

// rowCount is the number of selectable rows on the current step.
func (d *Dialog) rowCount() int {
	if d.wiz == nil {
		return 0
	}
	return len(d.wiz.Current().Options) + 1
}

// MoveCursor moves the option highlight, clamped to the current step's rows.
func (d *Dialog) MoveCursor(delta int) {
	n := d.rowCount()
	if n == 0 {
		return
	}
	d.cursor += delta
	if d.cursor < 0 {
		d.cursor = 0
	}
	if d.cursor >= n {
		d.cursor = n - 1
	}
}

// ToggleAtCursor toggles the highlighted row. Landing on the sentinel row
// also focuses the free-text input so the user can type immediately.
func (d *Dialog) ToggleAtCursor() {
	if d.wiz == nil {
		return
	}
	step := d.wiz.Step()
	opts := d.wiz.Current().Options
	if d.cursor < len(opts) {
		d.wiz.Toggle(step, opts[d.cursor].Label)
		return
	}
	d.wiz.Toggle(step, OtherLabel)
	if d.wiz.Selected(step, OtherLabel) {
		d.FocusOther()
	} else {
		d.BlurOther()
	}
}

// FocusOther routes keystrokes to the free-text input.
func (d *Dialog) FocusOther() {
	d.otherFocus = true
	d.otherInput.SetValue(d.wiz.OtherText(d.wiz.Step()))
	d.otherInput.Focus()
}

// BlurOther stops routing keystrokes to the free-text input.
func (d *Dialog) BlurOther() {
	d.otherFocus = false
	d.otherInput.Blur()
}

// UpdateOther feeds a message to the free-text input and mirrors its value
// into the wizard state.
func (d *Dialog) UpdateOther(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	d.otherInput, cmd = d.otherInput.Update(msg)
	d.wiz.SetOtherText(d.wiz.Step(), d.otherInput.Value())
	return cmd
}

// Next advances the wizard and resets per-step view state.
func (d *Dialog) Next() {
	if d.wiz != nil && d.wiz.Next() {
		d.stepChanged()
	}
}

// Back moves the wizard back and resets per-step view state.
func (d *Dialog) Back() {
	if d.wiz != nil && d.wiz.Back() {
		d.stepChanged()
	}
}

// Jump moves the wizard directly to a step via the indicator.
func (d *Dialog) Jump(step int) {
	if d.wiz != nil && d.wiz.Jump(step) {
		d.stepChanged()
	}
}

func (d *Dialog) stepChanged() {
	d.cursor = 0
	d.BlurOther()
	d.otherInput.SetValue(d.wiz.OtherText(d.wiz.Step()))
}

// Allow resolves the dialog through the allow callback. For wizard requests
// the payload is {questions: original list, answers: answer map}; submission
// is refused while the gate holds.
func (d *Dialog) Allow() (tea.Cmd, bool) {
	if d.wiz != nil {
		answers, ok := d.wiz.Submit()
		if !ok {
			return nil, false
		}
		payload := map[string]any{
			"questions": d.Req.Input["questions"],
			"answers":   answers,
		}
		d.Open = false
		if d.cb.OnAllow == nil {
			return nil, true
		}
		return d.cb.OnAllow(payload), true
	}

	d.Open = false
	if d.cb.OnAllow == nil {
		return nil, true
	}
	return d.cb.OnAllow(nil), true
}

// Deny resolves the dialog through the deny callback, discarding all wizard
// state. Available from any step.
func (d *Dialog) Deny() tea.Cmd {
	d.Open = false
	if d.cb.OnDeny == nil {
		return nil
	}
	return d.cb.OnDeny()
}

// PrettyInput renders the request payload for display.
func (d *Dialog) PrettyInput() string {
	if len(d.Req.Input) == 0 {
		return "{}"
	}
	data, err := json.MarshalIndent(d.Req.Input, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", d.Req.Input)
	}
	return string(data)
}

// CopyInput puts the pretty-printed payload on the system clipboard.
func (d *Dialog) CopyInput() error {
	return clipboard.WriteAll(d.PrettyInput())
}
