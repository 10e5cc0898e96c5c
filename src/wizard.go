package src

import (
	"fmt"
	"strings"
)

// OtherLabel is the sentinel selection meaning "user supplies free text
// instead of a listed option". It never appears in question options.
const OtherLabel = "__other__"

// Option is one selectable answer for a question.
type Option struct {
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// Question is a single step of the wizard. Immutable once supplied.
type Question struct {
	Question    string   `json:"question"`
	Header      string   `json:"header"`
	Options     []Option `json:"options"`
	MultiSelect bool     `json:"multiSelect"`
}

// Wizard steps through an ordered list of questions, tracking per-step
// selections and free-text "other" answers. All state is created fresh when
// the permission dialog opens and discarded on submit or dismiss; there is no
// reset.
type Wizard struct {
	questions  []Question
	step       int
	selections []map[string]bool
	otherText  []string
}

// NewWizard validates and normalizes the supplied questions: option labels
// are trimmed, options with empty labels are dropped, duplicate labels keep
// their first occurrence, and questions left without options are dropped.
// An empty result is an error; the caller falls back to a plain dialog.
func NewWizard(questions []Question) (*Wizard, error) {
	normalized := make([]Question, 0, len(questions))
	for _, q := range questions {
		seen := make(map[string]bool, len(q.Options))
		opts := make([]Option, 0, len(q.Options))
		for _, o := range q.Options {
			o.Label = strings.TrimSpace(o.Label)
			if o.Label == "" || o.Label == OtherLabel || seen[o.Label] {
				continue
			}
			seen[o.Label] = true
			opts = append(opts, o)
		}
		if len(opts) == 0 {
			continue
		}
		q.Options = opts
		normalized = append(normalized, q)
	}
	if len(normalized) == 0 {
		return nil, fmt.Errorf("wizard: no usable questions")
	}

	w := &Wizard{
		questions:  normalized,
		selections: make([]map[string]bool, len(normalized)),
		otherText:  make([]string, len(normalized)),
	}
	for i := range w.selections {
		w.selections[i] = make(map[string]bool)
	}
	return w, nil
}

// Questions returns the normalized question list.
func (w *Wizard) Questions() []Question { return w.questions }

// Len returns the number of steps.
func (w *Wizard) Len() int { return len(w.questions) }

// Step returns the current step index.
func (w *Wizard) Step() int { return w.step }

// Current returns the question at the current step.
func (w *Wizard) Current() Question { return w.questions[w.step] }

// Selected reports whether a label is selected at a step.
func (w *Wizard) Selected(step int, label string) bool {
	if step < 0 || step >= len(w.questions) {
		return false
	}
	return w.selections[step][label]
}

// OtherText returns the free text for a step.
func (w *Wizard) OtherText(step int) string {
	if step < 0 || step >= len(w.questions) {
		return ""
	}
	return w.otherText[step]
}

// Toggle flips or sets a selection. Single-select questions clear all prior
// selections and keep exactly the given label; multi-select flips membership.
// The sentinel follows the same rule as any listed option. Unknown labels are
// ignored.
func (w *Wizard) Toggle(step int, label string) {
	if step < 0 || step >= len(w.questions) {
		return
	}
	if label != OtherLabel && !w.hasOption(step, label) {
		return
	}
	sel := w.selections[step]
	if w.questions[step].MultiSelect {
		if sel[label] {
			delete(sel, label)
		} else {
			sel[label] = true
		}
		return
	}
	for k := range sel {
		delete(sel, k)
	}
	sel[label] = true
}

// SetOtherText updates the free text for a step. Selection membership is
// untouched.
func (w *Wizard) SetOtherText(step int, text string) {
	if step < 0 || step >= len(w.questions) {
		return
	}
	w.otherText[step] = text
}

// Satisfied reports whether a step passes the validation gate: its selection
// set is non-empty, and if the only selection is the sentinel, the free text
// is non-blank after trimming.
func (w *Wizard) Satisfied(step int) bool {
	if step < 0 || step >= len(w.questions) {
		return false
	}
	sel := w.selections[step]
	if len(sel) == 0 {
		return false
	}
	if len(sel) == 1 && sel[OtherLabel] {
		return strings.TrimSpace(w.otherText[step]) != ""
	}
	return true
}

// CanNext reports whether Next is enabled.
func (w *Wizard) CanNext() bool {
	return w.step < len(w.questions)-1 && w.Satisfied(w.step)
}

// CanSubmit reports whether Submit is enabled: last step and satisfied.
func (w *Wizard) CanSubmit() bool {
	return w.step == len(w.questions)-1 && w.Satisfied(w.step)
}

// Next advances one step. Gated on the current step being satisfied.
func (w *Wizard) Next() bool {
	if !w.CanNext() {
		return false
	}
	w.step++
	return true
}

// Back moves one step back. Never gated.
func (w *Wizard) Back() bool {
	if w.step == 0 {
		return false
	}
	w.step--
	return true
}

// Jump navigates directly to a step, regardless of the completion state of
// intervening steps. Out-of-range targets are ignored.
func (w *Wizard) Jump(step int) bool {
	if step < 0 || step >= len(w.questions) {
		return false
	}
	w.step = step
	return true
}

// Submit builds the answer map if the wizard is submittable. Resolved labels
// follow option order, with the sentinel replaced by the trimmed free text
// appended last. Questions whose resolved label set is empty are omitted
// entirely.
func (w *Wizard) Submit() (map[string]string, bool) {
	if !w.CanSubmit() {
		return nil, false
	}
	return w.answers(), true
}

func (w *Wizard) answers() map[string]string {
	out := make(map[string]string, len(w.questions))
	for i, q := range w.questions {
		sel := w.selections[i]
		var labels []string
		for _, o := range q.Options {
			if sel[o.Label] {
				labels = append(labels, o.Label)
			}
		}
		if sel[OtherLabel] {
			if text := strings.TrimSpace(w.otherText[i]); text != "" {
				labels = append(labels, text)
			}
		}
		if len(labels) == 0 {
			continue
		}
		out[q.Question] = strings.Join(labels, ", ")
	}
	return out
}

func (w *Wizard) hasOption(step int, label string) bool {
	for _, o := range w.questions[step].Options {
		if o.Label == label {
			return true
		}
	}
	return false
}
