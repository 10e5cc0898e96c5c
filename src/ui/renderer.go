package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// Render generates the full UI string based on the provided state. The
// caller passes the result through zone.Scan so the marked regions become
// hit-testable.
func Render(s State, styles Styles) string {
	bar := RenderTitleBar(s.TitleBar, s.Width, styles)
	body := renderBody(s, styles)
	footer := renderFooter(s, styles)

	parts := []string{bar}
	if s.TitleBar.MenuOpen {
		parts = append(parts, renderDropdown(s.TitleBar, styles))
	}
	parts = append(parts, body, footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// RenderTitleBar renders the custom window chrome row. On mac the traffic
// lights sit on the left; on windows and linux the controls sit on the
// right. Controls whose callbacks are absent never render.
func RenderTitleBar(tb TitleBar, width int, styles Styles) string {
	title := styles.Title.Render(fmt.Sprintf("OpDeck · %s · %s", tb.ModelName, tb.ModeName))

	maxGlyph := "⤢"
	if tb.Maximized {
		maxGlyph = "⤡"
	}

	menu := ""
	if len(tb.MenuItems) > 0 {
		menu = zone.Mark(ZoneMenu, styles.TitleButton.Render("☰"))
	}

	var left, right string
	if tb.Mac {
		lights := strings.Join([]string{
			zone.Mark(ZoneClose, styles.TrafficRed.Render("●")),
			zone.Mark(ZoneMinimize, styles.TrafficAmber.Render("●")),
			zone.Mark(ZoneMaximize, styles.TrafficGreen.Render("●")),
		}, " ")
		left = lights
		right = menu
	} else {
		left = menu
		right = strings.Join([]string{
			zone.Mark(ZoneMinimize, styles.TitleButton.Render("─")),
			zone.Mark(ZoneMaximize, styles.TitleButton.Render(maxGlyph)),
			zone.Mark(ZoneClose, styles.CloseButton.Render("✕")),
		}, "")
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(title) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	pad := strings.Repeat(" ", gap/2)
	row := left + pad + title + strings.Repeat(" ", gap-gap/2) + right
	return styles.TitleBar.Render(row)
}

func renderDropdown(tb TitleBar, styles Styles) string {
	rows := make([]string, 0, len(tb.MenuItems))
	for _, item := range tb.MenuItems {
		rows = append(rows, zone.Mark(ZoneMenuItem(item.ID), styles.MenuItem.Render(item.Label)))
	}
	box := styles.Dropdown.Render(strings.Join(rows, "\n"))
	return zone.Mark(ZoneDropdown, box)
}

func renderBody(s State, styles Styles) string {
	if s.Dialog != nil {
		return RenderDialog(*s.Dialog, styles)
	}
	return renderChat(s, styles)
}

func renderChat(s State, styles Styles) string {
	parts := []string{s.Viewport.View()}
	if s.Notice != "" {
		parts = append(parts, styles.Subtle.Render(s.Notice))
	}
	parts = append(parts, renderThinking(s, styles), s.TextArea.View())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderThinking(s State, styles Styles) string {
	if !s.IsThinking {
		return ""
	}
	return styles.Thinking.Render(fmt.Sprintf("%s %s", s.Spinner.View(), s.ThinkingText))
}

// RenderDialog renders the permission prompt: tool identity, pretty-printed
// input, and either the plain allow/deny actions or the question wizard.
func RenderDialog(d DialogView, styles Styles) string {
	header := styles.DialogTitle.Render(fmt.Sprintf("%s  %s", d.Icon, d.ToolName))
	lines := []string{header}
	if d.Description != "" {
		lines = append(lines, styles.Subtle.Render(d.Description))
	}

	if d.Wizard != nil {
		lines = append(lines, "", renderWizard(*d.Wizard, styles))
	} else {
		lines = append(lines, "", styles.DialogInput.Render(d.Input))
	}

	return styles.Dialog.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func renderWizard(w WizardView, styles Styles) string {
	var lines []string

	// A single-question wizard suppresses the step counter and the
	// indicator dots entirely.
	if w.Total > 1 {
		counter := styles.StepCounter.Render(fmt.Sprintf("Step %d of %d", w.Step+1, w.Total))
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, counter, "  ", renderDots(w, styles)))
	}

	if w.Header != "" {
		lines = append(lines, styles.Accent.Render(w.Header))
	}
	lines = append(lines, w.Question, "")

	for i, row := range w.Rows {
		lines = append(lines, zone.Mark(ZoneOption(i), renderOptionRow(row, w.MultiSelect, styles)))
	}

	if w.OtherFocused {
		lines = append(lines, w.OtherView)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderOptionRow(row OptionRow, multi bool, styles Styles) string {
	var box string
	switch {
	case multi && row.Selected:
		box = "[x]"
	case multi:
		box = "[ ]"
	case row.Selected:
		box = "(•)"
	default:
		box = "( )"
	}

	label := row.Label
	if row.Other {
		label = "Other..."
	}
	text := fmt.Sprintf("%s %s", box, label)
	if row.Description != "" {
		text += "  " + styles.Subtle.Render(row.Description)
	}

	style := styles.OptionRow
	if row.Highlighted {
		style = styles.OptionActive
	}
	return style.Render(text)
}

func renderDots(w WizardView, styles Styles) string {
	dots := make([]string, 0, w.Total)
	for i := 0; i < w.Total; i++ {
		glyph := styles.DotInactive.Render("○")
		if i == w.Step {
			glyph = styles.DotActive.Render("●")
		}
		dots = append(dots, zone.Mark(ZoneDot(i), glyph))
	}
	return strings.Join(dots, " ")
}

func renderFooter(s State, styles Styles) string {
	var help string
	switch {
	case s.Dialog != nil && s.Dialog.Wizard != nil:
		w := s.Dialog.Wizard
		if w.OtherFocused {
			help = "enter: done typing | esc: leave text"
		} else {
			help = "↑/↓: move | space: select | esc: deny"
			if w.CanSubmit {
				help += " | enter: submit"
			} else if w.CanNext {
				help += " | enter: next"
			}
			if w.Step > 0 {
				help += " | ←: back"
			}
		}
	case s.Dialog != nil:
		help = "y: allow | n/esc: deny | c: copy input"
	default:
		help = "ctrl+c: quit"
	}
	return styles.Footer.Render(help)
}
