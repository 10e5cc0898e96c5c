package src

import (
	zone "github.com/lrstanley/bubblezone"

	"github.com/opdeck/opdeck/src/ui"
)

func (m *model) View() string {
	// Scan registers the marked regions so mouse events can be resolved
	// against them next frame.
	return zone.Scan(ui.Render(m.buildState(), m.styles))
}
