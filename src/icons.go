package src

import "strings"

// Tool icons shown in the permission dialog header.
const (
	IconTerminal = "❯_"
	IconPencil   = "✎"
	IconFile     = "🗎"
	IconGlobe    = "🌐"
	IconSearch   = "🔍"
	IconQuestion = "?"
	IconFallback = "⚙"
)

// iconRules is evaluated in order, first match wins. Matching is a fuzzy
// case-insensitive substring check rather than a dispatch table keyed by
// exact tool name: "BashCommand" and "terminal_exec" both land on the
// terminal icon.
var iconRules = []struct {
	keyword string
	icon    string
}{
	{"question", IconQuestion},
	{"bash", IconTerminal},
	{"terminal", IconTerminal},
	{"shell", IconTerminal},
	{"exec", IconTerminal},
	{"command", IconTerminal},
	{"edit", IconPencil},
	{"write", IconPencil},
	{"read", IconFile},
	{"fetch", IconGlobe},
	{"web", IconGlobe},
	{"http", IconGlobe},
	{"glob", IconSearch},
	{"grep", IconSearch},
	{"search", IconSearch},
}

// ToolIcon classifies a tool name into a display icon.
func ToolIcon(name string) string {
	lower := strings.ToLower(name)
	for _, rule := range iconRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.icon
		}
	}
	return IconFallback
}
