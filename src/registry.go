package src

// ModelInfo is display metadata for a selectable assistant model.
type ModelInfo struct {
	Name        string
	Description string
}

// PermissionModeInfo is display metadata for a tool-approval policy.
type PermissionModeInfo struct {
	Name        string
	Description string
}

var models = map[string]ModelInfo{
	"haiku": {
		Name:        "Claude Haiku",
		Description: "Fastest responses for lightweight tasks",
	},
	"sonnet": {
		Name:        "Claude Sonnet",
		Description: "Balanced speed and capability for everyday work",
	},
	"opus": {
		Name:        "Claude Opus",
		Description: "Most capable, best for complex reasoning",
	},
}

// modelOrder fixes menu ordering; maps do not.
var modelOrder = []string{"haiku", "sonnet", "opus"}

var permissionModes = map[string]PermissionModeInfo{
	"default": {
		Name:        "Ask every time",
		Description: "Prompt for approval before every tool use",
	},
	"acceptEdits": {
		Name:        "Auto-accept edits",
		Description: "File edits run without prompting; everything else asks",
	},
	"bypassPermissions": {
		Name:        "Bypass permissions",
		Description: "All tools run without prompting",
	},
	"plan": {
		Name:        "Plan mode",
		Description: "Read-only analysis; no tools that modify anything",
	},
}

var permissionModeOrder = []string{"default", "acceptEdits", "bypassPermissions", "plan"}

// LookupModel returns display metadata for a model id.
func LookupModel(id string) (ModelInfo, bool) {
	info, ok := models[id]
	return info, ok
}

// LookupPermissionMode returns display metadata for a permission-mode id.
func LookupPermissionMode(id string) (PermissionModeInfo, bool) {
	info, ok := permissionModes[id]
	return info, ok
}

// ModelIDs returns the known model ids in menu order.
func ModelIDs() []string {
	out := make([]string, len(modelOrder))
	copy(out, modelOrder)
	return out
}

// PermissionModeIDs returns the known permission-mode ids in menu order.
func PermissionModeIDs() []string {
	out := make([]string, len(permissionModeOrder))
	copy(out, permissionModeOrder)
	return out
}
