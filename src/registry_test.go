package src

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupModel(t *testing.T) {
	info, ok := LookupModel("sonnet")
	require.True(t, ok)
	assert.Equal(t, "Claude Sonnet", info.Name)
	assert.NotEmpty(t, info.Description)

	_, ok = LookupModel("gpt-nope")
	assert.False(t, ok)
}

func TestLookupPermissionMode(t *testing.T) {
	info, ok := LookupPermissionMode("acceptEdits")
	require.True(t, ok)
	assert.Equal(t, "Auto-accept edits", info.Name)

	_, ok = LookupPermissionMode("yolo")
	assert.False(t, ok)
}

func TestOrderedIDsMatchTables(t *testing.T) {
	for _, id := range ModelIDs() {
		_, ok := LookupModel(id)
		assert.True(t, ok, id)
	}
	for _, id := range PermissionModeIDs() {
		_, ok := LookupPermissionMode(id)
		assert.True(t, ok, id)
	}
}

func TestIDSlicesAreCopies(t *testing.T) {
	ids := ModelIDs()
	ids[0] = "mutated"
	assert.NotEqual(t, "mutated", ModelIDs()[0])
}
