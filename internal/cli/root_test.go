package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktrackr/internal/config"
)

func setupRootCommand(t *testing.T) (*RootCommand, *bytes.Buffer) {
	t.Helper()

	root := NewRootCommand(setupService(t), config.NewConfig())

	var out bytes.Buffer
	root.SetOut(&out)
	return root, &out
}

func TestRootCommand_AddThenList(t *testing.T) {
	root, out := setupRootCommand(t)

	root.SetArgs([]string{"add", "Buy milk"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Created task: Buy milk (ID: 1)")

	out.Reset()
	root.SetArgs([]string{"list"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "1: Buy milk - ❌")
}

func TestRootCommand_AddRequiresTitle(t *testing.T) {
	root, _ := setupRootCommand(t)

	root.SetArgs([]string{"add"})
	assert.Error(t, root.Execute())
}

func TestRootCommand_UnknownSubcommand(t *testing.T) {
	root, _ := setupRootCommand(t)

	root.SetArgs([]string{"bogus"})
	assert.Error(t, root.Execute())
}
