package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVersion(t *testing.T) {
	assert.Equal(t, version, GetVersion())
	assert.NotEmpty(t, GetVersion())
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	root := GetRootCmd()

	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}

	assert.True(t, names["demo"])
	assert.True(t, names["validate"])
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	root := GetRootCmd()

	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
	assert.NotNil(t, root.PersistentFlags().Lookup("log-level"))
}

func TestRootCmd_Version(t *testing.T) {
	root := GetRootCmd()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), version)
}
