package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandHasAllSubcommands(t *testing.T) {
	t.Parallel()

	rootCmd := createRootCommand()

	for _, name := range []string{"set", "save", "delete", "list", "status"} {
		sub, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, "expected %s command to exist", name)
		assert.NotNil(t, sub.RunE, "expected %s command to have RunE", name)
	}
}

func TestRootCommandShowsHelp(t *testing.T) {
	t.Parallel()

	rootCmd := createRootCommand()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "skins")
	assert.Contains(t, buf.String(), "set")
}

func TestRootCommandHasConfigFlag(t *testing.T) {
	t.Parallel()

	rootCmd := createRootCommand()
	flag := rootCmd.PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, "skins.yml", flag.DefValue)
}

func TestSetCommandFlags(t *testing.T) {
	t.Parallel()

	rootCmd := createRootCommand()
	setCmd, _, err := rootCmd.Find([]string{"set"})
	require.NoError(t, err)

	assert.NotNil(t, setCmd.Flags().Lookup("package"))
	assert.NotNil(t, setCmd.Flags().Lookup("name"))
}

func TestSaveCommandRejectsExtraArgs(t *testing.T) {
	t.Parallel()

	rootCmd := createRootCommand()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"save", "one", "two"})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "accepts at most"))
}

func TestListCommandDefaultOutputFlag(t *testing.T) {
	t.Parallel()

	rootCmd := createRootCommand()
	listCmd, _, err := rootCmd.Find([]string{"list"})
	require.NoError(t, err)

	flag := listCmd.Flags().Lookup("output")
	require.NotNil(t, flag)
	assert.Equal(t, "plain", flag.DefValue)
}
