package main

import (
	"bytes"
	"testing"

	"github.com/Dynatrace/pizzeria/pkg/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	t.Run("requires a subcommand", func(t *testing.T) {
		cmd := newRootCommand()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{})

		err := cmd.Execute()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "subcommands")
	})
	t.Run("prints the build metadata", func(t *testing.T) {
		out := &bytes.Buffer{}
		cmd := newRootCommand()
		cmd.SetOut(out)
		cmd.SetArgs([]string{"--version"})

		require.NoError(t, cmd.Execute())
		assert.Contains(t, out.String(), version.Get().String())
	})
	t.Run("subcommands are registered", func(t *testing.T) {
		cmd := newRootCommand()
		cmd.AddCommand(createCookCommandBuilder().Build(), createMenuCommandBuilder().Build())

		found, _, err := cmd.Find([]string{"menu"})
		require.NoError(t, err)
		assert.Equal(t, "menu", found.Use)

		found, _, err = cmd.Find([]string{"cook"})
		require.NoError(t, err)
		assert.Equal(t, "cook", found.Use)
	})
}
