package cli_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bgit.dev/bgit/internal/cli"
)

func TestCommitCmd(t *testing.T) {
	t.Run("requires the branch flag", func(t *testing.T) {
		rootCmd := cli.NewRootCmd("test")
		rootCmd.SetArgs([]string{"commit", "some/file.txt"})

		err := rootCmd.Execute()
		require.Error(t, err)
		require.Contains(t, err.Error(), "branch")
	})

	t.Run("requires exactly one path argument", func(t *testing.T) {
		rootCmd := cli.NewRootCmd("test")
		rootCmd.SetArgs([]string{"commit", "--branch", "feature"})

		err := rootCmd.Execute()
		require.Error(t, err)
	})
}
