// Package cli wires the cobra commands for the bgit binary.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version string) *cobra.Command {
	var repoPath string

	rootCmd := &cobra.Command{
		Use:           "bgit",
		Short:         "Commit specific files directly to a target branch without switching",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&repoPath, "repo", "", "Path to the repo (defaults to current dir or nearest discovered repo)")

	rootCmd.AddCommand(newCommitCmd(&repoPath))

	return rootCmd
}
