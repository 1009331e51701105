package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"bgit.dev/bgit/internal/actions"
	"bgit.dev/bgit/internal/git"
	"bgit.dev/bgit/internal/runtime"
)

// newCommitCmd creates the commit command
func newCommitCmd(repoPath *string) *cobra.Command {
	var (
		branch      string
		message     string
		push        bool
		trackRemote bool
		verifyRef   bool
	)

	cmd := &cobra.Command{
		Use:   "commit <path>",
		Short: "Commit a file to a target branch without checking it out",
		Long: `Commit a file to a target branch without checking it out.

The new commit is based on the branch's current tip; every part of the
tree not on the path to the file is shared with that tip unchanged. The
branch ref is moved with no check against concurrent writers unless
--verify-ref is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := *repoPath
			if path == "" {
				path = "."
			}

			repo, err := git.OpenRepository(path)
			if err != nil {
				return fmt.Errorf("failed to open repository: %w", err)
			}

			rt := runtime.NewContext(repo, actions.InteractiveConfirmer{})

			opts := actions.CommitOptions{
				Branch:      branch,
				Message:     message,
				Path:        args[0],
				Push:        push,
				TrackRemote: trackRemote,
				VerifyRef:   verifyRef,
			}

			return actions.CommitAction(cmd.Context(), opts, rt)
		},
	}

	cmd.Flags().StringVar(&branch, "branch", "", "Target branch name (e.g. feature/foo)")
	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message (defaults to \"Update <path>\")")
	cmd.Flags().BoolVar(&push, "push", false, "Push to origin after creating the commit (uses your local git auth)")
	cmd.Flags().BoolVar(&trackRemote, "track-remote", false, "If the branch doesn't exist locally, try to start from origin/BRANCH")
	cmd.Flags().BoolVar(&verifyRef, "verify-ref", false, "Fail instead of overwriting the branch if it moved since its tip was resolved")
	_ = cmd.MarkFlagRequired("branch")

	return cmd
}
