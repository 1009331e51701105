package git

import (
	"context"
	"fmt"
)

// FetchRemote refreshes remote-tracking refs from the given remote. The
// git binary is used so that the user's existing auth setup applies.
// Callers treat a failure here as non-fatal.
func FetchRemote(ctx context.Context, workingDir, remote string) error {
	runner := NewCommandRunner(workingDir)
	if _, err := runner.Run(ctx, "fetch", remote); err != nil {
		return fmt.Errorf("failed to fetch %s: %w", remote, err)
	}
	return nil
}

// PushBranch pushes a branch to the remote with the refspec
// "branch:branch", again through the git binary for auth.
func PushBranch(ctx context.Context, workingDir, remote, branch string) error {
	runner := NewCommandRunner(workingDir)
	refspec := fmt.Sprintf("%s:%s", branch, branch)
	if _, err := runner.Run(ctx, "push", remote, refspec); err != nil {
		return fmt.Errorf("failed to push branch %s to %s: %w", branch, remote, err)
	}
	return nil
}
